//
//  Copyright © Manetu Inc. All rights reserved.
//

package vocab

import (
	"context"
	"fmt"
	"io"

	"github.com/manetu/rolegen/cmd/rolegen/common"
	rgcommon "github.com/manetu/rolegen/pkg/common"
	"github.com/manetu/rolegen/pkg/rbac"
	"github.com/urfave/cli/v3"
)

func parseAxis(cmd *cli.Command) (rbac.Axis, error) {
	name := cmd.String("axis")
	if name == "" {
		return 0, fmt.Errorf("--axis is required (apiGroup, resource or verb)")
	}
	return rbac.ParseAxis(name)
}

// ExecuteMembers runs 'vocab members'.
func ExecuteMembers(ctx context.Context, cmd *cli.Command) error {
	axis, err := parseAxis(cmd)
	if err != nil {
		return err
	}
	return Members(cmd.Root().Writer, axis)
}

// Members writes the legal values of axis, one per line, in presentation order.
func Members(w io.Writer, axis rbac.Axis) error {
	for _, m := range rbac.MembersOf(axis) {
		if _, err := fmt.Fprintln(w, common.Quote(m)); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteGroups runs 'vocab groups'.
func ExecuteGroups(ctx context.Context, cmd *cli.Command) error {
	axis, err := parseAxis(cmd)
	if err != nil {
		return err
	}
	return Groups(cmd.Root().Writer, axis, cmd.Bool("json"))
}

type groupView struct {
	Label  string   `json:"label"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Groups writes the shortcut groups of axis, either as "label: name" lines
// or as JSON including their members.
func Groups(w io.Writer, axis rbac.Axis, asJSON bool) error {
	groups := rbac.GroupsOf(axis)
	if asJSON {
		views := make([]groupView, 0, len(groups))
		for _, g := range groups {
			views = append(views, groupView{Label: g.Label, Name: g.Name, Values: g.Values})
		}
		rgcommon.PrettyPrint(w, views)
		return nil
	}
	for _, g := range groups {
		if _, err := fmt.Fprintf(w, "%s: %s\n", g.Label, g.Name); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteExpand runs 'vocab expand'.
func ExecuteExpand(ctx context.Context, cmd *cli.Command) error {
	axis, err := parseAxis(cmd)
	if err != nil {
		return err
	}
	return Expand(cmd.Root().Writer, axis, cmd.String("group"))
}

// Expand writes the members of a group, one per line.
func Expand(w io.Writer, axis rbac.Axis, label string) error {
	values, err := rbac.Expand(axis, label)
	if err != nil {
		return err
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(w, common.Quote(v)); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteValidate runs 'vocab validate'.
func ExecuteValidate(ctx context.Context, cmd *cli.Command) error {
	axis, err := parseAxis(cmd)
	if err != nil {
		return err
	}
	values := cmd.Args().Slice()
	if len(values) == 0 {
		return fmt.Errorf("no values given to validate")
	}
	return Validate(cmd.Root().Writer, axis, values)
}

// Validate checks each value against axis, printing a ✓/✗ line per value.
// It fails if any value is invalid.
func Validate(w io.Writer, axis rbac.Axis, values []string) error {
	invalid := 0
	for _, v := range values {
		if err := rbac.Check(axis, v); err != nil {
			invalid++
			_, _ = fmt.Fprintf(w, "✗ %s\n", err)
			continue
		}
		_, _ = fmt.Fprintf(w, "✓ %s\n", common.Quote(v))
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d %s values invalid", invalid, len(values), axis)
	}
	return nil
}
