//
//  Copyright © Manetu Inc. All rights reserved.
//

package resolve

import (
	"context"
	"fmt"
	"io"

	"github.com/manetu/rolegen/cmd/rolegen/common"
	rgcommon "github.com/manetu/rolegen/pkg/common"
	"github.com/manetu/rolegen/pkg/resolver"
	"github.com/urfave/cli/v3"
)

// Options controls how a single key is resolved.
type Options struct {
	Default    string
	HasDefault bool
	Required   bool
	Explain    bool
}

// ExecuteGet runs 'config get'.
func ExecuteGet(ctx context.Context, cmd *cli.Command) error {
	key := cmd.Args().First()
	if key == "" {
		return fmt.Errorf("a configuration key is required, e.g. 'rolegen config get ROLE_APIVERSION'")
	}

	opts := Options{
		Default:    cmd.String("default"),
		HasDefault: cmd.IsSet("default"),
		Required:   cmd.Bool("required"),
		Explain:    cmd.Bool("explain"),
	}
	return Get(cmd.Root().Writer, common.NewCliResolver(cmd), key, opts)
}

// Get resolves key and writes its value to w. An absent key prints nothing
// unless a default is given, and fails when required.
func Get(w io.Writer, res *resolver.Resolver, key string, opts Options) error {
	value, tier := res.Lookup(key)
	if tier == resolver.TierNone {
		if opts.Required {
			return rgcommon.NewMissingRequiredConfig(key)
		}
		if !opts.HasDefault {
			return nil
		}
		value = opts.Default
	}

	if opts.Explain {
		source := tier.String()
		if tier == resolver.TierNone {
			source = "default"
		}
		_, err := fmt.Fprintf(w, "%s=%s (%s)\n", key, value, source)
		return err
	}
	_, err := fmt.Fprintln(w, value)
	return err
}

// ExecuteList runs 'config list'.
func ExecuteList(ctx context.Context, cmd *cli.Command) error {
	return List(cmd.Root().Writer, common.NewCliResolver(cmd))
}

// List writes every built-in key with its resolved value.
func List(w io.Writer, res *resolver.Resolver) error {
	for _, k := range resolver.Keys() {
		v, tier := res.Lookup(string(k))
		if _, err := fmt.Fprintf(w, "%s=%s (%s)\n", k, v, tier); err != nil {
			return err
		}
	}
	return nil
}
