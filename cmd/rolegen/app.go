//
//  Copyright © Manetu Inc. All rights reserved.
//

package main

import (
	"context"
	"fmt"

	"github.com/manetu/rolegen/cmd/rolegen/common"
	"github.com/manetu/rolegen/cmd/rolegen/subcommands/generate"
	"github.com/manetu/rolegen/cmd/rolegen/subcommands/resolve"
	"github.com/manetu/rolegen/cmd/rolegen/subcommands/vocab"
	"github.com/manetu/rolegen/cmd/rolegen/version"
	"github.com/manetu/rolegen/pkg/config"
	"github.com/urfave/cli/v3"
)

func axisFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "axis",
		Aliases: []string{"a"},
		Usage:   "The permission axis: one of 'apiGroup', 'resource' or 'verb'",
	}
}

func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if err := config.Load(); err != nil {
		return ctx, err
	}
	return ctx, common.LoadEnvFiles(cmd)
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "rolegen",
		Usage:   "Resolve platform settings and assemble Kubernetes Roles and RoleBindings from a closed RBAC vocabulary",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "env-file",
				Aliases: []string{"e"},
				Usage:   "Load environment variables from `FILE` before resolving.  Existing variables are not overridden.  Can be specified multiple times.",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "The environment prefix the resolver honors (default from ROLEGEN_RESOLVER_PREFIX, else 'VITE')",
			},
		},
		Before: before,
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Resolve configuration values from the built-in table and the environment",
				Commands: []*cli.Command{
					{
						Name:      "get",
						Usage:     "Resolve a single configuration key",
						ArgsUsage: "KEY",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "default",
								Aliases: []string{"d"},
								Usage:   "Value to print when the key is not defined",
							},
							&cli.BoolFlag{
								Name:  "required",
								Usage: "Fail when the key is not defined, ignoring --default",
							},
							&cli.BoolFlag{
								Name:  "explain",
								Usage: "Print the key and the source that supplied the value",
							},
						},
						Action: resolve.ExecuteGet,
					},
					{
						Name:   "list",
						Usage:  "Print every built-in key with its resolved value",
						Action: resolve.ExecuteList,
					},
				},
			},
			{
				Name:  "vocab",
				Usage: "Inspect the RBAC vocabulary and its shortcut groups",
				Commands: []*cli.Command{
					{
						Name:   "members",
						Usage:  "List the legal values of an axis",
						Flags:  []cli.Flag{axisFlag()},
						Action: vocab.ExecuteMembers,
					},
					{
						Name:  "groups",
						Usage: "List the shortcut groups of an axis",
						Flags: []cli.Flag{
							axisFlag(),
							&cli.BoolFlag{
								Name:  "json",
								Usage: "Print groups and their members as JSON",
							},
						},
						Action: vocab.ExecuteGroups,
					},
					{
						Name:  "expand",
						Usage: "Print the members of a shortcut group",
						Flags: []cli.Flag{
							axisFlag(),
							&cli.StringFlag{
								Name:    "group",
								Aliases: []string{"g"},
								Usage:   "The group label, e.g. 'readonly'",
							},
						},
						Action: vocab.ExecuteExpand,
					},
					{
						Name:      "validate",
						Usage:     "Check values against an axis",
						ArgsUsage: "VALUE...",
						Flags:     []cli.Flag{axisFlag()},
						Action:    vocab.ExecuteValidate,
					},
				},
			},
			{
				Name:  "generate",
				Usage: "Generate Role, RoleBinding and ServiceAccount manifests from a request file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Request YAML `FILE` describing the role",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the manifest to `FILE` instead of stdout",
					},
				},
				Action: generate.Execute,
			},
			{
				Name:  "version",
				Usage: "Print the rolegen version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintln(cmd.Root().Writer, version.GetVersion())
					return err
				},
			},
		},
	}
}
