//
//  Copyright © Manetu Inc. All rights reserved.
//

package common

import (
	"github.com/manetu/rolegen/internal/logging"
	"github.com/manetu/rolegen/pkg/config"
	"github.com/manetu/rolegen/pkg/resolver"
	"github.com/urfave/cli/v3"
)

var logger = logging.GetLogger("rolegen.cli")

// Prefix returns the resolver prefix: the global --prefix flag when given,
// otherwise the configured setting.
func Prefix(cmd *cli.Command) string {
	root := cmd.Root()
	if root.IsSet("prefix") {
		return root.String("prefix")
	}
	return config.GetResolverPrefix()
}

// NewCliResolver creates a resolver over the process environment honoring
// the CLI's prefix selection.
func NewCliResolver(cmd *cli.Command) *resolver.Resolver {
	return resolver.New(resolver.WithPrefix(Prefix(cmd)))
}

// EnvFiles returns the .env files to load: configured files first, then any
// given with --env-file. Earlier files win on duplicate names.
func EnvFiles(cmd *cli.Command) []string {
	files := append([]string{}, config.GetResolverEnvFiles()...)
	return append(files, cmd.Root().StringSlice("env-file")...)
}

// LoadEnvFiles loads the files named by [EnvFiles] into the process environment.
func LoadEnvFiles(cmd *cli.Command) error {
	files := EnvFiles(cmd)
	if len(files) == 0 {
		return nil
	}
	logger.SysDebugf("loading env files %v", files)
	return resolver.LoadEnvFiles(files...)
}

// Quote renders a vocabulary value for display; the empty core API group
// becomes "".
func Quote(v string) string {
	if v == "" {
		return `""`
	}
	return v
}
