//
//  Copyright © Manetu Inc. All rights reserved.
//

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/manetu/rolegen/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	t.Setenv(config.ConfigPathEnv, t.TempDir())
	config.ResetConfig()
	assert.NotNil(t, config.VConfig)
}

func TestConfigDefaults(t *testing.T) {
	t.Setenv(config.ConfigPathEnv, t.TempDir())
	config.ResetConfig()

	assert.Equal(t, ".:info", config.VConfig.GetString(config.LogLevel))
	assert.Equal(t, "VITE", config.GetResolverPrefix())
	assert.Empty(t, config.GetResolverEnvFiles())
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv(config.ConfigPathEnv, t.TempDir())
	t.Setenv("ROLEGEN_RESOLVER_PREFIX", "PUBLIC")
	config.ResetConfig()

	assert.Equal(t, "PUBLIC", config.GetResolverPrefix())
}

func TestConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
log:
  level: ".:warn"
resolver:
  prefix: APP
  envfiles:
    - .env
    - .env.local
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(content), 0600))

	t.Setenv(config.ConfigPathEnv, dir)
	t.Setenv(config.ConfigFileNameEnv, "custom")
	config.ResetConfig()

	assert.Equal(t, "APP", config.GetResolverPrefix())
	assert.Equal(t, []string{".env", ".env.local"}, config.GetResolverEnvFiles())
	assert.Equal(t, ".:warn", config.VConfig.GetString(config.LogLevel))
}

func TestLoadInvalidLogLevel(t *testing.T) {
	t.Setenv(config.ConfigPathEnv, t.TempDir())
	t.Setenv("ROLEGEN_LOG_LEVEL", ".:shouting")
	config.ResetConfig()

	assert.Error(t, config.Load())
}
