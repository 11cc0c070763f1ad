//
//  Copyright © Manetu Inc. All rights reserved.
//

// Package config manages the settings of the rolegen tool itself using
// [Viper].
//
// These settings control how rolegen behaves (logging, which environment
// prefix the resolver honors, which .env files to load). They are not a
// resolution tier: values handed out by [resolver.Resolve] never come from
// here.
//
// Settings can be provided via:
//   - YAML configuration files
//   - Environment variables with the ROLEGEN_ prefix
//   - Programmatic defaults
//
// # Configuration File
//
// By default, rolegen looks for rolegen-config.yaml in the current directory.
// Override the location using environment variables:
//
//	ROLEGEN_CONFIG_PATH=/etc/rolegen
//	ROLEGEN_CONFIG_FILENAME=production-config
//
// Example configuration file:
//
//	log:
//	  level: ".:info;rolegen.resolver:debug"
//	resolver:
//	  prefix: VITE
//	  envfiles:
//	    - .env
//	    - .env.local
//
// # Environment Variables
//
// Dots in key names become underscores:
//
//	ROLEGEN_LOG_LEVEL=.:debug
//	ROLEGEN_RESOLVER_PREFIX=PUBLIC
//
// [Viper]: https://github.com/spf13/viper
package config

import (
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/manetu/rolegen/internal/logging"
	"github.com/spf13/viper"
)

// Environment variable and default path constants for configuration loading.
const (
	// EnvVarPrefix is the prefix for all rolegen environment variables.
	// For example, the key "log.level" becomes ROLEGEN_LOG_LEVEL.
	EnvVarPrefix string = "ROLEGEN"

	// ConfigPathEnv is the environment variable that specifies the directory
	// containing the configuration file.
	ConfigPathEnv string = "ROLEGEN_CONFIG_PATH"

	// ConfigFileNameEnv is the environment variable that specifies the
	// configuration file name (without extension).
	ConfigFileNameEnv string = "ROLEGEN_CONFIG_FILENAME"

	// ConfigDefaultPath is the default directory to search for config files.
	ConfigDefaultPath string = "."

	// ConfigDefaultFilename is the default configuration file name (without extension).
	ConfigDefaultFilename string = "rolegen-config"

	// DefaultResolverPrefix is the environment prefix honored by the resolver
	// unless overridden.
	DefaultResolverPrefix string = "VITE"
)

// Configuration key constants for use with [VConfig].
const (
	// LogLevel holds per-module log levels, e.g. ".:info;rolegen.resolver:debug".
	LogLevel string = "log.level"

	// ResolverPrefix is the prefix the resolver strips from keys before the
	// second built-in lookup, and prepends for the last environment lookup.
	//
	// Default: "VITE"
	// Set via environment: ROLEGEN_RESOLVER_PREFIX=PUBLIC
	ResolverPrefix string = "resolver.prefix"

	// ResolverEnvFiles lists .env files loaded into the process environment
	// at startup. Variables already set in the environment are not overridden.
	ResolverEnvFiles string = "resolver.envfiles"
)

var (
	once     sync.Once
	loadOnce sync.Once
	loadErr  error

	// VConfig is the global Viper instance holding rolegen's settings.
	// It is initialized by [Init] or [Load].
	VConfig *viper.Viper
	logger  = logging.GetLogger("rolegen.config")
)

// Init initializes the configuration system without loading config files.
// Subsequent calls are no-ops.
func Init() {
	once.Do(doInitialize)
}

func getConfigPath() string {
	if configPath, ok := os.LookupEnv(ConfigPathEnv); ok {
		return configPath
	}
	return ConfigDefaultPath
}

func getConfigFileName() string {
	if configName, ok := os.LookupEnv(ConfigFileNameEnv); ok {
		return configName
	}
	return ConfigDefaultFilename
}

func doInitialize() {
	VConfig = viper.New()

	// default is './rolegen-config.yaml', overridable with $(ROLEGEN_CONFIG_PATH)/$(ROLEGEN_CONFIG_FILENAME).yaml
	VConfig.AddConfigPath(getConfigPath())
	VConfig.SetConfigName(getConfigFileName())
	VConfig.SetConfigType("yaml")

	// keys such as 'log.level' become 'ROLEGEN_LOG_LEVEL'
	VConfig.SetEnvPrefix(EnvVarPrefix)
	VConfig.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	VConfig.AutomaticEnv()

	VConfig.SetDefault(LogLevel, ".:info")
	VConfig.SetDefault(ResolverPrefix, DefaultResolverPrefix)
	VConfig.SetDefault(ResolverEnvFiles, []string{})
}

// Load initializes configuration and reads the configuration file, if any.
// A missing file is not an error. Log levels are applied from the final
// configuration. Safe to call concurrently; only the first call does work.
func Load() error {
	loadOnce.Do(func() {
		Init()

		// Early log level from the environment so config loading itself can be debugged.
		if early := os.Getenv("ROLEGEN_LOG_LEVEL"); early != "" {
			if err := logging.UpdateLogLevels(early); err != nil {
				loadErr = err
				return
			}
		}

		logger.SysDebugf("Loading configuration from %s/%s.yaml", getConfigPath(), getConfigFileName())
		if err := VConfig.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				logger.SysWarnf("error reading config; using defaults: %+v", err)
			} else {
				logger.SysDebugf("No config file found at %s/%s.yaml", getConfigPath(), getConfigFileName())
			}
		}

		level := VConfig.GetString(LogLevel)
		if err := logging.UpdateLogLevels(level); err != nil {
			logger.SysErrorf("Failed updating log level %s: %+v", level, err)
			loadErr = err
			return
		}
	})

	return loadErr
}

// ResetConfig discards all loaded settings and reloads from scratch.
// Intended for tests only.
func ResetConfig() {
	VConfig = nil
	once = sync.Once{}
	loadOnce = sync.Once{}
	loadErr = nil
	Init()
	_ = Load()
}

// GetResolverPrefix returns the configured resolver prefix.
func GetResolverPrefix() string {
	Init()
	return VConfig.GetString(ResolverPrefix)
}

// GetResolverEnvFiles returns the configured .env files, in load order.
func GetResolverEnvFiles() []string {
	Init()
	return VConfig.GetStringSlice(ResolverEnvFiles)
}
