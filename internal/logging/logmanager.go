//
//  Copyright © Manetu Inc. All rights reserved.
//

package logging

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// LogManager keeps track of all instantiated loggers
type LogManager struct {
	loggers  map[string]*Logger
	explicit map[string]bool
	defLevel zapcore.Level
}

// Manager's singleton variables
var (
	manager *LogManager
	mu      sync.RWMutex
	once    sync.Once
)

// resetForTesting resets the manager state - only for testing
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	manager = nil
	once = sync.Once{}
}

func initManager() {
	manager = &LogManager{
		loggers:  make(map[string]*Logger),
		explicit: make(map[string]bool),
		defLevel: zapcore.InfoLevel,
	}
}

// GetLogger returns a logger for the specified module
func GetLogger(module string) *Logger {
	once.Do(initManager)

	mu.RLock()
	aLogger := manager.loggers[module]
	mu.RUnlock()
	if aLogger != nil {
		return aLogger
	}

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if aLogger := manager.loggers[module]; aLogger != nil {
		return aLogger
	}

	aLogger = newLogger(module)
	aLogger.SetLevel(manager.defLevel)
	manager.loggers[module] = aLogger

	return aLogger
}

// parseLevel converts a level name to zapcore.Level. "trace" maps to debug.
func parseLevel(levelStr string) (zapcore.Level, error) {
	switch strings.ToLower(levelStr) {
	case "panic":
		return zapcore.PanicLevel, nil
	case "fatal":
		return zapcore.FatalLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "debug", "trace":
		return zapcore.DebugLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level '%s'", levelStr)
	}
}

// UpdateLogLevels updates log levels from a string of the form:
// "mod1:debug;mod2:error;.:info"
//
// The "." module sets the default for every logger without an explicit
// level. Whitespace is ignored. Entries that are not module:level pairs are
// skipped; an unknown level name is an error and leaves all levels untouched.
func UpdateLogLevels(logstr string) error {
	once.Do(initManager)

	logstr = strings.Join(strings.Fields(logstr), "")

	type entry struct {
		module string
		level  zapcore.Level
	}
	var entries []entry
	for _, l := range strings.Split(logstr, ";") {
		mod, levelStr, ok := strings.Cut(l, ":")
		if !ok || mod == "" {
			continue
		}
		level, err := parseLevel(levelStr)
		if err != nil {
			return err
		}
		entries = append(entries, entry{module: mod, level: level})
	}

	mu.Lock()
	defer mu.Unlock()

	hasDefault := false
	for _, e := range entries {
		if e.module == "." {
			manager.defLevel = e.level
			hasDefault = true
			continue
		}
		manager.explicit[e.module] = true
		aLogger := manager.loggers[e.module]
		if aLogger == nil {
			aLogger = newLogger(e.module)
			manager.loggers[e.module] = aLogger
		}
		aLogger.SetLevel(e.level)
	}

	if hasDefault {
		for mod, aLogger := range manager.loggers {
			if !manager.explicit[mod] {
				aLogger.SetLevel(manager.defLevel)
			}
		}
	}

	return nil
}
