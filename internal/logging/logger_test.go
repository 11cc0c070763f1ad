//
//  Copyright © Manetu Inc. All rights reserved.
//

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLogging(t *testing.T) {
	logger := newLogger("testmodule")
	var buffer bytes.Buffer
	logger.SetOut(&buffer)
	logger.SetLevel(zapcore.InfoLevel)

	assert.True(t, logger.IsLevelEnabled(zapcore.InfoLevel))
	assert.False(t, logger.IsLevelEnabled(zapcore.DebugLevel))
	assert.False(t, logger.IsDebugEnabled())

	actorID := "tester"
	actionID := "resolve"

	logger.Debug(actorID, actionID, "debug message")
	logger.Debugf(actorID, actionID, "debug message %s", "hello")
	assert.Empty(t, buffer.Bytes())

	buffer.Reset()
	logger.Info(actorID, actionID, "info message")
	assert.Contains(t, buffer.String(), `"module":"testmodule"`)
	assert.Contains(t, buffer.String(), `"action":"resolve"`)
	buffer.Reset()
	logger.Infof(actorID, actionID, "info message %s", "hello")
	assert.Contains(t, buffer.String(), "info message hello")
	buffer.Reset()
	logger.Warn(actorID, actionID, "warning message")
	assert.NotEmpty(t, buffer.Bytes())
	buffer.Reset()
	logger.Warnf(actorID, actionID, "warning message %s", "hello")
	assert.NotEmpty(t, buffer.Bytes())
	buffer.Reset()
	logger.Error(actorID, actionID, "error message")
	assert.NotEmpty(t, buffer.Bytes())
	buffer.Reset()
	logger.Errorf(actorID, actionID, "error message %s", "hello")
	assert.NotEmpty(t, buffer.Bytes())
}

func TestSysLogging(t *testing.T) {
	logger := newLogger("testsysmodule")
	var buffer bytes.Buffer
	logger.SetOut(&buffer)

	logger.SetLevel(zapcore.ErrorLevel)
	assert.True(t, logger.IsLevelEnabled(zapcore.ErrorLevel))
	assert.False(t, logger.IsLevelEnabled(zapcore.WarnLevel))

	logger.SysDebug("debug message")
	logger.SysDebugf("debug message %s", "hello")
	logger.SysInfo("info message")
	logger.SysInfof("info message %s", "hello")
	logger.SysWarn("warning message")
	logger.SysWarnf("warning message %s", "hello")
	assert.Empty(t, buffer.Bytes())

	logger.SysError("error message")
	assert.Contains(t, buffer.String(), `"actor":"sys"`)
	buffer.Reset()
	logger.SysErrorf("error message %s", "hello")
	assert.NotEmpty(t, buffer.Bytes())
}

func TestTextFormatter(t *testing.T) {
	t.Setenv("LOG_FORMATTER", "text")

	logger := newLogger("textmodule")
	var buffer bytes.Buffer
	logger.SetOut(&buffer)

	logger.SysInfo("plain message")
	assert.Contains(t, buffer.String(), "plain message")
	assert.NotContains(t, buffer.String(), `"msg"`)
}
