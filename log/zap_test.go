/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger(t *testing.T) {
	t.Run("With Info level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.Info("test info")
		logger.Debug("test debug")

		lines := bytes.Split(bytes.TrimSpace(buffer.Bytes()), []byte("\n"))
		require.Len(t, lines, 1)

		entry := make(map[string]any)
		require.NoError(t, json.Unmarshal(lines[0], &entry))
		assert.Equal(t, "test info", entry["msg"])
		assert.Equal(t, "info", entry["level"])

		assert.Equal(t, InfoLevel, logger.LogLevel())
		assert.True(t, logger.Enabled(InfoLevel))
		assert.False(t, logger.Enabled(DebugLevel))
		require.Len(t, logger.LogOutput(), 1)
		assert.NotNil(t, logger.StdLogger())
		require.NoError(t, logger.Flush())
	})
	t.Run("With formatted Warn level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(WarningLevel, buffer)
		logger.Infof("dropped %d", 1)
		logger.Warnf("group %s is empty", "workers")

		entry := make(map[string]any)
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(buffer.Bytes()), &entry))
		assert.Equal(t, "group workers is empty", entry["msg"])
		assert.Equal(t, "warn", entry["level"])
		assert.Equal(t, WarningLevel, logger.LogLevel())
	})
	t.Run("With fields", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(DebugLevel, buffer).With("distributor", "workers", "subscribers", 3, "cause", errors.New("boom"))
		logger.Debug("routed")

		entry := make(map[string]any)
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(buffer.Bytes()), &entry))
		assert.Equal(t, "routed", entry["msg"])
		assert.Equal(t, "workers", entry["distributor"])
		assert.EqualValues(t, 3, entry["subscribers"])
		assert.Equal(t, "boom", entry["cause"])
	})
	t.Run("With empty fields", func(t *testing.T) {
		logger := NewZap(InfoLevel, new(bytes.Buffer))
		assert.Same(t, logger, logger.With())
	})
	t.Run("With Error level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(ErrorLevel, buffer)
		logger.Warn("skipped")
		logger.Errorf("failed %s", "delivery")
		assert.Contains(t, buffer.String(), "failed delivery")
		assert.NotContains(t, buffer.String(), "skipped")
		assert.Equal(t, ErrorLevel, logger.LogLevel())
	})
	t.Run("With Panic level", func(t *testing.T) {
		logger := NewZap(PanicLevel, new(bytes.Buffer))
		assert.Panics(t, func() { logger.Panic("boom") })
		assert.Panics(t, func() { logger.Panicf("boom %d", 1) })
	})
}

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger
	logger.Debug("a")
	logger.Debugf("%s", "a")
	logger.Info("a")
	logger.Infof("%s", "a")
	logger.Warn("a")
	logger.Warnf("%s", "a")
	logger.Error("a")
	logger.Errorf("%s", "a")

	assert.Equal(t, InfoLevel, logger.LogLevel())
	assert.False(t, logger.Enabled(ErrorLevel))
	assert.True(t, logger.Enabled(PanicLevel))
	assert.Equal(t, logger, logger.With("key", "value"))
	assert.NotNil(t, logger.StdLogger())
	assert.Len(t, logger.LogOutput(), 1)
	assert.NoError(t, logger.Flush())
	assert.Panics(t, func() { logger.Panic("a") })
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "INVALID", InvalidLevel.String())
	assert.Equal(t, "INVALID", Level(-1).String())
}
