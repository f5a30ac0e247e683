/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package log provides the structured zap logger shared by all components.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *Logger
	level  = zap.NewAtomicLevel()
	once   sync.Once
)

// Logger is a wrapper around the zap logger. Loggers derived with With share the level of their parent.
type Logger struct {
	internal *zap.Logger
}

// GetLogger returns the process logger, configured from LOG_LEVEL and LOG_FORMAT on first use.
func GetLogger() *Logger {
	once.Do(func() {
		if err := SetLevel(os.Getenv(LogLevelEnvironmentVariable)); err != nil {
			panic("Failed to initialize logger: " + err.Error())
		}
		l, err := newLogger(os.Getenv(LogFormatEnvironmentVariable), zapcore.Lock(os.Stdout), level)
		if err != nil {
			panic("Failed to initialize logger: " + err.Error())
		}
		logger = l
	})
	return logger
}

// SetLevel changes the level of every logger obtained from GetLogger. An empty value selects info.
func SetLevel(logLevel string) error {
	parsed, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	level.SetLevel(parsed)
	return nil
}

func parseLevel(logLevel string) (zapcore.Level, error) {
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}
	parsed, err := zapcore.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	return parsed, nil
}

// newLogger builds a zap logger writing the given format to out.
func newLogger(format string, out zapcore.WriteSyncer, enabler zapcore.LevelEnabler) (*Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(format) {
	case "", FormatConsole:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}

	core := zapcore.NewCore(encoder, out, enabler)
	return &Logger{
		internal: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
	}, nil
}

// NewWriterLogger returns a logger writing JSON lines to w at the given level. Used in tests that
// inspect log output.
func NewWriterLogger(w io.Writer, logLevel string) (*Logger, error) {
	parsed, err := parseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	return newLogger(FormatJSON, zapcore.AddSync(w), parsed)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{internal: zap.NewNop()}
}

// With creates a child logger carrying the additional fields.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{internal: l.internal.With(fields...)}
}

// IsDebugEnabled reports whether debug entries are written.
func (l *Logger) IsDebugEnabled() bool {
	return l.internal.Core().Enabled(zapcore.DebugLevel)
}

// Info logs an informational message with custom fields.
func (l *Logger) Info(msg string, fields ...Field) {
	l.internal.Info(msg, fields...)
}

// Debug logs a debug message with custom fields.
func (l *Logger) Debug(msg string, fields ...Field) {
	l.internal.Debug(msg, fields...)
}

// Warn logs a warning message with custom fields.
func (l *Logger) Warn(msg string, fields ...Field) {
	l.internal.Warn(msg, fields...)
}

// Error logs an error message with custom fields.
func (l *Logger) Error(msg string, fields ...Field) {
	l.internal.Error(msg, fields...)
}

// Fatal logs a fatal message with custom fields and exits the application.
func (l *Logger) Fatal(msg string, fields ...Field) {
	l.internal.Fatal(msg, fields...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() {
	_ = l.internal.Sync()
}

// MaskString keeps the first and last characters of s and masks the rest. Values of up to three
// characters are masked entirely.
func MaskString(s string) string {
	if len(s) <= 3 {
		return strings.Repeat("*", len(s))
	}
	return s[:1] + strings.Repeat("*", len(s)-2) + s[len(s)-1:]
}
