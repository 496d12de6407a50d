/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package log provides the process logger.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LevelEnv names the environment variable read by Get to set the log level.
const LevelEnv = "GQLSYNTAX_LOGLEVEL"

type (
	Fields      = logrus.Fields
	FieldLogger = logrus.FieldLogger
	Level       = logrus.Level
)

var log = logrus.New()

func init() {
	log.Formatter = NewFormatter("")
}

// Get returns the process logger with its level refreshed from GQLSYNTAX_LOGLEVEL.
func Get() *logrus.Logger {
	log.Level = ParseLevel(os.Getenv(LevelEnv))
	return log
}

// ParseLevel maps one of "debug", "info", "warn" and "error" to a logrus level. Anything else is
// info.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "error":
		return logrus.ErrorLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// NewFormatter returns a JSON formatter for "json" and a text formatter with full timestamps
// otherwise.
func NewFormatter(format string) logrus.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		}
	default:
		return &logrus.TextFormatter{
			TimestampFormat: "Jan 02 15:04:05",
			FullTimestamp:   true,
			DisableColors:   true,
		}
	}
}

// New creates a standalone logger writing to w. Tests use it to capture output.
func New(w io.Writer, level Level) *logrus.Logger {
	logger := logrus.New()
	logger.Out = w
	logger.Formatter = NewFormatter("")
	logger.Level = level
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	return New(io.Discard, logrus.PanicLevel)
}

// WithPrefix tags entries of logger with the component name.
func WithPrefix(logger FieldLogger, prefix string) *logrus.Entry {
	return logger.WithField("prefix", prefix)
}
