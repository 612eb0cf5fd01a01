// SPDX-License-Identifier: Apache-2.0

package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	loglib "github.com/xia-xiao/appinsights-go/pkg/log"
)

type Config struct {
	LogLevel string
}

// NewDiagnosticsLogger creates a logger suitable for SDK diagnostics,
// writing human-readable entries to stderr at the configured level. An
// unparseable or empty level defaults to no level filtering.
func NewDiagnosticsLogger(config *Config) loglib.Logger {
	return NewLogger(newLogger(config, os.Stderr))
}

func newLogger(config *Config, out io.Writer) *zerolog.Logger {
	// ignore the error, it defaults to no level
	level, _ := zerolog.ParseLevel(config.LogLevel)
	cw := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.TimeFormat = time.RFC3339Nano
	})

	logger := zerolog.New(cw).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &logger
}
