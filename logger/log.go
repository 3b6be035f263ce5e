// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mondoo.com/cnrestore/logger/eventlog"
)

// LogOutputWriter is the shared output for all CLI logging. It buffers log
// lines while a summary is being printed, so restore results never
// interleave with log output.
var LogOutputWriter = NewBufferedWriter(os.Stderr)

func init() {
	Set("info")
	// uses the cli logger by default
	CliNoColorLogger(LogOutputWriter)
}

// Set the global log level: error, warn, info, debug, trace
func Set(level string) {
	switch strings.ToLower(level) {
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	default:
		log.Warn().Str("level", level).Msg("unknown log level, falling back to info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// GetEnvLogLevel reads the log level from the environment. DEBUG and TRACE
// override LOG_LEVEL / CNRESTORE_LOG_LEVEL.
func GetEnvLogLevel() (string, bool) {
	if isTruthy(os.Getenv("TRACE")) {
		return "trace", true
	}
	if isTruthy(os.Getenv("DEBUG")) {
		return "debug", true
	}
	if v := os.Getenv("CNRESTORE_LOG_LEVEL"); v != "" {
		return v, true
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		return v, true
	}
	return "", false
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// UseJSONLogging writes machine-readable logs, one JSON object per line
func UseJSONLogging(out io.Writer) {
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// UseEventlogLogging sends logs to the Windows event log, for unattended
// runs where no console session survives. Only supported on windows.
func UseEventlogLogging(svcName string) error {
	w, err := eventlog.NewEventlogWriter(svcName)
	if err != nil {
		return err
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

// CliLogger configures colored console output
func CliLogger(out io.Writer) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})
}

// CliNoColorLogger configures console output without colors
func CliNoColorLogger(out io.Writer) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, NoColor: true})
}

// CliCompactLogger configures the compact console output used by default:
// no timestamps and short, themed level indicators
func CliCompactLogger(out io.Writer) {
	log.Logger = NewConsoleWriter(out, true)
}

// InitTestEnv will set all log configurations for a test environment:
// verbose and colorful
func InitTestEnv() {
	Set("debug")
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
