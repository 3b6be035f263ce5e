// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package logger

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const RunIDFieldKey = "run-id"

var GlobalLogger = log.With().Str(RunIDFieldKey, "global").Logger()

// RunScopedContext returns a context carrying a logger that tags every line
// with the given run ID. Each feature restore/backup gets its own run ID so
// interleaved output stays attributable.
//
//	ctx := RunScopedContext(context.Background(), "")
//	log := FromContext(ctx)
//	log.Debug().Msg("resolving backup path")
func RunScopedContext(ctx context.Context, runID string) context.Context {
	if runID == "" {
		runID = uuid.New().String()
	}
	l := log.With().Str(RunIDFieldKey, runID).Logger()
	return l.WithContext(ctx)
}

// FromContext returns the logger in the context if present, otherwise it
// returns the global logger
func FromContext(ctx context.Context) *zerolog.Logger {
	l := log.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		// If a context logger was not set, we'll return our global
		// logger instead of the default noop logger
		return &GlobalLogger
	}
	return l
}
