// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package backup exports live Windows subsystem configuration into the
// backup store. It reuses the restore engine: same item filtering, same
// force and dry-run semantics, same result contract. Backups always
// target the machine-specific directory, which is created on demand.
package backup

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/restore"
)

// Engine writes feature backups for one system connection.
type Engine struct {
	Conn    connection.Connection
	Loc     restore.Location
	Include []string
	Exclude []string
	Force   bool
	DryRun  bool
}

func New(conn connection.Connection, loc restore.Location) *Engine {
	return &Engine{Conn: conn, Loc: loc}
}

// Run processes a feature's backup plan into the machine-specific
// directory of the backup store.
func (e *Engine) Run(ctx context.Context, plan restore.Plan) (*restore.Result, error) {
	dir := e.Loc.MachineDir(plan.Subdir)

	if !e.DryRun {
		if err := e.Conn.FS().MkdirAll(dir, 0o755); err != nil {
			err = errors.Wrapf(err, "could not create backup directory %s", dir)
			log.Error().Err(err).Str("feature", plan.Feature).Msg("backup failed")
			res := restore.NewResult(restore.OpBackup, plan.Feature)
			res.AddError(err.Error())
			return res.Finalize(), err
		}
	}

	inner := &restore.Engine{
		Conn:    e.Conn,
		Loc:     e.Loc,
		Include: e.Include,
		Exclude: e.Exclude,
		Force:   e.Force,
		DryRun:  e.DryRun,
		Op:      restore.OpBackup,
	}
	return inner.RunAt(ctx, plan, dir)
}
