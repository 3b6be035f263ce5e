// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package restore

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/logger"
	"go.mondoo.com/cnrestore/windows/services"
)

// Engine processes feature plans against one system connection.
type Engine struct {
	Conn connection.Connection
	Loc  Location
	// Include restricts processing to the named items, Exclude then
	// removes items. An empty Include means all items are eligible.
	Include []string
	Exclude []string
	// Force continues with the remaining items after an item failed.
	Force bool
	// DryRun reports would-be actions without mutating anything.
	DryRun bool
	// Op tags results; the backup engine flips it.
	Op Op
}

func New(conn connection.Connection, loc Location) *Engine {
	return &Engine{Conn: conn, Loc: loc, Op: OpRestore}
}

func (e *Engine) op() Op {
	if e.Op == "" {
		return OpRestore
	}
	return e.Op
}

// Run resolves the backup directory for the plan's feature and processes
// its items. A missing backup location is fatal for the feature. The
// returned error aggregates everything that went wrong; the result
// carries the same failures as messages.
func (e *Engine) Run(ctx context.Context, plan Plan) (*Result, error) {
	dir, err := e.Loc.Resolve(e.Conn.FS(), plan.Subdir)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("feature", plan.Feature).Msg("could not resolve backup location")
		res := NewResult(e.op(), plan.Feature)
		res.DryRun = e.DryRun
		res.AddError(err.Error())
		return res.Finalize(), err
	}
	return e.RunAt(ctx, plan, dir)
}

// RunAt processes a plan against an already-resolved backup directory.
func (e *Engine) RunAt(ctx context.Context, plan Plan, dir string) (*Result, error) {
	res := NewResult(e.op(), plan.Feature)
	res.BackupPath = dir
	res.DryRun = e.DryRun

	// runs are tagged with the caller's run id
	log := logger.FromContext(ctx)
	x := &Exec{Conn: e.Conn, Dir: dir, DryRun: e.DryRun}
	items := Filter(plan.Items, e.Include, e.Exclude)
	log.Debug().
		Str("op", string(res.Op)).
		Str("feature", plan.Feature).
		Str("connection", e.Conn.Name()).
		Str("path", dir).
		Int("items", len(items)).
		Msg("processing feature")

	if len(plan.Services) > 0 {
		if e.DryRun {
			log.Info().Strs("services", plan.Services).Msg("dry-run> would stop and restart services")
		} else {
			mgr := services.NewManager(e.Conn)
			stopped := stopServices(mgr, plan.Services)
			// services we stopped come back up even when the run aborts
			defer startServices(mgr, stopped)
		}
	}

	var errs *multierror.Error
	for i := range items {
		item := items[i]

		if err := ctx.Err(); err != nil {
			res.AddError(err.Error())
			errs = multierror.Append(errs, err)
			break
		}

		ok, err := item.Action.Exists(x)
		if err == nil && !ok {
			log.Debug().Str("item", item.Name).Msg("no data for item, skipping")
			res.Skipped = append(res.Skipped, item.Name)
			continue
		}

		if err == nil {
			if e.DryRun {
				desc := item.Action.Describe(x)
				log.Info().Str("item", item.Name).Msg("dry-run> " + desc)
				res.Actions = append(res.Actions, desc)
				res.Restored = append(res.Restored, item.Name)
				continue
			}
			err = item.Action.Run(ctx, x)
		}

		if err != nil {
			err = errors.Wrap(err, item.Name)
			log.Error().Err(err).Str("feature", plan.Feature).Str("item", item.Name).Msg("item failed")
			res.AddError(err.Error())
			res.Skipped = append(res.Skipped, item.Name)
			errs = multierror.Append(errs, err)
			if !e.Force {
				log.Warn().Str("feature", plan.Feature).Msg("aborting, use force to continue after item failures")
				break
			}
			continue
		}

		res.Actions = append(res.Actions, item.Action.Describe(x))
		res.Restored = append(res.Restored, item.Name)
		log.Info().Str("op", string(res.Op)).Str("feature", plan.Feature).Str("item", item.Name).Msg("item done")
	}

	return res.Finalize(), errs.ErrorOrNil()
}

// stopServices stops every service it can and returns the names of the
// ones that were stopped. Failures are logged only, they never abort.
func stopServices(mgr *services.Manager, names []string) []string {
	stopped := make([]string, 0, len(names))
	for _, name := range names {
		if err := mgr.Stop(name); err != nil {
			log.Warn().Err(err).Str("service", name).Msg("could not stop service")
			continue
		}
		log.Debug().Str("service", name).Msg("stopped service")
		stopped = append(stopped, name)
	}
	return stopped
}

func startServices(mgr *services.Manager, names []string) {
	for _, name := range names {
		if err := mgr.Start(name); err != nil {
			log.Warn().Err(err).Str("service", name).Msg("could not start service")
			continue
		}
		log.Debug().Str("service", name).Msg("started service")
	}
}
