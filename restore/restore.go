// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package restore orchestrates the restoration of Windows subsystem
// configuration from a backup store. Every feature follows the same
// contract: resolve the backup directory (machine-specific first, shared
// second), filter the feature's items, run each item's action with
// per-item error capture, and report a uniform result.
package restore

import (
	"context"
	"path/filepath"

	"go.mondoo.com/cnrestore/connection"
)

// Item is the smallest named unit within a feature's restore or backup
// set, e.g. "Registry" or "Connections".
type Item struct {
	Name   string
	Action Action
}

// Plan is everything the engine needs to process one feature.
type Plan struct {
	// Feature is the display name, e.g. "Sound".
	Feature string
	// Subdir is the feature's directory name inside a backup location.
	Subdir string
	// Services lists Windows services to stop before the run and start
	// again afterwards.
	Services []string
	// Items are processed in order.
	Items []Item
}

// Exec is the execution context handed to actions: the connection to the
// system, the resolved backup directory and the dry-run switch.
type Exec struct {
	Conn   connection.Connection
	Dir    string
	DryRun bool
}

// Path resolves a backup artifact path relative to the backup directory.
func (x *Exec) Path(parts ...string) string {
	return filepath.Join(append([]string{x.Dir}, parts...)...)
}

// Action is one restore or backup step. Describe and Exists must not
// mutate the system.
type Action interface {
	// Describe returns a one-line summary of what Run would do.
	Describe(x *Exec) string
	// Exists reports whether the data the action consumes is present: the
	// backup artifact for restore actions, the live state for backup
	// actions. Items without data are skipped, they do not fail.
	Exists(x *Exec) (bool, error)
	// Run performs the action.
	Run(ctx context.Context, x *Exec) error
}
