// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package features defines the catalog of Windows subsystems this tool
// can back up and restore: which registry keys, files and OS tools make
// up each feature, and which services have to pause while it is written.
package features

import (
	"strings"

	"go.mondoo.com/cnrestore/restore"
)

// Feature describes one Windows subsystem.
type Feature struct {
	// Name is the catalog name, matched case-insensitively.
	Name string
	// Subdir is the feature's directory inside a backup location.
	Subdir string
	// Services pause while the feature is written.
	Services []string
	// Restore and Backup are the item sets for the two directions.
	Restore []restore.Item
	Backup  []restore.Item
}

// RestorePlan returns the plan the restore engine consumes.
func (f Feature) RestorePlan() restore.Plan {
	return restore.Plan{Feature: f.Name, Subdir: f.Subdir, Services: f.Services, Items: f.Restore}
}

// BackupPlan returns the plan the backup engine consumes.
func (f Feature) BackupPlan() restore.Plan {
	return restore.Plan{Feature: f.Name, Subdir: f.Subdir, Services: f.Services, Items: f.Backup}
}

// All returns the full catalog, alphabetically.
func All(env Env, opts Options) []Feature {
	return []Feature{
		Browsers(env, opts.Browsers),
		DefaultApps(),
		Keyboard(),
		Network(),
		Power(),
		RDP(env),
		Sound(),
		SSH(env),
		Terminal(env),
		Word(env, opts.Word),
		WSL(env, opts.WSL),
	}
}

// Find looks a feature up by name, case-insensitively.
func Find(features []Feature, name string) (Feature, bool) {
	for i := range features {
		if strings.EqualFold(features[i].Name, name) {
			return features[i], true
		}
	}
	return Feature{}, false
}

// Names returns the catalog names in order.
func Names(features []Feature) []string {
	names := make([]string, len(features))
	for i := range features {
		names[i] = features[i].Name
	}
	return names
}
