// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package restore

import "time"

// Op is the direction of a run.
type Op string

const (
	OpRestore Op = "restore"
	OpBackup  Op = "backup"
)

// Result is the outcome of processing one feature. Restore and backup
// runs report through the same contract. Callers must treat a finalized
// result as immutable.
type Result struct {
	Op         Op        `json:"op" yaml:"op"`
	Feature    string    `json:"feature" yaml:"feature"`
	BackupPath string    `json:"backupPath,omitempty" yaml:"backupPath,omitempty"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
	// Restored lists the items the run completed. For dry runs these are
	// the items that would have been processed.
	Restored []string `json:"restored" yaml:"restored"`
	// Skipped lists items without backup data and items that failed.
	Skipped []string `json:"skipped" yaml:"skipped"`
	// Actions describes every performed (or, for dry runs, planned)
	// mutation.
	Actions []string `json:"actions,omitempty" yaml:"actions,omitempty"`
	Errors  []string `json:"errors" yaml:"errors"`
	// Success is true iff Errors is empty, regardless of force mode.
	Success bool `json:"success" yaml:"success"`
	DryRun  bool `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
}

func NewResult(op Op, feature string) *Result {
	return &Result{
		Op:        op,
		Feature:   feature,
		Timestamp: time.Now(),
		Restored:  []string{},
		Skipped:   []string{},
		Errors:    []string{},
	}
}

// AddError records an error message. The success flag is recomputed on
// Finalize.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// Finalize computes the success flag and returns the result.
func (r *Result) Finalize() *Result {
	r.Success = len(r.Errors) == 0
	return r
}
