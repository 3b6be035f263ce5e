// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reporter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"go.mondoo.com/cnrestore/restore"
)

type cliReporter struct {
	*Reporter
	isCompact bool
	out       io.Writer
	data      []*restore.Result
}

func (r *cliReporter) print() error {
	if len(r.data) == 0 {
		return nil
	}

	if !r.isCompact {
		for i := range r.data {
			r.printResult(r.data[i])
		}
	}

	r.printSummary()
	return nil
}

func (r *cliReporter) printSummary() {
	r.out.Write([]byte(r.Theme.H1("Summary (" + strconv.Itoa(len(r.data)) + " features)")))

	for _, res := range r.data {
		glyph := r.Theme.Success("✓")
		if !res.Success {
			glyph = r.Theme.Error("✕")
		}
		r.out.Write([]byte(fmt.Sprintf("%s %-12s %s\n", glyph, res.Feature, r.summaryLine(res))))
	}
	r.out.Write([]byte("\n"))
}

func (r *cliReporter) summaryLine(res *restore.Result) string {
	line := fmt.Sprintf("%s %d items", opVerb(res), len(res.Restored))
	if len(res.Skipped) > 0 {
		line += fmt.Sprintf(", skipped %d", len(res.Skipped))
	}
	if len(res.Errors) > 0 {
		line += ", " + r.Theme.Error(fmt.Sprintf("%d errors", len(res.Errors)))
	}
	if res.BackupPath != "" {
		line += " (" + res.BackupPath + ")"
	}
	return line
}

func (r *cliReporter) printResult(res *restore.Result) {
	r.out.Write([]byte(r.Theme.H2(res.Feature)))

	if res.BackupPath != "" {
		r.out.Write([]byte("Backup:    " + res.BackupPath + "\n"))
	}
	r.out.Write([]byte("Time:      " + res.Timestamp.Format(time.RFC3339) + "\n\n"))

	for _, a := range res.Actions {
		r.out.Write([]byte(r.Theme.Secondary("  "+a) + "\n"))
	}
	for _, s := range res.Skipped {
		r.out.Write([]byte(r.Theme.Disabled("  skipped "+s) + "\n"))
	}
	for _, e := range res.Errors {
		r.out.Write([]byte(r.Theme.Error("  "+e) + "\n"))
	}
	r.out.Write([]byte("\n"))
}

// opVerb names what the run did, matching direction and dry-run mode.
func opVerb(res *restore.Result) string {
	switch {
	case res.Op == restore.OpBackup && res.DryRun:
		return "would back up"
	case res.Op == restore.OpBackup:
		return "backed up"
	case res.DryRun:
		return "would restore"
	default:
		return "restored"
	}
}
