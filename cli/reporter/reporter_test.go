// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mondoo.com/cnrestore/cli/theme"
	"go.mondoo.com/cnrestore/restore"
)

func testResults() []*restore.Result {
	good := restore.NewResult(restore.OpRestore, "Keyboard")
	good.BackupPath = "/backups/host1/Keyboard"
	good.Restored = append(good.Restored, "Layouts")
	good.Actions = append(good.Actions, "copy Layouts")

	bad := restore.NewResult(restore.OpRestore, "WSL")
	bad.AddError("Ubuntu: exit 1")
	bad.Skipped = append(bad.Skipped, "Ubuntu")

	return []*restore.Result{good.Finalize(), bad.Finalize()}
}

func TestNew(t *testing.T) {
	r, err := New("compact")
	require.NoError(t, err)
	assert.Equal(t, FormatCompact, r.Format)

	r, err = New("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, r.Format)

	_, err = New("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compact, full, json, yaml")
}

func TestCompactReport(t *testing.T) {
	r, err := New("compact")
	require.NoError(t, err)
	r.Theme = theme.PlainTheme

	var buf bytes.Buffer
	require.NoError(t, r.Print(&buf, testResults()))

	out := buf.String()
	assert.Contains(t, out, "Summary (2 features)")
	assert.Contains(t, out, "restored 1 items (/backups/host1/Keyboard)")
	assert.Contains(t, out, "restored 0 items, skipped 1, 1 errors")
	assert.NotContains(t, out, "copy Layouts", "compact mode hides action details")
}

func TestFullReport(t *testing.T) {
	r, err := New("full")
	require.NoError(t, err)
	r.Theme = theme.PlainTheme

	var buf bytes.Buffer
	require.NoError(t, r.Print(&buf, testResults()))

	out := buf.String()
	assert.Contains(t, out, "copy Layouts")
	assert.Contains(t, out, "skipped Ubuntu")
	assert.Contains(t, out, "Ubuntu: exit 1")
}

func TestOpVerbs(t *testing.T) {
	res := restore.NewResult(restore.OpBackup, "Sound")
	res.DryRun = true
	assert.Equal(t, "would back up", opVerb(res))
	res.DryRun = false
	assert.Equal(t, "backed up", opVerb(res))

	res = restore.NewResult(restore.OpRestore, "Sound")
	res.DryRun = true
	assert.Equal(t, "would restore", opVerb(res))
	res.DryRun = false
	assert.Equal(t, "restored", opVerb(res))
}

func TestJSONReport(t *testing.T) {
	r, err := New("json")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Print(&buf, testResults()))

	var parsed map[string]restore.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	require.Contains(t, parsed, "Keyboard")
	require.Contains(t, parsed, "WSL")
	assert.True(t, parsed["Keyboard"].Success)
	assert.False(t, parsed["WSL"].Success)
	assert.Equal(t, []string{"Ubuntu: exit 1"}, parsed["WSL"].Errors)
}

func TestYAMLReport(t *testing.T) {
	r, err := New("yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Print(&buf, testResults()))

	out := buf.String()
	assert.Contains(t, out, "feature: Keyboard")
	assert.Contains(t, out, "success: true")
	assert.True(t, strings.Contains(out, "---"), "one document per feature")
}
