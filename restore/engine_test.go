// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package restore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/windows/powershell"
)

// testPlan carries one good item (A), one failing item (B) and one good
// item (C) so tests can observe force and abort behavior.
func testPlan() Plan {
	return Plan{
		Feature: "Test",
		Subdir:  "Test",
		Items: []Item{
			{Name: "A", Action: CopyFileAction{Source: "a.conf", Dest: filepath.Join("/etc", "a.conf")}},
			{Name: "B", Action: ToolAction{Cmd: func(dir string) string { return "broken.exe /import " + dir }}},
			{Name: "C", Action: CopyFileAction{Source: "c.conf", Dest: filepath.Join("/etc", "c.conf")}},
		},
	}
}

func setupBackup(t *testing.T, conn *connection.Mock) {
	t.Helper()
	dir := filepath.Join("/backup", "host1", "Test")
	require.NoError(t, afero.WriteFile(conn.FS(), filepath.Join(dir, "a.conf"), []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(conn.FS(), filepath.Join(dir, "c.conf"), []byte("c"), 0o644))
}

func TestRunNoBackup(t *testing.T) {
	conn := connection.NewMock()
	e := New(conn, Location{Root: "/backup", Machine: "host1"})

	res, err := e.Run(context.Background(), testPlan())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoBackup))
	assert.False(t, res.Success)
	assert.Empty(t, res.Restored)
	assert.Len(t, res.Errors, 1)
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	conn := connection.NewMock()
	setupBackup(t, conn)
	e := New(conn, Location{Root: "/backup", Machine: "host1"})

	res, err := e.Run(context.Background(), testPlan())
	require.Error(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, []string{"A"}, res.Restored, "items before the failure are reported")
	assert.Equal(t, []string{"B"}, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "B")

	exists, _ := afero.Exists(conn.FS(), filepath.Join("/etc", "c.conf"))
	assert.False(t, exists, "items after the failure are not processed")
}

func TestRunForceContinues(t *testing.T) {
	conn := connection.NewMock()
	setupBackup(t, conn)
	e := New(conn, Location{Root: "/backup", Machine: "host1"})
	e.Force = true

	res, err := e.Run(context.Background(), testPlan())
	require.Error(t, err)
	assert.False(t, res.Success, "errors keep the run unsuccessful even with force")
	assert.Equal(t, []string{"A", "C"}, res.Restored)
	assert.Equal(t, []string{"B"}, res.Skipped, "the failed item is skipped and recorded")
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "B")

	exists, _ := afero.Exists(conn.FS(), filepath.Join("/etc", "c.conf"))
	assert.True(t, exists, "items after the failure are still processed")
}

func TestRunSkipsMissingArtifacts(t *testing.T) {
	conn := connection.NewMock()
	require.NoError(t, conn.FS().MkdirAll(filepath.Join("/backup", "host1", "Test"), 0o755))
	e := New(conn, Location{Root: "/backup", Machine: "host1"})

	plan := Plan{
		Feature: "Test",
		Subdir:  "Test",
		Items: []Item{
			{Name: "A", Action: CopyFileAction{Source: "a.conf", Dest: filepath.Join("/etc", "a.conf")}},
		},
	}
	res, err := e.Run(context.Background(), plan)
	require.NoError(t, err, "a missing artifact is not an error")
	assert.True(t, res.Success)
	assert.Empty(t, res.Restored)
	assert.Equal(t, []string{"A"}, res.Skipped)
}

func TestRunAppliesFilters(t *testing.T) {
	conn := connection.NewMock()
	setupBackup(t, conn)
	e := New(conn, Location{Root: "/backup", Machine: "host1"})
	e.Include = []string{"a", "c"}
	e.Exclude = []string{"C"}

	res, err := e.Run(context.Background(), testPlan())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"A"}, res.Restored, "B never ran, C is excluded")
}

func TestRunDryRun(t *testing.T) {
	conn := connection.NewMock()
	setupBackup(t, conn)
	e := New(conn, Location{Root: "/backup", Machine: "host1"})
	e.DryRun = true

	plan := testPlan()
	plan.Services = []string{"Audiosrv"}
	res, err := e.Run(context.Background(), plan)
	require.NoError(t, err, "nothing runs, so nothing can fail")
	assert.True(t, res.Success)
	assert.True(t, res.DryRun)
	assert.Equal(t, []string{"A", "B", "C"}, res.Restored)
	assert.Len(t, res.Actions, 3, "every planned mutation is reported")

	assert.Empty(t, conn.Executed, "dry-run must not execute commands")
	exists, _ := afero.Exists(conn.FS(), filepath.Join("/etc", "a.conf"))
	assert.False(t, exists, "dry-run must not copy files")
}

func TestRunServiceLifecycle(t *testing.T) {
	stopCmd := powershell.Encode("Stop-Service -Name 'Audiosrv' -Force -ErrorAction Stop")
	startCmd := powershell.Encode("Start-Service -Name 'Audiosrv' -ErrorAction Stop")

	t.Run("services restart even when the run aborts", func(t *testing.T) {
		conn := connection.NewMock()
		setupBackup(t, conn)
		conn.AddCommand(&connection.MockCommand{Command: stopCmd})
		conn.AddCommand(&connection.MockCommand{Command: startCmd})

		plan := testPlan()
		plan.Services = []string{"Audiosrv"}
		e := New(conn, Location{Root: "/backup", Machine: "host1"})

		_, err := e.Run(context.Background(), plan)
		require.Error(t, err, "item B aborts the run")

		require.NotEmpty(t, conn.Executed)
		assert.Equal(t, stopCmd, conn.Executed[0], "services stop before the first item")
		assert.Equal(t, startCmd, conn.Executed[len(conn.Executed)-1], "services start after the abort")
	})

	t.Run("stop failures never abort the run", func(t *testing.T) {
		conn := connection.NewMock()
		setupBackup(t, conn)

		plan := testPlan()
		plan.Services = []string{"NoSuchService"}
		plan.Items = plan.Items[:1]
		e := New(conn, Location{Root: "/backup", Machine: "host1"})

		res, err := e.Run(context.Background(), plan)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, []string{"A"}, res.Restored)
		assert.Len(t, conn.Executed, 1, "only the failed stop was attempted, no restart")
	})
}

func TestRunSuccessMatchesErrors(t *testing.T) {
	conn := connection.NewMock()
	setupBackup(t, conn)

	for _, force := range []bool{false, true} {
		e := New(conn, Location{Root: "/backup", Machine: "host1"})
		e.Force = force
		res, _ := e.Run(context.Background(), testPlan())
		assert.Equal(t, len(res.Errors) == 0, res.Success, "success must mirror the error list")
	}
}
