// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package restore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/windows/registry"
)

func testExec(conn connection.Connection) *Exec {
	return &Exec{Conn: conn, Dir: filepath.Join("/backup", "host1", "Test")}
}

func TestCopyFileAction(t *testing.T) {
	conn := connection.NewMock()
	x := testExec(conn)
	require.NoError(t, afero.WriteFile(conn.FS(), x.Path("app.conf"), []byte("config"), 0o644))

	action := CopyFileAction{Source: "app.conf", Dest: filepath.Join("/etc", "app", "app.conf")}

	ok, err := action.Exists(x)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, action.Run(context.Background(), x))

	data, err := afero.ReadFile(conn.FS(), action.Dest)
	require.NoError(t, err)
	assert.Equal(t, "config", string(data))
}

func TestCopyDirAction(t *testing.T) {
	conn := connection.NewMock()
	x := testExec(conn)
	fs := conn.FS()
	require.NoError(t, afero.WriteFile(fs, x.Path("profile", "settings.json"), []byte("{}"), 0o644))
	require.NoError(t, afero.WriteFile(fs, x.Path("profile", "state.tmp"), []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fs, x.Path("profile", "Cache", "blob"), []byte("x"), 0o644))

	action := CopyDirAction{
		Source:  "profile",
		Dest:    filepath.Join("/home", "user", "profile"),
		Exclude: []string{"*.tmp", "Cache"},
	}
	require.NoError(t, action.Run(context.Background(), x))

	exists, _ := afero.Exists(fs, filepath.Join(action.Dest, "settings.json"))
	assert.True(t, exists, "settings.json is copied")
	exists, _ = afero.Exists(fs, filepath.Join(action.Dest, "state.tmp"))
	assert.False(t, exists, "excluded file is not copied")
	exists, _ = afero.DirExists(fs, filepath.Join(action.Dest, "Cache"))
	assert.False(t, exists, "excluded directory is skipped entirely")
}

func TestImportRegistryAction(t *testing.T) {
	conn := connection.NewMock()
	x := testExec(conn)
	fs := conn.FS()
	require.NoError(t, afero.WriteFile(fs, x.Path("Registry", "keyboard.reg"), []byte("Windows Registry Editor"), 0o644))
	require.NoError(t, afero.WriteFile(fs, x.Path("Registry", "layout.reg"), []byte("Windows Registry Editor"), 0o644))
	require.NoError(t, afero.WriteFile(fs, x.Path("Registry", "notes.txt"), []byte("ignored"), 0o644))

	conn.AddCommand(&connection.MockCommand{Command: registry.ImportCmd(x.Path("Registry", "keyboard.reg"))})
	conn.AddCommand(&connection.MockCommand{Command: registry.ImportCmd(x.Path("Registry", "layout.reg"))})

	action := ImportRegistryAction{Source: "Registry"}

	ok, err := action.Exists(x)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, action.Run(context.Background(), x))
	assert.Len(t, conn.Executed, 2, "only .reg files are imported")
}

func TestImportRegistryActionNoFiles(t *testing.T) {
	conn := connection.NewMock()
	x := testExec(conn)
	require.NoError(t, conn.FS().MkdirAll(x.Path("Registry"), 0o755))

	action := ImportRegistryAction{Source: "Registry"}
	ok, err := action.Exists(x)
	require.NoError(t, err)
	assert.False(t, ok, "an empty directory holds no artifact")
}

func TestSetRegistryAction(t *testing.T) {
	conn := connection.NewMock()
	x := testExec(conn)

	action := SetRegistryAction{
		Key:  `HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Control\Terminal Server`,
		Name: "fDenyTSConnections",
		Kind: "REG_DWORD",
		Data: "0",
	}
	conn.AddCommand(&connection.MockCommand{
		Command: registry.AddValueCmd(action.Key, action.Name, action.Kind, action.Data),
	})

	ok, err := action.Exists(x)
	require.NoError(t, err)
	assert.True(t, ok, "direct registry writes have no artifact and always run")

	require.NoError(t, action.Run(context.Background(), x))
	require.Len(t, conn.Executed, 1)
	assert.Contains(t, conn.Executed[0], "fDenyTSConnections")
}

func TestToolAction(t *testing.T) {
	conn := connection.NewMock()
	x := testExec(conn)

	action := ToolAction{
		Artifact: "associations.xml",
		Cmd: func(dir string) string {
			return "dism.exe /Online /Import-DefaultAppAssociations:\"" + filepath.Join(dir, "associations.xml") + "\""
		},
	}

	ok, err := action.Exists(x)
	require.NoError(t, err)
	assert.False(t, ok, "missing artifact gates the action")

	require.NoError(t, afero.WriteFile(conn.FS(), x.Path("associations.xml"), []byte("<xml/>"), 0o644))
	ok, err = action.Exists(x)
	require.NoError(t, err)
	assert.True(t, ok)

	// unknown command reports exit status 1
	err = action.Run(context.Background(), x)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command not found")

	conn.AddCommand(&connection.MockCommand{Command: action.Cmd(x.Dir)})
	assert.NoError(t, action.Run(context.Background(), x))
}
