// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/restore"
	"go.mondoo.com/cnrestore/windows/detector"
	"go.mondoo.com/cnrestore/windows/powershell"
	"go.mondoo.com/cnrestore/windows/wsl"
)

func wslTestAction(env Env) wslImportAction {
	f := WSL(env, WSLOptions{})
	return f.Restore[0].Action.(wslImportAction)
}

func cannedBuild(conn *connection.Mock, build string) {
	conn.AddCommand(&connection.MockCommand{
		Command: powershell.Encode(detector.CurrentVersionScript),
		Stdout:  `{"CurrentBuild": "` + build + `", "UBR": 1}`,
	})
}

func TestWSLImportRefusesOldBuilds(t *testing.T) {
	conn := connection.NewMock()
	cannedBuild(conn, "17134")

	action := wslTestAction(testEnv())
	x := &restore.Exec{Conn: conn, Dir: filepath.Join("/backup", "host1", "WSL")}

	err := action.Run(context.Background(), x)
	require.Error(t, err)
	assert.Contains(t, err.Error(), wsl.MinimumBuild)
	assert.Contains(t, err.Error(), "17134")
}

func TestWSLImportReplacesDistribution(t *testing.T) {
	conn := connection.NewMock()
	cannedBuild(conn, "19045")

	action := wslTestAction(testEnv())
	x := &restore.Exec{Conn: conn, Dir: filepath.Join("/backup", "host1", "WSL")}

	importCmd := wsl.ImportCmd("Ubuntu", action.InstallDir, x.Path("Ubuntu.tar"))
	conn.AddCommand(&connection.MockCommand{Command: wsl.ShutdownCmd()})
	conn.AddCommand(&connection.MockCommand{Command: wsl.ListCmd(), Stdout: "Ubuntu\nDebian"})
	conn.AddCommand(&connection.MockCommand{Command: wsl.UnregisterCmd("Ubuntu")})
	conn.AddCommand(&connection.MockCommand{Command: importCmd})
	conn.AddCommand(&connection.MockCommand{Command: wsl.SetDefaultCmd("Ubuntu")})

	require.NoError(t, action.Run(context.Background(), x))
	assert.Contains(t, conn.Executed, wsl.ShutdownCmd(), "the VM is released before the replace")
	assert.Contains(t, conn.Executed, wsl.UnregisterCmd("Ubuntu"), "the old distribution is dropped first")
	n := len(conn.Executed)
	assert.Equal(t, importCmd, conn.Executed[n-2])
	assert.Equal(t, wsl.SetDefaultCmd("Ubuntu"), conn.Executed[n-1], "the restored distribution becomes the default")
}

func TestWSLImportWhenNotInstalled(t *testing.T) {
	conn := connection.NewMock()
	cannedBuild(conn, "19045")

	action := wslTestAction(testEnv())
	x := &restore.Exec{Conn: conn, Dir: filepath.Join("/backup", "host1", "WSL")}

	// wsl.exe --list fails when WSL is not installed: no unregister happens
	importCmd := wsl.ImportCmd("Ubuntu", action.InstallDir, x.Path("Ubuntu.tar"))
	conn.AddCommand(&connection.MockCommand{Command: importCmd})

	require.NoError(t, action.Run(context.Background(), x))
	assert.NotContains(t, conn.Executed, wsl.UnregisterCmd("Ubuntu"))
}
