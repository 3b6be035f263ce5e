// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/restore"
)

func TestParseSchemeGUID(t *testing.T) {
	out := "Power Scheme GUID: 381b4222-f694-41f0-9685-ff5bb260df2e  (Balanced)\r\n"
	assert.Equal(t, "381b4222-f694-41f0-9685-ff5bb260df2e", parseSchemeGUID(out))
	assert.Empty(t, parseSchemeGUID("The system cannot find the file specified."))
}

func TestPowerSchemeExportAction(t *testing.T) {
	conn := connection.NewMock()
	x := &restore.Exec{Conn: conn, Dir: filepath.Join("/backup", "host1", "Power")}

	conn.AddCommand(&connection.MockCommand{
		Command: "powercfg.exe /getactivescheme",
		Stdout:  "Power Scheme GUID: 381b4222-f694-41f0-9685-ff5bb260df2e  (Balanced)",
	})
	exportCmd := fmt.Sprintf(`powercfg.exe /export "%s" 381b4222-f694-41f0-9685-ff5bb260df2e`, x.Path("power.pow"))
	conn.AddCommand(&connection.MockCommand{Command: exportCmd})

	action := powerSchemeExportAction{File: "power.pow"}
	require.NoError(t, action.Run(context.Background(), x))
	assert.Equal(t, exportCmd, conn.Executed[len(conn.Executed)-1])
}

func TestPowerSchemeExportActionNoGUID(t *testing.T) {
	conn := connection.NewMock()
	x := &restore.Exec{Conn: conn, Dir: "/backup/host1/Power"}

	conn.AddCommand(&connection.MockCommand{
		Command: "powercfg.exe /getactivescheme",
		Stdout:  "garbled",
	})

	action := powerSchemeExportAction{File: "power.pow"}
	err := action.Run(context.Background(), x)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scheme GUID")
}
