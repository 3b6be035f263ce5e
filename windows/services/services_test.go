// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package services

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/windows/powershell"
)

func TestParseServices(t *testing.T) {
	data, err := os.Open("./testdata/services.json")
	require.NoError(t, err)
	defer data.Close()

	services, err := ParseServices(data)
	require.NoError(t, err)
	assert.Equal(t, 4, len(services))

	assert.Equal(t, "Audiosrv", services[0].Name)
	assert.Equal(t, "Windows Audio", services[0].DisplayName)
	assert.Equal(t, Running, services[0].State)

	assert.Equal(t, "TermService", services[2].Name)
	assert.Equal(t, Stopped, services[2].State)

	assert.Equal(t, "stop pending", services[3].State)
}

func TestParseSingleService(t *testing.T) {
	// ConvertTo-Json emits a bare object for a single service
	data := `{"Name":"ssh-agent","DisplayName":"OpenSSH Authentication Agent","Status":1}`

	services, err := ParseServices(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "ssh-agent", services[0].Name)
	assert.Equal(t, Stopped, services[0].State)
}

func TestManagerService(t *testing.T) {
	conn := connection.NewMock()
	conn.AddCommand(&connection.MockCommand{
		Command: powershell.Encode(GetServiceScript("Audiosrv")),
		Stdout:  `{"Name":"Audiosrv","DisplayName":"Windows Audio","Status":4}`,
	})

	m := NewManager(conn)
	svc, err := m.Service("Audiosrv")
	require.NoError(t, err)
	assert.Equal(t, "Audiosrv", svc.Name)
	assert.Equal(t, Running, svc.State)
}

func TestManagerControl(t *testing.T) {
	conn := connection.NewMock()
	conn.AddCommand(&connection.MockCommand{
		Command: powershell.Encode("Stop-Service -Name 'Audiosrv' -Force -ErrorAction Stop"),
	})
	conn.AddCommand(&connection.MockCommand{
		Command: powershell.Encode("Start-Service -Name 'Audiosrv' -ErrorAction Stop"),
	})
	conn.AddCommand(&connection.MockCommand{
		Command: powershell.Encode("Restart-Service -Name 'Audiosrv' -Force -ErrorAction Stop"),
	})

	m := NewManager(conn)
	require.NoError(t, m.Stop("Audiosrv"))
	require.NoError(t, m.Start("Audiosrv"))
	require.NoError(t, m.Restart("Audiosrv"))

	err := m.Stop("NoSuchService")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchService")
}
