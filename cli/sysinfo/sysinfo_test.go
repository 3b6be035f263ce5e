// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/windows/detector"
	"go.mondoo.com/cnrestore/windows/powershell"
)

func TestGet(t *testing.T) {
	mock := connection.NewMock()
	mock.AddCommand(&connection.MockCommand{
		Command: "hostname",
		Stdout:  "WIN-7E9F2K1\r\n",
	})
	mock.AddCommand(&connection.MockCommand{
		Command: powershell.Encode(detector.CurrentVersionScript),
		Stdout:  `{"CurrentBuild": "22631", "UBR": 3737, "EditionID": "Professional", "ProductName": "Windows 10 Pro"}`,
	})

	info, err := Get(mock)
	require.NoError(t, err)
	assert.Equal(t, "WIN-7E9F2K1", info.Hostname)
	assert.Equal(t, "unstable", info.Version)
	require.NotNil(t, info.Windows)
	assert.Equal(t, "22631", info.Windows.CurrentBuild)
	assert.Equal(t, 3737, info.Windows.UBR)
	assert.NotEmpty(t, info.Labels["environment"])
}

func TestHostnameFallback(t *testing.T) {
	// no canned hostname command: the probe fails and the local
	// hostname takes over
	name := Hostname(connection.NewMock())
	assert.NotEmpty(t, name)
}
