// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mondoo.com/cnrestore/cli/config"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/features"
)

func TestSelectFeatures(t *testing.T) {
	catalog := features.All(features.DetectEnv(), features.Options{})

	all, err := selectFeatures(catalog, nil)
	require.NoError(t, err)
	assert.Len(t, all, len(catalog))

	some, err := selectFeatures(catalog, []string{"KEYBOARD", "wsl"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "Keyboard", some[0].Name)
	assert.Equal(t, "WSL", some[1].Name)

	_, err = selectFeatures(catalog, []string{"bios"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown feature")
}

func TestBackupLocation(t *testing.T) {
	conn := connection.NewMock()
	conn.AddCommand(&connection.MockCommand{Command: "hostname", Stdout: "host1\r\n"})

	_, err := backupLocation(&config.Config{}, conn)
	require.Error(t, err, "a backup root is required")

	loc, err := backupLocation(&config.Config{BackupRoot: "/backups"}, conn)
	require.NoError(t, err)
	assert.Equal(t, "host1", loc.Machine, "hostname is the default machine name")

	loc, err = backupLocation(&config.Config{BackupRoot: "/backups", Machine: "other"}, conn)
	require.NoError(t, err)
	assert.Equal(t, "other", loc.Machine)
}
