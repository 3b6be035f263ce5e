// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutodetectConfig(t *testing.T) {
	AppFs = afero.NewMemMapFs()
	defer func() { AppFs = afero.NewOsFs() }()

	home, err := homedir.Dir()
	require.NoError(t, err)
	homeConfig := filepath.Join(home, ".config", "cnrestore", DefaultConfigFile)
	systemConfig := filepath.Join("/etc", "opt", "cnrestore", DefaultConfigFile)

	t.Run("no config file anywhere", func(t *testing.T) {
		assert.Equal(t, homeConfig, autodetectConfig())
	})

	t.Run("system config only", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(AppFs, systemConfig, []byte("backup_root: /srv/backups"), 0o644))
		assert.Equal(t, systemConfig, autodetectConfig())
	})

	t.Run("user config is preferred", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(AppFs, homeConfig, []byte("backup_root: /srv/backups"), 0o644))
		assert.Equal(t, homeConfig, autodetectConfig())
	})
}

func TestProbeFile(t *testing.T) {
	AppFs = afero.NewMemMapFs()
	defer func() { AppFs = afero.NewOsFs() }()

	assert.False(t, ProbeFile(filepath.Join("/missing", DefaultConfigFile)))

	require.NoError(t, AppFs.MkdirAll("/etc/opt/cnrestore", 0o755))
	assert.False(t, ProbeFile("/etc/opt/cnrestore"), "directories are not config files")

	require.NoError(t, afero.WriteFile(AppFs, "/etc/opt/cnrestore/cnrestore.yml", []byte("machine: host1"), 0o644))
	assert.True(t, ProbeFile("/etc/opt/cnrestore/cnrestore.yml"))
}

func TestProbeDir(t *testing.T) {
	AppFs = afero.NewMemMapFs()
	defer func() { AppFs = afero.NewOsFs() }()

	assert.False(t, ProbeDir("/missing"))

	require.NoError(t, afero.WriteFile(AppFs, "/etc/notadir", []byte("x"), 0o644))
	assert.False(t, ProbeDir("/etc/notadir"))

	require.NoError(t, AppFs.MkdirAll("/var/lib/cnrestore", 0o755))
	assert.True(t, ProbeDir("/var/lib/cnrestore"))
}

func TestRead(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadConfig(strings.NewReader(`
backup_root: 'D:\Backups'
machine: workstation-7
force: true
features:
  browsers:
    profile: Work
  wsl:
    distribution: Debian
`)))

	cfg, err := Read()
	require.NoError(t, err)
	assert.Equal(t, `D:\Backups`, cfg.BackupRoot)
	assert.Equal(t, "", cfg.SharedRoot)
	assert.Equal(t, "workstation-7", cfg.Machine)
	assert.True(t, cfg.Force)
	assert.Equal(t, "Work", cfg.Features.Browsers.Profile)
	assert.Equal(t, "Debian", cfg.Features.WSL.Distribution)
}

func TestReadRejectsUnknownFeatureOptions(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadConfig(strings.NewReader(`
features:
  wsl:
    distro: Debian
`)))

	_, err := Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid features configuration")
}

func TestReadValidatesFeatureOptions(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadConfig(strings.NewReader(`
features:
  word:
    version: sixteen
`)))

	_, err := Read()
	require.Error(t, err)
}
