// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv() Env {
	return Env{
		Home:         `C:\Users\test`,
		AppData:      `C:\Users\test\AppData\Roaming`,
		LocalAppData: `C:\Users\test\AppData\Local`,
		ProgramData:  `C:\ProgramData`,
	}
}

func TestCatalog(t *testing.T) {
	catalog := All(testEnv(), Options{})

	assert.Equal(t, []string{
		"Browsers", "DefaultApps", "Keyboard", "Network", "Power",
		"RDP", "Sound", "SSH", "Terminal", "Word", "WSL",
	}, Names(catalog))

	for _, f := range catalog {
		assert.NotEmpty(t, f.Subdir, "%s needs a backup subdirectory", f.Name)
		assert.NotEmpty(t, f.Restore, "%s needs restore items", f.Name)
		assert.NotEmpty(t, f.Backup, "%s needs backup items", f.Name)
	}
}

func TestFind(t *testing.T) {
	catalog := All(testEnv(), Options{})

	f, ok := Find(catalog, "sound")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, "Sound", f.Name)

	_, ok = Find(catalog, "Solitaire")
	assert.False(t, ok)
}

func TestPlans(t *testing.T) {
	f := Sound()

	rp := f.RestorePlan()
	assert.Equal(t, "Sound", rp.Feature)
	assert.Equal(t, "Sound", rp.Subdir)
	assert.Equal(t, []string{"Audiosrv", "AudioEndpointBuilder"}, rp.Services)
	assert.Len(t, rp.Items, 1)

	bp := f.BackupPlan()
	assert.Equal(t, rp.Services, bp.Services, "both directions pause the same services")
	assert.Len(t, bp.Items, 1)
}

func TestOptionDefaults(t *testing.T) {
	env := testEnv()

	wsl := WSL(env, WSLOptions{})
	imp := wsl.Restore[0].Action.(wslImportAction)
	assert.Equal(t, "Ubuntu", imp.Distribution)
	assert.Equal(t, filepath.Join(env.LocalAppData, "wsl", "Ubuntu"), imp.InstallDir)

	wsl = WSL(env, WSLOptions{Distribution: "Debian"})
	imp = wsl.Restore[0].Action.(wslImportAction)
	assert.Equal(t, "Debian", imp.Distribution)
	assert.Equal(t, "Debian.tar", imp.Artifact)
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, Options{}.Validate())
	assert.NoError(t, Options{
		WSL:  WSLOptions{Distribution: "Ubuntu-22.04"},
		Word: WordOptions{Version: "15.0"},
	}.Validate())

	assert.Error(t, Options{WSL: WSLOptions{Distribution: `Ubuntu\evil`}}.Validate())
	assert.Error(t, Options{Word: WordOptions{Version: "sixteen"}}.Validate())
}

func TestDetectEnvFallbacks(t *testing.T) {
	t.Setenv("APPDATA", "")
	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("PROGRAMDATA", "")

	env := DetectEnv()
	require.NotEmpty(t, env.Home)
	assert.Equal(t, filepath.Join(env.Home, "AppData", "Roaming"), env.AppData)
	assert.Equal(t, filepath.Join(env.Home, "AppData", "Local"), env.LocalAppData)
	assert.Equal(t, `C:\ProgramData`, env.ProgramData)
}
