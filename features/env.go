// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// Env carries the profile directories features resolve their live
// locations against. On a Windows machine these come from the standard
// environment variables; the fallbacks keep cross-platform development
// working.
type Env struct {
	// Home is the user profile directory, %USERPROFILE%.
	Home string
	// AppData is the roaming application data directory, %APPDATA%.
	AppData string
	// LocalAppData is the local application data directory, %LOCALAPPDATA%.
	LocalAppData string
	// ProgramData is the machine-wide data directory, %PROGRAMDATA%.
	ProgramData string
}

// DetectEnv resolves the environment of the current process.
func DetectEnv() Env {
	home, err := homedir.Dir()
	if err != nil {
		home = os.Getenv("USERPROFILE")
	}

	env := Env{
		Home:         home,
		AppData:      os.Getenv("APPDATA"),
		LocalAppData: os.Getenv("LOCALAPPDATA"),
		ProgramData:  os.Getenv("PROGRAMDATA"),
	}
	if env.AppData == "" {
		env.AppData = filepath.Join(home, "AppData", "Roaming")
	}
	if env.LocalAppData == "" {
		env.LocalAppData = filepath.Join(home, "AppData", "Local")
	}
	if env.ProgramData == "" {
		env.ProgramData = `C:\ProgramData`
	}
	return env
}
