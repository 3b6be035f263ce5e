// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// DefaultConfigFile is the name of the config file loaded when no path is
// provided.
const DefaultConfigFile = "cnrestore.yml"

var (
	// AppFs is the filesystem the config loader works on. Swapped in tests.
	AppFs afero.Fs

	// UserProvidedPath is the path provided via --config.
	UserProvidedPath string

	// Path is the path of the config file that is actually used.
	Path string

	// Source documents where Path came from.
	Source string

	// LoadedConfig is true once a config file was read successfully.
	LoadedConfig bool
)

func init() {
	AppFs = afero.NewOsFs()
}

// HomePath returns the user config location for the given path segments,
// e.g. HomePath("cnrestore", "cnrestore.yml") => ~/.config/cnrestore/cnrestore.yml
func HomePath(segments ...string) (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home, ".config"}, segments...)
	return filepath.Join(parts...), nil
}

// autodetectConfig determines the config file path. The user config
// (~/.config/cnrestore/cnrestore.yml) is preferred, the system location
// (/etc/opt/cnrestore/cnrestore.yml) is the fallback. If neither file
// exists, the user location is returned so that commands that write
// config have a sensible target.
func autodetectConfig() string {
	homeConfig, err := HomePath("cnrestore", DefaultConfigFile)
	if err != nil {
		log.Warn().Err(err).Msg("could not determine user home directory")
	}
	if homeConfig != "" && ProbeFile(homeConfig) {
		return homeConfig
	}

	systemConfig := filepath.Join("/etc", "opt", "cnrestore", DefaultConfigFile)
	if ProbeFile(systemConfig) {
		return systemConfig
	}

	if homeConfig != "" {
		return homeConfig
	}
	return DefaultConfigFile
}

// ProbeFile returns true if the path exists and is readable.
func ProbeFile(path string) bool {
	stat, err := AppFs.Stat(path)
	if err != nil {
		return false
	}
	if stat.IsDir() {
		return false
	}
	f, err := AppFs.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	return true
}

// ProbeDir returns true if the path exists, is a directory and is writeable.
func ProbeDir(path string) bool {
	stat, err := AppFs.Stat(path)
	if err != nil {
		return false
	}
	if !stat.IsDir() {
		return false
	}
	testFile := filepath.Join(path, ".cnrestore-probe")
	f, err := AppFs.Create(testFile)
	if err != nil {
		return false
	}
	f.Close()
	if err := AppFs.Remove(testFile); err != nil {
		log.Warn().Err(err).Str("path", testFile).Msg("could not clean up probe file")
	}
	return true
}
