// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package restore

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ErrNoBackup indicates that neither the machine-specific nor the shared
// backup directory exists for a feature.
var ErrNoBackup = errors.New("no backup found")

// Location addresses a backup store: a root directory with one
// subdirectory per machine, plus a shared fallback that is used when no
// machine-specific backup exists.
type Location struct {
	// Root is the top of the backup store.
	Root string
	// Machine is the machine subdirectory, usually the hostname.
	Machine string
	// Shared overrides the shared fallback, default <Root>/shared.
	Shared string
}

// MachineDir returns the machine-specific directory for a feature.
func (l Location) MachineDir(subdir string) string {
	return filepath.Join(l.Root, l.Machine, subdir)
}

// SharedDir returns the shared fallback directory for a feature.
func (l Location) SharedDir(subdir string) string {
	if l.Shared != "" {
		return filepath.Join(l.Shared, subdir)
	}
	return filepath.Join(l.Root, "shared", subdir)
}

// Resolve returns the backup directory to use for a feature: the
// machine-specific directory if it exists, otherwise the shared one. When
// neither exists, the returned error wraps ErrNoBackup.
func (l Location) Resolve(fs afero.Fs, subdir string) (string, error) {
	machine := l.MachineDir(subdir)
	exists, err := afero.DirExists(fs, machine)
	if err != nil {
		return "", errors.Wrapf(err, "could not probe %s", machine)
	}
	if exists {
		log.Debug().Str("path", machine).Msg("using machine-specific backup")
		return machine, nil
	}

	shared := l.SharedDir(subdir)
	exists, err = afero.DirExists(fs, shared)
	if err != nil {
		return "", errors.Wrapf(err, "could not probe %s", shared)
	}
	if exists {
		log.Debug().Str("path", shared).Msg("using shared backup")
		return shared, nil
	}

	return "", errors.Wrapf(ErrNoBackup, "neither %s nor %s exist", machine, shared)
}
