// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"go.mondoo.com/cnrestore/restore"
	"go.mondoo.com/cnrestore/windows/detector"
	"go.mondoo.com/cnrestore/windows/wsl"
)

// WSL covers one Linux distribution as a tar export. Importing replaces
// the registered distribution, so the restore shuts the WSL VM down and
// unregisters it first; the LxssManager service pauses around the run.
func WSL(env Env, opts WSLOptions) Feature {
	if opts.Distribution == "" {
		opts.Distribution = "Ubuntu"
	}
	if opts.InstallDir == "" {
		opts.InstallDir = filepath.Join(env.LocalAppData, "wsl", opts.Distribution)
	}
	tar := opts.Distribution + ".tar"
	return Feature{
		Name:     "WSL",
		Subdir:   "WSL",
		Services: []string{"LxssManager"},
		Restore: []restore.Item{
			{Name: "Distribution", Action: wslImportAction{
				Distribution: opts.Distribution,
				InstallDir:   opts.InstallDir,
				Artifact:     tar,
			}},
		},
		Backup: []restore.Item{
			{Name: "Distribution", Action: wslExportAction{
				Distribution: opts.Distribution,
				Artifact:     tar,
			}},
		},
	}
}

// wslImportAction registers the distribution from a tar export. Windows
// builds below wsl.MinimumBuild cannot import, so the action refuses to
// run on them.
type wslImportAction struct {
	Distribution string
	InstallDir   string
	Artifact     string
}

func (a wslImportAction) Describe(x *restore.Exec) string {
	return fmt.Sprintf("import WSL distribution %s from %s", a.Distribution, x.Path(a.Artifact))
}

func (a wslImportAction) Exists(x *restore.Exec) (bool, error) {
	return afero.Exists(x.Conn.FS(), x.Path(a.Artifact))
}

func (a wslImportAction) Run(ctx context.Context, x *restore.Exec) error {
	current, err := detector.GetCurrentVersion(x.Conn)
	if err != nil {
		log.Warn().Err(err).Msg("could not detect the Windows build, attempting the import anyway")
	} else if ok, verr := wsl.SupportedBuild(current.CurrentBuild); verr == nil && !ok {
		return errors.Newf("WSL import needs Windows build %s or newer, this machine runs %s", wsl.MinimumBuild, current.CurrentBuild)
	}

	// release the utility VM so the distribution's disk can be replaced
	if err := restore.RunCommand(x, wsl.ShutdownCmd()); err != nil {
		log.Warn().Err(err).Msg("could not shut down the WSL VM")
	}

	// drop the registered distribution before the import, best effort
	exists, err := wsl.DistributionExists(x.Conn, a.Distribution)
	if err == nil && exists {
		if err := restore.RunCommand(x, wsl.UnregisterCmd(a.Distribution)); err != nil {
			log.Warn().Err(err).Str("distribution", a.Distribution).Msg("could not unregister distribution")
		}
	}

	if err := restore.RunCommand(x, wsl.ImportCmd(a.Distribution, a.InstallDir, x.Path(a.Artifact))); err != nil {
		return err
	}

	// the restored distribution answers plain wsl.exe calls again
	if err := restore.RunCommand(x, wsl.SetDefaultCmd(a.Distribution)); err != nil {
		log.Warn().Err(err).Str("distribution", a.Distribution).Msg("could not set the default distribution")
	}
	return nil
}

// wslExportAction stops the distribution and exports it to a tar.
type wslExportAction struct {
	Distribution string
	Artifact     string
}

func (a wslExportAction) Describe(x *restore.Exec) string {
	return fmt.Sprintf("export WSL distribution %s to %s", a.Distribution, x.Path(a.Artifact))
}

func (a wslExportAction) Exists(x *restore.Exec) (bool, error) {
	// listing distributions runs wsl.exe, which dry-run suppresses
	if x.DryRun {
		return true, nil
	}
	return wsl.DistributionExists(x.Conn, a.Distribution)
}

func (a wslExportAction) Run(ctx context.Context, x *restore.Exec) error {
	if err := restore.RunCommand(x, wsl.TerminateCmd(a.Distribution)); err != nil {
		log.Warn().Err(err).Str("distribution", a.Distribution).Msg("could not terminate distribution, exporting anyway")
	}
	return restore.RunCommand(x, wsl.ExportCmd(a.Distribution, x.Path(a.Artifact)))
}
