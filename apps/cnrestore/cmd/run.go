// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.mondoo.com/cnrestore/backup"
	"go.mondoo.com/cnrestore/cli/config"
	cli_errors "go.mondoo.com/cnrestore/cli/errors"
	"go.mondoo.com/cnrestore/cli/progress"
	"go.mondoo.com/cnrestore/cli/reporter"
	"go.mondoo.com/cnrestore/cli/sysinfo"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/features"
	"go.mondoo.com/cnrestore/logger"
	"go.mondoo.com/cnrestore/restore"
)

// addRunFlags registers the flag surface the restore and backup commands
// share.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("include", nil, "Only process the named items of a feature")
	cmd.Flags().StringSlice("exclude", nil, "Skip the named items of a feature")
	cmd.Flags().Bool("force", false, "Continue with the remaining items after an item fails")
	cmd.Flags().Bool("dry-run", false, "Report would-be changes without touching the system")
	cmd.Flags().StringP("output", "o", "compact", "Set output format: "+reporter.AllFormats())
	cmd.Flags().Bool("pager", false, "Pipe the report through a pager")
}

// selectFeatures resolves feature arguments against the catalog. No
// arguments selects the whole catalog.
func selectFeatures(catalog []features.Feature, args []string) ([]features.Feature, error) {
	if len(args) == 0 {
		return catalog, nil
	}

	selected := make([]features.Feature, 0, len(args))
	for _, arg := range args {
		f, ok := features.Find(catalog, arg)
		if !ok {
			return nil, errors.Newf("unknown feature %q, use one of: %s", arg, strings.Join(features.Names(catalog), ", "))
		}
		selected = append(selected, f)
	}
	return selected, nil
}

// backupLocation builds the store location from the configuration and the
// machine identity.
func backupLocation(conf *config.Config, conn connection.Connection) (restore.Location, error) {
	if conf.BackupRoot == "" {
		return restore.Location{}, errors.New("no backup root configured, set --backup-root or backup_root in the config file")
	}

	machine := conf.Machine
	if machine == "" {
		machine = sysinfo.Hostname(conn)
	}
	if machine == "" {
		return restore.Location{}, errors.New("could not determine the machine name, set --machine")
	}

	return restore.Location{
		Root:    conf.BackupRoot,
		Machine: machine,
		Shared:  conf.SharedRoot,
	}, nil
}

// runFeatures drives one restore or backup run end to end: config, feature
// selection, per-feature engine runs, report. Any feature failure turns
// into a non-zero exit.
func runFeatures(cmd *cobra.Command, args []string, op restore.Op) error {
	conf, err := config.Read()
	if err != nil {
		return cli_errors.NewCommandError(err, 1)
	}
	config.DisplayUsedConfig()

	include, _ := cmd.Flags().GetStringSlice("include")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	output, _ := cmd.Flags().GetString("output")

	rep, err := reporter.New(output)
	if err != nil {
		return cli_errors.NewCommandError(err, 1)
	}
	rep.UsePager, _ = cmd.Flags().GetBool("pager")
	rep.Pager = conf.Pager

	var conn connection.Connection = connection.NewLocal()
	if dryRun {
		conn = connection.NewDryRun(conn)
	}

	loc, err := backupLocation(conf, conn)
	if err != nil {
		return cli_errors.NewCommandError(err, 1)
	}

	catalog := features.All(features.DetectEnv(), conf.Features)
	selected, err := selectFeatures(catalog, args)
	if err != nil {
		return cli_errors.NewCommandError(err, 1)
	}

	var prog progress.Progress = progress.Noop{}
	if isatty.IsTerminal(os.Stdout.Fd()) && len(selected) > 1 {
		prog = progress.New(strconv.Itoa(len(selected)) + " features")
	}
	if err := prog.Open(); err != nil {
		return cli_errors.NewCommandError(err, 1)
	}

	ctx := cmd.Context()
	results := make([]*restore.Result, 0, len(selected))
	failed := false
	for i := range selected {
		var res *restore.Result
		var err error

		// every feature run gets its own run id in the log output
		runCtx := logger.RunScopedContext(ctx, "")
		if op == restore.OpBackup {
			eng := backup.New(conn, loc)
			eng.Include, eng.Exclude = include, exclude
			eng.Force, eng.DryRun = conf.Force, dryRun
			res, err = eng.Run(runCtx, selected[i].BackupPlan())
		} else {
			eng := restore.New(conn, loc)
			eng.Include, eng.Exclude = include, exclude
			eng.Force, eng.DryRun = conf.Force, dryRun
			res, err = eng.Run(runCtx, selected[i].RestorePlan())
		}

		if err != nil {
			// item details are already logged by the engine
			log.Debug().Err(err).Str("feature", selected[i].Name).Msg("feature failed")
			failed = true
		}
		results = append(results, res)
		prog.OnProgress(i+1, len(selected))
	}
	prog.Close()
	logger.DebugJSON(results)

	logger.LogOutputWriter.Pause()
	defer logger.LogOutputWriter.Resume()
	if err := rep.Print(os.Stdout, results); err != nil {
		return cli_errors.NewCommandError(err, 1)
	}

	if failed {
		return cli_errors.ExitCode1WithoutError
	}
	return nil
}
