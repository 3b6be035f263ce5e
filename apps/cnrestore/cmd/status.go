// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.mondoo.com/cnrestore"
	"go.mondoo.com/cnrestore/cli/config"
	cli_errors "go.mondoo.com/cnrestore/cli/errors"
	"go.mondoo.com/cnrestore/cli/sysinfo"
	"go.mondoo.com/cnrestore/cli/theme"
	"go.mondoo.com/cnrestore/connection"
)

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringP("output", "o", "", "Set output format: json")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show machine identity and backup store reachability",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Read()
		if err != nil {
			return cli_errors.NewCommandError(err, 1)
		}
		config.DisplayUsedConfig()

		s, err := getStatus(conf)
		if err != nil {
			return cli_errors.NewCommandError(err, 1)
		}

		output, _ := cmd.Flags().GetString("output")
		switch strings.ToLower(output) {
		case "json":
			err = s.RenderJSON(cmd.OutOrStdout())
		default:
			s.RenderCliStatus(cmd.OutOrStdout())
		}
		if err != nil {
			return cli_errors.NewCommandError(err, 1)
		}
		return nil
	},
}

// Status is the API for the cnrestore status command.
type Status struct {
	Client *sysinfo.SystemInfo `json:"client"`
	Store  StoreStatus         `json:"store"`
}

// StoreStatus describes the backup store as seen from this machine.
type StoreStatus struct {
	Root      string `json:"root,omitempty"`
	Machine   string `json:"machine,omitempty"`
	Reachable bool   `json:"reachable"`
	Writeable bool   `json:"writeable"`
}

func getStatus(conf *config.Config) (*Status, error) {
	conn := connection.NewLocal()

	info, err := sysinfo.Get(conn)
	if err != nil {
		return nil, err
	}

	s := &Status{Client: info}

	s.Store.Root = conf.BackupRoot
	s.Store.Machine = conf.Machine
	if s.Store.Machine == "" {
		s.Store.Machine = info.Hostname
	}
	if conf.BackupRoot != "" {
		reachable, _ := afero.DirExists(config.AppFs, conf.BackupRoot)
		s.Store.Reachable = reachable
		if reachable {
			s.Store.Writeable = config.ProbeDir(conf.BackupRoot)
		}
	}
	return s, nil
}

func (s *Status) RenderCliStatus(out io.Writer) {
	t := theme.DefaultTheme
	fmt.Fprintln(out, t.Primary(cnrestore.Info()))
	fmt.Fprintln(out, "hostname:  "+s.Client.Hostname)
	if s.Client.IP != "" {
		fmt.Fprintln(out, "ip:        "+s.Client.IP)
	}
	if w := s.Client.Windows; w != nil {
		fmt.Fprintf(out, "windows:   %s build %s.%d\n", w.ProductName, w.CurrentBuild, w.UBR)
	}

	switch {
	case s.Store.Root == "":
		fmt.Fprintln(out, "store:     "+t.Warn("not configured"))
	case !s.Store.Reachable:
		fmt.Fprintln(out, "store:     "+s.Store.Root+" "+t.Error("(not reachable)"))
	case !s.Store.Writeable:
		fmt.Fprintln(out, "store:     "+s.Store.Root+" "+t.Warn("(read-only)"))
	default:
		fmt.Fprintln(out, "store:     "+s.Store.Root+" "+t.Success("(writeable)"))
	}
	fmt.Fprintln(out, "machine:   "+s.Store.Machine)
}

func (s *Status) RenderJSON(out io.Writer) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = out.Write(append(data, '\n'))
	return err
}
