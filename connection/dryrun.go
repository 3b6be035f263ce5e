// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package connection

import (
	"bytes"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var _ Connection = (*DryRun)(nil)

// NewDryRun wraps a connection so that nothing is changed: commands are
// recorded and report success without executing, and the filesystem is
// read-only. Reads still hit the wrapped connection, so existence checks
// and path resolution behave like a live run.
func NewDryRun(conn Connection) *DryRun {
	return &DryRun{
		conn: conn,
		fs:   afero.NewReadOnlyFs(conn.FS()),
	}
}

type DryRun struct {
	conn Connection
	fs   afero.Fs

	// Commands lists every command that would have run, in order.
	Commands []string
}

func (c *DryRun) Name() string {
	return "dry-run"
}

func (c *DryRun) RunCommand(command string) (*Command, error) {
	log.Info().Str("command", command).Msg("dry-run> would run command")
	c.Commands = append(c.Commands, command)
	return &Command{
		Command: command,
		Stdout:  &bytes.Buffer{},
		Stderr:  &bytes.Buffer{},
	}, nil
}

func (c *DryRun) FS() afero.Fs {
	return c.fs
}
