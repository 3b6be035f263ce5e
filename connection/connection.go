// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package connection provides access to the system whose configuration is
// being backed up or restored. All OS mutation goes through a Connection:
// either as a shell command handed to external tooling (reg.exe, wsl.exe,
// dism.exe, ...) or as a file operation on the connection's filesystem.
package connection

import (
	"io"
	"time"

	"github.com/spf13/afero"
)

// Connection is the minimal surface the restore and backup engines need:
// run a command and touch files.
type Connection interface {
	// RunCommand executes the command through the platform shell. A non-zero
	// exit is not an error; callers inspect ExitStatus.
	RunCommand(command string) (*Command, error)
	// FS returns the filesystem of the connected system.
	FS() afero.Fs
	// Name identifies the connection type, e.g. "local" or "dry-run".
	Name() string
}

type PerfStats struct {
	Start    time.Time
	Duration time.Duration
}

// Command carries the buffered output of one finished command.
type Command struct {
	Command    string
	Stats      PerfStats
	Stdout     io.ReadWriter
	Stderr     io.ReadWriter
	ExitStatus int
}
