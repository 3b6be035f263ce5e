// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package connection

import (
	"bytes"

	"github.com/spf13/afero"
)

var _ Connection = (*Mock)(nil)

// MockCommand is a canned result for one command string.
type MockCommand struct {
	Command    string
	Stdout     string
	Stderr     string
	ExitStatus int
}

// NewMock creates a connection that runs on virtual data only: commands
// are answered from a registry of canned results and files live in an
// in-memory filesystem.
func NewMock() *Mock {
	return &Mock{
		Commands: make(map[string]*MockCommand),
		Fs:       afero.NewMemMapFs(),
	}
}

type Mock struct {
	Commands map[string]*MockCommand
	Fs       afero.Fs

	// Executed lists every command that was requested, in order.
	Executed []string
}

func (m *Mock) Name() string {
	return "mock"
}

// AddCommand registers a canned result. Unknown commands report exit
// status 1 with "command not found" on stderr.
func (m *Mock) AddCommand(cmd *MockCommand) {
	m.Commands[cmd.Command] = cmd
}

func (m *Mock) RunCommand(command string) (*Command, error) {
	m.Executed = append(m.Executed, command)

	res := &Command{Command: command, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	c, ok := m.Commands[command]
	if !ok {
		res.Stderr.Write([]byte("command not found"))
		res.ExitStatus = 1
		return res, nil
	}

	res.Stdout.Write([]byte(c.Stdout))
	res.Stderr.Write([]byte(c.Stderr))
	res.ExitStatus = c.ExitStatus
	return res, nil
}

func (m *Mock) FS() afero.Fs {
	if m.Fs == nil {
		m.Fs = afero.NewMemMapFs()
	}
	return m.Fs
}
