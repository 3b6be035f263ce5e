// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package connection

import (
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var _ Connection = (*Local)(nil)

// NewLocal connects to the system cnrestore runs on.
func NewLocal() *Local {
	// expect unix shell by default
	shell := []string{"sh", "-c"}

	if runtime.GOOS == "windows" {
		// It does not make any sense to use cmd as default shell
		shell = []string{"powershell", "-c"}
	}

	return &Local{
		shell: shell,
		fs:    afero.NewOsFs(),
	}
}

type Local struct {
	shell []string
	fs    afero.Fs
}

func (c *Local) Name() string {
	return "local"
}

func (c *Local) RunCommand(command string) (*Command, error) {
	log.Debug().Msgf("local> run command %s", command)
	r := &CommandRunner{Shell: c.shell}
	cmd, err := r.Exec(command, []string{})
	if err == nil {
		log.Trace().Dur("duration", cmd.Stats.Duration).Msgf("local> completed command %s", command)
	}
	return cmd, err
}

func (c *Local) FS() afero.Fs {
	return c.fs
}
