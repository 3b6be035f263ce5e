// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package connection

import (
	"bytes"
	"os/exec"
	"time"
)

// CommandRunner executes commands through a platform shell and captures
// their buffered output.
type CommandRunner struct {
	Shell []string
}

func (c *CommandRunner) Exec(usercmd string, args []string) (*Command, error) {
	res := &Command{}
	res.Stats.Start = time.Now()

	var cmd string
	cmdArgs := []string{}

	if len(c.Shell) > 0 {
		shellCommand, shellArgs := c.Shell[0], c.Shell[1:]
		cmd = shellCommand
		cmdArgs = append(cmdArgs, shellArgs...)
		cmdArgs = append(cmdArgs, usercmd)
	} else {
		cmd = usercmd
	}
	cmdArgs = append(cmdArgs, args...)

	// this only stores the user command, not the shell
	res.Command = usercmd
	cmdExecutor := exec.Command(cmd, cmdArgs...)

	var stdoutBuffer bytes.Buffer
	var stderrBuffer bytes.Buffer

	// create buffered streams
	res.Stdout = &stdoutBuffer
	res.Stderr = &stderrBuffer

	cmdExecutor.Stdout = res.Stdout
	cmdExecutor.Stderr = res.Stderr

	err := cmdExecutor.Run()
	res.Stats.Duration = time.Since(res.Stats.Start)

	// command completed successfully, great :-)
	if err == nil {
		return res, nil
	}

	// if the program failed, we do not return err but its exit code
	if exiterr, ok := err.(*exec.ExitError); ok {
		res.ExitStatus = exiterr.ExitCode()
		return res, nil
	}

	// all other errors are real errors and not expected
	return res, err
}
