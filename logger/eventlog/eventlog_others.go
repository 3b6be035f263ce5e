// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

//go:build !windows
// +build !windows

package eventlog

import (
	"io"

	"github.com/cockroachdb/errors"
)

// NewEventlogWriter is only supported on Windows.
func NewEventlogWriter(svcName string) (io.WriteCloser, error) {
	return nil, errors.New("the event log target is only supported on windows")
}
