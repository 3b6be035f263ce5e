// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

//go:build windows
// +build windows

// Package eventlog provides an io.Writer that sends logs to the Windows
// event log. Unattended restores (e.g. machine provisioning) log there so
// results survive the console session.
package eventlog

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/rs/zerolog"
	cbor "github.com/toravir/csd/libs"

	"golang.org/x/sys/windows/svc/debug"
	"golang.org/x/sys/windows/svc/eventlog"
)

// NewEventlogWriter returns a zerolog log destination that sends log
// messages to the Windows event log of this system.
func NewEventlogWriter(svcName string) (io.WriteCloser, error) {
	elog, err := eventlog.Open(svcName)
	if err != nil {
		return nil, err
	}

	return eventlogWriter{
		elog: elog,
	}, nil
}

type eventlogWriter struct {
	elog debug.Log
}

func levelToEventLevel(zLevel string) int {
	lvl, _ := zerolog.ParseLevel(zLevel)

	switch lvl {
	case zerolog.WarnLevel:
		return eventlog.Warning
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return eventlog.Error
	default:
		return eventlog.Info
	}
}

func (w eventlogWriter) Close() error {
	return w.elog.Close()
}

func (w eventlogWriter) Write(p []byte) (n int, err error) {
	var event map[string]interface{}
	p = cbor.DecodeIfBinaryToBytes(p)
	d := json.NewDecoder(bytes.NewReader(p))
	d.UseNumber()
	err = d.Decode(&event)
	prio := eventlog.Info
	if err != nil {
		return
	}
	if l, ok := event[zerolog.LevelFieldName].(string); ok {
		prio = levelToEventLevel(l)
	}

	switch prio {
	case eventlog.Error:
		w.elog.Error(1, string(p))
	case eventlog.Warning:
		w.elog.Warning(1, string(p))
	default:
		w.elog.Info(1, string(p))
	}

	return len(p), nil
}
