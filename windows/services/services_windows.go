// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

//go:build windows
// +build windows

package services

import (
	"fmt"
	"strings"

	wmi "github.com/StackExchange/wmi"
	"github.com/cockroachdb/errors"
)

const wmiServiceQuery = "SELECT Name, DisplayName, State FROM Win32_Service WHERE Name = '%s'"

// wmiService queries the service state through WMI, avoiding a PowerShell
// round-trip on local connections.
func wmiService(name string) (*Service, error) {
	// we always get a list of entries
	type win32_Service struct {
		Name        *string
		DisplayName *string
		State       *string
	}

	var entries []win32_Service
	if err := wmi.Query(fmt.Sprintf(wmiServiceQuery, name), &entries); err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, errors.Newf("service %s does not exist", name)
	}

	entry := entries[0]
	return &Service{
		Name:        toString(entry.Name),
		DisplayName: toString(entry.DisplayName),
		State:       strings.ToLower(toString(entry.State)),
	}, nil
}

func toString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
