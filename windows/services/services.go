// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package services inspects and controls Windows services. Restores stop
// the services that hold a subsystem's files or registry keys open and
// start them again afterwards.
package services

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/windows/powershell"
)

// Service describes the state of one Windows service.
type Service struct {
	Name        string
	DisplayName string
	State       string
}

const (
	Running = "running"
	Stopped = "stopped"
)

// System.ServiceProcess.ServiceControllerStatus values as emitted by
// Get-Service | ConvertTo-Json
var serviceStates = map[int]string{
	1: Stopped,
	2: "start pending",
	3: "stop pending",
	4: Running,
	5: "continue pending",
	6: "pause pending",
	7: "paused",
}

const getServiceScript = `Get-Service -Name '%s' | Select-Object -Property Name, DisplayName, Status | ConvertTo-Json -Compress`

func GetServiceScript(name string) string {
	return fmt.Sprintf(getServiceScript, name)
}

type powershellService struct {
	Name        string `json:"Name"`
	DisplayName string `json:"DisplayName"`
	Status      int    `json:"Status"`
}

// ParseServices parses the json output of the Get-Service script. A single
// service is emitted as an object, multiple services as an array.
func ParseServices(r io.Reader) ([]*Service, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw []powershellService
	if err := json.Unmarshal(data, &raw); err != nil {
		var single powershellService
		if err2 := json.Unmarshal(data, &single); err2 != nil {
			return nil, err
		}
		raw = []powershellService{single}
	}

	services := make([]*Service, 0, len(raw))
	for i := range raw {
		state, ok := serviceStates[raw[i].Status]
		if !ok {
			state = "unknown"
		}
		services = append(services, &Service{
			Name:        raw[i].Name,
			DisplayName: raw[i].DisplayName,
			State:       state,
		})
	}
	return services, nil
}

// Manager looks up and controls services over a connection.
type Manager struct {
	conn connection.Connection
}

func NewManager(conn connection.Connection) *Manager {
	return &Manager{conn: conn}
}

// Service returns the current state of one service. On a local Windows
// connection it queries WMI directly, everywhere else it parses the
// output of Get-Service.
func (m *Manager) Service(name string) (*Service, error) {
	if runtime.GOOS == "windows" {
		if _, ok := m.conn.(*connection.Local); ok {
			return wmiService(name)
		}
	}

	cmd, err := m.conn.RunCommand(powershell.Encode(GetServiceScript(name)))
	if err != nil {
		return nil, errors.Wrapf(err, "could not query service %s", name)
	}
	if cmd.ExitStatus != 0 {
		return nil, errors.Newf("could not query service %s: %s", name, readStderr(cmd))
	}

	services, err := ParseServices(cmd.Stdout)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, errors.Newf("service %s does not exist", name)
	}
	return services[0], nil
}

// Stop stops a service and waits for it to reach the stopped state.
func (m *Manager) Stop(name string) error {
	return m.control(name, fmt.Sprintf("Stop-Service -Name '%s' -Force -ErrorAction Stop", name))
}

// Start starts a service.
func (m *Manager) Start(name string) error {
	return m.control(name, fmt.Sprintf("Start-Service -Name '%s' -ErrorAction Stop", name))
}

// Restart stops and starts a service in one call.
func (m *Manager) Restart(name string) error {
	return m.control(name, fmt.Sprintf("Restart-Service -Name '%s' -Force -ErrorAction Stop", name))
}

func (m *Manager) control(name string, script string) error {
	cmd, err := m.conn.RunCommand(powershell.Encode(script))
	if err != nil {
		return errors.Wrapf(err, "could not control service %s", name)
	}
	if cmd.ExitStatus != 0 {
		return errors.Newf("service %s control failed: %s", name, readStderr(cmd))
	}
	return nil
}

func readStderr(cmd *connection.Command) string {
	data, err := io.ReadAll(cmd.Stderr)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
