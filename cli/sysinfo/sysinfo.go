// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package sysinfo gathers the identity of the machine cnrestore runs
// against. The hostname doubles as the default machine directory name in
// the backup store.
package sysinfo

import (
	"io"
	"net"
	"os"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"go.mondoo.com/cnrestore"
	"go.mondoo.com/cnrestore/cli/execruntime"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/windows/detector"
)

type SystemInfo struct {
	Version  string                          `json:"version,omitempty"`
	Build    string                          `json:"build,omitempty"`
	Hostname string                          `json:"hostname,omitempty"`
	IP       string                          `json:"ip,omitempty"`
	Windows  *detector.WindowsCurrentVersion `json:"windows,omitempty"`
	Labels   map[string]string               `json:"labels,omitempty"`
}

// Get gathers the system information over the given connection.
func Get(conn connection.Connection) (*SystemInfo, error) {
	log.Debug().Msg("gathering system information")

	sysInfo := &SystemInfo{
		Version: cnrestore.GetVersion(),
		Build:   cnrestore.GetBuild(),
	}

	sysInfo.Hostname = Hostname(conn)

	current, err := detector.GetCurrentVersion(conn)
	if err != nil {
		// only Windows machines are expected to answer the probe
		if runtime.GOOS == "windows" {
			return nil, errors.Wrap(err, "could not detect the Windows version")
		}
		log.Debug().Err(err).Msg("could not detect the Windows version")
	} else {
		sysInfo.Windows = current
	}

	if ip, err := outboundIP(); err == nil {
		sysInfo.IP = ip.String()
	}

	// detect the execution runtime
	execEnv := execruntime.Detect()
	sysInfo.Labels = map[string]string{
		"environment": execEnv.Id,
	}

	return sysInfo, nil
}

// Hostname returns the machine name. The hostname command works the same
// on Windows and unix; os.Hostname covers connections without a working
// shell.
func Hostname(conn connection.Connection) string {
	cmd, err := conn.RunCommand("hostname")
	if err == nil && cmd.ExitStatus == 0 {
		data, err := io.ReadAll(cmd.Stdout)
		if err == nil && len(strings.TrimSpace(string(data))) > 0 {
			return strings.TrimSpace(string(data))
		}
	} else {
		log.Debug().Err(err).Msg("could not run `hostname` command")
	}

	name, err := os.Hostname()
	if err != nil {
		log.Debug().Err(err).Msg("could not determine hostname")
		return ""
	}
	return name
}

// outboundIP returns the preferred outbound ip of this machine
func outboundIP() (net.IP, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	return localAddr.IP, nil
}
