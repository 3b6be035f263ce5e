// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package cnrestore holds build metadata for the cnrestore CLI, a tool
// that backs up and restores Windows subsystem configuration (registry
// keys, configuration files, application settings) between a backup
// store and the live system.
package cnrestore

import "strings"

// Version is set via ldflags at build time
var Version string

// Build version is set via ldflags at build time
var Build string

// Date of the build, set via ldflags
var Date string

// GetVersion returns the version of the binary
func GetVersion() string {
	if Version == "" {
		return "unstable"
	}
	return Version
}

// GetBuild returns the git sha of the build
func GetBuild() string {
	b := Build
	if b == "" {
		b = "development"
	}
	return b
}

func GetDate() string {
	if Date == "" {
		return "unknown"
	}
	return Date
}

// Info on this application with version and build
func Info() string {
	return "cnrestore " + GetVersion() + " (" + GetBuild() + ", " + GetDate() + ")"
}

// LatestMajorVersion returns the major version prefix, e.g. "1.x" for 1.2.3
func LatestMajorVersion() string {
	v := GetVersion()
	if v == "unstable" {
		return v
	}
	return strings.SplitN(v, ".", 2)[0] + ".x"
}
