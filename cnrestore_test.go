// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cnrestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionDefaults(t *testing.T) {
	assert.Equal(t, "unstable", GetVersion())
	assert.Equal(t, "development", GetBuild())
	assert.Contains(t, Info(), "cnrestore unstable")
}

func TestLatestMajorVersion(t *testing.T) {
	Version = "9.4.1"
	defer func() { Version = "" }()

	assert.Equal(t, "9.x", LatestMajorVersion())
}
