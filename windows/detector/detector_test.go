// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package detector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// UBR - Update Build Revision
func TestParseCurrentVersion(t *testing.T) {
	t.Run("parse windows version", func(t *testing.T) {
		data := `{
			"CurrentBuild":  "17763",
			"UBR":  720,
			"EditionID": "ServerDatacenterEval",
			"ReleaseId": "1809"
		}`

		m, err := ParseCurrentVersion(strings.NewReader(data))
		assert.Nil(t, err)

		assert.Equal(t, "17763", m.CurrentBuild, "buildnumber should be parsed properly")
		assert.Equal(t, 720, m.UBR, "ubr should be parsed properly")
		assert.Equal(t, "ServerDatacenterEval", m.EditionID, "edition should be parsed properly")
	})

	t.Run("parse windows version with display version", func(t *testing.T) {
		data := `{
			"CurrentBuild":  "26100",
			"UBR":  2033,
			"EditionID":  "Enterprise",
			"ProductName":  "Windows 10 Enterprise",
			"DisplayVersion":  "24H2"
		}`
		m, err := ParseCurrentVersion(strings.NewReader(data))
		assert.Nil(t, err)

		assert.Equal(t, "26100", m.CurrentBuild, "buildnumber should be parsed properly")
		assert.Equal(t, 2033, m.UBR, "ubr should be parsed properly")
		assert.Equal(t, "24H2", m.DisplayVersion, "display version should be parsed properly")
	})
}
