// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package defaultapps

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	assert.Equal(t,
		`dism.exe /Online /Export-DefaultAppAssociations:"C:\Backup\DefaultApps\associations.xml"`,
		ExportCmd(`C:\Backup\DefaultApps\associations.xml`))
	assert.Equal(t,
		`dism.exe /Online /Import-DefaultAppAssociations:"C:\Backup\DefaultApps\associations.xml"`,
		ImportCmd(`C:\Backup\DefaultApps\associations.xml`))
}

func TestParseAssociations(t *testing.T) {
	data, err := os.Open("./testdata/associations.xml")
	require.NoError(t, err)
	defer data.Close()

	associations, err := ParseAssociations(data)
	require.NoError(t, err)
	assert.Equal(t, 6, len(associations))

	assert.Equal(t, ".htm", associations[0].Identifier)
	assert.Equal(t, "ChromeHTML", associations[0].ProgID)
	assert.Equal(t, "Google Chrome", associations[0].ApplicationName)

	assert.Equal(t, "https", associations[4].Identifier)
	assert.Equal(t, ".txt", associations[5].Identifier)
	assert.Equal(t, "Notepad", associations[5].ApplicationName)
}
