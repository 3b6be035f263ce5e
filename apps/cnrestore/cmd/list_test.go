package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mondoo.com/cnrestore/cli/components"
	"go.mondoo.com/cnrestore/cli/theme"
	"go.mondoo.com/cnrestore/features"
)

func TestFeatureListing(t *testing.T) {
	catalog := features.All(features.DetectEnv(), features.Options{})

	kb, ok := features.Find(catalog, "keyboard")
	require.True(t, ok)
	l := featureListing{feature: kb, backup: `D:\Backups\host1\Keyboard`}

	assert.Equal(t, []string{"feature", "items", "pauses", "backup"}, l.PrintableKeys())
	assert.Equal(t, "Keyboard", l.PrintableValue(0))
	assert.Equal(t, "Registry", l.PrintableValue(1))
	assert.Equal(t, "-", l.PrintableValue(2), "keyboard pauses no services")
	assert.Equal(t, `D:\Backups\host1\Keyboard`, l.PrintableValue(3))

	wsl, ok := features.Find(catalog, "wsl")
	require.True(t, ok)
	l = featureListing{feature: wsl}
	assert.Equal(t, "LxssManager", l.PrintableValue(2))
}

func TestFeatureListingRender(t *testing.T) {
	catalog := features.All(features.DetectEnv(), features.Options{})
	kb, ok := features.Find(catalog, "keyboard")
	require.True(t, ok)

	out := components.List(theme.PlainTheme, []featureListing{{feature: kb}})
	assert.Contains(t, out, "feature:")
	assert.Contains(t, out, "Keyboard")
	assert.Contains(t, out, "none")
}
