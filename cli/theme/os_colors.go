// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

//go:build !windows

package theme

import (
	"github.com/muesli/termenv"
	"go.mondoo.com/cnrestore/cli/theme/colors"
)

// OperatingSystemTheme for unix terminals
var OperatingSystemTheme = func() *Theme {
	t := themeHelpers(colors.DefaultColorTheme)
	t.Landing = termenv.String(logo).Foreground(colors.DefaultColorTheme.Primary).String()
	t.Welcome = logo + "\n"
	t.Prefix = "cnrestore> "
	return &t
}()
