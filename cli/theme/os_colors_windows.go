// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package theme

import (
	"github.com/muesli/termenv"
	"go.mondoo.com/cnrestore/cli/theme/colors"
)

// OperatingSystemTheme for windows terminals
var OperatingSystemTheme = func() *Theme {
	t := themeHelpers(colors.DefaultColorTheme)
	t.Landing = termenv.String(logo+"\n").Foreground(colors.DefaultColorTheme.Primary).String()
	t.Welcome = logo + "\n"
	// NOTE: keep the prefix short for windows, long prefixes render badly in
	// legacy consoles
	t.Prefix = "> "
	return &t
}()
