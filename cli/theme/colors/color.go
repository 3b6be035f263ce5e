// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package colors

// NOTE: this package is used by various packages and should really have NO external dependency

import (
	"github.com/muesli/termenv"
)

// Color Theme
type Theme struct {
	// messages
	Primary   termenv.Color
	Secondary termenv.Color
	Disabled  termenv.Color
	Error     termenv.Color
	Success   termenv.Color

	// severity
	Critical termenv.Color
	High     termenv.Color
	Medium   termenv.Color
	Low      termenv.Color
	Good     termenv.Color
	Unknown  termenv.Color
}

// Profile is the color profile of the attached terminal.
var Profile = termenv.ColorProfile()

// DefaultColorTheme uses the terminal's color profile. Ascii terminals get
// the zero color values, which termenv renders as plain text.
var DefaultColorTheme = func() Theme {
	if Profile == termenv.Ascii {
		return Theme{}
	}

	return Theme{
		Primary:   Profile.Color("#5c67f5"),
		Secondary: Profile.Color("#61f2f2"),
		Disabled:  Profile.Color("#a9a9a9"),
		Error:     Profile.Color("#ff5555"),
		Success:   Profile.Color("#61f261"),

		Critical: Profile.Color("#ff5555"),
		High:     Profile.Color("#ff8a5c"),
		Medium:   Profile.Color("#ffc75c"),
		Low:      Profile.Color("#ffef5c"),
		Good:     Profile.Color("#61f261"),
		Unknown:  Profile.Color("#a9a9a9"),
	}
}()

func ProfileName(profile termenv.Profile) string {
	switch profile {
	case termenv.Ascii:
		return "Ascii"
	case termenv.ANSI:
		return "ANSI"
	case termenv.ANSI256:
		return "ANSI256"
	case termenv.TrueColor:
		return "TrueColor"
	default:
		return "unknown"
	}
}
