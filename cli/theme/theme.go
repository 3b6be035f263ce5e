// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package theme

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"go.mondoo.com/cnrestore/cli/theme/colors"
)

var DefaultTheme = OperatingSystemTheme

// logo for the landing page
const logo = `  ___ _ __  _ __ ___  ___| |_ ___  _ __ ___
 / __| '_ \| '__/ _ \/ __| __/ _ \| '__/ _ \
| (__| | | | | |  __/\__ \ || (_) | | |  __/
 \___|_| |_|_|  \___||___/\__\___/|_|  \___|`

// Theme bundles the terminal colors and formatting helpers that the CLI
// and the reporter use
type Theme struct {
	Colors  colors.Theme
	Landing string
	Welcome string
	Prefix  string
	List    func(items ...string) string

	Primary   func(...any) string
	Secondary func(...any) string
	Error     func(...any) string
	Warn      func(...any) string
	Success   func(...any) string
	Disabled  func(...any) string
}

// H1 prints a headline
func (t *Theme) H1(headline string) string {
	var res bytes.Buffer
	res.WriteString(t.Primary(headline))
	res.WriteString("\n")
	res.WriteString(t.Primary(strings.Repeat("=", len(headline))))
	res.WriteString("\n\n")
	return res.String()
}

// H2 prints a headline
func (t *Theme) H2(headline string) string {
	var res bytes.Buffer
	res.WriteString(t.Primary(headline))
	res.WriteString("\n")
	res.WriteString(t.Primary(strings.Repeat("-", len(headline))))
	res.WriteString("\n\n")
	return res.String()
}

func themeHelpers(c colors.Theme) Theme {
	return Theme{
		Colors: c,
		List: func(items ...string) string {
			var w strings.Builder
			for i := range items {
				w.WriteString("- " + items[i] + "\n")
			}
			res := w.String()
			return res[0 : len(res)-1]
		},
		Primary: func(args ...any) string {
			return termenv.String(fmt.Sprint(args...)).Foreground(c.Primary).String()
		},
		Secondary: func(args ...any) string {
			return termenv.String(fmt.Sprint(args...)).Foreground(c.Secondary).String()
		},
		Error: func(args ...any) string {
			return termenv.String(fmt.Sprint(args...)).Foreground(c.Error).String()
		},
		Warn: func(args ...any) string {
			return termenv.String(fmt.Sprint(args...)).Foreground(c.Medium).String()
		},
		Success: func(args ...any) string {
			return termenv.String(fmt.Sprint(args...)).Foreground(c.Success).String()
		},
		Disabled: func(args ...any) string {
			return termenv.String(fmt.Sprint(args...)).Foreground(c.Disabled).String()
		},
	}
}

// PlainTheme renders everything without colors, for non-tty output
var PlainTheme = func() *Theme {
	t := themeHelpers(colors.Theme{})
	t.List = DefaultTheme.List
	t.Primary = plain
	t.Secondary = plain
	t.Error = plain
	t.Warn = plain
	t.Success = plain
	t.Disabled = plain
	t.Landing = "cnrestore"
	t.Prefix = "> "
	return &t
}()

func plain(args ...any) string { return fmt.Sprint(args...) }
