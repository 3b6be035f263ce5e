// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"github.com/spf13/cobra/doc"
)

// GenerateMarkdown writes markdown documentation for the whole command
// tree into dir. It is used by the gen-docs helper app.
func GenerateMarkdown(dir string) error {
	rootCmd.DisableAutoGenTag = true
	return doc.GenMarkdownTree(rootCmd, dir)
}
