// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.mondoo.com/cnrestore/cli/components"
	"go.mondoo.com/cnrestore/cli/config"
	cli_errors "go.mondoo.com/cnrestore/cli/errors"
	"go.mondoo.com/cnrestore/cli/theme"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/features"
	"go.mondoo.com/cnrestore/restore"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the features this tool can back up and restore",
	Long: `
List the feature catalog: the items each feature covers, the services it
pauses while writing, and which backup location (machine-specific or
shared) currently resolves for it.
	`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Read()
		if err != nil {
			return cli_errors.NewCommandError(err, 1)
		}

		conn := connection.NewLocal()
		catalog := features.All(features.DetectEnv(), conf.Features)

		// a configured backup store is optional for a plain listing
		var loc *restore.Location
		if l, err := backupLocation(conf, conn); err == nil {
			loc = &l
		}

		listings := make([]featureListing, 0, len(catalog))
		for i := range catalog {
			entry := featureListing{feature: catalog[i]}
			if loc != nil {
				if dir, err := loc.Resolve(conn.FS(), catalog[i].Subdir); err == nil {
					entry.backup = dir
				}
			}
			listings = append(listings, entry)
		}

		fmt.Fprint(cmd.OutOrStdout(), components.List(theme.DefaultTheme, listings))
		return nil
	},
}

// featureListing renders one catalog entry for components.List.
type featureListing struct {
	feature features.Feature
	backup  string
}

func (l featureListing) PrintableKeys() []string {
	return []string{"feature", "items", "pauses", "backup"}
}

func (l featureListing) PrintableValue(index int) string {
	switch l.PrintableKeys()[index] {
	case "feature":
		return l.feature.Name
	case "items":
		return strings.Join(itemNames(l.feature.Restore), ", ")
	case "pauses":
		if len(l.feature.Services) == 0 {
			return "-"
		}
		return strings.Join(l.feature.Services, ", ")
	case "backup":
		if l.backup == "" {
			return theme.DefaultTheme.Disabled("none")
		}
		return l.backup
	default:
		return ""
	}
}

func itemNames(items []restore.Item) []string {
	names := make([]string, len(items))
	for i := range items {
		names[i] = items[i].Name
	}
	return names
}
