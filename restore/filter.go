// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package restore

import "strings"

// Filter selects the items to process. A non-empty include list restricts
// the set to those names, the exclude list then removes names from it.
// Names are matched case-insensitively.
func Filter(items []Item, include []string, exclude []string) []Item {
	selected := make([]Item, 0, len(items))
	for i := range items {
		if len(include) > 0 && !containsFold(include, items[i].Name) {
			continue
		}
		if containsFold(exclude, items[i].Name) {
			continue
		}
		selected = append(selected, items[i])
	}
	return selected
}

func containsFold(names []string, name string) bool {
	for i := range names {
		if strings.EqualFold(names[i], name) {
			return true
		}
	}
	return false
}
