// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reporter

import (
	"encoding/json"
	"io"

	"go.mondoo.com/cnrestore/restore"
)

// ConvertToJSON writes the results as a JSON document, one object per
// feature keyed by feature name.
func ConvertToJSON(results []*restore.Result, out io.Writer) error {
	byFeature := make(map[string]*restore.Result, len(results))
	for i := range results {
		byFeature[results[i].Feature] = results[i]
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(byFeature)
}
