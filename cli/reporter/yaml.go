// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reporter

import (
	"io"

	"gopkg.in/yaml.v3"

	"go.mondoo.com/cnrestore/restore"
)

// ConvertToYAML writes the results as a YAML stream, one document per
// feature.
func ConvertToYAML(results []*restore.Result, out io.Writer) error {
	enc := yaml.NewEncoder(out)
	defer enc.Close()
	for i := range results {
		if err := enc.Encode(results[i]); err != nil {
			return err
		}
	}
	return nil
}
