// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reporter

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.mondoo.com/cnrestore/cli/pager"
	"go.mondoo.com/cnrestore/cli/theme"
	"go.mondoo.com/cnrestore/restore"
)

type Format byte

const (
	FormatCompact Format = iota + 1
	FormatFull
	FormatJSON
	FormatYAML
)

// Formats that are supported by the reporter
var Formats = map[string]Format{
	"compact": FormatCompact,
	"full":    FormatFull,
	"json":    FormatJSON,
	"yaml":    FormatYAML,
}

func AllFormats() string {
	res := make([]string, 0, len(Formats))
	for k := range Formats {
		res = append(res, k)
	}
	sort.Strings(res)
	return strings.Join(res, ", ")
}

type Reporter struct {
	Format   Format
	Theme    *theme.Theme
	UsePager bool
	Pager    string
}

func New(format string) (*Reporter, error) {
	f, ok := Formats[strings.ToLower(format)]
	if !ok {
		return nil, errors.Newf("unknown output format '%s', use one of: %s", format, AllFormats())
	}
	return &Reporter{
		Format: f,
		Theme:  theme.DefaultTheme,
	}, nil
}

// Print renders the feature results in the reporter's format.
func (r *Reporter) Print(out io.Writer, results []*restore.Result) error {
	switch r.Format {
	case FormatCompact:
		return r.printCli(out, results, true)
	case FormatFull:
		return r.printCli(out, results, false)
	case FormatJSON:
		return ConvertToJSON(results, out)
	case FormatYAML:
		return ConvertToYAML(results, out)
	default:
		return errors.Newf("unknown output format %d", r.Format)
	}
}

func (r *Reporter) printCli(out io.Writer, results []*restore.Result, compact bool) error {
	rr := &cliReporter{Reporter: r, isCompact: compact, out: out, data: results}
	if r.UsePager && pager.Supported(r.Pager) {
		buf := &bytes.Buffer{}
		rr.out = buf
		if err := rr.print(); err != nil {
			return err
		}
		return pager.Display(buf.String(), r.Pager)
	}
	return rr.print()
}
