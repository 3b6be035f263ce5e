// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-version"
)

// Options carries the per-feature settings from the configuration file.
// Zero values select the documented defaults; the feature constructors
// fill them in.
type Options struct {
	Browsers BrowsersOptions `json:"browsers,omitempty" mapstructure:"browsers"`
	Word     WordOptions     `json:"word,omitempty" mapstructure:"word"`
	WSL      WSLOptions      `json:"wsl,omitempty" mapstructure:"wsl"`
}

type BrowsersOptions struct {
	// Profile is the Chromium profile directory name, default "Default".
	Profile string `json:"profile,omitempty" mapstructure:"profile"`
}

type WordOptions struct {
	// Version selects the Office registry tree, default "16.0" (Office
	// 2016 and later).
	Version string `json:"version,omitempty" mapstructure:"version"`
}

type WSLOptions struct {
	// Distribution is the distribution to back up and restore, default
	// "Ubuntu".
	Distribution string `json:"distribution,omitempty" mapstructure:"distribution"`
	// InstallDir is where a restored distribution is registered, default
	// %LOCALAPPDATA%\wsl\<distribution>.
	InstallDir string `json:"install_dir,omitempty" mapstructure:"install_dir"`
}

// Validate rejects settings the features cannot work with.
func (o Options) Validate() error {
	if o.WSL.Distribution != "" && strings.ContainsAny(o.WSL.Distribution, `\/:*?"<>| `) {
		return errors.Newf("invalid WSL distribution name %q", o.WSL.Distribution)
	}
	if o.Word.Version != "" {
		if _, err := version.NewVersion(o.Word.Version); err != nil {
			return errors.Wrapf(err, "invalid Word version %q", o.Word.Version)
		}
	}
	return nil
}
