// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package prof exposes the Go profiler over HTTP when requested through
// an environment variable, e.g.
//
//	CNRESTORE_PROF="enabled,listen=localhost:6060,memprofilerate=4096"
package prof

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

type profOpts struct {
	Enabled        bool
	Listen         string
	MemProfileRate *int
}

var defaultOpts = profOpts{
	Enabled: false,
	Listen:  "localhost:6060",
}

// InitProfiler starts the pprof endpoint if the app's _PROF environment
// variable asks for it.
func InitProfiler(appName string) {
	envVar := strings.ToUpper(appName) + "_PROF"
	opts, err := parseProf(os.Getenv(envVar))
	if err != nil {
		log.Error().Err(err).Str("env", envVar).Msg("could not parse profiler options")
		return
	}
	if !opts.Enabled {
		return
	}

	if opts.MemProfileRate != nil {
		runtime.MemProfileRate = *opts.MemProfileRate
		log.Info().Int("memprofilerate", *opts.MemProfileRate).Msg("profiler> set memory profile rate")
	}

	go func() {
		log.Info().Str("listen", opts.Listen).Msg("profiler> serving pprof endpoint")
		if err := http.ListenAndServe(opts.Listen, nil); err != nil {
			log.Error().Err(err).Msg("profiler> pprof endpoint failed")
		}
	}()
}

// parseProf parses a comma-separated option string like
// "enabled,listen=localhost:7474,memprofilerate=43". Empty segments and
// empty values fall back to the defaults.
func parseProf(s string) (profOpts, error) {
	opts := defaultOpts

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		key := strings.TrimSpace(kv[0])
		value := ""
		if len(kv) == 2 {
			value = strings.TrimSpace(kv[1])
		}

		switch key {
		case "enable", "enabled":
			opts.Enabled = len(kv) == 1 || value == "true"
		case "listen":
			if value != "" {
				opts.Listen = value
			}
		case "memprofilerate":
			if value == "" {
				continue
			}
			rate, err := strconv.Atoi(value)
			if err != nil {
				return opts, errors.Wrapf(err, "invalid memprofilerate %q", value)
			}
			opts.MemProfileRate = &rate
		}
	}

	return opts, nil
}
