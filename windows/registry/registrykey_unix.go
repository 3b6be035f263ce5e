// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

//go:build !windows
// +build !windows

package registry

import "github.com/cockroachdb/errors"

// non-windows stub
func GetNativeRegistryKeyItems(path string) ([]RegistryKeyItem, error) {
	return nil, errors.New("native registry key items not supported on non-windows platforms")
}
