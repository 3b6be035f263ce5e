// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

//go:build windows
// +build windows

package registry

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows/registry"
)

// GetNativeRegistryKeyItems reads the properties of a registry key through
// the Windows API, avoiding a PowerShell round-trip on local connections.
func GetNativeRegistryKeyItems(path string) ([]RegistryKeyItem, error) {
	root, subkey, err := splitRegistryPath(path)
	if err != nil {
		return nil, err
	}

	k, err := registry.OpenKey(root, subkey, registry.QUERY_VALUE)
	if err != nil {
		if err == registry.ErrNotExist {
			return nil, errors.Wrap(ErrKeyNotFound, path)
		}
		return nil, err
	}
	defer k.Close()

	names, err := k.ReadValueNames(0)
	if err != nil {
		return nil, err
	}

	items := make([]RegistryKeyItem, 0, len(names))
	for _, name := range names {
		item, err := readNativeValue(k, name)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read value %s of %s", name, path)
		}
		items = append(items, item)
	}
	return items, nil
}

func readNativeValue(k registry.Key, name string) (RegistryKeyItem, error) {
	item := RegistryKeyItem{Key: name}

	_, kind, err := k.GetValue(name, nil)
	if err != nil {
		return item, err
	}
	item.Value.Kind = int(kind)

	switch kind {
	case registry.SZ, registry.EXPAND_SZ:
		s, _, err := k.GetStringValue(name)
		if err != nil {
			return item, err
		}
		item.Value.String = s
	case registry.MULTI_SZ:
		values, _, err := k.GetStringsValue(name)
		if err != nil {
			return item, err
		}
		item.Value.MultiString = values
		item.Value.String = strings.Join(values, " ")
	case registry.DWORD, registry.QWORD:
		n, _, err := k.GetIntegerValue(name)
		if err != nil {
			return item, err
		}
		item.Value.Number = int64(n)
		item.Value.String = strconv.FormatInt(int64(n), 10)
	case registry.BINARY:
		b, _, err := k.GetBinaryValue(name)
		if err != nil {
			return item, err
		}
		item.Value.Binary = b
	}

	return item, nil
}

var rootKeys = map[string]registry.Key{
	"HKEY_LOCAL_MACHINE":  registry.LOCAL_MACHINE,
	"HKLM":                registry.LOCAL_MACHINE,
	"HKEY_CURRENT_USER":   registry.CURRENT_USER,
	"HKCU":                registry.CURRENT_USER,
	"HKEY_CLASSES_ROOT":   registry.CLASSES_ROOT,
	"HKCR":                registry.CLASSES_ROOT,
	"HKEY_USERS":          registry.USERS,
	"HKU":                 registry.USERS,
	"HKEY_CURRENT_CONFIG": registry.CURRENT_CONFIG,
	"HKCC":                registry.CURRENT_CONFIG,
}

func splitRegistryPath(path string) (registry.Key, string, error) {
	root, subkey, found := strings.Cut(path, `\`)
	if !found {
		return 0, "", errors.Newf("invalid registry path %s", path)
	}
	k, ok := rootKeys[strings.ToUpper(root)]
	if !ok {
		return 0, "", errors.Newf("unknown registry root key %s", root)
	}
	return k, subkey, nil
}
