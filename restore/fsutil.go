// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package restore

import (
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// CopyFile copies one file, creating the destination's parent directories.
func CopyFile(fs afero.Fs, src string, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, "could not open %s", src)
	}
	defer in.Close()

	if err := fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrapf(err, "could not create %s", filepath.Dir(dst))
	}

	out, err := fs.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "could not copy %s to %s", src, dst)
	}
	return out.Close()
}

// CopyDir copies a directory tree. Exclude patterns are glob-matched
// against file and directory names; a matched directory is skipped with
// its whole subtree.
func CopyDir(fs afero.Fs, src string, dst string, exclude []string) error {
	return afero.Walk(fs, src, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if excluded(exclude, info.Name()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return fs.MkdirAll(target, 0o755)
		}
		return CopyFile(fs, p, target)
	})
}

func excluded(patterns []string, name string) bool {
	for i := range patterns {
		if ok, _ := path.Match(patterns[i], name); ok {
			return true
		}
	}
	return false
}
