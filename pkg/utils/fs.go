// nolint:goheader

/*
Copyright © 2022 spf13/afero
Copyright © 2022 - 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package utils holds small filesystem helpers shared by the builder and
// the CLI, kept separate from pkg/walk so they stay testable against a
// bare rfltypes.FS without dragging in rule-stack/recursion state.
package utils

import (
	"os"
	"strings"

	"github.com/elastic-sync/rfl/pkg/rfltypes"
)

// Exists reports whether path exists on fs, without treating "not found"
// as an error.
func Exists(fs rfltypes.FS, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether path is a directory on fs.
func IsDir(fs rfltypes.FS, path string) (bool, error) {
	fi, err := fs.Stat(path)
	if err != nil {
		return false, err
	}
	return fi.IsDir(), nil
}

// Readlink calls fs.Readlink but trims the temporary prefix a test
// fixture's RawPath may add to the result.
func Readlink(fs rfltypes.FS, name string) (string, error) {
	res, err := fs.Readlink(name)
	if err != nil {
		return res, err
	}
	raw, err := fs.RawPath(name)
	return strings.TrimPrefix(res, strings.TrimSuffix(raw, name)), err
}
