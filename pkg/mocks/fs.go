/*
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

package mocks

import (
	"github.com/twpayne/go-vfs/vfst"

	"github.com/elastic-sync/rfl/pkg/rfltypes"
)

// NewTestFS builds a real, temp-dir-backed rfltypes.FS from a vfst
// directory tree description, the same fixture style the teacher's
// cmd/config tests use. The caller must defer the returned cleanup.
func NewTestFS(root interface{}) (rfltypes.FS, func(), error) {
	fs, cleanup, err := vfst.NewTestFS(root)
	if err != nil {
		return nil, func() {}, err
	}
	return fs, cleanup, nil
}
