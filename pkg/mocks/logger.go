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

// Package mocks holds the test doubles the rest of the module's test
// suites build on: a null (discarding) rfltypes.Logger and a builder around
// vfst for a real, disposable rfltypes.FS.
package mocks

import "github.com/elastic-sync/rfl/pkg/rfltypes"

// NewTestLogger returns a null logger suitable for tests that don't care
// about log output, mirroring the teacher's NewNullLogger use in
// fixtures that just need something non-nil.
func NewTestLogger() rfltypes.Logger {
	return rfltypes.NewNullLogger()
}
