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

// Package flistutil holds small reporting helpers for CLI output: a
// litter-backed pretty-printer for debugging a *flist.FileList and a
// go-units-backed human-readable stats summary.
package flistutil

import (
	"fmt"
	"strings"

	"github.com/docker/go-units"
	"github.com/sanity-io/litter"

	"github.com/elastic-sync/rfl/pkg/flist"
)

// DumpEntries pretty-prints every entry in fl, active or cleared, the
// way the teacher's config tests use litter.Sdump for failure messages.
func DumpEntries(fl *flist.FileList) string {
	var b strings.Builder
	for i, e := range fl.Entries {
		fmt.Fprintf(&b, "[%d] %s\n", i, litter.Sdump(e))
	}
	return b.String()
}

// HumanStats renders fl.Stats using go-units.BytesSize, the same helper
// the teacher uses to log transfer sizes.
func HumanStats(fl *flist.FileList) string {
	return fmt.Sprintf(
		"%d files, %d dirs, %s total (%d skipped)",
		fl.Stats.FileCount,
		fl.Stats.DirCount,
		units.BytesSize(float64(fl.Stats.TotalSize)),
		fl.Stats.Skipped,
	)
}
