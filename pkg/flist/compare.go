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

package flist

import (
	"strings"

	"github.com/elastic-sync/rfl/pkg/config"
)

// Compare is the path-aware total order spec.md §4.4 describes: each
// entry is compared as if it were the string dirname + "/" + basename,
// with three deviations active on protocols that honor directory
// ordering (ctx.DirOrderingApplies()):
//   - a directory is treated as if it had a trailing '/', sorting it
//     immediately before its own contents (and after a sibling such as
//     "dir.txt", since '.' sorts before '/');
//   - at the same depth a directory never compares equal to a
//     non-directory of the same name;
//   - a basename of exactly "." at a directory sorts before all other
//     siblings.
//
// original_source/flist.c's f_name_cmp implements this with an explicit
// per-side state machine (DIR/SLASH/BASE/TRAILING) so it can compare
// byte-by-byte without ever materializing the full path. Since Go
// strings are cheap to concatenate and compare, this builds the
// equivalent "virtual path" directly — same ordering, same type-flip
// tie-breaking, without the pointer-cursor machinery a C arena forces.
func Compare(e1, e2 *Entry, ctx *config.Context) int {
	a1 := e1 != nil && e1.IsActive()
	a2 := e2 != nil && e2.IsActive()
	if !a1 {
		if !a2 {
			return 0
		}
		return 1
	}
	if !a2 {
		return -1
	}

	if !ctx.DirOrderingApplies() {
		return strings.Compare(legacyName(e1), legacyName(e2))
	}

	v1 := virtualName(e1)
	v2 := virtualName(e2)
	return strings.Compare(v1, v2)
}

// legacyName is the pre-29 comparand: a plain "dirname/basename" string
// with none of the directory-ordering deviations applied, matching
// original_source/flist.c's behavior when t_path degenerates to t_ITEM
// for every entry.
func legacyName(e *Entry) string {
	if e.Dirname == "" {
		return e.Basename
	}
	return e.Dirname + "/" + e.Basename
}

// virtualName builds the new-protocol comparand: dirname taken
// literally, followed by the virtual basename (which may carry a
// trailing '/' for directories, or collapse to "" for a root's "."
// basename).
func virtualName(e *Entry) string {
	base := virtualBasename(e)
	if e.Dirname == "" {
		return base
	}
	return e.Dirname + "/" + base
}

func virtualBasename(e *Entry) string {
	if e.IsDir() {
		if e.Basename == "." {
			return ""
		}
		return e.Basename + "/"
	}
	return e.Basename
}
