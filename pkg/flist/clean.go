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
	"sort"
	"strings"

	"github.com/elastic-sync/rfl/pkg/config"
)

// Clean sorts fl under Compare, resolves duplicate names (keeping a
// directory over a non-directory, else the earlier entry), establishes
// Low/High, optionally strips the root, and optionally prunes empty
// directory chains. Ported from original_source/flist.c's clean_flist,
// in index-based Go rather than pointer arithmetic.
func Clean(fl *FileList, ctx *config.Context, stripRoot, noDups, pruneEmptyDirs bool) {
	n := fl.Len()
	if n == 0 {
		fl.Low, fl.High = 0, -1
		return
	}

	sort.Slice(fl.Entries, func(i, j int) bool {
		return Compare(fl.Entries[i], fl.Entries[j], ctx) < 0
	})

	prevI := 0
	for prevI < n && !fl.Entries[prevI].IsActive() {
		prevI++
	}
	fl.Low = prevI
	if prevI >= n {
		fl.High = -1
		return
	}

	for i := prevI + 1; noDups && i < n; i++ {
		file := fl.Entries[i]
		if !file.IsActive() {
			continue
		}

		j := -1
		if Compare(file, fl.Entries[prevI], ctx) == 0 {
			j = prevI
		} else if ctx.DirOrderingApplies() && file.IsDir() {
			// Make sure this directory doesn't duplicate a
			// non-directory earlier in the list: search for it
			// as if it were a plain file.
			savedMode := file.Mode
			file.Mode = modeRegularFile
			oldHigh := fl.High
			fl.High = prevI
			if idx, found := Find(fl, file, ctx); found {
				j = idx
			}
			fl.High = oldHigh
			file.Mode = savedMode
		}

		if j >= 0 {
			fp := fl.Entries[j]
			var keep, drop int
			if file.IsDir() != fp.IsDir() {
				if file.IsDir() {
					keep, drop = i, j
				} else {
					keep, drop = j, i
				}
			} else {
				keep, drop = j, i
			}

			fl.Entries[keep].Flags |= fl.Entries[drop].Flags & (FlagTopDir | FlagXferDir)
			clearEntry(fl.Entries[drop])

			if keep == i {
				if fl.Low == drop {
					k := drop + 1
					for k < i && !fl.Entries[k].IsActive() {
						k++
					}
					fl.Low = k
				}
				prevI = i
			}
		} else {
			prevI = i
		}
	}
	if noDups {
		fl.High = prevI
	} else {
		fl.High = n - 1
	}

	if stripRoot {
		for i := fl.Low; i <= fl.High; i++ {
			e := fl.Entries[i]
			if e.Dirname == "" {
				continue
			}
			e.Dirname = strings.TrimLeft(e.Dirname, "/")
		}
	}

	if pruneEmptyDirs && noDups {
		pruneEmpty(fl, ctx)
	}
}

// clearEntry drops an entry from the active region, resetting it to the
// cleared-overlay state: a forward/backward distance of one slot until
// Find's lazy path compression widens it.
func clearEntry(e *Entry) {
	e.Flags &^= FlagIsActive
	e.nextActive = 1
	e.prevActive = 1
}

const modeRegularFile = 0100000

// pruneEmpty performs clean_flist's second pass: a directory survives
// only if some non-directory at greater depth is found beneath it during
// the walk; unwanted directory chains are cleared at the end. depth is
// temporarily overloaded as a negative link back to the pending
// directory's predecessor in the chain, exactly as the C implementation
// overloads dir.depth.
func pruneEmpty(fl *FileList, ctx *config.Context) {
	prevI := 0
	prevDepth := 0

	for i := fl.Low; i <= fl.High; i++ {
		file := fl.Entries[i]
		if file.IsDir() && file.depth > 0 {
			for j := prevDepth; j >= file.depth; j-- {
				fp := fl.Entries[prevI]
				if fp.depth >= 0 {
					break
				}
				prevI = -fp.depth - 1
				clearEntry(fp)
			}
			prevDepth = file.depth
			file.depth = -prevI - 1
			prevI = i
		} else {
			for j := prevDepth; ; j-- {
				fp := fl.Entries[prevI]
				if fp.depth >= 0 {
					break
				}
				prevI = -fp.depth - 1
				fp.depth = j
			}
		}
	}

	for {
		fp := fl.Entries[prevI]
		if fp.depth >= 0 {
			break
		}
		prevI = -fp.depth - 1
		clearEntry(fp)
	}

	i := fl.Low
	for i <= fl.High && !fl.Entries[i].IsActive() {
		i++
	}
	fl.Low = i
	i = fl.High
	for i >= fl.Low && !fl.Entries[i].IsActive() {
		i--
	}
	fl.High = i
}
