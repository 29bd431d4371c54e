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

import "github.com/elastic-sync/rfl/pkg/config"

// Find does a binary search of fl.Entries[fl.Low..fl.High] (which must
// already be sorted under Compare) for an entry matching target's name.
// Because clean clears duplicates in place rather than compacting the
// array, a probed slot may be inactive; Find then chases its cached
// forward (nextActive) or backward (prevActive) distance to the nearest
// active neighbor, updating the cached distance to point straight at it
// so the next probe through the same slot is cheaper. Ported from
// original_source/flist.c's flist_find.
func Find(fl *FileList, target *Entry, ctx *config.Context) (int, bool) {
	low, high := fl.Low, fl.High

	for low <= high {
		mid := (low + high) / 2
		midUp := mid

		if !fl.Entries[mid].IsActive() {
			midUp = mid + fl.Entries[mid].nextActive
			for midUp < len(fl.Entries) && !fl.Entries[midUp].IsActive() {
				midUp += fl.Entries[midUp].nextActive
			}
			fl.Entries[mid].nextActive = midUp - mid

			if midUp > high {
				newHigh := high - fl.Entries[high].prevActive
				for newHigh >= 0 && !fl.Entries[newHigh].IsActive() {
					newHigh -= fl.Entries[newHigh].prevActive
				}
				fl.Entries[high].prevActive = high - newHigh
				high = newHigh
				continue
			}
		}

		diff := Compare(fl.Entries[midUp], target, ctx)
		switch {
		case diff == 0:
			if !ctx.DirOrderingApplies() && fl.Entries[midUp].IsDir() != target.IsDir() {
				return -1, false
			}
			return midUp, true
		case diff < 0:
			low = midUp + 1
		default:
			high = mid - 1
		}
	}
	return -1, false
}
