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

import "strings"

// Stats holds build-time and transfer-time counters spec.md §3 calls
// for on the FileList itself.
type Stats struct {
	TotalSize   uint64
	FileCount   int
	DirCount    int
	Skipped     int
}

// FileList is the ordered array of entry pointers plus the active
// region bounds and the pools backing it.
type FileList struct {
	Entries []*Entry

	// Low and High bound the active region [Low, High] after Clean.
	// Before Clean they are meaningless; a freshly built list should be
	// read via Entries directly.
	Low, High int

	Pool    *Pool
	KeyPool *KeyPool

	Stats Stats

	IOErrors IOErrorBits
}

// New returns an empty FileList with fresh pools.
func New() *FileList {
	return &FileList{
		Pool:    NewPool(),
		KeyPool: NewKeyPool(),
	}
}

// NewEntry allocates a zeroed Entry from the list's pool, sets its
// Dirname/Basename/depth, marks it active, and appends it. It does not
// sort or de-duplicate — that is Clean's job.
func (fl *FileList) NewEntry(dirname, basename string) *Entry {
	e := fl.Pool.Alloc()
	e.Dirname = dirname
	e.Basename = basename
	e.Flags = FlagIsActive
	if dirname == "" {
		e.depth = 0
	} else {
		e.depth = strings.Count(dirname, "/") + 1
	}
	fl.Entries = append(fl.Entries, e)
	return e
}

// Add appends a pre-built entry (used by the wire decoder, which builds
// entries field-by-field rather than through NewEntry).
func (fl *FileList) Add(e *Entry) {
	e.Flags |= FlagIsActive
	fl.Entries = append(fl.Entries, e)
}

// Len reports the total number of entries, active and cleared.
func (fl *FileList) Len() int { return len(fl.Entries) }
