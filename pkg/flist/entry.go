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

// Package flist is the entity model, pool, comparator, cleaner and
// lookup: the in-memory FileList both peers build and reconcile.
package flist

// Entry flag bits, named after original_source/flist.c's FLAG_* bits.
const (
	FlagTopDir = 1 << iota
	FlagXferDir
	FlagMountDir
	FlagHlinked
	FlagLength64
	FlagIsActive
)

// Entry is the fixed header of a file record; variable-length fields
// (basename, dirname, symlink target) are stored as ordinary Go strings
// rather than a C-style byte trailer, since Go's string/GC model already
// gives shared, immutable, reference-counted-by-the-runtime storage —
// the pool (see pool.go) supplies the bump-allocation behavior the
// spec's pooled trailer is there for, not the byte layout.
type Entry struct {
	Mode    uint32
	Modtime int64
	Size    uint64

	UID, GID       uint32
	HasUID, HasGID bool

	RdevMajor, RdevMinor uint32
	HasRdev              bool

	// Dirname is the entry's parent path, or "" for a root-level entry.
	// Entries sharing a parent share the same Go string header, giving
	// the "shared pointer into pool" behavior spec.md §3 describes
	// without a manual intern table.
	Dirname  string
	Basename string

	SymlinkTarget string
	HasSymlink    bool

	// HardlinkDev/Ino identify a (dev, inode) pair used downstream to
	// group hard links; this module only carries the pair, it never
	// resolves hard-link groups itself (spec.md §1 non-goal).
	HardlinkDev, HardlinkIno uint64
	HasHardlinkKey           bool

	Checksum   []byte
	HasChecksum bool

	Flags uint32

	// depth is the dirname segment count, computed at creation and
	// immutable except during prune-empty-dirs, where it is
	// temporarily overloaded as a negative cursor (see clean.go).
	depth int

	// Cleared-entry overlay: once an entry is dropped by Clean, these
	// two fields hold signed distances to the nearest active neighbor
	// in each direction, refreshed lazily by Find. Active entries leave
	// both at zero.
	nextActive, prevActive int
}

// IsDir reports whether Mode describes a directory.
func (e *Entry) IsDir() bool { return e.Mode&modeDirBit != 0 }

// IsSymlink reports whether the entry carries a symlink target.
func (e *Entry) IsSymlink() bool { return e.HasSymlink }

// IsActive reports whether Clean has not cleared this entry.
func (e *Entry) IsActive() bool { return e.Flags&FlagIsActive != 0 }

// IsRoot reports whether this entry is a transfer-spec root: a directory
// whose Basename is exactly ".".
func (e *Entry) IsRoot() bool { return e.Basename == "." }

// FullName returns Dirname + "/" + Basename, or just Basename when
// Dirname is empty ("in root").
func (e *Entry) FullName() string {
	if e.Dirname == "" {
		return e.Basename
	}
	return e.Dirname + "/" + e.Basename
}

// Depth reports the dirname segment count recorded at creation.
func (e *Entry) Depth() int { return e.depth }

// modeDirBit mirrors POSIX S_IFDIR's position so Mode can be compared
// against raw stat output without reinterpreting the whole mode word.
const modeDirBit = 0040000
