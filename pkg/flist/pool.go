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

// poolChunkSize is how many Entry records one underlying slab holds
// before Pool grows a new one. Matches the "reserve in bulk, free in
// bulk with the list" allocation discipline spec.md §4.3 describes for
// the record pool.
const poolChunkSize = 1024

// Pool is a bump allocator over chunks of Entry records: the idiomatic
// Go analogue of the arena allocator spec.md §4.3 calls for. Allocating
// from a slab instead of one-by-one with `new` keeps many small records
// out of the GC's per-object bookkeeping, and the whole pool is released
// at once when its owning FileList is discarded.
type Pool struct {
	chunks [][]Entry
	next   int // index of the next free slot in the last chunk
}

// NewPool returns an empty record pool.
func NewPool() *Pool {
	return &Pool{}
}

// Alloc returns a zeroed *Entry from the pool, growing it with a new
// chunk if the current one is exhausted.
func (p *Pool) Alloc() *Entry {
	if len(p.chunks) == 0 || p.next == len(p.chunks[len(p.chunks)-1]) {
		p.chunks = append(p.chunks, make([]Entry, poolChunkSize))
		p.next = 0
	}
	e := &p.chunks[len(p.chunks)-1][p.next]
	p.next++
	return e
}

// Len reports how many entries have been allocated from the pool.
func (p *Pool) Len() int {
	if len(p.chunks) == 0 {
		return 0
	}
	return (len(p.chunks)-1)*poolChunkSize + p.next
}

// HardlinkKey is the second pool's record: a bare (dev, inode) pair,
// allocated separately from Entry per spec.md §3's "optional hard-link
// key pool".
type HardlinkKey struct {
	Dev, Ino uint64
}

// KeyPool is the dedicated pool for HardlinkKey records.
type KeyPool struct {
	chunks [][]HardlinkKey
	next   int
}

func NewKeyPool() *KeyPool { return &KeyPool{} }

func (p *KeyPool) Alloc() *HardlinkKey {
	if len(p.chunks) == 0 || p.next == len(p.chunks[len(p.chunks)-1]) {
		p.chunks = append(p.chunks, make([]HardlinkKey, poolChunkSize))
		p.next = 0
	}
	k := &p.chunks[len(p.chunks)-1][p.next]
	p.next++
	return k
}
