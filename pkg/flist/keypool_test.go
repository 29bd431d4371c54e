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

package flist_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/elastic-sync/rfl/pkg/flist"
)

func TestKeyPoolAllocIsZeroedAndDistinct(t *testing.T) {
	RegisterTestingT(t)

	p := flist.NewKeyPool()
	k1 := p.Alloc()
	Expect(*k1).To(Equal(flist.HardlinkKey{}))

	k1.Dev, k1.Ino = 7, 42

	k2 := p.Alloc()
	Expect(*k2).To(Equal(flist.HardlinkKey{}))
	Expect(k2).NotTo(BeIdenticalTo(k1))
	Expect(k1.Dev).To(Equal(uint64(7)))
}

func TestKeyPoolAllocGrowsAcrossChunks(t *testing.T) {
	RegisterTestingT(t)

	p := flist.NewKeyPool()
	seen := make(map[*flist.HardlinkKey]bool)
	for i := 0; i < 2500; i++ {
		k := p.Alloc()
		Expect(seen[k]).To(BeFalse())
		seen[k] = true
		k.Ino = uint64(i)
	}
	Expect(seen).To(HaveLen(2500))
}
