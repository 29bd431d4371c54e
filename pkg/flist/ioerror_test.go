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

func TestIOErrorBitsSetAndHas(t *testing.T) {
	RegisterTestingT(t)

	var bits flist.IOErrorBits
	Expect(bits.Has(flist.IOErrVanished)).To(BeFalse())

	bits = bits.Set(flist.IOErrVanished)
	Expect(bits.Has(flist.IOErrVanished)).To(BeTrue())
	Expect(bits.Has(flist.IOErrGeneral)).To(BeFalse())

	bits = bits.Set(flist.IOErrGeneral)
	Expect(bits.Has(flist.IOErrVanished)).To(BeTrue())
	Expect(bits.Has(flist.IOErrGeneral)).To(BeTrue())
}
