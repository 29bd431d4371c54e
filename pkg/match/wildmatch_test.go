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

package match

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestWildmatchStar(t *testing.T) {
	RegisterTestingT(t)

	Expect(wildmatch("*.c", "foo.c")).To(BeTrue())
	Expect(wildmatch("*.c", "foo.h")).To(BeFalse())
	Expect(wildmatch("*.c", "a/foo.c")).To(BeFalse(), "single * must not cross a slash")
}

func TestWildmatchDoubleStar(t *testing.T) {
	RegisterTestingT(t)

	Expect(wildmatch("**.c", "a/b/foo.c")).To(BeTrue())
	Expect(wildmatch("a/**/z", "a/b/c/z")).To(BeTrue())
	Expect(wildmatch("a/**/z", "a/z")).To(BeFalse(), "the slash after ** must still match a slash")
}

func TestWildmatchQuestionMark(t *testing.T) {
	RegisterTestingT(t)

	Expect(wildmatch("fo?.c", "foo.c")).To(BeTrue())
	Expect(wildmatch("fo?.c", "fo/.c")).To(BeFalse(), "? must not match a slash")
}

func TestWildmatchClass(t *testing.T) {
	RegisterTestingT(t)

	Expect(wildmatch("[abc].c", "a.c")).To(BeTrue())
	Expect(wildmatch("[abc].c", "d.c")).To(BeFalse())
	Expect(wildmatch("[!abc].c", "d.c")).To(BeTrue())
	Expect(wildmatch("[a-c].c", "b.c")).To(BeTrue())
}

func TestWildmatchLiteralBracketFallback(t *testing.T) {
	RegisterTestingT(t)

	Expect(wildmatch("a[b.c", "a[b.c")).To(BeTrue())
}
