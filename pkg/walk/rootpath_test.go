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

package walk

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/elastic-sync/rfl/pkg/filelisterr"
)

func TestSplitRootNonRelative(t *testing.T) {
	RegisterTestingT(t)

	s, err := splitRoot("/a/b/c", false)
	Expect(err).NotTo(HaveOccurred())
	Expect(s.base).To(Equal("/a/b"))
	Expect(s.active).To(Equal("c"))
}

func TestSplitRootRelativeWithDotSlash(t *testing.T) {
	RegisterTestingT(t)

	s, err := splitRoot("foo/./bar/baz", true)
	Expect(err).NotTo(HaveOccurred())
	Expect(s.base).To(Equal("foo"))
	Expect(s.active).To(Equal("bar/baz"))
}

func TestSplitRootRelativeWithoutDotSlash(t *testing.T) {
	RegisterTestingT(t)

	s, err := splitRoot("foo/bar", true)
	Expect(err).NotTo(HaveOccurred())
	Expect(s.base).To(Equal("."))
	Expect(s.active).To(Equal("foo/bar"))
}

func TestSplitRootRejectsDotDot(t *testing.T) {
	RegisterTestingT(t)

	_, err := splitRoot("foo/../bar", true)
	Expect(err).To(HaveOccurred())
	fe, ok := err.(*filelisterr.FileListError)
	Expect(ok).To(BeTrue())
	Expect(fe.ExitCode()).To(Equal(filelisterr.SyntaxDotDot))
}

func TestComponentsSplitsAndDropsDots(t *testing.T) {
	RegisterTestingT(t)

	Expect(components("a/b/c")).To(Equal([]string{"a", "b", "c"}))
	Expect(components(".")).To(BeNil())
	Expect(components("")).To(BeNil())
	Expect(components("a/./b")).To(Equal([]string{"a", "b"}))
}
