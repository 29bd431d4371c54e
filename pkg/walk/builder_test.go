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

package walk_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/twpayne/go-vfs/vfst"

	"github.com/elastic-sync/rfl/pkg/config"
	"github.com/elastic-sync/rfl/pkg/flist"
	"github.com/elastic-sync/rfl/pkg/match"
	"github.com/elastic-sync/rfl/pkg/mocks"
	"github.com/elastic-sync/rfl/pkg/walk"
)

func TestBuildRecurses(t *testing.T) {
	RegisterTestingT(t)

	fs, cleanup, err := mocks.NewTestFS(map[string]interface{}{
		"src": map[string]interface{}{
			"keep.txt": "hello",
			"sub": &vfst.Dir{Perm: 0755, Entries: map[string]interface{}{
				"nested.txt": "nested",
			}},
		},
	})
	Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	ctx, err := config.NewContext(
		config.WithFs(fs),
		config.WithLogger(mocks.NewTestLogger()),
	)
	Expect(err).NotTo(HaveOccurred())

	b := walk.NewBuilder(ctx)
	fl, err := b.Build([]string{"src"})
	Expect(err).NotTo(HaveOccurred())

	var names []string
	for _, e := range fl.Entries {
		names = append(names, e.FullName())
	}
	Expect(names).To(ContainElement("src"))
	Expect(names).To(ContainElement("src/keep.txt"))
	Expect(names).To(ContainElement("src/sub"))
	Expect(names).To(ContainElement("src/sub/nested.txt"))
}

func TestBuildAppliesUserRules(t *testing.T) {
	RegisterTestingT(t)

	fs, cleanup, err := mocks.NewTestFS(map[string]interface{}{
		"src": map[string]interface{}{
			"keep.txt": "hello",
			"skip.log": "bye",
		},
	})
	Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	ctx, err := config.NewContext(
		config.WithFs(fs),
		config.WithLogger(mocks.NewTestLogger()),
	)
	Expect(err).NotTo(HaveOccurred())

	userRules := match.NewRuleList()
	userRules.Add(match.Compile("*.log", match.CompileOptions{DefaultInclude: false}))

	b := walk.NewBuilder(ctx, walk.WithUserRules(userRules))
	fl, err := b.Build([]string{"src"})
	Expect(err).NotTo(HaveOccurred())

	var names []string
	for _, e := range fl.Entries {
		names = append(names, e.FullName())
	}
	Expect(names).To(ContainElement("src/keep.txt"))
	Expect(names).NotTo(ContainElement("src/skip.log"))
}

// The whole test tree lives on one device, so strict one-file-system
// mode must not drop anything.
func TestBuildOneFileSystemStrictKeepsSameDeviceTree(t *testing.T) {
	RegisterTestingT(t)

	fs, cleanup, err := mocks.NewTestFS(map[string]interface{}{
		"src": map[string]interface{}{
			"a.txt": "a",
		},
	})
	Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	ctx, err := config.NewContext(
		config.WithFs(fs),
		config.WithLogger(mocks.NewTestLogger()),
		config.WithOneFileSystem(true, true),
	)
	Expect(err).NotTo(HaveOccurred())

	b := walk.NewBuilder(ctx)
	fl, err := b.Build([]string{"src"})
	Expect(err).NotTo(HaveOccurred())
	Expect(fl.Len()).To(BeNumerically(">=", 2))
}

func TestBuildRelativeModeSynthesizesImpliedDirs(t *testing.T) {
	RegisterTestingT(t)

	fs, cleanup, err := mocks.NewTestFS(map[string]interface{}{
		"a": map[string]interface{}{
			"b": map[string]interface{}{
				"c": map[string]interface{}{
					"leaf.txt": "leaf",
				},
			},
		},
	})
	Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	ctx, err := config.NewContext(
		config.WithFs(fs),
		config.WithLogger(mocks.NewTestLogger()),
		config.WithRelative(true),
	)
	Expect(err).NotTo(HaveOccurred())

	b := walk.NewBuilder(ctx)
	root := "a/./b/c"
	fl, err := b.Build([]string{root})
	Expect(err).NotTo(HaveOccurred())

	var names []string
	for _, e := range fl.Entries {
		names = append(names, e.FullName())
	}
	Expect(names).To(ContainElement("b"))
	Expect(names).To(ContainElement("b/c"))
	Expect(names).To(ContainElement("b/c/leaf.txt"))
}

func TestBuildKeepDirlinksPromotesSymlinkToDirOnDest(t *testing.T) {
	RegisterTestingT(t)

	fs, cleanup, err := mocks.NewTestFS(map[string]interface{}{
		"src": map[string]interface{}{
			"real": map[string]interface{}{
				"file.txt": "hello",
			},
			"link": &vfst.Symlink{Target: "real"},
		},
	})
	Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	destFS, destCleanup, err := mocks.NewTestFS(map[string]interface{}{
		"src": map[string]interface{}{
			"link": map[string]interface{}{},
		},
	})
	Expect(err).NotTo(HaveOccurred())
	defer destCleanup()

	ctx, err := config.NewContext(
		config.WithFs(fs),
		config.WithLogger(mocks.NewTestLogger()),
		config.WithPreserve(false, false, true, false),
		config.WithKeepDirlinks(true),
	)
	Expect(err).NotTo(HaveOccurred())

	b := walk.NewBuilder(ctx, walk.WithDestFS(destFS))
	fl, err := b.Build([]string{"src"})
	Expect(err).NotTo(HaveOccurred())

	var link *flist.Entry
	for _, e := range fl.Entries {
		if e.FullName() == "src/link" {
			link = e
		}
	}
	Expect(link).NotTo(BeNil())
	Expect(link.IsSymlink()).To(BeFalse())
	Expect(link.IsDir()).To(BeTrue())
}

func TestBuildKeepDirlinksLeavesSymlinkWhenDestHasNoDir(t *testing.T) {
	RegisterTestingT(t)

	fs, cleanup, err := mocks.NewTestFS(map[string]interface{}{
		"src": map[string]interface{}{
			"real": map[string]interface{}{
				"file.txt": "hello",
			},
			"link": &vfst.Symlink{Target: "real"},
		},
	})
	Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	destFS, destCleanup, err := mocks.NewTestFS(map[string]interface{}{})
	Expect(err).NotTo(HaveOccurred())
	defer destCleanup()

	ctx, err := config.NewContext(
		config.WithFs(fs),
		config.WithLogger(mocks.NewTestLogger()),
		config.WithPreserve(false, false, true, false),
		config.WithKeepDirlinks(true),
	)
	Expect(err).NotTo(HaveOccurred())

	b := walk.NewBuilder(ctx, walk.WithDestFS(destFS))
	fl, err := b.Build([]string{"src"})
	Expect(err).NotTo(HaveOccurred())

	var link *flist.Entry
	for _, e := range fl.Entries {
		if e.FullName() == "src/link" {
			link = e
		}
	}
	Expect(link).NotTo(BeNil())
	Expect(link.IsSymlink()).To(BeTrue())
}
