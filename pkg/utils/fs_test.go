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

package utils_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/elastic-sync/rfl/pkg/mocks"
	"github.com/elastic-sync/rfl/pkg/utils"
)

func TestExistsAndIsDir(t *testing.T) {
	RegisterTestingT(t)

	fs, cleanup, err := mocks.NewTestFS(map[string]interface{}{
		"dir": map[string]interface{}{
			"file.txt": "hello",
		},
	})
	Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	ok, err := utils.Exists(fs, "dir/file.txt")
	Expect(err).NotTo(HaveOccurred())
	Expect(ok).To(BeTrue())

	ok, err = utils.Exists(fs, "dir/missing.txt")
	Expect(err).NotTo(HaveOccurred())
	Expect(ok).To(BeFalse())

	isDir, err := utils.IsDir(fs, "dir")
	Expect(err).NotTo(HaveOccurred())
	Expect(isDir).To(BeTrue())

	isDir, err = utils.IsDir(fs, "dir/file.txt")
	Expect(err).NotTo(HaveOccurred())
	Expect(isDir).To(BeFalse())
}

func TestExistsReportsMissingPathWithoutError(t *testing.T) {
	RegisterTestingT(t)

	fs, cleanup, err := mocks.NewTestFS(map[string]interface{}{})
	Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	ok, err := utils.Exists(fs, "nope")
	Expect(err).NotTo(HaveOccurred())
	Expect(ok).To(BeFalse())
}
