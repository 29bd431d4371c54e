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

package match_test

import (
	"os"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/elastic-sync/rfl/pkg/match"
	"github.com/elastic-sync/rfl/pkg/mocks"
)

func TestLoadFileFromFSReadsPatterns(t *testing.T) {
	RegisterTestingT(t)

	fs, cleanup, err := mocks.NewTestFS(map[string]interface{}{
		"filter": "+ keep.txt\n- *.log\n# comment\n",
	})
	Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	l := match.NewRuleList()
	Expect(match.LoadFileFromFS(l, fs, "filter", false)).To(Succeed())

	Expect(match.CheckList(l, "keep.txt", false, "")).To(Equal(match.Keep))
	Expect(match.CheckList(l, "debug.log", false, "")).To(Equal(match.Drop))
}

func TestLoadFileFromFSPropagatesReadError(t *testing.T) {
	RegisterTestingT(t)

	fs, cleanup, err := mocks.NewTestFS(map[string]interface{}{})
	Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	l := match.NewRuleList()
	err = match.LoadFileFromFS(l, fs, "missing-filter", false)
	Expect(err).To(HaveOccurred())
}

func TestLoadCVSDefaultsExcludesStandardTokens(t *testing.T) {
	RegisterTestingT(t)

	l := match.NewRuleList()
	match.LoadCVSDefaults(l, nil, "")

	Expect(match.CheckList(l, "CVS", true, "")).To(Equal(match.Drop))
	Expect(match.CheckList(l, "foo.orig", false, "")).To(Equal(match.Drop))
	Expect(match.CheckList(l, "foo.txt", false, "")).To(Equal(match.NoMatch))
}

func TestLoadCVSDefaultsHonorsCVSIGNOREEnv(t *testing.T) {
	RegisterTestingT(t)

	old, had := os.LookupEnv("CVSIGNORE")
	Expect(os.Setenv("CVSIGNORE", "vendor-only.bin")).To(Succeed())
	defer func() {
		if had {
			os.Setenv("CVSIGNORE", old)
		} else {
			os.Unsetenv("CVSIGNORE")
		}
	}()

	l := match.NewRuleList()
	match.LoadCVSDefaults(l, nil, "")

	Expect(match.CheckList(l, "vendor-only.bin", false, "")).To(Equal(match.Drop))
}

func TestLoadCVSDefaultsReadsPerDirCvsignore(t *testing.T) {
	RegisterTestingT(t)

	fs, cleanup, err := mocks.NewTestFS(map[string]interface{}{
		"proj": map[string]interface{}{
			".cvsignore": "generated.out\n",
		},
	})
	Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	l := match.NewRuleList()
	match.LoadCVSDefaults(l, fs, "proj")

	Expect(match.CheckList(l, "generated.out", false, "")).To(Equal(match.Drop))
	Expect(match.CheckList(l, "keep.out", false, "")).To(Equal(match.NoMatch))
}
