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
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/elastic-sync/rfl/pkg/rfltypes"
)

// cvsDefaultIgnore is original_source/exclude.c's cvs_default_ignore
// token list, whitespace-separated, loaded with prefix-interpretation
// disabled and default-include off.
const cvsDefaultIgnore = "RCS SCCS CVS CVS.adm RCSLOG cvslog.* tags TAGS " +
	".make.state .nse_depinfo *~ #* .#* ,* _$* *$ *.old *.bak *.BAK *.orig " +
	"*.rej .del-* *.a *.olb *.o *.obj *.so *.exe *.Z *.elc *.ln core " +
	".svn/ .git/ .hg/ .bzr/"

// LoadWords splits text on whitespace and compiles each token as a rule.
// A token of exactly "!" resets the list (spec.md §4.2). Tokens retain
// their optional "+ "/"- " prefix despite the whitespace split: rsync's
// own word-split mode only strips a prefix when it is immediately
// followed by a space, so a prefix survives as part of the token here
// and Compile is invoked with AllowPrefixes false for raw word tokens —
// callers that want prefix interpretation use LoadFile instead.
func LoadWords(l *RuleList, text string, defaultInclude bool) {
	for _, tok := range strings.Fields(text) {
		if tok == "!" {
			l.Reset()
			continue
		}
		l.Add(Compile(tok, CompileOptions{DefaultInclude: defaultInclude}))
	}
}

// LoadFile reads pattern text from data (one pattern per line). Lines
// beginning with ';' or '#' are comments and skipped. Each non-comment
// line is one pattern with an optional "+ "/"- " prefix.
func LoadFile(l *RuleList, data []byte, defaultInclude bool) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		l.Add(Compile(line, CompileOptions{AllowPrefixes: true, DefaultInclude: defaultInclude}))
	}
	return scanner.Err()
}

// LoadFileFromFS reads a pattern file through fs (used for per-directory
// rule files discovered during the walk, and for --exclude-from).
func LoadFileFromFS(l *RuleList, fs rfltypes.FS, path string, defaultInclude bool) error {
	data, err := fs.ReadFile(path)
	if err != nil {
		return err
	}
	return LoadFile(l, data, defaultInclude)
}

// LoadCVSDefaults appends the fixed CVS-ignore token list, augmented by
// $CVSIGNORE and a per-directory .cvsignore file if present, to l.
func LoadCVSDefaults(l *RuleList, fs rfltypes.FS, dir string) {
	LoadWords(l, cvsDefaultIgnore, false)

	if env := os.Getenv("CVSIGNORE"); env != "" {
		LoadWords(l, env, false)
	}

	if fs == nil {
		return
	}
	cvsignore := dir + "/.cvsignore"
	if dir == "" {
		cvsignore = ".cvsignore"
	}
	if data, err := fs.ReadFile(cvsignore); err == nil {
		LoadWords(l, string(data), false)
	}
}
