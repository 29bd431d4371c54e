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
	"fmt"
	"path"
	"strings"

	"github.com/elastic-sync/rfl/pkg/filelisterr"
)

// rootSplit is the result of canonicalizing one root argument: base is
// the physical directory the builder joins every filesystem call
// against (modeling the sender's chdir into the root's non-active
// prefix — see the package doc for why this is a parameter rather than
// a real os.Chdir), and active is the relative path that actually gets
// walked and, in relative mode, reproduced on the wire with implied
// parent directories.
type rootSplit struct {
	base   string
	active string
}

// splitRoot canonicalizes one root argument per spec.md §4.5 steps 1-2:
// reject ".." in the active portion of a relative-mode path, and in
// relative mode split at "/./" so everything before it becomes the base
// directory and everything after becomes the active, wire-visible path.
func splitRoot(root string, relative bool) (rootSplit, error) {
	clean := path.Clean(root)

	if !relative {
		dir, base := path.Split(clean)
		return rootSplit{base: path.Clean(dir), active: base}, nil
	}

	if i := strings.Index(root, "/./"); i >= 0 {
		base := root[:i]
		active := root[i+3:]
		if err := rejectDotDot(active); err != nil {
			return rootSplit{}, err
		}
		return rootSplit{base: path.Clean(base), active: path.Clean(active)}, nil
	}

	if err := rejectDotDot(root); err != nil {
		return rootSplit{}, err
	}
	return rootSplit{base: ".", active: clean}, nil
}

// rejectDotDot is spec.md §4.5 step 1 and §7's Syntax error: a relative
// root may not contain ".." in its active path component.
func rejectDotDot(active string) error {
	for _, seg := range strings.Split(active, "/") {
		if seg == ".." {
			return filelisterr.New(
				fmt.Sprintf("relative root %q escapes its base with '..'", active),
				filelisterr.SyntaxDotDot,
			)
		}
	}
	return nil
}

// components splits a clean relative path into its '/'-separated
// segments, dropping any empty or "." segment.
func components(p string) []string {
	if p == "" || p == "." {
		return nil
	}
	parts := strings.Split(p, "/")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s != "" && s != "." {
			out = append(out, s)
		}
	}
	return out
}
