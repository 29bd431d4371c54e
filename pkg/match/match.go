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

import "strings"

// Check answers whether name (is_dir reported separately) matches r, per
// spec.md §4.1's six-step algorithm. cwd is consulted only for rule 3
// (an absolute-path rule checked against a relative name).
func Check(r *Rule, name string, isDir bool, cwd string) bool {
	if r.IsDirectoryOnly() && !isDir {
		return false
	}

	// Rule 2: an unanchored pattern with no '/' and no "**" matches only
	// the tail basename of name.
	if !r.IsAbsPath() && !r.IsWild2() && r.slashCount == 0 && !strings.Contains(r.pattern, "/") {
		base := name
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			base = name[i+1:]
		}
		return matchOne(r, r.pattern, base)
	}

	// Rule 3: absolute-path rule against a relative name.
	if r.IsAbsPath() && !strings.HasPrefix(name, "/") && cwd != "" {
		name = strings.TrimSuffix(cwd, "/") + "/" + name
	}

	// Rule 4: anchored pattern must match from the start.
	if r.IsAbsPath() {
		return matchOne(r, r.pattern, strings.TrimPrefix(name, "/"))
	}

	if r.IsWild() {
		switch {
		case r.IsWild2Prefix():
			if wildmatch(r.pattern, name) {
				return true
			}
			if len(r.pattern) > 2 && r.pattern[2] == '/' {
				return wildmatch(r.pattern[3:], name)
			}
			return false
		case r.IsWild2():
			// Interior/trailing "**": try at the full name and after
			// each '/'.
			if wildmatch(r.pattern, name) {
				return true
			}
			for i := 0; i < len(name); i++ {
				if name[i] == '/' && wildmatch(r.pattern, name[i+1:]) {
					return true
				}
			}
			return false
		case strings.Contains(r.pattern, "/"):
			// Non-anchored, has infix '/', no "**": align the name to
			// its last (slash_count+1) segments.
			segs := strings.Split(name, "/")
			want := r.slashCount + 1
			if want > len(segs) {
				want = len(segs)
			}
			aligned := strings.Join(segs[len(segs)-want:], "/")
			return wildmatch(r.pattern, aligned)
		default:
			return matchOne(r, r.pattern, name)
		}
	}

	// Rule 6: literal compare. Anchored already handled above; here
	// un-anchored means suffix match aligned on a '/' boundary.
	if name == r.pattern {
		return true
	}
	if strings.HasSuffix(name, "/"+r.pattern) {
		return true
	}
	return false
}

// matchOne applies wildmatch when the rule has wildcard flags, otherwise
// a plain equality check, against a single aligned segment (a basename
// or the full un-anchored name).
func matchOne(r *Rule, pattern, candidate string) bool {
	if r.IsWild() {
		return wildmatch(pattern, candidate)
	}
	return pattern == candidate
}

// RuleList is an ordered sequence of rules.
type RuleList struct {
	rules []*Rule
}

func NewRuleList() *RuleList { return &RuleList{} }

func (l *RuleList) Add(r *Rule) { l.rules = append(l.rules, r) }

func (l *RuleList) Rules() []*Rule { return l.rules }

func (l *RuleList) Len() int { return len(l.rules) }

// Reset discards every rule in the list (the "!" token in word-split
// mode, spec.md §4.2).
func (l *RuleList) Reset() { l.rules = nil }

// Verdict is the outcome of checking a name against a RuleList.
type Verdict int

const (
	NoMatch Verdict = iota
	Keep
	Drop
)

// CheckList walks rules in order; the first match returns its verdict.
// No match yields NoMatch (callers treat NoMatch the same as Keep, per
// spec.md §4.1, but the distinction matters for distinguished
// server-lists that are consulted before the user list).
func CheckList(l *RuleList, name string, isDir bool, cwd string) Verdict {
	for _, r := range l.rules {
		if Check(r, name, isDir, cwd) {
			if r.Include() {
				return Keep
			}
			return Drop
		}
	}
	return NoMatch
}
