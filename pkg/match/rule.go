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

// Package match is the pattern engine and rule loader: it compiles
// textual patterns into Rules, answers whether a name matches a Rule or
// a RuleList, and loads RuleLists from words, files or CVS defaults.
package match

import "strings"

// Rule flag bits, named after original_source/exclude.c's exclude_struct
// flags.
const (
	Wild = 1 << iota
	Wild2
	Wild2Prefix
	AbsPath
	DirectoryOnly
)

// Rule is one compiled include/exclude pattern.
type Rule struct {
	pattern    string // with leading '/' and trailing '/' stripped
	original   string // exact text as given, for reporting/re-emission
	flags      int
	slashCount int
	include    bool
}

func (r *Rule) Include() bool   { return r.include }
func (r *Rule) Pattern() string { return r.pattern }
func (r *Rule) Original() string { return r.original }
func (r *Rule) Flags() int      { return r.flags }

func (r *Rule) IsWild() bool          { return r.flags&Wild != 0 }
func (r *Rule) IsWild2() bool         { return r.flags&Wild2 != 0 }
func (r *Rule) IsWild2Prefix() bool   { return r.flags&Wild2Prefix != 0 }
func (r *Rule) IsAbsPath() bool       { return r.flags&AbsPath != 0 }
func (r *Rule) IsDirectoryOnly() bool { return r.flags&DirectoryOnly != 0 }

// CompileOptions controls how a pattern token is turned into a Rule.
type CompileOptions struct {
	// AllowPrefixes enables the "+ "/"- " include/exclude prefix
	// convention. Disabled for CVS-default tokens per spec.md §4.2.
	AllowPrefixes bool
	// DefaultInclude resolves unprefixed patterns when AllowPrefixes is
	// true but no prefix was present, or when AllowPrefixes is false.
	DefaultInclude bool
	// AbsRoot, when non-empty, is prepended to an anchored pattern that
	// is itself relative, per spec.md §4.1 step 3's "absolute prefix in
	// effect" rule.
	AbsRoot string
}

// Compile turns pattern text into a Rule per spec.md §4.1's compilation
// rules: an optional "+ "/"- " prefix, a trailing '/' marking
// directory-only, a leading '/' marking anchored (rule-list-root
// relative), and wildcard flags recorded for the matcher.
func Compile(text string, opts CompileOptions) *Rule {
	r := &Rule{original: text, include: opts.DefaultInclude}

	p := text
	if opts.AllowPrefixes {
		switch {
		case strings.HasPrefix(p, "+ "):
			r.include = true
			p = p[2:]
		case strings.HasPrefix(p, "- "):
			r.include = false
			p = p[2:]
		}
	}

	if strings.HasSuffix(p, "/") && len(p) > 1 {
		r.flags |= DirectoryOnly
		p = strings.TrimSuffix(p, "/")
	}

	if strings.HasPrefix(p, "/") {
		r.flags |= AbsPath
		p = strings.TrimPrefix(p, "/")
		if opts.AbsRoot != "" {
			p = strings.TrimSuffix(opts.AbsRoot, "/") + "/" + p
		}
	}

	r.slashCount = strings.Count(p, "/")

	if strings.Contains(p, "**") {
		r.flags |= Wild | Wild2
		if strings.HasPrefix(p, "**") {
			r.flags |= Wild2Prefix
		}
	} else if strings.ContainsAny(p, "*?[") {
		r.flags |= Wild
	}

	r.pattern = p
	return r
}
