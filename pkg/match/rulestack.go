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

import "github.com/hashicorp/go-multierror"

// RuleStack is the per-directory local rule list stack spec.md §4.2/§4.5
// and §5 call for: directory descent pushes a RuleList, the matching
// "finally" on the way back out pops it. Generalized from the teacher's
// CleanStack push/pop/Cleanup job discipline (pkg/utils/cleanstack.go)
// from cleanup funcs to pushed/popped *RuleLists.
type RuleStack struct {
	lists []*RuleList
}

// NewRuleStack returns an empty stack.
func NewRuleStack() *RuleStack { return &RuleStack{} }

// Push adds a per-directory local RuleList on top of the stack.
func (s *RuleStack) Push(l *RuleList) {
	s.lists = append(s.lists, l)
}

// Pop removes and returns the most recently pushed RuleList, or nil if
// the stack is empty.
func (s *RuleStack) Pop() *RuleList {
	if len(s.lists) == 0 {
		return nil
	}
	n := len(s.lists) - 1
	l := s.lists[n]
	s.lists = s.lists[:n]
	return l
}

// Depth reports how many local rule lists are currently pushed.
func (s *RuleStack) Depth() int { return len(s.lists) }

// CheckAll walks the stack from innermost (most recently pushed, i.e.
// closest enclosing directory) to outermost, returning the first
// non-NoMatch verdict. Per-directory rule files closer to the entry take
// precedence over ones further up the tree.
func (s *RuleStack) CheckAll(name string, isDir bool, cwd string) Verdict {
	for i := len(s.lists) - 1; i >= 0; i-- {
		if v := CheckList(s.lists[i], name, isDir, cwd); v != NoMatch {
			return v
		}
	}
	return NoMatch
}

// UnwindTo pops lists until the stack depth reaches target, accumulating
// any error a caller-supplied release function reports for each popped
// list. Mirrors CleanStack.Cleanup's multierror accumulation. The walk
// builder calls it from each recurse level's defer, so there it pops at
// most the one list that level pushed.
func (s *RuleStack) UnwindTo(target int, release func(*RuleList) error) error {
	var errs error
	for s.Depth() > target {
		l := s.Pop()
		if release == nil {
			continue
		}
		if err := release(l); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}
