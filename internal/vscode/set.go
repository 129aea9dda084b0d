package vscode

import "sort"

// ProjectSet is a set of normalized project paths. Membership is exact
// string equality, so paths differing only in case are distinct.
type ProjectSet map[string]struct{}

// NewProjectSet returns an empty set.
func NewProjectSet() ProjectSet {
	return make(ProjectSet)
}

// Add inserts p and reports whether it was new. Empty paths are ignored.
func (s ProjectSet) Add(p string) bool {
	if p == "" {
		return false
	}
	if _, ok := s[p]; ok {
		return false
	}
	s[p] = struct{}{}
	return true
}

// Has reports whether p is a member.
func (s ProjectSet) Has(p string) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of members.
func (s ProjectSet) Len() int {
	return len(s)
}

// Sorted returns the members in lexicographic order.
func (s ProjectSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
