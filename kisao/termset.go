package kisao

import "sort"

// TermSet is a set of canonical term ids.
type TermSet map[string]struct{}

// NewTermSet creates a set holding the given ids.
func NewTermSet(ids ...string) TermSet {
	s := make(TermSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s TermSet) Add(id string) {
	s[id] = struct{}{}
}

func (s TermSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in lexical order.
func (s TermSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s TermSet) Clone() TermSet {
	out := make(TermSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Union returns a new set with the members of s and o.
func (s TermSet) Union(o TermSet) TermSet {
	out := s.Clone()
	for id := range o {
		out[id] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the members common to s and o.
func (s TermSet) Intersect(o TermSet) TermSet {
	out := make(TermSet)
	for id := range s {
		if o.Contains(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// SubsetOf reports whether every member of s is in o.
func (s TermSet) SubsetOf(o TermSet) bool {
	for id := range s {
		if !o.Contains(id) {
			return false
		}
	}
	return true
}

func (s TermSet) Equal(o TermSet) bool {
	return len(s) == len(o) && s.SubsetOf(o)
}
