package kisao

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// MatrixFamilies lists the families tabulated by Matrix, in row order.
func MatrixFamilies() []string {
	return []string{
		FamilyODE,
		FamilyGillespieExact,
		FamilyTauLeaping,
		FamilySDE,
		FamilyPDE,
		FamilyLogicalSimulation,
		FamilyLogicalStableState,
		FamilyLogicalTrapSpace,
		FamilyFluxBalance,
	}
}

// Matrix is a symmetric table of the policy at which two algorithms become
// interchangeable. An empty cell means only ANY relates them.
type Matrix struct {
	Algorithms []string // row/column ids
	Names      []string // row/column names
	Cells      [][]Policy
}

// Cell returns the policy relating algorithms a and b.
func (m *Matrix) Cell(a, b string) (Policy, bool) {
	i, j := m.indexOf(a), m.indexOf(b)
	if i < 0 || j < 0 {
		return "", false
	}
	return m.Cells[i][j], true
}

func (m *Matrix) indexOf(id string) int {
	for i, a := range m.Algorithms {
		if a == id {
			return i
		}
	}
	return -1
}

// Matrix tabulates AllSubstitutions for every member of families. Rows are
// grouped by family in the given order and sorted by name within a family
// (case-insensitive, digit runs by value);
// an algorithm listed under several families keeps its first position.
func (r *Resolver) Matrix(families []string) (*Matrix, error) {
	m := &Matrix{}
	seen := make(map[string]bool)
	for _, fam := range families {
		members, err := r.catalog.Family(fam)
		if err != nil {
			return nil, err
		}
		ids := members.Sorted()
		names := make(map[string]string, len(ids))
		for _, id := range ids {
			names[id] = termName(r.store, id)
		}
		sort.SliceStable(ids, func(i, j int) bool {
			return natural.Less(strings.ToLower(names[ids[i]]), strings.ToLower(names[ids[j]]))
		})
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			m.Algorithms = append(m.Algorithms, id)
			m.Names = append(m.Names, names[id])
		}
	}

	index := make(map[string]int, len(m.Algorithms))
	m.Cells = make([][]Policy, len(m.Algorithms))
	for i, id := range m.Algorithms {
		index[id] = i
		m.Cells[i] = make([]Policy, len(m.Algorithms))
	}
	for i, id := range m.Algorithms {
		subs, err := r.AllSubstitutions(id)
		if err != nil {
			return nil, fmt.Errorf("matrix row %s: %w", id, err)
		}
		for _, s := range subs.Entries() {
			j, ok := index[s.Algorithm]
			if !ok {
				continue
			}
			m.Cells[i][j] = s.Policy
			m.Cells[j][i] = s.Policy
		}
	}
	return m, nil
}
