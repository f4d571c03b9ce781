package kisao

// Substitution pairs an alternative algorithm with the most restrictive
// policy that unlocks it.
type Substitution struct {
	Algorithm string
	Policy    Policy
}

// SubstitutionMap is an ordered alternative → unlocking policy map, in the
// order alternatives were first observed. Within one policy, alternatives
// are ordered by id. Immutable once returned.
type SubstitutionMap struct {
	entries []Substitution
	index   map[string]int
}

func newSubstitutionMap() *SubstitutionMap {
	return &SubstitutionMap{index: make(map[string]int)}
}

// add records id at policy unless it was already observed.
func (m *SubstitutionMap) add(id string, policy Policy) {
	if _, seen := m.index[id]; seen {
		return
	}
	m.index[id] = len(m.entries)
	m.entries = append(m.entries, Substitution{Algorithm: id, Policy: policy})
}

// Len returns the number of alternatives.
func (m *SubstitutionMap) Len() int {
	return len(m.entries)
}

// Entries returns the alternatives in observation order.
func (m *SubstitutionMap) Entries() []Substitution {
	return append([]Substitution(nil), m.entries...)
}

// Policy returns the unlocking policy of id.
func (m *SubstitutionMap) Policy(id string) (Policy, bool) {
	i, ok := m.index[id]
	if !ok {
		return "", false
	}
	return m.entries[i].Policy, true
}

// Algorithms returns the alternative ids in observation order.
func (m *SubstitutionMap) Algorithms() []string {
	ids := make([]string, len(m.entries))
	for i, e := range m.entries {
		ids[i] = e.Algorithm
	}
	return ids
}
