package kisao

import "github.com/biosimulators/kisao-subst/ontology"

// Store is the read-only query surface of the ontology graph.
// ontology.Graph implements it; see that package for the contract
// (Descendants is reflexive, RelationTargets is direct-only).
type Store interface {
	Term(id string) (*ontology.Term, error)
	Relationship(id string) (*ontology.Relationship, error)
	Descendants(t *ontology.Term) []*ontology.Term
	RelationTargets(t *ontology.Term, rel *ontology.Relationship) []*ontology.Term
}

// TermLabel renders "name (id)" for an id, falling back to the bare id when
// the store does not know it.
func TermLabel(store Store, id string) string {
	t, err := store.Term(id)
	if err != nil {
		return id
	}
	return t.String()
}

func termName(store Store, id string) string {
	t, err := store.Term(id)
	if err != nil || t.Name == "" {
		return id
	}
	return t.Name
}
