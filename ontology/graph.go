package ontology

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// Graph is an in-memory KiSAO term graph.
// Build it with AddRelationship/AddTerm, then call Freeze; lookups are only
// valid on a frozen graph.
type Graph struct {
	terms         map[string]*Term
	relationships map[string]*Relationship
	isA           *core.Graph // directed parent → child edges, built by Freeze
	frozen        bool
}

// NewGraph creates an empty, unfrozen Graph.
func NewGraph() *Graph {
	return &Graph{
		terms:         make(map[string]*Term),
		relationships: make(map[string]*Relationship),
	}
}

// AddRelationship registers a relationship type.
func (g *Graph) AddRelationship(rel Relationship) error {
	if g.frozen {
		return fmt.Errorf("add relationship %s: graph is frozen", rel.ID)
	}
	if _, dup := g.relationships[rel.ID]; dup {
		return fmt.Errorf("duplicate relationship id %s", rel.ID)
	}
	r := rel
	g.relationships[rel.ID] = &r
	return nil
}

// AddTerm registers a term. Parents and relation targets may reference
// terms added later; they are checked by Freeze.
func (g *Graph) AddTerm(term Term) error {
	if g.frozen {
		return fmt.Errorf("add term %s: graph is frozen", term.ID)
	}
	if _, dup := g.terms[term.ID]; dup {
		return fmt.Errorf("duplicate term id %s", term.ID)
	}
	t := term
	t.Parents = append([]string(nil), term.Parents...)
	t.Relations = make(map[string][]string, len(term.Relations))
	for relID, targets := range term.Relations {
		t.Relations[relID] = append([]string(nil), targets...)
	}
	g.terms[t.ID] = &t
	return nil
}

// Freeze checks referential integrity, builds the is-a index and makes
// the graph read-only.
func (g *Graph) Freeze() error {
	if g.frozen {
		return nil
	}
	isA, err := core.NewGraph(core.WithDirected(true))
	if err != nil {
		return fmt.Errorf("is-a index: %w", err)
	}
	for _, id := range g.TermIDs() {
		if err := isA.AddVertex(id); err != nil {
			return fmt.Errorf("term %s: %w", id, err)
		}
	}
	for _, id := range g.TermIDs() {
		t := g.terms[id]
		linked := make(map[string]bool, len(t.Parents))
		for _, p := range t.Parents {
			if _, ok := g.terms[p]; !ok {
				return fmt.Errorf("term %s: parent %w", t.ID, &NotFoundError{Kind: "term", ID: p})
			}
			if linked[p] {
				continue
			}
			linked[p] = true
			if _, err := isA.AddEdge(p, t.ID, 0); err != nil {
				return fmt.Errorf("term %s: parent %s: %w", t.ID, p, err)
			}
		}
		for relID, targets := range t.Relations {
			if _, ok := g.relationships[relID]; !ok {
				return fmt.Errorf("term %s: %w", t.ID, &NotFoundError{Kind: "relationship", ID: relID})
			}
			for _, target := range targets {
				if _, ok := g.terms[target]; !ok {
					return fmt.Errorf("term %s: %s target %w", t.ID, relID, &NotFoundError{Kind: "term", ID: target})
				}
			}
		}
	}
	g.isA = isA
	g.frozen = true
	return nil
}

// Len returns the number of terms.
func (g *Graph) Len() int {
	return len(g.terms)
}

// Term looks up a term by canonical id.
func (g *Graph) Term(id string) (*Term, error) {
	t, ok := g.terms[id]
	if !ok {
		return nil, &NotFoundError{Kind: "term", ID: id}
	}
	return t, nil
}

// Relationship looks up a relationship by canonical id.
func (g *Graph) Relationship(id string) (*Relationship, error) {
	r, ok := g.relationships[id]
	if !ok {
		return nil, &NotFoundError{Kind: "relationship", ID: id}
	}
	return r, nil
}

// Descendants returns the term followed by all of its transitive is-a
// descendants, breadth first with siblings in id order. Each term appears
// once even when reachable through several parents. It returns nil for a
// term the graph does not hold or before Freeze.
func (g *Graph) Descendants(t *Term) []*Term {
	if t == nil || g.isA == nil {
		return nil
	}
	if _, ok := g.terms[t.ID]; !ok {
		return nil
	}
	res, err := bfs.BFS(g.isA, t.ID)
	if err != nil {
		return nil
	}
	out := make([]*Term, 0, len(res.Order))
	for _, id := range res.Order {
		out = append(out, g.terms[id])
	}
	return out
}

// RelationTargets returns the terms directly related to t by rel.
// Edges asserted on ancestors are not included.
func (g *Graph) RelationTargets(t *Term, rel *Relationship) []*Term {
	if t == nil || rel == nil {
		return nil
	}
	ids := t.Relations[rel.ID]
	out := make([]*Term, 0, len(ids))
	for _, id := range ids {
		if target, ok := g.terms[id]; ok {
			out = append(out, target)
		}
	}
	return out
}

// TermIDs returns every term id in sorted order.
func (g *Graph) TermIDs() []string {
	ids := make([]string, 0, len(g.terms))
	for id := range g.terms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
