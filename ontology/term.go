package ontology

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched (via errors.Is) by every lookup failure of the store.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a term or relationship id missing from the graph.
type NotFoundError struct {
	Kind string // "term" or "relationship"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no KiSAO %s has the id %q", e.Kind, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold for any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Term is a node of the ontology graph.
// Terms are owned by the Graph; callers must treat them as read-only.
type Term struct {
	ID        string
	Name      string
	Parents   []string            // direct is-a parents
	Relations map[string][]string // relationship id → directly related term ids
}

// String renders the term as "name (id)" for messages.
func (t *Term) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.Name == "" {
		return t.ID
	}
	return fmt.Sprintf("%s (%s)", t.Name, t.ID)
}

// Relationship identifies an edge type between terms.
type Relationship struct {
	ID   string
	Name string
}
