package ontology

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Snapshot is the YAML form of an ontology graph.
// Loaded from disk via LoadSnapshot(path).
type Snapshot struct {
	Version       string             `yaml:"version"`
	Relationships []RelationshipSpec `yaml:"relationships"`
	Terms         []TermSpec         `yaml:"terms"`
}

// RelationshipSpec declares a relationship type.
type RelationshipSpec struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// TermSpec declares a term, its is-a parents and its direct relations.
// Ids may use any accepted dialect; they are normalized on load.
type TermSpec struct {
	ID            string              `yaml:"id"`
	Name          string              `yaml:"name"`
	Parents       []string            `yaml:"parents,omitempty"`
	Relationships map[string][]string `yaml:"relationships,omitempty"`
}

// LoadSnapshot reads a YAML snapshot file and builds a frozen Graph.
func LoadSnapshot(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ontology snapshot: %w", err)
	}
	g, err := ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logrus.Debugf("loaded ontology snapshot %s: %d terms", path, g.Len())
	return g, nil
}

// ParseSnapshot decodes a YAML snapshot strictly (unknown fields are
// errors) and builds a frozen Graph.
func ParseSnapshot(data []byte) (*Graph, error) {
	var snap Snapshot
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&snap); err != nil {
		return nil, fmt.Errorf("parsing ontology snapshot: %w", err)
	}
	return snap.Build()
}

// Build converts the snapshot into a frozen Graph.
func (s *Snapshot) Build() (*Graph, error) {
	g := NewGraph()
	for i, r := range s.Relationships {
		id, err := NormalizeID(r.ID)
		if err != nil {
			return nil, fmt.Errorf("relationships[%d]: %w", i, err)
		}
		if err := g.AddRelationship(Relationship{ID: id, Name: r.Name}); err != nil {
			return nil, fmt.Errorf("relationships[%d]: %w", i, err)
		}
	}
	for i, ts := range s.Terms {
		term, err := ts.normalize()
		if err != nil {
			return nil, fmt.Errorf("terms[%d]: %w", i, err)
		}
		if err := g.AddTerm(term); err != nil {
			return nil, fmt.Errorf("terms[%d]: %w", i, err)
		}
	}
	if err := g.Freeze(); err != nil {
		return nil, err
	}
	return g, nil
}

func (ts TermSpec) normalize() (Term, error) {
	id, err := NormalizeID(ts.ID)
	if err != nil {
		return Term{}, err
	}
	t := Term{ID: id, Name: ts.Name, Relations: make(map[string][]string, len(ts.Relationships))}
	for _, p := range ts.Parents {
		pid, err := NormalizeID(p)
		if err != nil {
			return Term{}, fmt.Errorf("%s parent: %w", id, err)
		}
		t.Parents = append(t.Parents, pid)
	}
	for rel, targets := range ts.Relationships {
		relID, err := NormalizeID(rel)
		if err != nil {
			return Term{}, fmt.Errorf("%s relationship: %w", id, err)
		}
		for _, target := range targets {
			tid, err := NormalizeID(target)
			if err != nil {
				return Term{}, fmt.Errorf("%s %s target: %w", id, relID, err)
			}
			t.Relations[relID] = append(t.Relations[relID], tid)
		}
	}
	return t, nil
}
