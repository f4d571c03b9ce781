package kisao

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/biosimulators/kisao-subst/ontology"
)

// Classifier selects the algorithms of a subtree that directly carry a set
// of characteristics, and memoizes each (roots, characteristics) query.
//
// Thread Safety:
//
//	Classifier is safe for concurrent use. Each cache key is computed at
//	most once per generation; concurrent callers of the same key share one
//	in-flight computation.
type Classifier struct {
	store Store
	relID string

	mu         sync.RWMutex
	cache      map[string]TermSet
	generation uint64
	flight     singleflight.Group
}

// NewClassifier creates a Classifier over store using the has-characteristic
// relationship.
func NewClassifier(store Store) *Classifier {
	return &Classifier{
		store: store,
		relID: IDHasCharacteristic,
		cache: make(map[string]TermSet),
	}
}

// Store returns the graph the classifier reads.
func (c *Classifier) Store() Store {
	return c.store
}

// Classify returns every descendant of rootIDs that directly has all of
// characteristicIDs, together with the full subtree below each such term.
// With no characteristics the result is the whole descendant closure of the
// roots. The returned set is a copy; callers may modify it.
func (c *Classifier) Classify(rootIDs, characteristicIDs []string) (TermSet, error) {
	key := cacheKey(rootIDs, characteristicIDs)

	c.mu.RLock()
	cached, ok := c.cache[key]
	gen := c.generation
	c.mu.RUnlock()
	if ok {
		familyCacheRequests.WithLabelValues("hit").Inc()
		return cached.Clone(), nil
	}

	v, err, _ := c.flight.Do(fmt.Sprintf("%d/%s", gen, key), func() (interface{}, error) {
		c.mu.RLock()
		cached, ok := c.cache[key]
		c.mu.RUnlock()
		if ok {
			familyCacheRequests.WithLabelValues("hit").Inc()
			return cached, nil
		}
		familyCacheRequests.WithLabelValues("miss").Inc()

		terms, err := classify(c.store, c.relID, rootIDs, characteristicIDs)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		// A Reset while computing means the snapshot may have changed.
		if c.generation == gen {
			c.cache[key] = terms
		}
		c.mu.Unlock()
		logrus.Debugf("classified %s: %d terms", key, len(terms))
		return terms, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(TermSet).Clone(), nil
}

// Reset drops every memoized result. Call it after swapping the ontology
// snapshot behind the store.
func (c *Classifier) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]TermSet)
	c.generation++
}

// Cached returns the number of memoized queries.
func (c *Classifier) Cached() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// cacheKey is order-insensitive in both id lists.
func cacheKey(rootIDs, characteristicIDs []string) string {
	roots := append([]string(nil), rootIDs...)
	chars := append([]string(nil), characteristicIDs...)
	sort.Strings(roots)
	sort.Strings(chars)
	return strings.Join(roots, ",") + "|" + strings.Join(chars, ",")
}

func classify(store Store, relID string, rootIDs, characteristicIDs []string) (TermSet, error) {
	var (
		rel   *ontology.Relationship
		chars []*ontology.Term
	)
	if len(characteristicIDs) > 0 {
		r, err := store.Relationship(relID)
		if err != nil {
			return nil, fmt.Errorf("classify: %w", err)
		}
		rel = r
		for _, id := range characteristicIDs {
			t, err := store.Term(id)
			if err != nil {
				return nil, fmt.Errorf("classify: characteristic: %w", err)
			}
			chars = append(chars, t)
		}
	}

	var candidates []*ontology.Term
	seen := make(map[string]bool)
	for _, id := range rootIDs {
		root, err := store.Term(id)
		if err != nil {
			return nil, fmt.Errorf("classify: root: %w", err)
		}
		for _, d := range store.Descendants(root) {
			if !seen[d.ID] {
				seen[d.ID] = true
				candidates = append(candidates, d)
			}
		}
	}

	result := make(TermSet)
	for _, cand := range candidates {
		if result.Contains(cand.ID) {
			continue
		}
		if !hasAllCharacteristics(store, cand, rel, chars) {
			continue
		}
		for _, d := range store.Descendants(cand) {
			result.Add(d.ID)
		}
	}
	return result, nil
}

// hasAllCharacteristics checks direct edges only; characteristics asserted
// on ancestors do not count.
func hasAllCharacteristics(store Store, t *ontology.Term, rel *ontology.Relationship, chars []*ontology.Term) bool {
	if len(chars) == 0 {
		return true
	}
	direct := make(map[string]bool)
	for _, target := range store.RelationTargets(t, rel) {
		direct[target.ID] = true
	}
	for _, ch := range chars {
		if !direct[ch.ID] {
			return false
		}
	}
	return true
}
