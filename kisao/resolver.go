package kisao

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/biosimulators/kisao-subst/kisao/trace"
	"github.com/biosimulators/kisao-subst/ontology"
)

// Resolver answers substitution queries for one ontology snapshot.
type Resolver struct {
	store   Store
	catalog *Catalog
	ladder  *Ladder
	trace   *trace.SubstitutionTrace // nil = advisory goes to the log only
}

// NewResolver wires a Resolver. The ladder is not validated here; Engine
// does that once at construction.
func NewResolver(store Store, catalog *Catalog, ladder *Ladder) *Resolver {
	return &Resolver{store: store, catalog: catalog, ladder: ladder}
}

// SetTrace attaches a recorder for substitution decisions. Pass nil to detach.
func (r *Resolver) SetTrace(st *trace.SubstitutionTrace) {
	r.trace = st
}

// SubstitutableFor returns the algorithms that may stand in for target at
// policy, always including target itself.
//
// Errors:
//   - *ontology.NotFoundError when target is not in the ontology
//   - *UnsupportedSubstitutionError when the policy tier has no family
//     containing target
func (r *Resolver) SubstitutableFor(target string, policy Policy) (TermSet, error) {
	if !policy.IsValid() {
		return nil, fmt.Errorf("unknown substitution policy %q", policy)
	}
	if _, err := r.store.Term(target); err != nil {
		return nil, err
	}

	if policy.AtMost(PolicySameMethod) {
		return NewTermSet(target), nil
	}
	if policy == PolicyAny {
		return r.catalog.Family(FamilyAlgorithm)
	}

	tier, ok := r.ladder.Tier(policy)
	if ok {
		for _, e := range tier.Entries {
			members, err := r.catalog.Family(e.Family)
			if err != nil {
				return nil, err
			}
			if !members.Contains(target) {
				continue
			}
			if e.Substitutable {
				return members, nil
			}
			return NewTermSet(target), nil
		}
	}
	return nil, &UnsupportedSubstitutionError{
		Algorithm: target,
		Name:      termName(r.store, target),
		Policy:    policy,
	}
}

// AllSubstitutions maps every alternative of target to the most restrictive
// policy between SAME_METHOD and SAME_FRAMEWORK that unlocks it. Tiers that
// do not support target are skipped.
func (r *Resolver) AllSubstitutions(target string) (*SubstitutionMap, error) {
	m := newSubstitutionMap()
	for _, p := range orderedPolicies[1 : len(orderedPolicies)-1] {
		alts, err := r.SubstitutableFor(target, p)
		if err != nil {
			if errors.Is(err, ErrUnsupportedSubstitution) {
				continue
			}
			return nil, err
		}
		for _, id := range alts.Sorted() {
			m.add(id, p)
		}
	}
	return m, nil
}

// GroupByPolicy inverts a substitution map.
func GroupByPolicy(m *SubstitutionMap) map[Policy]TermSet {
	groups := make(map[Policy]TermSet)
	for _, s := range m.Entries() {
		if groups[s.Policy] == nil {
			groups[s.Policy] = make(TermSet)
		}
		groups[s.Policy].Add(s.Algorithm)
	}
	return groups
}

// PreferredSubstitute picks the algorithm to run instead of target from the
// caller's candidates, in the caller's order. Target itself wins whenever it
// is offered. Choosing a different algorithm is logged at warn level and
// recorded on the attached trace; neither affects the result.
//
// Errors:
//   - *ontology.NotFoundError when target is not in the ontology
//   - *UnsupportedSubstitutionError when target is not offered and the
//     policy tier has no family containing it
//   - *NoSubstituteError when no candidate is substitutable
func (r *Resolver) PreferredSubstitute(target string, candidates []string, policy Policy) (string, error) {
	for _, c := range candidates {
		if c == target {
			substitutionsTotal.WithLabelValues(string(policy), "identity").Inc()
			r.record(target, target, candidates, policy)
			return target, nil
		}
	}

	alts, err := r.SubstitutableFor(target, policy)
	if err != nil {
		if errors.Is(err, ErrUnsupportedSubstitution) {
			substitutionsTotal.WithLabelValues(string(policy), "unsupported").Inc()
		}
		return "", err
	}
	for _, c := range candidates {
		if alts.Contains(c) {
			logrus.Warnf("%s will be substituted for %s at substitution policy %s",
				TermLabel(r.store, c), TermLabel(r.store, target), policy)
			substitutionsTotal.WithLabelValues(string(policy), "substituted").Inc()
			r.record(target, c, candidates, policy)
			return c, nil
		}
	}

	substitutionsTotal.WithLabelValues(string(policy), "none").Inc()
	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = TermLabel(r.store, c)
	}
	return "", &NoSubstituteError{
		Algorithm:       target,
		Name:            termName(r.store, target),
		Policy:          policy,
		Candidates:      append([]string(nil), candidates...),
		candidateLabels: labels,
	}
}

// PreferredSubstituteByIDs is PreferredSubstitute for ids spelled in any
// accepted dialect. The chosen id is returned in dialect.
func (r *Resolver) PreferredSubstituteByIDs(target string, candidates []string, policy Policy, dialect ontology.Dialect) (string, error) {
	canonicalTarget, err := ontology.NormalizeID(target)
	if err != nil {
		return "", err
	}
	canonical := make([]string, len(candidates))
	for i, c := range candidates {
		id, err := ontology.NormalizeID(c)
		if err != nil {
			return "", fmt.Errorf("candidate %d: %w", i, err)
		}
		canonical[i] = id
	}
	chosen, err := r.PreferredSubstitute(canonicalTarget, canonical, policy)
	if err != nil {
		return "", err
	}
	return ontology.IDInDialect(chosen, dialect)
}

func (r *Resolver) record(target, chosen string, candidates []string, policy Policy) {
	if r.trace == nil {
		return
	}
	r.trace.Record(trace.SubstitutionRecord{
		Requested:   target,
		Chosen:      chosen,
		Policy:      string(policy),
		Candidates:  candidates,
		Substituted: chosen != target,
	})
}

// MonotonicityViolation names an algorithm whose substitutable set shrinks
// between two supported policies.
type MonotonicityViolation struct {
	Algorithm string
	Lower     Policy
	Higher    Policy
	Missing   []string // in the Lower set but not in the Higher set
}

func (v MonotonicityViolation) String() string {
	return fmt.Sprintf("%s: %s loses %v at %s", v.Algorithm, v.Lower, v.Missing, v.Higher)
}

// CheckMonotonic evaluates every policy from SAME_METHOD to ANY for each
// target and reports each step where the substitutable set is not a
// superset of the previous supported one.
func (r *Resolver) CheckMonotonic(targets []string) ([]MonotonicityViolation, error) {
	var violations []MonotonicityViolation
	for _, target := range targets {
		var (
			prev       TermSet
			prevPolicy Policy
		)
		for _, p := range orderedPolicies[1:] {
			cur, err := r.SubstitutableFor(target, p)
			if err != nil {
				if errors.Is(err, ErrUnsupportedSubstitution) {
					continue
				}
				return nil, err
			}
			if prev != nil && !prev.SubsetOf(cur) {
				missing := make(TermSet)
				for id := range prev {
					if !cur.Contains(id) {
						missing.Add(id)
					}
				}
				violations = append(violations, MonotonicityViolation{
					Algorithm: target,
					Lower:     prevPolicy,
					Higher:    p,
					Missing:   missing.Sorted(),
				})
			}
			prev, prevPolicy = cur, p
		}
	}
	return violations, nil
}
