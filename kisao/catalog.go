package kisao

import (
	"fmt"
	"sort"
)

// Family names of the catalog.
const (
	FamilyODE                = "ode"
	FamilyDAE                = "dae"
	FamilySDE                = "sde"
	FamilyPDE                = "pde"
	FamilySteadyState        = "steady-state"
	FamilyGillespieExact     = "gillespie-exact"
	FamilyGillespieApprox    = "gillespie-approximate"
	FamilyTauLeaping         = "tau-leaping"
	FamilyRuleBased          = "rule-based"
	FamilyFluxBalance        = "flux-balance"
	FamilyLogicalSimulation  = "logical-simulation"
	FamilyLogicalStableState = "logical-stable-state"
	FamilyLogicalTrapSpace   = "logical-trap-space"
	FamilyHybrid             = "hybrid"
	FamilyExactOrTauLeaping  = "gillespie-exact+tau-leaping"
	FamilyLogical            = "logical"
	FamilyAlgorithm          = "algorithm"
)

// FamilyDef defines a named family either as one classifier query (Roots
// and Characteristics) or as the union of other named families (Union).
type FamilyDef struct {
	Name            string
	Roots           []string
	Characteristics []string
	Union           []string
}

// IsUnion reports whether the family is composed of other families.
func (d FamilyDef) IsUnion() bool {
	return len(d.Union) > 0
}

// Markers holds the characteristic ids that qualify the DAE and
// steady-state families. They are configuration (EngineConfig), not
// hard-coded, because ontology releases differ in how they assert them.
type Markers struct {
	DAE         string
	SteadyState string
}

// DefaultMarkers returns the marker ids of the current KiSAO release.
func DefaultMarkers() Markers {
	return Markers{DAE: IDDAEProblem, SteadyState: IDSteadyStateProblem}
}

// DefaultFamilies returns the catalog table. Families in the first block
// are pairwise disjoint on a well-formed ontology except DAE ⊂ ODE and
// tau-leaping ⊂ Gillespie-approximate.
func DefaultFamilies(m Markers) []FamilyDef {
	return []FamilyDef{
		{Name: FamilyODE, Roots: []string{IDAlgorithm}, Characteristics: []string{IDODEProblem}},
		{Name: FamilyDAE, Roots: []string{IDAlgorithm}, Characteristics: []string{IDODEProblem, m.DAE}},
		{Name: FamilySDE, Roots: []string{IDAlgorithm}, Characteristics: []string{IDSDEProblem}},
		{Name: FamilyPDE, Roots: []string{IDAlgorithm}, Characteristics: []string{IDPDEProblem}},
		{Name: FamilySteadyState, Roots: []string{IDAlgorithm}, Characteristics: []string{m.SteadyState}},
		{Name: FamilyGillespieExact, Roots: []string{IDGillespieLikeAlgorithm}, Characteristics: []string{IDExactSolution}},
		{Name: FamilyGillespieApprox, Roots: []string{IDGillespieLikeAlgorithm}, Characteristics: []string{IDApproximateSolution}},
		{Name: FamilyTauLeaping, Roots: []string{IDTauLeapingAlgorithm}},
		{Name: FamilyRuleBased, Roots: []string{IDRuleBasedAlgorithm}},
		{Name: FamilyFluxBalance, Roots: []string{IDFluxBalanceAlgorithm}},
		{Name: FamilyLogicalSimulation, Roots: []string{IDLogicalSimulationAlgorithm}},
		{Name: FamilyLogicalStableState, Roots: []string{IDLogicalStableStateSearch}},
		{Name: FamilyLogicalTrapSpace, Roots: []string{IDLogicalTrapSpaceIdentification}},
		{Name: FamilyHybrid, Roots: []string{IDHybridAlgorithm}},

		{Name: FamilyExactOrTauLeaping, Union: []string{FamilyGillespieExact, FamilyTauLeaping}},
		{Name: FamilyLogical, Union: []string{FamilyLogicalSimulation, FamilyLogicalStableState, FamilyLogicalTrapSpace}},
		{Name: FamilyAlgorithm, Roots: []string{IDAlgorithm}},
	}
}

// Catalog resolves named families through a Classifier.
type Catalog struct {
	classifier *Classifier
	defs       map[string]FamilyDef
	order      []string
}

// NewCatalog validates defs (unique names, unions referencing known
// families without cycles) and builds a Catalog.
func NewCatalog(classifier *Classifier, defs []FamilyDef) (*Catalog, error) {
	c := &Catalog{
		classifier: classifier,
		defs:       make(map[string]FamilyDef, len(defs)),
	}
	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("family with empty name")
		}
		if _, dup := c.defs[d.Name]; dup {
			return nil, fmt.Errorf("duplicate family %q", d.Name)
		}
		if !d.IsUnion() && len(d.Roots) == 0 {
			return nil, fmt.Errorf("family %q has neither roots nor union members", d.Name)
		}
		c.defs[d.Name] = d
		c.order = append(c.order, d.Name)
	}
	for _, name := range c.order {
		if err := c.checkUnion(name, map[string]bool{}); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) checkUnion(name string, visiting map[string]bool) error {
	if visiting[name] {
		return fmt.Errorf("family %q is defined in terms of itself", name)
	}
	d, ok := c.defs[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownFamily, name)
	}
	visiting[name] = true
	defer delete(visiting, name)
	for _, member := range d.Union {
		if err := c.checkUnion(member, visiting); err != nil {
			return fmt.Errorf("family %q: %w", name, err)
		}
	}
	return nil
}

// Names returns the family names in catalog order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Def returns the definition of a family.
func (c *Catalog) Def(name string) (FamilyDef, bool) {
	d, ok := c.defs[name]
	return d, ok
}

// Classifier returns the classifier backing the catalog.
func (c *Catalog) Classifier() *Classifier {
	return c.classifier
}

// Family returns the members of a named family. Classifier-backed
// families are memoized; unions are assembled from their memoized members.
func (c *Catalog) Family(name string) (TermSet, error) {
	d, ok := c.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFamily, name)
	}
	if !d.IsUnion() {
		terms, err := c.classifier.Classify(d.Roots, d.Characteristics)
		if err != nil {
			return nil, fmt.Errorf("family %s: %w", name, err)
		}
		return terms, nil
	}
	out := make(TermSet)
	for _, member := range d.Union {
		terms, err := c.Family(member)
		if err != nil {
			return nil, err
		}
		for id := range terms {
			out.Add(id)
		}
	}
	return out, nil
}

// GillespieLike returns Gillespie-like algorithms selected by solution
// character. Requesting neither exact nor approximate selects nothing;
// requesting both selects the whole Gillespie-like subtree.
func (c *Catalog) GillespieLike(exact, approximate bool) (TermSet, error) {
	switch {
	case exact && approximate:
		return c.classifier.Classify([]string{IDGillespieLikeAlgorithm}, nil)
	case exact:
		return c.Family(FamilyGillespieExact)
	case approximate:
		return c.Family(FamilyGillespieApprox)
	default:
		return make(TermSet), nil
	}
}

// Covers reports whether family name includes family member by
// definition: the same family, or a union that (transitively) lists it.
// It does not consult the ontology.
func (c *Catalog) Covers(name, member string) bool {
	if name == member {
		return true
	}
	d, ok := c.defs[name]
	if !ok {
		return false
	}
	for _, u := range d.Union {
		if c.Covers(u, member) {
			return true
		}
	}
	return false
}

// Overlap names two families sharing members.
type Overlap struct {
	A, B   string
	Shared []string
}

// CheckDisjoint computes every pairwise overlap among the named families.
// An empty result means the families are pairwise disjoint.
func (c *Catalog) CheckDisjoint(names ...string) ([]Overlap, error) {
	sets := make([]TermSet, len(names))
	for i, name := range names {
		s, err := c.Family(name)
		if err != nil {
			return nil, err
		}
		sets[i] = s
	}
	var overlaps []Overlap
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			shared := sets[i].Intersect(sets[j])
			if len(shared) > 0 {
				overlaps = append(overlaps, Overlap{A: names[i], B: names[j], Shared: shared.Sorted()})
			}
		}
	}
	sort.SliceStable(overlaps, func(i, j int) bool {
		if overlaps[i].A != overlaps[j].A {
			return overlaps[i].A < overlaps[j].A
		}
		return overlaps[i].B < overlaps[j].B
	})
	return overlaps, nil
}

// DisjointFamilies lists the families expected to be pairwise disjoint.
func DisjointFamilies() []string {
	return []string{
		FamilyODE,
		FamilySDE,
		FamilyPDE,
		FamilyGillespieExact,
		FamilyGillespieApprox,
		FamilyRuleBased,
		FamilyFluxBalance,
		FamilyLogicalSimulation,
		FamilyLogicalStableState,
		FamilyLogicalTrapSpace,
	}
}
