package kisao

import "fmt"

// TierEntry marks one family as recognized at a tier. When Substitutable
// is false the family's members are only substitutable by themselves.
type TierEntry struct {
	Substitutable bool
	Family        string
}

// Tier is the ordered family table shared by one or more consecutive
// policies. The first entry whose family contains the target decides.
type Tier struct {
	Policies []Policy
	Entries  []TierEntry
}

// DefaultTiers is the curated substitution table. Flux-balance methods have
// no entry in the DISTINCT_APPROXIMATIONS..SIMILAR_VARIABLES band, so those
// policies are unsupported for them.
var DefaultTiers = []Tier{
	{
		Policies: []Policy{PolicySameMath},
		Entries: []TierEntry{
			{false, FamilyODE},
			{true, FamilyGillespieExact},
			{false, FamilyTauLeaping},
			{false, FamilySDE},
			{false, FamilyPDE},
			{false, FamilyLogicalSimulation},
			{true, FamilyLogicalStableState},
			{true, FamilyLogicalTrapSpace},
			{false, FamilyFluxBalance},
			{false, FamilySteadyState},
		},
	},
	{
		Policies: []Policy{PolicySimilarApproximations},
		Entries: []TierEntry{
			{true, FamilyODE},
			{true, FamilyGillespieExact},
			{true, FamilyTauLeaping},
			{true, FamilySDE},
			{true, FamilyPDE},
			{false, FamilyLogicalSimulation},
			{true, FamilyLogicalStableState},
			{true, FamilyLogicalTrapSpace},
			{false, FamilyFluxBalance},
			{true, FamilySteadyState},
		},
	},
	{
		Policies: []Policy{
			PolicyDistinctApproximations,
			PolicyDistinctScales,
			PolicySameVariables,
			PolicySimilarVariables,
		},
		Entries: []TierEntry{
			{true, FamilyODE},
			{true, FamilyExactOrTauLeaping},
			{true, FamilySDE},
			{true, FamilyPDE},
			{true, FamilyLogicalSimulation},
			{true, FamilyLogicalStableState},
			{true, FamilyLogicalTrapSpace},
			{true, FamilySteadyState},
		},
	},
	{
		Policies: []Policy{PolicySameFramework},
		Entries: []TierEntry{
			{true, FamilyODE},
			{true, FamilyExactOrTauLeaping},
			{true, FamilySDE},
			{true, FamilyPDE},
			{true, FamilyFluxBalance},
			{true, FamilyLogicalSimulation},
			{true, FamilyLogicalStableState},
			{true, FamilyLogicalTrapSpace},
			{true, FamilySteadyState},
		},
	},
}

// Ladder maps the table-driven policies (strictly between SAME_METHOD and
// ANY) to their tiers.
type Ladder struct {
	tiers    []Tier
	byPolicy map[Policy]int
}

// NewLadder checks that tiers cover table-driven policies only, each at
// most once and in ladder order, and builds a Ladder.
func NewLadder(tiers []Tier) (*Ladder, error) {
	l := &Ladder{byPolicy: make(map[Policy]int)}
	prev := PolicySameMethod
	for i, t := range tiers {
		if len(t.Policies) == 0 {
			return nil, fmt.Errorf("tier %d lists no policies", i)
		}
		for _, p := range t.Policies {
			if !p.IsValid() {
				return nil, fmt.Errorf("tier %d: unknown substitution policy %q", i, p)
			}
			if p.AtMost(PolicySameMethod) || p == PolicyAny {
				return nil, fmt.Errorf("tier %d: policy %s is not table-driven", i, p)
			}
			if !prev.Less(p) {
				return nil, fmt.Errorf("tier %d: policy %s out of ladder order after %s", i, p, prev)
			}
			l.byPolicy[p] = i
			prev = p
		}
		l.tiers = append(l.tiers, Tier{
			Policies: append([]Policy(nil), t.Policies...),
			Entries:  append([]TierEntry(nil), t.Entries...),
		})
	}
	return l, nil
}

// Tier returns the tier holding policy p.
func (l *Ladder) Tier(p Policy) (Tier, bool) {
	i, ok := l.byPolicy[p]
	if !ok {
		return Tier{}, false
	}
	return l.tiers[i], true
}

// Tiers returns the tiers in ladder order.
func (l *Ladder) Tiers() []Tier {
	return append([]Tier(nil), l.tiers...)
}

// Validate checks the table against a catalog: every entry names a known
// family, and a family substitutable at one tier stays substitutable at
// every later tier that lists it (directly or through a union). A later
// tier that lists no covering family leaves a gap, which is allowed.
func (l *Ladder) Validate(cat *Catalog) error {
	for i, t := range l.tiers {
		for _, e := range t.Entries {
			if _, ok := cat.Def(e.Family); !ok {
				return fmt.Errorf("tier %s: %w %q", t.Policies[0], ErrUnknownFamily, e.Family)
			}
		}
		for _, e := range t.Entries {
			if !e.Substitutable {
				continue
			}
			for _, later := range l.tiers[i+1:] {
				for _, le := range later.Entries {
					if !cat.Covers(le.Family, e.Family) {
						continue
					}
					if !le.Substitutable {
						return fmt.Errorf("family %q is substitutable at %s but not at %s",
							e.Family, t.Policies[0], later.Policies[0])
					}
					break
				}
			}
		}
	}
	return nil
}
