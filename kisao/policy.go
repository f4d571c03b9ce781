package kisao

import (
	"fmt"
	"strings"
)

// Policy is an algorithm substitution policy: how loosely another algorithm
// may stand in for the requested one. Policies are ordered by Level; compare
// them with Level, Less or AtMost, never by name.
type Policy string

const (
	// PolicyNone: algorithms must not be substituted.
	PolicyNone Policy = "NONE"
	// PolicySameMethod: different realizations of the same method
	// (GLPK simplex <=> SciPy simplex).
	PolicySameMethod Policy = "SAME_METHOD"
	// PolicySameMath: mathematically equivalent algorithms (SSA <=> next reaction method).
	PolicySameMath Policy = "SAME_MATH"
	// PolicySimilarApproximations: similar approximations to the same math
	// (CVODE <=> LSODA <=> RK-45).
	PolicySimilarApproximations Policy = "SIMILAR_APPROXIMATIONS"
	// PolicyDistinctApproximations: distinct approximations to the same math
	// (SSA <=> tau leaping).
	PolicyDistinctApproximations Policy = "DISTINCT_APPROXIMATIONS"
	// PolicyDistinctScales: approximations that differ substantially in scale (SSA <=> CVODE).
	PolicyDistinctScales Policy = "DISTINCT_SCALES"
	// PolicySameVariables: algorithms predicting the same dependent variables (FBA <=> pFBA).
	PolicySameVariables Policy = "SAME_VARIABLES"
	// PolicySimilarVariables: algorithms predicting similar dependent variables (FBA <=> geometric FBA).
	PolicySimilarVariables Policy = "SIMILAR_VARIABLES"
	// PolicySameFramework: any algorithm of the same framework (FBA <=> FVA).
	PolicySameFramework Policy = "SAME_FRAMEWORK"
	// PolicyAny: any algorithm. Switching SSA to CVODE, for example, loses
	// all information about variance.
	PolicyAny Policy = "ANY"
)

// DefaultPolicy is the recommended policy when a caller expresses none.
const DefaultPolicy = PolicySimilarVariables

// orderedPolicies lists every policy from most to least restrictive.
var orderedPolicies = []Policy{
	PolicyNone,
	PolicySameMethod,
	PolicySameMath,
	PolicySimilarApproximations,
	PolicyDistinctApproximations,
	PolicyDistinctScales,
	PolicySameVariables,
	PolicySimilarVariables,
	PolicySameFramework,
	PolicyAny,
}

var policyLevels = func() map[Policy]int {
	levels := make(map[Policy]int, len(orderedPolicies))
	for i, p := range orderedPolicies {
		levels[p] = i
	}
	return levels
}()

var policyDisplayNames = map[Policy]string{
	PolicyNone:                   "None",
	PolicySameMethod:             "Same method",
	PolicySameMath:               "Same math",
	PolicySimilarApproximations:  "Similar approximations",
	PolicyDistinctApproximations: "Distinct approximations",
	PolicyDistinctScales:         "Distinct scales",
	PolicySameVariables:          "Same variables",
	PolicySimilarVariables:       "Similar variables",
	PolicySameFramework:          "Same framework",
	PolicyAny:                    "Any",
}

// Policies returns every policy ordered from most to least restrictive.
func Policies() []Policy {
	return append([]Policy(nil), orderedPolicies...)
}

// Level returns the policy's position on the ladder (0 for NONE, 9 for ANY),
// or -1 for an unrecognized policy.
func (p Policy) Level() int {
	if level, ok := policyLevels[p]; ok {
		return level
	}
	return -1
}

// IsValid returns true if p is one of the ten defined policies.
func (p Policy) IsValid() bool {
	_, ok := policyLevels[p]
	return ok
}

// Less reports whether p is strictly more restrictive than q.
func (p Policy) Less(q Policy) bool {
	return p.Level() < q.Level()
}

// AtMost reports whether p is at least as restrictive as q.
func (p Policy) AtMost(q Policy) bool {
	return p.Level() <= q.Level()
}

// DisplayName returns the human-readable name, e.g. "Same math".
func (p Policy) DisplayName() string {
	if name, ok := policyDisplayNames[p]; ok {
		return name
	}
	return string(p)
}

// ParsePolicy reads a policy name. Matching ignores case and accepts
// hyphens or spaces in place of underscores ("same-math", "Same math").
// An empty name yields DefaultPolicy.
func ParsePolicy(name string) (Policy, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return DefaultPolicy, nil
	}
	canonical := strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(trimmed))
	p := Policy(canonical)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown substitution policy %q", name)
	}
	return p, nil
}
