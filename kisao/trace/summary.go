package trace

// TraceSummary aggregates statistics from a SubstitutionTrace.
type TraceSummary struct {
	TotalDecisions   int
	SubstitutedCount int
	IdentityCount    int
	ByPolicy         map[string]int // policy → substituted decisions
	Pairs            map[string]int // "requested->chosen" → count
}

// Summarize computes aggregate statistics from a SubstitutionTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SubstitutionTrace) *TraceSummary {
	summary := &TraceSummary{
		ByPolicy: make(map[string]int),
		Pairs:    make(map[string]int),
	}
	if st == nil {
		return summary
	}

	for _, r := range st.Records() {
		summary.TotalDecisions++
		if !r.Substituted {
			summary.IdentityCount++
			continue
		}
		summary.SubstitutedCount++
		summary.ByPolicy[r.Policy]++
		summary.Pairs[r.Requested+"->"+r.Chosen]++
	}
	return summary
}
