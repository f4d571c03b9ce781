package trace

import "testing"

func TestSummarize_NilTrace_ReturnsZeroSummary(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalDecisions != 0 || summary.SubstitutedCount != 0 || summary.IdentityCount != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
	if summary.ByPolicy == nil || summary.Pairs == nil {
		t.Error("expected initialized maps")
	}
}

func TestSummarize_CountsByPolicyAndPair(t *testing.T) {
	// GIVEN a trace with identity and substituted decisions
	st := NewSubstitutionTrace(TraceLevelDecisions)
	st.Record(SubstitutionRecord{Requested: "88", Chosen: "88", Policy: "SIMILAR_VARIABLES"})
	st.Record(SubstitutionRecord{Requested: "88", Chosen: "19", Policy: "SIMILAR_VARIABLES", Substituted: true})
	st.Record(SubstitutionRecord{Requested: "88", Chosen: "19", Policy: "SIMILAR_VARIABLES", Substituted: true})
	st.Record(SubstitutionRecord{Requested: "29", Chosen: "39", Policy: "DISTINCT_APPROXIMATIONS", Substituted: true})

	// WHEN summarized
	summary := Summarize(st)

	// THEN the counts add up
	if summary.TotalDecisions != 4 {
		t.Errorf("expected 4 decisions, got %d", summary.TotalDecisions)
	}
	if summary.IdentityCount != 1 || summary.SubstitutedCount != 3 {
		t.Errorf("expected 1 identity and 3 substituted, got %d and %d", summary.IdentityCount, summary.SubstitutedCount)
	}
	if summary.ByPolicy["SIMILAR_VARIABLES"] != 2 || summary.ByPolicy["DISTINCT_APPROXIMATIONS"] != 1 {
		t.Errorf("unexpected ByPolicy: %v", summary.ByPolicy)
	}
	if summary.Pairs["88->19"] != 2 || summary.Pairs["29->39"] != 1 {
		t.Errorf("unexpected Pairs: %v", summary.Pairs)
	}
	if _, ok := summary.Pairs["88->88"]; ok {
		t.Error("identity decisions must not appear as pairs")
	}
}
