package trace

import "sync"

// TraceLevel controls which decisions are recorded.
type TraceLevel string

const (
	// TraceLevelNone disables tracing.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSubstitutions records only decisions that substituted an algorithm.
	TraceLevelSubstitutions TraceLevel = "substitutions"
	// TraceLevelDecisions records every decision, including identity choices.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:          true,
	TraceLevelSubstitutions: true,
	TraceLevelDecisions:     true,
	"":                      true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SubstitutionTrace collects decision records. Safe for concurrent use.
type SubstitutionTrace struct {
	Level TraceLevel

	mu      sync.Mutex
	records []SubstitutionRecord
}

// NewSubstitutionTrace creates a SubstitutionTrace ready for recording.
func NewSubstitutionTrace(level TraceLevel) *SubstitutionTrace {
	return &SubstitutionTrace{
		Level:   level,
		records: make([]SubstitutionRecord, 0),
	}
}

// Record appends a decision record if the trace level selects it.
func (st *SubstitutionTrace) Record(record SubstitutionRecord) {
	switch st.Level {
	case TraceLevelDecisions:
	case TraceLevelSubstitutions:
		if !record.Substituted {
			return
		}
	default:
		return
	}
	record.Candidates = append([]string(nil), record.Candidates...)
	st.mu.Lock()
	st.records = append(st.records, record)
	st.mu.Unlock()
}

// Records returns a copy of the recorded decisions in recording order.
func (st *SubstitutionTrace) Records() []SubstitutionRecord {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]SubstitutionRecord(nil), st.records...)
}
