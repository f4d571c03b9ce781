// Package trace records substitution decisions for later inspection.
// It stores pure data types and does not import kisao/.
package trace

// SubstitutionRecord captures one preferred-substitute decision.
type SubstitutionRecord struct {
	Requested   string   // id of the requested algorithm
	Chosen      string   // id of the algorithm that will run
	Policy      string   // substitution policy name
	Candidates  []string // ids offered by the caller, in preference order
	Substituted bool     // Chosen != Requested
}
