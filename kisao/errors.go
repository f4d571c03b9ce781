package kisao

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnsupportedSubstitution is matched by UnsupportedSubstitutionError.
	// It means the policy tier has no family entry for the algorithm; it is
	// expected and recoverable.
	ErrUnsupportedSubstitution = errors.New("substitution policy not supported for this algorithm")

	// ErrNoSubstitute is matched by NoSubstituteError.
	ErrNoSubstitute = errors.New("no substitutable algorithm available")

	// ErrUnknownFamily is returned for a family name missing from the catalog.
	ErrUnknownFamily = errors.New("unknown algorithm family")
)

// UnsupportedSubstitutionError reports that no family of a policy tier
// contains the algorithm.
type UnsupportedSubstitutionError struct {
	Algorithm string
	Name      string
	Policy    Policy
}

func (e *UnsupportedSubstitutionError) Error() string {
	return fmt.Sprintf("algorithm substitution for %q (%s) is not supported at policy %s",
		e.Name, e.Algorithm, e.Policy)
}

func (e *UnsupportedSubstitutionError) Is(target error) bool {
	return target == ErrUnsupportedSubstitution
}

// NoSubstituteError reports that none of the offered candidates may stand
// in for the requested algorithm at the given policy.
type NoSubstituteError struct {
	Algorithm  string
	Name       string
	Policy     Policy
	Candidates []string // ids in the order the caller offered them

	candidateLabels []string
}

func (e *NoSubstituteError) Error() string {
	labels := append([]string(nil), e.candidateLabels...)
	if len(labels) == 0 {
		labels = append(labels, e.Candidates...)
	}
	sort.Strings(labels)
	return fmt.Sprintf("no algorithm can be substituted for %q (%s) at substitution policy %s; candidates:\n  %s",
		e.Name, e.Algorithm, e.Policy, strings.Join(labels, "\n  "))
}

func (e *NoSubstituteError) Is(target error) bool {
	return target == ErrNoSubstitute
}
