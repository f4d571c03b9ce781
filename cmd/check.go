package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/biosimulators/kisao-subst/kisao"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify family disjointness and policy monotonicity against the ontology",
	Run: func(cmd *cobra.Command, args []string) {
		eng, _ := loadEngine()
		ok, err := runCheck(cmd.OutOrStdout(), eng)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if !ok {
			logrus.Fatalf("Ontology check failed")
		}
	},
}

// runCheck reports overlapping families and non-monotone substitutions.
// The tier table itself is validated when the engine is built.
func runCheck(w io.Writer, eng *kisao.Engine) (bool, error) {
	ok := true

	overlaps, err := eng.Catalog.CheckDisjoint(kisao.DisjointFamilies()...)
	if err != nil {
		return false, err
	}
	for _, o := range overlaps {
		ok = false
		fmt.Fprintf(w, "overlap: %s and %s share %v\n", o.A, o.B, o.Shared)
	}

	all, err := eng.Catalog.Family(kisao.FamilyAlgorithm)
	if err != nil {
		return false, err
	}
	violations, err := eng.Resolver.CheckMonotonic(all.Sorted())
	if err != nil {
		return false, err
	}
	for _, v := range violations {
		ok = false
		fmt.Fprintf(w, "not monotone: %s\n", v)
	}

	if ok {
		fmt.Fprintf(w, "ok: %d families disjoint, %d algorithms monotone\n",
			len(kisao.DisjointFamilies()), len(all))
	}
	return ok, nil
}
