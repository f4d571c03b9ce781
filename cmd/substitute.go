package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/biosimulators/kisao-subst/kisao"
	"github.com/biosimulators/kisao-subst/ontology"
)

var (
	candidateIDs []string // Candidate algorithms in preference order
	dialect      string   // Output id dialect
)

var substituteCmd = &cobra.Command{
	Use:   "substitute",
	Short: "Choose the algorithm to run for --algorithm from --candidates",
	Run: func(cmd *cobra.Command, args []string) {
		if !ontology.IsValidDialect(dialect) {
			logrus.Fatalf("Unknown id dialect %q; valid: kisao, sedml, integer", dialect)
		}
		eng, _ := loadEngine()
		if err := printSubstitute(cmd.OutOrStdout(), eng, algorithmID, candidateIDs, policyName, ontology.Dialect(dialect)); err != nil {
			logrus.Fatalf("%v", err)
		}
		logTraceSummary(eng)
	},
}

func printSubstitute(w io.Writer, eng *kisao.Engine, algorithm string, candidates []string, policy string, d ontology.Dialect) error {
	p, err := policyOrDefault(eng, policy)
	if err != nil {
		return fmt.Errorf("--policy: %w", err)
	}
	chosen, err := eng.Resolver.PreferredSubstituteByIDs(algorithm, candidates, p, d)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, chosen)
	return nil
}

func init() {
	substituteCmd.Flags().StringVar(&algorithmID, "algorithm", "", "KiSAO id of the requested algorithm")
	substituteCmd.Flags().StringSliceVar(&candidateIDs, "candidates", nil, "Comma-separated KiSAO ids the runtime implements, in preference order")
	substituteCmd.Flags().StringVar(&policyName, "policy", "", "Substitution policy (default: the configured default policy)")
	substituteCmd.Flags().StringVar(&dialect, "dialect", "kisao", "Id dialect of the output (kisao, sedml, integer)")
	_ = substituteCmd.MarkFlagRequired("algorithm")
	_ = substituteCmd.MarkFlagRequired("candidates")
}
