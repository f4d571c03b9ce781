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
	algorithmID string // Requested algorithm, any id dialect
	policyName  string // Substitution policy; empty = configured default
)

var substitutableCmd = &cobra.Command{
	Use:   "substitutable",
	Short: "Print the algorithms that may stand in for --algorithm at --policy",
	Run: func(cmd *cobra.Command, args []string) {
		eng, graph := loadEngine()
		if err := printSubstitutable(cmd.OutOrStdout(), eng, graph, algorithmID, policyName); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

var alternativesCmd = &cobra.Command{
	Use:   "alternatives",
	Short: "Print every alternative to --algorithm grouped by the policy that unlocks it",
	Run: func(cmd *cobra.Command, args []string) {
		eng, graph := loadEngine()
		if err := printAlternatives(cmd.OutOrStdout(), eng, graph, algorithmID); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func printSubstitutable(w io.Writer, eng *kisao.Engine, store kisao.Store, algorithm, policy string) error {
	id, err := ontology.NormalizeID(algorithm)
	if err != nil {
		return fmt.Errorf("--algorithm: %w", err)
	}
	p, err := policyOrDefault(eng, policy)
	if err != nil {
		return fmt.Errorf("--policy: %w", err)
	}
	alts, err := eng.Resolver.SubstitutableFor(id, p)
	if err != nil {
		return err
	}
	for _, alt := range alts.Sorted() {
		fmt.Fprintln(w, kisao.TermLabel(store, alt))
	}
	return nil
}

func printAlternatives(w io.Writer, eng *kisao.Engine, store kisao.Store, algorithm string) error {
	id, err := ontology.NormalizeID(algorithm)
	if err != nil {
		return fmt.Errorf("--algorithm: %w", err)
	}
	m, err := eng.Resolver.AllSubstitutions(id)
	if err != nil {
		return err
	}
	groups := kisao.GroupByPolicy(m)
	for _, p := range kisao.Policies() {
		members, ok := groups[p]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s (%s)\n", p, p.DisplayName())
		for _, alt := range members.Sorted() {
			fmt.Fprintf(w, "  %s\n", kisao.TermLabel(store, alt))
		}
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{substitutableCmd, alternativesCmd} {
		c.Flags().StringVar(&algorithmID, "algorithm", "", "KiSAO id of the requested algorithm (KISAO_0000019, KISAO:0000019 or 19)")
		_ = c.MarkFlagRequired("algorithm")
	}
	substitutableCmd.Flags().StringVar(&policyName, "policy", "", "Substitution policy (default: the configured default policy)")
}
