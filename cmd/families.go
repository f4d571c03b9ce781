package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/biosimulators/kisao-subst/kisao"
)

var familiesCmd = &cobra.Command{
	Use:   "families [name...]",
	Short: "List algorithm families and their members",
	Run: func(cmd *cobra.Command, args []string) {
		eng, graph := loadEngine()
		if err := printFamilies(cmd.OutOrStdout(), eng, graph, args); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// printFamilies lists each named family (all families when names is empty)
// with its members in id order.
func printFamilies(w io.Writer, eng *kisao.Engine, store kisao.Store, names []string) error {
	if len(names) == 0 {
		names = eng.Catalog.Names()
	}
	for _, name := range names {
		members, err := eng.Catalog.Family(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s (%d)\n", name, len(members))
		for _, id := range members.Sorted() {
			fmt.Fprintf(w, "  %s\n", kisao.TermLabel(store, id))
		}
	}
	return nil
}
