package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/biosimulators/kisao-subst/kisao"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the pairwise substitution matrix as tab-separated values",
	Run: func(cmd *cobra.Command, args []string) {
		eng, _ := loadEngine()
		if err := printMatrix(cmd.OutOrStdout(), eng); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// printMatrix writes one header row of ids, then one row per algorithm:
// id, name, then the unlocking policy per column ("-" when only ANY applies).
func printMatrix(w io.Writer, eng *kisao.Engine) error {
	m, err := eng.Resolver.Matrix(kisao.MatrixFamilies())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "id\tname\t%s\n", strings.Join(m.Algorithms, "\t"))
	for i, id := range m.Algorithms {
		cells := make([]string, len(m.Cells[i]))
		for j, p := range m.Cells[i] {
			if p == "" {
				cells[j] = "-"
				continue
			}
			cells[j] = string(p)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", id, m.Names[i], strings.Join(cells, "\t"))
	}
	return nil
}
