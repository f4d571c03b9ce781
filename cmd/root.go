package cmd

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/biosimulators/kisao-subst/kisao"
	"github.com/biosimulators/kisao-subst/kisao/trace"
	"github.com/biosimulators/kisao-subst/ontology"
)

var (
	ontologyPath string // YAML ontology snapshot
	configPath   string // YAML engine configuration
	logLevel     string // Log verbosity level
	dumpMetrics  bool   // Print kisao_* Prometheus counters to stderr on exit
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "kisao-subst",
	Short: "Classify KiSAO simulation algorithms and resolve substitutions between them",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if dumpMetrics {
			if err := writeMetrics(cmd.ErrOrStderr()); err != nil {
				logrus.Errorf("writing metrics: %v", err)
			}
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadEngine reads the ontology snapshot and engine configuration named by
// the global flags. Failures are fatal.
func loadEngine() (*kisao.Engine, *ontology.Graph) {
	if ontologyPath == "" {
		logrus.Fatalf("--ontology is required")
	}
	graph, err := ontology.LoadSnapshot(ontologyPath)
	if err != nil {
		logrus.Fatalf("%v", err)
	}

	cfg := kisao.DefaultEngineConfig()
	if configPath != "" {
		cfg, err = kisao.LoadEngineConfig(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
	}

	eng, err := kisao.NewEngine(graph, cfg)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	logrus.Infof("Loaded %d KiSAO terms from %s", graph.Len(), ontologyPath)
	return eng, graph
}

// policyOrDefault parses a --policy value; empty selects the engine's
// configured default.
func policyOrDefault(eng *kisao.Engine, name string) (kisao.Policy, error) {
	if strings.TrimSpace(name) == "" {
		return eng.DefaultPolicy(), nil
	}
	return kisao.ParsePolicy(name)
}

// logTraceSummary reports the engine's substitution trace, if enabled.
func logTraceSummary(eng *kisao.Engine) {
	if eng.Trace == nil {
		return
	}
	s := trace.Summarize(eng.Trace)
	logrus.Infof("Substitution trace: %d decisions, %d substituted, %d identity",
		s.TotalDecisions, s.SubstitutedCount, s.IdentityCount)
	pairs := make([]string, 0, len(s.Pairs))
	for pair := range s.Pairs {
		pairs = append(pairs, pair)
	}
	sort.Strings(pairs)
	for _, pair := range pairs {
		logrus.Infof("  %s: %d", pair, s.Pairs[pair])
	}
}

// writeMetrics prints the kisao_* metric families in Prometheus text format.
func writeMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "kisao_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&ontologyPath, "ontology", "", "Path to the YAML KiSAO ontology snapshot")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML engine configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().BoolVar(&dumpMetrics, "metrics", false, "Print kisao_* Prometheus counters to stderr on exit")

	rootCmd.AddCommand(familiesCmd)
	rootCmd.AddCommand(substitutableCmd)
	rootCmd.AddCommand(alternativesCmd)
	rootCmd.AddCommand(substituteCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(checkCmd)
}
