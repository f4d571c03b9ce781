package kisao

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/biosimulators/kisao-subst/kisao/trace"
	"github.com/biosimulators/kisao-subst/ontology"
)

// EngineConfig holds engine settings, loadable from a YAML file.
// Empty string fields mean "not set" and fall back to the defaults.
type EngineConfig struct {
	DefaultPolicy   string                `yaml:"default_policy"`
	Characteristics CharacteristicsConfig `yaml:"characteristics"`
	Trace           string                `yaml:"trace"`
}

// CharacteristicsConfig holds the marker characteristics that qualify the
// DAE and steady-state families. Ids may use any accepted dialect.
type CharacteristicsConfig struct {
	DAEMarker         string `yaml:"dae_marker"`
	SteadyStateMarker string `yaml:"steady_state_marker"`
}

// DefaultEngineConfig returns the configuration used when no file is given.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		DefaultPolicy: string(DefaultPolicy),
		Characteristics: CharacteristicsConfig{
			DAEMarker:         IDDAEProblem,
			SteadyStateMarker: IDSteadyStateProblem,
		},
		Trace: string(trace.TraceLevelNone),
	}
}

// LoadEngineConfig reads a YAML engine configuration file. Unknown keys are
// errors. Unset fields take their defaults and marker ids are normalized.
func LoadEngineConfig(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading engine config: %w", err)
	}
	cfg, err := ParseEngineConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseEngineConfig decodes YAML engine configuration. See LoadEngineConfig.
func ParseEngineConfig(data []byte) (*EngineConfig, error) {
	var cfg EngineConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty document means "all defaults".
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing engine config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *EngineConfig) applyDefaults() {
	defaults := DefaultEngineConfig()
	if c.DefaultPolicy == "" {
		c.DefaultPolicy = defaults.DefaultPolicy
	}
	if c.Characteristics.DAEMarker == "" {
		c.Characteristics.DAEMarker = defaults.Characteristics.DAEMarker
	}
	if c.Characteristics.SteadyStateMarker == "" {
		c.Characteristics.SteadyStateMarker = defaults.Characteristics.SteadyStateMarker
	}
	if c.Trace == "" {
		c.Trace = defaults.Trace
	}
}

func (c *EngineConfig) normalize() error {
	dae, err := ontology.NormalizeID(c.Characteristics.DAEMarker)
	if err != nil {
		return fmt.Errorf("characteristics.dae_marker: %w", err)
	}
	steady, err := ontology.NormalizeID(c.Characteristics.SteadyStateMarker)
	if err != nil {
		return fmt.Errorf("characteristics.steady_state_marker: %w", err)
	}
	c.Characteristics.DAEMarker = dae
	c.Characteristics.SteadyStateMarker = steady
	return nil
}

// Validate checks the policy and trace level names.
func (c *EngineConfig) Validate() error {
	if _, err := ParsePolicy(c.DefaultPolicy); err != nil {
		return fmt.Errorf("default_policy: %w", err)
	}
	if !trace.IsValidTraceLevel(c.Trace) {
		return fmt.Errorf("unknown trace level %q; valid: none, substitutions, decisions", c.Trace)
	}
	return nil
}

// ValidateAgainst checks that the marker characteristics exist in store.
func (c *EngineConfig) ValidateAgainst(store Store) error {
	for _, m := range []struct{ key, id string }{
		{"characteristics.dae_marker", c.Characteristics.DAEMarker},
		{"characteristics.steady_state_marker", c.Characteristics.SteadyStateMarker},
	} {
		if _, err := store.Term(m.id); err != nil {
			return fmt.Errorf("%s: %w", m.key, err)
		}
	}
	return nil
}

// Policy returns the parsed default policy.
func (c *EngineConfig) Policy() (Policy, error) {
	return ParsePolicy(c.DefaultPolicy)
}

// Markers returns the configured family markers.
func (c *EngineConfig) Markers() Markers {
	return Markers{
		DAE:         c.Characteristics.DAEMarker,
		SteadyState: c.Characteristics.SteadyStateMarker,
	}
}
