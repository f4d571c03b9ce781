package kisao

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/biosimulators/kisao-subst/kisao/trace"
)

// Engine bundles the classifier, catalog, ladder and resolver built for one
// ontology snapshot and configuration.
type Engine struct {
	Config     *EngineConfig
	Classifier *Classifier
	Catalog    *Catalog
	Ladder     *Ladder
	Resolver   *Resolver
	Trace      *trace.SubstitutionTrace // nil when tracing is off

	policy Policy
}

// NewEngine validates cfg against store and assembles an Engine with the
// default family catalog and tier table. A nil cfg means DefaultEngineConfig.
func NewEngine(store Store, cfg *EngineConfig) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultEngineConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	if err := cfg.ValidateAgainst(store); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	classifier := NewClassifier(store)
	catalog, err := NewCatalog(classifier, DefaultFamilies(cfg.Markers()))
	if err != nil {
		return nil, fmt.Errorf("building family catalog: %w", err)
	}
	ladder, err := NewLadder(DefaultTiers)
	if err != nil {
		return nil, fmt.Errorf("building policy ladder: %w", err)
	}
	if err := ladder.Validate(catalog); err != nil {
		return nil, fmt.Errorf("policy ladder: %w", err)
	}

	e := &Engine{
		Config:     cfg,
		Classifier: classifier,
		Catalog:    catalog,
		Ladder:     ladder,
		Resolver:   NewResolver(store, catalog, ladder),
		policy:     policy,
	}
	if level := trace.TraceLevel(cfg.Trace); level != "" && level != trace.TraceLevelNone {
		e.Trace = trace.NewSubstitutionTrace(level)
		e.Resolver.SetTrace(e.Trace)
	}
	logrus.Debugf("engine ready: default policy %s, %d families, %d tiers",
		policy, len(catalog.Names()), len(ladder.Tiers()))
	return e, nil
}

// DefaultPolicy returns the configured policy for callers that express none.
func (e *Engine) DefaultPolicy() Policy {
	return e.policy
}

// Reset drops memoized families. Call it after swapping the snapshot behind
// the store.
func (e *Engine) Reset() {
	e.Classifier.Reset()
}
