// Package kisao decides which simulation algorithms may stand in for a
// requested one.
//
// # Reading Guide
//
// Start with these files:
//   - classifier.go: selects the subtree of the ontology whose roots directly
//     carry a set of characteristics, with a memoized per-key cache
//   - catalog.go: the named algorithm families (ODE, SDE, Gillespie-exact, ...)
//   - policy.go: the ordered substitution policies NONE..ANY
//   - ladder.go: per-policy tables of (substitutable, family) entries
//   - resolver.go: substitutable sets, unlocking-policy maps and preferred
//     substitute selection
//   - engine.go: wires the above for one snapshot and EngineConfig (config.go)
//
// The ontology itself is reached only through the Store interface;
// ontology.Graph is the in-memory implementation. Preferred-substitute
// decisions can be recorded with kisao/trace.
package kisao
