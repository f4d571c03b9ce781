// Package ontology provides the read-only term graph that the substitution
// engine queries.
//
// A Graph holds KiSAO terms (algorithms, characteristics, parameters) linked
// by is-a edges and by named relationships such as "has characteristic".
// Graphs are built either programmatically (NewGraph, AddTerm,
// AddRelationship, Freeze) or from a YAML snapshot (LoadSnapshot).
//
// # Store contract
//
//   - Term and Relationship return a *NotFoundError (matching ErrNotFound)
//     for unknown ids.
//   - Descendants is the reflexive transitive closure of the is-a relation:
//     the term itself is always the first element.
//   - RelationTargets returns only directly-asserted edges; nothing is
//     inherited from ancestors.
//
// A frozen Graph is immutable and safe for concurrent readers.
package ontology
