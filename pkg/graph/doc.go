// Package graph renders dfakit machine definitions as diagrams: Graphviz
// DOT for tooling that draws automata, Mermaid stateDiagram-v2 for markdown
// documentation.
//
// Both exporters walk the definition in declaration order, so the same
// definition always produces the same text. States and symbols are rendered
// with fmt %v semantics.
//
// # Usage
//
//	import "github.com/dmitrymomot/dfakit/pkg/graph"
//
//	dot := graph.DOT(m.Definition())
//	mmd := graph.Mermaid(m.Definition())
//
// DOT drawings mark final states with double circles and point an unlabeled
// entry node at the initial state; parallel transitions between the same two
// states merge into a single edge with a combined label. Mermaid output
// links [*] to the initial state and lists one line per transition; state
// names that Mermaid cannot use as identifiers are declared under a
// sanitized alias with the display name preserved.
package graph
