// Package dfayaml loads dfakit machine definitions from declarative YAML
// documents, so automata can live next to configuration instead of being
// assembled in code.
//
// A document lists the same five parts a dfakit.Definition does, with states
// and symbols as strings:
//
//	alphabet: [a, b, c]
//	states: [START, MID, FINAL]
//	initial: START
//	transitions:
//	  - {from: START, on: a, to: START}
//	  - {from: START, on: b, to: MID}
//	  - {from: MID, on: a, to: FINAL}
//	final: [FINAL]
//
// Document order is preserved into the definition, so positional validation
// errors from dfakit.New point at the same entries the file shows.
//
// # Usage
//
//	import "github.com/dmitrymomot/dfakit/pkg/dfayaml"
//
//	m, err := dfayaml.NewMachine(data)
//	if err != nil {
//	    // malformed document or semantically invalid definition
//	}
//	_ = m.Input("b")
//
// Decode and Parse return the raw definition when the caller wants to adjust
// it, or feed it to graph export, before constructing a machine.
//
// # Error Handling
//
// Syntactic failures (malformed YAML, unknown fields, mistyped values) wrap
// ErrInvalidDocument. Semantic failures come from dfakit.New untouched, so
// errors.Is against dfakit's sentinels works the same whether a definition
// was declared in Go or in YAML.
//
// The package only reads documents. Serializing machines back out is out of
// scope; see pkg/graph for visual exports.
package dfayaml
