// Package dfakit provides a generic, type-safe engine for deterministic
// finite automata (DFAs) in Go applications.
//
// A machine is declared as plain data – a Definition listing the alphabet,
// the states, the initial state, the transition table, and the final
// states – while the library handles:
//  1. Exhaustive validation of the definition at construction time
//  2. Deterministic, single-step transitions driven by input symbols
//  3. Optional start/end hooks observing each transition
//  4. Acceptance checks against the declared final states
//
// Any comparable types can serve as states and symbols: strings and ints
// for simple automata, custom structs when states carry additional data.
//
// # Architecture
//
// New validates the definition in a fixed order (alphabet, states, initial
// state, transitions, determinism, final states) and fails fast on the
// first violation, so every constructed machine is a well-formed DFA. The
// validated definition is deep-copied and compiled into an in-memory
// map[(state, symbol)]state for O(1) transition lookups. Configuration
// uses the functional options pattern.
//
// Validation errors are sentinel values (e.g. ErrUnknownSourceState)
// joined with positional detail, so callers can match the condition with
// errors.Is while logs show which entry was at fault. Nondeterminism is
// reported through ErrConflictingTransitions, which names both offending
// entries.
//
// # Usage
//
// Basic example:
//
//	import "github.com/dmitrymomot/dfakit"
//
//	def := dfakit.Definition[string, rune]{
//	    Alphabet: []rune{'a', 'b'},
//	    States:   []string{"even", "odd"},
//	    Initial:  "even",
//	    Transitions: []dfakit.Transition[string, rune]{
//	        {From: "even", On: 'a', To: "odd"},
//	        {From: "odd", On: 'a', To: "even"},
//	    },
//	    Final: []string{"even"},
//	}
//
//	m := dfakit.MustNew(def)
//	if err := m.Feed('a', 'a'); err != nil {
//	    // symbol outside the alphabet
//	}
//	accepted := m.Accepting()
//
// A symbol with no transition from the current state is not an error: the
// machine simply stays where it is and no hooks fire. Only symbols outside
// the alphabet are rejected.
//
// # Hooks
//
// Start and end hooks observe a transition from both sides of the state
// change:
//
//	m := dfakit.MustNew(def,
//	    dfakit.WithStartHook(func(m *dfakit.Machine[string, rune], from string, sym rune, to string) {
//	        // m.Current() == from here
//	    }),
//	    dfakit.WithEndHook(func(m *dfakit.Machine[string, rune], from string, sym rune, to string) {
//	        // m.Current() == to here
//	    }),
//	)
//
// # Concurrency
//
// Machine holds no lock. A machine is intended to be driven by a single
// goroutine; callers that share one across goroutines must serialize
// access themselves. This keeps single-threaded stepping allocation-free
// and cheap.
//
// # See Also
//
// Subpackages build on the engine: pkg/dfayaml loads definitions from
// YAML documents, pkg/dfalog provides slog-based transition hooks, and
// pkg/graph renders definitions as Graphviz DOT or Mermaid diagrams.
package dfakit
