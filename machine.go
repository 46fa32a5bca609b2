package dfakit

import (
	"errors"
	"fmt"
)

// transitionKey identifies a transition by its (state, symbol) pair.
type transitionKey[S, I comparable] struct {
	from S
	on   I
}

// Machine is a deterministic finite automaton over states S and input
// symbols I. It owns an immutable copy of its definition and a single
// mutable field, the current state, which only Input and Reset change.
//
// Machine is not safe for concurrent use. It holds no lock; callers that
// share one machine across goroutines must serialize access themselves.
type Machine[S, I comparable] struct {
	def      Definition[S, I]
	alphabet map[I]struct{}
	final    map[S]struct{}
	delta    map[transitionKey[S, I]]S
	start    Hook[S, I]
	end      Hook[S, I]
	current  S
}

// New validates def and constructs a machine positioned at the initial
// state. The definition is deep-copied: mutating the caller's slices after
// New returns has no effect on the machine.
//
// Validation fails fast with a distinct error per condition (see the
// sentinel errors in this package and ErrConflictingTransitions), so an
// invalid automaton is rejected up front instead of misbehaving at runtime.
func New[S, I comparable](def Definition[S, I], opts ...Option[S, I]) (*Machine[S, I], error) {
	if err := def.validate(); err != nil {
		return nil, err
	}

	m := &Machine[S, I]{
		def:      def.clone(),
		alphabet: toSet(def.Alphabet),
		final:    toSet(def.Final),
		delta:    make(map[transitionKey[S, I]]S, len(def.Transitions)),
		current:  def.Initial,
	}
	for _, t := range def.Transitions {
		m.delta[transitionKey[S, I]{from: t.From, on: t.On}] = t.To
	}

	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// MustNew is like New but panics on an invalid definition, following the
// package's fail-fast pattern for machines assembled from constants.
func MustNew[S, I comparable](def Definition[S, I], opts ...Option[S, I]) *Machine[S, I] {
	m, err := New(def, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create machine: %v", err))
	}
	return m
}

// Input advances the machine by one step in response to symbol.
//
// A symbol outside the alphabet is an error and leaves the state untouched.
// A symbol with no transition from the current state is a deliberate no-op:
// the call succeeds, no hooks fire, and the state stays put, so partial
// automata can ignore symbol/state combinations they do not react to.
//
// When a transition matches, the start hook runs first (the machine still
// reports the pre-transition state), then the state changes, then the end
// hook runs (the machine reports the post-transition state). Both hooks
// receive the same (from, symbol, to) values.
func (m *Machine[S, I]) Input(symbol I) error {
	if _, ok := m.alphabet[symbol]; !ok {
		return errors.Join(ErrUnknownSymbol,
			fmt.Errorf("input symbol %v is not in the alphabet", symbol))
	}

	to, ok := m.delta[transitionKey[S, I]{from: m.current, on: symbol}]
	if !ok {
		return nil
	}

	from := m.current
	if m.start != nil {
		m.start(m, from, symbol, to)
	}
	m.current = to
	if m.end != nil {
		m.end(m, from, symbol, to)
	}
	return nil
}

// MustInput is like Input but panics on error and returns the machine
// itself, so steps can be chained:
//
//	m.MustInput(a).MustInput(b).MustInput(c)
func (m *Machine[S, I]) MustInput(symbol I) *Machine[S, I] {
	if err := m.Input(symbol); err != nil {
		panic(fmt.Sprintf("failed to input symbol: %v", err))
	}
	return m
}

// Feed applies symbols in order, stopping at the first error. Transitions
// already applied stay applied.
func (m *Machine[S, I]) Feed(symbols ...I) error {
	for _, symbol := range symbols {
		if err := m.Input(symbol); err != nil {
			return err
		}
	}
	return nil
}

// Current returns the machine's current state: the destination of the most
// recent transition, or the initial state if none has occurred.
func (m *Machine[S, I]) Current() S {
	return m.current
}

// Initial returns the machine's initial state, which never changes for the
// machine's lifetime.
func (m *Machine[S, I]) Initial() S {
	return m.def.Initial
}

// Accepting reports whether the current state is one of the final states.
func (m *Machine[S, I]) Accepting() bool {
	_, ok := m.final[m.current]
	return ok
}

// CanInput reports whether symbol would cause a transition from the current
// state. It is false both for symbols outside the alphabet and for symbols
// with no transition entry here.
func (m *Machine[S, I]) CanInput(symbol I) bool {
	_, ok := m.delta[transitionKey[S, I]{from: m.current, on: symbol}]
	return ok
}

// Reset returns the machine to its initial state. Hooks do not fire.
func (m *Machine[S, I]) Reset() {
	m.current = m.def.Initial
}

// Definition returns a deep copy of the machine's definition, in the order
// it was declared. Mutating the copy has no effect on the machine.
func (m *Machine[S, I]) Definition() Definition[S, I] {
	return m.def.clone()
}
