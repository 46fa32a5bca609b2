package dfakit

import (
	"errors"
	"fmt"
	"slices"
)

// Transition maps one (state, symbol) pair to a destination state. The
// (From, On) pair is the transition's key: struct equality over comparable
// type parameters gives the key structural (value) equality, so two
// transitions conflict whenever their From and On fields are equal, no
// matter how the values were produced.
type Transition[S, I comparable] struct {
	From S
	On   I
	To   S
}

// Definition describes a complete machine: the input alphabet, the state
// set, the initial state, the transition table, and the optional final
// (accepting) states.
//
// Slices keep declaration order, which New relies on for deterministic,
// position-based validation errors. Alphabet, States, and Final are sets:
// a duplicate element is a validation failure, not a silent merge.
type Definition[S, I comparable] struct {
	Alphabet    []I
	States      []S
	Initial     S
	Transitions []Transition[S, I]
	Final       []S
}

// Hook is called around a transition with the machine itself, the state the
// machine is leaving, the symbol that triggered the transition, and the
// state it is entering. A start hook runs before the machine's current
// state changes; an end hook runs after. Both receive the same three
// values in the same order.
type Hook[S, I comparable] func(m *Machine[S, I], from S, symbol I, to S)

// clone deep-copies the definition so the machine's copy is insulated from
// later mutation of the caller's slices, and vice versa.
func (d Definition[S, I]) clone() Definition[S, I] {
	return Definition[S, I]{
		Alphabet:    slices.Clone(d.Alphabet),
		States:      slices.Clone(d.States),
		Initial:     d.Initial,
		Transitions: slices.Clone(d.Transitions),
		Final:       slices.Clone(d.Final),
	}
}

// validate checks the definition and fails on the first violation found.
// Checks run in a fixed order: alphabet, state set, initial state,
// transition entries (source, symbol, target per entry), determinism,
// final states. Error positions refer to declaration order.
func (d Definition[S, I]) validate() error {
	if len(d.Alphabet) == 0 {
		return ErrEmptyAlphabet
	}
	if i, j, ok := firstDuplicate(d.Alphabet); ok {
		return errors.Join(ErrDuplicateSymbol,
			fmt.Errorf("symbol %v appears at positions %d and %d of the alphabet", d.Alphabet[j], i, j))
	}

	if len(d.States) == 0 {
		return ErrEmptyStates
	}
	if i, j, ok := firstDuplicate(d.States); ok {
		return errors.Join(ErrDuplicateState,
			fmt.Errorf("state %v appears at positions %d and %d of the state set", d.States[j], i, j))
	}

	states := toSet(d.States)
	if _, ok := states[d.Initial]; !ok {
		return errors.Join(ErrUnknownInitialState,
			fmt.Errorf("initial state %v is not declared", d.Initial))
	}

	if len(d.Transitions) == 0 {
		return ErrNoTransitions
	}
	alphabet := toSet(d.Alphabet)
	for i, t := range d.Transitions {
		if _, ok := states[t.From]; !ok {
			return errors.Join(ErrUnknownSourceState,
				fmt.Errorf("transition %d: source state %v is not declared", i, t.From))
		}
		if _, ok := alphabet[t.On]; !ok {
			return errors.Join(ErrUnknownSymbol,
				fmt.Errorf("transition %d: symbol %v is not in the alphabet", i, t.On))
		}
		if _, ok := states[t.To]; !ok {
			return errors.Join(ErrUnknownTargetState,
				fmt.Errorf("transition %d: target state %v is not declared", i, t.To))
		}
	}

	// Pairwise scan keeps "which two entries conflict" deterministic: the
	// reported pair is the first hit walking (0,1), (0,2), ... (1,2), ...
	for i := 0; i < len(d.Transitions); i++ {
		for j := i + 1; j < len(d.Transitions); j++ {
			if d.Transitions[i].From == d.Transitions[j].From && d.Transitions[i].On == d.Transitions[j].On {
				return NewErrConflictingTransitions(i, j, d.Transitions[i].From, d.Transitions[i].On)
			}
		}
	}

	if i, j, ok := firstDuplicate(d.Final); ok {
		return errors.Join(ErrDuplicateFinalState,
			fmt.Errorf("final state %v appears at positions %d and %d", d.Final[j], i, j))
	}
	for i, s := range d.Final {
		if _, ok := states[s]; !ok {
			return errors.Join(ErrUnknownFinalState,
				fmt.Errorf("final state %d: state %v is not declared", i, s))
		}
	}

	return nil
}

// firstDuplicate reports the positions of the first repeated value in
// declaration order: j is the first index whose value was already seen,
// i is where that value first appeared.
func firstDuplicate[T comparable](values []T) (i, j int, found bool) {
	seen := make(map[T]int, len(values))
	for idx, v := range values {
		if prev, ok := seen[v]; ok {
			return prev, idx, true
		}
		seen[v] = idx
	}
	return 0, 0, false
}

func toSet[T comparable](values []T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
