package dfakit

import (
	"errors"
	"fmt"
)

// Construction failures. New reports exactly one of these per call, wrapped
// with the offending value and its position so malformed definitions can be
// diagnosed without replaying the validation by hand.
var (
	// ErrEmptyAlphabet is returned when the alphabet contains no symbols.
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")

	// ErrDuplicateSymbol is returned when the alphabet lists the same symbol twice.
	ErrDuplicateSymbol = errors.New("alphabet symbols must be unique")

	// ErrEmptyStates is returned when the state set contains no states.
	ErrEmptyStates = errors.New("state set must not be empty")

	// ErrDuplicateState is returned when the state set lists the same state twice.
	ErrDuplicateState = errors.New("states must be unique")

	// ErrUnknownInitialState is returned when the initial state is not part of the state set.
	ErrUnknownInitialState = errors.New("initial state is not in the state set")

	// ErrNoTransitions is returned when the definition declares no transitions at all.
	ErrNoTransitions = errors.New("transition table must not be empty")

	// ErrUnknownSourceState is returned when a transition starts from an undeclared state.
	ErrUnknownSourceState = errors.New("transition source state is not in the state set")

	// ErrUnknownSymbol is returned when a symbol is not part of the alphabet,
	// either in a transition at construction time or as input to Machine.Input.
	ErrUnknownSymbol = errors.New("symbol is not in the alphabet")

	// ErrUnknownTargetState is returned when a transition leads to an undeclared state.
	ErrUnknownTargetState = errors.New("transition target state is not in the state set")

	// ErrDuplicateFinalState is returned when the final state set lists the same state twice.
	ErrDuplicateFinalState = errors.New("final states must be unique")

	// ErrUnknownFinalState is returned when a final state is not part of the state set.
	ErrUnknownFinalState = errors.New("final state is not in the state set")
)

// ErrConflictingTransitions indicates two transitions share the same
// (state, symbol) key, which would make the machine nondeterministic.
// First and Second are the positions of the conflicting entries in the
// definition's transition list.
type ErrConflictingTransitions struct {
	First  int
	Second int
	From   any
	On     any
}

func (e *ErrConflictingTransitions) Error() string {
	return fmt.Sprintf("transitions %d and %d both leave state %v on symbol %v: machine would be nondeterministic",
		e.First, e.Second, e.From, e.On)
}

func NewErrConflictingTransitions(first, second int, from, on any) *ErrConflictingTransitions {
	return &ErrConflictingTransitions{
		First:  first,
		Second: second,
		From:   from,
		On:     on,
	}
}

func IsConflictingTransitionsError(err error) bool {
	var e *ErrConflictingTransitions
	return errors.As(err, &e)
}
