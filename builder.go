package dfakit

// Builder provides a fluent API for assembling machine definitions.
//
// Nothing is validated until Build, which hands the accumulated definition
// to New. Declaration order is preserved, so validation errors refer to the
// same positions the builder calls used.
type Builder[S, I comparable] struct {
	def  Definition[S, I]
	opts []Option[S, I]
}

// NewBuilder creates a builder for a machine starting at initial.
func NewBuilder[S, I comparable](initial S) *Builder[S, I] {
	return &Builder[S, I]{
		def: Definition[S, I]{Initial: initial},
	}
}

// Symbols appends input symbols to the alphabet.
func (b *Builder[S, I]) Symbols(symbols ...I) *Builder[S, I] {
	b.def.Alphabet = append(b.def.Alphabet, symbols...)
	return b
}

// States appends states to the state set.
func (b *Builder[S, I]) States(states ...S) *Builder[S, I] {
	b.def.States = append(b.def.States, states...)
	return b
}

// Transition appends a transition from one state to another on symbol.
func (b *Builder[S, I]) Transition(from S, on I, to S) *Builder[S, I] {
	b.def.Transitions = append(b.def.Transitions, Transition[S, I]{From: from, On: on, To: to})
	return b
}

// Final appends states to the set of final states.
func (b *Builder[S, I]) Final(states ...S) *Builder[S, I] {
	b.def.Final = append(b.def.Final, states...)
	return b
}

// StartHook registers a hook that runs before each transition.
func (b *Builder[S, I]) StartHook(fn Hook[S, I]) *Builder[S, I] {
	b.opts = append(b.opts, WithStartHook(fn))
	return b
}

// EndHook registers a hook that runs after each transition.
func (b *Builder[S, I]) EndHook(fn Hook[S, I]) *Builder[S, I] {
	b.opts = append(b.opts, WithEndHook(fn))
	return b
}

// Build validates the accumulated definition and returns the machine.
func (b *Builder[S, I]) Build() (*Machine[S, I], error) {
	return New(b.def, b.opts...)
}

// MustBuild is like Build but panics on an invalid definition.
func (b *Builder[S, I]) MustBuild() *Machine[S, I] {
	return MustNew(b.def, b.opts...)
}
