package dfakit

// Option configures a machine during construction.
type Option[S, I comparable] func(*Machine[S, I])

// WithStartHook registers fn to run when a transition begins, before the
// state changes. Inside the hook the machine still reports the
// pre-transition state. A nil fn is ignored.
func WithStartHook[S, I comparable](fn Hook[S, I]) Option[S, I] {
	return func(m *Machine[S, I]) {
		if fn != nil {
			m.start = fn
		}
	}
}

// WithEndHook registers fn to run when a transition completes, after the
// state changes. Inside the hook the machine already reports the
// post-transition state. A nil fn is ignored.
func WithEndHook[S, I comparable](fn Hook[S, I]) Option[S, I] {
	return func(m *Machine[S, I]) {
		if fn != nil {
			m.end = fn
		}
	}
}
