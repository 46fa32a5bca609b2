package dfalog

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dfakit"
)

// HookOption configures the hook pair returned by Hooks.
type HookOption func(*hookConfig)

type hookConfig struct {
	machineID string
}

// WithMachineID overrides the generated machine correlation ID. Empty values
// are ignored so the generated default survives.
func WithMachineID(id string) HookOption {
	return func(c *hookConfig) {
		if id != "" {
			c.machineID = id
		}
	}
}

// Hooks returns a start/end hook pair logging every transition through log.
// The start hook records the step at debug level while the machine still
// reports the pre-transition state; the end hook records it at info level
// once the new state is in place. Both lines share a machine_id attribute,
// generated per Hooks call unless WithMachineID overrides it.
//
// A nil log falls back to slog.Default.
func Hooks[S, I comparable](log *slog.Logger, opts ...HookOption) (start, end dfakit.Hook[S, I]) {
	cfg := &hookConfig{machineID: uuid.NewString()}
	for _, opt := range opts {
		opt(cfg)
	}
	if log == nil {
		log = slog.Default()
	}

	start = func(m *dfakit.Machine[S, I], from S, symbol I, to S) {
		log.Debug("transition starting",
			slog.String("machine_id", cfg.machineID),
			slog.Any("from", from),
			slog.Any("symbol", symbol),
			slog.Any("to", to),
			slog.Bool("accepting", m.Accepting()),
		)
	}
	end = func(m *dfakit.Machine[S, I], from S, symbol I, to S) {
		log.Info("transition complete",
			slog.String("machine_id", cfg.machineID),
			slog.Any("from", from),
			slog.Any("symbol", symbol),
			slog.Any("to", to),
			slog.Bool("accepting", m.Accepting()),
		)
	}
	return start, end
}
