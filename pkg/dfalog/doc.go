// Package dfalog provides ready-made slog transition hooks for dfakit
// machines and a small logger factory to go with them.
//
// Hooks returns a start/end hook pair that records every transition: the
// start hook logs at debug level before the state changes, the end hook at
// info level after. Both lines carry the same machine_id attribute so logs
// from several machines can be separated, plus the from, symbol, and to
// values of the step. The accepting attribute is queried through the machine
// inside each hook, so the start line reports acceptance of the state being
// left and the end line of the state being entered.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/dfakit"
//	    "github.com/dmitrymomot/dfakit/pkg/dfalog"
//	)
//
//	log := dfalog.New(dfalog.WithLevel(slog.LevelDebug))
//	start, end := dfalog.Hooks[string, string](log)
//
//	m := dfakit.MustNew(def,
//	    dfakit.WithStartHook(start),
//	    dfakit.WithEndHook(end),
//	)
//
// # Configuration
//
// New builds a *slog.Logger from functional options: WithLevel, WithFormat
// (json or text), WithOutput, and WithAttr for static attributes. Defaults
// are JSON at info level on stdout.
//
// NewFromEnv reads the same settings from DFAKIT_LOG_LEVEL and
// DFAKIT_LOG_FORMAT instead, loading the default .env file once per process
// before parsing. Parse failures wrap ErrParsingConfig; formats other than
// json or text wrap ErrInvalidFormat.
package dfalog
