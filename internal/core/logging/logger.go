// Package logging provides zerolog helpers shared by the probar components.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier derived from
// the global logger. Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return With(log.Logger, name)
}

// With derives a component logger from base.
func With(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str("cmp", name).Logger()
}
