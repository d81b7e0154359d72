package domain

import (
	"github.com/rs/zerolog"

	"github.com/agbru/polyfft/internal/logging"
)

// SetLogger routes the library's structured logs (dispatcher candidate
// trials, selections) to the given zerolog logger. The default is silent.
func SetLogger(l zerolog.Logger) {
	logging.SetDefault(logging.NewZerologAdapter(l))
}
