package softfish

import (
	"github.com/pkg/errors"

	"github.com/softfish/eval"
	"github.com/softfish/mcmc"
)

// Config for a self-play run. It holds the evaluation weights, the selector
// configuration and the knobs of the game loop.
type Config struct {
	Name     string       `json:"name"`
	Weights  eval.Weights `json:"weights"`
	Selector mcmc.Config  `json:"selector_conf"`

	// Seed drives every random draw of the run. Zero means seed from the
	// clock; any other value makes the whole game reproducible.
	Seed int64 `json:"seed"`

	// MaxMoves caps the game length. Zero or negative means no cap.
	MaxMoves int `json:"max_moves"`

	// StartFEN is the starting position; empty means the standard setup.
	StartFEN string `json:"start_fen"`
}

// DefaultConfig returns a runnable configuration with the stock weights.
func DefaultConfig() Config {
	return Config{
		Name:     "Softfish",
		Weights:  eval.DefaultWeights(),
		Selector: mcmc.DefaultConfig(),
	}
}

// Validate checks the configuration before any game state is built.
func (conf Config) Validate() error {
	if err := conf.Weights.Validate(); err != nil {
		return errors.WithMessage(err, "invalid evaluation weights")
	}
	if !conf.Selector.IsValid() {
		return errors.Errorf("invalid selector config: workers must be >= 1, got %d", conf.Selector.Workers)
	}
	return nil
}
