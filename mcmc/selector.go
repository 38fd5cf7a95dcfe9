// Package mcmc picks moves by sampling from a softmax distribution over
// one-ply evaluations, rather than always playing the maximum. The name is
// inherited from the source material; the procedure is a single softmax
// draw, not a Markov chain.
package mcmc

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/notnil/chess"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/softfish/eval"
	"github.com/softfish/game"
)

// Config configures the selector.
type Config struct {
	// Workers is the number of goroutines scoring candidate moves. At most
	// one worker scores in place on the shared state; more than one scores
	// independent position copies.
	Workers int `json:"workers"`
}

// DefaultConfig returns a single-threaded selector configuration.
func DefaultConfig() Config {
	return Config{Workers: 1}
}

// IsValid reports whether the configuration is usable.
func (conf Config) IsValid() bool {
	return conf.Workers >= 1
}

// Selector draws one move per call from the softmax of the candidate
// scores. Randomness comes from the injected source only, so a fixed seed
// and a fixed move ordering always reproduce the same draw.
type Selector struct {
	eval *eval.Evaluator
	conf Config
	rng  *rand.Rand
}

// New returns a Selector scoring with e and drawing from rng.
func New(e *eval.Evaluator, conf Config, rng *rand.Rand) *Selector {
	if !conf.IsValid() {
		conf = DefaultConfig()
	}
	return &Selector{eval: e, conf: conf, rng: rng}
}

// Select draws one of moves weighted by the softmax of their one-ply
// evaluations, or nil when moves is empty. The caller's state is restored
// before Select returns; committing the chosen move is the caller's job.
func (s *Selector) Select(st *game.State, moves []*chess.Move) *chess.Move {
	if len(moves) == 0 {
		return nil
	}
	probs := Softmax(s.Scores(st, moves))
	return moves[s.sampleIndex(probs)]
}

// Policy returns the probability distribution Select draws from.
func (s *Selector) Policy(st *game.State, moves []*chess.Move) []float64 {
	return Softmax(s.Scores(st, moves))
}

// Scores evaluates the position after each candidate move, in move order.
func (s *Selector) Scores(st *game.State, moves []*chess.Move) []float64 {
	if s.conf.Workers > 1 {
		return s.scoresParallel(st, moves)
	}
	scores := make([]float64, len(moves))
	for i, m := range moves {
		scores[i] = s.scoreMove(st, m)
	}
	return scores
}

// scoreMove applies m, evaluates, and undoes. The undo runs on every exit
// path so no candidate's mutation can leak into the next.
func (s *Selector) scoreMove(st *game.State, m *chess.Move) float64 {
	st.Apply(m)
	defer st.UndoLastMove()
	return s.eval.Evaluate(st.Position())
}

// scoresParallel fans candidate scoring out over independent position
// copies. The shared state is never mutated and score order matches move
// order, so the subsequent draw is identical to the sequential path.
func (s *Selector) scoresParallel(st *game.State, moves []*chess.Move) []float64 {
	scores := make([]float64, len(moves))
	pos := st.Position()

	var next int64
	var g errgroup.Group
	for w := 0; w < s.conf.Workers; w++ {
		g.Go(func() error {
			for {
				i := int(atomic.AddInt64(&next, 1)) - 1
				if i >= len(moves) {
					return nil
				}
				scores[i] = s.eval.Evaluate(pos.Update(moves[i]))
			}
		})
	}
	// Scoring cannot fail; Wait only joins the workers.
	_ = g.Wait()
	return scores
}

// Softmax converts scores into a probability distribution proportional to
// their exponentials. The maximum is subtracted before exponentiating;
// unmitigated raw scores can exceed the exponential range, so this is a
// correctness requirement, not an optimisation.
func Softmax(scores []float64) []float64 {
	probs := make([]float64, len(scores))
	if len(scores) == 0 {
		return probs
	}
	max := floats.Max(scores)
	for i, v := range scores {
		probs[i] = math.Exp(v - max)
	}
	floats.Scale(1/floats.Sum(probs), probs)
	return probs
}

// sampleIndex draws an index with the given probabilities as weights.
func (s *Selector) sampleIndex(probs []float64) int {
	cum := make([]float64, len(probs))
	floats.CumSum(cum, probs)
	return pick(cum, s.rng.Float64())
}

// pick walks the cumulative distribution and returns the first index whose
// cumulative value reaches u. If rounding leaves u beyond the final
// cumulative value, the last index is returned rather than failing.
func pick(cum []float64, u float64) int {
	for i, c := range cum {
		if c >= u {
			return i
		}
	}
	return len(cum) - 1
}
