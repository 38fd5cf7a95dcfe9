package softfish

import (
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"github.com/softfish/eval"
	"github.com/softfish/game"
	"github.com/softfish/mcmc"
)

// Arena drives a self-play game: it alternates turns between two agents,
// commits each chosen move and reports the result.
type Arena struct {
	r    *rand.Rand
	game *game.State

	white, black  *Agent
	currentPlayer *Agent

	logger   *log.Logger
	maxMoves int
}

// MakeArena builds an arena from conf. Both agents share one evaluator but
// draw from independent random sources seeded off the run seed, so a fixed
// conf.Seed reproduces the entire game. Game output is written to out;
// nil means stdout.
func MakeArena(conf Config, out io.Writer) (*Arena, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	evaluator, err := eval.New(conf.Weights)
	if err != nil {
		return nil, errors.WithMessage(err, "build evaluator")
	}

	var st *game.State
	if conf.StartFEN == "" {
		st = game.NewState()
	} else {
		if st, err = game.FromFEN(conf.StartFEN); err != nil {
			return nil, err
		}
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	white := &Agent{
		Selector: mcmc.New(evaluator, conf.Selector, rand.New(rand.NewSource(r.Int63()))),
		Player:   chess.White,
		name:     "white",
	}
	black := &Agent{
		Selector: mcmc.New(evaluator, conf.Selector, rand.New(rand.NewSource(r.Int63()))),
		Player:   chess.Black,
		name:     "black",
	}

	if out == nil {
		out = os.Stdout
	}

	return &Arena{
		r:             r,
		game:          st,
		white:         white,
		black:         black,
		currentPlayer: white,
		logger:        log.New(out, "", 0),
		maxMoves:      conf.MaxMoves,
	}, nil
}

// Play runs the game to checkmate, stalemate or the move cap, and returns
// the result string. The only position mutations that survive are the
// committed moves; every scoring excursion inside the selector is undone.
func (a *Arena) Play() (string, error) {
	if a.game.Turn() == chess.Black {
		a.currentPlayer = a.black
	}

	var winner chess.Color
	var ended bool
	for ended, winner = a.game.Ended(); !ended; ended, winner = a.game.Ended() {
		if a.maxMoves > 0 && a.game.MoveNumber() >= a.maxMoves {
			a.logger.Printf("move cap %d reached", a.maxMoves)
			break
		}

		a.logger.Printf("Move %d (%v):\n%s", a.game.MoveNumber()+1, a.game.Turn(), a.game.ShowBoard())

		best := a.currentPlayer.Act(a.game)
		if best == nil {
			a.logger.Printf("%v has no legal moves. Game over!", a.game.Turn())
			break
		}

		a.game.Apply(best)
		a.switchPlayer()
	}

	if ended {
		switch winner {
		case chess.NoColor:
			a.white.Draw++
			a.black.Draw++
		case a.white.Player:
			a.white.Wins++
			a.black.Loss++
		case a.black.Player:
			a.black.Wins++
			a.white.Loss++
		}
	}

	result := a.game.Result()
	a.logger.Printf("Game result: %s", result)
	return result, nil
}

// State returns the game state the arena plays on.
func (a *Arena) State() *game.State { return a.game }

// White returns the agent playing White.
func (a *Arena) White() *Agent { return a.white }

// Black returns the agent playing Black.
func (a *Arena) Black() *Agent { return a.black }

func (a *Arena) switchPlayer() {
	switch a.currentPlayer {
	case a.white:
		a.currentPlayer = a.black
	case a.black:
		a.currentPlayer = a.white
	}
}
