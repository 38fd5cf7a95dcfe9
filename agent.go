package softfish

import (
	"github.com/notnil/chess"

	"github.com/softfish/game"
	"github.com/softfish/mcmc"
)

// An Agent is a player driven by the stochastic selector.
type Agent struct {
	Selector *mcmc.Selector
	Player   chess.Color

	// Statistics
	Wins int
	Loss int
	Draw int

	name string
}

// Act picks the agent's move for the current state, or nil when the agent
// has no legal moves.
func (a *Agent) Act(st *game.State) *chess.Move {
	return a.Selector.Select(st, st.LegalMoves())
}

// Name returns the agent's display name.
func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) resetStats() {
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
}
