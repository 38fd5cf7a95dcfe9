package game

import (
	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// State is a chess position plus the stack of positions that led to it.
// Moves are applied by pushing the successor position and reverted by
// popping it, so an Apply/UndoLastMove pair restores the exact prior state.
type State struct {
	history []*chess.Position
}

// NewState returns a State at the standard starting position.
func NewState() *State {
	g := chess.NewGame()
	return &State{history: []*chess.Position{g.Position()}}
}

// FromFEN returns a State starting at the given FEN position.
func FromFEN(fen string) (*State, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.WithMessagef(err, "parse FEN %q", fen)
	}
	g := chess.NewGame(opt)
	return &State{history: []*chess.Position{g.Position()}}, nil
}

// Position returns the current position. Callers must treat it as read-only;
// all mutation goes through Apply/UndoLastMove.
func (s *State) Position() *chess.Position {
	return s.history[len(s.history)-1]
}

// Board returns the current board.
func (s *State) Board() *chess.Board {
	return s.Position().Board()
}

// Turn returns the colour to move next.
func (s *State) Turn() chess.Color {
	return s.Position().Turn()
}

// LegalMoves enumerates the legal moves of the current position. The order
// is stable across repeated calls on an unchanged state.
func (s *State) LegalMoves() []*chess.Move {
	return s.Position().ValidMoves()
}

// Apply pushes the position resulting from m.
func (s *State) Apply(m *chess.Move) {
	s.history = append(s.history, s.Position().Update(m))
}

// UndoLastMove pops the last applied move. Undoing past the starting
// position is a no-op.
func (s *State) UndoLastMove() {
	if len(s.history) > 1 {
		s.history = s.history[:len(s.history)-1]
	}
}

// MoveNumber returns the count of moves applied so far.
func (s *State) MoveNumber() int {
	return len(s.history) - 1
}

// Ended reports whether the game has ended by checkmate or stalemate and,
// if so, who won. A draw reports chess.NoColor.
func (s *State) Ended() (bool, chess.Color) {
	switch s.Position().Status() {
	case chess.Checkmate:
		return true, s.Turn().Other()
	case chess.Stalemate:
		return true, chess.NoColor
	}
	return false, chess.NoColor
}

// Result formats the game outcome: "1-0", "0-1", "1/2-1/2", or "*" for a
// game still in progress.
func (s *State) Result() string {
	switch s.Position().Status() {
	case chess.Checkmate:
		if s.Turn() == chess.White {
			return "0-1"
		}
		return "1-0"
	case chess.Stalemate:
		return "1/2-1/2"
	}
	return "*"
}

// FEN returns the current position in FEN notation.
func (s *State) FEN() string {
	return s.Position().String()
}

// Eq reports whether two states are at the same position.
func (s *State) Eq(other *State) bool {
	return s.FEN() == other.FEN()
}

// Clone returns an independent copy of the state and its history.
func (s *State) Clone() *State {
	h := make([]*chess.Position, len(s.history))
	copy(h, s.history)
	return &State{history: h}
}

// ShowBoard renders the current board as text.
func (s *State) ShowBoard() string {
	return s.Board().Draw()
}
