package eval

import (
	"github.com/hashicorp/go-multierror"
	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// Weights configures the evaluator: a material value per piece type and a
// placement grid applied to pawns. Both tables are treated as immutable for
// the lifetime of an Evaluator built from them.
type Weights struct {
	// Material maps every piece type to its value. The king is carried at
	// zero; its presence is implicit, not scored.
	Material map[chess.PieceType]float64 `json:"material"`

	// PawnPlacement is indexed [rank][file] with rank 0 the rank of a1.
	// The same orientation is used for both colours; the grid is not
	// mirrored for Black.
	PawnPlacement [8][8]float64 `json:"pawn_placement"`
}

// DefaultWeights returns the stock material values and pawn grid.
func DefaultWeights() Weights {
	return Weights{
		Material: map[chess.PieceType]float64{
			chess.Pawn:   1.0,
			chess.Knight: 3.2,
			chess.Bishop: 3.3,
			chess.Rook:   5.0,
			chess.Queen:  9.5,
			chess.King:   0.0,
		},
		PawnPlacement: [8][8]float64{
			{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
			{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
			{0.1, 0.1, 0.2, 0.3, 0.3, 0.2, 0.1, 0.1},
			{0.05, 0.05, 0.1, 0.25, 0.25, 0.1, 0.05, 0.05},
			{0.0, 0.0, 0.0, 0.2, 0.2, 0.0, 0.0, 0.0},
			{0.05, -0.05, -0.1, 0.0, 0.0, -0.1, -0.05, 0.05},
			{0.05, 0.1, 0.0, -0.2, -0.2, 0.0, 0.1, 0.05},
			{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		},
	}
}

// Validate checks that the material table is exhaustive over all piece
// types and carries no negative values. A table that fails validation must
// never reach an evaluation call.
func (w Weights) Validate() error {
	var errs error
	if w.Material == nil {
		return errors.New("material table is nil")
	}
	for _, pt := range chess.PieceTypes() {
		v, ok := w.Material[pt]
		if !ok {
			errs = multierror.Append(errs, errors.Errorf("material table is missing piece type %v", pt))
			continue
		}
		if v < 0 {
			errs = multierror.Append(errs, errors.Errorf("material value for %v is negative (%v)", pt, v))
		}
	}
	return errs
}
