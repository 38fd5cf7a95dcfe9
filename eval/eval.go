// Package eval scores chess positions with a material count, a pawn
// placement bonus and a piece clustering term. Scores are signed from
// White's perspective: positive favours White, negative favours Black.
package eval

import (
	"math"

	"github.com/notnil/chess"
	"gonum.org/v1/gonum/stat"
)

// clusterWeight scales the cohesion difference between the two sides.
const clusterWeight = 0.1

// Evaluator computes a scalar score for a position. It is pure: it never
// mutates the position, and bit-identical positions score bit-identically.
type Evaluator struct {
	weights Weights
}

// New builds an Evaluator, validating the weight tables up front so a
// missing piece type can never surface mid-game.
func New(w Weights) (*Evaluator, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{weights: w}, nil
}

// Evaluate scores pos. Squares are visited in rank-major order from a1 so
// the floating-point summation order is canonical and results reproduce
// exactly for a given position.
func (e *Evaluator) Evaluate(pos *chess.Position) float64 {
	board := pos.Board()

	var score float64
	var whiteRanks, whiteFiles, blackRanks, blackFiles []float64

	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		rank := int(sq) / 8
		file := int(sq) % 8

		value := e.weights.Material[piece.Type()]
		if piece.Type() == chess.Pawn {
			value += e.weights.PawnPlacement[rank][file]
		}

		if piece.Color() == chess.White {
			score += value
			whiteRanks = append(whiteRanks, float64(rank))
			whiteFiles = append(whiteFiles, float64(file))
		} else {
			score -= value
			blackRanks = append(blackRanks, float64(rank))
			blackFiles = append(blackFiles, float64(file))
		}
	}

	white := cohesion(whiteRanks, whiteFiles)
	black := cohesion(blackRanks, blackFiles)

	return score + clusterWeight*(white-black)
}

// cohesion is the negated sum of distances from each piece to the side's
// centroid, so values closer to zero mean a tighter cluster. Zero or one
// piece is exactly 0.
func cohesion(ranks, files []float64) float64 {
	if len(ranks) < 2 {
		return 0
	}
	rankCentroid := stat.Mean(ranks, nil)
	fileCentroid := stat.Mean(files, nil)

	var spread float64
	for i := range ranks {
		spread += math.Hypot(ranks[i]-rankCentroid, files[i]-fileCentroid)
	}
	return -spread
}
