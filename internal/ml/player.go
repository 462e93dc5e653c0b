package ml

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// DefaultForgetfulness is the chance the player overlooks a legal move entirely.
const DefaultForgetfulness = 0.05

// Player proposes O moves from a trained model, with noise and forgetfulness
// so it stays beatable.
type Player struct {
	logger  *slog.Logger
	rng     *rand.Rand
	weights Weights

	noise         float64
	forgetfulness float64
}

func NewPlayer(logger *slog.Logger, rng *rand.Rand, weights Weights, noise, forgetfulness float64) *Player {
	return &Player{
		logger:        logger.With("component", "linear-player"),
		rng:           rng,
		weights:       weights,
		noise:         noise,
		forgetfulness: forgetfulness,
	}
}

// NextMove scores O on each empty cell of a private copy and keeps the first
// highest prediction. It reports false when every cell was forgotten.
func (that *Player) NextMove(board entity.Board) (int, bool) {
	log := that.logger.With("method", "NextMove")

	bestScore := math.Inf(-1)
	bestMove := -1

	for i := range board {
		if board[i] != entity.Empty {
			continue
		}

		if that.rng.Float64() < that.forgetfulness {
			log.Debug("cell forgotten", "cell", i)
			continue
		}

		board[i] = entity.AIPlayer
		score := float64(PredictWithImperfection(board.Features(), that.weights, that.noise, that.rng))
		board[i] = entity.Empty

		log.Debug("scored cell", "cell", i, "score", score)

		if score > bestScore {
			bestScore = score
			bestMove = i
		}
	}

	if bestMove == -1 {
		return bestMove, false
	}

	log.Debug("move selected", "cell", bestMove, "row", bestMove/3+1, "col", bestMove%3+1)

	return bestMove, true
}
