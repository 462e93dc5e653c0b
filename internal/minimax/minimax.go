package minimax

import (
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	MaxDepth = 5
	WinScore = 20

	NegInf = -1000
	PosInf = 1000

	// DefaultSecondBestChance softens the impossible difficulty: the engine plays
	// its second best move this often.
	DefaultSecondBestChance = 0.30

	noMove = -1
)

// Maximizer and minimizer are fixed: the engine always plays O.
const (
	maximizer = entity.O
	minimizer = entity.X
)

// SearchResult is the outcome of one top-level analysis. SecondBest is -1 when
// only one move was available.
type SearchResult struct {
	Best            int
	BestScore       float64
	SecondBest      int
	SecondBestScore float64
	Nodes           uint64
}

// Search scores board for O with alpha-beta pruned minimax. The board is a
// private copy; trial moves are undone before each recursive call returns.
func Search(board entity.Board, depth int, maximizing bool, alpha, beta float64) float64 {
	var nodes uint64
	return search(&board, depth, maximizing, alpha, beta, &nodes)
}

func search(board *entity.Board, depth int, maximizing bool, alpha, beta float64, nodes *uint64) float64 {
	*nodes++

	winner := board.CheckWinner()

	// A line completed exactly at the cap is scored as a draw.
	if depth >= MaxDepth {
		return 0
	}

	switch winner {
	case maximizer:
		return float64(WinScore - depth)
	case minimizer:
		return -float64(WinScore - depth)
	}

	if !board.HasEmptyCell() {
		return 0
	}

	if maximizing {
		best := float64(NegInf)
		for i := range board {
			if board[i] != entity.Empty {
				continue
			}

			board[i] = maximizer
			best = max(best, search(board, depth+1, false, alpha, beta, nodes))
			board[i] = entity.Empty

			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := float64(PosInf)
	for i := range board {
		if board[i] != entity.Empty {
			continue
		}

		board[i] = minimizer
		best = min(best, search(board, depth+1, true, alpha, beta, nodes))
		board[i] = entity.Empty

		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}

	return best
}

type Engine struct {
	logger *slog.Logger
	rng    *rand.Rand

	secondBestChance float64
}

func NewEngine(logger *slog.Logger, rng *rand.Rand, secondBestChance float64) *Engine {
	return &Engine{
		logger:           logger.With("component", "minimax"),
		rng:              rng,
		secondBestChance: secondBestChance,
	}
}

// Analyze tries O on every empty cell and keeps the best and second best
// scores. Ties keep the first cell seen.
func (that *Engine) Analyze(board entity.Board) SearchResult {
	result := SearchResult{
		Best:            noMove,
		BestScore:       NegInf,
		SecondBest:      noMove,
		SecondBestScore: NegInf,
	}

	for i := range board {
		if board[i] != entity.Empty {
			continue
		}

		board[i] = maximizer
		score := search(&board, 0, false, NegInf, PosInf, &result.Nodes)
		board[i] = entity.Empty

		that.logger.Debug("scored cell", "cell", i, "score", score)

		switch {
		case score > result.BestScore:
			if result.BestScore != NegInf {
				result.SecondBest, result.SecondBestScore = result.Best, result.BestScore
			}
			result.Best, result.BestScore = i, score
		case score > result.SecondBestScore:
			result.SecondBest, result.SecondBestScore = i, score
		}
	}

	return result
}

// NextMove picks the cell O should play, occasionally settling for the second best.
func (that *Engine) NextMove(board entity.Board) (int, bool) {
	result := that.Analyze(board)
	if result.Best == noMove {
		return noMove, false
	}

	log := that.logger.With("method", "NextMove")

	selected := result.Best
	if result.SecondBest != noMove && that.rng.Float64() < that.secondBestChance {
		selected = result.SecondBest
		log.Debug("second best move selected", "cell", selected, "score", result.SecondBestScore)
	} else {
		log.Debug("best move selected", "cell", selected, "score", result.BestScore)
	}

	log.Debug("search finished", "nodes", result.Nodes, "best", result.Best, "second_best", result.SecondBest)

	return selected, true
}
