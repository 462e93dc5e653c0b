package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Strategy proposes a cell for the AI mark. The board is a copy.
type Strategy interface {
	NextMove(board entity.Board) (int, bool)
}

type BotService interface {
	MakeTurn(difficulty entity.Difficulty, board entity.Board) (int, error)
}

type botService struct {
	logger     *slog.Logger
	strategies map[entity.Difficulty]Strategy
}

func NewBotService(logger *slog.Logger, strategies map[entity.Difficulty]Strategy) BotService {
	return &botService{
		logger:     logger.With("component", "bot"),
		strategies: strategies,
	}
}

func (that *botService) MakeTurn(difficulty entity.Difficulty, board entity.Board) (int, error) {
	strategy, ok := that.strategies[difficulty]
	if !ok {
		return -1, fmt.Errorf("%w: %s", apperror.ErrUnknownStrategy, difficulty)
	}

	cell, ok := strategy.NextMove(board)
	if !ok {
		return -1, apperror.ErrNoAvailableMoves
	}

	if cell < 0 || cell >= entity.CellCount || board[cell] != entity.Empty {
		return -1, fmt.Errorf("%w: strategy proposed cell %d", apperror.ErrNoAvailableMoves, cell)
	}

	that.logger.Debug("bot chose a move", "difficulty", difficulty.String(), "cell", cell)

	return cell, nil
}
