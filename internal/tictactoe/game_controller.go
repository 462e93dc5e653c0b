package tictactoe

import (
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

// DefaultAIDelay is how long the AI "thinks" before it moves.
const DefaultAIDelay = 500 * time.Millisecond

// GameController sequences turns inside a play mode: it validates and applies
// human moves, paces and applies AI moves, and settles the result.
type GameController struct {
	logger *slog.Logger

	bot     service.BotService
	stats   *entity.Stats
	aiDelay time.Duration
}

func NewGameController(logger *slog.Logger, bot service.BotService, stats *entity.Stats, aiDelay time.Duration) *GameController {
	return &GameController{
		logger:  logger.With("component", "game-controller"),
		bot:     bot,
		stats:   stats,
		aiDelay: aiDelay,
	}
}

// MakeTurn applies a human move for the player whose turn it is. Invalid moves
// and moves made while the AI is to play are dropped; the result says whether
// the board changed.
func (that *GameController) MakeTurn(session *entity.Session, cell int) bool {
	if !session.Mode.IsPlaying() || session.GameOver {
		return false
	}

	if session.IsAITurn() {
		return false
	}

	if !session.Board.ApplyMove(cell, session.CurrentPlayer) {
		return false
	}

	that.logger.Debug("human move", "mode", session.Mode.String(), "player", session.CurrentPlayer.String(), "cell", cell)

	that.updateGameStatus(session)

	return true
}

// Update advances the AI side of the turn by one frame. The first frame of an AI
// turn starts the delay timer; the move is made on the frame the timer runs out.
func (that *GameController) Update(session *entity.Session, elapsed time.Duration) {
	if !session.IsAITurn() {
		return
	}

	if !session.AIThinking {
		session.AITimer.Start(that.aiDelay)
		session.AIThinking = true
	}

	session.AITimer.Update(elapsed)
	if !session.AITimer.Done() {
		return
	}

	session.AIThinking = false
	log := that.logger.With("method", "Update", "difficulty", session.Difficulty.String())

	cell, err := that.bot.MakeTurn(session.Difficulty, session.Board)
	if err != nil {
		// the turn still passes back to the human
		log.Info("bot skipped its turn", "error", err)
		session.CurrentPlayer = entity.Opponent(entity.AIPlayer)

		return
	}

	session.Board.ApplyMove(cell, entity.AIPlayer)
	log.Debug("bot move", "cell", cell)

	that.updateGameStatus(session)
}

// updateGameStatus checks the board after a move and either ends the game or
// passes the turn.
func (that *GameController) updateGameStatus(session *entity.Session) {
	switch winner := session.Board.CheckWinner(); winner {
	case entity.X, entity.O, entity.Tie:
		session.Finish(winner)
		that.recordStats(session)
	default:
		session.CurrentPlayer = entity.Opponent(session.CurrentPlayer)
	}
}

func (that *GameController) recordStats(session *entity.Session) {
	if session.StatsRecorded {
		return
	}

	that.stats.Record(session.Winner, session.WithAI())
	session.StatsRecorded = true

	that.logger.Info("game finished",
		"mode", session.Mode.String(),
		"winner", session.Winner.String(),
		"ai_wins", that.stats.AIWins,
		"total_games", that.stats.TotalGames,
	)
}
