package usecase

import (
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type EventKind int

const (
	EventNone EventKind = iota
	EventCell
	EventTwoPlayer
	EventOnePlayer
	EventDifficulty
	EventPlayAgain
	EventMenu
)

func (that EventKind) String() string {
	switch that {
	case EventNone:
		return "none"
	case EventCell:
		return "cell"
	case EventTwoPlayer:
		return "two-player"
	case EventOnePlayer:
		return "one-player"
	case EventDifficulty:
		return "difficulty"
	case EventPlayAgain:
		return "play-again"
	case EventMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Event is one input intent from the presentation layer. Cell and Difficulty
// are only read for the matching kind.
type Event struct {
	Kind       EventKind
	Cell       int
	Difficulty entity.Difficulty
}

func CellEvent(cell int) Event {
	return Event{Kind: EventCell, Cell: cell}
}

func DifficultyEvent(difficulty entity.Difficulty) Event {
	return Event{Kind: EventDifficulty, Difficulty: difficulty}
}

type turnController interface {
	MakeTurn(session *entity.Session, cell int) bool
	Update(session *entity.Session, elapsed time.Duration)
}

// GameManager owns the session and the stats and moves the session between
// the home screen, difficulty selection and the two play modes.
type GameManager struct {
	logger *slog.Logger

	session    *entity.Session
	stats      *entity.Stats
	controller turnController
}

func NewGameManager(logger *slog.Logger, stats *entity.Stats, controller turnController) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game-manager"),
		session:    entity.NewSession(),
		stats:      stats,
		controller: controller,
	}
}

func (that *GameManager) Session() *entity.Session {
	return that.session
}

func (that *GameManager) Stats() entity.Stats {
	return *that.stats
}

// Tick handles at most one input event and then advances the AI by elapsed.
func (that *GameManager) Tick(elapsed time.Duration, event Event) *entity.Session {
	switch that.session.Mode {
	case entity.ModeHome:
		that.handleHome(event)
	case entity.ModeDifficultySelection:
		that.handleDifficultySelection(event)
	case entity.ModeTwoPlayer, entity.ModeOnePlayer:
		that.handlePlay(elapsed, event)
	}

	return that.session
}

func (that *GameManager) handleHome(event Event) {
	switch event.Kind {
	case EventTwoPlayer:
		that.startGame(entity.ModeTwoPlayer)
	case EventOnePlayer:
		that.switchMode(entity.ModeDifficultySelection)
	default:
	}
}

func (that *GameManager) handleDifficultySelection(event Event) {
	switch event.Kind {
	case EventDifficulty:
		that.session.Difficulty = event.Difficulty
		that.startGame(entity.ModeOnePlayer)
	case EventMenu:
		that.switchMode(entity.ModeHome)
	default:
	}
}

func (that *GameManager) handlePlay(elapsed time.Duration, event Event) {
	switch event.Kind {
	case EventMenu:
		that.session.Reset()
		that.switchMode(entity.ModeHome)

		return
	case EventPlayAgain:
		if that.session.GameOver {
			that.startGame(that.session.Mode)

			return
		}
	case EventCell:
		// the AI answers from the next tick on
		if that.controller.MakeTurn(that.session, event.Cell) {
			return
		}
	default:
	}

	that.controller.Update(that.session, elapsed)
}

func (that *GameManager) startGame(mode entity.Mode) {
	that.session.Reset()
	that.switchMode(mode)

	that.logger.Info("game started", "mode", mode.String(), "difficulty", that.session.Difficulty.String())
}

func (that *GameManager) switchMode(mode entity.Mode) {
	if that.session.Mode != mode {
		that.logger.Debug("mode changed", "from", that.session.Mode.String(), "to", mode.String())
	}

	that.session.Mode = mode
}
