package entity

type Mode int

const (
	ModeHome Mode = iota
	ModeTwoPlayer
	ModeDifficultySelection
	ModeOnePlayer
)

func (that Mode) String() string {
	switch that {
	case ModeHome:
		return "home"
	case ModeTwoPlayer:
		return "two-player"
	case ModeDifficultySelection:
		return "difficulty-selection"
	case ModeOnePlayer:
		return "one-player"
	default:
		return "unknown"
	}
}

// IsPlaying reports whether the mode has a board in play.
func (that Mode) IsPlaying() bool {
	return that == ModeTwoPlayer || that == ModeOnePlayer
}

type Difficulty int

const (
	DifficultyNormal Difficulty = iota
	DifficultyImpossible
)

func (that Difficulty) String() string {
	switch that {
	case DifficultyNormal:
		return "normal"
	case DifficultyImpossible:
		return "impossible"
	default:
		return "unknown"
	}
}

// AIPlayer is the mark the computer plays in one-player mode.
const AIPlayer = O

type Session struct {
	Mode          Mode
	Difficulty    Difficulty
	Board         Board
	CurrentPlayer Cell
	Winner        Cell
	GameOver      bool

	// AITimer paces the AI move; AIThinking is set while it runs.
	AITimer    Timer
	AIThinking bool

	// StatsRecorded guards the once-per-game stats update.
	StatsRecorded bool
}

func NewSession() *Session {
	return &Session{
		Mode:          ModeHome,
		Difficulty:    DifficultyNormal,
		CurrentPlayer: X,
		Winner:        Empty,
	}
}

// Reset clears everything tied to the current game. Mode and difficulty are kept.
func (that *Session) Reset() {
	that.Board = Board{}
	that.CurrentPlayer = X
	that.Winner = Empty
	that.GameOver = false
	that.AITimer = Timer{}
	that.AIThinking = false
	that.StatsRecorded = false
}

func (that *Session) WithAI() bool {
	return that.Mode == ModeOnePlayer
}

// IsAITurn reports whether the computer is the one to move.
func (that *Session) IsAITurn() bool {
	return that.WithAI() && !that.GameOver && that.CurrentPlayer == AIPlayer
}

// Finish marks the game over with the given result. It is a no-op once the game is over.
func (that *Session) Finish(winner Cell) {
	if that.GameOver {
		return
	}

	that.Winner = winner
	that.GameOver = true
	that.AIThinking = false
}
