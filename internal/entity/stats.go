package entity

// Stats holds cumulative results for the lifetime of the game manager.
type Stats struct {
	AIWins     int `json:"ai_wins"`
	TotalGames int `json:"total_games"`
}

// Record counts one finished game. AI wins only count in games the AI played.
func (that *Stats) Record(winner Cell, withAI bool) {
	if withAI && winner == AIPlayer {
		that.AIWins++
	}
	that.TotalGames++
}

func (that Stats) WinPercentage() float64 {
	if that.TotalGames == 0 {
		return 0
	}

	return float64(that.AIWins) / float64(that.TotalGames) * 100
}
