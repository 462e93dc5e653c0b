package tui

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// Board geometry on screen. Cells are three columns wide with a one column
// separator; rows are separated by a rule line.
const (
	boardTop  = 4
	boardLeft = 2

	cellWidth  = 3
	cellStride = cellWidth + 1
	rowStride  = 2
	boardSide  = 3
)

// CellAt maps a terminal position to a board cell, or -1 when the position is
// outside the grid or on a separator.
func CellAt(x, y int) int {
	relX, relY := x-boardLeft, y-boardTop
	if relX < 0 || relY < 0 {
		return -1
	}

	if relX%cellStride == cellWidth || relY%rowStride != 0 {
		return -1
	}

	col, row := relX/cellStride, relY/rowStride
	if col >= boardSide || row >= boardSide {
		return -1
	}

	return row*boardSide + col
}

var menuKeys = map[entity.Mode]map[string]usecase.Event{
	entity.ModeHome: {
		"1": {Kind: usecase.EventTwoPlayer},
		"t": {Kind: usecase.EventTwoPlayer},
		"2": {Kind: usecase.EventOnePlayer},
		"o": {Kind: usecase.EventOnePlayer},
	},
	entity.ModeDifficultySelection: {
		"1":   usecase.DifficultyEvent(entity.DifficultyNormal),
		"n":   usecase.DifficultyEvent(entity.DifficultyNormal),
		"2":   usecase.DifficultyEvent(entity.DifficultyImpossible),
		"i":   usecase.DifficultyEvent(entity.DifficultyImpossible),
		"esc": {Kind: usecase.EventMenu},
		"m":   {Kind: usecase.EventMenu},
	},
}

var playKeys = map[string]usecase.Event{
	" ":     {Kind: usecase.EventPlayAgain},
	"space": {Kind: usecase.EventPlayAgain},
	"esc":   {Kind: usecase.EventMenu},
	"m":     {Kind: usecase.EventMenu},
}

// keyEvent translates a key press into a session event for the given mode.
// Digits 1-9 pick cells left to right, top to bottom while playing.
func keyEvent(mode entity.Mode, key string) (usecase.Event, bool) {
	if !mode.IsPlaying() {
		event, ok := menuKeys[mode][key]
		return event, ok
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return usecase.CellEvent(int(key[0] - '1')), true
	}

	event, ok := playKeys[key]

	return event, ok
}

// moveCursor steps the cursor on the 3x3 grid and stops at the edges.
func moveCursor(cursor int, key string) int {
	row, col := cursor/boardSide, cursor%boardSide

	switch key {
	case "up", "k":
		row = max(row-1, 0)
	case "down", "j":
		row = min(row+1, boardSide-1)
	case "left", "h":
		col = max(col-1, 0)
	case "right", "l":
		col = min(col+1, boardSide-1)
	}

	return row*boardSide + col
}
