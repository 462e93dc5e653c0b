package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#4204b5ff", Dark: "#8f6df2ff"}).Render
	xStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#007e50ff", Dark: "#6afd76ff"}).Render
	oStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0003adff", Dark: "#5f61fcff"}).Render
	cursorStyle = lipgloss.NewStyle().Reverse(true).Render
	gridStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#8f8f8fff"}).Render
	hintStyle   = lipgloss.NewStyle().Faint(true).Render
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#b55404ff", Dark: "#f0a35cff"}).Render
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8a880fff", Dark: "#ddda1dff"}).Render
)

func (m *model) View() string {
	var b strings.Builder

	// title and a blank line; the board layout in input.go depends on this
	b.WriteString(titleStyle("Tic Tac Toe") + "\n\n")

	switch m.session.Mode {
	case entity.ModeHome:
		b.WriteString("1) Two players\n")
		b.WriteString("2) One player\n\n")
		b.WriteString(hintStyle("q to quit"))
	case entity.ModeDifficultySelection:
		b.WriteString("Choose a difficulty\n\n")
		b.WriteString("1) Normal\n")
		b.WriteString("2) Impossible\n\n")
		b.WriteString(hintStyle("esc for menu"))
	case entity.ModeTwoPlayer, entity.ModeOnePlayer:
		m.viewGame(&b)
	}

	return b.String()
}

func (m *model) viewGame(b *strings.Builder) {
	session := m.session

	b.WriteString(m.status() + "\n\n")

	for row := 0; row < boardSide; row++ {
		if row > 0 {
			b.WriteString(strings.Repeat(" ", boardLeft) + gridStyle("───┼───┼───") + "\n")
		}

		b.WriteString(strings.Repeat(" ", boardLeft))
		for col := 0; col < boardSide; col++ {
			if col > 0 {
				b.WriteString(gridStyle("│"))
			}

			cell := row*boardSide + col
			text := " " + markStyle(session.Board[cell]) + " "
			if cell == m.cursor && !session.GameOver {
				text = cursorStyle(" " + session.Board[cell].String() + " ")
			}
			b.WriteString(text)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if session.GameOver && session.WithAI() {
		stats := m.manager.Stats()
		b.WriteString(statStyle(fmt.Sprintf("AI wins: %d of %d games (%.1f%%)", stats.AIWins, stats.TotalGames, stats.WinPercentage())) + "\n\n")
	}

	if session.GameOver {
		b.WriteString(hintStyle("space to play again, esc for menu, q to quit"))
	} else {
		b.WriteString(hintStyle("1-9, arrows + enter or click to play, esc for menu"))
	}
}

func (m *model) status() string {
	session := m.session

	if !session.GameOver {
		status := "Turn: " + markStyle(session.CurrentPlayer)
		if session.WithAI() {
			status += hintStyle(" (" + session.Difficulty.String() + ")")
		}
		if session.AIThinking {
			status += " thinking " + m.spinner.View()
		}

		return status
	}

	switch {
	case session.Winner == entity.Tie:
		return resultStyle("It's a tie!")
	case session.WithAI() && session.Winner == entity.AIPlayer:
		return resultStyle("You lose!")
	case session.WithAI():
		return resultStyle("You win!")
	default:
		return resultStyle(session.Winner.String() + " wins!")
	}
}

func markStyle(cell entity.Cell) string {
	switch cell {
	case entity.X:
		return xStyle(cell.String())
	case entity.O:
		return oStyle(cell.String())
	default:
		return " "
	}
}
