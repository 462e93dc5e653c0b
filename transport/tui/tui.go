// Package tui renders the session in a terminal and turns keys, mouse clicks
// and frame ticks into session events.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Run blocks until the player quits or ctx is cancelled.
func Run(ctx context.Context, logger *slog.Logger, manager gameManager) error {
	program := tea.NewProgram(newModel(logger, manager),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("terminal ui failed: %w", err)
	}

	return nil
}
