package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bytesleuth/bytesleuth/internal/types"
)

// Run starts the interactive results browser and blocks until the user quits.
func Run(files []types.FileMatches, readFile func(path string) ([]byte, error)) error {
	m := NewModel(files, readFile)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
