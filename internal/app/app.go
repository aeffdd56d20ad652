package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kls/internal/backend"
	"kls/internal/kubectl"
	"kls/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	KubectlBin string
	Refresh    time.Duration
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	client := kubectl.New(cfg.KubectlBin)
	watcher := backend.NewWatcher(client, cfg.Refresh)
	defer watcher.Stop()
	model := ui.NewModel(client, watcher, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
