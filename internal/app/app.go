// Package app wires the picker together: startup checks, socket and path
// resolution, collaborator construction, and the Bubble Tea run loop.
package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-session-picker/internal/backend"
	"github.com/atomicstack/tmux-session-picker/internal/favorites"
	"github.com/atomicstack/tmux-session-picker/internal/handoff"
	"github.com/atomicstack/tmux-session-picker/internal/logging/events"
	"github.com/atomicstack/tmux-session-picker/internal/session"
	"github.com/atomicstack/tmux-session-picker/internal/tmux"
	"github.com/atomicstack/tmux-session-picker/internal/ui"
)

// refreshThrottle bounds how often rapid refresh keypresses hit tmux.
const refreshThrottle = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	SocketPath    string
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	FavoritesPath string
	HandoffPath   string
	StartDir      string
}

// Run bootstraps and executes the Bubble Tea program. A missing tmux
// binary is the one fatal startup condition; everything after that
// degrades into status messages.
func Run(cfg Config) error {
	if err := tmux.Available(); err != nil {
		events.App.FatalStartup(err.Error())
		return err
	}
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}

	// A stale hand-off target from a previous run must not be mistaken
	// for this run's choice.
	if cfg.HandoffPath != "" {
		if err := handoff.Clear(cfg.HandoffPath); err != nil {
			return fmt.Errorf("clear hand-off file: %w", err)
		}
	}

	nested := tmux.InsideSession()
	current := tmux.CurrentSessionName(socketPath)

	store := favorites.NewStore(cfg.FavoritesPath)
	repo := session.NewRepository(socketPath, store)
	refresher := backend.NewRefresher(socketPath, repo, refreshThrottle)
	manager := session.NewManager(socketPath, nested, current, cfg.HandoffPath)

	model := ui.NewModel(refresher, manager, repo, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		StartDir:   cfg.StartDir,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}

	chosen := ""
	if cfg.HandoffPath != "" {
		if name, readErr := handoff.Read(cfg.HandoffPath); readErr == nil {
			chosen = name
		}
	}
	events.App.Exit(chosen)
	return err
}
