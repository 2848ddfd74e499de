package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-session-picker/internal/backend"
	"github.com/atomicstack/tmux-session-picker/internal/logging/events"
	"github.com/atomicstack/tmux-session-picker/internal/session"
)

// snapshotMsg carries a fresh backend snapshot into the model.
type snapshotMsg struct {
	snapshot backend.Snapshot
}

// actionResultMsg carries the outcome of a mutating session operation.
// quitOnSuccess ends the program (attach); refresh re-polls the listing
// (create, kill).
type actionResultMsg struct {
	result        session.Result
	quitOnSuccess bool
	refresh       bool
}

// favoriteFlipMsg reports a persisted favorite toggle.
type favoriteFlipMsg struct {
	name     string
	favorite bool
}

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{snapshot: m.refresher.Refresh()}
	}
}

func (m *Model) forceRefreshCmd() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{snapshot: m.refresher.ForceRefresh()}
	}
}

func (m *Model) attachSelected() tea.Cmd {
	rec, ok := m.view.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return actionResultMsg{result: m.actions.Attach(rec.Name), quitOnSuccess: true}
	}
}

func (m *Model) killSelected() tea.Cmd {
	rec, ok := m.view.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return actionResultMsg{result: m.actions.Kill(rec.Name), refresh: true}
	}
}

func (m *Model) createSession(name, startDir string) tea.Cmd {
	return func() tea.Msg {
		return actionResultMsg{result: m.actions.Create(name, startDir), refresh: true}
	}
}

func (m *Model) toggleSelectedFavorite() tea.Cmd {
	rec, ok := m.view.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return favoriteFlipMsg{name: rec.Name, favorite: m.favorites.ToggleFavorite(rec.Name)}
	}
}

func (m *Model) toggleFavoritesOnly() {
	on := m.view.ToggleFavoritesOnly()
	events.Filter.FavoritesOnly(on, len(m.view.Filtered()))
	if on {
		m.setInfo("Favorites filter: on")
	} else {
		m.setInfo("Favorites filter: off")
	}
	m.syncViewport()
}

func (m *Model) handleSnapshotMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(snapshotMsg)
	if !ok {
		return nil
	}
	m.current = update.snapshot.Current
	m.view.SetSessions(update.snapshot.Records)
	m.syncViewport()
	return nil
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	outcome, ok := msg.(actionResultMsg)
	if !ok {
		return nil
	}
	result := outcome.result
	if !result.OK {
		m.setError(result.Message)
		events.Action.Error(result.Message)
		return nil
	}
	events.Action.Success(result.Message)
	if outcome.quitOnSuccess {
		return tea.Quit
	}
	// Success chatter is opt-in; failures always surface.
	if m.verbose {
		m.setInfo(result.Message)
	} else {
		m.clearStatus()
	}
	if outcome.refresh {
		return m.forceRefreshCmd()
	}
	return nil
}

func (m *Model) handleFavoriteFlipMsg(msg tea.Msg) tea.Cmd {
	flip, ok := msg.(favoriteFlipMsg)
	if !ok {
		return nil
	}
	m.view.SetFavorite(flip.name, flip.favorite)
	m.syncViewport()
	if flip.favorite {
		m.setInfo(fmt.Sprintf("Added to favorites: %s", flip.name))
	} else {
		m.setInfo(fmt.Sprintf("Removed from favorites: %s", flip.name))
	}
	return nil
}
