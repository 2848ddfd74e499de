package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-session-picker/internal/backend"
	"github.com/atomicstack/tmux-session-picker/internal/session"
)

type fakeRefresher struct {
	snapshot backend.Snapshot
	calls    int
	forced   int
}

func (f *fakeRefresher) Refresh() backend.Snapshot {
	f.calls++
	return f.snapshot
}

func (f *fakeRefresher) ForceRefresh() backend.Snapshot {
	f.calls++
	f.forced++
	return f.snapshot
}

type fakeActions struct {
	attachResult session.Result
	createResult session.Result
	killResult   session.Result
	attached     []string
	created      [][2]string
	killed       []string
}

func (f *fakeActions) Attach(name string) session.Result {
	f.attached = append(f.attached, name)
	return f.attachResult
}

func (f *fakeActions) Create(name, dir string) session.Result {
	f.created = append(f.created, [2]string{name, dir})
	return f.createResult
}

func (f *fakeActions) Kill(name string) session.Result {
	f.killed = append(f.killed, name)
	return f.killResult
}

type fakeFavorites struct {
	state map[string]bool
}

func (f *fakeFavorites) ToggleFavorite(name string) bool {
	if f.state == nil {
		f.state = map[string]bool{}
	}
	f.state[name] = !f.state[name]
	return f.state[name]
}

// collect runs a command tree and gathers the produced messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, sub := range batch {
			msgs = append(msgs, collect(sub)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// deliver feeds picker-domain messages back into the model, the way the
// Bubble Tea runtime would, and reports whether a quit was requested.
func deliver(t *testing.T, m *Model, cmd tea.Cmd) bool {
	t.Helper()
	quit := false
	for _, msg := range collect(cmd) {
		switch msg.(type) {
		case tea.QuitMsg:
			quit = true
		case snapshotMsg, actionResultMsg, favoriteFlipMsg:
			_, next := m.Update(msg)
			if deliver(t, m, next) {
				quit = true
			}
		}
	}
	return quit
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m *Model, keys ...string) bool {
	t.Helper()
	quit := false
	for _, k := range keys {
		_, cmd := m.Update(key(k))
		if deliver(t, m, cmd) {
			quit = true
		}
	}
	return quit
}

func newTestModel(t *testing.T, records []session.Record, current string) (*Model, *fakeRefresher, *fakeActions, *fakeFavorites) {
	t.Helper()
	refresher := &fakeRefresher{snapshot: backend.Snapshot{Records: records, Current: current}}
	actions := &fakeActions{
		attachResult: session.Result{OK: true, Message: "Switched to x"},
		createResult: session.Result{OK: true, Message: "Created session x"},
		killResult:   session.Result{OK: true, Message: "Killed x"},
	}
	favorites := &fakeFavorites{}
	m := NewModel(refresher, actions, favorites, Options{ShowFooter: true})
	deliver(t, m, m.Init())
	return m, refresher, actions, favorites
}

func testRecords() []session.Record {
	return []session.Record{
		{Name: "work", Attached: true, Created: "01/15 09:30", Windows: 3, WindowPreview: "vim"},
		{Name: "scratch", Created: "01/16 11:00", Windows: 1, WindowPreview: "zsh"},
		{Name: "workbench", Created: "01/17 08:00", Windows: 2, Favorite: true},
	}
}

func TestInitialViewListsSessions(t *testing.T) {
	m, refresher, _, _ := newTestModel(t, testRecords(), "work")
	if refresher.calls != 1 {
		t.Fatalf("expected one initial refresh, got %d", refresher.calls)
	}
	view := m.View()
	for _, name := range []string{"work", "scratch", "workbench"} {
		if !strings.Contains(view, name) {
			t.Fatalf("expected %s in view:\n%s", name, view)
		}
	}
	if !strings.Contains(view, "(current)") {
		t.Fatalf("expected current marker in view:\n%s", view)
	}
	if !strings.Contains(view, "★") {
		t.Fatalf("expected favorite star in view:\n%s", view)
	}
	if !strings.Contains(view, "●") {
		t.Fatalf("expected attached marker in view:\n%s", view)
	}
}

func TestTypingFiltersListing(t *testing.T) {
	m, _, _, _ := newTestModel(t, testRecords(), "")
	press(t, m, "scra")
	view := m.View()
	if !strings.Contains(view, "scratch") {
		t.Fatalf("expected scratch visible:\n%s", view)
	}
	if strings.Contains(view, "workbench") {
		t.Fatalf("expected workbench filtered out:\n%s", view)
	}
}

func TestEscClearsQueryBeforeQuitting(t *testing.T) {
	m, _, _, _ := newTestModel(t, testRecords(), "")
	press(t, m, "scra")
	if quit := press(t, m, "esc"); quit {
		t.Fatal("first esc should clear the query, not quit")
	}
	if m.view.Query != "" {
		t.Fatalf("expected query cleared, got %q", m.view.Query)
	}
	if quit := press(t, m, "esc"); !quit {
		t.Fatal("second esc should quit")
	}
}

func TestTabTogglesFavoritesOnly(t *testing.T) {
	m, _, _, _ := newTestModel(t, testRecords(), "")
	press(t, m, "tab")
	view := m.View()
	if !strings.Contains(view, "[favorites]") || !strings.Contains(view, "Favorites filter: on") {
		t.Fatalf("expected favorites filter on:\n%s", view)
	}
	if strings.Contains(view, "scratch") {
		t.Fatalf("expected non-favorites hidden:\n%s", view)
	}
	press(t, m, "tab")
	if !strings.Contains(m.View(), "Favorites filter: off") {
		t.Fatal("expected favorites filter off message")
	}
}

func TestEnterAttachesSelectionAndQuits(t *testing.T) {
	m, _, actions, _ := newTestModel(t, testRecords(), "")
	press(t, m, "down")
	if quit := press(t, m, "enter"); !quit {
		t.Fatal("expected quit after successful attach")
	}
	if len(actions.attached) != 1 || actions.attached[0] != "scratch" {
		t.Fatalf("unexpected attach targets %v", actions.attached)
	}
}

func TestFailedAttachShowsError(t *testing.T) {
	m, _, actions, _ := newTestModel(t, testRecords(), "")
	actions.attachResult = session.Result{Message: "Session work does not exist"}
	if quit := press(t, m, "enter"); quit {
		t.Fatal("expected no quit on failed attach")
	}
	if !strings.Contains(m.View(), "does not exist") {
		t.Fatalf("expected failure text in view:\n%s", m.View())
	}
}

func TestKillRefreshesListing(t *testing.T) {
	m, refresher, actions, _ := newTestModel(t, testRecords(), "")
	press(t, m, "ctrl+k")
	if len(actions.killed) != 1 || actions.killed[0] != "work" {
		t.Fatalf("unexpected kill targets %v", actions.killed)
	}
	if refresher.calls != 2 || refresher.forced != 1 {
		t.Fatalf("expected a forced refresh after kill, got %d calls (%d forced)", refresher.calls, refresher.forced)
	}
}

func TestFavoriteToggleUpdatesInPlace(t *testing.T) {
	m, refresher, _, favorites := newTestModel(t, testRecords(), "")
	press(t, m, "ctrl+f")
	if !favorites.state["work"] {
		t.Fatal("expected work toggled on")
	}
	if refresher.calls != 1 {
		t.Fatalf("expected no re-poll on favorite toggle, got %d calls", refresher.calls)
	}
	view := m.View()
	if !strings.Contains(view, "Added to favorites: work") {
		t.Fatalf("expected status message:\n%s", view)
	}
	press(t, m, "ctrl+f")
	if !strings.Contains(m.View(), "Removed from favorites: work") {
		t.Fatal("expected removal status message")
	}
}

func TestCreateFormFlow(t *testing.T) {
	m, refresher, actions, _ := newTestModel(t, testRecords(), "")
	press(t, m, "ctrl+n")
	if m.mode != ModeCreateForm {
		t.Fatal("expected create form mode")
	}
	// A duplicate name is flagged live and blocks submission.
	press(t, m, "work", "enter")
	if m.mode != ModeCreateForm {
		t.Fatal("expected duplicate name to keep the form open")
	}
	if !strings.Contains(m.View(), "Session already exists") {
		t.Fatalf("expected duplicate warning:\n%s", m.View())
	}
	press(t, m, "ctrl+u", "fresh", "enter")
	if m.mode != ModeList {
		t.Fatal("expected return to list after create")
	}
	if len(actions.created) != 1 || actions.created[0][0] != "fresh" {
		t.Fatalf("unexpected create calls %v", actions.created)
	}
	if refresher.calls != 2 || refresher.forced != 1 {
		t.Fatalf("expected a forced refresh after create, got %d calls (%d forced)", refresher.calls, refresher.forced)
	}
}

func TestCreateFormEscCancels(t *testing.T) {
	m, _, actions, _ := newTestModel(t, testRecords(), "")
	press(t, m, "ctrl+n", "name", "esc")
	if m.mode != ModeList {
		t.Fatal("expected esc to cancel the form")
	}
	if len(actions.created) != 0 {
		t.Fatalf("expected no create, got %v", actions.created)
	}
}

func TestVerboseGatesActionSuccessMessages(t *testing.T) {
	m, _, _, _ := newTestModel(t, testRecords(), "")
	press(t, m, "ctrl+k")
	if strings.Contains(m.View(), "Killed") {
		t.Fatalf("expected success message suppressed without verbose:\n%s", m.View())
	}

	refresher := &fakeRefresher{snapshot: backend.Snapshot{Records: testRecords()}}
	actions := &fakeActions{killResult: session.Result{OK: true, Message: "Killed work"}}
	verbose := NewModel(refresher, actions, &fakeFavorites{}, Options{Verbose: true})
	deliver(t, verbose, verbose.Init())
	press(t, verbose, "ctrl+k")
	if !strings.Contains(verbose.View(), "Killed work") {
		t.Fatalf("expected success message with verbose:\n%s", verbose.View())
	}
}

func TestSelfKillGuardMessageSurfaces(t *testing.T) {
	m, _, actions, _ := newTestModel(t, testRecords(), "work")
	actions.killResult = session.Result{Message: "Cannot kill the current session"}
	press(t, m, "ctrl+k")
	if !strings.Contains(m.View(), "Cannot kill the current session") {
		t.Fatalf("expected guard message:\n%s", m.View())
	}
}
