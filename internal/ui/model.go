package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-session-picker/internal/backend"
	"github.com/atomicstack/tmux-session-picker/internal/session"
	"github.com/atomicstack/tmux-session-picker/internal/theme"
	uistate "github.com/atomicstack/tmux-session-picker/internal/ui/state"
)

type Mode int

const (
	ModeList Mode = iota
	ModeCreateForm
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Refresher supplies session snapshots on demand. ForceRefresh is used
// after mutations, where a throttled cached answer would hide the effect.
type Refresher interface {
	Refresh() backend.Snapshot
	ForceRefresh() backend.Snapshot
}

// Actions executes the mutating session operations.
type Actions interface {
	Attach(name string) session.Result
	Create(name, startDir string) session.Result
	Kill(name string) session.Result
}

// FavoriteToggler flips persisted favorite state.
type FavoriteToggler interface {
	ToggleFavorite(name string) bool
}

// Model implements the Bubble Tea model for the session picker.
type Model struct {
	view      *uistate.View
	refresher Refresher
	actions   Actions
	favorites FavoriteToggler

	current  string
	startDir string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	errMsg  string
	infoMsg string

	mode Mode
	form *CreateForm

	queryCursor      cursor.Model
	queryCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// Options carries the presentation knobs NewModel needs.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	StartDir   string
}

// NewModel wires the picker model to its collaborators.
func NewModel(refresher Refresher, actions Actions, favorites FavoriteToggler, opts Options) *Model {
	m := &Model{
		view:       uistate.NewView(),
		refresher:  refresher,
		actions:    actions,
		favorites:  favorites,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		startDir:   opts.StartDir,
		mode:       ModeList,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.FilterText != nil {
		c.TextStyle = styles.FilterText.Copy()
	}
	c.SetChar(" ")
	m.queryCursor = c
	m.registerHandlers()
	return m
}

// Init requests the first snapshot.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.refreshCmd()}
	if cmd := m.queryCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateQueryCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(snapshotMsg{}):       m.handleSnapshotMsg,
		reflect.TypeOf(actionResultMsg{}):   m.handleActionResultMsg,
		reflect.TypeOf(favoriteFlipMsg{}):   m.handleFavoriteFlipMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.mode != ModeCreateForm {
		return false, nil
	}
	return m.handleCreateForm(msg)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.mode != ModeList {
		return nil
	}
	if keyMsg.Type == tea.KeyTab {
		m.toggleFavoritesOnly()
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.attachSelected()
	case "ctrl+f":
		return m.toggleSelectedFavorite()
	case "ctrl+n":
		m.startCreateForm()
	case "ctrl+k", "delete":
		return m.killSelected()
	case "f5", "ctrl+r":
		m.setInfo("Sessions refreshed")
		return m.refreshCmd()
	case "up":
		m.moveCursor(-1)
	case "down":
		m.moveCursor(1)
	case "pgup":
		m.moveCursor(-m.maxVisibleItems())
	case "pgdown":
		m.moveCursor(m.maxVisibleItems())
	case "home":
		m.view.CursorToStart()
		m.syncViewport()
	case "end":
		m.view.CursorToEnd()
		m.syncViewport()
	}
	return nil
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if m.view.Query != "" {
		m.clearQuery()
		return nil
	}
	return tea.Quit
}

func (m *Model) moveCursor(delta int) {
	m.view.MoveCursor(delta)
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.view.ClampViewport(m.maxVisibleItems())
}

func (m *Model) setInfo(text string) {
	m.infoMsg = text
	m.errMsg = ""
}

func (m *Model) setError(text string) {
	m.errMsg = text
	m.infoMsg = ""
}

func (m *Model) clearStatus() {
	m.infoMsg = ""
	m.errMsg = ""
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.queryCursorDirty {
		m.queryCursorDirty = false
		m.queryCursor.Blink = false
		if cmd := m.queryCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
