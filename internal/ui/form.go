package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-session-picker/internal/session"
)

// CreateForm collects a new session name and an optional start directory.
// Duplicate names are flagged live against the listing snapshot the form
// was opened with.
type CreateForm struct {
	name     textinput.Model
	dir      textinput.Model
	existing map[string]struct{}
	err      string
	onDir    bool
}

// NewCreateForm builds the form, seeding the duplicate check from the
// current session names and the directory field from the configured
// default.
func NewCreateForm(existingNames []string, defaultDir string) *CreateForm {
	name := textinput.New()
	name.Placeholder = "session-name"
	name.CharLimit = 64
	name.Focus()

	dir := textinput.New()
	dir.Placeholder = "start directory (optional)"
	dir.CharLimit = 256
	if defaultDir != "" {
		dir.SetValue(defaultDir)
	}

	existing := make(map[string]struct{}, len(existingNames))
	for _, n := range existingNames {
		trim := strings.ToLower(strings.TrimSpace(n))
		if trim == "" {
			continue
		}
		existing[trim] = struct{}{}
	}
	f := &CreateForm{name: name, dir: dir, existing: existing}
	f.err = f.validate()
	return f
}

func (f *CreateForm) Name() string     { return strings.TrimSpace(f.name.Value()) }
func (f *CreateForm) Dir() string      { return strings.TrimSpace(f.dir.Value()) }
func (f *CreateForm) Error() string    { return f.err }
func (f *CreateForm) NameView() string { return f.name.View() }
func (f *CreateForm) DirView() string  { return f.dir.View() }

// Update advances the form. The bool results are (done, cancel).
func (f *CreateForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+u":
			focused := f.focused()
			if focused.Value() != "" {
				focused.SetValue("")
				focused.CursorStart()
				f.err = f.validate()
			}
			return nil, false, false
		}
		switch keyMsg.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			f.switchField()
			return nil, false, false
		case tea.KeyEnter:
			if err := f.validate(); err != "" {
				f.err = err
				return nil, false, false
			}
			f.err = ""
			return nil, true, false
		}
	}
	focused := f.focused()
	updated, cmd := focused.Update(msg)
	*focused = updated
	f.err = f.validate()
	return cmd, false, false
}

func (f *CreateForm) focused() *textinput.Model {
	if f.onDir {
		return &f.dir
	}
	return &f.name
}

func (f *CreateForm) switchField() {
	f.onDir = !f.onDir
	if f.onDir {
		f.name.Blur()
		f.dir.Focus()
	} else {
		f.dir.Blur()
		f.name.Focus()
	}
}

func (f *CreateForm) validate() string {
	name := f.Name()
	if msg := session.ValidateName(name); msg != "" {
		return msg
	}
	if _, exists := f.existing[strings.ToLower(name)]; exists {
		return "Session already exists"
	}
	return ""
}

func (m *Model) startCreateForm() {
	names := make([]string, 0)
	for _, rec := range m.view.Sessions() {
		names = append(names, rec.Name)
	}
	m.form = NewCreateForm(names, m.startDir)
	m.mode = ModeCreateForm
	m.clearStatus()
}

func (m *Model) handleCreateForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.form == nil {
		m.mode = ModeList
		return false, nil
	}
	cmd, done, cancel := m.form.Update(msg)
	if cancel {
		m.form = nil
		m.mode = ModeList
		return true, cmd
	}
	if done {
		name := m.form.Name()
		dir := m.form.Dir()
		m.form = nil
		m.mode = ModeList
		return true, m.createSession(name, dir)
	}
	return true, cmd
}
