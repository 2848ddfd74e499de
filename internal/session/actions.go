package session

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/tmux-session-picker/internal/handoff"
	"github.com/atomicstack/tmux-session-picker/internal/logging/events"
	"github.com/atomicstack/tmux-session-picker/internal/tmux"
)

var (
	writeHandoff = handoff.Write

	dirExists = func(path string) bool {
		info, err := os.Stat(path)
		return err == nil && info.IsDir()
	}
)

// Result is the uniform outcome of a mutating session operation. Message
// carries either a confirmation or the external command's failure text.
type Result struct {
	OK      bool
	Message string
}

func okf(format string, args ...interface{}) Result {
	return Result{OK: true, Message: fmt.Sprintf(format, args...)}
}

func failf(format string, args ...interface{}) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

// Manager executes attach, create, and kill against tmux. All failures are
// converted to Result values at this boundary; nothing escapes as an error.
type Manager struct {
	socketPath  string
	nested      bool
	current     string
	handoffPath string
}

// NewManager captures the environment an action run needs: the socket, the
// nesting state probed at startup, the current session name when nested,
// and the hand-off file location.
func NewManager(socketPath string, nested bool, current, handoffPath string) *Manager {
	return &Manager{
		socketPath:  socketPath,
		nested:      nested,
		current:     current,
		handoffPath: handoffPath,
	}
}

// Attach switches the client when running nested inside tmux. Outside tmux
// it verifies the session exists and records the choice in the hand-off
// file; the wrapper performs the actual attach once this process exits.
func (m *Manager) Attach(name string) Result {
	events.Session.Attach(name, m.nested)
	if m.nested {
		if err := switchClient(m.socketPath, name); err != nil {
			return failf("Failed to switch to %s: %s", name, tmux.ErrorText(err))
		}
		return okf("Switched to %s", name)
	}
	if !hasSession(m.socketPath, name) {
		return failf("Session %s does not exist", name)
	}
	if err := writeHandoff(m.handoffPath, name); err != nil {
		return failf("Failed to record attach target: %v", err)
	}
	return okf("Attaching to %s", name)
}

// Create makes a new detached session after checking the name is free.
// The start directory is passed along only when it exists; anything
// further is tmux's problem.
func (m *Manager) Create(name, startDir string) Result {
	if msg := ValidateName(name); msg != "" {
		return failf("%s", msg)
	}
	if hasSession(m.socketPath, name) {
		return failf("Session %s already exists", name)
	}
	dir := strings.TrimSpace(startDir)
	if dir != "" && !dirExists(dir) {
		dir = ""
	}
	events.Session.Create(name, dir)
	if err := newSession(m.socketPath, name, dir); err != nil {
		return failf("Failed to create %s: %s", name, tmux.ErrorText(err))
	}
	return okf("Created session %s", name)
}

// Kill refuses to kill the session this process runs in, then delegates.
func (m *Manager) Kill(name string) Result {
	if m.current != "" && name == m.current {
		events.Session.KillRefused(name)
		return failf("Cannot kill the current session")
	}
	events.Session.Kill(name)
	if err := killSession(m.socketPath, name); err != nil {
		return failf("Failed to kill %s: %s", name, tmux.ErrorText(err))
	}
	return okf("Killed %s", name)
}

// ValidateName rejects names the favorites file and the listing format
// cannot represent. Returns an empty string when the name is acceptable.
func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Session name required"
	}
	if strings.ContainsAny(name, "\n|") {
		return "Session name must not contain newlines or pipes"
	}
	return ""
}
