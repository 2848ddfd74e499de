// Package tmux shells out to the tmux binary. Listing uses a custom
// pipe-delimited format string; mutations are discrete subcommands whose
// stderr is preserved for user-facing messages.
package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
)

// SessionFormat is the -F format handed to list-sessions. Field order is
// relied upon by the session package parser.
const SessionFormat = "#{session_name}|#{session_created}|#{session_windows}|#{session_attached}|#{window_name}"

// runTmux executes the tmux binary. Declared as a variable so tests can
// substitute a fake runner.
var runTmux = func(args ...string) ([]byte, error) {
	return exec.Command("tmux", args...).Output()
}

// Available reports whether the tmux binary can be executed at all.
func Available() error {
	if _, err := runTmux("-V"); err != nil {
		return fmt.Errorf("tmux is not installed or not on PATH: %w", err)
	}
	return nil
}

// InsideSession reports whether the current process runs nested inside tmux.
func InsideSession() bool {
	return os.Getenv("TMUX") != ""
}

// CurrentSessionName returns the name of the session this process runs in,
// or empty when not nested or when the query fails.
func CurrentSessionName(socketPath string) string {
	if !InsideSession() {
		return ""
	}
	out, err := runTmux(append(baseArgs(socketPath), "display-message", "-p", "#{session_name}")...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// ListSessions returns the raw listing output, one session per line in
// SessionFormat order.
func ListSessions(socketPath string) (string, error) {
	out, err := runTmux(append(baseArgs(socketPath), "list-sessions", "-F", SessionFormat)...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// HasSession reports whether a session with the given name exists.
func HasSession(socketPath, name string) bool {
	_, err := runTmux(append(baseArgs(socketPath), "has-session", "-t", name)...)
	return err == nil
}

// NewSession creates a detached session, optionally with a start directory.
func NewSession(socketPath, name, startDir string) error {
	args := append(baseArgs(socketPath), "new-session", "-d", "-s", name)
	if strings.TrimSpace(startDir) != "" {
		args = append(args, "-c", startDir)
	}
	_, err := runTmux(args...)
	return err
}

// KillSession kills the named session.
func KillSession(socketPath, name string) error {
	_, err := runTmux(append(baseArgs(socketPath), "kill-session", "-t", name)...)
	return err
}

// SwitchClient switches the attached client to the target session. Only
// meaningful when running nested inside tmux.
func SwitchClient(socketPath, target string) error {
	_, err := runTmux(append(baseArgs(socketPath), "switch-client", "-t", target)...)
	return err
}

// ErrorText extracts the stderr text of a failed tmux invocation, falling
// back to the plain error string.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
			return msg
		}
	}
	return err.Error()
}

// ResolveSocketPath picks the tmux socket: explicit flag, then environment,
// then the $TMUX variable, then the conventional per-user default path.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("TMUX_SESSION_PICKER_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}
