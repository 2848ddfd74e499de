// Package handoff manages the well-known file used to pass the chosen
// session name to a wrapper process. A foreground TUI cannot exec a tmux
// attach while it still owns the terminal, so the wrapper performs the
// attach after this process exits.
package handoff

import (
	"os"
	"path/filepath"
	"strings"
)

// Write stores the chosen session name as the file's entire content.
func Write(path, name string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(name), 0o644)
}

// Read returns the stored session name, or empty when the file is absent.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes a stale hand-off file. A missing file is not an error.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
