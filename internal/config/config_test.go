package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.SocketPath != "" || cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("unexpected defaults %+v", cfg.App)
	}
	if cfg.App.ShowFooter || cfg.App.Verbose || cfg.Logging.Trace {
		t.Fatalf("boolean options should default off: %+v", cfg)
	}
}

func TestLoadArgsFlagBeatsEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := LoadArgs(
		[]string{"-socket", "/tmp/from-flag", "-width", "80"},
		[]string{"TMUX_SESSION_PICKER_SOCKET=/tmp/from-env", "TMUX_SESSION_PICKER_WIDTH=40"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.SocketPath != "/tmp/from-flag" {
		t.Fatalf("expected flag to win, got %q", cfg.App.SocketPath)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag width, got %d", cfg.App.Width)
	}
}

func TestLoadArgsEnvBeatsFile(t *testing.T) {
	path := writeConfigFile(t, "socket = \"/tmp/from-file\"\nheight = 15\n")
	cfg, err := LoadArgs(nil, []string{
		"TMUX_SESSION_PICKER_CONFIG=" + path,
		"TMUX_SESSION_PICKER_SOCKET=/tmp/from-env",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.SocketPath != "/tmp/from-env" {
		t.Fatalf("expected env to win over file, got %q", cfg.App.SocketPath)
	}
	if cfg.App.Height != 15 {
		t.Fatalf("expected file height to apply, got %d", cfg.App.Height)
	}
}

func TestLoadArgsFileSettings(t *testing.T) {
	path := writeConfigFile(t, `
socket = "/tmp/sock"
width = 100
footer = true
verbose = true
favorites = "/tmp/favs"
handoff = "/tmp/target"
start_dir = "/srv"
trace = true
log_file = "/tmp/picker.log"
`)
	cfg, err := LoadArgs(nil, []string{"TMUX_SESSION_PICKER_CONFIG=" + path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.SocketPath != "/tmp/sock" || cfg.App.Width != 100 || !cfg.App.ShowFooter || !cfg.App.Verbose {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if cfg.App.FavoritesPath != "/tmp/favs" || cfg.App.HandoffPath != "/tmp/target" || cfg.App.StartDir != "/srv" {
		t.Fatalf("unexpected paths %+v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/picker.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadArgsMalformedFileFails(t *testing.T) {
	path := writeConfigFile(t, "width = \"not a number\"\n")
	if _, err := LoadArgs(nil, []string{"TMUX_SESSION_PICKER_CONFIG=" + path}); err == nil {
		t.Fatal("expected malformed config file to fail loudly")
	}
}

func TestLoadArgsMissingFileIsFine(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := LoadArgs(nil, []string{"TMUX_SESSION_PICKER_CONFIG=" + missing}); err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatal("expected negative width to be rejected")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, nil); err == nil {
		t.Fatal("expected negative height to be rejected")
	}
}

func TestLoadArgsIgnoresUnparsableEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := LoadArgs(nil, []string{
		"TMUX_SESSION_PICKER_WIDTH=abc",
		"TMUX_SESSION_PICKER_FOOTER=notabool",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected unparsable env ignored, got %+v", cfg.App)
	}
}

func TestApplyDefaultsFillsPaths(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	cfg := Config{}
	if err := cfg.ApplyDefaults(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantDir := filepath.Join(base, "tmux-session-picker")
	if cfg.App.FavoritesPath != filepath.Join(wantDir, "favorites") {
		t.Fatalf("unexpected favorites path %q", cfg.App.FavoritesPath)
	}
	if cfg.App.HandoffPath != filepath.Join(wantDir, "attach-target") {
		t.Fatalf("unexpected hand-off path %q", cfg.App.HandoffPath)
	}
	if _, err := os.Stat(wantDir); err != nil {
		t.Fatalf("expected config dir created: %v", err)
	}
}

func TestApplyDefaultsKeepsExplicitPaths(t *testing.T) {
	cfg := Config{}
	cfg.App.FavoritesPath = "/tmp/favs"
	cfg.App.HandoffPath = "/tmp/target"
	if err := cfg.ApplyDefaults(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.FavoritesPath != "/tmp/favs" || cfg.App.HandoffPath != "/tmp/target" {
		t.Fatalf("expected explicit paths kept, got %+v", cfg.App)
	}
}
