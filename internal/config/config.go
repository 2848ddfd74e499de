package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/tmux-session-picker/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// File mirrors the optional TOML configuration file. Zero values mean
// "not set"; flags and environment variables take precedence.
type File struct {
	Socket    string `toml:"socket"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Footer    bool   `toml:"footer"`
	Verbose   bool   `toml:"verbose"`
	Favorites string `toml:"favorites"`
	Handoff   string `toml:"handoff"`
	StartDir  string `toml:"start_dir"`
	LogFile   string `toml:"log_file"`
	Trace     bool   `toml:"trace"`
}

const (
	envSocketPath = "TMUX_SESSION_PICKER_SOCKET"
	envWidth      = "TMUX_SESSION_PICKER_WIDTH"
	envHeight     = "TMUX_SESSION_PICKER_HEIGHT"
	envShowFooter = "TMUX_SESSION_PICKER_FOOTER"
	envVerbose    = "TMUX_SESSION_PICKER_VERBOSE"
	envTrace      = "TMUX_SESSION_PICKER_TRACE"
	envLogFile    = "TMUX_SESSION_PICKER_LOG_FILE"
	envFavorites  = "TMUX_SESSION_PICKER_FAVORITES"
	envHandoff    = "TMUX_SESSION_PICKER_HANDOFF"
	envStartDir   = "TMUX_SESSION_PICKER_START_DIR"
	envConfigFile = "TMUX_SESSION_PICKER_CONFIG"
)

const appDirName = "tmux-session-picker"

// Dir returns the per-user configuration directory, creating it when missing.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	file, err := loadFile(envOrDefault(env, envConfigFile, ""))
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(appDirName, flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	socket := fs.String("socket", envOrDefault(env, envSocketPath, file.Socket), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", envOrInt(env, envWidth, file.Width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.Height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, file.Footer), "enable footer hint row (disabled by default)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, file.Verbose), "print success messages for actions")
	favorites := fs.String("favorites", envOrDefault(env, envFavorites, file.Favorites), "path to the favorites file (defaults to the config directory)")
	handoff := fs.String("handoff", envOrDefault(env, envHandoff, file.Handoff), "path to the attach hand-off file (defaults to the config directory)")
	startDir := fs.String("start-dir", envOrDefault(env, envStartDir, file.StartDir), "default working directory offered when creating sessions")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.Trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			SocketPath:    *socket,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Verbose:       *verbose,
			FavoritesPath: *favorites,
			HandoffPath:   *handoff,
			StartDir:      *startDir,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"socket":    *socket,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"verbose":   strconv.FormatBool(*verbose),
			"favorites": *favorites,
			"handoff":   *handoff,
			"startDir":  *startDir,
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// loadFile reads the optional TOML config. A missing file is not an error;
// a malformed one is, so bad settings fail loudly instead of half-applying.
func loadFile(path string) (File, error) {
	if strings.TrimSpace(path) == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return File{}, nil
		}
		path = filepath.Join(base, appDirName, "config.toml")
	}
	var file File
	if _, err := os.Stat(path); err != nil {
		return File{}, nil
	}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return File{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return file, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// ApplyDefaults fills unset paths from the per-user configuration
// directory, creating it on first run. Only the favorites and hand-off
// files are required to live somewhere; the log file stays relative to
// the working directory when unset, matching the flag default.
func (c *Config) ApplyDefaults() error {
	if c.App.FavoritesPath != "" && c.App.HandoffPath != "" {
		return nil
	}
	dir, err := Dir()
	if err != nil {
		return fmt.Errorf("resolve config directory: %w", err)
	}
	if c.App.FavoritesPath == "" {
		c.App.FavoritesPath = filepath.Join(dir, "favorites")
	}
	if c.App.HandoffPath == "" {
		c.App.HandoffPath = filepath.Join(dir, "attach-target")
	}
	return nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
