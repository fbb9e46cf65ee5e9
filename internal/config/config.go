package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/tree-navigator/internal/app"
	"github.com/atomicstack/tree-navigator/internal/source"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Print   bool
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigPath = "NAVIGATOR_CONFIG"
	envFormat     = "NAVIGATOR_FORMAT"
	envHeight     = "NAVIGATOR_HEIGHT"
	envWidth      = "NAVIGATOR_WIDTH"
	envFullscreen = "NAVIGATOR_FULLSCREEN"
	envShowFooter = "NAVIGATOR_FOOTER"
	envTrace      = "NAVIGATOR_TRACE"
	envLogFile    = "NAVIGATOR_LOG_FILE"

	defaultHeight = 8
)

// ErrMissingConfigPath is reported when neither -config nor NAVIGATOR_CONFIG
// names a menu file.
var ErrMissingConfigPath = errors.New("no menu file given (use -config or " + envConfigPath + ")")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("navigator", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	path := fs.String("config", envOrDefault(env, envConfigPath, ""), "path to the menu file")
	format := fs.String("format", envOrDefault(env, envFormat, source.FormatAuto), "menu file format: auto, json or yaml")
	height := fs.Int("height", envOrInt(env, envHeight, defaultHeight), "number of entries shown at once")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "render width in cells (0 uses terminal width)")
	fullscreen := fs.Bool("fullscreen", envOrBool(env, envFullscreen, false), "draw on the alternate screen instead of inline")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show key help below the entries")
	printTree := fs.Bool("print", false, "print the menu tree and exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}

	cfg := Config{
		App: app.Config{
			MenuPath:   *path,
			Format:     *format,
			Height:     *height,
			Width:      *width,
			Fullscreen: *fullscreen,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Print: *printTree,
		Flags: map[string]string{
			"config":     *path,
			"format":     *format,
			"height":     strconv.Itoa(*height),
			"width":      strconv.Itoa(*width),
			"fullscreen": strconv.FormatBool(*fullscreen),
			"footer":     strconv.FormatBool(*footer),
			"print":      strconv.FormatBool(*printTree),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the menu file and window size are usable before any
// terminal state is touched.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.MenuPath) == "" {
		return ErrMissingConfigPath
	}
	if _, err := source.ResolveFormat(cfg.App.Format, cfg.App.MenuPath); err != nil {
		return err
	}
	if cfg.App.Height < 1 {
		return fmt.Errorf("height must be >= 1 (got %d)", cfg.App.Height)
	}
	return nil
}
