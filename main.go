package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/tree-navigator/internal/app"
	"github.com/atomicstack/tree-navigator/internal/config"
	"github.com/atomicstack/tree-navigator/internal/logging"
	"github.com/atomicstack/tree-navigator/internal/logging/events"
	"github.com/atomicstack/tree-navigator/internal/menu"
	"github.com/atomicstack/tree-navigator/internal/ui/state"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	tree, format, err := app.LoadTree(runtimeCfg.App)
	if err != nil {
		fail(err, 2)
	}
	events.App.Start(startupTracePayload(runtimeCfg, format, tree.Stats()))

	if runtimeCfg.Print {
		fmt.Print(tree.String())
		return
	}

	// The UI draws on stderr so stdout only ever carries the payload.
	result, err := app.RunTree(tree, runtimeCfg.App, os.Stdin, os.Stderr)
	if err != nil {
		fail(err, 1)
	}
	if result.Status == state.StatusSelected {
		fmt.Println(result.Payload)
	}
}

// fail logs err and exits. Menu loading problems exit with 2 like other
// configuration errors; terminal failures exit with 1.
func fail(err error, code int) {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(code)
}

type menuDetails struct {
	Path   string     `json:"path"`
	Format string     `json:"format"`
	Stats  menu.Stats `json:"stats"`
}

// startupTracePayload records what was loaded and how the session will be
// drawn.
func startupTracePayload(cfg config.Config, format string, stats menu.Stats) map[string]interface{} {
	mode := "inline"
	if cfg.App.Fullscreen {
		mode = "fullscreen"
	}
	return map[string]interface{}{
		"argv":  cfg.Args,
		"flags": cfg.Flags,
		"menu": menuDetails{
			Path:   cfg.App.MenuPath,
			Format: format,
			Stats:  stats,
		},
		"render": map[string]interface{}{
			"mode":   mode,
			"height": cfg.App.Height,
			"footer": cfg.App.ShowFooter,
		},
		"streams": describeStreams(),
	}
}

// streamRole ties a standard descriptor to what the navigator uses it for.
type streamRole struct {
	Role       string `json:"role"`
	Stream     string `json:"stream"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
}

// describeStreams reports which descriptors are terminals. Keys are read from
// stdin and the menu is drawn on stderr; stdout is normally captured by the
// caller to receive the payload.
func describeStreams() []streamRole {
	streams := []struct {
		role, name string
		file       *os.File
	}{
		{"keys", "stdin", os.Stdin},
		{"ui", "stderr", os.Stderr},
		{"payload", "stdout", os.Stdout},
	}
	roles := make([]streamRole, 0, len(streams))
	for _, s := range streams {
		entry := streamRole{Role: s.role, Stream: s.name}
		fd := int(s.file.Fd())
		if term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width, entry.Height = width, height
			}
		}
		roles = append(roles, entry)
	}
	return roles
}
