package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/tree-navigator/internal/logging/events"
	"github.com/atomicstack/tree-navigator/internal/menu"
	"github.com/atomicstack/tree-navigator/internal/source"
	"github.com/atomicstack/tree-navigator/internal/ui"
	"github.com/atomicstack/tree-navigator/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Config describes user-provided application options.
type Config struct {
	MenuPath   string
	Format     string
	Height     int
	Width      int
	Fullscreen bool
	ShowFooter bool
}

// LoadTree reads the menu file and builds the tree. It also returns the
// format actually used to decode the file.
func LoadTree(cfg Config) (*menu.Tree, string, error) {
	doc, format, err := source.Load(cfg.MenuPath, cfg.Format)
	if err != nil {
		return nil, format, err
	}
	tree := menu.Build(doc)
	events.Source.Loaded(cfg.MenuPath, format, tree.Len())
	return tree, format, nil
}

// RunTree runs a session over an already built tree.
func RunTree(tree *menu.Tree, cfg Config, in io.Reader, out io.Writer) (state.Result, error) {
	opts := ui.Options{
		Height:     cfg.Height,
		Width:      cfg.Width,
		Fullscreen: cfg.Fullscreen,
		ShowFooter: cfg.ShowFooter,
	}
	if opts.Width == 0 && !opts.Fullscreen {
		opts.Width = terminalWidth(out)
	}
	model := ui.NewModel(tree, opts)

	programOpts := []tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out)}
	if cfg.Fullscreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, programOpts...)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		return state.Result{}, fmt.Errorf("run menu: %w", err)
	}
	res := model.Result()
	if !res.Done() {
		res = state.Result{Status: state.StatusQuit}
	}
	events.App.Finish(res.Status == state.StatusSelected)
	return res, nil
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
