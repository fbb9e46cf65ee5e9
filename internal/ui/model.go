package ui

import (
	"reflect"

	"github.com/atomicstack/tree-navigator/internal/menu"
	"github.com/atomicstack/tree-navigator/internal/theme"
	"github.com/atomicstack/tree-navigator/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the model.
type Options struct {
	// Height is the number of entries shown at once. Once the terminal
	// height is known it caps the window.
	Height     int
	Width      int
	Fullscreen bool
	ShowFooter bool
}

// Model implements the Bubble Tea model for one navigation session.
type Model struct {
	nav        *state.Navigator
	keys       keyMap
	help       help.Model
	renderer   Renderer
	height     int
	width      int
	termHeight int
	fixedWidth bool
	fullscreen bool
	showFooter bool
	result     state.Result

	handlers map[reflect.Type]msgHandler
}

// NewModel starts a session at the root of tree.
func NewModel(tree *menu.Tree, opts Options) *Model {
	height := opts.Height
	if height < 1 {
		height = 1
	}
	m := &Model{
		nav:        state.NewNavigator(tree),
		keys:       defaultKeyMap(),
		help:       help.New(),
		renderer:   NewRenderer(opts.Fullscreen, styles),
		height:     height,
		fullscreen: opts.Fullscreen,
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	return m.handlers[reflect.TypeOf(msg)]
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.result.Done() {
		return nil
	}
	res := m.nav.Apply(m.keys.Classify(keyMsg))
	if res.Done() {
		m.result = res
		return tea.Quit
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	m.termHeight = resize.Height
	return nil
}

// View implements tea.Model. A finished session renders nothing so the
// inline renderer leaves no trace in the terminal.
func (m *Model) View() string {
	if m.result.Done() {
		return ""
	}
	return m.renderer.Render(m.frame())
}

// Result returns how the session ended. Its status is StatusBrowsing while
// the session is still running.
func (m *Model) Result() state.Result {
	return m.result
}

// Navigator exposes the session state.
func (m *Model) Navigator() *state.Navigator {
	return m.nav
}

// visibleRows is the window size handed to the viewport calculation. It is
// always at least one.
func (m *Model) visibleRows() int {
	rows := m.height
	if m.termHeight > 0 {
		if avail := m.termHeight - m.renderer.Chrome(m.showFooter); avail < rows {
			rows = avail
		}
	}
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *Model) frame() Frame {
	children := m.nav.Children()
	tree := m.nav.Tree()
	win := m.nav.Window(m.visibleRows())
	rows := make([]Row, 0, win.Len())
	for i := win.Start; i < win.End; i++ {
		node := tree.Node(children[i])
		rows = append(rows, Row{
			Title:    node.Title,
			Submenu:  !node.IsLeaf(),
			Selected: i == m.nav.Cursor(),
		})
	}
	f := Frame{
		Path:  m.nav.Path(),
		Rows:  rows,
		Above: win.Start,
		Below: len(children) - win.End,
		Width: m.width,
	}
	if m.showFooter {
		f.Footer = m.help.View(m.keys)
	}
	return f
}
