package ui

import (
	"strings"

	"github.com/atomicstack/tree-navigator/internal/theme"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	headerSeparator = " → "
	defaultRootName = "main menu"
	submenuMarker   = " ›"
	emptyMessage    = "(no entries)"
	ellipsis        = "…"
)

// Row is one visible sibling.
type Row struct {
	Title    string
	Submenu  bool
	Selected bool
}

// Frame is everything a renderer needs to draw one state of the session.
type Frame struct {
	Path   []string
	Rows   []Row
	Above  int
	Below  int
	Width  int
	Footer string
}

// Renderer draws a frame. Implementations only decide presentation; the rows
// are already windowed.
type Renderer interface {
	Render(Frame) string
	// Chrome is the number of rows drawn besides the entries.
	Chrome(showFooter bool) int
}

// NewRenderer returns the full-screen renderer when fullscreen is set and the
// compact inline renderer otherwise.
func NewRenderer(fullscreen bool, styles *theme.Styles) Renderer {
	if fullscreen {
		return fullscreenRenderer{styles: styles}
	}
	return inlineRenderer{styles: styles}
}

// inlineRenderer draws only the entries, highlighting the selected row.
type inlineRenderer struct {
	styles *theme.Styles
}

func (r inlineRenderer) Chrome(showFooter bool) int {
	if showFooter {
		return 1
	}
	return 0
}

func (r inlineRenderer) Render(f Frame) string {
	lines := make([]string, 0, len(f.Rows)+1)
	if len(f.Rows) == 0 {
		lines = append(lines, theme.Render(r.styles.Info, fitText(emptyMessage, f.Width)))
	}
	for _, row := range f.Rows {
		text := fitText(row.Title, f.Width)
		if row.Selected {
			lines = append(lines, theme.Render(r.styles.Highlight, padText(text, f.Width)))
			continue
		}
		lines = append(lines, theme.Render(r.styles.Item, text))
	}
	if f.Footer != "" {
		lines = append(lines, fitRendered(f.Footer, f.Width))
	}
	return strings.Join(lines, "\n")
}

// fullscreenRenderer draws a breadcrumb header, indicator rows with submenu
// markers and scroll hints, and an optional footer.
type fullscreenRenderer struct {
	styles *theme.Styles
}

func (r fullscreenRenderer) Chrome(showFooter bool) int {
	used := 1
	if showFooter {
		used += 2
	}
	return used
}

func (r fullscreenRenderer) Render(f Frame) string {
	lines := make([]string, 0, len(f.Rows)+3)
	lines = append(lines, theme.Render(r.styles.Header, fitText(headerText(f), f.Width)))
	if len(f.Rows) == 0 {
		lines = append(lines, theme.Render(r.styles.Info, fitText(emptyMessage, f.Width)))
	}
	for _, row := range f.Rows {
		lines = append(lines, r.renderRow(row, f.Width))
	}
	if f.Footer != "" {
		lines = append(lines, "")
		lines = append(lines, fitRendered(f.Footer, f.Width))
	}
	return strings.Join(lines, "\n")
}

func (r fullscreenRenderer) renderRow(row Row, width int) string {
	indicator := "▌"
	indicatorStyle := r.styles.ItemIndicator
	lineStyle := r.styles.Item
	if row.Selected {
		indicatorStyle = r.styles.SelectedItemIndicator
		lineStyle = r.styles.SelectedItem
	}
	marker := ""
	if row.Submenu {
		marker = submenuMarker
	}
	avail := width
	if avail > 0 {
		avail -= runewidth.StringWidth(indicator+" ") + runewidth.StringWidth(marker)
		if avail < 1 {
			avail = 1
		}
	}
	title := " " + fitText(row.Title, avail)
	body := theme.Render(lineStyle, title)
	if marker != "" {
		markerStyle := r.styles.Submenu
		if row.Selected {
			markerStyle = lineStyle
		}
		body += theme.Render(markerStyle, marker)
	}
	if row.Selected && width > 0 {
		used := runewidth.StringWidth(indicator + title + marker)
		if pad := width - used; pad > 0 {
			body += theme.Render(lineStyle, strings.Repeat(" ", pad))
		}
	}
	return theme.Render(indicatorStyle, indicator) + body
}

func headerText(f Frame) string {
	segments := append([]string{defaultRootName}, f.Path...)
	header := strings.Join(segments, headerSeparator)
	switch {
	case f.Above > 0 && f.Below > 0:
		header += " ↕"
	case f.Above > 0:
		header += " ↑"
	case f.Below > 0:
		header += " ↓"
	}
	return header
}

// fitText truncates plain text to width cells. A width of 0 leaves text as is.
func fitText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return runewidth.Truncate(text, width, ellipsis)
}

// fitRendered truncates text that may already contain ANSI sequences.
func fitRendered(text string, width int) string {
	if width <= 0 {
		return text
	}
	return truncate.StringWithTail(text, uint(width), ellipsis)
}

func padText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if pad := width - runewidth.StringWidth(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}
