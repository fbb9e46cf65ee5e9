package events

import "github.com/atomicstack/tree-navigator/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Cursor(node, cursor int) {
	logging.Trace("nav.cursor", map[string]interface{}{"node": node, "cursor": cursor})
}

func (NavTracer) Enter(from, to int, title string) {
	logging.Trace("nav.enter", map[string]interface{}{
		"from":  from,
		"to":    to,
		"title": title,
	})
}

func (NavTracer) Back(from, to, cursor int) {
	logging.Trace("nav.back", map[string]interface{}{
		"from":   from,
		"to":     to,
		"cursor": cursor,
	})
}

func (NavTracer) Select(node int, title, payload string) {
	logging.Trace("nav.select", map[string]interface{}{
		"node":    node,
		"title":   title,
		"payload": payload,
	})
}

func (NavTracer) Quit(node, cursor int) {
	logging.Trace("nav.quit", map[string]interface{}{"node": node, "cursor": cursor})
}
