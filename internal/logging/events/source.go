package events

import "github.com/atomicstack/tree-navigator/internal/logging"

type SourceTracer struct{}

var Source = SourceTracer{}

// Loaded records a successfully decoded and built menu.
func (SourceTracer) Loaded(path, format string, nodes int) {
	logging.Trace("source.loaded", map[string]interface{}{
		"path":   path,
		"format": format,
		"nodes":  nodes,
	})
}
