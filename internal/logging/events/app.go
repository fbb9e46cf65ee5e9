package events

import "github.com/atomicstack/tree-navigator/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Finish(selected bool) {
	logging.Trace("app.finish", map[string]interface{}{"selected": selected})
}
