package events

import "github.com/atomicstack/justlist/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) CatalogLoaded(source string, groups, items int) {
	logging.Trace("app.catalog", map[string]interface{}{"source": source, "groups": groups, "items": items})
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}
