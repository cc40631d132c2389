package events

import "github.com/atomicstack/justlist/internal/logging"

type GeneratorTracer struct{}

var Generator = GeneratorTracer{}

func (GeneratorTracer) Start(name string, inputGroups int) {
	logging.Trace("generator.start", map[string]interface{}{"name": name, "input_groups": inputGroups})
}

func (GeneratorTracer) Added(name string, groups int) {
	logging.Trace("generator.added", map[string]interface{}{"name": name, "groups": groups})
}

func (GeneratorTracer) Failed(name string, err error) {
	payload := map[string]interface{}{"name": name}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("generator.failed", payload)
}

func (GeneratorTracer) Done(groups int) {
	logging.Trace("generator.done", map[string]interface{}{"groups": groups})
}
