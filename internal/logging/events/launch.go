package events

import "github.com/atomicstack/justlist/internal/logging"

type LaunchTracer struct{}

var Launch = LaunchTracer{}

func (LaunchTracer) Resolved(executable, argument string, terminal bool) {
	logging.Trace("launch.resolved", map[string]interface{}{
		"executable": executable,
		"argument":   argument,
		"terminal":   terminal,
	})
}

func (LaunchTracer) Start(argv []string, strategy string) {
	logging.Trace("launch.start", map[string]interface{}{"argv": argv, "strategy": strategy})
}

func (LaunchTracer) Noop() {
	logging.Trace("launch.noop", nil)
}

func (LaunchTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("launch.error", map[string]interface{}{"error": err.Error()})
}
