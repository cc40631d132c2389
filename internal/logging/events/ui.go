package events

import "github.com/atomicstack/justlist/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) GroupSwitch(group int, label string) {
	logging.Trace("ui.group", map[string]interface{}{"group": group, "label": label})
}

func (UITracer) Cursor(group, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"group": group, "cursor": cursor})
}

func (UITracer) Confirm(group, item string) {
	logging.Trace("ui.confirm", map[string]interface{}{"group": group, "item": item})
}

func (UITracer) Quit(reason string) {
	logging.Trace("ui.quit", map[string]interface{}{"reason": reason})
}

func (FilterTracer) Cleared(group int) {
	logging.Trace("filter.clear", map[string]interface{}{"group": group})
}

func (FilterTracer) Append(group int, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"group": group, "filter": filter})
}

func (FilterTracer) Backspace(group int, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"group": group, "filter": filter})
}

func (FilterTracer) Visible(group, visible int) {
	logging.Trace("filter.visible", map[string]interface{}{"group": group, "visible": visible})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
