package events

import "github.com/atomicstack/tmux-session-picker/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) FatalStartup(reason string) {
	logging.Trace("app.fatal", map[string]interface{}{"reason": reason})
}

func (AppTracer) Exit(chosen string) {
	logging.Trace("app.exit", map[string]interface{}{"chosen": chosen})
}

type ActionTracer struct{}

var Action = ActionTracer{}

func (ActionTracer) Success(info string) {
	if info == "" {
		return
	}
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (ActionTracer) Error(message string) {
	if message == "" {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": message})
}
