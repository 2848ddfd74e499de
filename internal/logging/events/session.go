package events

import "github.com/atomicstack/tmux-session-picker/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Refresh(count int) {
	logging.Trace("session.refresh", map[string]interface{}{"count": count})
}

func (SessionTracer) RefreshError(err error) {
	if err == nil {
		return
	}
	logging.Trace("session.refresh.error", map[string]interface{}{"error": err.Error()})
}

func (SessionTracer) Attach(target string, nested bool) {
	logging.Trace("session.attach", map[string]interface{}{"target": target, "nested": nested})
}

func (SessionTracer) Create(name, dir string) {
	payload := map[string]interface{}{"name": name}
	if dir != "" {
		payload["dir"] = dir
	}
	logging.Trace("session.create", payload)
}

func (SessionTracer) Kill(target string) {
	logging.Trace("session.kill", map[string]interface{}{"target": target})
}

func (SessionTracer) KillRefused(target string) {
	logging.Trace("session.kill.refused", map[string]interface{}{"target": target})
}

func (SessionTracer) DroppedLine(line string) {
	logging.Trace("session.list.dropped", map[string]interface{}{"line": line})
}
