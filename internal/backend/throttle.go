package backend

import (
	"sync"
	"time"
)

// throttle enforces a minimum interval between successive operations.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// allow reports whether enough time has passed since the last permitted
// operation, claiming the slot when it has.
func (t *throttle) allow() bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if time.Until(t.next) > 0 {
		return false
	}
	t.next = time.Now().Add(t.interval)
	return true
}
