// Package backend mediates between the UI and tmux. The refresher is
// pull-based: the UI asks for a snapshot on user-visible occasions (startup,
// post-action, explicit reload) and nothing polls in the background.
package backend

import (
	"sync"
	"time"

	"github.com/atomicstack/tmux-session-picker/internal/session"
	"github.com/atomicstack/tmux-session-picker/internal/tmux"
)

var currentSessionName = tmux.CurrentSessionName

// Snapshot is one coherent view of the tmux server: the session listing in
// server order plus the name of the session this process runs in, when any.
type Snapshot struct {
	Records []session.Record
	Current string
}

// Lister supplies the session listing; satisfied by session.Repository.
type Lister interface {
	List() []session.Record
}

// Refresher produces snapshots on demand. Requests arriving within the
// throttle window are served the previous snapshot instead of hitting tmux
// again; concurrent first requests still collapse inside the repository.
type Refresher struct {
	socketPath string
	repo       Lister
	throttle   *throttle

	mu   sync.Mutex
	last Snapshot
}

// NewRefresher binds a refresher to a session lister. minInterval bounds how
// often tmux is actually consulted; zero disables throttling.
func NewRefresher(socketPath string, repo Lister, minInterval time.Duration) *Refresher {
	return &Refresher{
		socketPath: socketPath,
		repo:       repo,
		throttle:   newThrottle(minInterval),
	}
}

// Refresh returns a current snapshot, consulting tmux unless the previous
// snapshot is still inside the throttle window.
func (r *Refresher) Refresh() Snapshot {
	if !r.throttle.allow() {
		return r.Last()
	}
	return r.poll()
}

// ForceRefresh consults tmux regardless of the throttle window. Mutations
// (create, kill) must see their effect in the next snapshot; only repeated
// plain refreshes are allowed to ride the cache.
func (r *Refresher) ForceRefresh() Snapshot {
	return r.poll()
}

func (r *Refresher) poll() Snapshot {
	snap := Snapshot{
		Records: r.repo.List(),
		Current: currentSessionName(r.socketPath),
	}
	r.mu.Lock()
	r.last = snap
	r.mu.Unlock()
	return snap
}

// Last returns the most recent snapshot without touching tmux.
func (r *Refresher) Last() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
