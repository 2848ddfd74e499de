package session

import (
	"golang.org/x/sync/singleflight"

	"github.com/atomicstack/tmux-session-picker/internal/favorites"
	"github.com/atomicstack/tmux-session-picker/internal/logging/events"
	"github.com/atomicstack/tmux-session-picker/internal/tmux"
)

// Seams for tests; production code always talks to the real tmux binary.
var (
	listSessions = tmux.ListSessions
	hasSession   = tmux.HasSession
	newSession   = tmux.NewSession
	killSession  = tmux.KillSession
	switchClient = tmux.SwitchClient
)

// Repository polls tmux for the current session listing and annotates each
// record with favorite status. Concurrent List calls collapse into a single
// poll via singleflight.
type Repository struct {
	socketPath string
	store      *favorites.Store
	group      singleflight.Group
}

// NewRepository binds a repository to a tmux socket and a favorites store.
func NewRepository(socketPath string, store *favorites.Store) *Repository {
	return &Repository{socketPath: socketPath, store: store}
}

// List returns the sessions currently known to tmux, in listing order.
// Any listing failure yields an empty slice; the error is traced, never
// propagated. The favorites snapshot is loaded once per call so the whole
// batch sees a consistent view.
func (r *Repository) List() []Record {
	v, _, _ := r.group.Do("list", func() (interface{}, error) {
		raw, err := listSessions(r.socketPath)
		if err != nil {
			events.Session.RefreshError(err)
			return []Record{}, nil
		}
		favs, err := r.store.Load()
		if err != nil {
			events.Favorites.LoadError(err)
		}
		records := parseRecords(raw, favs)
		events.Session.Refresh(len(records))
		return records, nil
	})
	records, ok := v.([]Record)
	if !ok {
		return []Record{}
	}
	return records
}

// ToggleFavorite flips the persisted favorite state for name and returns
// the new state. Store failures are traced and the in-memory answer is
// still returned, matching the best-effort durability of the store.
func (r *Repository) ToggleFavorite(name string) bool {
	favorite, err := r.store.Toggle(name)
	if err != nil {
		events.Favorites.SaveError(err)
	}
	events.Favorites.Toggle(name, favorite)
	return favorite
}
