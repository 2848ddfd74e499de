package events

import "github.com/atomicstack/tmux-session-picker/internal/logging"

type FilterTracer struct{}

var Filter = FilterTracer{}

func (FilterTracer) Query(query string, matches int) {
	logging.Trace("filter.query", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.cleared", nil)
}

func (FilterTracer) FavoritesOnly(enabled bool, matches int) {
	logging.Trace("filter.favorites", map[string]interface{}{"enabled": enabled, "matches": matches})
}

type FavoritesTracer struct{}

var Favorites = FavoritesTracer{}

func (FavoritesTracer) Toggle(name string, favorite bool) {
	logging.Trace("favorites.toggle", map[string]interface{}{"name": name, "favorite": favorite})
}

func (FavoritesTracer) SaveError(err error) {
	if err == nil {
		return
	}
	logging.Trace("favorites.save.error", map[string]interface{}{"error": err.Error()})
}

func (FavoritesTracer) LoadError(err error) {
	if err == nil {
		return
	}
	logging.Trace("favorites.load.error", map[string]interface{}{"error": err.Error()})
}
