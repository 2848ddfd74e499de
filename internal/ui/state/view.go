// Package state holds the picker's derived view: the full session set, the
// active filter, and cursor/viewport positions. Every mutation re-derives
// the visible slice synchronously; nothing observes anything.
package state

import (
	"github.com/atomicstack/tmux-session-picker/internal/session"
)

// View is the filterable session listing backing the main screen.
type View struct {
	Query         string
	QueryCursor   int
	FavoritesOnly bool

	Cursor         int
	ViewportOffset int
	LastCursor     int

	full  []session.Record
	items []session.Record
}

// NewView returns an empty view.
func NewView() *View {
	return &View{LastCursor: -1}
}

// SetSessions replaces the full session set and re-derives the visible
// slice. The cursor follows the previously selected name when it survives
// the refresh, otherwise it clamps.
func (v *View) SetSessions(records []session.Record) {
	selected := ""
	if rec, ok := v.Selected(); ok {
		selected = rec.Name
	}
	v.full = cloneRecords(records)
	v.applyFilter()
	if selected != "" {
		if idx := v.indexOf(selected); idx >= 0 {
			v.Cursor = idx
		}
	}
}

// Sessions returns the full (unfiltered) set in listing order.
func (v *View) Sessions() []session.Record {
	return cloneRecords(v.full)
}

// Filtered returns the visible records in listing order.
func (v *View) Filtered() []session.Record {
	return cloneRecords(v.items)
}

// Selected returns the record under the cursor.
func (v *View) Selected() (session.Record, bool) {
	if v.Cursor < 0 || v.Cursor >= len(v.items) {
		return session.Record{}, false
	}
	return v.items[v.Cursor], true
}

// ToggleFavoritesOnly flips the favorites-only predicate and reports the
// new state. The cursor follows the selected name when it stays visible.
func (v *View) ToggleFavoritesOnly() bool {
	selected := ""
	if rec, ok := v.Selected(); ok {
		selected = rec.Name
	}
	v.FavoritesOnly = !v.FavoritesOnly
	v.applyFilter()
	if selected != "" {
		if idx := v.indexOf(selected); idx >= 0 {
			v.Cursor = idx
		}
	}
	return v.FavoritesOnly
}

// SetFavorite flips the favorite flag on the named record in place, then
// re-derives in case the favorites-only predicate is active.
func (v *View) SetFavorite(name string, favorite bool) {
	for i := range v.full {
		if v.full[i].Name == name {
			v.full[i].Favorite = favorite
		}
	}
	v.applyFilter()
}

// MoveCursor moves the selection by delta, clamped to the visible slice.
func (v *View) MoveCursor(delta int) {
	if len(v.items) == 0 {
		v.Cursor = 0
		return
	}
	v.Cursor += delta
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if v.Cursor >= len(v.items) {
		v.Cursor = len(v.items) - 1
	}
}

// CursorToStart and CursorToEnd jump the selection.
func (v *View) CursorToStart() { v.Cursor = 0 }

func (v *View) CursorToEnd() {
	if len(v.items) == 0 {
		v.Cursor = 0
		return
	}
	v.Cursor = len(v.items) - 1
}

// ClampViewport scrolls the viewport so the cursor is visible within
// height rows.
func (v *View) ClampViewport(height int) {
	if height <= 0 || len(v.items) == 0 {
		v.ViewportOffset = 0
		return
	}
	if v.Cursor < v.ViewportOffset {
		v.ViewportOffset = v.Cursor
	}
	if v.Cursor >= v.ViewportOffset+height {
		v.ViewportOffset = v.Cursor - height + 1
	}
	if v.ViewportOffset < 0 {
		v.ViewportOffset = 0
	}
}

func (v *View) indexOf(name string) int {
	for i, rec := range v.items {
		if rec.Name == name {
			return i
		}
	}
	return -1
}

func (v *View) applyFilter() {
	v.items = FilterRecords(v.full, v.Query, v.FavoritesOnly)
	if len(v.items) == 0 {
		v.Cursor = 0
		v.ViewportOffset = 0
		return
	}
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if v.Cursor >= len(v.items) {
		v.Cursor = len(v.items) - 1
	}
	if v.ViewportOffset > len(v.items)-1 {
		v.ViewportOffset = 0
	}
}

func cloneRecords(records []session.Record) []session.Record {
	out := make([]session.Record, len(records))
	copy(out, records)
	return out
}
