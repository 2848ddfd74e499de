package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/tmux-session-picker/internal/session"
)

// SetQuery replaces the filter query and re-derives the visible slice.
// Typing resets the selection to the best match for the query; clearing
// restores the selection held before filtering began.
func (v *View) SetQuery(query string, cursor int) {
	prevActive := v.Query != ""
	restore := -1
	v.Query = query
	runes := []rune(v.Query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	v.QueryCursor = cursor
	if query != "" {
		if !prevActive {
			v.LastCursor = v.Cursor
		}
		v.Cursor = 0
	} else if prevActive {
		restore = v.LastCursor
	}
	v.applyFilter()
	if query != "" && len(v.items) > 0 {
		if idx := BestMatchIndex(v.items, query); idx >= 0 {
			v.Cursor = idx
		}
	}
	if query == "" && prevActive {
		if restore >= 0 && restore < len(v.items) {
			v.Cursor = restore
		} else if len(v.items) > 0 {
			v.Cursor = len(v.items) - 1
		}
		v.LastCursor = -1
	}
}

// ClearQuery drops the filter text.
func (v *View) ClearQuery() {
	v.SetQuery("", 0)
}

// QueryCursorPos returns the rune offset of the query cursor.
func (v *View) QueryCursorPos() int {
	runes := []rune(v.Query)
	if v.QueryCursor < 0 {
		return 0
	}
	if v.QueryCursor > len(runes) {
		return len(runes)
	}
	return v.QueryCursor
}

// InsertQueryText inserts text at the query cursor.
func (v *View) InsertQueryText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	v.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteQueryRuneBackward deletes the rune before the query cursor.
func (v *View) DeleteQueryRuneBackward() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	v.SetQuery(string(updated), pos-1)
	return true
}

// DeleteQueryWordBackward deletes the word preceding the query cursor.
func (v *View) DeleteQueryWordBackward() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	v.SetQuery(string(updated), i)
	return true
}

// MoveQueryCursorStart moves the query cursor to the start.
func (v *View) MoveQueryCursorStart() bool {
	if v.QueryCursorPos() == 0 {
		return false
	}
	v.QueryCursor = 0
	return true
}

// MoveQueryCursorEnd moves the query cursor to the end.
func (v *View) MoveQueryCursorEnd() bool {
	end := len([]rune(v.Query))
	if v.QueryCursorPos() == end {
		return false
	}
	v.QueryCursor = end
	return true
}

// MoveQueryCursorRuneBackward moves the query cursor one rune backward.
func (v *View) MoveQueryCursorRuneBackward() bool {
	if v.QueryCursorPos() == 0 {
		return false
	}
	v.QueryCursor = v.QueryCursorPos() - 1
	return true
}

// MoveQueryCursorRuneForward moves the query cursor one rune forward.
func (v *View) MoveQueryCursorRuneForward() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	v.QueryCursor = pos + 1
	return true
}

// FilterRecords returns the records whose names contain the query,
// case-insensitively, intersected with the favorites predicate when it is
// active. The query is matched verbatim, whitespace included; only the
// empty string means no filter. Listing order is preserved.
func FilterRecords(records []session.Record, query string, favoritesOnly bool) []session.Record {
	needle := strings.ToLower(query)
	filtered := make([]session.Record, 0, len(records))
	for _, rec := range records {
		if favoritesOnly && !rec.Favorite {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(rec.Name), needle) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

// BestMatchIndex picks the record the cursor should land on while typing:
// exact name, then prefix, then earliest substring, then the closest fuzzy
// rank. Membership is already decided; this only orders the selection.
func BestMatchIndex(records []session.Record, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(records) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, rec := range records {
		if strings.EqualFold(rec.Name, trimmed) {
			return i
		}
	}
	for i, rec := range records {
		if strings.HasPrefix(strings.ToLower(rec.Name), lower) {
			return i
		}
	}
	for i, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), lower) {
			return i
		}
	}
	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(records) {
		return 0
	}
	return best.OriginalIndex
}
