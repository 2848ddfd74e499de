// Package session turns raw tmux listing output into typed records,
// annotates them with favorite status, and orchestrates the attach,
// create, and kill operations.
package session

// CreatedUnknown is the display value used when a session's creation
// timestamp cannot be parsed.
const CreatedUnknown = "Unknown"

// createdLayout matches the original month/day hour:minute display format.
const createdLayout = "01/02 15:04"

// Record is one parsed snapshot of a tmux session. Records are rebuilt on
// every poll; only Favorite may be flipped in place afterwards, so a
// favorite toggle does not force a full re-poll.
type Record struct {
	Name          string
	Created       string
	Windows       int
	Attached      bool
	WindowPreview string
	Favorite      bool
}
