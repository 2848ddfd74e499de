package session

import (
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-session-picker/internal/favorites"
	"github.com/atomicstack/tmux-session-picker/internal/logging/events"
)

// parseRecords decodes the pipe-delimited listing output into records,
// preserving line order. Lines with fewer than four fields are dropped;
// the optional fifth field defaults to empty. Field-level damage is
// coerced to a safe value instead of rejecting the line.
func parseRecords(raw string, favs favorites.Set) []Record {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 4 {
			events.Session.DroppedLine(line)
			continue
		}
		preview := ""
		if len(parts) >= 5 {
			preview = parts[4]
		}
		name := parts[0]
		records = append(records, Record{
			Name:          name,
			Created:       formatCreated(parts[1]),
			Windows:       parseWindowCount(parts[2]),
			Attached:      parts[3] == "1",
			WindowPreview: preview,
			Favorite:      favs.Has(name),
		})
	}
	return records
}

// formatCreated renders an epoch-seconds value for display, falling back
// to the Unknown sentinel instead of failing the listing.
func formatCreated(epoch string) string {
	secs, err := strconv.ParseInt(strings.TrimSpace(epoch), 10, 64)
	if err != nil {
		return CreatedUnknown
	}
	return time.Unix(secs, 0).Format(createdLayout)
}

func parseWindowCount(field string) int {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
