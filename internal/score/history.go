package score

import "time"

// HistoryLimit caps how many past quiz results are retained.
const HistoryLimit = 20

// HistoryEntry is one persisted quiz result.
type HistoryEntry struct {
	ID          string
	ItemName    string
	NeedPercent int
	WantPercent int
	Date        time.Time
}

// AppendHistory prepends entry to a newest-first history, evicting the oldest
// entry beyond HistoryLimit. Re-submitting the same item with the same need
// percentage as the most recent entry is a no-op, so repeated runs of an
// unchanged quiz do not pile up.
func AppendHistory(entries []HistoryEntry, entry HistoryEntry) []HistoryEntry {
	if len(entries) > 0 && entries[0].ItemName == entry.ItemName && entries[0].NeedPercent == entry.NeedPercent {
		return entries
	}

	updated := make([]HistoryEntry, 0, len(entries)+1)
	updated = append(updated, entry)
	updated = append(updated, entries...)
	if len(updated) > HistoryLimit {
		updated = updated[:HistoryLimit]
	}
	return updated
}
