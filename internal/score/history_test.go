package score

import (
	"fmt"
	"testing"
	"time"
)

func entry(name string, need int, day int) HistoryEntry {
	return HistoryEntry{
		ID:          fmt.Sprintf("id-%s-%d-%d", name, need, day),
		ItemName:    name,
		NeedPercent: need,
		WantPercent: 100 - need,
		Date:        time.Date(2025, 6, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestAppendHistoryNewestFirst(t *testing.T) {
	var h []HistoryEntry
	h = AppendHistory(h, entry("Headphones", 35, 1))
	h = AppendHistory(h, entry("Blender", 80, 2))

	if len(h) != 2 {
		t.Fatalf("len = %d, want 2", len(h))
	}
	if h[0].ItemName != "Blender" || h[1].ItemName != "Headphones" {
		t.Fatalf("order wrong: %s, %s", h[0].ItemName, h[1].ItemName)
	}
}

func TestAppendHistorySkipsImmediateRepeat(t *testing.T) {
	h := AppendHistory(nil, entry("Headphones", 35, 1))
	h = AppendHistory(h, entry("Headphones", 35, 2))
	if len(h) != 1 {
		t.Fatalf("len = %d, want 1 (identical repeat skipped)", len(h))
	}

	// Same item with a different score is a real change and is kept.
	h = AppendHistory(h, entry("Headphones", 60, 3))
	if len(h) != 2 {
		t.Fatalf("len = %d, want 2", len(h))
	}

	// The older duplicate is no longer the newest entry, so it inserts.
	h = AppendHistory(h, entry("Headphones", 35, 4))
	if len(h) != 3 {
		t.Fatalf("len = %d, want 3", len(h))
	}
}

func TestAppendHistoryEvictsOldestAtCap(t *testing.T) {
	var h []HistoryEntry
	for i := 0; i < HistoryLimit; i++ {
		h = AppendHistory(h, entry(fmt.Sprintf("item-%d", i), i, i%28+1))
	}
	if len(h) != HistoryLimit {
		t.Fatalf("len = %d, want %d", len(h), HistoryLimit)
	}
	oldest := h[len(h)-1].ItemName

	h = AppendHistory(h, entry("one-more", 50, 28))
	if len(h) != HistoryLimit {
		t.Fatalf("len = %d, want %d after eviction", len(h), HistoryLimit)
	}
	if h[0].ItemName != "one-more" {
		t.Fatalf("newest = %s, want one-more", h[0].ItemName)
	}
	for _, e := range h {
		if e.ItemName == oldest {
			t.Fatalf("oldest entry %s should have been evicted", oldest)
		}
	}
}
