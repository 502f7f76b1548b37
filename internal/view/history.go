package view

// DefaultHistorySize is the capacity used when NewHistory is given a
// non-positive size.
const DefaultHistorySize = 40

// HistoryEntry is one notification as it was shown.
type HistoryEntry struct {
	Seq          uint64 // monotonically increasing show counter
	Notification Notification
}

// History is a ring buffer of recently shown notifications.
type History struct {
	entries []HistoryEntry
	head    int
	count   int
}

// NewHistory creates a history holding at most size entries.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{entries: make([]HistoryEntry, size)}
}

// Add appends an entry, overwriting the oldest when full.
func (h *History) Add(e HistoryEntry) {
	h.entries[h.head] = e
	h.head = (h.head + 1) % len(h.entries)
	if h.count < len(h.entries) {
		h.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (h *History) Recent() []HistoryEntry {
	n := len(h.entries)
	out := make([]HistoryEntry, h.count)
	for i := 0; i < h.count; i++ {
		out[i] = h.entries[(h.head-h.count+i+n)%n]
	}
	return out
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return h.count
}
