package collision

// Queue collects the hits of one ground ray during a traversal. It is reset and refilled every frame,
// so the backing array is reused.
type Queue struct {
	entries []HitEntry
}

// Reset drops all entries and keeps the capacity.
func (q *Queue) Reset() {
	q.entries = q.entries[:0]
}

// Add appends hits.
func (q *Queue) Add(hits ...HitEntry) {
	q.entries = append(q.entries, hits...)
}

// Len returns the number of entries.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Entries returns a sorted copy of the entries (ascending surface Z).
func (q *Queue) Entries() []HitEntry {
	out := make([]HitEntry, len(q.entries))
	copy(out, q.entries)
	SortByZ(out)
	return out
}
