// Bounded, importance-ranked memory owned by one agent.
package agent

import (
	"sort"
	"time"
)

// MemoryCapacity bounds the log length after any sequence of appends.
const MemoryCapacity = 50

// Memory is one recorded experience.
type Memory struct {
	Content    string    `json:"content"`
	Importance int       `json:"importance"` // 2–9 for action memories
	Created    time.Time `json:"created"`
}

// MemoryLog is an append-only record store, internally capacity-bounded.
// When an append would exceed capacity the log is re-ranked by importance
// descending (stable on insertion order) and truncated; recency does not
// protect an entry, only importance does.
type MemoryLog struct {
	entries []Memory
}

// Add appends a record and evicts by importance rank when over capacity.
func (l *MemoryLog) Add(content string, importance int, now time.Time) {
	l.entries = append(l.entries, Memory{
		Content:    content,
		Importance: importance,
		Created:    now,
	})
	if len(l.entries) <= MemoryCapacity {
		return
	}
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Importance > l.entries[j].Importance
	})
	l.entries = l.entries[:MemoryCapacity]
}

// Len returns the number of stored records.
func (l *MemoryLog) Len() int {
	return len(l.entries)
}

// Entries returns a copy of all records in stored order.
func (l *MemoryLog) Entries() []Memory {
	out := make([]Memory, len(l.entries))
	copy(out, l.entries)
	return out
}

// Recent returns the last n records in stored order, oldest first.
func (l *MemoryLog) Recent(n int) []Memory {
	if n <= 0 || len(l.entries) == 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Memory, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}
