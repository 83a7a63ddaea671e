package agent

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLogStaysBounded(t *testing.T) {
	var l MemoryLog
	now := time.Now()
	for i := 0; i < 120; i++ {
		l.Add(fmt.Sprintf("entry %d", i), 5, now)
	}
	assert.Equal(t, MemoryCapacity, l.Len())
}

func TestEvictionKeepsMostImportant(t *testing.T) {
	var l MemoryLog
	now := time.Now()

	// Strictly increasing importance: the first (least important) entry
	// must be the one evicted at the 51st append.
	for i := 1; i <= MemoryCapacity+1; i++ {
		l.Add(fmt.Sprintf("entry %d", i), i, now)
	}

	require.Equal(t, MemoryCapacity, l.Len())
	for _, m := range l.Entries() {
		assert.GreaterOrEqual(t, m.Importance, 2, "lowest-importance entry should have been evicted")
	}
}

func TestEvictionIsStableForEqualImportance(t *testing.T) {
	var l MemoryLog
	now := time.Now()

	for i := 0; i < MemoryCapacity; i++ {
		l.Add(fmt.Sprintf("old %d", i), 5, now)
	}
	l.Add("newcomer", 5, now)

	// All equal importance: stable ranking keeps insertion order, so the
	// newcomer is the one dropped.
	for _, m := range l.Entries() {
		assert.NotEqual(t, "newcomer", m.Content)
	}
}

func TestRecentReturnsTailOldestFirst(t *testing.T) {
	var l MemoryLog
	now := time.Now()
	l.Add("a", 5, now)
	l.Add("b", 5, now)
	l.Add("c", 5, now)

	recent := l.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "b", recent[0].Content)
	assert.Equal(t, "c", recent[1].Content)

	assert.Nil(t, l.Recent(0))
	assert.Len(t, l.Recent(10), 3)
}
