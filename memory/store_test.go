package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_AppendAndRecent(t *testing.T) {
	store := NewStore(10)

	for i := 0; i < 4; i++ {
		store.Append("coach", Entry{
			Query:    fmt.Sprintf("query-%d", i),
			Response: fmt.Sprintf("response-%d", i),
		})
	}

	recent := store.Recent("coach", 2)
	assert.Len(t, recent, 2)
	assert.Equal(t, "query-2", recent[0].Query)
	assert.Equal(t, "query-3", recent[1].Query)

	all := store.All("coach")
	assert.Len(t, all, 4)
	assert.Equal(t, "query-0", all[0].Query)
}

func TestStore_EvictsOldestBeyondCap(t *testing.T) {
	store := NewStore(3)

	for i := 0; i < 5; i++ {
		store.Append("analyst", Entry{Query: fmt.Sprintf("query-%d", i)})
	}

	all := store.All("analyst")
	assert.Len(t, all, 3)
	assert.Equal(t, "query-2", all[0].Query)
	assert.Equal(t, "query-4", all[2].Query)
}

func TestStore_NonPositiveCapUsesDefault(t *testing.T) {
	store := NewStore(0)

	for i := 0; i < DefaultCap+5; i++ {
		store.Append("coach", Entry{Query: fmt.Sprintf("query-%d", i)})
	}

	assert.Len(t, store.All("coach"), DefaultCap)
}

func TestStore_TimestampsZeroEntries(t *testing.T) {
	store := NewStore(10)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store.Append("coach", Entry{Query: "a"})
	store.Append("coach", Entry{Query: "b", Timestamp: fixed})

	all := store.All("coach")
	assert.False(t, all[0].Timestamp.IsZero())
	assert.Equal(t, fixed, all[1].Timestamp)
}

func TestStore_SnapshotsContext(t *testing.T) {
	store := NewStore(10)
	ctx := map[string]any{"steps": 4200}

	store.Append("analyst", Entry{Query: "q", Context: ctx})
	ctx["steps"] = 9999

	all := store.All("analyst")
	assert.Equal(t, 4200, all[0].Context["steps"])
}

func TestStore_RolesAreIsolated(t *testing.T) {
	store := NewStore(10)

	store.Append("coach", Entry{Query: "coach-q"})
	store.Append("analyst", Entry{Query: "analyst-q"})

	assert.Len(t, store.All("coach"), 1)
	assert.Len(t, store.All("analyst"), 1)
	assert.Empty(t, store.All("strategist"))
	assert.Equal(t, []string{"analyst", "coach"}, store.Roles())
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(10)
	store.Append("coach", Entry{Query: "q"})
	store.Append("analyst", Entry{Query: "q"})

	store.Clear("coach")
	assert.Empty(t, store.All("coach"))
	assert.Len(t, store.All("analyst"), 1)

	store.Clear()
	assert.Empty(t, store.Roles())
}

func TestStore_RecentBounds(t *testing.T) {
	store := NewStore(10)
	store.Append("coach", Entry{Query: "q"})

	assert.Nil(t, store.Recent("coach", 0))
	assert.Len(t, store.Recent("coach", 5), 1)
}

func TestStore_ConcurrentAppends(t *testing.T) {
	store := NewStore(10)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			role := fmt.Sprintf("role-%d", n%4)
			store.Append(role, Entry{Query: fmt.Sprintf("query-%d", n)})
		}(i)
	}
	wg.Wait()

	total := 0
	for _, role := range store.Roles() {
		entries := store.All(role)
		assert.LessOrEqual(t, len(entries), 10)
		total += len(entries)
	}
	assert.Equal(t, 20, total)
}
