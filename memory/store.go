// Package memory keeps a bounded per-role history of agent interactions.
// The store is process-wide: it outlives any single crew execution and is
// shared across goal domains that reuse a role name.
package memory

import (
	"sort"
	"sync"
	"time"
)

// DefaultCap is the number of entries retained per role before the oldest
// are evicted.
const DefaultCap = 10

// Entry records one agent interaction: the originating query, the produced
// response and a snapshot of the context supplied for that call.
type Entry struct {
	Query     string
	Response  string
	Context   map[string]any
	Timestamp time.Time
}

type roleLog struct {
	mu      sync.Mutex
	entries []Entry
}

// Store is a role-keyed bounded log. Read-modify-write sequences on one
// role's entries are serialized per role; no cross-role locking is done.
type Store struct {
	mu   sync.RWMutex
	cap  int
	logs map[string]*roleLog
}

// NewStore creates a store retaining up to cap entries per role. A
// non-positive cap falls back to DefaultCap.
func NewStore(cap int) *Store {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &Store{
		cap:  cap,
		logs: make(map[string]*roleLog),
	}
}

func (s *Store) log(role string) *roleLog {
	s.mu.RLock()
	l, ok := s.logs[role]
	s.mu.RUnlock()
	if ok {
		return l
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok = s.logs[role]; !ok {
		l = &roleLog{}
		s.logs[role] = l
	}
	return l
}

// Append adds an entry for a role, then evicts from the front until the
// role's log fits the cap. Insertion order doubles as recency order.
func (s *Store) Append(role string, entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	// Snapshot the context so later caller mutations don't rewrite history.
	if entry.Context != nil {
		snapshot := make(map[string]any, len(entry.Context))
		for k, v := range entry.Context {
			snapshot[k] = v
		}
		entry.Context = snapshot
	}

	l := s.log(role)
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
	if overflow := len(l.entries) - s.cap; overflow > 0 {
		l.entries = append([]Entry(nil), l.entries[overflow:]...)
	}
}

// Recent returns up to the last k entries for a role in chronological order.
func (s *Store) Recent(role string, k int) []Entry {
	if k <= 0 {
		return nil
	}

	l := s.log(role)
	l.mu.Lock()
	defer l.mu.Unlock()

	start := len(l.entries) - k
	if start < 0 {
		start = 0
	}
	return append([]Entry(nil), l.entries[start:]...)
}

// All returns every retained entry for a role in chronological order.
func (s *Store) All(role string) []Entry {
	l := s.log(role)
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Entry(nil), l.entries...)
}

// Clear removes the named roles' memory, or all memory when no role is given.
func (s *Store) Clear(roles ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(roles) == 0 {
		s.logs = make(map[string]*roleLog)
		return
	}
	for _, role := range roles {
		delete(s.logs, role)
	}
}

// Roles lists every role with retained memory, sorted for stable output.
func (s *Store) Roles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roles := make([]string, 0, len(s.logs))
	for role := range s.logs {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}
