package ratelimit

import (
	"sync"
	"time"

	"github.com/timemachine-studios/timemachine-proxy/pkg/persona"
)

const window = 24 * time.Hour

type entry struct {
	count   int
	resetAt time.Time
}

// Store tracks per-(client, persona) daily quotas in memory. Entries live for
// the process lifetime; counters reset lazily when a check lands after the
// stored reset time. Nothing here survives a restart.
type Store struct {
	mu      sync.Mutex
	limits  map[persona.Persona]int
	clients map[string]map[persona.Persona]*entry
	now     func() time.Time
}

// NewStore creates a store with the given per-persona limits. The clock is
// injected so tests can move time; passing nil uses time.Now.
func NewStore(limits map[persona.Persona]int, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		limits:  limits,
		clients: make(map[string]map[persona.Persona]*entry),
		now:     now,
	}
}

// Check reports whether the client still has quota for the persona, creating
// the entry on first sight. Check and Increment are deliberately separate
// calls with the upstream request in between; a same-client burst can
// overshoot the limit by the burst size.
func (s *Store) Check(clientID string, p persona.Persona) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	personas, ok := s.clients[clientID]
	if !ok {
		personas = make(map[persona.Persona]*entry)
		s.clients[clientID] = personas
	}

	e, ok := personas[p]
	if !ok {
		e = &entry{resetAt: now.Add(window)}
		personas[p] = e
	}

	if now.After(e.resetAt) {
		e.count = 0
		e.resetAt = now.Add(window)
	}

	return e.count < s.limit(p)
}

// Increment consumes one unit of quota. It is a no-op for a pair that never
// passed Check; it must not create an entry.
func (s *Store) Increment(clientID string, p persona.Persona) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.clients[clientID][p]; ok {
		e.count++
	}
}

func (s *Store) limit(p persona.Persona) int {
	if limit, ok := s.limits[p]; ok {
		return limit
	}
	return p.Config().DailyLimit
}
