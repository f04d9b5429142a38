package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/niaone/backend/internal/models"
)

// prependActivityLocked inserts at the head and evicts past ActivityCap.
// Callers must hold s.mu.
func (s *Store) prependActivityLocked(e models.ActivityEntry) {
	s.activity = append([]models.ActivityEntry{e}, s.activity...)
	if len(s.activity) > ActivityCap {
		s.activity = s.activity[:ActivityCap]
	}
}

// ListActivity returns up to limit entries, newest first. limit <= 0 means all.
func (s *Store) ListActivity(limit int) []models.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.activity)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.ActivityEntry, n)
	copy(out, s.activity[:n])
	return out
}

// ListActivityByAccount returns up to limit of the account's entries, newest
// first. limit <= 0 means all retained.
func (s *Store) ListActivityByAccount(accountID uuid.UUID, limit int) []models.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ActivityEntry
	for _, e := range s.activity {
		if e.AccountID != accountID {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// CountActivitySince counts entries at or after the given cutoff.
func (s *Store) CountActivitySince(cutoff time.Time) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, e := range s.activity {
		if !e.At.Before(cutoff) {
			n++
		}
	}
	return n
}
