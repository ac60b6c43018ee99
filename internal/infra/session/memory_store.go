package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/xavierca1/corporate-ask/internal/usecase"
)

type memoryEntry struct {
	body      []byte
	expiresAt time.Time
}

// MemoryStore is the single-instance fallback used when no Redis address is
// configured. Wizards are stored as JSON so callers never share pointers.
type MemoryStore struct {
	mu      sync.Mutex
	wizards map[string]memoryEntry
	revoked map[string]time.Time
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		wizards: make(map[string]memoryEntry),
		revoked: make(map[string]time.Time),
		ttl:     WizardTTL,
		now:     time.Now,
	}
}

func (s *MemoryStore) SaveWizard(_ context.Context, w *usecase.BookingWizard) error {
	body, err := json.Marshal(w)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizards[w.ID] = memoryEntry{body: body, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) LoadWizard(_ context.Context, id string) (*usecase.BookingWizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.wizards[id]
	if !ok || !s.now().Before(e.expiresAt) {
		delete(s.wizards, id)
		return nil, usecase.ErrBookingNotFound
	}
	e.expiresAt = s.now().Add(s.ttl)
	s.wizards[id] = e

	var w usecase.BookingWizard
	if err := json.Unmarshal(e.body, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *MemoryStore) DeleteWizard(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, id)
	return nil
}

func (s *MemoryStore) Revoke(_ context.Context, tokenID string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if until.After(s.now()) {
		s.revoked[tokenID] = until
	}
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !s.now().Before(until) {
		delete(s.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

// Sweep drops expired wizards and revocations.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.wizards {
		if !now.Before(e.expiresAt) {
			delete(s.wizards, id)
			removed++
		}
	}
	for id, until := range s.revoked {
		if !now.Before(until) {
			delete(s.revoked, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
