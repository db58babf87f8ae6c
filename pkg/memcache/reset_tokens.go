package mem

import (
	"sync"
	"time"
)

type resetEntry struct {
	accountID string
	expiresAt time.Time
}

// ResetTokenStore keeps password reset tokens in process memory. Tokens are
// single use and expire after the configured TTL.
type ResetTokenStore struct {
	mu      sync.RWMutex
	tokens  map[string]resetEntry
	ttl     time.Duration
	nowFunc func() time.Time
}

func NewResetTokenStore(ttl time.Duration) *ResetTokenStore {
	return &ResetTokenStore{
		tokens:  make(map[string]resetEntry),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

func (s *ResetTokenStore) Set(token string, accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = resetEntry{
		accountID: accountID,
		expiresAt: s.nowFunc().Add(s.ttl),
	}
}

// Consume returns the account the token was issued for and deletes it. A
// token can only be consumed once; expired tokens behave as missing.
func (s *ResetTokenStore) Consume(token string) (accountID string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, found := s.tokens[token]
	if !found {
		return "", false
	}
	delete(s.tokens, token)
	if s.nowFunc().After(entry.expiresAt) {
		return "", false
	}
	return entry.accountID, true
}
