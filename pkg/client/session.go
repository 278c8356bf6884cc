package client

import (
	"sync"
	"time"
)

// Session holds the bearer token for the signed-in user. A 401 from any
// request clears it and fires the expiry callback, so callers can prompt
// for a fresh login.
type Session struct {
	mu        sync.RWMutex
	token     string
	email     string
	expiresAt time.Time
	onExpired func()
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return false
	}
	return s.expiresAt.IsZero() || time.Now().Before(s.expiresAt)
}

// OnExpired registers a callback invoked when the server rejects the
// session token.
func (s *Session) OnExpired(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpired = fn
}

func (s *Session) start(token, email string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.email = email
	s.expiresAt = expiresAt
}

func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.email = ""
	s.expiresAt = time.Time{}
}

func (s *Session) expire() {
	s.mu.Lock()
	hadToken := s.token != ""
	s.token = ""
	s.email = ""
	s.expiresAt = time.Time{}
	fn := s.onExpired
	s.mu.Unlock()

	if hadToken && fn != nil {
		fn()
	}
}
