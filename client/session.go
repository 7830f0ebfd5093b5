package client

import "sync"

// Session holds the bearer token attached to outgoing requests.
// It lives only in memory; nothing is written to disk.
type Session struct {
	mu    sync.RWMutex
	token string
}

// Token returns the current token and whether one is set.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Set stores token for subsequent requests. Requests already in flight keep
// whatever header they were sent with.
func (s *Session) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Clear removes the stored token.
func (s *Session) Clear() {
	s.Set("")
}
