// Package state provides a keyed in-memory session store for Telegram
// conversation flows. Sessions are created on demand and cleared on
// terminal transitions; entries for different users are independent.
package state

import "sync"

// State identifies a finite-state-machine step used in conversations.
type State string

// StateIdle indicates there is no active conversation with the user.
const StateIdle State = "idle"

// Session stores the conversation state and the in-progress draft for a user.
type Session[T any] struct {
	State State
	Data  T
}

// Store keeps per-user sessions keyed by Telegram user id.
type Store[T any] struct {
	mu       sync.RWMutex
	sessions map[int64]*Session[T]
}

// NewStore constructs an empty session store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{sessions: make(map[int64]*Session[T])}
}

// Get returns a copy of the session for a user, or an idle zero session.
func (s *Store[T]) Get(userID int64) Session[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[userID]; ok {
		return *sess
	}
	var zero T
	return Session[T]{State: StateIdle, Data: zero}
}

// Set stores the state and data for a user, creating the session if needed.
func (s *Store[T]) Set(userID int64, st State, data T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session[T]{}
		s.sessions[userID] = sess
	}
	sess.State = st
	sess.Data = data
}

// SetState updates only the state for a user, keeping existing data.
func (s *Store[T]) SetState(userID int64, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session[T]{}
		s.sessions[userID] = sess
	}
	sess.State = st
}

// GetState returns the current state of a user, or StateIdle if none exists.
func (s *Store[T]) GetState(userID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess.State
	}
	return StateIdle
}

// Clear removes the entire session for a user.
func (s *Store[T]) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// InProgress reports whether the user currently has an active state.
func (s *Store[T]) InProgress(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return ok && sess.State != StateIdle
}
