// Package memstore is an in-memory store.Store implementation, used by
// tests and as the default backend when no database path is configured.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/internalerr"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]store.Session
	ideas    map[string][]store.Idea
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		sessions: make(map[string]store.Session),
		ideas:    make(map[string][]store.Idea),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// CreateSession stores a new session. The id must be unique.
func (s *Store) CreateSession(ctx context.Context, sess store.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.ID == "" {
		return fmt.Errorf("create session: %w", internalerr.ErrInvalidInput)
	}
	if _, ok := s.sessions[sess.ID]; ok {
		return fmt.Errorf("create session %s: %w", sess.ID, internalerr.ErrDuplicate)
	}
	s.sessions[sess.ID] = sess
	return nil
}

// GetSession returns a session by id.
func (s *Store) GetSession(ctx context.Context, id string) (store.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return store.Session{}, fmt.Errorf("session %s: %w", id, internalerr.ErrNotFound)
	}
	return sess, nil
}

// ListSessions returns all sessions ordered by creation time.
func (s *Store) ListSessions(ctx context.Context) ([]store.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateProblem replaces the session's problem statement.
func (s *Store) UpdateProblem(ctx context.Context, sessionID, problemStatement string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, internalerr.ErrNotFound)
	}
	sess.ProblemStatement = problemStatement
	s.sessions[sessionID] = sess
	return nil
}

// AppendIdea adds an idea to the end of the session's list.
func (s *Store) AppendIdea(ctx context.Context, sessionID string, idea store.Idea) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return fmt.Errorf("session %s: %w", sessionID, internalerr.ErrNotFound)
	}
	if idea.ID == "" {
		return fmt.Errorf("append idea: %w", internalerr.ErrInvalidInput)
	}
	s.ideas[sessionID] = append(s.ideas[sessionID], idea)
	return nil
}

// ListIdeas returns the session's ideas in append order.
func (s *Store) ListIdeas(ctx context.Context, sessionID string) ([]store.Idea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, internalerr.ErrNotFound)
	}
	ideas := s.ideas[sessionID]
	out := make([]store.Idea, len(ideas))
	copy(out, ideas)
	return out, nil
}
