// Package store defines the persistence interface for brainstorm sessions.
// The analysis engine never touches storage; stores only hold the problem
// statement and the ordered idea list that callers feed back into the
// engine on every analysis.
package store

import (
	"context"
	"time"
)

// Store persists sessions and their ordered idea lists.
type Store interface {
	Close() error

	// Sessions
	CreateSession(ctx context.Context, s Session) error
	GetSession(ctx context.Context, id string) (Session, error)
	ListSessions(ctx context.Context) ([]Session, error)
	UpdateProblem(ctx context.Context, sessionID, problemStatement string) error

	// Ideas. AppendIdea adds to the end of the session's list; ListIdeas
	// returns ideas in append order.
	AppendIdea(ctx context.Context, sessionID string, idea Idea) error
	ListIdeas(ctx context.Context, sessionID string) ([]Idea, error)
}

// Session is a stored brainstorm session.
type Session struct {
	ID               string
	ProblemStatement string
	CreatedAt        time.Time
}

// Idea is a stored idea. Field meanings match the engine's Idea type.
type Idea struct {
	ID        string
	Text      string
	Author    string
	CreatedAt time.Time
}
