// Package session implements the caller side of the analysis contract: it
// owns the idea list, assigns ids and timestamps on submission, and applies
// the high-novelty notification policy on top of the engine's scores.
package session

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/internalerr"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/store"
)

const (
	// DefaultHighNoveltyThreshold is the score at or above which a newly
	// added idea triggers a high-novelty notification.
	DefaultHighNoveltyThreshold = 80

	// AnonymousAuthor is assigned when an idea is submitted with a blank
	// author.
	AnonymousAuthor = "Anonymous"
)

// Manager drives brainstorm sessions against a store and an engine.
type Manager struct {
	store     store.Store
	engine    *brainstorm.Engine
	threshold int

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Options configures a Manager. Zero values fall back to the defaults.
type Options struct {
	Store  store.Store
	Engine *brainstorm.Engine

	// HighNoveltyThreshold is the minimum score for the high-novelty
	// notification. Default 80.
	HighNoveltyThreshold int
}

// NewManager creates a session manager.
func NewManager(opts Options) *Manager {
	engine := opts.Engine
	if engine == nil {
		engine = brainstorm.New(brainstorm.Options{})
	}
	threshold := opts.HighNoveltyThreshold
	if threshold <= 0 {
		threshold = DefaultHighNoveltyThreshold
	}
	return &Manager{
		store:     opts.Store,
		engine:    engine,
		threshold: threshold,
		entropy:   ulid.Monotonic(rand.Reader, 0),
	}
}

// Create starts a new session with the given problem statement.
func (m *Manager) Create(ctx context.Context, problemStatement string) (store.Session, error) {
	sess := store.Session{
		ID:               m.newID(),
		ProblemStatement: problemStatement,
		CreatedAt:        time.Now().UTC(),
	}
	if err := m.store.CreateSession(ctx, sess); err != nil {
		return store.Session{}, err
	}
	return sess, nil
}

// AddResult is the outcome of adding one idea.
type AddResult struct {
	Idea     brainstorm.Idea
	Analysis brainstorm.AnalysisResult

	// Score is the new idea's novelty score from the fresh analysis.
	Score int

	// HighNovelty is true when Score reached the notification threshold.
	// Scores are comparable immediately after the append because the
	// analysis always reruns over the full idea list.
	HighNovelty bool
}

// AddIdea trims and appends an idea to the session, reruns the full
// analysis including the new idea, and evaluates the high-novelty policy.
// Empty text is rejected with ErrInvalidInput; a blank author defaults to
// AnonymousAuthor.
func (m *Manager) AddIdea(ctx context.Context, sessionID, text, author string) (AddResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return AddResult{}, fmt.Errorf("add idea: empty text: %w", internalerr.ErrInvalidInput)
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = AnonymousAuthor
	}

	idea := store.Idea{
		ID:        m.newID(),
		Text:      text,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.store.AppendIdea(ctx, sessionID, idea); err != nil {
		return AddResult{}, err
	}

	analysis, err := m.Analyze(ctx, sessionID)
	if err != nil {
		return AddResult{}, err
	}

	score := analysis.NoveltyByID[idea.ID]
	return AddResult{
		Idea:        toEngineIdea(idea),
		Analysis:    analysis,
		Score:       score,
		HighNovelty: score >= m.threshold,
	}, nil
}

// Analyze reruns the full analysis over the session's stored ideas.
func (m *Manager) Analyze(ctx context.Context, sessionID string) (brainstorm.AnalysisResult, error) {
	sess, err := m.store.GetSession(ctx, sessionID)
	if err != nil {
		return brainstorm.AnalysisResult{}, err
	}
	stored, err := m.store.ListIdeas(ctx, sessionID)
	if err != nil {
		return brainstorm.AnalysisResult{}, err
	}

	ideas := make([]brainstorm.Idea, len(stored))
	for i, idea := range stored {
		ideas[i] = toEngineIdea(idea)
	}
	return m.engine.Analyze(sess.ProblemStatement, ideas), nil
}

func (m *Manager) newID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ulid.MustNew(ulid.Now(), m.entropy).String()
}

func toEngineIdea(idea store.Idea) brainstorm.Idea {
	return brainstorm.Idea{
		ID:        idea.ID,
		Text:      idea.Text,
		Author:    idea.Author,
		CreatedAt: idea.CreatedAt,
	}
}
