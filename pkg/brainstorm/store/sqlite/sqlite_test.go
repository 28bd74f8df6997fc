package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/internalerr"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()
	st, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	created := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	sess := store.Session{
		ID:               "s1",
		ProblemStatement: "reduce churn",
		CreatedAt:        created,
	}
	if err := st.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	got, err := st.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.ProblemStatement != "reduce churn" {
		t.Errorf("ProblemStatement = %q", got.ProblemStatement)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, expected %v", got.CreatedAt, created)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.GetSession(context.Background(), "missing"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("error = %v, expected ErrNotFound", err)
	}
}

func TestUpdateProblem(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	st.CreateSession(ctx, store.Session{ID: "s1", CreatedAt: time.Now().UTC()})
	if err := st.UpdateProblem(ctx, "s1", "new statement"); err != nil {
		t.Fatalf("UpdateProblem: %v", err)
	}
	got, _ := st.GetSession(ctx, "s1")
	if got.ProblemStatement != "new statement" {
		t.Errorf("ProblemStatement = %q", got.ProblemStatement)
	}

	if err := st.UpdateProblem(ctx, "missing", "x"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("error = %v, expected ErrNotFound", err)
	}
}

func TestAppendAndListIdeasOrdered(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	st.CreateSession(ctx, store.Session{ID: "s1", CreatedAt: time.Now().UTC()})

	texts := []string{"first idea", "second idea", "third idea"}
	for i, text := range texts {
		idea := store.Idea{
			ID:        []string{"i1", "i2", "i3"}[i],
			Text:      text,
			Author:    "Anonymous",
			CreatedAt: time.Now().UTC(),
		}
		if err := st.AppendIdea(ctx, "s1", idea); err != nil {
			t.Fatalf("AppendIdea(%d): %v", i, err)
		}
	}

	ideas, err := st.ListIdeas(ctx, "s1")
	if err != nil {
		t.Fatalf("ListIdeas: %v", err)
	}
	if len(ideas) != 3 {
		t.Fatalf("ListIdeas = %d ideas, expected 3", len(ideas))
	}
	for i, text := range texts {
		if ideas[i].Text != text {
			t.Errorf("ideas[%d].Text = %q, expected %q", i, ideas[i].Text, text)
		}
	}
}

func TestAppendIdeaUnknownSession(t *testing.T) {
	st := openTestStore(t)
	err := st.AppendIdea(context.Background(), "missing", store.Idea{ID: "i1", CreatedAt: time.Now()})
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("error = %v, expected ErrNotFound", err)
	}
}

func TestListIdeasEmptySession(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	st.CreateSession(ctx, store.Session{ID: "s1", CreatedAt: time.Now().UTC()})
	ideas, err := st.ListIdeas(ctx, "s1")
	if err != nil {
		t.Fatalf("ListIdeas: %v", err)
	}
	if len(ideas) != 0 {
		t.Errorf("ListIdeas = %v, expected none", ideas)
	}
}

func TestReopenPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	st, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	st.CreateSession(ctx, store.Session{ID: "s1", ProblemStatement: "p", CreatedAt: time.Now().UTC()})
	st.AppendIdea(ctx, "s1", store.Idea{ID: "i1", Text: "survives restart", CreatedAt: time.Now().UTC()})
	st.Close()

	st, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()

	ideas, err := st.ListIdeas(ctx, "s1")
	if err != nil {
		t.Fatalf("ListIdeas after reopen: %v", err)
	}
	if len(ideas) != 1 || ideas[0].Text != "survives restart" {
		t.Errorf("ideas after reopen = %v", ideas)
	}
}
