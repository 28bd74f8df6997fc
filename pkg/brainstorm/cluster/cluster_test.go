package cluster

import (
	"reflect"
	"testing"

	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/ingest"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/keywords"
)

func newTestClusterer(cfg Config) (*Clusterer, *ingest.Tokenizer) {
	tok := ingest.NewDefaultTokenizer()
	return New(keywords.New(tok), cfg), tok
}

func itemsFromTexts(tok *ingest.Tokenizer, texts ...string) []Item {
	vocab := ingest.BuildVocabulary(texts, tok)
	items := make([]Item, len(texts))
	for i, text := range texts {
		items[i] = Item{
			ID:   string(rune('a' + i)),
			Text: text,
			Vec:  ingest.Vectorize(text, vocab, tok),
		}
	}
	return items
}

func TestAssignDisjointTextsSeparateClusters(t *testing.T) {
	c, tok := newTestClusterer(Config{})

	// No shared non-stopword tokens: similarity 0, below threshold.
	clusters := c.Assign(itemsFromTexts(tok, "daily streak rewards", "redesign onboarding flow"))
	if len(clusters) != 2 {
		t.Fatalf("clusters = %d, expected 2", len(clusters))
	}
}

func TestAssignIdenticalTextsSameCluster(t *testing.T) {
	c, tok := newTestClusterer(Config{})

	clusters := c.Assign(itemsFromTexts(tok, "daily streak rewards", "daily streak rewards"))
	if len(clusters) != 1 {
		t.Fatalf("clusters = %d, expected 1", len(clusters))
	}
	if !reflect.DeepEqual(clusters[0].IdeaIDs, []string{"a", "b"}) {
		t.Errorf("IdeaIDs = %v, expected assignment order [a b]", clusters[0].IdeaIDs)
	}
}

func TestAssignOverlappingTextsJoin(t *testing.T) {
	c, tok := newTestClusterer(Config{})

	// "daily" and "streak" overlap strongly; the third shares nothing.
	clusters := c.Assign(itemsFromTexts(tok,
		"daily streak rewards",
		"daily streak bonus program",
		"redesign the onboarding flow completely",
	))
	if len(clusters) != 2 {
		t.Fatalf("clusters = %d, expected 2", len(clusters))
	}
	if !reflect.DeepEqual(clusters[0].IdeaIDs, []string{"a", "b"}) {
		t.Errorf("first cluster = %v, expected [a b]", clusters[0].IdeaIDs)
	}
	if !reflect.DeepEqual(clusters[1].IdeaIDs, []string{"c"}) {
		t.Errorf("second cluster = %v, expected [c]", clusters[1].IdeaIDs)
	}
}

func TestAssignDeterministic(t *testing.T) {
	c, tok := newTestClusterer(Config{})
	items := itemsFromTexts(tok,
		"cache invalidation strategy",
		"cache warming on deploy",
		"user onboarding survey",
		"survey incentives program",
	)

	first := c.Assign(items)
	for i := 0; i < 10; i++ {
		again := c.Assign(items)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("cluster assignment changed between runs")
		}
	}
}

func TestAssignSkipsMissingVectors(t *testing.T) {
	c, tok := newTestClusterer(Config{})

	items := itemsFromTexts(tok, "daily streak rewards")
	items = append(items, Item{ID: "novec", Text: "whatever"})

	clusters := c.Assign(items)
	if len(clusters) != 1 {
		t.Fatalf("clusters = %d, expected 1", len(clusters))
	}
	for _, cl := range clusters {
		for _, id := range cl.IdeaIDs {
			if id == "novec" {
				t.Error("item without a vector should be skipped")
			}
		}
	}
}

func TestAssignZeroVectorGetsOwnCluster(t *testing.T) {
	c, tok := newTestClusterer(Config{})

	// Stopword-only text vectorizes to all zeros but is still present.
	items := itemsFromTexts(tok, "daily streak rewards", "the and of")
	clusters := c.Assign(items)
	if len(clusters) != 2 {
		t.Fatalf("clusters = %d, expected 2", len(clusters))
	}
	if !reflect.DeepEqual(clusters[1].IdeaIDs, []string{"b"}) {
		t.Errorf("zero-vector idea should form its own cluster, got %v", clusters[1].IdeaIDs)
	}
}

func TestCentroidNotAliasedToMemberVector(t *testing.T) {
	c, tok := newTestClusterer(Config{})

	items := itemsFromTexts(tok, "alpha beta", "alpha beta", "alpha gamma")
	original := items[0].Vec.Clone()

	c.Assign(items)

	if !reflect.DeepEqual(items[0].Vec, original) {
		t.Error("clustering must not mutate input vectors")
	}
}

func TestClusterLabeling(t *testing.T) {
	c, tok := newTestClusterer(Config{})

	clusters := c.Assign(itemsFromTexts(tok, "streak streak rewards daily"))
	if len(clusters) != 1 {
		t.Fatalf("clusters = %d, expected 1", len(clusters))
	}

	cl := clusters[0]
	if len(cl.Keywords) != 3 {
		t.Fatalf("keywords = %v, expected 3 entries", cl.Keywords)
	}
	if cl.Keywords[0] != "Streak" {
		t.Errorf("top keyword = %s, expected Streak", cl.Keywords[0])
	}
	if cl.PrimaryName != "Streak · Rewards · Daily" {
		t.Errorf("PrimaryName = %q, expected keywords joined with separator", cl.PrimaryName)
	}
}

func TestClusterLabelFallback(t *testing.T) {
	c, tok := newTestClusterer(Config{})

	// Zero vector, no keyword tokens at all.
	clusters := c.Assign(itemsFromTexts(tok, "the and of"))
	if len(clusters) != 1 {
		t.Fatalf("clusters = %d, expected 1", len(clusters))
	}
	if clusters[0].PrimaryName != "Theme 1" {
		t.Errorf("PrimaryName = %q, expected fallback Theme 1", clusters[0].PrimaryName)
	}
	if len(clusters[0].Keywords) != 0 {
		t.Errorf("Keywords = %v, expected none", clusters[0].Keywords)
	}
}

func TestAssignEmptyInput(t *testing.T) {
	c, _ := newTestClusterer(Config{})

	clusters := c.Assign(nil)
	if len(clusters) != 0 {
		t.Errorf("clusters = %d, expected 0", len(clusters))
	}
}
