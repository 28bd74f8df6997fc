// Package brainstorm is an in-memory text-analytics engine for idea
// collections. Given a problem statement and a list of ideas it groups the
// ideas into thematic clusters by lexical similarity and assigns each idea
// a normalized novelty score.
//
// Every call recomputes the analysis from scratch over its inputs; the
// engine keeps no state between calls. The pairwise similarity pass is
// O(n²), which is fine for the intended scale of tens to low hundreds of
// ideas.
package brainstorm

import (
	"sort"
	"time"

	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/cluster"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/ingest"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/keywords"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/novelty"
)

// DefaultTopIdeas is the number of ideas in AnalysisResult.TopIdeas.
const DefaultTopIdeas = 5

// Idea is one submitted idea. IDs are caller-assigned opaque strings;
// the engine never generates or interprets them.
type Idea struct {
	ID        string
	Text      string
	Author    string
	CreatedAt time.Time
}

// Cluster is a labeled group of ideas; see the cluster package for how
// membership is decided.
type Cluster = cluster.Cluster

// NoveltyDetail exposes the intermediate values behind one idea's score.
type NoveltyDetail = novelty.Detail

// Stats aggregates the novelty scores of a result. Nil fields mean no idea
// was scored.
type Stats struct {
	AvgNovelty *float64
	MaxNovelty *int
}

// AnalysisResult is the full outcome of one analysis call. It is freshly
// built on every call and shares no state with previous results.
type AnalysisResult struct {
	Clusters      []Cluster
	NoveltyByID   map[string]int
	NoveltyDetail map[string]NoveltyDetail
	Stats         Stats
	TopIdeas      []Idea
}

// Options configures an Engine. Zero values fall back to the defaults.
type Options struct {
	// Tokenizer used for all text processing. Defaults to a tokenizer
	// with the built-in stopword list.
	Tokenizer *ingest.Tokenizer

	// ClusterThreshold is the minimum centroid similarity to join a
	// cluster. Default 0.35.
	ClusterThreshold float64

	// MaxKeywords is the number of label keywords per cluster. Default 3.
	MaxKeywords int

	// NeighborCount is how many nearest neighbors feed the redundancy
	// signal. Default 3.
	NeighborCount int

	// TopIdeas is the size of the top-ideas list. Default 5.
	TopIdeas int
}

// Engine composes the tokenizer, clusterer, and novelty scorer into one
// analysis pipeline. An Engine is immutable after construction and safe
// for concurrent use.
type Engine struct {
	tok       *ingest.Tokenizer
	clusterer *cluster.Clusterer
	scorer    *novelty.Scorer
	topIdeas  int
}

// New creates an Engine.
func New(opts Options) *Engine {
	tok := opts.Tokenizer
	if tok == nil {
		tok = ingest.NewDefaultTokenizer()
	}
	top := opts.TopIdeas
	if top <= 0 {
		top = DefaultTopIdeas
	}
	return &Engine{
		tok: tok,
		clusterer: cluster.New(keywords.New(tok), cluster.Config{
			Threshold:   opts.ClusterThreshold,
			MaxKeywords: opts.MaxKeywords,
		}),
		scorer:   novelty.New(novelty.Config{NeighborCount: opts.NeighborCount}),
		topIdeas: top,
	}
}

// ComputeAnalysis runs a full analysis with default options. It is the
// package-level convenience entry point for callers without tuning needs.
func ComputeAnalysis(problemStatement string, ideas []Idea) AnalysisResult {
	return New(Options{}).Analyze(problemStatement, ideas)
}

// Analyze runs the full pipeline: vocabulary construction, vectorization,
// clustering, novelty scoring, and top-idea selection. It never fails; all
// degenerate inputs produce defined neutral results.
func (e *Engine) Analyze(problemStatement string, ideas []Idea) AnalysisResult {
	result := AnalysisResult{
		Clusters:      []Cluster{},
		NoveltyByID:   map[string]int{},
		NoveltyDetail: map[string]NoveltyDetail{},
		TopIdeas:      []Idea{},
	}
	if len(ideas) == 0 {
		return result
	}

	problemTokens := e.tok.Tokenize(problemStatement)
	hasProblem := len(problemTokens) > 0

	// Corpus order fixes vocabulary indices: problem statement first when
	// it has tokens, then ideas in list order.
	corpus := make([]string, 0, len(ideas)+1)
	if hasProblem {
		corpus = append(corpus, problemStatement)
	}
	for _, idea := range ideas {
		corpus = append(corpus, idea.Text)
	}
	vocab := ingest.BuildVocabulary(corpus, e.tok)

	var problemVec ingest.Vector
	if hasProblem {
		problemVec = ingest.Vectorize(problemStatement, vocab, e.tok)
	}

	clusterItems := make([]cluster.Item, len(ideas))
	noveltyItems := make([]novelty.Item, len(ideas))
	for i, idea := range ideas {
		vec := ingest.Vectorize(idea.Text, vocab, e.tok)
		clusterItems[i] = cluster.Item{ID: idea.ID, Text: idea.Text, Vec: vec}
		noveltyItems[i] = novelty.Item{ID: idea.ID, Vec: vec}
	}

	result.Clusters = e.clusterer.Assign(clusterItems)

	scores := e.scorer.Score(noveltyItems, problemVec)
	result.NoveltyByID = scores.ByID
	result.NoveltyDetail = scores.Details
	result.Stats = Stats{AvgNovelty: scores.AvgNovelty, MaxNovelty: scores.MaxNovelty}

	result.TopIdeas = topByScore(ideas, scores.ByID, e.topIdeas)
	return result
}

// topByScore sorts ideas by descending score, treating missing scores as
// zero and keeping the original order for ties, then truncates to limit.
func topByScore(ideas []Idea, scores map[string]int, limit int) []Idea {
	sorted := make([]Idea, len(ideas))
	copy(sorted, ideas)
	sort.SliceStable(sorted, func(i, j int) bool {
		return scores[sorted[i].ID] > scores[sorted[j].ID]
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
