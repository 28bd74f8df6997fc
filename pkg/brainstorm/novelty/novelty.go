// Package novelty assigns each idea a normalized 0-100 score combining how
// distinct it is from its nearest neighbors and how relevant it is to the
// problem statement.
package novelty

import (
	"math"
	"sort"

	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/ingest"
)

const (
	// DefaultNeighborCount is how many of the most similar neighbors feed
	// the redundancy signal.
	DefaultNeighborCount = 3

	// noNeighborSim is the sentinel mean similarity used when an idea has
	// no scored neighbors at all.
	noNeighborSim = 0.5

	// relevanceFloor anchors the relevance weight. A problem statement
	// with no lexical overlap dampens an idea's score instead of zeroing
	// it, so distinctiveness still separates the ideas.
	relevanceFloor = 0.5

	// flatScore is assigned to every idea when the combined values carry
	// no information to discriminate (all equal, including a single idea).
	flatScore = 50
)

// Item is one idea to be scored.
type Item struct {
	ID  string
	Vec ingest.Vector
}

// Detail holds the intermediate values behind an idea's score, kept for
// debugging and reporting.
type Detail struct {
	Relevance       float64 // problem affinity in [0,1], anchored at relevanceFloor
	MeanNeighborSim float64 // mean of the top-k neighbor similarities
	RawNovelty      float64 // 1 - MeanNeighborSim
	Combined        float64 // RawNovelty * Relevance
}

// Result is the outcome of scoring one idea set.
type Result struct {
	// ByID maps idea id to its integer score in [0,100]. Ideas without a
	// vector have no entry.
	ByID map[string]int

	// Details maps idea id to the intermediate scoring values.
	Details map[string]Detail

	// AvgNovelty is the mean of the unrounded normalized scores, nil when
	// no idea was scored.
	AvgNovelty *float64

	// MaxNovelty is the highest rounded score, nil when no idea was scored.
	MaxNovelty *int
}

// Scorer computes relevance-weighted distinctiveness scores.
type Scorer struct {
	neighborCount int
}

// Config tunes the scorer. Zero values fall back to the defaults.
type Config struct {
	NeighborCount int
}

// New creates a scorer.
func New(cfg Config) *Scorer {
	if cfg.NeighborCount <= 0 {
		cfg.NeighborCount = DefaultNeighborCount
	}
	return &Scorer{neighborCount: cfg.NeighborCount}
}

// Score computes a score for every item that has a vector. The problem
// vector may be nil, in which case relevance is 1 for everyone (no problem
// statement means no relevance penalty). Scores are min-max normalized
// across the set; when every combined value is equal the score is a flat 50.
// Rounding is math.Round, half away from zero; all combined values are
// non-negative so this behaves as conventional half-up.
func (s *Scorer) Score(items []Item, problem ingest.Vector) Result {
	res := Result{
		ByID:    make(map[string]int),
		Details: make(map[string]Detail),
	}

	scored := make([]Item, 0, len(items))
	for _, item := range items {
		if len(item.Vec) > 0 {
			scored = append(scored, item)
		}
	}
	if len(scored) == 0 {
		return res
	}

	combined := make([]float64, len(scored))
	for i, item := range scored {
		detail := s.score(item, i, scored, problem)
		res.Details[item.ID] = detail
		combined[i] = detail.Combined
	}

	minC, maxC := combined[0], combined[0]
	for _, c := range combined[1:] {
		if c < minC {
			minC = c
		}
		if c > maxC {
			maxC = c
		}
	}

	var avg float64
	maxScore := 0
	for i, item := range scored {
		normalized := float64(flatScore)
		if maxC != minC {
			normalized = 100 * (combined[i] - minC) / (maxC - minC)
		}
		score := int(math.Round(normalized))
		res.ByID[item.ID] = score
		avg += normalized
		if score > maxScore {
			maxScore = score
		}
	}
	avg /= float64(len(scored))

	res.AvgNovelty = &avg
	res.MaxNovelty = &maxScore
	return res
}

// score computes the detail for scored[i] against its neighbors and the
// problem vector.
func (s *Scorer) score(item Item, idx int, scored []Item, problem ingest.Vector) Detail {
	relevance := 1.0
	if len(problem) > 0 {
		sim := clamp01(ingest.Cosine(item.Vec, problem))
		relevance = relevanceFloor + (1-relevanceFloor)*sim
	}

	sims := make([]float64, 0, len(scored)-1)
	for j, other := range scored {
		if j == idx {
			continue
		}
		sims = append(sims, ingest.Cosine(item.Vec, other.Vec))
	}

	meanSim := noNeighborSim
	if len(sims) > 0 {
		sort.Sort(sort.Reverse(sort.Float64Slice(sims)))
		k := s.neighborCount
		if k > len(sims) {
			k = len(sims)
		}
		var sum float64
		for _, sim := range sims[:k] {
			sum += sim
		}
		meanSim = sum / float64(k)
	}

	raw := 1 - meanSim
	return Detail{
		Relevance:       relevance,
		MeanNeighborSim: meanSim,
		RawNovelty:      raw,
		Combined:        raw * relevance,
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
