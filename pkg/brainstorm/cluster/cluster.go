// Package cluster groups idea vectors into thematic clusters using
// single-pass greedy nearest-centroid assignment.
package cluster

import (
	"fmt"
	"strings"

	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/ingest"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/keywords"
)

const (
	// DefaultThreshold is the minimum centroid similarity for an idea to
	// join an existing cluster.
	DefaultThreshold = 0.35

	// DefaultMaxKeywords is the number of label keywords per cluster.
	DefaultMaxKeywords = 3
)

// Item is one idea to be clustered: an opaque id, the raw text (used for
// labeling), and its term-frequency vector.
type Item struct {
	ID   string
	Text string
	Vec  ingest.Vector
}

// Cluster is a group of ideas sharing a lexical theme. IdeaIDs preserve
// assignment order.
type Cluster struct {
	ID          string
	IdeaIDs     []string
	PrimaryName string
	Keywords    []string
}

// Clusterer assigns items to clusters and labels the result.
type Clusterer struct {
	threshold   float64
	maxKeywords int
	extractor   *keywords.Extractor
}

// Config tunes the clusterer. Zero values fall back to the defaults.
type Config struct {
	Threshold   float64
	MaxKeywords int
}

// New creates a clusterer that labels clusters with the given extractor.
func New(extractor *keywords.Extractor, cfg Config) *Clusterer {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = DefaultMaxKeywords
	}
	return &Clusterer{
		threshold:   cfg.Threshold,
		maxKeywords: cfg.MaxKeywords,
		extractor:   extractor,
	}
}

// working is a cluster under construction. The centroid is recomputed from
// copies of the member vectors on every assignment, never aliased to them.
type working struct {
	centroid ingest.Vector
	members  []Item
}

// Assign processes items in input order. Each item joins the most similar
// existing centroid when the similarity reaches the threshold, otherwise it
// seeds a new cluster. Items with no vector are skipped. Clusters are
// returned in creation order.
//
// The assignment is greedy and order-sensitive: a different input order can
// produce different clusters. That is the intended trade-off for a cheap
// single pass.
func (c *Clusterer) Assign(items []Item) []Cluster {
	var groups []*working

	for _, item := range items {
		if len(item.Vec) == 0 {
			continue
		}

		best := -1
		bestSim := 0.0
		for i, g := range groups {
			sim := ingest.Cosine(item.Vec, g.centroid)
			if sim > bestSim {
				bestSim = sim
				best = i
			}
		}

		if best >= 0 && bestSim >= c.threshold {
			g := groups[best]
			g.members = append(g.members, item)
			g.centroid = meanVector(g.members)
			continue
		}

		groups = append(groups, &working{
			centroid: item.Vec.Clone(),
			members:  []Item{item},
		})
	}

	return c.label(groups)
}

// label converts working clusters to their final labeled form.
func (c *Clusterer) label(groups []*working) []Cluster {
	clusters := make([]Cluster, 0, len(groups))
	for i, g := range groups {
		texts := make([]string, len(g.members))
		ids := make([]string, len(g.members))
		for j, m := range g.members {
			texts[j] = m.Text
			ids[j] = m.ID
		}

		kws := c.extractor.Top(texts, c.maxKeywords)
		name := fmt.Sprintf("Theme %d", i+1)
		if len(kws) > 0 {
			name = strings.Join(kws, " · ")
		}

		clusters = append(clusters, Cluster{
			ID:          fmt.Sprintf("c%d", i+1),
			IdeaIDs:     ids,
			PrimaryName: name,
			Keywords:    kws,
		})
	}
	return clusters
}

// meanVector returns the element-wise mean of the member vectors. It
// recomputes from scratch to avoid incremental drift and returns a fresh
// vector so stored idea vectors are never mutated.
func meanVector(members []Item) ingest.Vector {
	if len(members) == 0 {
		return nil
	}
	mean := make(ingest.Vector, len(members[0].Vec))
	for _, m := range members {
		for i, x := range m.Vec {
			mean[i] += x
		}
	}
	n := float64(len(members))
	for i := range mean {
		mean[i] /= n
	}
	return mean
}
