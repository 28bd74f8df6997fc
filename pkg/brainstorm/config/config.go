package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// Engine represents the analysis tuning configuration. Zero values fall
// back to the compiled-in defaults.
type Engine struct {
	ClusterThreshold     float64 `yaml:"cluster_threshold"`
	MaxKeywords          int     `yaml:"max_keywords"`
	TopIdeas             int     `yaml:"top_ideas"`
	NeighborCount        int     `yaml:"neighbor_count"`
	HighNoveltyThreshold int     `yaml:"high_novelty_threshold"`
}

// LoadEngine loads engine tuning from a YAML file
func LoadEngine(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var eng Engine
	if err := yaml.Unmarshal(data, &eng); err != nil {
		return nil, err
	}

	return &eng, nil
}
