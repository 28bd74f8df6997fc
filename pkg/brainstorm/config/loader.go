package config

import (
	"fmt"

	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/ingest"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	StoplistPath string
	EnginePath   string
}

// Components holds all loaded configuration components
type Components struct {
	Tokenizer *ingest.Tokenizer
	Engine    *brainstorm.Engine

	// HighNoveltyThreshold is the session-layer notification threshold
	// from the engine file, 0 when unset.
	HighNoveltyThreshold int
}

// Load reads all configuration files and returns initialized components.
// Every path is optional; missing paths fall back to compiled-in defaults.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.StoplistPath != "" {
		stoplist, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Tokenizer = ingest.NewTokenizer(stoplist.Terms)
	} else {
		comp.Tokenizer = ingest.NewDefaultTokenizer()
	}

	opts := brainstorm.Options{Tokenizer: comp.Tokenizer}
	if l.EnginePath != "" {
		eng, err := LoadEngine(l.EnginePath)
		if err != nil {
			return nil, fmt.Errorf("load engine config: %w", err)
		}
		opts.ClusterThreshold = eng.ClusterThreshold
		opts.MaxKeywords = eng.MaxKeywords
		opts.TopIdeas = eng.TopIdeas
		opts.NeighborCount = eng.NeighborCount
		comp.HighNoveltyThreshold = eng.HighNoveltyThreshold
	}
	comp.Engine = brainstorm.New(opts)

	return comp, nil
}
