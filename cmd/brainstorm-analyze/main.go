package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/davesuzuki-hiya/brainstorm-helper/internal/ideafile"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/config"
)

type report struct {
	ProblemStatement string        `json:"problem_statement"`
	TotalIdeas       int           `json:"total_ideas"`
	Clusters         []clusterJSON `json:"clusters"`
	Ideas            []ideaJSON    `json:"ideas"`
	AvgNovelty       *float64      `json:"avg_novelty"`
	MaxNovelty       *int          `json:"max_novelty"`
	TopIdeas         []string      `json:"top_ideas"`
}

type clusterJSON struct {
	ID          string   `json:"id"`
	PrimaryName string   `json:"primary_name"`
	Keywords    []string `json:"keywords"`
	IdeaIDs     []string `json:"idea_ids"`
}

type ideaJSON struct {
	ID              string  `json:"id"`
	Text            string  `json:"text"`
	Author          string  `json:"author,omitempty"`
	Novelty         int     `json:"novelty"`
	Relevance       float64 `json:"relevance"`
	MeanNeighborSim float64 `json:"mean_neighbor_sim"`
}

func main() {
	var (
		input     = flag.String("input", "", "Path to ideas JSONL file (required)")
		problem   = flag.String("problem", "", "Problem statement")
		engineCfg = flag.String("config", "", "Optional: engine tuning YAML")
		stoplist  = flag.String("stoplist", "", "Optional: stoplist YAML replacing the built-in stopwords")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	loader := config.Loader{
		StoplistPath: *stoplist,
		EnginePath:   *engineCfg,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	records, err := ideafile.LoadFromJSONL(*input)
	if err != nil {
		log.Fatalf("load ideas: %v", err)
	}

	ideas := make([]brainstorm.Idea, len(records))
	for i, rec := range records {
		ideas[i] = brainstorm.Idea{
			ID:        rec.ID,
			Text:      rec.Text,
			Author:    rec.Author,
			CreatedAt: rec.CreatedAt,
		}
	}

	result := components.Engine.Analyze(*problem, ideas)

	rep := report{
		ProblemStatement: *problem,
		TotalIdeas:       len(ideas),
		AvgNovelty:       result.Stats.AvgNovelty,
		MaxNovelty:       result.Stats.MaxNovelty,
	}
	for _, c := range result.Clusters {
		rep.Clusters = append(rep.Clusters, clusterJSON{
			ID:          c.ID,
			PrimaryName: c.PrimaryName,
			Keywords:    c.Keywords,
			IdeaIDs:     c.IdeaIDs,
		})
	}
	for _, idea := range ideas {
		detail := result.NoveltyDetail[idea.ID]
		rep.Ideas = append(rep.Ideas, ideaJSON{
			ID:              idea.ID,
			Text:            idea.Text,
			Author:          idea.Author,
			Novelty:         result.NoveltyByID[idea.ID],
			Relevance:       detail.Relevance,
			MeanNeighborSim: detail.MeanNeighborSim,
		})
	}
	for _, idea := range result.TopIdeas {
		rep.TopIdeas = append(rep.TopIdeas, idea.ID)
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}
