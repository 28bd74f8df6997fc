// brainstorm-session is an interactive CLI: it reads one idea per line from
// stdin, persists it to a SQLite-backed session, reruns the analysis, and
// prints the updated scores. Lines of the form "author: idea text" attribute
// the idea; bare lines are anonymous.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/config"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/session"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/store"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/store/memstore"
	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/store/sqlite"
)

func main() {
	var (
		dbPath    = flag.String("db", "", "SQLite database path (empty = in-memory only)")
		problem   = flag.String("problem", "", "Problem statement for the session")
		sessionID = flag.String("session", "", "Resume an existing session by id")
		engineCfg = flag.String("config", "", "Optional: engine tuning YAML")
		stoplist  = flag.String("stoplist", "", "Optional: stoplist YAML")
	)
	flag.Parse()

	ctx := context.Background()

	loader := config.Loader{
		StoplistPath: *stoplist,
		EnginePath:   *engineCfg,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	var st store.Store
	if *dbPath != "" {
		st, err = sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
	} else {
		st = memstore.New()
	}
	defer st.Close()

	mgr := session.NewManager(session.Options{
		Store:                st,
		Engine:               components.Engine,
		HighNoveltyThreshold: components.HighNoveltyThreshold,
	})

	id := *sessionID
	if id == "" {
		sess, err := mgr.Create(ctx, *problem)
		if err != nil {
			log.Fatalf("create session: %v", err)
		}
		id = sess.ID
		fmt.Printf("session %s\n", id)
	} else if *problem != "" {
		if err := st.UpdateProblem(ctx, id, *problem); err != nil {
			log.Fatalf("update problem: %v", err)
		}
	}

	fmt.Println("enter one idea per line (\"author: text\" to attribute), ctrl-d to finish")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		author, text := splitAuthor(line)
		res, err := mgr.AddIdea(ctx, id, text, author)
		if err != nil {
			log.Printf("add idea: %v", err)
			continue
		}

		fmt.Printf("  [%d] %s\n", res.Score, res.Idea.Text)
		if res.HighNovelty {
			fmt.Println("  ** high novelty! **")
		}
		printClusters(res.Analysis)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read stdin: %v", err)
	}

	analysis, err := mgr.Analyze(ctx, id)
	if err != nil {
		log.Fatalf("final analysis: %v", err)
	}
	printSummary(analysis)
}

// splitAuthor parses an optional "author: text" prefix.
func splitAuthor(line string) (author, text string) {
	if idx := strings.Index(line, ": "); idx > 0 {
		return line[:idx], line[idx+2:]
	}
	return "", line
}

func printClusters(a brainstorm.AnalysisResult) {
	for _, c := range a.Clusters {
		fmt.Printf("  %s: %s (%d ideas)\n", c.ID, c.PrimaryName, len(c.IdeaIDs))
	}
}

func printSummary(a brainstorm.AnalysisResult) {
	fmt.Printf("\n%d clusters\n", len(a.Clusters))
	printClusters(a)
	if a.Stats.AvgNovelty != nil {
		fmt.Printf("avg novelty %.1f, max %d\n", *a.Stats.AvgNovelty, *a.Stats.MaxNovelty)
	}
	fmt.Println("top ideas:")
	for _, idea := range a.TopIdeas {
		fmt.Printf("  [%d] %s (%s)\n", a.NoveltyByID[idea.ID], idea.Text, idea.Author)
	}
}
