// brainstorm-import converts an HTML notes export into the ideas JSONL
// format that brainstorm-analyze reads. Each list item (<li>) in the input
// becomes one idea; markup inside the item is stripped.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/davesuzuki-hiya/brainstorm-helper/internal/ideafile"
)

func main() {
	var (
		input  = flag.String("input", "", "Path to HTML file (required)")
		output = flag.String("output", "ideas.jsonl", "Output JSONL path")
		author = flag.String("author", "", "Author to attribute imported ideas to")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	items, err := extractListItems(string(data))
	if err != nil {
		log.Fatalf("parse html: %v", err)
	}
	if len(items) == 0 {
		log.Fatalf("no list items found in %s", *input)
	}

	now := time.Now().UTC()
	records := make([]ideafile.Record, 0, len(items))
	for i, text := range items {
		records = append(records, ideafile.Record{
			ID:        fmt.Sprintf("i%d", i+1),
			Text:      text,
			Author:    *author,
			CreatedAt: now,
		})
	}

	if err := ideafile.WriteJSONL(*output, records); err != nil {
		log.Fatalf("write output: %v", err)
	}
	log.Printf("imported %d ideas to %s", len(records), *output)
}

// extractListItems returns the text content of every <li> element, with
// inner markup stripped and whitespace collapsed. Empty items are dropped.
func extractListItems(src string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}

	var items []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" {
			if text := collapseSpace(nodeText(n)); text != "" {
				items = append(items, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return items, nil
}

// nodeText concatenates all text nodes under n.
func nodeText(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
