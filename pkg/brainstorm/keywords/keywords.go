// Package keywords ranks the tokens of a text set by frequency, for use as
// human-readable cluster labels.
package keywords

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/davesuzuki-hiya/brainstorm-helper/pkg/brainstorm/ingest"
)

// Extractor tallies token frequency across texts and returns the most
// frequent tokens, capitalized.
type Extractor struct {
	tok *ingest.Tokenizer
}

// New creates an extractor using the given tokenizer. Stopword filtering
// and case folding follow the tokenizer's rules.
func New(tok *ingest.Tokenizer) *Extractor {
	return &Extractor{tok: tok}
}

// Top tokenizes all texts, tallies frequencies, and returns up to maxWords
// tokens ordered by descending frequency. Ties are broken by first-seen
// order across the texts, which keeps the output deterministic. Each token
// is returned with its first rune upper-cased.
func (e *Extractor) Top(texts []string, maxWords int) []string {
	if maxWords <= 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for _, text := range texts {
		for _, token := range e.tok.Tokenize(text) {
			if _, ok := counts[token]; !ok {
				firstSeen[token] = len(order)
				order = append(order, token)
			}
			counts[token]++
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > maxWords {
		order = order[:maxWords]
	}

	out := make([]string, len(order))
	for i, token := range order {
		out[i] = capitalize(token)
	}
	return out
}

// capitalize upper-cases the first rune and leaves the rest unchanged.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
