package ingest

import (
	"strings"
)

// DefaultStopwords is the built-in list of common English function words
// filtered during tokenization. Callers can replace it via NewTokenizer.
var DefaultStopwords = []string{
	"a", "an", "the",
	"and", "or", "but", "if", "then", "so",
	"of", "to", "in", "on", "for", "with", "at", "by", "from", "as",
	"into", "about", "over", "after",
	"i", "me", "my", "we", "us", "our", "you", "your",
	"he", "she", "it", "its", "they", "them", "their",
	"this", "that", "these", "those",
	"is", "are", "was", "were", "be", "been", "being",
	"do", "does", "did", "have", "has", "had",
	"will", "would", "can", "could", "should",
	"not", "no",
}

// Tokenizer normalizes raw text into a filtered word sequence.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stopword list.
// A nil list is valid and means no stopword filtering.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// NewDefaultTokenizer creates a tokenizer with the built-in stopword list.
func NewDefaultTokenizer() *Tokenizer {
	return NewTokenizer(DefaultStopwords)
}

// Tokenize splits text into lower-cased tokens, preserving order and
// duplicates. Any rune that is not an ASCII letter or digit acts as a
// separator. Stopwords are dropped. Empty input yields nil.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		if t.isStopword(word) {
			return
		}
		tokens = append(tokens, word)
	}

	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			current.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			current.WriteRune(r + ('a' - 'A'))
		default:
			flush()
		}
	}
	flush()

	return tokens
}

func (t *Tokenizer) isStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}

// AddStopword adds a word to the stopword list.
func (t *Tokenizer) AddStopword(word string) {
	t.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword list.
func (t *Tokenizer) RemoveStopword(word string) {
	delete(t.stopwords, strings.ToLower(word))
}
