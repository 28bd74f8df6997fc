package ingest

// Vocabulary maps normalized tokens to dense integer indices, assigned in
// first-seen order across a corpus. Indices are only stable within the
// analysis call that built the vocabulary.
type Vocabulary struct {
	indices map[string]int
	tokens  []string
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{indices: make(map[string]int)}
}

// BuildVocabulary tokenizes each text in order and assigns every token not
// yet seen the next index starting at 0. Deterministic for a given text
// order.
func BuildVocabulary(texts []string, tok *Tokenizer) *Vocabulary {
	v := NewVocabulary()
	for _, text := range texts {
		for _, token := range tok.Tokenize(text) {
			v.add(token)
		}
	}
	return v
}

func (v *Vocabulary) add(token string) {
	if _, ok := v.indices[token]; ok {
		return
	}
	v.indices[token] = len(v.tokens)
	v.tokens = append(v.tokens, token)
}

// Index returns the index assigned to a token.
func (v *Vocabulary) Index(token string) (int, bool) {
	idx, ok := v.indices[token]
	return idx, ok
}

// Size returns the number of distinct tokens.
func (v *Vocabulary) Size() int {
	return len(v.tokens)
}

// Tokens returns the vocabulary tokens in index order.
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}
