// Package hashing provides a deterministic, offline embedding generator based
// on feature hashing of content words. It needs no model or network access,
// which makes it the default for local runs and tests.
package hashing

import (
	"context"
	"errors"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// DefaultDimension matches common sentence-embedding models.
const DefaultDimension = 384

// ErrNoTokens is returned for text without any word characters.
var ErrNoTokens = errors.New("text has no tokens")

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "and": {}, "or": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "whose": {}, "where": {}, "when": {},
	"why": {}, "how": {}, "do": {}, "does": {}, "did": {}, "it": {}, "this": {}, "that": {},
	"me": {}, "tell": {}, "please": {}, "can": {}, "you": {},
}

// Generator embeds text as an L2-normalized bag of hashed content words.
type Generator struct {
	dimension int
}

// NewGenerator creates a generator producing vectors of the given dimension.
func NewGenerator(dimension int) *Generator {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &Generator{dimension: dimension}
}

// Generate creates a vector embedding from text.
func (g *Generator) Generate(ctx context.Context, text string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := tokenize(text)
	content := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, stop := stopwords[token]; !stop {
			content = append(content, token)
		}
	}
	// A query made only of stopwords still deserves a stable vector.
	if len(content) == 0 {
		content = tokens
	}
	if len(content) == 0 {
		return nil, ErrNoTokens
	}

	vector := make([]float64, g.dimension)
	for _, token := range content {
		vector[g.bucket(token)]++
	}

	var sum float64
	for _, x := range vector {
		sum += x * x
	}
	norm := math.Sqrt(sum)
	for i := range vector {
		vector[i] /= norm
	}

	return vector, nil
}

// Name returns the generator identifier.
func (g *Generator) Name() string {
	return "hashing"
}

// Dimension returns the vector dimension.
func (g *Generator) Dimension() int {
	return g.dimension
}

func (g *Generator) bucket(token string) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(token))
	return int(h.Sum64() % uint64(g.dimension))
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
