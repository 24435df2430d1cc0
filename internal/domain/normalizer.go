package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
	"unicode"
)

// Normalizer canonicalizes query text so trivially different strings share a key.
// It is safe for concurrent use.
type Normalizer struct {
	stripPunctuation bool
	sortTokens       bool
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithPunctuationStripping removes punctuation runes before tokenizing.
func WithPunctuationStripping() NormalizerOption {
	return func(n *Normalizer) {
		n.stripPunctuation = true
	}
}

// WithTokenSorting makes normalization word-order-insensitive.
func WithTokenSorting() NormalizerOption {
	return func(n *Normalizer) {
		n.sortTokens = true
	}
}

// NewNormalizer creates a normalizer. Without options it trims, lowercases
// and collapses whitespace runs to single spaces.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize returns the canonical form of text.
func (n *Normalizer) Normalize(text string) string {
	normalized := strings.ToLower(text)

	if n.stripPunctuation {
		normalized = strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) {
				return -1
			}
			return r
		}, normalized)
	}

	tokens := strings.Fields(normalized)
	if n.sortTokens {
		slices.Sort(tokens)
	}

	return strings.Join(tokens, " ")
}

// Key returns the hex SHA-256 digest of the normalized text.
func (n *Normalizer) Key(text string) string {
	hash := sha256.Sum256([]byte(n.Normalize(text)))
	return hex.EncodeToString(hash[:])
}
