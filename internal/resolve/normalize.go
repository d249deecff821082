// Package resolve links pricing benchmarks to ports by fuzzy-matching
// benchmark descriptions against port names. There is no shared key
// between the two data sets; the link is recovered from free text.
package resolve

import "strings"

// DefaultNoiseTokens are the trade-term codes and filler words stripped
// from labels before matching. Matching is case-sensitive, so these are
// removed exactly as written.
var DefaultNoiseTokens = []string{
	"FOB", "CIF", "CFR", "DES",
	"Port Charge", "Disport Charge",
	"Cargo", "Blend", "Strip", "vs",
}

// Normalizer strips noise tokens and literal periods from free-text
// labels to improve match quality. It is a pure, deterministic transform.
type Normalizer struct {
	tokens []string
}

// NewNormalizer creates a normalizer with the given noise tokens.
// Passing nil uses DefaultNoiseTokens.
func NewNormalizer(tokens []string) *Normalizer {
	if tokens == nil {
		tokens = DefaultNoiseTokens
	}
	return &Normalizer{tokens: tokens}
}

// Clean removes all periods and every configured noise token, then trims
// surrounding whitespace. No case folding is applied; the fuzzy scorer
// handles case on its side.
func (n *Normalizer) Clean(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	for _, tok := range n.tokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	return strings.TrimSpace(s)
}
