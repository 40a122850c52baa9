// Default keyword extractor.
//
// Lowercases, strips punctuation, drops stopwords and short tokens, and
// deduplicates while preserving order. Good enough for corpus lookups at
// the expected data scale; swap in a smarter service via the
// KeywordExtractor interface when one is available.

package research

import (
	"context"
	"strings"
	"unicode"
)

// stopwords are tokens that carry no search signal in a legal query.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "am": {}, "an": {},
	"and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"been": {}, "before": {}, "but": {}, "by": {}, "can": {}, "could": {},
	"did": {}, "do": {}, "does": {}, "for": {}, "from": {}, "had": {},
	"has": {}, "have": {}, "how": {}, "i": {}, "if": {}, "in": {},
	"is": {}, "it": {}, "its": {}, "me": {}, "my": {}, "no": {},
	"not": {}, "of": {}, "on": {}, "or": {}, "our": {}, "should": {},
	"so": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "they": {}, "this": {}, "to": {}, "was": {}, "we": {},
	"were": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"who": {}, "why": {}, "will": {}, "with": {}, "would": {}, "you": {},
	"your": {},
}

// minKeywordLen drops fragments like "ok" that survive the stopword list.
const minKeywordLen = 3

// StopwordExtractor is the default KeywordExtractor.
type StopwordExtractor struct{}

// NewStopwordExtractor creates the default keyword extractor.
func NewStopwordExtractor() *StopwordExtractor {
	return &StopwordExtractor{}
}

// ExtractKeywords reduces text to its searchable keywords.
func (e *StopwordExtractor) ExtractKeywords(ctx context.Context, text string) (Keywords, error) {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(tokens))
	keywords := []string{}
	for _, tok := range tokens {
		if len(tok) < minKeywordLen {
			continue
		}
		if _, isStop := stopwords[tok]; isStop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}

	return Keywords{All: keywords}, nil
}

// Verify StopwordExtractor implements KeywordExtractor
var _ KeywordExtractor = (*StopwordExtractor)(nil)
