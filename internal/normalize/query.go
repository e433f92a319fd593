// Package normalize converts raw user queries and scraped price strings
// into canonical forms. Iranian shopping sites mix Persian and Arabic
// code points for the same letters and digits, so both the search side and
// the price side fold variants to one representation before any matching
// or parsing happens.
package normalize

import (
	"errors"
	"net/url"
	"strings"
	"unicode"
)

// ErrEmptyQuery is returned when a query is empty or whitespace-only after
// trimming. Callers should ask the user for a search term instead of
// substituting a default.
var ErrEmptyQuery = errors.New("query is empty after trimming")

// NormalizedQuery is the canonical form of a user search string.
type NormalizedQuery struct {
	// CanonicalText is trimmed, whitespace-collapsed, and character-folded.
	CanonicalText string
	// EncodedForURL is CanonicalText percent-encoded for use as a query
	// parameter value.
	EncodedForURL string
}

// NormalizeQuery produces the canonical matching key for a raw search
// string. English and Persian input take the same path; character folding
// is a no-op on ASCII. Normalization is idempotent.
func NormalizeQuery(raw string) (NormalizedQuery, error) {
	folded := foldRunes(raw, characterFolds)

	// Collapse interior whitespace runs and trim the edges, including
	// zero-width characters that sneak in from copy-pasted Persian text.
	// Interior zero-width non-joiners are meaningful and stay.
	canonical := strings.Join(strings.Fields(folded), " ")
	canonical = strings.TrimFunc(canonical, isEdgeJunk)

	if canonical == "" {
		return NormalizedQuery{}, ErrEmptyQuery
	}

	return NormalizedQuery{
		CanonicalText: canonical,
		EncodedForURL: url.QueryEscape(canonical),
	}, nil
}

func isEdgeJunk(r rune) bool {
	return unicode.IsSpace(r) ||
		r == '\u200B' || // zero width space
		r == '\u200C' || // zero width non-joiner
		r == '\u200D' || // zero width joiner
		r == '\uFEFF' // byte order mark
}
