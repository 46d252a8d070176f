// Package sentence parses annotated sentence strings into structured tokens.
//
// Input sentences are whitespace-tokenized strings in which every token has
// the form word<sep>POS<sep>weight (e.g. "clinton/NNP/1.0"). Parsing
// lowercases the word form, requires a numeric weight, and brackets each
// sentence with synthetic start/end sentinel tokens. A single malformed
// token aborts the whole sentence set; no partial output is produced.
package sentence

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// Start is the surface form and POS of the synthetic start sentinel.
	Start = "-start-"
	// End is the surface form and POS of the synthetic end sentinel.
	End = "-end-"

	// DefaultSeparator separates word, POS and weight in input tokens.
	DefaultSeparator = "/"
)

// Token is one annotated word: lowercased surface form, POS tag and a
// non-negative weight. Sentinel tokens carry no meaningful weight.
type Token struct {
	Word     string
	POS      string
	Weight   float64
	Sentinel bool
}

// Sentence is an ordered token sequence, always starting with the start
// sentinel and ending with the end sentinel. Immutable once parsed; its
// index within the owning set is used as a back-reference key.
type Sentence []Token

// spaceRE collapses runs of whitespace before splitting on single spaces.
var spaceRE = regexp.MustCompile(` +`)

// Parse converts raw annotated sentence strings into structured sentences.
// sep is the word/POS/weight separator (DefaultSeparator when empty).
// Any token that does not match the word<sep>POS<sep>weight shape fails the
// whole set.
func Parse(raw []string, sep string) ([]Sentence, error) {
	if sep == "" {
		sep = DefaultSeparator
	}

	// weight must be numeric, possibly with a fractional part
	sepRE := regexp.QuoteMeta(sep)
	tokenRE, err := regexp.Compile(`^(.+)` + sepRE + `(.+)` + sepRE + `(\d+(\.\d+)*)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid separator %q: %w", sep, err)
	}

	sentences := make([]Sentence, 0, len(raw))
	for i, line := range raw {
		line = strings.TrimSpace(spaceRE.ReplaceAllString(line, " "))

		parsed := Sentence{{Word: Start, POS: Start, Sentinel: true}}

		if line != "" {
			for _, tok := range strings.Split(line, " ") {
				m := tokenRE.FindStringSubmatch(tok)
				if m == nil {
					return nil, fmt.Errorf("sentence %d: malformed token %q", i, tok)
				}
				weight, err := strconv.ParseFloat(m[3], 64)
				if err != nil {
					return nil, fmt.Errorf("sentence %d: malformed weight in token %q: %w", i, tok, err)
				}
				parsed = append(parsed, Token{
					Word:   strings.ToLower(m[1]),
					POS:    m[2],
					Weight: weight,
				})
			}
		}

		parsed = append(parsed, Token{Word: End, POS: End, Sentinel: true})
		sentences = append(sentences, parsed)
	}

	return sentences, nil
}
