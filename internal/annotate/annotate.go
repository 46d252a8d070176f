// Package annotate turns raw text into the annotated sentence strings the
// compression pipeline consumes.
//
// Sentences are segmented and POS-tagged with prose, and every token is
// assigned a weight equal to the relative frequency of its stem across the
// whole sentence cluster, so that words shared by many of the redundant
// input sentences weigh more. The output is word/POS/weight strings that
// flow through the standard preprocessor unchanged.
package annotate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball"
)

// Options configures raw-text annotation.
type Options struct {
	// Lang is the language code; only "en" is supported (the tagger is
	// English-only).
	Lang string
	// Separator joins word, POS and weight in the output (default "/").
	Separator string
}

// Text segments, tags and weights raw text, returning one annotated
// sentence string per input sentence.
func Text(raw string, opts Options) ([]string, error) {
	if opts.Lang == "" {
		opts.Lang = "en"
	}
	if opts.Lang != "en" {
		return nil, fmt.Errorf("raw-text tagging is English-only, got language %q", opts.Lang)
	}
	if opts.Separator == "" {
		opts.Separator = "/"
	}

	doc, err := prose.NewDocument(raw, prose.WithExtraction(false), prose.WithTagging(false))
	if err != nil {
		return nil, fmt.Errorf("segmenting text: %w", err)
	}

	// tokenize and tag each sentence on its own
	var tokenized [][]prose.Token
	for _, sent := range doc.Sentences() {
		text := strings.TrimSpace(sent.Text)
		if text == "" {
			continue
		}
		sentDoc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithSegmentation(false))
		if err != nil {
			return nil, fmt.Errorf("tagging sentence: %w", err)
		}
		tokens := usableTokens(sentDoc.Tokens(), opts.Separator)
		if len(tokens) > 0 {
			tokenized = append(tokenized, tokens)
		}
	}

	weights := stemFrequencies(tokenized)

	out := make([]string, 0, len(tokenized))
	for _, tokens := range tokenized {
		parts := make([]string, len(tokens))
		for i, tok := range tokens {
			w := weights[stem(tok.Text)]
			parts[i] = tok.Text + opts.Separator + tok.Tag + opts.Separator +
				strconv.FormatFloat(w, 'f', 4, 64)
		}
		out = append(out, strings.Join(parts, " "))
	}
	return out, nil
}

// usableTokens drops tokens that cannot survive the word/POS/weight wire
// format: empty text, embedded whitespace, or the separator itself.
func usableTokens(tokens []prose.Token, sep string) []prose.Token {
	out := make([]prose.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Text == "" || strings.ContainsAny(tok.Text, " \t") || strings.Contains(tok.Text, sep) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// stemFrequencies computes the relative frequency of every stem across
// the cluster.
func stemFrequencies(sentences [][]prose.Token) map[string]float64 {
	counts := make(map[string]float64)
	total := 0.0
	for _, tokens := range sentences {
		for _, tok := range tokens {
			counts[stem(tok.Text)]++
			total++
		}
	}
	if total == 0 {
		return counts
	}
	for k := range counts {
		counts[k] /= total
	}
	return counts
}

// stem normalizes a token for frequency counting; tokens the stemmer
// rejects fall back to their lowercased form.
func stem(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil || stemmed == "" {
		return strings.ToLower(word)
	}
	return stemmed
}
