package annotate

import (
	"strings"
	"testing"

	"github.com/chriscorrea/condense/internal/sentence"
)

func TestTextRejectsNonEnglish(t *testing.T) {
	if _, err := Text("Bonjour le monde.", Options{Lang: "fr"}); err == nil {
		t.Fatalf("Text() expected error for unsupported language, got none")
	}
}

func TestTextProducesParseableSentences(t *testing.T) {
	raw := "Hillary Clinton wanted to visit China. Hillary Clinton visited China yesterday."

	got, err := Text(raw, Options{})
	if err != nil {
		t.Fatalf("Text() unexpected error: %v", err)
	}
	if len(got) < 2 {
		t.Fatalf("Text() returned %d sentences, want at least 2", len(got))
	}

	// annotated output must flow through the standard preprocessor
	parsed, err := sentence.Parse(got, "/")
	if err != nil {
		t.Fatalf("annotated output does not parse: %v\n%v", err, got)
	}
	for i, sent := range parsed {
		if len(sent) < 4 {
			t.Errorf("sentence %d has only %d tokens", i, len(sent))
		}
	}
}

func TestTextWeightsSharedWordsHigher(t *testing.T) {
	raw := "Clinton visited China. Clinton visited Beijing."

	got, err := Text(raw, Options{})
	if err != nil {
		t.Fatalf("Text() unexpected error: %v", err)
	}
	parsed, err := sentence.Parse(got, "/")
	if err != nil {
		t.Fatalf("annotated output does not parse: %v", err)
	}

	weights := make(map[string]float64)
	for _, sent := range parsed {
		for _, tok := range sent {
			if !tok.Sentinel {
				weights[tok.Word] = tok.Weight
			}
		}
	}
	if weights["clinton"] <= weights["beijing"] {
		t.Errorf("shared word weight %f not above unique word weight %f",
			weights["clinton"], weights["beijing"])
	}
}

func TestTextEmptyInput(t *testing.T) {
	got, err := Text("   ", Options{})
	if err != nil {
		t.Fatalf("Text() unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Text() on blank input returned %d sentences, want 0", len(got))
	}
}

func TestUsableTokensDropsSeparatorCollisions(t *testing.T) {
	got, err := Text("The ratio was 3/4 yesterday.", Options{})
	if err != nil {
		t.Fatalf("Text() unexpected error: %v", err)
	}
	for _, line := range got {
		for _, tok := range strings.Fields(line) {
			if strings.Count(tok, "/") != 2 {
				t.Errorf("token %q does not have exactly two separators", tok)
			}
		}
	}
}
