package wordgraph

import (
	"math"
	"reflect"
	"testing"

	"github.com/chriscorrea/condense/internal/sentence"
)

// clusterSentences is the canonical near-duplicate pair used across tests.
var clusterSentences = []string{
	"Hillary/NNP/1.0 Clinton/NNP/1.0 wanted/VBD/1.0 to/TO/1.0 visit/VB/1.0 China/NNP/1.0",
	"Hillary/NNP/1.0 Clinton/NNP/1.0 visited/VBD/1.0 China/NNP/1.0 yesterday/RB/1.0",
}

func buildCluster(t *testing.T, minWords int) *Graph {
	t.Helper()
	g, err := Build(clusterSentences, Options{MinWords: minWords, Lang: "en"})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	return g
}

func TestBuildSentinelInvariant(t *testing.T) {
	g := buildCluster(t, 4)

	if got := g.Variants(sentence.Start + Sep + sentence.Start); got != 1 {
		t.Errorf("start sentinel variants = %d, want 1", got)
	}
	if got := g.Variants(sentence.End + Sep + sentence.End); got != 1 {
		t.Errorf("end sentinel variants = %d, want 1", got)
	}

	// shared content words from distinct sentences merge into one node
	if got := g.Variants("china" + Sep + "NNP"); got != 1 {
		t.Errorf("china variants = %d, want 1", got)
	}
}

func TestSameSentenceExclusion(t *testing.T) {
	raw := []string{
		"the/DT/1.0 cat/NN/1.0 saw/VBD/1.0 the/DT/1.0 cat/NN/1.0",
		"the/DT/1.0 cat/NN/1.0 slept/VBD/1.0",
	}
	g, err := Build(raw, Options{MinWords: 2, Lang: "en"})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	for _, key := range g.Nodes() {
		seen := make(map[int]bool)
		for _, occ := range g.Occurrences(key) {
			if seen[occ[0]] {
				t.Errorf("node %v records two occurrences from sentence %d", key, occ[0])
			}
			seen[occ[0]] = true
		}
	}

	// the in-sentence repeats must have forced a second variant
	if got := g.Variants("cat" + Sep + "NN"); got != 2 {
		t.Errorf("cat variants = %d, want 2", got)
	}
	if got := g.Variants("the" + Sep + "DT"); got != 2 {
		t.Errorf("the variants = %d, want 2", got)
	}
}

func TestEdgeWeight(t *testing.T) {
	raw := []string{
		"tree/NN/1.0 grows/VBZ/1.0",
		"tree/NN/1.0 grows/VBZ/1.0",
	}
	g, err := Build(raw, Options{MinWords: 1, Lang: "en"})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	tree := NodeKey{Label: "tree" + Sep + "NN"}
	grows := NodeKey{Label: "grows" + Sep + "VBZ"}

	// w1 = w2 = 2.0, dist = 1 in both sentences:
	// (2+2) / (1/1 + 1/1) / (2*2) = 0.5
	w, ok := g.Weight(tree, grows)
	if !ok {
		t.Fatalf("edge tree->grows missing")
	}
	if math.Abs(w-0.5) > 1e-9 {
		t.Errorf("edge weight = %f, want 0.5", w)
	}

	// sentinel labels accumulate no term weight, so their edges weigh 0
	start := NodeKey{Label: sentence.Start + Sep + sentence.Start}
	w, ok = g.Weight(start, tree)
	if !ok {
		t.Fatalf("edge start->tree missing")
	}
	if w != 0 {
		t.Errorf("start edge weight = %f, want 0", w)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	g, err := Build(nil, Options{})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if g.NodeCount() != 0 {
		t.Errorf("node count = %d, want 0", g.NodeCount())
	}
	if got := g.Compressions(10); len(got) != 0 {
		t.Errorf("Compressions() on empty graph = %d candidates, want 0", len(got))
	}
}

func TestBuildRejectsMalformedInput(t *testing.T) {
	if _, err := Build([]string{"not-annotated"}, Options{}); err == nil {
		t.Fatalf("Build() expected malformed-token error, got none")
	}
}

func TestBuildUnknownLanguage(t *testing.T) {
	if _, err := Build(clusterSentences, Options{Lang: "xx"}); err == nil {
		t.Fatalf("Build() expected unsupported-language error, got none")
	}
}

func TestDeterminism(t *testing.T) {
	first, err := Build(clusterSentences, Options{MinWords: 4})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	second, err := Build(clusterSentences, Options{MinWords: 4})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	a := first.Compressions(10)
	b := second.Compressions(10)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated runs disagree:\n%v\n%v", a, b)
	}
}

func TestIsPunct(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{",", true},
		{"(", true},
		{`"`, true},
		{"—", true},
		{"a", false},
		{"_", false},
		{"7", false},
		{"...", false},
		{"-start-", false},
	}
	for _, tt := range tests {
		if got := isPunct(tt.word); got != tt.want {
			t.Errorf("isPunct(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
