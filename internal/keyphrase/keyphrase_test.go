package keyphrase

import (
	"math"
	"strings"
	"testing"

	"github.com/chriscorrea/condense/internal/sentence"
	"github.com/chriscorrea/condense/internal/wordgraph"
)

func parseSentences(t *testing.T, raw ...string) []sentence.Sentence {
	t.Helper()
	sents, err := sentence.Parse(raw, "/")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	return sents
}

func newReranker(t *testing.T, nbest []wordgraph.Candidate, raw ...string) *Reranker {
	t.Helper()
	r, err := NewReranker(parseSentences(t, raw...), nbest, Options{})
	if err != nil {
		t.Fatalf("NewReranker() unexpected error: %v", err)
	}
	return r
}

func TestPropagateSymmetricPair(t *testing.T) {
	// two nodes joined by one symmetric unit edge sit exactly at the
	// TextRank fixed point
	r := newReranker(t, nil, "apple/NN/1.0 pie/NN/1.0")

	for _, word := range []string{"apple", "pie"} {
		score, ok := r.WordScore(word, "NN")
		if !ok {
			t.Fatalf("WordScore(%q) missing node", word)
		}
		if math.Abs(score-1.0) > 1e-6 {
			t.Errorf("WordScore(%q) = %f, want 1.0", word, score)
		}
	}
}

func TestPropagateIsolatedNode(t *testing.T) {
	// VBZ is outside the syntactic filter, so apple has no co-occurring
	// partner and must keep its initial score
	r := newReranker(t, nil, "apple/NN/1.0 runs/VBZ/1.0")

	score, ok := r.WordScore("apple", "NN")
	if !ok {
		t.Fatalf("WordScore(apple) missing node")
	}
	if score != 1.0 {
		t.Errorf("isolated node score = %f, want exactly 1.0", score)
	}
}

func TestWordScoreUnknown(t *testing.T) {
	r := newReranker(t, nil, "apple/NN/1.0 pie/NN/1.0")
	if _, ok := r.WordScore("zeppelin", "NN"); ok {
		t.Errorf("WordScore() reported a node that was never added")
	}
}

func TestCandidateExtraction(t *testing.T) {
	r := newReranker(t, nil,
		"the/DT/1.0 quick/JJ/1.0 brown/JJ/1.0 fox/NN/1.0 jumped/VBD/1.0")

	phrases := r.Phrases()
	if _, ok := phrases["quick brown fox"]; !ok {
		t.Errorf("phrases = %v, want %q among them", phrases, "quick brown fox")
	}
	if _, ok := phrases["the quick brown fox"]; ok {
		t.Errorf("determiner leaked into a keyphrase")
	}
}

func TestStopwordsExcludedFromPhrases(t *testing.T) {
	// "own" carries an adjective tag but is a stopword; retagging must keep
	// it out of both the phrase and the co-occurrence graph
	r := newReranker(t, nil, "own/JJ/1.0 house/NN/1.0 burned/VBD/1.0")

	phrases := r.Phrases()
	if _, ok := phrases["own house"]; ok {
		t.Errorf("stopword survived the retagging: %v", phrases)
	}
	if _, ok := phrases["house"]; !ok {
		t.Errorf("phrases = %v, want %q among them", phrases, "house")
	}
	if _, ok := r.WordScore("own", "JJ"); ok {
		t.Errorf("stopword was added to the co-occurrence graph")
	}
}

func TestClusteringRemovesRedundancy(t *testing.T) {
	r := newReranker(t, nil,
		"giant/JJ/1.0 tortoise/NN/1.0 sleeps/VBZ/1.0",
		"pinta/NNP/1.0 island/NNP/1.0 giant/NNP/1.0 tortoise/NNP/1.0 sleeps/VBZ/1.0")

	phrases := r.Phrases()
	_, short := phrases["giant tortoise"]
	_, long := phrases["pinta island giant tortoise"]
	if short && long {
		t.Errorf("clustering kept both the phrase and its superset: %v", phrases)
	}
	if !short && !long {
		t.Errorf("clustering dropped every member of the cluster: %v", phrases)
	}
}

func TestNoPhraseIsSubstringOfAnother(t *testing.T) {
	r := newReranker(t, nil,
		"nuclear/JJ/1.0 power/NN/1.0 worries/VBZ/1.0 iran/NNP/1.0",
		"iran/NNP/1.0 expands/VBZ/1.0 nuclear/JJ/1.0 power/NN/1.0 plants/NNS/1.0")

	phrases := r.Phrases()
	for a := range phrases {
		for b := range phrases {
			if a != b && strings.Contains(b, a) {
				t.Errorf("phrase %q is a substring of kept phrase %q", a, b)
			}
		}
	}
}

func TestRerank(t *testing.T) {
	nbest := []wordgraph.Candidate{
		{Weight: 1.0, Words: []wordgraph.WordTag{
			{Word: "economy", POS: "NN"},
			{Word: "talks", POS: "NNS"},
			{Word: "continue", POS: "VB"},
		}},
		{Weight: 1.0, Words: []wordgraph.WordTag{
			{Word: "hillary", POS: "NNP"},
			{Word: "clinton", POS: "NNP"},
			{Word: "visited", POS: "VBD"},
		}},
	}
	r := newReranker(t, nbest,
		"hillary/NNP/1.0 clinton/NNP/1.0 visited/VBD/1.0 beijing/NNP/1.0",
		"hillary/NNP/1.0 clinton/NNP/1.0 arrived/VBD/1.0 in/IN/1.0 beijing/NNP/1.0")

	if _, ok := r.Phrases()["hillary clinton"]; !ok {
		t.Fatalf("expected keyphrase %q, got %v", "hillary clinton", r.Phrases())
	}

	got := r.Rerank()
	if len(got) != 2 {
		t.Fatalf("Rerank() returned %d candidates, want 2", len(got))
	}

	// equal raw weight and length: keyphrase coverage must pull the
	// clinton candidate ahead
	if got[0].Words[0].Word != "hillary" {
		t.Errorf("Rerank() first candidate = %q", wordgraph.Candidate{Words: got[0].Words}.Surface())
	}
	if got[0].Weight >= got[1].Weight {
		t.Errorf("normalized scores not ascending: %f then %f", got[0].Weight, got[1].Weight)
	}
}

func TestRerankSkipsEmptyCandidates(t *testing.T) {
	nbest := []wordgraph.Candidate{
		{Weight: 0.5},
		{Weight: 1.0, Words: []wordgraph.WordTag{{Word: "apple", POS: "NN"}}},
	}
	r := newReranker(t, nbest, "apple/NN/1.0 pie/NN/1.0")

	got := r.Rerank()
	if len(got) != 1 {
		t.Fatalf("Rerank() returned %d candidates, want 1", len(got))
	}
}
