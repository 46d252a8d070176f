package keyphrase

import (
	"sort"
	"strings"

	"github.com/chriscorrea/condense/internal/wordgraph"
)

// Rerank recombines the compression candidates with the keyphrase scores.
// Each candidate's cumulative weight is normalized by its length times
// (1 + the summed scores of every surviving keyphrase whose surface form
// is a substring of the compression), and the result is sorted ascending
// by the normalized score.
func (r *Reranker) Rerank() []wordgraph.Candidate {
	out := make([]wordgraph.Candidate, 0, len(r.nbest))

	for _, c := range r.nbest {
		if len(c.Words) == 0 {
			continue
		}
		surface := c.Surface()

		// exact-substring coverage: knowingly coarse (a phrase may match
		// across word boundaries) but preserved from the reference method
		coverage := 1.0
		for phrase, score := range r.phraseScores {
			if strings.Contains(surface, phrase) {
				coverage += score
			}
		}

		score := c.Weight / (float64(len(c.Words)) * coverage)
		out = append(out, wordgraph.Candidate{Weight: score, Words: c.Words})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight < out[j].Weight
	})
	return out
}
