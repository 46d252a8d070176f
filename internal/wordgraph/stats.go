package wordgraph

import "github.com/chriscorrea/condense/internal/sentence"

// statistics aggregates per-label counts over the full sentence set before
// graph construction: the number of distinct sentences containing a label,
// and the cumulative externally supplied weight of its occurrences.
// Sentinel tokens count toward frequency but never accumulate weight.
// Read-only once built.
type statistics struct {
	freq   map[string]int
	weight map[string]float64
}

func computeStatistics(sentences []sentence.Sentence) statistics {
	seen := make(map[string]map[int]struct{})
	weight := make(map[string]float64)

	for i, sent := range sentences {
		for _, tok := range sent {
			lbl := label(tok)
			if seen[lbl] == nil {
				seen[lbl] = make(map[int]struct{})
			}
			seen[lbl][i] = struct{}{}

			if tok.Sentinel {
				continue
			}
			weight[lbl] += tok.Weight
		}
	}

	freq := make(map[string]int, len(seen))
	for lbl, ids := range seen {
		freq[lbl] = len(ids)
	}

	return statistics{freq: freq, weight: weight}
}
