package keyphrase

import (
	"sort"
	"strings"
)

// generateCandidates mines keyphrase candidates from the sentence views:
// maximal runs of consecutive filtered tokens whose concatenated POS tag
// string matches every syntactic pattern.
func (r *Reranker) generateCandidates() {
	r.phrases = make(map[string][]wordPOS)

	for _, view := range r.views {
		var run []wordPOS
		for _, wp := range view {
			if r.profile.InFilter(wp.pos) {
				run = append(run, wp)
				continue
			}
			r.flushRun(run)
			run = nil
		}
		r.flushRun(run)
	}
}

// flushRun records a completed token run as a candidate if it conforms to
// the syntactic patterns.
func (r *Reranker) flushRun(run []wordPOS) {
	if len(run) == 0 || !r.matchesPatterns(run) {
		return
	}
	words := make([]string, len(run))
	for i, wp := range run {
		words[i] = wp.word
	}
	r.phrases[strings.Join(words, " ")] = append([]wordPOS(nil), run...)
}

// matchesPatterns requires the concatenated POS tags of the run to match
// every configured pattern.
func (r *Reranker) matchesPatterns(run []wordPOS) bool {
	var tags strings.Builder
	for _, wp := range run {
		tags.WriteString(wp.pos)
	}
	for _, re := range r.patterns {
		if !re.MatchString(tags.String()) {
			return false
		}
	}
	return true
}

// scoreCandidates computes each candidate's score: the sum of its word
// TextRank scores normalized by (word count + 1).
func (r *Reranker) scoreCandidates() {
	r.phraseScores = make(map[string]float64, len(r.phrases))
	for surface, run := range r.phrases {
		score := 0.0
		for _, wp := range run {
			if i, ok := r.index[wp]; ok {
				score += r.scores[i]
			}
		}
		r.phraseScores[surface] = score / float64(len(run)+1)
	}
}

// cluster removes redundant candidates. Candidates are visited by
// descending word count and greedily attached to the first cluster whose
// representative's word set covers theirs; each cluster keeps only its
// best-scoring member, and across cluster winners (by descending score)
// any winner that is a literal substring of an already-kept one is
// dropped. Everything else is removed from the candidate and score maps.
func (r *Reranker) cluster() {
	surfaces := make([]string, 0, len(r.phrases))
	for surface := range r.phrases {
		surfaces = append(surfaces, surface)
	}
	sort.Slice(surfaces, func(i, j int) bool {
		li, lj := len(r.phrases[surfaces[i]]), len(r.phrases[surfaces[j]])
		if li != lj {
			return li > lj
		}
		return surfaces[i] < surfaces[j]
	})

	type cluster struct {
		repWords map[string]struct{}
		members  []string
	}
	var clusters []*cluster

	for _, surface := range surfaces {
		words := strings.Split(surface, " ")

		attached := false
		for _, c := range clusters {
			if coveredBy(words, c.repWords) {
				c.members = append(c.members, surface)
				attached = true
				break
			}
		}
		if !attached {
			rep := make(map[string]struct{}, len(words))
			for _, w := range words {
				rep[w] = struct{}{}
			}
			clusters = append(clusters, &cluster{repWords: rep, members: []string{surface}})
		}
	}

	// best-scoring member per cluster
	winners := make([]string, 0, len(clusters))
	for _, c := range clusters {
		best := c.members[0]
		for _, m := range c.members[1:] {
			if r.phraseScores[m] > r.phraseScores[best] {
				best = m
			}
		}
		winners = append(winners, best)
	}

	// substring pruning across winners, highest score first
	sort.SliceStable(winners, func(i, j int) bool {
		return r.phraseScores[winners[i]] > r.phraseScores[winners[j]]
	})
	kept := make([]string, 0, len(winners))
	for _, w := range winners {
		redundant := false
		for _, prev := range kept {
			if strings.Contains(prev, w) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, w)
		}
	}

	keptSet := make(map[string]struct{}, len(kept))
	for _, w := range kept {
		keptSet[w] = struct{}{}
	}
	for surface := range r.phrases {
		if _, ok := keptSet[surface]; !ok {
			delete(r.phrases, surface)
			delete(r.phraseScores, surface)
		}
	}
}

// coveredBy reports whether every word is present in the set.
func coveredBy(words []string, set map[string]struct{}) bool {
	for _, w := range words {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
