// Package keyphrase reranks compression candidates by the salient
// keyphrases they contain.
//
// Keyphrases are extracted from the same sentence set that produced the
// compressions: an undirected co-occurrence graph is built over
// syntactically filtered (word, POS) pairs, TextRank propagates importance
// scores across its weighted edges to a fixed point, and maximal
// POS-pattern-conforming n-grams are mined, scored and clustered to remove
// redundancy. A Reranker is a one-shot session: all state is built at
// construction and Rerank only reads it.
package keyphrase

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/chriscorrea/condense/internal/lang"
	"github.com/chriscorrea/condense/internal/sentence"
	"github.com/chriscorrea/condense/internal/stopwords"
	"github.com/chriscorrea/condense/internal/wordgraph"
)

// stopTag replaces the POS of stopword tokens so the syntactic filter
// never admits them.
const stopTag = "STOPWORD"

// wordPOS is a (lowercased word, POS) pair, the node identity of the
// co-occurrence graph.
type wordPOS struct {
	word string
	pos  string
}

// Options configures a reranking session.
type Options struct {
	// Lang selects the syntactic filter, patterns and stopword resource
	// (default "en").
	Lang string
	// Patterns are extra POS regexes a candidate's concatenated tag string
	// must also match.
	Patterns []string
	// Window is the co-occurrence window in tokens; values below 1 span
	// the whole sentence (the default).
	Window int
	// Damping is the TextRank damping factor (default 0.85).
	Damping float64
	// Convergence stops propagation once the sup-norm score delta of a
	// sweep falls at or below it (default 0.0001).
	Convergence float64
	// MaxIterations bounds propagation on graphs that never converge
	// within floating-point precision (default 100).
	MaxIterations int
}

func (o Options) withDefaults() Options {
	if o.Lang == "" {
		o.Lang = "en"
	}
	if o.Damping == 0 {
		o.Damping = 0.85
	}
	if o.Convergence == 0 {
		o.Convergence = 0.0001
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = 100
	}
	return o
}

// Reranker holds one reranking session over a sentence set and its n-best
// compression candidates.
type Reranker struct {
	opts      Options
	profile   lang.Profile
	stopwords map[string]struct{}
	patterns  []*regexp.Regexp

	nbest []wordgraph.Candidate

	// per-sentence token views with stopwords retagged, sentinels dropped
	views [][]wordPOS

	// co-occurrence graph as deterministic sorted adjacency lists
	nodes []wordPOS
	index map[wordPOS]int
	edges [][]edge

	// TextRank scores, aligned with nodes
	scores []float64

	// surviving keyphrase candidates after clustering
	phrases      map[string][]wordPOS
	phraseScores map[string]float64
}

// NewReranker builds a reranking session from the preprocessed sentence
// set and the n-best compression candidates: co-occurrence graph,
// keyphrase candidates, TextRank scores, candidate scores, and redundancy
// clustering, in that order.
func NewReranker(sentences []sentence.Sentence, nbest []wordgraph.Candidate, opts Options) (*Reranker, error) {
	opts = opts.withDefaults()

	profile, err := lang.For(opts.Lang)
	if err != nil {
		return nil, err
	}
	stops, err := stopwords.Load(opts.Lang)
	if err != nil {
		return nil, err
	}

	patterns := make([]*regexp.Regexp, 0, len(profile.SyntacticPatterns)+len(opts.Patterns))
	for _, p := range append(append([]string{}, profile.SyntacticPatterns...), opts.Patterns...) {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid syntactic pattern %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}

	r := &Reranker{
		opts:      opts,
		profile:   profile,
		stopwords: stops,
		patterns:  patterns,
		nbest:     nbest,
		index:     make(map[wordPOS]int),
	}

	r.buildViews(sentences)
	r.buildGraph()
	r.generateCandidates()
	r.propagate()
	r.scoreCandidates()
	r.cluster()

	return r, nil
}

// buildViews converts sentences into (word, POS) views: sentinels are
// dropped and stopwords retagged so the filter excludes them.
func (r *Reranker) buildViews(sentences []sentence.Sentence) {
	r.views = make([][]wordPOS, len(sentences))
	for i, sent := range sentences {
		view := make([]wordPOS, 0, len(sent))
		for _, tok := range sent {
			if tok.Sentinel {
				continue
			}
			wp := wordPOS{word: tok.Word, pos: tok.POS}
			if _, stop := r.stopwords[wp.word]; stop {
				wp.pos = stopTag
			}
			view = append(view, wp)
		}
		r.views[i] = view
	}
}

// edge is a neighbor index plus co-occurrence count.
type edge struct {
	to     int
	weight float64
}

// buildGraph creates one node per filtered (word, POS) pair and
// count-weighted undirected edges between pairs co-occurring within the
// window. Adjacency lists are kept sorted by neighbor index so later
// traversals are deterministic.
func (r *Reranker) buildGraph() {
	for _, view := range r.views {
		for _, wp := range view {
			if !r.profile.InFilter(wp.pos) {
				continue
			}
			if _, ok := r.index[wp]; !ok {
				r.index[wp] = len(r.nodes)
				r.nodes = append(r.nodes, wp)
			}
		}
	}

	edgeMaps := make([]map[int]float64, len(r.nodes))
	for i := range edgeMaps {
		edgeMaps[i] = make(map[int]float64)
	}

	for _, view := range r.views {
		for j, first := range view {
			fi, ok := r.index[first]
			if !ok {
				continue
			}
			window := r.opts.Window
			if window < 1 {
				window = len(view)
			}
			end := j + window
			if end > len(view) {
				end = len(view)
			}
			for k := j + 1; k < end; k++ {
				si, ok := r.index[view[k]]
				if !ok {
					continue
				}
				edgeMaps[fi][si]++
				if fi != si {
					edgeMaps[si][fi]++
				}
			}
		}
	}

	r.edges = make([][]edge, len(r.nodes))
	for i, m := range edgeMaps {
		r.edges[i] = make([]edge, 0, len(m))
		for to, w := range m {
			r.edges[i] = append(r.edges[i], edge{to: to, weight: w})
		}
		sort.Slice(r.edges[i], func(a, b int) bool {
			return r.edges[i][a].to < r.edges[i][b].to
		})
	}
}

// Phrases returns the surviving keyphrases and their scores.
func (r *Reranker) Phrases() map[string]float64 {
	out := make(map[string]float64, len(r.phraseScores))
	for k, v := range r.phraseScores {
		out[k] = v
	}
	return out
}

// WordScore returns the TextRank score of a (word, POS) node, and whether
// the node exists in the co-occurrence graph.
func (r *Reranker) WordScore(word, pos string) (float64, bool) {
	i, ok := r.index[wordPOS{word: word, pos: pos}]
	if !ok {
		return 0, false
	}
	return r.scores[i], true
}
