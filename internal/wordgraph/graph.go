// Package wordgraph fuses a set of near-duplicate, POS-annotated sentences
// into a directed word graph and extracts the best short sentence-like
// paths through it.
//
// Nodes are disambiguated (word, POS) pairs; edges encode sequential
// adjacency across the input sentences, weighted by term salience and
// positional cohesion. The same word/POS pair may be split into several
// disambiguation variants so that unrelated occurrences are never merged
// and a single sentence never maps two positions onto one node.
//
// A Graph is a one-shot construction session: Build consumes the full
// sentence set, and the graph is read-only once Compressions is called.
// Graphs are not safe for concurrent mutation; independent sentence sets
// should use independent Graph values.
package wordgraph

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/chriscorrea/condense/internal/lang"
	"github.com/chriscorrea/condense/internal/sentence"
	"github.com/chriscorrea/condense/internal/stopwords"
)

// Sep joins a lowercased word and its POS tag into a node label. It is
// distinct from any token content, so labels split unambiguously.
const Sep = "/-/"

// NodeKey identifies a graph node: a lexical label (word + Sep + POS) plus
// a disambiguation variant index assigned in creation order.
type NodeKey struct {
	Label   string
	Variant int
}

// occurrence maps a node back to one (sentence, position) in the set.
type occurrence struct {
	sentence int
	position int
}

// node is a graph node: its key, display word, and the ordered occurrence
// list. All occurrences of one node belong to distinct sentences.
type node struct {
	key  NodeKey
	word string
	occ  []occurrence
}

// hasSentence reports whether the node already records an occurrence from
// sentence i.
func (n *node) hasSentence(i int) bool {
	for _, o := range n.occ {
		if o.sentence == i {
			return true
		}
	}
	return false
}

// edgeKey identifies a directed edge.
type edgeKey struct {
	from NodeKey
	to   NodeKey
}

// Options configures word graph construction.
type Options struct {
	// MinWords is the minimal number of non-punctuation words in an
	// accepted compression (default 8).
	MinWords int
	// Lang selects the verb tag set and stopword resource (default "en").
	Lang string
	// PunctTag is the POS tag marking punctuation tokens (default "PUNCT").
	PunctTag string
	// Separator splits word/POS/weight in the input strings (default "/").
	Separator string
}

func (o Options) withDefaults() Options {
	if o.MinWords == 0 {
		o.MinWords = 8
	}
	if o.Lang == "" {
		o.Lang = "en"
	}
	if o.PunctTag == "" {
		o.PunctTag = "PUNCT"
	}
	if o.Separator == "" {
		o.Separator = sentence.DefaultSeparator
	}
	return o
}

// Graph is the directed word graph for one sentence set.
type Graph struct {
	opts      Options
	profile   lang.Profile
	stopwords map[string]struct{}

	sentences []sentence.Sentence

	stats statistics

	// two-level node index: label -> ordered disambiguation variants
	variants map[string][]*node
	// creation order, for deterministic traversal and export
	order []*node

	// adjacency in insertion order, deduplicated
	succ    map[NodeKey][]NodeKey
	edgeSet map[edgeKey]struct{}
	weights map[edgeKey]float64
}

// Build parses the annotated sentence strings and constructs the word
// graph: statistics, the four node-mapping passes per sentence, sequential
// edges, and finally the edge weights. Any malformed token or missing
// stopword resource fails construction outright.
func Build(raw []string, opts Options) (*Graph, error) {
	opts = opts.withDefaults()

	profile, err := lang.For(opts.Lang)
	if err != nil {
		return nil, err
	}
	stops, err := stopwords.Load(opts.Lang)
	if err != nil {
		return nil, err
	}

	sentences, err := sentence.Parse(raw, opts.Separator)
	if err != nil {
		return nil, fmt.Errorf("preprocessing: %w", err)
	}

	g := &Graph{
		opts:      opts,
		profile:   profile,
		stopwords: stops,
		sentences: sentences,
		variants:  make(map[string][]*node),
		succ:      make(map[NodeKey][]NodeKey),
		edgeSet:   make(map[edgeKey]struct{}),
		weights:   make(map[edgeKey]float64),
	}

	g.stats = computeStatistics(sentences)

	for i := range g.sentences {
		g.addSentence(i)
	}
	g.computeEdgeWeights()

	return g, nil
}

// Sentences returns the preprocessed sentence set.
func (g *Graph) Sentences() []sentence.Sentence {
	return g.sentences
}

// Options returns the effective construction options.
func (g *Graph) Options() Options {
	return g.opts
}

// label builds the lexical label for a token.
func label(t sentence.Token) string {
	return t.Word + Sep + t.POS
}

// startKey and endKey are the sentinel node keys; sentinels always resolve
// to variant 0 because each sentence contributes exactly one occurrence.
func startKey() NodeKey {
	return NodeKey{Label: sentence.Start + Sep + sentence.Start}
}

func endKey() NodeKey {
	return NodeKey{Label: sentence.End + Sep + sentence.End}
}

// isStopword reports whether the surface form is in the stopword set.
func (g *Graph) isStopword(word string) bool {
	_, ok := g.stopwords[word]
	return ok
}

// isPunct reports whether the token is a single non-word character under a
// Unicode word-character test (letters, digits and underscore are word
// characters).
func isPunct(word string) bool {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 || size != len(word) {
		return false
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

// newNode appends a fresh disambiguation variant for label and records the
// occurrence.
func (g *Graph) newNode(lbl, word string, occ occurrence) NodeKey {
	key := NodeKey{Label: lbl, Variant: len(g.variants[lbl])}
	n := &node{key: key, word: word, occ: []occurrence{occ}}
	g.variants[lbl] = append(g.variants[lbl], n)
	g.order = append(g.order, n)
	return key
}

// addEdge records a directed edge once; repeat additions are no-ops.
func (g *Graph) addEdge(from, to NodeKey) {
	ek := edgeKey{from: from, to: to}
	if _, ok := g.edgeSet[ek]; ok {
		return
	}
	g.edgeSet[ek] = struct{}{}
	g.succ[from] = append(g.succ[from], to)
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// Nodes returns every node key in creation order.
func (g *Graph) Nodes() []NodeKey {
	keys := make([]NodeKey, len(g.order))
	for i, n := range g.order {
		keys[i] = n.key
	}
	return keys
}

// EdgeCount returns the number of directed edges in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.edgeSet)
}

// Variants returns the number of disambiguation variants for a lexical
// label.
func (g *Graph) Variants(lbl string) int {
	return len(g.variants[lbl])
}

// Occurrences returns the (sentence, position) pairs attached to a node,
// or nil if the node does not exist.
func (g *Graph) Occurrences(key NodeKey) [][2]int {
	vs := g.variants[key.Label]
	if key.Variant >= len(vs) {
		return nil
	}
	occ := vs[key.Variant].occ
	out := make([][2]int, len(occ))
	for i, o := range occ {
		out[i] = [2]int{o.sentence, o.position}
	}
	return out
}
