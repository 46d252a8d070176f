package wordgraph

import (
	"sort"
	"strings"
)

// WordTag is one (word, POS) element of a compression candidate.
type WordTag struct {
	Word string `json:"word"`
	POS  string `json:"pos"`
}

// Candidate is a scored compression: the raw cumulative edge weight of the
// path (not length-normalized) and its ordered words, sentinels stripped.
type Candidate struct {
	Weight float64
	Words  []WordTag
}

// Surface returns the candidate's flattened surface string.
func (c Candidate) Surface() string {
	var b strings.Builder
	for i, w := range c.Words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w.Word)
	}
	return b.String()
}

// Compressions searches for the n best start-to-end paths and returns them
// as candidates sorted ascending by cumulative weight. Fewer than n
// candidates are returned when the search exhausts the graph first.
func (g *Graph) Compressions(n int) []Candidate {
	paths := g.shortestPaths(startKey(), endKey(), n)

	out := make([]Candidate, 0, len(paths))
	for _, p := range paths {
		words := make([]WordTag, 0, len(p.nodes)-2)
		for _, key := range p.nodes[1 : len(p.nodes)-1] {
			word, tag := splitLabel(key.Label)
			words = append(words, WordTag{Word: word, POS: tag})
		}
		out = append(out, Candidate{Weight: p.weight, Words: words})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight < out[j].Weight
	})
	return out
}

// acceptedPath is a validated path in start-to-end order, sentinels
// included.
type acceptedPath struct {
	nodes  []NodeKey
	weight float64
}

// frontierEntry is one best-first search state. The path is stored newest
// first, with the start node last.
type frontierEntry struct {
	weight float64
	node   NodeKey
	path   []NodeKey
}

// shortestPaths enumerates up to k accepted paths from start to end using
// a best-first frontier kept as a sorted-insert list ordered by cumulative
// weight; equal-weight entries keep insertion order. Candidates reaching
// the end node are validated before acceptance and discarded otherwise.
func (g *Graph) shortestPaths(start, end NodeKey, k int) []acceptedPath {
	frontier := []frontierEntry{{node: start, path: []NodeKey{start}}}

	// sentence-level deduplication, independent of the producing path
	seen := make(map[string]struct{})

	var accepted []acceptedPath
	for len(accepted) < k && len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		for _, next := range g.succ[cur.node] {
			// loop avoidance
			if pathContains(cur.path, next) {
				continue
			}
			w := cur.weight + g.weights[edgeKey{from: cur.node, to: next}]

			if next == end {
				surface, ok := g.validate(cur.path)
				if !ok {
					continue
				}
				if _, dup := seen[surface]; dup {
					continue
				}
				seen[surface] = struct{}{}

				nodes := make([]NodeKey, 0, len(cur.path)+1)
				for i := len(cur.path) - 1; i >= 0; i-- {
					nodes = append(nodes, cur.path[i])
				}
				nodes = append(nodes, end)
				accepted = append(accepted, acceptedPath{nodes: nodes, weight: w})
				continue
			}

			path := make([]NodeKey, 0, len(cur.path)+1)
			path = append(path, next)
			path = append(path, cur.path...)

			entry := frontierEntry{weight: w, node: next, path: path}
			at := sort.Search(len(frontier), func(i int) bool {
				return frontier[i].weight > w
			})
			frontier = append(frontier, frontierEntry{})
			copy(frontier[at+1:], frontier[at:])
			frontier[at] = entry
		}
	}

	return accepted
}

// validate applies the linguistic acceptance checks to a path that has
// just reached the end node. path is in newest-first order with the start
// sentinel last; every node except the start sentinel is inspected. It
// returns the flattened surface string and whether the path is valid:
// at least one verb tag, at least MinWords non-punctuation words, balanced
// parentheses and an even number of quotation marks.
func (g *Graph) validate(path []NodeKey) (string, bool) {
	verbs := 0
	length := 0
	parens := 0
	quotes := 0

	var surface strings.Builder
	for i := len(path) - 2; i >= 0; i-- {
		word, tag := splitLabel(path[i].Label)

		if g.profile.IsVerb(tag) {
			verbs++
		}
		if !isPunct(word) {
			length++
		} else {
			switch word {
			case "(":
				parens--
			case ")":
				parens++
			case `"`:
				quotes++
			}
		}

		if surface.Len() > 0 {
			surface.WriteByte(' ')
		}
		surface.WriteString(word)
	}

	ok := verbs > 0 &&
		length >= g.opts.MinWords &&
		parens == 0 &&
		quotes%2 == 0
	return surface.String(), ok
}

func pathContains(path []NodeKey, key NodeKey) bool {
	for _, k := range path {
		if k == key {
			return true
		}
	}
	return false
}

// splitLabel splits a node label back into word and POS.
func splitLabel(lbl string) (word, pos string) {
	if i := strings.Index(lbl, Sep); i >= 0 {
		return lbl[:i], lbl[i+len(Sep):]
	}
	return lbl, ""
}
