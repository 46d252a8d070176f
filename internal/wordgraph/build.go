package wordgraph

// addSentence merges sentence i into the graph. Token positions are mapped
// onto node keys in four passes, in strict order:
//
//  1. content words with zero or one existing variant,
//  2. content words with several variants, resolved by context overlap,
//  3. stopwords,
//  4. punctuation.
//
// Once every position is mapped, sequential edges are added along the
// sentence.
func (g *Graph) addSentence(i int) {
	sent := g.sentences[i]

	// token position -> assigned node key
	mapping := make([]NodeKey, len(sent))
	assigned := make([]bool, len(sent))

	// pass 1: unambiguous content words (sentinels included)
	for j, tok := range sent {
		if g.isStopword(tok.Word) || isPunct(tok.Word) {
			continue
		}
		lbl := label(tok)

		switch len(g.variants[lbl]) {
		case 0:
			mapping[j] = g.newNode(lbl, tok.Word, occurrence{i, j})
			assigned[j] = true
		case 1:
			// a node never records two positions from one sentence; a
			// same-sentence repeat forces a new variant
			only := g.variants[lbl][0]
			if !only.hasSentence(i) {
				only.occ = append(only.occ, occurrence{i, j})
				mapping[j] = only.key
			} else {
				mapping[j] = g.newNode(lbl, tok.Word, occurrence{i, j})
			}
			assigned[j] = true
		}
		// multi-variant labels are deferred to pass 2
	}

	// pass 2: ambiguous content words
	for j, tok := range sent {
		if g.isStopword(tok.Word) || isPunct(tok.Word) {
			continue
		}
		if assigned[j] {
			continue
		}
		lbl := label(tok)
		prevLbl := label(sent[j-1])
		nextLbl := label(sent[j+1])

		// score every existing variant by context overlap and frequency
		type candidate struct {
			key     NodeKey
			overlap int
			freq    int
		}
		candidates := make([]candidate, len(g.variants[lbl]))
		for l, n := range g.variants[lbl] {
			candidates[l] = candidate{
				key:     n.key,
				overlap: g.contextOverlap(n, prevLbl, nextLbl, false),
				freq:    len(n.occ),
			}
		}

		// take the best candidate without a same-sentence collision; when
		// overlap cannot discriminate, fall back to frequency
		found := false
		for len(candidates) > 0 {
			selected := 0
			for l := 1; l < len(candidates); l++ {
				if candidates[l].overlap > candidates[selected].overlap {
					selected = l
				}
			}
			if candidates[selected].overlap == 0 {
				selected = 0
				for l := 1; l < len(candidates); l++ {
					if candidates[l].freq > candidates[selected].freq {
						selected = l
					}
				}
			}

			n := g.node(candidates[selected].key)
			if !n.hasSentence(i) {
				n.occ = append(n.occ, occurrence{i, j})
				mapping[j] = n.key
				found = true
				break
			}
			candidates = append(candidates[:selected], candidates[selected+1:]...)
		}
		if !found {
			mapping[j] = g.newNode(lbl, tok.Word, occurrence{i, j})
		}
		assigned[j] = true
	}

	// pass 3: stopwords; only non-stopword context counts, and reuse
	// requires strictly positive overlap
	for j, tok := range sent {
		if !g.isStopword(tok.Word) {
			continue
		}
		lbl := label(tok)

		if len(g.variants[lbl]) == 0 {
			mapping[j] = g.newNode(lbl, tok.Word, occurrence{i, j})
			assigned[j] = true
			continue
		}

		prevLbl := label(sent[j-1])
		nextLbl := label(sent[j+1])

		best, bestOverlap := g.bestOverlap(lbl, prevLbl, nextLbl, true)
		if !best.hasSentence(i) && bestOverlap > 0 {
			best.occ = append(best.occ, occurrence{i, j})
			mapping[j] = best.key
		} else {
			mapping[j] = g.newNode(lbl, tok.Word, occurrence{i, j})
		}
		assigned[j] = true
	}

	// pass 4: punctuation; full context, but reuse requires overlap > 1
	for j, tok := range sent {
		if !isPunct(tok.Word) {
			continue
		}
		lbl := label(tok)

		if len(g.variants[lbl]) == 0 {
			mapping[j] = g.newNode(lbl, tok.Word, occurrence{i, j})
			assigned[j] = true
			continue
		}

		prevLbl := label(sent[j-1])
		nextLbl := label(sent[j+1])

		best, bestOverlap := g.bestOverlap(lbl, prevLbl, nextLbl, false)
		if !best.hasSentence(i) && bestOverlap > 1 {
			best.occ = append(best.occ, occurrence{i, j})
			mapping[j] = best.key
		} else {
			mapping[j] = g.newNode(lbl, tok.Word, occurrence{i, j})
		}
		assigned[j] = true
	}

	// sequential edges along the whole sentence
	for j := 1; j < len(mapping); j++ {
		g.addEdge(mapping[j-1], mapping[j])
	}
}

// node resolves a key to its record. The key is always valid here; keys
// only come from the variant index itself.
func (g *Graph) node(key NodeKey) *node {
	return g.variants[key.Label][key.Variant]
}

// contextOverlap counts how often the token's immediate neighbor labels in
// the current sentence appear among the node's own left/right neighbor
// occurrences across all sentences attached to it. With nonStop set, only
// neighbors that are not stopwords contribute.
func (g *Graph) contextOverlap(n *node, prevLbl, nextLbl string, nonStop bool) int {
	overlap := 0
	for _, o := range n.occ {
		sent := g.sentences[o.sentence]
		if o.position > 0 {
			left := sent[o.position-1]
			if (!nonStop || !g.isStopword(left.Word)) && label(left) == prevLbl {
				overlap++
			}
		}
		if o.position+1 < len(sent) {
			right := sent[o.position+1]
			if (!nonStop || !g.isStopword(right.Word)) && label(right) == nextLbl {
				overlap++
			}
		}
	}
	return overlap
}

// bestOverlap returns the variant of lbl with the highest context overlap
// (first wins on ties) and its overlap value.
func (g *Graph) bestOverlap(lbl, prevLbl, nextLbl string, nonStop bool) (*node, int) {
	variants := g.variants[lbl]
	best := variants[0]
	bestOverlap := g.contextOverlap(best, prevLbl, nextLbl, nonStop)
	for _, n := range variants[1:] {
		if ov := g.contextOverlap(n, prevLbl, nextLbl, nonStop); ov > bestOverlap {
			best, bestOverlap = n, ov
		}
	}
	return best, bestOverlap
}
