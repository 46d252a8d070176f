package wordgraph

// computeEdgeWeights assigns every edge its cohesion weight. Weights are a
// function of the final node occurrence sets, so they are computed once,
// after all sentences have been merged.
func (g *Graph) computeEdgeWeights() {
	for from, succs := range g.succ {
		for _, to := range succs {
			ek := edgeKey{from: from, to: to}
			g.weights[ek] = g.edgeWeight(g.node(from), g.node(to))
		}
	}
}

// edgeWeight computes the weight of the edge n1 -> n2 as
//
//	(w1 + w2) / Σ_s (1 / dist(s)) / (w1 * w2)
//
// where w1, w2 are the cumulative term weights of the node labels and
// dist(s) is the smallest positive position gap between an occurrence of
// n1 and a later occurrence of n2 in sentence s (0 when n1 never precedes
// n2 in s). Labels with no recorded weight, and edges with no positional
// support, weigh 0.
func (g *Graph) edgeWeight(n1, n2 *node) float64 {
	w1 := g.stats.weight[n1.key.Label]
	w2 := g.stats.weight[n2.key.Label]
	if w1 == 0 || w2 == 0 {
		return 0
	}

	diffSum := 0.0
	for s := range g.sentences {
		minDist := 0.0
		for _, o1 := range n1.occ {
			if o1.sentence != s {
				continue
			}
			for _, o2 := range n2.occ {
				if o2.sentence != s {
					continue
				}
				if d := float64(o2.position - o1.position); d > 0 {
					if minDist == 0 || d < minDist {
						minDist = d
					}
				}
			}
		}
		if minDist > 0 {
			diffSum += 1.0 / minDist
		}
	}

	if diffSum == 0 {
		return 0
	}
	return ((w1 + w2) / diffSum) / (w1 * w2)
}

// Weight returns the stored weight of the edge from -> to, and whether the
// edge exists.
func (g *Graph) Weight(from, to NodeKey) (float64, bool) {
	w, ok := g.weights[edgeKey{from: from, to: to}]
	return w, ok
}
