package keyphrase

import "math"

// propagate runs TextRank over the co-occurrence graph. Every node starts
// at 1.0 and full synchronous sweeps update all scores from the previous
// sweep's buffer (Jacobi style) until the largest per-node delta falls at
// or below the convergence threshold, or the iteration cap is reached.
//
// Degree-zero nodes have no neighbors to update from and keep their
// initial score.
func (r *Reranker) propagate() {
	n := len(r.nodes)
	r.scores = make([]float64, n)
	for i := range r.scores {
		r.scores[i] = 1.0
	}
	if n == 0 {
		return
	}

	// total edge weight per node, the normalizer of outgoing contributions
	outWeight := make([]float64, n)
	for i, neighbors := range r.edges {
		for _, e := range neighbors {
			outWeight[i] += e.weight
		}
	}

	d := r.opts.Damping
	prev := make([]float64, n)

	for iter := 0; iter < r.opts.MaxIterations; iter++ {
		copy(prev, r.scores)
		maxDelta := 0.0

		for i := range r.nodes {
			if outWeight[i] == 0 {
				continue
			}

			sum := 0.0
			for _, e := range r.edges[i] {
				// undirected graph: e.weight is w(j,i) and outWeight[e.to]
				// is the neighbor's total edge weight
				sum += e.weight * prev[e.to] / outWeight[e.to]
			}
			r.scores[i] = (1 - d) + d*sum

			if delta := math.Abs(r.scores[i] - prev[i]); delta > maxDelta {
				maxDelta = delta
			}
		}

		if maxDelta <= r.opts.Convergence {
			break
		}
	}
}
