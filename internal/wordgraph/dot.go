package wordgraph

import (
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// WriteDOT serializes the constructed word graph in DOT format for
// external visualization. Node identifiers are label:variant pairs and
// every edge carries its cohesion weight.
func (g *Graph) WriteDOT(w io.Writer) error {
	dg := simple.NewWeightedDirectedGraph(0, 0)

	ids := make(map[NodeKey]dotNode, len(g.order))
	for i, n := range g.order {
		dn := dotNode{id: int64(i), key: n.key, word: n.word}
		ids[n.key] = dn
		dg.AddNode(dn)
	}
	for _, n := range g.order {
		for _, to := range g.succ[n.key] {
			dg.SetWeightedEdge(dotEdge{simple.WeightedEdge{
				F: ids[n.key],
				T: ids[to],
				W: g.weights[edgeKey{from: n.key, to: to}],
			}})
		}
	}

	data, err := dot.Marshal(dg, "wordgraph", "", "  ")
	if err != nil {
		return fmt.Errorf("encoding word graph: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// dotNode adapts a graph node to gonum's dot encoding.
type dotNode struct {
	id   int64
	key  NodeKey
	word string
}

func (n dotNode) ID() int64 { return n.id }

func (n dotNode) DOTID() string {
	return strconv.Quote(fmt.Sprintf("%s:%d", n.key.Label, n.key.Variant))
}

func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.Quote(n.word)}}
}

// dotEdge attaches the cohesion weight as a DOT attribute.
type dotEdge struct {
	simple.WeightedEdge
}

func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "weight", Value: strconv.FormatFloat(e.W, 'f', -1, 64)}}
}
