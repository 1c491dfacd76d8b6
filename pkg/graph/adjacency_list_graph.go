package graph

import (
	geo "github.com/natevvv/voyage-planner/pkg/geometry"
)

// Implementation for dynamic graphs. Used while loading or importing a graph.
type AdjacencyListGraph struct {
	Nodes    []Node         // The nodes of the graph, including their arcs
	index    map[NodeId]int // position of each node in Nodes
	arcCount int            // the number of arcs in the graph
}

func NewAdjacencyListGraph() *AdjacencyListGraph {
	return &AdjacencyListGraph{
		Nodes:    make([]Node, 0),
		index:    make(map[NodeId]int),
		arcCount: 0,
	}
}

// Return the node for the given id
func (alg *AdjacencyListGraph) GetNode(id NodeId) *Node {
	i, ok := alg.index[id]
	if !ok {
		return nil
	}
	return &alg.Nodes[i]
}

// Return all nodes of the graph
func (alg *AdjacencyListGraph) GetNodes() []Node {
	return alg.Nodes
}

// Get the arcs for the given node
func (alg *AdjacencyListGraph) GetArcsFrom(id NodeId) []Arc {
	if n := alg.GetNode(id); n != nil {
		return n.Arcs
	}
	return nil
}

// Return the number of total nodes
func (alg *AdjacencyListGraph) NodeCount() int {
	return len(alg.Nodes)
}

// Return the number of total arcs
func (alg *AdjacencyListGraph) ArcCount() int {
	return alg.arcCount
}

// Return a human readable string of the graph
func (alg *AdjacencyListGraph) AsString() string {
	return GraphAsString(alg)
}

// Add a node to the graph. Nodes with an already known id are rejected.
func (alg *AdjacencyListGraph) AddNode(n Node) bool {
	if _, exists := alg.index[n.Id]; exists {
		return false
	}
	arcs := n.Arcs
	n.Arcs = make([]Arc, 0, len(arcs))
	alg.index[n.Id] = len(alg.Nodes)
	alg.Nodes = append(alg.Nodes, n)
	for _, arc := range arcs {
		alg.AddArc(n.Id, arc.To, arc.Distance)
	}
	return true
}

// Convenience wrapper around AddNode
func (alg *AdjacencyListGraph) AddPoint(id NodeId, p geo.Point, isPort bool) bool {
	return alg.AddNode(Node{Id: id, Point: p, IsPort: isPort})
}

// Add an arc to the graph, going from source to target with the given distance.
// If the arc already exists, the shorter distance is kept. Negative or NaN distances are rejected.
func (alg *AdjacencyListGraph) AddArc(from, to NodeId, distance float64) bool {
	if !ValidDistance(distance) {
		return false
	}
	source := alg.GetNode(from)
	if source == nil || alg.GetNode(to) == nil {
		return false
	}

	// check for duplicates
	for i := range source.Arcs {
		arc := &source.Arcs[i]
		if to == arc.To {
			// keep the better distance
			if distance < arc.Distance {
				arc.Distance = distance
				return true
			}
			return false
		}
	}

	source.Arcs = append(source.Arcs, MakeArc(to, distance))
	alg.arcCount++
	return true
}

// Add an undirected edge as two arcs
func (alg *AdjacencyListGraph) AddEdge(from, to NodeId, distance float64) bool {
	forward := alg.AddArc(from, to, distance)
	backward := alg.AddArc(to, from, distance)
	return forward || backward
}
