package graph

// Implementation for static graphs. All arcs live in one slice, the nodes hold views into it.
type AdjacencyArrayGraph struct {
	nodes   []Node
	arcs    []Arc
	Offsets []int
	index   map[NodeId]int
}

// Create an AdjacencyArrayGraph from the given graph
func NewAdjacencyArrayFromGraph(g Graph) *AdjacencyArrayGraph {
	source := g.GetNodes()
	nodes := make([]Node, 0, len(source))
	arcs := make([]Arc, 0, g.ArcCount())
	offsets := make([]int, len(source)+1)
	index := make(map[NodeId]int, len(source))

	for i, n := range source {
		// add all arcs of node
		arcs = append(arcs, n.Arcs...)

		// set stop-offset
		offsets[i+1] = len(arcs)

		index[n.Id] = i
		nodes = append(nodes, Node{Id: n.Id, Point: n.Point, IsPort: n.IsPort})
	}
	for i := range nodes {
		// full slice expression, appending to a view must not overwrite the neighbor's arcs
		nodes[i].Arcs = arcs[offsets[i]:offsets[i+1]:offsets[i+1]]
	}

	return &AdjacencyArrayGraph{nodes: nodes, arcs: arcs, Offsets: offsets, index: index}
}

// Get the node for the given id
func (aag *AdjacencyArrayGraph) GetNode(id NodeId) *Node {
	i, ok := aag.index[id]
	if !ok {
		return nil
	}
	n := aag.nodes[i]
	return &n
}

// get all nodes of the graph
func (aag *AdjacencyArrayGraph) GetNodes() []Node {
	nodes := make([]Node, len(aag.nodes))
	copy(nodes, aag.nodes)
	return nodes
}

// Get the Arcs for the given node id
func (aag *AdjacencyArrayGraph) GetArcsFrom(id NodeId) []Arc {
	i, ok := aag.index[id]
	if !ok {
		return nil
	}
	return aag.arcs[aag.Offsets[i]:aag.Offsets[i+1]:aag.Offsets[i+1]]
}

// Returns the number of Nodes in the graph
func (aag *AdjacencyArrayGraph) NodeCount() int {
	return len(aag.nodes)
}

// Returns the total number of arcs in the graph
func (aag *AdjacencyArrayGraph) ArcCount() int {
	return len(aag.arcs)
}

// Returns a human readable string of the graph
func (aag *AdjacencyArrayGraph) AsString() string {
	return GraphAsString(aag)
}
