package path

import "github.com/natevvv/voyage-planner/pkg/graph"

type Navigator interface {
	GetPath(origin, destination graph.NodeId) []graph.NodeId      // Get the path of a previous computation. This contains the nodeIds which lie on the path from source to destination
	ComputeShortestPath(origin, destination graph.NodeId) float64 // Compute the shortest path from the origin to the destination. Returns -1 if there is none
	GetPqPops() int                                               // Returns the amount of frontier extractions which were performed during the search
	GetPqUpdates() int                                            // Get the number of frontier insertions and updates
	GetEdgeRelaxations() int                                      // Get the number of relaxed edges
	GetRelaxationAttempts() int                                   // Get the number of attempted edge relaxations (some may early terminated)
	GetGraph() graph.Graph                                        // Get the used graph
	SetDebugLevel(level int)                                      // Set the log verbosity of the search
}

// NewNavigator creates a fresh navigator of the given kind. Navigators keep per-search state,
// so concurrent searches need one instance each.
func NewNavigator(kind string, g graph.Graph) (Navigator, bool) {
	switch kind {
	case "", "dijkstra":
		return NewDijkstra(g), true
	case "reference":
		return NewReferenceDijkstra(g), true
	default:
		return nil, false
	}
}

// PathLength sums the arc weights along the path. It returns -1 if two consecutive nodes are not connected.
func PathLength(g graph.Graph, path []graph.NodeId) float64 {
	length := 0.0
	for i := 0; i+1 < len(path); i++ {
		node := g.GetNode(path[i])
		if node == nil {
			return -1
		}
		arc, ok := node.ArcTo(path[i+1])
		if !ok {
			return -1
		}
		length += arc.Cost()
	}
	return length
}
