package seaway

import (
	"log"
	"math"
	"sort"

	"github.com/natevvv/voyage-planner/pkg/graph"
)

// DefaultHarbourRadiusKm is the distance up to which a harbour off the lanes is linked to the closest lane node
const DefaultHarbourRadiusKm = 50.0

// BuildGraph creates an undirected graph from the lanes. Every consecutive node pair of a lane
// becomes an edge weighted with its great-circle distance in nautical miles.
// Harbours which are not part of a lane are linked to the closest lane node within harbourRadiusKm.
func BuildGraph(lanes []*Lane, nodes map[int64]Node, harbourRadiusKm float64) *graph.AdjacencyListGraph {
	alg := graph.NewAdjacencyListGraph()

	addNode := func(n Node) {
		alg.AddPoint(n.GraphId(), n.Point, n.IsPort())
	}

	missingNodes := 0
	onLane := make(map[int64]bool)
	for _, lane := range lanes {
		var prev *Node
		for _, id := range lane.NodeIDs {
			n, ok := nodes[id]
			if !ok {
				missingNodes++
				continue
			}
			if !onLane[id] {
				onLane[id] = true
				addNode(n)
			}
			if prev != nil && prev.ID != n.ID {
				alg.AddEdge(prev.GraphId(), n.GraphId(), prev.Point.NauticalMilesTo(n.Point))
			}
			prev = &n
		}
	}
	if missingNodes > 0 {
		log.Printf("Skipped %d lane references to unknown nodes\n", missingNodes)
	}

	laneNodes := make([]Node, 0, len(onLane))
	for id := range onLane {
		laneNodes = append(laneNodes, nodes[id])
	}
	// deterministic nearest neighbor ties
	sort.Slice(laneNodes, func(i, j int) bool { return laneNodes[i].ID < laneNodes[j].ID })

	harbours := make([]Node, 0)
	for id, n := range nodes {
		if n.IsPort() && !onLane[id] {
			harbours = append(harbours, n)
		}
	}
	sort.Slice(harbours, func(i, j int) bool { return harbours[i].ID < harbours[j].ID })

	for _, harbour := range harbours {
		addNode(harbour)
		nearest, distance := nearestNode(harbour, laneNodes)
		if nearest == nil || distance > harbourRadiusKm {
			log.Printf("Harbour %v is not connected to any lane\n", harbour.Name)
			continue
		}
		alg.AddEdge(harbour.GraphId(), nearest.GraphId(), harbour.Point.NauticalMilesTo(nearest.Point))
	}

	return alg
}

func nearestNode(n Node, candidates []Node) (*Node, float64) {
	var nearest *Node
	minDistance := math.Inf(1)
	for i := range candidates {
		if d := n.Point.DistanceTo(candidates[i].Point); d < minDistance {
			minDistance = d
			nearest = &candidates[i]
		}
	}
	return nearest, minDistance
}
