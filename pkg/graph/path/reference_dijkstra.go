package path

import (
	"log"
	"sort"

	"github.com/natevvv/voyage-planner/pkg/graph"
	"github.com/natevvv/voyage-planner/pkg/slice"
)

type frontierEntry struct {
	nodeId graph.NodeId
	cost   float64
}

// ReferenceDijkstra keeps the frontier in a plain slice and sorts it before every extraction.
// Entries are re-admitted instead of updated, stale ones are skipped by the relaxation rule.
// This is O(V² log V) and only suitable for graphs with a few hundred nodes; it serves as the
// reference in tests and benchmarks.
type ReferenceDijkstra struct {
	g           graph.Graph
	costs       map[graph.NodeId]float64
	backtrace   map[graph.NodeId]graph.NodeId
	origin      graph.NodeId
	destination graph.NodeId
	found       bool

	pqPops             int
	pqUpdates          int
	relaxationAttempts int
	relaxedEdges       int

	debugLevel int
}

func NewReferenceDijkstra(g graph.Graph) *ReferenceDijkstra {
	return &ReferenceDijkstra{g: g}
}

func (d *ReferenceDijkstra) ComputeShortestPath(origin, destination graph.NodeId) float64 {
	d.origin = origin
	d.destination = destination
	d.found = false
	d.costs = make(map[graph.NodeId]float64)
	d.backtrace = make(map[graph.NodeId]graph.NodeId)
	d.pqPops = 0
	d.pqUpdates = 0
	d.relaxationAttempts = 0
	d.relaxedEdges = 0

	if d.g.GetNode(origin) == nil || d.g.GetNode(destination) == nil {
		return -1
	}

	d.costs[origin] = 0
	frontier := []frontierEntry{{nodeId: origin, cost: 0}}
	d.pqUpdates++

	for len(frontier) > 0 {
		sort.Slice(frontier, func(i, j int) bool { return frontier[i].cost < frontier[j].cost })
		current := frontier[0]
		frontier = frontier[1:]
		d.pqPops++

		if current.nodeId == destination {
			d.found = true
			if d.debugLevel >= 1 {
				log.Printf("Found path %v -> %v with distance %v\n", origin, destination, d.costs[destination])
			}
			return d.costs[destination]
		}

		for _, arc := range d.g.GetArcsFrom(current.nodeId) {
			d.relaxationAttempts++
			newCost := d.costs[current.nodeId] + arc.Cost()
			if oldCost, visited := d.costs[arc.To]; !visited || newCost < oldCost {
				d.costs[arc.To] = newCost
				d.backtrace[arc.To] = current.nodeId
				frontier = append(frontier, frontierEntry{nodeId: arc.To, cost: newCost})
				d.pqUpdates++
				d.relaxedEdges++
			}
		}
	}
	return -1
}

func (d *ReferenceDijkstra) GetPath(origin, destination graph.NodeId) []graph.NodeId {
	if d.costs == nil || d.origin != origin || d.destination != destination {
		d.ComputeShortestPath(origin, destination)
	}
	if !d.found {
		return make([]graph.NodeId, 0)
	}
	path := []graph.NodeId{destination}
	for nodeId := destination; nodeId != origin; {
		nodeId = d.backtrace[nodeId]
		path = append(path, nodeId)
	}
	slice.ReverseInPlace(path)
	return path
}

func (d *ReferenceDijkstra) GetPqPops() int             { return d.pqPops }
func (d *ReferenceDijkstra) GetPqUpdates() int          { return d.pqUpdates }
func (d *ReferenceDijkstra) GetEdgeRelaxations() int    { return d.relaxedEdges }
func (d *ReferenceDijkstra) GetRelaxationAttempts() int { return d.relaxationAttempts }
func (d *ReferenceDijkstra) GetGraph() graph.Graph      { return d.g }
func (d *ReferenceDijkstra) SetDebugLevel(level int)    { d.debugLevel = level }
