package path

import (
	"log"

	"github.com/natevvv/voyage-planner/pkg/graph"
	"github.com/natevvv/voyage-planner/pkg/queue"
	"github.com/natevvv/voyage-planner/pkg/slice"
)

// Dijkstra is a single-source shortest path search on a binary heap, O((V+E) log V).
// The search stops as soon as the destination is settled.
// Implements the Navigator Interface.
type Dijkstra struct {
	g           graph.Graph
	minHeap     *queue.MinHeap[*DijkstraItem]  // priority queue to find the shortest path
	searchSpace map[graph.NodeId]*DijkstraItem // every discovered node
	settled     map[graph.NodeId]bool          // nodes whose distance is final

	origin      graph.NodeId // the origin of the current search
	destination graph.NodeId // the destination of the current search

	pqPops             int
	pqUpdates          int
	relaxationAttempts int
	relaxedEdges       int

	debugLevel int // debug level for logging purpose
}

// Create a new Dijkstra instance with the given graph g
func NewDijkstra(g graph.Graph) *Dijkstra {
	return &Dijkstra{g: g}
}

// Compute the shortest path from the origin to the destination.
// It returns the length of the found path in nautical miles.
// If no path was found or one of the endpoints is unknown, it returns -1
func (d *Dijkstra) ComputeShortestPath(origin, destination graph.NodeId) float64 {
	d.initializeSearch(origin, destination)

	if d.g.GetNode(origin) == nil || d.g.GetNode(destination) == nil {
		if d.debugLevel >= 1 {
			log.Printf("Unknown endpoint in search %v -> %v\n", origin, destination)
		}
		return -1
	}

	if d.debugLevel >= 1 {
		log.Printf("New search: %v -> %v\n", origin, destination)
	}

	originItem := NewDijkstraItem(origin, 0, origin)
	d.searchSpace[origin] = originItem
	d.minHeap.Push(originItem)
	d.pqUpdates++

	for d.minHeap.Len() > 0 {
		currentNode := d.minHeap.Pop()
		d.pqPops++
		d.settled[currentNode.nodeId] = true
		if d.debugLevel >= 2 {
			log.Printf("Settling node %v, distance %v\n", currentNode.nodeId, currentNode.distance)
		}

		if currentNode.nodeId == destination {
			if d.debugLevel >= 1 {
				log.Printf("Found path %v -> %v with distance %v\n", origin, destination, currentNode.distance)
			}
			return currentNode.distance
		}

		d.relaxEdges(currentNode)
	}

	if d.debugLevel >= 1 {
		log.Printf("Finished search, no path found\n")
	}
	return -1
}

// Relax the Edges for the given node item and add the new nodes to the priority queue
func (d *Dijkstra) relaxEdges(node *DijkstraItem) {
	for _, arc := range d.g.GetArcsFrom(node.nodeId) {
		d.relaxationAttempts++
		successor := arc.Destination()

		if d.settled[successor] {
			continue
		}

		newDistance := node.distance + arc.Cost()
		successorItem := d.searchSpace[successor]
		if successorItem == nil {
			successorItem = NewDijkstraItem(successor, newDistance, node.nodeId)
			d.searchSpace[successor] = successorItem
			d.minHeap.Push(successorItem)
		} else if newDistance < successorItem.distance {
			successorItem.distance = newDistance
			successorItem.predecessor = node.nodeId
			d.minHeap.Update(successorItem)
		} else {
			continue
		}

		if d.debugLevel >= 3 {
			log.Printf("Relax Edge %v -> %v\n", node.nodeId, successor)
		}
		d.pqUpdates++
		d.relaxedEdges++
	}
}

// Initialize a new search
// This resets the search space and the KPIs of a previous search
func (d *Dijkstra) initializeSearch(origin, destination graph.NodeId) {
	d.origin = origin
	d.destination = destination
	d.minHeap = queue.NewMinHeap[*DijkstraItem](nil)
	d.searchSpace = make(map[graph.NodeId]*DijkstraItem)
	d.settled = make(map[graph.NodeId]bool)
	d.pqPops = 0
	d.pqUpdates = 0
	d.relaxationAttempts = 0
	d.relaxedEdges = 0
}

// Get the path of a previous computation. This contains the nodeIds which lie on the path from source to destination.
// If the previous computation was for other endpoints, the search is run again.
func (d *Dijkstra) GetPath(origin, destination graph.NodeId) []graph.NodeId {
	if d.searchSpace == nil || d.origin != origin || d.destination != destination {
		d.ComputeShortestPath(origin, destination)
	}
	if !d.settled[destination] {
		// no path found
		return make([]graph.NodeId, 0)
	}
	path := make([]graph.NodeId, 0)
	for nodeId := destination; ; nodeId = d.searchSpace[nodeId].predecessor {
		path = append(path, nodeId)
		if nodeId == origin {
			break
		}
	}
	// reverse path (to create the correct direction)
	slice.ReverseInPlace(path)
	return path
}

func (d *Dijkstra) GetPqPops() int             { return d.pqPops }
func (d *Dijkstra) GetPqUpdates() int          { return d.pqUpdates }
func (d *Dijkstra) GetEdgeRelaxations() int    { return d.relaxedEdges }
func (d *Dijkstra) GetRelaxationAttempts() int { return d.relaxationAttempts }
func (d *Dijkstra) GetGraph() graph.Graph      { return d.g }
func (d *Dijkstra) SetDebugLevel(level int)    { d.debugLevel = level }
