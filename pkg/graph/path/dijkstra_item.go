package path

import (
	"fmt"

	"github.com/natevvv/voyage-planner/pkg/graph"
)

// implements queue.Priorizable
type DijkstraItem struct {
	nodeId      graph.NodeId // node id of this item in the graph
	distance    float64      // distance to origin of this node in nautical miles
	predecessor graph.NodeId // node id of the predecessor
	index       int          // internal usage
}

func NewDijkstraItem(nodeId graph.NodeId, distance float64, predecessor graph.NodeId) *DijkstraItem {
	return &DijkstraItem{nodeId: nodeId, distance: distance, predecessor: predecessor, index: -1}
}

func (item *DijkstraItem) NodeId() graph.NodeId      { return item.nodeId }
func (item *DijkstraItem) Distance() float64         { return item.distance }
func (item *DijkstraItem) Predecessor() graph.NodeId { return item.predecessor }
func (item *DijkstraItem) Priority() float64         { return item.distance }
func (item *DijkstraItem) Index() int                { return item.index }
func (item *DijkstraItem) SetIndex(index int)        { item.index = index }
func (item *DijkstraItem) String() string {
	return fmt.Sprintf("%v: %v, %v\n", item.index, item.nodeId, item.Priority())
}
