package routing

import (
	"fmt"
	"math"

	geo "github.com/natevvv/voyage-planner/pkg/geometry"
	"github.com/natevvv/voyage-planner/pkg/graph"
)

// DefaultMaxSegmentKm is the segment length the simulator samples with
const DefaultMaxSegmentKm = 25.0

// Densify inserts interpolated points on every segment longer than maxSegmentKm.
// A segment of length d gets ceil(d/maxSegmentKm)-1 points at equal fractions of latitude and longitude.
// Inserted points are waypoints without arcs, named after the preceding node.
func Densify(nodes []graph.Node, maxSegmentKm float64) []graph.Node {
	if len(nodes) < 2 || maxSegmentKm <= 0 {
		densified := make([]graph.Node, len(nodes))
		copy(densified, nodes)
		return densified
	}

	densified := make([]graph.Node, 0, len(nodes))
	densified = append(densified, nodes[0])
	for i := 1; i < len(nodes); i++ {
		prev, next := nodes[i-1], nodes[i]
		distance := prev.Point.DistanceTo(next.Point)
		if distance > maxSegmentKm {
			steps := int(math.Ceil(distance / maxSegmentKm))
			for j := 1; j < steps; j++ {
				densified = append(densified, graph.Node{
					Id:    interpolatedId(prev.Id, j),
					Point: geo.Lerp(prev.Point, next.Point, float64(j)/float64(steps)),
				})
			}
		}
		densified = append(densified, next)
	}
	return densified
}

func interpolatedId(prev graph.NodeId, index int) graph.NodeId {
	return fmt.Sprintf("%s_interp_%d", prev, index)
}

// Densify returns the nodes of the route with a bounded segment length
func (route Route) Densify(maxSegmentKm float64) []graph.Node {
	return Densify(route.Nodes, maxSegmentKm)
}
