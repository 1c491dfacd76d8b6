package routing

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/natevvv/voyage-planner/pkg/graph"
	"github.com/natevvv/voyage-planner/pkg/graph/path"
	"github.com/natevvv/voyage-planner/pkg/port"
)

var (
	ErrUnknownPort      = errors.New("unknown port")
	ErrUnknownNavigator = errors.New("unknown navigator")
)

// Route is the result of a port to port planning
type Route struct {
	Origin      string
	Destination string
	Exists      bool         // a path through the graph was found
	Direct      bool         // no graph path, the route is a straight line between the ports
	Nodes       []graph.Node // the ports and waypoints in travel order
	Length      float64      // nautical miles
}

// Router plans routes between named ports
type Router struct {
	graph      graph.Graph
	ports      *port.Registry
	debugLevel int

	mutex     sync.RWMutex // guards navigator
	navigator string
}

// NewRouter creates a router on the given graph. Ports which are not part of the graph
// are resolved with the registry for the straight-line fallback. A nil registry uses the ports of the graph.
func NewRouter(g graph.Graph, ports *port.Registry, navigator string) (*Router, error) {
	if ports == nil {
		ports = port.FromGraph(g)
	}
	r := &Router{graph: g, ports: ports}
	if !r.SetNavigator(navigator) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNavigator, navigator)
	}
	return r, nil
}

// SetNavigator selects the search algorithm, see path.NewNavigator
func (r *Router) SetNavigator(kind string) bool {
	if _, ok := path.NewNavigator(kind, r.graph); !ok {
		return false
	}
	r.mutex.Lock()
	r.navigator = kind
	r.mutex.Unlock()
	return true
}

func (r *Router) Navigator() string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.navigator
}

func (r *Router) SetDebugLevel(level int) { r.debugLevel = level }

// ComputeRoute searches the shortest path between two ports.
// If the graph holds no path but both ports are known, a direct route is returned.
func (r *Router) ComputeRoute(origin, destination string) (Route, error) {
	route := Route{Origin: origin, Destination: destination}

	// navigators keep per-search state, every route gets its own
	navigator, _ := path.NewNavigator(r.Navigator(), r.graph)
	navigator.SetDebugLevel(r.debugLevel)

	length := navigator.ComputeShortestPath(origin, destination)
	if length >= 0 {
		nodeIds := navigator.GetPath(origin, destination)
		route.Exists = true
		route.Length = length
		route.Nodes = make([]graph.Node, 0, len(nodeIds))
		for _, id := range nodeIds {
			route.Nodes = append(route.Nodes, *r.graph.GetNode(id))
		}
		return route, nil
	}

	originNode, err := r.resolvePort(origin)
	if err != nil {
		return route, err
	}
	destinationNode, err := r.resolvePort(destination)
	if err != nil {
		return route, err
	}
	if r.debugLevel >= 1 {
		log.Printf("No path %v -> %v, falling back to a direct route\n", origin, destination)
	}
	route.Direct = true
	route.Nodes = []graph.Node{originNode, destinationNode}
	route.Length = originNode.Point.NauticalMilesTo(destinationNode.Point)
	return route, nil
}

// resolvePort finds the node of a port in the graph or, failing that, in the registry.
// The returned node carries no arcs.
func (r *Router) resolvePort(name string) (graph.Node, error) {
	if n := r.graph.GetNode(name); n != nil {
		return graph.Node{Id: n.Id, Point: n.Point, IsPort: n.IsPort}, nil
	}
	p, err := r.ports.Get(name)
	if err != nil {
		return graph.Node{}, fmt.Errorf("%w: %q", ErrUnknownPort, name)
	}
	return graph.Node{Id: p.Name, Point: p.Point(), IsPort: true}, nil
}

func (r *Router) GetNodes() []graph.Node {
	return r.graph.GetNodes()
}

func (r *Router) Graph() graph.Graph {
	return r.graph
}

func (r *Router) Ports() *port.Registry {
	return r.ports
}
