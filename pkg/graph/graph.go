package graph

import (
	"errors"
	"fmt"
	"math"
	"strings"

	geo "github.com/natevvv/voyage-planner/pkg/geometry"
)

type NodeId = string

var (
	ErrUnknownNode     = errors.New("unknown node")
	ErrDanglingArc     = errors.New("arc points to unknown node")
	ErrAsymmetricArc   = errors.New("arc has no reverse arc")
	ErrInvalidFormat   = errors.New("invalid graph format")
	ErrInvalidDistance = errors.New("arc distance must be a non-negative number")
)

// ValidDistance reports whether d is a finite non-negative arc weight
func ValidDistance(d float64) bool {
	return d >= 0 && !math.IsInf(d, 1)
}

// A Node is either a named port or a routing waypoint.
// Its arcs are owned by the graph and must not be modified.
type Node struct {
	Id     NodeId
	Point  geo.Point
	IsPort bool
	Arcs   []Arc
}

// ArcTo returns the arc from n to the given node, if n is a direct neighbor
func (n *Node) ArcTo(id NodeId) (Arc, bool) {
	for _, arc := range n.Arcs {
		if arc.To == id {
			return arc, true
		}
	}
	return Arc{}, false
}

type Graph interface {
	GetNode(id NodeId) *Node // nil if the id is unknown
	GetNodes() []Node
	GetArcsFrom(id NodeId) []Arc
	NodeCount() int
	ArcCount() int
	AsString() string
}

type DynamicGraph interface {
	Graph
	AddNode(n Node) bool
	AddArc(from, to NodeId, distance float64) bool
}

// Builder constructs a graph at startup. Tests substitute their own builders.
type Builder func() (Graph, error)

// Freeze returns a builder producing an immutable copy of the graph built by b
func (b Builder) Freeze() Builder {
	return func() (Graph, error) {
		g, err := b()
		if err != nil {
			return nil, err
		}
		if aag, ok := g.(*AdjacencyArrayGraph); ok {
			return aag, nil
		}
		return NewAdjacencyArrayFromGraph(g), nil
	}
}

// Ports returns all port nodes in graph order
func Ports(g Graph) []Node {
	ports := make([]Node, 0)
	for _, n := range g.GetNodes() {
		if n.IsPort {
			ports = append(ports, n)
		}
	}
	return ports
}

// Validate reports arcs with invalid distances, arcs pointing to unknown nodes and arcs without a reverse arc
func Validate(g Graph) error {
	var errs []error
	for _, n := range g.GetNodes() {
		for _, arc := range n.Arcs {
			if !ValidDistance(arc.Distance) {
				errs = append(errs, fmt.Errorf("%w: %v -> %v: %v", ErrInvalidDistance, n.Id, arc.To, arc.Distance))
			}
			target := g.GetNode(arc.To)
			if target == nil {
				errs = append(errs, fmt.Errorf("%w: %v -> %v", ErrDanglingArc, n.Id, arc.To))
				continue
			}
			if _, ok := target.ArcTo(n.Id); !ok {
				errs = append(errs, fmt.Errorf("%w: %v -> %v", ErrAsymmetricArc, n.Id, arc.To))
			}
		}
	}
	return errors.Join(errs...)
}

func GraphAsString(g Graph) string {
	var sb strings.Builder

	// write number of nodes and number of arcs
	sb.WriteString(fmt.Sprintf("%v\n", g.NodeCount()))
	sb.WriteString(fmt.Sprintf("%v\n", g.ArcCount()))

	// list all nodes structured as "id lat lon port"
	sb.WriteString("#Nodes\n")
	for _, node := range g.GetNodes() {
		port := 0
		if node.IsPort {
			port = 1
		}
		sb.WriteString(fmt.Sprintf("%v\t%v\t%v\t%v\n", node.Id, node.Point.Lat(), node.Point.Lon(), port))
	}

	// list all arcs structured as "fromId targetId distance"
	sb.WriteString("#Edges\n")
	for _, node := range g.GetNodes() {
		for _, arc := range node.Arcs {
			sb.WriteString(fmt.Sprintf("%v\t%v\t%v\n", node.Id, arc.Destination(), arc.Cost()))
		}
	}
	return sb.String()
}

// SegmentLength returns the distance in nautical miles between two consecutive path nodes.
// Direct neighbors use the arc weight, other pairs a flat approximation of the coordinates.
func SegmentLength(from, to *Node) float64 {
	if arc, ok := from.ArcTo(to.Id); ok {
		return arc.Cost()
	}
	return from.Point.FlatNauticalMilesTo(to.Point)
}
