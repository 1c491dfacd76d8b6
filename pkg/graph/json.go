package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	geo "github.com/natevvv/voyage-planner/pkg/geometry"
)

// jsonNode is the node-map shape shared with the graph editor:
// {"<id>": {"id", "lat", "lng", "isCity", "neighbors": [{"nodeId", "distance"}]}}
type jsonNode struct {
	Id        string         `json:"id"`
	Lat       float64        `json:"lat"`
	Lng       float64        `json:"lng"`
	IsCity    bool           `json:"isCity"`
	Neighbors []jsonNeighbor `json:"neighbors"`
}

type jsonNeighbor struct {
	NodeId   string  `json:"nodeId"`
	Distance float64 `json:"distance"`
}

// NewAdjacencyListFromJSON parses a node map. Every neighbor entry becomes an undirected edge,
// so one-sided entries are mirrored. Conflicting distances resolve to the shorter one.
func NewAdjacencyListFromJSON(data []byte) (*AdjacencyListGraph, error) {
	var nodes map[string]jsonNode
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	// map iteration order is random, keep the graph deterministic
	ids := make([]string, 0, len(nodes))
	for key := range nodes {
		ids = append(ids, key)
	}
	sort.Strings(ids)

	alg := NewAdjacencyListGraph()
	for _, key := range ids {
		n := nodes[key]
		id := n.Id
		if id == "" {
			id = key
		}
		alg.AddPoint(id, geo.MakePoint(n.Lat, n.Lng), n.IsCity)
	}

	for _, key := range ids {
		n := nodes[key]
		from := n.Id
		if from == "" {
			from = key
		}
		for _, neighbor := range n.Neighbors {
			if alg.GetNode(neighbor.NodeId) == nil {
				return nil, fmt.Errorf("%w: %v -> %v", ErrDanglingArc, from, neighbor.NodeId)
			}
			if !ValidDistance(neighbor.Distance) {
				return nil, fmt.Errorf("%w: %v -> %v: %v", ErrInvalidDistance, from, neighbor.NodeId, neighbor.Distance)
			}
			alg.AddEdge(from, neighbor.NodeId, neighbor.Distance)
		}
	}
	return alg, nil
}

func NewAdjacencyListFromJSONFile(filename string) (*AdjacencyListGraph, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewAdjacencyListFromJSON(data)
}

// MarshalNodeMap writes the graph in the node-map shape
func MarshalNodeMap(g Graph) ([]byte, error) {
	nodes := make(map[string]jsonNode, g.NodeCount())
	for _, n := range g.GetNodes() {
		neighbors := make([]jsonNeighbor, 0, len(n.Arcs))
		for _, arc := range n.Arcs {
			neighbors = append(neighbors, jsonNeighbor{NodeId: arc.To, Distance: arc.Distance})
		}
		nodes[n.Id] = jsonNode{Id: n.Id, Lat: n.Point.Lat(), Lng: n.Point.Lon(), IsCity: n.IsPort, Neighbors: neighbors}
	}
	return json.MarshalIndent(nodes, "", "  ")
}
