package seaway

import (
	"fmt"

	geo "github.com/natevvv/voyage-planner/pkg/geometry"
	"github.com/natevvv/voyage-planner/pkg/graph"
)

type LaneType int

const (
	Unknown LaneType = iota
	Ferry
	Fairway
	RecommendedTrack
	NavigationLine
)

func (t LaneType) String() string {
	return []string{"Unknown", "Ferry", "Fairway", "RecommendedTrack", "NavigationLine"}[t]
}

// LaneTypeFromTags classifies an OSM way by its route and seamark tags
func LaneTypeFromTags(tags map[string]string) LaneType {
	if tags["route"] == "ferry" {
		return Ferry
	}
	switch tags["seamark:type"] {
	case "fairway":
		return Fairway
	case "recommended_track":
		return RecommendedTrack
	case "navigation_line":
		return NavigationLine
	default:
		return Unknown
	}
}

// IsHarbour reports whether an OSM node marks a named harbour
func IsHarbour(tags map[string]string) bool {
	if tags["name"] == "" {
		return false
	}
	return tags["harbour"] == "yes" || tags["seamark:type"] == "harbour"
}

// A Lane is a navigable line through an ordered list of OSM nodes
type Lane struct {
	ID      int64
	Type    LaneType
	NodeIDs []int64
	Tags    map[string]string
}

// A Node is an OSM node referenced by lanes, or a harbour
type Node struct {
	ID    int64
	Point geo.Point
	Name  string // harbour name, empty for plain lane nodes
}

func (n Node) IsPort() bool { return n.Name != "" }

// GraphId names ports by their harbour name and every other node by its OSM id
func (n Node) GraphId() graph.NodeId {
	if n.IsPort() {
		return n.Name
	}
	return fmt.Sprintf("osm_%d", n.ID)
}
