package openapi_server

import "github.com/natevvv/voyage-planner/pkg/graph"

type Waypoint struct {
	Id   string  `json:"id"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Port bool    `json:"port"`
}

func makeWaypoint(n graph.Node) Waypoint {
	return Waypoint{Id: n.Id, Lat: n.Point.Lat(), Lon: n.Point.Lon(), Port: n.IsPort}
}

type Nodes struct {
	Waypoints []Waypoint `json:"waypoints"`
}

type Path struct {
	Length    float64    `json:"length"` // nautical miles
	Waypoints []Waypoint `json:"waypoints"`
}
