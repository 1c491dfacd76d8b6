package port

import (
	"errors"
	"fmt"
	"sort"

	geo "github.com/natevvv/voyage-planner/pkg/geometry"
	"github.com/natevvv/voyage-planner/pkg/graph"
)

var (
	ErrUnknownPort   = errors.New("unknown port")
	ErrDuplicatePort = errors.New("duplicate port")
)

type Port struct {
	Name   string  `yaml:"name" json:"name"`
	Lat    float64 `yaml:"lat" json:"lat"`
	Lon    float64 `yaml:"lon" json:"lon"`
	Region string  `yaml:"region" json:"region"`
}

func (p Port) Point() geo.Point {
	return geo.MakePoint(p.Lat, p.Lon)
}

// Registry holds the known ports by name. It is independent of the routing graph,
// a port may be known here without being reachable in the graph.
type Registry struct {
	ports []Port
	index map[string]int
}

func NewRegistry(ports []Port) (*Registry, error) {
	r := &Registry{ports: make([]Port, 0, len(ports)), index: make(map[string]int, len(ports))}
	for _, p := range ports {
		if _, ok := r.index[p.Name]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicatePort, p.Name)
		}
		r.index[p.Name] = len(r.ports)
		r.ports = append(r.ports, p)
	}
	return r, nil
}

// FromGraph creates a registry of all port nodes of g without region information
func FromGraph(g graph.Graph) *Registry {
	ports := make([]Port, 0)
	for _, n := range graph.Ports(g) {
		ports = append(ports, Port{Name: n.Id, Lat: n.Point.Lat(), Lon: n.Point.Lon()})
	}
	// node ids are unique, so no duplicates can occur
	r, _ := NewRegistry(ports)
	return r
}

func (r *Registry) Get(name string) (Port, error) {
	i, ok := r.index[name]
	if !ok {
		return Port{}, fmt.Errorf("%w: %q", ErrUnknownPort, name)
	}
	return r.ports[i], nil
}

func (r *Registry) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// All returns the ports sorted by name
func (r *Registry) All() []Port {
	ports := make([]Port, len(r.ports))
	copy(ports, r.ports)
	sort.Slice(ports, func(i, j int) bool { return ports[i].Name < ports[j].Name })
	return ports
}

// ByRegion groups the ports by region, each group sorted by name
func (r *Registry) ByRegion() map[string][]Port {
	regions := make(map[string][]Port)
	for _, p := range r.All() {
		regions[p.Region] = append(regions[p.Region], p)
	}
	return regions
}

func (r *Registry) Len() int { return len(r.ports) }
