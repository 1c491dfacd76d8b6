package port

import (
	"errors"
	"testing"

	geo "github.com/natevvv/voyage-planner/pkg/geometry"
	"github.com/natevvv/voyage-planner/pkg/graph"
)

var ports = []Port{
	{Name: "Rotterdam", Lat: 51.95, Lon: 4.00, Region: "Europe"},
	{Name: "Aarhus", Lat: 56.16, Lon: 10.25, Region: "Europe"},
	{Name: "Santos", Lat: -24.05, Lon: -46.30, Region: "South America"},
}

func TestRegistry(t *testing.T) {
	r, err := NewRegistry(ports)
	if err != nil {
		t.Fatal(err)
	}
	p, err := r.Get("Aarhus")
	if err != nil || p.Point() != geo.MakePoint(56.16, 10.25) {
		t.Errorf("Aarhus: Is %v (%v), should be at (56.16, 10.25)", p, err)
	}
	if _, err := r.Get("Atlantis"); !errors.Is(err, ErrUnknownPort) {
		t.Errorf("error: Is %v, should be %v", err, ErrUnknownPort)
	}
	if all := r.All(); all[0].Name != "Aarhus" || all[2].Name != "Santos" {
		t.Errorf("ports are not sorted: %v", all)
	}
	regions := r.ByRegion()
	if len(regions["Europe"]) != 2 || len(regions["South America"]) != 1 {
		t.Errorf("wrong grouping: %v", regions)
	}
	if _, err := NewRegistry(append(ports, ports[0])); !errors.Is(err, ErrDuplicatePort) {
		t.Errorf("error: Is %v, should be %v", err, ErrDuplicatePort)
	}
}

func TestFromGraph(t *testing.T) {
	alg := graph.NewAdjacencyListGraph()
	alg.AddPoint("Aarhus", geo.MakePoint(56.16, 10.25), true)
	alg.AddPoint("WP_0", geo.MakePoint(56.05, 10.46), false)
	r := FromGraph(alg)
	if r.Len() != 1 || !r.Contains("Aarhus") || r.Contains("WP_0") {
		t.Errorf("registry from graph contains %v", r.All())
	}
}
