package path

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	geo "github.com/natevvv/voyage-planner/pkg/geometry"
	"github.com/natevvv/voyage-planner/pkg/graph"
	"github.com/natevvv/voyage-planner/pkg/slice"
)

// 3x3 grid with unit weights and one isolated pair, fields are tab separated
var gridFmi = strings.ReplaceAll(`12
26
# nodes
0 0 0 1
1 0 1 0
2 0 2 0
3 1 0 0
4 1 1 0
5 1 2 0
6 2 0 0
7 2 1 0
8 2 2 0
9 3 3 1
10 5 5 1
11 5 6 0
# edges
0 1 1
0 3 1
1 0 1
1 2 1
1 4 1
2 1 1
2 5 1
3 0 1
3 4 1
3 6 1
4 1 1
4 3 1
4 5 1
4 7 1
5 2 1
5 4 1
5 8 1
6 3 1
6 7 1
7 4 1
7 6 1
7 8 1
8 5 1
8 7 1
8 9 1
9 8 1`, " ", "\t")

func loadGrid(t *testing.T) graph.Graph {
	aag, err := graph.NewAdjacencyArrayFromFmiString(gridFmi)
	if err != nil {
		t.Fatalf("grid could not be parsed: %v", err)
	}
	return aag
}

func navigators(g graph.Graph) map[string]Navigator {
	return map[string]Navigator{
		"dijkstra":  NewDijkstra(g),
		"reference": NewReferenceDijkstra(g),
	}
}

func checkPath(t *testing.T, name string, g graph.Graph, path []graph.NodeId, origin, destination graph.NodeId, length float64) {
	t.Helper()
	if len(path) == 0 {
		t.Errorf("%v: path is empty, should lead from %v to %v", name, origin, destination)
		return
	}
	if path[0] != origin || path[len(path)-1] != destination {
		t.Errorf("%v: path endpoints are %v and %v. Should be %v and %v", name, path[0], path[len(path)-1], origin, destination)
	}
	if pathLength := PathLength(g, path); math.Abs(pathLength-length) > 1e-9 {
		t.Errorf("%v: path %v has length %v. Should be %v", name, path, pathLength, length)
	}
}

func TestPlainDijkstra(t *testing.T) {
	g := loadGrid(t)
	for name, d := range navigators(g) {
		length := d.ComputeShortestPath("0", "9")
		path := d.GetPath("0", "9")
		lengthReference := 5.0
		if length != lengthReference {
			t.Errorf("%v: length is %v. Should be %v\n", name, length, lengthReference)
		}
		if len(path) != 6 {
			t.Errorf("%v: path has wrong length. Is %v, should be %v\n", name, len(path), 6)
		}
		checkPath(t, name, g, path, "0", "9", lengthReference)
		if d.GetPqPops() == 0 || d.GetRelaxationAttempts() < d.GetEdgeRelaxations() {
			t.Errorf("%v: implausible KPIs, pops %v, attempts %v, relaxations %v", name, d.GetPqPops(), d.GetRelaxationAttempts(), d.GetEdgeRelaxations())
		}
	}
}

func TestSameOriginAndDestination(t *testing.T) {
	g := loadGrid(t)
	for name, d := range navigators(g) {
		if length := d.ComputeShortestPath("4", "4"); length != 0 {
			t.Errorf("%v: length is %v. Should be 0", name, length)
		}
		if path := d.GetPath("4", "4"); len(path) != 1 || path[0] != "4" {
			t.Errorf("%v: path is %v. Should be [4]", name, path)
		}
	}
}

func TestNoPath(t *testing.T) {
	g := loadGrid(t)
	for name, d := range navigators(g) {
		if length := d.ComputeShortestPath("0", "10"); length != -1 {
			t.Errorf("%v: length is %v. Should be -1", name, length)
		}
		if path := d.GetPath("0", "10"); len(path) != 0 {
			t.Errorf("%v: path is %v. Should be empty", name, path)
		}
	}
}

func TestUnknownEndpoints(t *testing.T) {
	g := loadGrid(t)
	for name, d := range navigators(g) {
		if length := d.ComputeShortestPath("0", "Atlantis"); length != -1 {
			t.Errorf("%v: length is %v. Should be -1", name, length)
		}
		if length := d.ComputeShortestPath("Atlantis", "0"); length != -1 {
			t.Errorf("%v: length is %v. Should be -1", name, length)
		}
		if path := d.GetPath("Atlantis", "0"); len(path) != 0 {
			t.Errorf("%v: path is %v. Should be empty", name, path)
		}
	}
}

func TestGetPathRecomputes(t *testing.T) {
	g := loadGrid(t)
	d := NewDijkstra(g)
	d.ComputeShortestPath("0", "9")
	path := d.GetPath("2", "6")
	checkPath(t, "dijkstra", g, path, "2", "6", 4)
}

func TestNewNavigator(t *testing.T) {
	g := loadGrid(t)
	for _, kind := range []string{"", "dijkstra", "reference"} {
		if _, ok := NewNavigator(kind, g); !ok {
			t.Errorf("navigator %q should be known", kind)
		}
	}
	if _, ok := NewNavigator("contraction", g); ok {
		t.Errorf("navigator contraction should be unknown")
	}
}

func TestPathLength(t *testing.T) {
	g := loadGrid(t)
	if l := PathLength(g, []graph.NodeId{"0", "1", "2"}); l != 2 {
		t.Errorf("length is %v. Should be 2", l)
	}
	if l := PathLength(g, []graph.NodeId{"0", "2"}); l != -1 {
		t.Errorf("length is %v. Should be -1", l)
	}
	if l := PathLength(g, []graph.NodeId{"0"}); l != 0 {
		t.Errorf("length is %v. Should be 0", l)
	}
}

// randomGraph creates a graph with n nodes and random symmetric edges
func randomGraph(rng *rand.Rand, n int, density float64) graph.Graph {
	alg := graph.NewAdjacencyListGraph()
	for i := 0; i < n; i++ {
		alg.AddPoint(fmt.Sprint(i), geo.MakePoint(rng.Float64()*10, rng.Float64()*10), i%5 == 0)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < density {
				alg.AddEdge(fmt.Sprint(i), fmt.Sprint(j), 1+rng.Float64()*99)
			}
		}
	}
	return alg
}

// allPairs computes all shortest distances by exhaustive relaxation (Floyd-Warshall)
func allPairs(g graph.Graph) map[graph.NodeId]map[graph.NodeId]float64 {
	nodes := g.GetNodes()
	dist := make(map[graph.NodeId]map[graph.NodeId]float64, len(nodes))
	for _, u := range nodes {
		dist[u.Id] = make(map[graph.NodeId]float64, len(nodes))
		for _, v := range nodes {
			dist[u.Id][v.Id] = math.Inf(1)
		}
		dist[u.Id][u.Id] = 0
		for _, arc := range u.Arcs {
			dist[u.Id][arc.To] = math.Min(dist[u.Id][arc.To], arc.Cost())
		}
	}
	for _, k := range nodes {
		for _, i := range nodes {
			for _, j := range nodes {
				if d := dist[i.Id][k.Id] + dist[k.Id][j.Id]; d < dist[i.Id][j.Id] {
					dist[i.Id][j.Id] = d
				}
			}
		}
	}
	return dist
}

func TestRandomGraphsAgainstBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := randomGraph(rng, 5+rng.Intn(16), 0.2)
		reference := allPairs(g)
		for name, d := range navigators(g) {
			for _, origin := range g.GetNodes() {
				for _, destination := range g.GetNodes() {
					expected := reference[origin.Id][destination.Id]
					length := d.ComputeShortestPath(origin.Id, destination.Id)
					if math.IsInf(expected, 1) {
						if length != -1 {
							t.Errorf("seed %v, %v: %v -> %v has length %v. Should be unreachable", seed, name, origin.Id, destination.Id, length)
						}
						continue
					}
					if math.Abs(length-expected) > 1e-9 {
						t.Errorf("seed %v, %v: %v -> %v has length %v. Should be %v", seed, name, origin.Id, destination.Id, length, expected)
						continue
					}
					checkPath(t, name, g, d.GetPath(origin.Id, destination.Id), origin.Id, destination.Id, expected)
				}
			}
		}
	}
}

func TestSymmetricGraphGivesSymmetricRoutes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := randomGraph(rng, 20, 0.3)
	d := NewDijkstra(g)
	for _, origin := range g.GetNodes() {
		for _, destination := range g.GetNodes() {
			there := d.ComputeShortestPath(origin.Id, destination.Id)
			back := d.ComputeShortestPath(destination.Id, origin.Id)
			if math.Abs(there-back) > 1e-9 {
				t.Errorf("%v -> %v is %v, the reverse is %v", origin.Id, destination.Id, there, back)
			}
			forward := d.GetPath(origin.Id, destination.Id)
			backward := d.GetPath(destination.Id, origin.Id)
			slice.ReverseInPlace(backward)
			if slice.Compare(forward, backward) != 0 {
				t.Errorf("%v -> %v is %v, the reverse path is %v", origin.Id, destination.Id, forward, backward)
			}
		}
	}
}

func BenchmarkDijkstra(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	g := graph.NewAdjacencyArrayFromGraph(randomGraph(rng, 300, 0.02))
	for name, d := range navigators(g) {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				d.ComputeShortestPath("0", fmt.Sprint(1+i%299))
			}
		})
	}
}
