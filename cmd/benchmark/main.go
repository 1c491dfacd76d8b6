package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/natevvv/voyage-planner/graphs"
	"github.com/natevvv/voyage-planner/pkg/graph"
	p "github.com/natevvv/voyage-planner/pkg/graph/path"
	"github.com/natevvv/voyage-planner/pkg/slice"
)

type target struct {
	origin, destination graph.NodeId
	length              float64
	path                []graph.NodeId
}

func main() {
	useRandomTargets := flag.Bool("random", false, "Use random node pairs instead of all port pairs")
	amountTargets := flag.Int("n", 100, "How many targets should be used")
	algorithm := flag.String("search", "dijkstra", "Select the search algorithm (dijkstra, reference)")
	cpuProfile := flag.String("cpu", "", "write cpu profile to file")
	targetGraph := flag.String("graph", "", "Graph file, empty for the bundled graph")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for random targets")
	flag.Parse()

	start := time.Now()
	g, err := graphs.FromFile(*targetGraph).Freeze()()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[TIME-Import] = %s\n", time.Since(start))

	navigator, ok := p.NewNavigator(*algorithm, g)
	if !ok {
		log.Fatal("Navigator not supported")
	}
	// the reference is always the simple search
	reference := p.NewReferenceDijkstra(g)

	var targets []target
	if *useRandomTargets {
		targets = randomTargets(g, *amountTargets, rand.New(rand.NewSource(*seed)), reference)
	} else {
		targets = portTargets(g, reference)
		if *amountTargets < len(targets) {
			targets = targets[0:*amountTargets]
		}
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	benchmark(navigator, targets)
}

func portTargets(g graph.Graph, reference p.Navigator) []target {
	ports := graph.Ports(g)
	targets := make([]target, 0, len(ports)*len(ports))
	for _, origin := range ports {
		for _, destination := range ports {
			targets = append(targets, newTarget(reference, origin.Id, destination.Id))
		}
	}
	return targets
}

func randomTargets(g graph.Graph, n int, rng *rand.Rand, reference p.Navigator) []target {
	nodes := g.GetNodes()
	targets := make([]target, n)
	for i := 0; i < n; i++ {
		origin := nodes[rng.Intn(len(nodes))].Id
		destination := nodes[rng.Intn(len(nodes))].Id
		targets[i] = newTarget(reference, origin, destination)
	}
	return targets
}

func newTarget(reference p.Navigator, origin, destination graph.NodeId) target {
	length := reference.ComputeShortestPath(origin, destination)
	return target{origin: origin, destination: destination, length: length, path: reference.GetPath(origin, destination)}
}

// Run benchmarks on the provided graph and targets
func benchmark(navigator p.Navigator, targets []target) {
	var runtime time.Duration = 0
	var runtimeWithPathExtraction time.Duration = 0
	completed := 0

	pqPops := 0
	pqUpdates := 0
	edgeRelaxations := 0
	relaxationAttempts := 0

	invalidLengths := make([]int, 0)
	invalidResults := make([]int, 0)
	invalidHops := make([]int, 0)
	differentPaths := 0

	showResults := func() {
		if completed == 0 {
			fmt.Printf("No targets completed\n")
			return
		}
		fmt.Printf("Average runtime: %.3fms, %.3fms\n", float64(int(runtime.Nanoseconds())/completed)/1000000, float64(int(runtimeWithPathExtraction.Nanoseconds())/completed)/1000000)
		fmt.Printf("Average pq pops: %d\n", pqPops/completed)
		fmt.Printf("Average pq updates: %d\n", pqUpdates/completed)
		fmt.Printf("Average relaxations attempts: %d\n", relaxationAttempts/completed)
		fmt.Printf("Average edge relaxations: %d\n", edgeRelaxations/completed)
		fmt.Printf("Paths differing from the reference (equal length): %v\n", differentPaths)

		fmt.Printf("%v/%v invalid Result (source/target).\n", len(invalidResults), completed)
		for i, result := range invalidResults {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid result\n", i, result, targets[result].origin, targets[result].destination)
		}

		fmt.Printf("%v/%v invalid path lengths.\n", len(invalidLengths), completed)
		for i, testcase := range invalidLengths {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid length. Reference: %v\n", i, testcase, targets[testcase].origin, targets[testcase].destination, targets[testcase].length)
		}

		fmt.Printf("%v/%v invalid hops number.\n", len(invalidHops), completed)
		for i, testcase := range invalidHops {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid #hops. Reference: %v\n", i, testcase, targets[testcase].origin, targets[testcase].destination, len(targets[testcase].path))
		}
	}

	// catch interrupt to still show already calculated results
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		showResults()
		os.Exit(0)
	}()

	for i, target := range targets {
		start := time.Now()
		length := navigator.ComputeShortestPath(target.origin, target.destination)
		elapsed := time.Since(start)

		pqPops += navigator.GetPqPops()
		pqUpdates += navigator.GetPqUpdates()
		edgeRelaxations += navigator.GetEdgeRelaxations()
		relaxationAttempts += navigator.GetRelaxationAttempts()

		path := navigator.GetPath(target.origin, target.destination)
		elapsedPath := time.Since(start)

		fmt.Printf("[%3v TIME-Navigate, TIME-Path, PQ Pops, PQ Updates, relaxed Edges, relax attempts] = %12s, %12s, %7d, %7d, %7d, %7d\n", i, elapsed, elapsedPath, navigator.GetPqPops(), navigator.GetPqUpdates(), navigator.GetEdgeRelaxations(), navigator.GetRelaxationAttempts())

		if math.Abs(length-target.length) > 1e-6 {
			invalidLengths = append(invalidLengths, i)
		}
		if length > -1 && (path[0] != target.origin || path[len(path)-1] != target.destination) {
			invalidResults = append(invalidResults, i)
		}
		if length > -1 && math.Abs(p.PathLength(navigator.GetGraph(), path)-length) > 1e-6 {
			invalidResults = append(invalidResults, i)
		}
		if len(target.path) != len(path) {
			invalidHops = append(invalidHops, i)
		} else if slice.Compare(target.path, path) > 0 {
			// equal cost paths may be resolved differently
			differentPaths++
		}

		runtime += elapsed
		runtimeWithPathExtraction += elapsedPath
		completed++
	}
	// normal termination, show results
	showResults()
}
