package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natevvv/voyage-planner/graphs"
	"github.com/natevvv/voyage-planner/internal/osmxml"
	"github.com/natevvv/voyage-planner/internal/pbf"
	"github.com/natevvv/voyage-planner/pkg/graph"
	"github.com/natevvv/voyage-planner/pkg/seaway"
)

func main() {
	input := flag.String("in", "", "Input graph (.json, .fmi, .osm, .pbf), empty for the bundled graph")
	output := flag.String("out", "maritime.fmi", "Output fmi file")
	validate := flag.Bool("validate", true, "Check that all arcs are symmetric and point to known nodes")
	lanes := flag.String("lanes", "", "Export the merged OSM sea lanes of the input as GeoJSON to this file")
	nodeMap := flag.String("json", "", "Export the graph as JSON node map to this file")
	flag.Parse()

	start := time.Now()
	g, err := graphs.FromFile(*input)()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[TIME] Import: %s\n", time.Since(start))
	fmt.Printf("Nodes: %d\n", g.NodeCount())
	fmt.Printf("Arcs: %d\n", g.ArcCount())
	fmt.Printf("Ports: %d\n", len(graph.Ports(g)))

	if *validate {
		start = time.Now()
		if err := graph.Validate(g); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("[TIME] Validate: %s\n", time.Since(start))
	}

	if *output != "" {
		start = time.Now()
		if err := graph.WriteFmi(g, *output); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("[TIME] Export: %s\n", time.Since(start))
		fmt.Printf("Exported graph to %s\n", *output)
	}

	if *nodeMap != "" {
		start = time.Now()
		data, err := graph.MarshalNodeMap(g)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*nodeMap, data, 0644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("[TIME] JSON export: %s\n", time.Since(start))
		fmt.Printf("Exported node map to %s\n", *nodeMap)
	}

	if *lanes != "" {
		start = time.Now()
		if err := exportLanes(*input, *lanes); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("[TIME] Lane export: %s\n", time.Since(start))
		fmt.Printf("Exported lanes to %s\n", *lanes)
	}
}

func exportLanes(input, output string) error {
	var laneList []*seaway.Lane
	var nodes map[int64]seaway.Node
	switch strings.ToLower(filepath.Ext(input)) {
	case ".osm":
		importer := osmxml.NewSeawayImporter()
		if err := importer.ImportFile(context.Background(), input); err != nil {
			return err
		}
		laneList, nodes = importer.Lanes(), importer.Nodes()
	case ".pbf":
		importer := pbf.NewSeawayImporter(input)
		if err := importer.Import(); err != nil {
			return err
		}
		laneList, nodes = importer.Lanes(), importer.Nodes()
	default:
		return fmt.Errorf("lanes can only be exported from .osm or .pbf input, got %q", input)
	}

	merger := seaway.NewMerger(laneList)
	merger.Merge()
	fmt.Printf("Lanes: %d\n", len(merger.Lanes()))
	fmt.Printf("Merges: %d\n", merger.MergeCount())
	fmt.Printf("Unmergable lanes: %d\n", merger.UnmergableLaneCount())
	return seaway.ExportGeoJSON(merger.Lanes(), nodes, output)
}
