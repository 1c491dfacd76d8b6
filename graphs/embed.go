// Package graphs holds the bundled maritime graph and builders for graph files
package graphs

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/natevvv/voyage-planner/internal/osmxml"
	"github.com/natevvv/voyage-planner/internal/pbf"
	"github.com/natevvv/voyage-planner/pkg/graph"
	"github.com/natevvv/voyage-planner/pkg/seaway"
)

//go:embed maritime.json
var maritimeJSON []byte

// Default builds the bundled maritime graph
func Default() graph.Builder {
	return func() (graph.Graph, error) {
		alg, err := graph.NewAdjacencyListFromJSON(maritimeJSON)
		if err != nil {
			return nil, err
		}
		return alg, nil
	}
}

// FromFile builds a graph from a file, the format is chosen by the extension:
// .json (node map), .fmi, .osm (OSM xml) or .pbf (OSM pbf).
// An empty filename selects the bundled graph.
func FromFile(filename string) graph.Builder {
	if filename == "" {
		return Default()
	}
	return func() (graph.Graph, error) {
		switch ext := strings.ToLower(filepath.Ext(filename)); ext {
		case ".json":
			return wrap(graph.NewAdjacencyListFromJSONFile(filename))
		case ".fmi":
			return wrap(graph.NewAdjacencyListFromFmiFile(filename))
		case ".osm":
			importer := osmxml.NewSeawayImporter()
			if err := importer.ImportFile(context.Background(), filename); err != nil {
				return nil, err
			}
			return fromLanes(importer.Lanes(), importer.Nodes()), nil
		case ".pbf":
			importer := pbf.NewSeawayImporter(filename)
			if err := importer.Import(); err != nil {
				return nil, err
			}
			return fromLanes(importer.Lanes(), importer.Nodes()), nil
		default:
			return nil, fmt.Errorf("%w: unsupported extension %q", graph.ErrInvalidFormat, ext)
		}
	}
}

func fromLanes(lanes []*seaway.Lane, nodes map[int64]seaway.Node) graph.Graph {
	merger := seaway.NewMerger(lanes)
	merger.Merge()
	log.Printf("Merged %d lanes into %d, %d unmergable\n", merger.MergeCount(), len(merger.Lanes()), merger.UnmergableLaneCount())
	return seaway.BuildGraph(merger.Lanes(), nodes, seaway.DefaultHarbourRadiusKm)
}

func wrap(alg *graph.AdjacencyListGraph, err error) (graph.Graph, error) {
	if err != nil {
		return nil, err
	}
	return alg, nil
}
