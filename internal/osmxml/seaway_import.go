package osmxml

import (
	"context"
	"io"
	"os"

	geo "github.com/natevvv/voyage-planner/pkg/geometry"
	"github.com/natevvv/voyage-planner/pkg/seaway"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
)

// SeawayImporter reads sea lanes and harbours from an OSM xml document.
// OSM xml lists all nodes before the ways, so a single pass suffices.
type SeawayImporter struct {
	lanes []*seaway.Lane
	nodes map[int64]seaway.Node
}

func NewSeawayImporter() *SeawayImporter {
	return &SeawayImporter{
		lanes: make([]*seaway.Lane, 0),
		nodes: make(map[int64]seaway.Node),
	}
}

func (si *SeawayImporter) ImportFile(ctx context.Context, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return si.Import(ctx, file)
}

func (si *SeawayImporter) Import(ctx context.Context, r io.Reader) error {
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			n := seaway.Node{ID: int64(o.ID), Point: geo.MakePoint(o.Lat, o.Lon)}
			tags := o.Tags.Map()
			if seaway.IsHarbour(tags) {
				n.Name = tags["name"]
			}
			si.nodes[n.ID] = n
		case *osm.Way:
			tags := o.Tags.Map()
			laneType := seaway.LaneTypeFromTags(tags)
			if laneType == seaway.Unknown {
				continue
			}
			lane := &seaway.Lane{
				ID:      int64(o.ID),
				Type:    laneType,
				Tags:    tags,
				NodeIDs: make([]int64, 0, len(o.Nodes)),
			}
			for _, wn := range o.Nodes {
				lane.NodeIDs = append(lane.NodeIDs, int64(wn.ID))
			}
			si.lanes = append(si.lanes, lane)
		}
	}
	return scanner.Err()
}

func (si *SeawayImporter) Lanes() []*seaway.Lane {
	return si.lanes
}

func (si *SeawayImporter) Nodes() map[int64]seaway.Node {
	return si.nodes
}
