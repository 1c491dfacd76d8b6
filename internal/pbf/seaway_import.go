package pbf

import (
	"io"
	"os"
	"runtime"
	"sync"

	geo "github.com/natevvv/voyage-planner/pkg/geometry"
	"github.com/natevvv/voyage-planner/pkg/seaway"
	"github.com/qedus/osmpbf"
)

// SeawayImporter reads sea lanes and harbours from an OSM pbf file
type SeawayImporter struct {
	filename string
	lanes    []*seaway.Lane
	nodes    map[int64]seaway.Node
}

func NewSeawayImporter(filename string) *SeawayImporter {
	return &SeawayImporter{
		filename: filename,
		lanes:    make([]*seaway.Lane, 0),
		nodes:    make(map[int64]seaway.Node),
	}
}

func (si *SeawayImporter) Import() error {
	if err := si.collectNodes(); err != nil {
		return err
	}

	file, err := os.Open(si.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	err = decoder.Start(runtime.GOMAXPROCS(-1))
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	lanesChan := make(chan *seaway.Lane, 1000)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for lane := range lanesChan {
			si.lanes = append(si.lanes, lane)
		}
	}()

	for {
		v, err := decoder.Decode()
		if err == io.EOF {
			break
		} else if err != nil {
			close(lanesChan)
			wg.Wait()
			return err
		}
		if way, ok := v.(*osmpbf.Way); ok {
			laneType := seaway.LaneTypeFromTags(way.Tags)
			if laneType == seaway.Unknown {
				continue
			}
			lanesChan <- &seaway.Lane{
				ID:      way.ID,
				Type:    laneType,
				Tags:    way.Tags,
				NodeIDs: way.NodeIDs,
			}
		}
	}
	close(lanesChan)

	wg.Wait()
	return nil
}

func (si *SeawayImporter) Lanes() []*seaway.Lane {
	return si.lanes
}

func (si *SeawayImporter) Nodes() map[int64]seaway.Node {
	return si.nodes
}

func (si *SeawayImporter) collectNodes() error {
	file, err := os.Open(si.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	err = decoder.Start(runtime.GOMAXPROCS(-1))
	if err != nil {
		return err
	}

	for {
		v, err := decoder.Decode()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if node, ok := v.(*osmpbf.Node); ok {
			n := seaway.Node{ID: node.ID, Point: geo.MakePoint(node.Lat, node.Lon)}
			if seaway.IsHarbour(node.Tags) {
				n.Name = node.Tags["name"]
			}
			si.nodes[node.ID] = n
		}
	}
}
