package seaway

import (
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection renders the lanes as LineStrings and the harbours as Points
func FeatureCollection(lanes []*Lane, nodes map[int64]Node) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, lane := range lanes {
		line := make(orb.LineString, 0, len(lane.NodeIDs))
		for _, id := range lane.NodeIDs {
			if n, ok := nodes[id]; ok {
				line = append(line, n.Point.Orb())
			}
		}
		if len(line) < 2 {
			continue
		}
		feature := geojson.NewFeature(line)
		feature.Properties["id"] = lane.ID
		feature.Properties["type"] = lane.Type.String()
		fc.Append(feature)
	}
	for _, n := range nodes {
		if !n.IsPort() {
			continue
		}
		feature := geojson.NewFeature(n.Point.Orb())
		feature.Properties["name"] = n.Name
		fc.Append(feature)
	}
	return fc
}

func ExportGeoJSON(lanes []*Lane, nodes map[int64]Node, filename string) error {
	data, err := FeatureCollection(lanes, nodes).MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
