package weather

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/natevvv/voyage-planner/pkg/graph"
)

var ErrForecastOnWaypoint = errors.New("forecast keyed by a waypoint")

// Sample is a wind observation. The direction is meteorological, the wind blows from it.
type Sample struct {
	Time          time.Time `json:"time"`
	WindSpeed     float64   `json:"windSpeed"`     // m/s
	WindDirection float64   `json:"windDirection"` // degrees
}

// Forecast maps port ids to their samples ordered by time
type Forecast map[graph.NodeId][]Sample

// CheckPorts verifies that every forecast key names a port of the path.
// Keys that are not on the path at all are ignored.
func (f Forecast) CheckPorts(nodes []graph.Node) error {
	var errs []error
	for _, n := range nodes {
		if _, ok := f[n.Id]; ok && !n.IsPort {
			errs = append(errs, fmt.Errorf("%w: %v", ErrForecastOnWaypoint, n.Id))
		}
	}
	return errors.Join(errs...)
}

// SampleAt returns the sample nearest in time to t. Targets after the last sample
// wrap around, the forecast is treated as a repeating cycle. Targets before the first sample
// get the first one. It returns false if there are no samples.
func SampleAt(samples []Sample, t time.Time) (Sample, bool) {
	if len(samples) == 0 {
		return Sample{}, false
	}
	first, last := samples[0].Time, samples[len(samples)-1].Time
	span := last.Sub(first)
	if t.After(last) && span > 0 {
		t = first.Add(t.Sub(first) % span)
	}

	i := sort.Search(len(samples), func(i int) bool { return !samples[i].Time.Before(t) })
	switch {
	case i == 0:
		return samples[0], true
	case i == len(samples):
		return samples[len(samples)-1], true
	}
	if t.Sub(samples[i-1].Time) <= samples[i].Time.Sub(t) {
		return samples[i-1], true
	}
	return samples[i], true
}
