package weather

import (
	"time"

	geo "github.com/natevvv/voyage-planner/pkg/geometry"
	"github.com/natevvv/voyage-planner/pkg/graph"
)

// FallbackWindSpeed is used when no port of the route has a forecast (m/s)
const FallbackWindSpeed = 5.0

// Resolver blends the forecasts of the ports around a path position
type Resolver struct {
	path       []graph.Node
	forecast   Forecast
	cumulative []float64 // distance from the path start in nautical miles
}

func NewResolver(path []graph.Node, forecast Forecast) *Resolver {
	cumulative := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		cumulative[i] = cumulative[i-1] + graph.SegmentLength(&path[i-1], &path[i])
	}
	return &Resolver{path: path, forecast: forecast, cumulative: cumulative}
}

// Resolve returns the wind for the segment starting at path position index at time t.
// The nearest ports with a forecast before (including index) and after the position are
// interpolated by path distance. Without any forecast the fallback blows against the bearing
// plus 180 degrees with FallbackWindSpeed.
func (r *Resolver) Resolve(t time.Time, index int, bearing float64) Sample {
	prev, prevSample, hasPrev := r.scan(t, index, -1)
	next, nextSample, hasNext := r.scan(t, index+1, 1)

	switch {
	case !hasPrev && !hasNext:
		return Sample{Time: t, WindSpeed: FallbackWindSpeed, WindDirection: geo.NormalizeDegrees(bearing + 180)}
	case !hasNext:
		return prevSample
	case !hasPrev:
		return nextSample
	}

	fraction := 0.0
	if total := r.cumulative[next] - r.cumulative[prev]; total > 0 {
		fraction = (r.cumulative[index] - r.cumulative[prev]) / total
	}
	return Sample{
		Time:          t,
		WindSpeed:     prevSample.WindSpeed + (nextSample.WindSpeed-prevSample.WindSpeed)*fraction,
		WindDirection: geo.NormalizeDegrees(prevSample.WindDirection + geo.AngleDifference(prevSample.WindDirection, nextSample.WindDirection)*fraction),
	}
}

// scan walks from start in the given direction to the first port with samples
func (r *Resolver) scan(t time.Time, start, step int) (int, Sample, bool) {
	for i := start; i >= 0 && i < len(r.path); i += step {
		if !r.path[i].IsPort {
			continue
		}
		if sample, ok := SampleAt(r.forecast[r.path[i].Id], t); ok {
			return i, sample, true
		}
	}
	return -1, Sample{}, false
}

// Distance returns the cumulative path distance at position index in nautical miles
func (r *Resolver) Distance(index int) float64 {
	return r.cumulative[index]
}
