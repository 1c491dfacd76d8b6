package voyage

import (
	"math"

	"github.com/natevvv/voyage-planner/pkg/ship"
)

// DefaultTimelineStepHours is the sampling interval of voyage timelines
const DefaultTimelineStepHours = 1.0

type Economics struct {
	FuelPricePerTon   float64 `yaml:"fuelPricePerTon" json:"fuelPricePerTon"`     // $/t
	CharterRatePerDay float64 `yaml:"charterRatePerDay" json:"charterRatePerDay"` // $/day
}

// Comparison weighs a voyage against a baseline. Positive savings favor the voyage,
// a positive time difference means the voyage takes longer.
type Comparison struct {
	TimeDifferenceHours float64 `json:"timeDifferenceHours"`
	Co2SavedKg          float64 `json:"co2SavedKg"`
	FuelSavedKg         float64 `json:"fuelSavedKg"`
	FuelSavings         float64 `json:"fuelSavings"`
	TimeCost            float64 `json:"timeCost"`
	NetBenefit          float64 `json:"netBenefit"`
}

func Compare(current, baseline Summary, profile ship.Profile, economics Economics) Comparison {
	timeDifference := current.TotalTimeHours - baseline.TotalTimeHours
	co2Saved := baseline.TotalCo2Kg - current.TotalCo2Kg

	fuelSaved := baseline.TotalFuelKg - current.TotalFuelKg
	if profile.Co2Factor > 0 {
		fuelSaved = co2Saved / profile.Co2Factor
	}

	fuelSavings := fuelSaved / 1000 * economics.FuelPricePerTon
	timeCost := timeDifference / 24 * economics.CharterRatePerDay
	return Comparison{
		TimeDifferenceHours: timeDifference,
		Co2SavedKg:          co2Saved,
		FuelSavedKg:         fuelSaved,
		FuelSavings:         fuelSavings,
		TimeCost:            timeCost,
		NetBenefit:          fuelSavings - timeCost,
	}
}

// DistanceAtTime interpolates the distance sailed after the given hours in km
func DistanceAtTime(summary Summary, hours float64) float64 {
	points := summary.Points
	if len(points) == 0 || hours <= 0 {
		return 0
	}
	last := points[len(points)-1]
	if hours >= last.TimeHours {
		return last.DistanceKm
	}
	for i := 1; i < len(points); i++ {
		p1, p2 := points[i-1], points[i]
		if p2.TimeHours < hours {
			continue
		}
		if p2.TimeHours == p1.TimeHours {
			return p2.DistanceKm
		}
		fraction := (hours - p1.TimeHours) / (p2.TimeHours - p1.TimeHours)
		return p1.DistanceKm + fraction*(p2.DistanceKm-p1.DistanceKm)
	}
	return last.DistanceKm
}

// TimelineEntry holds the distance both voyages have sailed after the same elapsed time
type TimelineEntry struct {
	Hours              float64 `json:"hours"`
	DistanceKm         float64 `json:"distanceKm"`
	BaselineDistanceKm float64 `json:"baselineDistanceKm"`
}

// Timeline samples the progress of a voyage and its baseline every stepHours until both have arrived.
// The last entry is the later arrival.
func Timeline(current, baseline Summary, stepHours float64) []TimelineEntry {
	if stepHours <= 0 {
		stepHours = DefaultTimelineStepHours
	}
	end := math.Max(current.TotalTimeHours, baseline.TotalTimeHours)
	entry := func(hours float64) TimelineEntry {
		return TimelineEntry{
			Hours:              hours,
			DistanceKm:         DistanceAtTime(current, hours),
			BaselineDistanceKm: DistanceAtTime(baseline, hours),
		}
	}

	steps := int(math.Ceil(end / stepHours))
	timeline := make([]TimelineEntry, 0, steps+1)
	for i := 0; i < steps; i++ {
		timeline = append(timeline, entry(float64(i)*stepHours))
	}
	return append(timeline, entry(end))
}

// Stops returns the points at ports
func (s Summary) Stops() []Point {
	stops := make([]Point, 0)
	for _, p := range s.Points {
		if p.IsStop {
			stops = append(stops, p)
		}
	}
	return stops
}
