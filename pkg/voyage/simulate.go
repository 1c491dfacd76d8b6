package voyage

import (
	"math"
	"time"

	geo "github.com/natevvv/voyage-planner/pkg/geometry"
	"github.com/natevvv/voyage-planner/pkg/graph"
	"github.com/natevvv/voyage-planner/pkg/ship"
	"github.com/natevvv/voyage-planner/pkg/weather"
)

const (
	KnotsPerMeterPerSecond = 1.94384
	MinSpeedKnots          = ship.MinSpeedKnots

	economySpeedReduction = 0.3 // economy sailing slows down to 70% of the cruise speed

	// headwinds above the threshold slow down economy sailing further, up to 15%
	headwindThreshold = 0.2
	headwindReduction = 0.15

	hotelLoadShare   = 0.2
	resistanceFactor = 0.15
)

// Point is the state of the ship at the end of a segment. Distance, time, fuel and CO2 are cumulative.
type Point struct {
	NodeId       graph.NodeId   `json:"nodeId"`
	Lat          float64        `json:"lat"`
	Lon          float64        `json:"lon"`
	DistanceKm   float64        `json:"distanceKm"`
	TimeHours    float64        `json:"timeHours"`
	SpeedKnots   float64        `json:"speedKnots"`
	FuelKg       float64        `json:"fuelKg"`
	Co2Kg        float64        `json:"co2Kg"`
	Wind         weather.Sample `json:"wind"`
	IsStop       bool           `json:"isStop"`
	StopName     string         `json:"stopName,omitempty"`
	Bearing      float64        `json:"bearing"`
	SpeedPenalty float64        `json:"speedPenalty"` // knots
	WindFactor   float64        `json:"windFactor"`   // +1 headwind, -1 tailwind
}

type Summary struct {
	TotalTimeHours  float64 `json:"totalTimeHours"`
	TotalDistanceKm float64 `json:"totalDistanceKm"`
	TotalFuelKg     float64 `json:"totalFuelKg"`
	TotalCo2Kg      float64 `json:"totalCo2Kg"`
	AvgSpeedKnots   float64 `json:"avgSpeedKnots"`
	Points          []Point `json:"points"`
}

// Simulate sails the path segment by segment. Every segment sees the wind at the moment the ship
// gets there. optimization is clamped to [0, 1], 0 sails for speed and 1 for fuel economy.
// The result has one point per path node; the first one is the departure at rest.
func Simulate(path []graph.Node, profile ship.Profile, forecast weather.Forecast, start time.Time, optimization float64) Summary {
	if len(path) < 2 {
		return Summary{Points: make([]Point, 0)}
	}
	optimization = math.Max(0, math.Min(1, optimization))

	resolver := weather.NewResolver(path, forecast)
	points := make([]Point, 0, len(path))
	points = append(points, departure(path[0]))

	baseRate := profile.FuelPerNm * profile.CruiseSpeed // kg/h at cruise speed
	hotelRate := baseRate * hotelLoadShare
	propulsionRate := baseRate - hotelRate

	totalNm, totalHours, totalFuel := 0.0, 0.0, 0.0
	for i := 0; i+1 < len(path); i++ {
		from, to := &path[i], &path[i+1]

		distance := graph.SegmentLength(from, to)
		bearing := from.Point.BearingTo(to.Point)

		elapsed := time.Duration(totalHours * float64(time.Hour))
		wind := resolver.Resolve(start.Add(elapsed), i, bearing)

		windFactor := math.Cos(geo.DegToRad(math.Abs(wind.WindDirection - bearing)))
		targetSpeed := profile.CruiseSpeed * (1 - economySpeedReduction*optimization)
		if optimization > 0 && windFactor > headwindThreshold {
			targetSpeed *= 1 - headwindReduction*optimization*windFactor
		}
		penalty := wind.WindSpeed * KnotsPerMeterPerSecond * windFactor * profile.Windage
		speed := math.Max(MinSpeedKnots, math.Min(profile.MaxSpeed, targetSpeed-penalty))

		hours := distance / speed
		ratio := speed / profile.CruiseSpeed
		fuel := (propulsionRate*ratio*ratio*ratio + hotelRate) * hours * (1 + math.Max(0, windFactor*resistanceFactor))

		totalNm += distance
		totalHours += hours
		totalFuel += fuel

		point := Point{
			NodeId:       to.Id,
			Lat:          to.Point.Lat(),
			Lon:          to.Point.Lon(),
			DistanceKm:   totalNm * geo.KmPerNauticalMile,
			TimeHours:    totalHours,
			SpeedKnots:   speed,
			FuelKg:       totalFuel,
			Co2Kg:        totalFuel * profile.Co2Factor,
			Wind:         wind,
			IsStop:       to.IsPort,
			Bearing:      bearing,
			SpeedPenalty: penalty,
			WindFactor:   windFactor,
		}
		if to.IsPort {
			point.StopName = to.Id
		}
		points = append(points, point)
	}

	summary := Summary{
		TotalTimeHours:  totalHours,
		TotalDistanceKm: totalNm * geo.KmPerNauticalMile,
		TotalFuelKg:     totalFuel,
		TotalCo2Kg:      totalFuel * profile.Co2Factor,
		Points:          points,
	}
	if totalHours > 0 {
		summary.AvgSpeedKnots = totalNm / totalHours
	}
	return summary
}

func departure(n graph.Node) Point {
	p := Point{
		NodeId: n.Id,
		Lat:    n.Point.Lat(),
		Lon:    n.Point.Lon(),
		IsStop: n.IsPort,
	}
	if n.IsPort {
		p.StopName = n.Id
	}
	return p
}
