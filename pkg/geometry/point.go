package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const KmPerNauticalMile = 1.852

// minutes of arc per degree, one nautical mile each
const nmPerDegree = 60.0

// Point is a position on the globe. It is stored in orb order (lon, lat).
type Point orb.Point

func MakePoint(lat, lon float64) Point {
	return Point{lon, lat}
}

func NewPoint(lat, lon float64) *Point {
	p := MakePoint(lat, lon)
	return &p
}

func (p Point) Lat() float64   { return p[1] }
func (p Point) Lon() float64   { return p[0] }
func (p Point) Orb() orb.Point { return orb.Point(p) }
func (p Point) String() string { return fmt.Sprintf("(%.5f, %.5f)", p.Lat(), p.Lon()) }

// DistanceTo returns the great-circle distance in kilometers
func (p Point) DistanceTo(q Point) float64 {
	return geo.DistanceHaversine(p.Orb(), q.Orb()) / 1000
}

// NauticalMilesTo returns the great-circle distance in nautical miles
func (p Point) NauticalMilesTo(q Point) float64 {
	return p.DistanceTo(q) / KmPerNauticalMile
}

// FlatNauticalMilesTo treats lat/lon degrees as a plane and scales them with 60 nm per degree.
// It overestimates east-west distances away from the equator.
func (p Point) FlatNauticalMilesTo(q Point) float64 {
	return math.Hypot(p.Lat()-q.Lat(), p.Lon()-q.Lon()) * nmPerDegree
}

// BearingTo returns the initial forward azimuth from p to q in [0, 360)
func (p Point) BearingTo(q Point) float64 {
	return NormalizeDegrees(geo.Bearing(p.Orb(), q.Orb()))
}

// Lerp interpolates latitude and longitude linearly. This is not great-circle correct.
func Lerp(p, q Point, fraction float64) Point {
	return MakePoint(
		p.Lat()+(q.Lat()-p.Lat())*fraction,
		p.Lon()+(q.Lon()-p.Lon())*fraction,
	)
}

// NormalizeDegrees maps any angle into [0, 360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// tiny negative angles round up to 360
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// AngleDifference returns the signed shortest rotation from -> to in [-180, 180]
func AngleDifference(from, to float64) float64 {
	diff := math.Mod(to-from, 360)
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}
	return diff
}

func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
