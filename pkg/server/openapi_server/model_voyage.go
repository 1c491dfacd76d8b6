package openapi_server

import (
	"fmt"
	"time"

	"github.com/natevvv/voyage-planner/pkg/ship"
	"github.com/natevvv/voyage-planner/pkg/voyage"
)

type VoyageRequest struct {
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	Ship              string     `json:"ship,omitempty"`              // default ship if empty
	StartTime         *time.Time `json:"startTime,omitempty"`         // now if empty
	Optimization      float64    `json:"optimization,omitempty"`      // 0 speed .. 1 economy
	FuelPricePerTon   *float64   `json:"fuelPricePerTon,omitempty"`   // configured price if empty
	CharterRatePerDay *float64   `json:"charterRatePerDay,omitempty"` // configured rate if empty
}

// AssertVoyageRequestRequired checks if the required fields are not zero-ed and the values are in range
func AssertVoyageRequestRequired(obj VoyageRequest) error {
	err := assertRequired([]string{"origin", "destination"}, map[string]interface{}{
		"origin":      obj.Origin,
		"destination": obj.Destination,
	})
	if err != nil {
		return err
	}
	if obj.Optimization < 0 || obj.Optimization > 1 {
		return &ParsingError{Err: fmt.Errorf("optimization %v is not in [0, 1]", obj.Optimization)}
	}
	return nil
}

type VoyageResult struct {
	Id           string                 `json:"id"`
	Route        RouteResult            `json:"route"`
	Ship         ship.Profile           `json:"ship"`
	StartTime    time.Time              `json:"startTime"`
	Optimization float64                `json:"optimization"`
	WeatherStops []string               `json:"weatherStops"` // ports with a forecast
	Voyage       voyage.Summary         `json:"voyage"`
	Baseline     voyage.Summary         `json:"baseline"` // the same voyage sailed for speed
	Stops        []voyage.Point         `json:"stops"`    // port calls of the voyage
	Timeline     []voyage.TimelineEntry `json:"timeline"` // hourly progress of voyage and baseline
	Comparison   voyage.Comparison      `json:"comparison"`
}
