package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if c.Routing.MaxSegmentKm != 25 || c.Weather.MaxStops != 10 || c.Weather.ForecastDays != 14 {
		t.Errorf("unexpected defaults: %+v %+v", c.Routing, c.Weather)
	}
	if c.Weather.Timeout != 15*time.Second {
		t.Errorf("weather timeout: Is %v, should be 15s", c.Weather.Timeout)
	}
	if c.Economics.FuelPricePerTon != 650 || c.Economics.CharterRatePerDay != 25000 {
		t.Errorf("unexpected economics: %+v", c.Economics)
	}
	catalog, err := c.ShipCatalog()
	if err != nil {
		t.Fatal(err)
	}
	if catalog.Len() != 4 {
		t.Errorf("ship count: Is %v, should be 4", catalog.Len())
	}
	if emma, err := catalog.Get(""); err != nil || emma.Id != "emma_maersk" {
		t.Errorf("default ship: Is %v (%v), should be emma_maersk", emma.Id, err)
	}
	registry, err := c.PortRegistry()
	if err != nil {
		t.Fatal(err)
	}
	if registry.Len() != 17 {
		t.Errorf("port count: Is %v, should be 17", registry.Len())
	}
	if hk, err := registry.Get("Hong Kong"); err != nil || hk.Lat != 22.15 || hk.Region != "Asia" {
		t.Errorf("Hong Kong: Is %+v (%v)", hk, err)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "config.yaml")
	data := []byte(`
server:
  addr: ":9000"
routing:
  navigator: reference
ships:
  - id: feeder
    name: Feeder
    type: container
    cruiseSpeed: 16
    maxSpeed: 18
    fuelPerNm: 80
    co2Factor: 3.114
    windage: 0.5
`)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvGraph, "sea.fmi")
	t.Setenv(EnvWeatherURL, "http://localhost:1234/forecast")

	c, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}
	if c.Server.Addr != ":9000" || c.Routing.Navigator != "reference" {
		t.Errorf("file values not applied: %+v %+v", c.Server, c.Routing)
	}
	if c.Routing.MaxSegmentKm != 25 {
		t.Errorf("defaults should survive: maxSegmentKm is %v", c.Routing.MaxSegmentKm)
	}
	if len(c.Ships) != 1 || c.Ships[0].Id != "feeder" {
		t.Errorf("ship list should be replaced: %v", c.Ships)
	}
	if c.Graph.File != "sea.fmi" || c.Weather.BaseURL != "http://localhost:1234/forecast" {
		t.Errorf("environment not applied: %+v %+v", c.Graph, c.Weather)
	}

	t.Setenv(EnvAddr, ":7000")
	t.Setenv(EnvConfig, filename)
	c, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Server.Addr != ":7000" || c.Routing.Navigator != "reference" {
		t.Errorf("config from environment not applied: %+v %+v", c.Server, c.Routing)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("missing config file should fail")
	}
}
