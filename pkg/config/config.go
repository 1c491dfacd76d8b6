package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/natevvv/voyage-planner/pkg/port"
	"github.com/natevvv/voyage-planner/pkg/ship"
	"github.com/natevvv/voyage-planner/pkg/voyage"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

const (
	EnvConfig     = "VOYAGE_CONFIG"
	EnvAddr       = "VOYAGE_ADDR"
	EnvGraph      = "VOYAGE_GRAPH"
	EnvWeatherURL = "VOYAGE_WEATHER_URL"
)

type Server struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

type Graph struct {
	File     string `yaml:"file"`
	Validate bool   `yaml:"validate"`
}

type Routing struct {
	Navigator    string  `yaml:"navigator"`
	MaxSegmentKm float64 `yaml:"maxSegmentKm"`
	DebugLevel   int     `yaml:"debugLevel"`
}

type Weather struct {
	BaseURL      string        `yaml:"baseURL"`
	ForecastDays int           `yaml:"forecastDays"`
	MaxStops     int           `yaml:"maxStops"`
	Timeout      time.Duration `yaml:"timeout"`
}

type Config struct {
	Server    Server           `yaml:"server"`
	Graph     Graph            `yaml:"graph"`
	Routing   Routing          `yaml:"routing"`
	Weather   Weather          `yaml:"weather"`
	Economics voyage.Economics `yaml:"economics"`
	Ships     []ship.Profile   `yaml:"ships"`
	Ports     []port.Port      `yaml:"ports"`
}

// Default returns the embedded configuration
func Default() (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
		return nil, fmt.Errorf("default config: %w", err)
	}
	return &c, nil
}

// Load reads an optional .env file and the config file (falling back to $VOYAGE_CONFIG) over the defaults.
// Environment variables override the file. An empty filename without $VOYAGE_CONFIG uses the defaults only.
func Load(filename string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Could not read .env: %v\n", err)
	}

	c, err := Default()
	if err != nil {
		return nil, err
	}

	if filename == "" {
		filename = os.Getenv(EnvConfig)
	}
	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		if err := c.Merge(data); err != nil {
			return nil, fmt.Errorf("%v: %w", filename, err)
		}
	}

	c.applyEnv()
	return c, c.Validate()
}

// Merge overlays YAML data. Lists given in data replace the current lists.
func (c *Config) Merge(data []byte) error {
	return yaml.Unmarshal(data, c)
}

func (c *Config) applyEnv() {
	if addr := os.Getenv(EnvAddr); addr != "" {
		c.Server.Addr = addr
	}
	if file := os.Getenv(EnvGraph); file != "" {
		c.Graph.File = file
	}
	if url := os.Getenv(EnvWeatherURL); url != "" {
		c.Weather.BaseURL = url
	}
}

func (c *Config) Validate() error {
	if c.Routing.MaxSegmentKm < 0 {
		return fmt.Errorf("routing.maxSegmentKm must not be negative")
	}
	if c.Weather.MaxStops < 0 {
		return fmt.Errorf("weather.maxStops must not be negative")
	}
	if len(c.Ships) == 0 {
		return fmt.Errorf("no ships configured")
	}
	return nil
}

// ShipCatalog creates the catalog of the configured ships
func (c *Config) ShipCatalog() (*ship.Catalog, error) {
	return ship.NewCatalog(c.Ships)
}

// PortRegistry creates the registry of the configured ports
func (c *Config) PortRegistry() (*port.Registry, error) {
	return port.NewRegistry(c.Ports)
}
