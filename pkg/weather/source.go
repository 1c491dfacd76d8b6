package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/natevvv/voyage-planner/pkg/graph"
	"github.com/natevvv/voyage-planner/pkg/slice"
)

const (
	DefaultBaseURL      = "https://api.open-meteo.com/v1/forecast"
	DefaultForecastDays = 14
	DefaultMaxStops     = 10
)

// Source provides the forecast of a single port
type Source interface {
	Fetch(ctx context.Context, node graph.Node) ([]Sample, error)
}

// OpenMeteo fetches hourly 10m wind forecasts from the Open-Meteo API
type OpenMeteo struct {
	BaseURL      string
	ForecastDays int
	Client       *http.Client
}

func NewOpenMeteo(baseURL string, forecastDays int, timeout time.Duration) *OpenMeteo {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if forecastDays <= 0 {
		forecastDays = DefaultForecastDays
	}
	return &OpenMeteo{
		BaseURL:      baseURL,
		ForecastDays: forecastDays,
		Client:       &http.Client{Timeout: timeout},
	}
}

type openMeteoResponse struct {
	Hourly *struct {
		Time          []string  `json:"time"`
		WindSpeed     []float64 `json:"wind_speed_10m"`
		WindDirection []float64 `json:"wind_direction_10m"`
	} `json:"hourly"`
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// timestamps are requested in GMT without offset
const openMeteoTimeLayout = "2006-01-02T15:04"

func (om *OpenMeteo) requestURL(node graph.Node) string {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(node.Point.Lat(), 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(node.Point.Lon(), 'f', -1, 64))
	query.Set("hourly", "wind_speed_10m,wind_direction_10m")
	query.Set("wind_speed_unit", "ms")
	query.Set("forecast_days", strconv.Itoa(om.ForecastDays))
	query.Set("timezone", "GMT")
	return om.BaseURL + "?" + query.Encode()
}

func (om *OpenMeteo) Fetch(ctx context.Context, node graph.Node) ([]Sample, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, om.requestURL(node), nil)
	if err != nil {
		return nil, err
	}
	resp, err := om.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("forecast for %v: %w", node.Id, err)
	}
	if resp.StatusCode != http.StatusOK || body.Error {
		return nil, fmt.Errorf("forecast for %v: status %v: %v", node.Id, resp.StatusCode, body.Reason)
	}
	if body.Hourly == nil {
		return nil, fmt.Errorf("forecast for %v: no hourly data", node.Id)
	}

	hourly := body.Hourly
	if len(hourly.WindSpeed) != len(hourly.Time) || len(hourly.WindDirection) != len(hourly.Time) {
		return nil, fmt.Errorf("forecast for %v: series have different lengths", node.Id)
	}
	samples := make([]Sample, 0, len(hourly.Time))
	for i, ts := range hourly.Time {
		t, err := time.ParseInLocation(openMeteoTimeLayout, ts, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("forecast for %v: %w", node.Id, err)
		}
		samples = append(samples, Sample{Time: t, WindSpeed: hourly.WindSpeed[i], WindDirection: hourly.WindDirection[i]})
	}
	return samples, nil
}

// FetchRouteForecast fetches the forecasts of the first maxStops distinct ports of the path concurrently.
// A failing port is logged and left out, the resolver falls back for it.
func FetchRouteForecast(ctx context.Context, src Source, nodes []graph.Node, maxStops int) Forecast {
	stops := make([]graph.NodeId, 0)
	byId := make(map[graph.NodeId]graph.Node)
	for _, n := range nodes {
		if n.IsPort {
			stops = append(stops, n.Id)
			byId[n.Id] = n
		}
	}
	stops = slice.Unique(stops)
	if maxStops > 0 && len(stops) > maxStops {
		stops = stops[:maxStops]
	}

	forecast := make(Forecast, len(stops))
	var mutex sync.Mutex
	var wg sync.WaitGroup
	for _, id := range stops {
		wg.Add(1)
		go func(node graph.Node) {
			defer wg.Done()
			samples, err := src.Fetch(ctx, node)
			if err != nil {
				log.Printf("Failed to fetch weather for %v: %v\n", node.Id, err)
				return
			}
			if len(samples) == 0 {
				return
			}
			mutex.Lock()
			forecast[node.Id] = samples
			mutex.Unlock()
		}(byId[id])
	}
	wg.Wait()
	return forecast
}
