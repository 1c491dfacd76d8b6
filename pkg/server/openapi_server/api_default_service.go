package openapi_server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/natevvv/voyage-planner/pkg/graph"
	"github.com/natevvv/voyage-planner/pkg/routing"
	"github.com/natevvv/voyage-planner/pkg/ship"
	"github.com/natevvv/voyage-planner/pkg/voyage"
	"github.com/natevvv/voyage-planner/pkg/weather"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ServiceSettings are the planning parameters which are not part of a request
type ServiceSettings struct {
	MaxSegmentKm float64
	MaxStops     int
	Economics    voyage.Economics
}

// DefaultApiService is a service that implements the logic for the DefaultApiServicer
// This service should implement the business logic for every endpoint for the DefaultApi API.
// Include any external packages or services that will be required by this service.
type DefaultApiService struct {
	router   *routing.Router
	ships    *ship.Catalog
	weather  weather.Source
	settings ServiceSettings
	now      func() time.Time
}

// NewDefaultApiService creates a default api service
func NewDefaultApiService(router *routing.Router, ships *ship.Catalog, source weather.Source, settings ServiceSettings) *DefaultApiService {
	return &DefaultApiService{
		router:   router,
		ships:    ships,
		weather:  source,
		settings: settings,
		now:      time.Now,
	}
}

// statusOf maps domain errors to http status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, routing.ErrUnknownPort), errors.Is(err, ship.ErrUnknownShip):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *DefaultApiService) route(routeRequest RouteRequest) (routing.Route, RouteResult, error) {
	route, err := s.router.ComputeRoute(routeRequest.Origin, routeRequest.Destination)
	if err != nil {
		return route, RouteResult{}, err
	}
	waypoints := make([]Waypoint, 0, len(route.Nodes))
	for _, n := range route.Nodes {
		waypoints = append(waypoints, makeWaypoint(n))
	}
	routeResult := RouteResult{
		Id:          uuid.NewString(),
		Origin:      routeRequest.Origin,
		Destination: routeRequest.Destination,
		Reachable:   route.Exists,
		Direct:      route.Direct,
		Path:        Path{Length: route.Length, Waypoints: waypoints},
	}
	return route, routeResult, nil
}

// ComputeRoute - Compute a new route
func (s *DefaultApiService) ComputeRoute(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	_, routeResult, err := s.route(routeRequest)
	if err != nil {
		return Response(statusOf(err), nil), err
	}
	return Response(http.StatusOK, routeResult), nil
}

// GetRouteGeoJSON - The route as LineString followed by its ports as Points
func (s *DefaultApiService) GetRouteGeoJSON(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	route, routeResult, err := s.route(routeRequest)
	if err != nil {
		return Response(statusOf(err), nil), err
	}

	line := make(orb.LineString, 0, len(route.Nodes))
	for _, n := range route.Nodes {
		line = append(line, n.Point.Orb())
	}
	fc := geojson.NewFeatureCollection()
	feature := geojson.NewFeature(line)
	feature.ID = routeResult.Id
	feature.Properties["origin"] = route.Origin
	feature.Properties["destination"] = route.Destination
	feature.Properties["length"] = route.Length
	feature.Properties["direct"] = route.Direct
	fc.Append(feature)
	for _, n := range route.Nodes {
		if !n.IsPort {
			continue
		}
		port := geojson.NewFeature(n.Point.Orb())
		port.Properties["name"] = n.Id
		fc.Append(port)
	}
	return Response(http.StatusOK, fc), nil
}

// PlanVoyage - Simulate the voyage at the requested optimization and at full speed as baseline
func (s *DefaultApiService) PlanVoyage(ctx context.Context, voyageRequest VoyageRequest) (ImplResponse, error) {
	profile, err := s.ships.Get(voyageRequest.Ship)
	if err != nil {
		return Response(statusOf(err), nil), err
	}
	route, routeResult, err := s.route(RouteRequest{Origin: voyageRequest.Origin, Destination: voyageRequest.Destination})
	if err != nil {
		return Response(statusOf(err), nil), err
	}

	nodes := route.Densify(s.settings.MaxSegmentKm)
	forecast := weather.FetchRouteForecast(ctx, s.weather, route.Nodes, s.settings.MaxStops)
	if err := ctx.Err(); err != nil {
		return Response(statusOf(err), nil), err
	}
	if err := forecast.CheckPorts(nodes); err != nil {
		return Response(http.StatusInternalServerError, nil), err
	}

	start := s.now().UTC()
	if voyageRequest.StartTime != nil {
		start = *voyageRequest.StartTime
	}
	economics := s.settings.Economics
	if voyageRequest.FuelPricePerTon != nil {
		economics.FuelPricePerTon = *voyageRequest.FuelPricePerTon
	}
	if voyageRequest.CharterRatePerDay != nil {
		economics.CharterRatePerDay = *voyageRequest.CharterRatePerDay
	}

	summary := voyage.Simulate(nodes, profile, forecast, start, voyageRequest.Optimization)
	baseline := voyage.Simulate(nodes, profile, forecast, start, 0)

	weatherStops := make([]string, 0, len(forecast))
	listed := make(map[graph.NodeId]bool, len(forecast))
	for _, n := range route.Nodes {
		if _, ok := forecast[n.Id]; ok && !listed[n.Id] {
			weatherStops = append(weatherStops, n.Id)
			listed[n.Id] = true
		}
	}

	return Response(http.StatusOK, VoyageResult{
		Id:           uuid.NewString(),
		Route:        routeResult,
		Ship:         profile,
		StartTime:    start,
		Optimization: voyageRequest.Optimization,
		WeatherStops: weatherStops,
		Voyage:       summary,
		Baseline:     baseline,
		Stops:        summary.Stops(),
		Timeline:     voyage.Timeline(summary, baseline, voyage.DefaultTimelineStepHours),
		Comparison:   voyage.Compare(summary, baseline, profile, economics),
	}), nil
}

func (s *DefaultApiService) GetNodes(ctx context.Context) (ImplResponse, error) {
	nodes := s.router.GetNodes()

	waypoints := make([]Waypoint, 0, len(nodes))
	for _, n := range nodes {
		waypoints = append(waypoints, makeWaypoint(n))
	}

	return Response(http.StatusOK, Nodes{Waypoints: waypoints}), nil
}

func (s *DefaultApiService) GetPorts(ctx context.Context) (ImplResponse, error) {
	return Response(http.StatusOK, s.router.Ports().All()), nil
}

func (s *DefaultApiService) GetShips(ctx context.Context) (ImplResponse, error) {
	return Response(http.StatusOK, s.ships.All()), nil
}

func (s *DefaultApiService) SetNavigator(ctx context.Context, navigatorRequest NavigatorRequest) (ImplResponse, error) {
	success := s.router.SetNavigator(navigatorRequest.Navigator)

	if !success {
		return Response(http.StatusBadRequest, nil), routing.ErrUnknownNavigator
	}
	return Response(http.StatusOK, navigatorRequest.Navigator), nil
}
