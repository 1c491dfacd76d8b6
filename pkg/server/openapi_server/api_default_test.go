package openapi_server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/natevvv/voyage-planner/graphs"
	"github.com/natevvv/voyage-planner/pkg/graph"
	"github.com/natevvv/voyage-planner/pkg/routing"
	"github.com/natevvv/voyage-planner/pkg/ship"
	"github.com/natevvv/voyage-planner/pkg/voyage"
	"github.com/natevvv/voyage-planner/pkg/weather"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type calmSource struct{}

func (calmSource) Fetch(ctx context.Context, node graph.Node) ([]weather.Sample, error) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	samples := make([]weather.Sample, 0, 48)
	for i := 0; i < 48; i++ {
		samples = append(samples, weather.Sample{Time: start.Add(time.Duration(i) * time.Hour), WindSpeed: 2, WindDirection: 0})
	}
	return samples, nil
}

var testShips = []ship.Profile{
	{Id: "feeder", Name: "Feeder", Type: ship.Container, CruiseSpeed: 20, MaxSpeed: 22, FuelPerNm: 30, Co2Factor: 3.114, Windage: 0.5},
	{Id: "tanker", Name: "Tanker", Type: ship.Tanker, CruiseSpeed: 14, MaxSpeed: 16, FuelPerNm: 60, Co2Factor: 3.114, Windage: 0.3},
}

func testServer(t *testing.T) *mux.Router {
	t.Helper()
	g, err := graphs.Default().Freeze()()
	if err != nil {
		t.Fatal(err)
	}
	router, err := routing.NewRouter(g, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	ships, err := ship.NewCatalog(testShips)
	if err != nil {
		t.Fatal(err)
	}
	service := NewDefaultApiService(router, ships, calmSource{}, ServiceSettings{
		MaxSegmentKm: routing.DefaultMaxSegmentKm,
		MaxStops:     weather.DefaultMaxStops,
		Economics:    voyage.Economics{FuelPricePerTon: 650, CharterRatePerDay: 25000},
	})
	return NewRouter(NewDefaultApiController(service))
}

func serve(t *testing.T, handler http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestComputeRoute(t *testing.T) {
	server := testServer(t)
	rec := serve(t, server, http.MethodPost, "/routes", RouteRequest{Origin: "Aarhus", Destination: "Copenhagen"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: Is %v, should be %v (%v)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var result RouteResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if !result.Reachable || result.Direct {
		t.Errorf("route should be reachable over the graph: %+v", result)
	}
	if result.Id == "" {
		t.Errorf("route has no id")
	}
	if len(result.Path.Waypoints) != 7 {
		t.Fatalf("waypoints: Is %v, should be 7", len(result.Path.Waypoints))
	}
	first, last := result.Path.Waypoints[0], result.Path.Waypoints[6]
	if first.Id != "Aarhus" || !first.Port || last.Id != "Copenhagen" || !last.Port {
		t.Errorf("path endpoints: Is %v and %v, should be the ports Aarhus and Copenhagen", first, last)
	}
	if result.Path.Waypoints[1].Port {
		t.Errorf("%v should not be a port", result.Path.Waypoints[1].Id)
	}
	if result.Path.Length < 138 || result.Path.Length > 138.2 {
		t.Errorf("length: Is %v, should be about 138.12", result.Path.Length)
	}

	if rec.Header().Get(RequestIdHeader) == "" {
		t.Errorf("response has no request id")
	}
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("allowed origin: Is %q, should be *", origin)
	}
}

func TestRequestIdIsEchoed(t *testing.T) {
	server := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/ships", nil)
	req.Header.Set(RequestIdHeader, "abc")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	if id := rec.Header().Get(RequestIdHeader); id != "abc" {
		t.Errorf("request id: Is %q, should be abc", id)
	}
}

func TestComputeRouteErrors(t *testing.T) {
	server := testServer(t)
	cases := []struct {
		name string
		body interface{}
		code int
	}{
		{"unknown port", RouteRequest{Origin: "Aarhus", Destination: "Atlantis"}, http.StatusNotFound},
		{"missing destination", RouteRequest{Origin: "Aarhus"}, http.StatusUnprocessableEntity},
		{"malformed", "{", http.StatusBadRequest},
		{"unknown field", `{"origin":"Aarhus","destination":"Copenhagen","via":"Anholt"}`, http.StatusBadRequest},
	}
	for _, c := range cases {
		rec := serve(t, server, http.MethodPost, "/routes", c.body)
		if rec.Code != c.code {
			t.Errorf("%v: status Is %v, should be %v", c.name, rec.Code, c.code)
			continue
		}
		var body errorBody
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body.Error == "" {
			t.Errorf("%v: no error message in the body (%v)", c.name, err)
		}
	}
}

func TestRouteGeoJSON(t *testing.T) {
	server := testServer(t)
	rec := serve(t, server, http.MethodGet, "/routes/geojson?origin=Aarhus&destination=Copenhagen", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: Is %v, should be %v (%v)", rec.Code, http.StatusOK, rec.Body.String())
	}
	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 3 {
		t.Fatalf("features: Is %v, should be 3", len(fc.Features))
	}
	line, ok := fc.Features[0].Geometry.(orb.LineString)
	if !ok {
		t.Fatalf("first feature is %T, should be a LineString", fc.Features[0].Geometry)
	}
	if len(line) != 7 {
		t.Errorf("line points: Is %v, should be 7", len(line))
	}
	if name := fc.Features[2].Properties.MustString("name", ""); name != "Copenhagen" {
		t.Errorf("last port: Is %q, should be Copenhagen", name)
	}

	rec = serve(t, server, http.MethodGet, "/routes/geojson?origin=Aarhus", nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("missing destination: status Is %v, should be %v", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestPlanVoyage(t *testing.T) {
	server := testServer(t)
	start := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	request := VoyageRequest{Origin: "Aarhus", Destination: "Copenhagen", Ship: "feeder", StartTime: &start, Optimization: 0.5}
	rec := serve(t, server, http.MethodPost, "/voyages", request)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: Is %v, should be %v (%v)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var result VoyageResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.Ship.Id != "feeder" {
		t.Errorf("ship: Is %v, should be feeder", result.Ship.Id)
	}
	if !result.StartTime.Equal(start) {
		t.Errorf("start: Is %v, should be %v", result.StartTime, start)
	}
	if len(result.WeatherStops) != 2 || result.WeatherStops[0] != "Aarhus" || result.WeatherStops[1] != "Copenhagen" {
		t.Errorf("weather stops: Is %v, should be [Aarhus Copenhagen]", result.WeatherStops)
	}
	// 7 graph nodes and 7 interpolated points
	if len(result.Voyage.Points) != 14 || len(result.Baseline.Points) != 14 {
		t.Errorf("points: Is %v and %v, should be 14", len(result.Voyage.Points), len(result.Baseline.Points))
	}
	if result.Voyage.TotalTimeHours <= result.Baseline.TotalTimeHours {
		t.Errorf("economy voyage takes %v h, should be slower than the baseline with %v h", result.Voyage.TotalTimeHours, result.Baseline.TotalTimeHours)
	}
	difference := result.Voyage.TotalTimeHours - result.Baseline.TotalTimeHours
	if d := result.Comparison.TimeDifferenceHours; d < difference-1e-9 || d > difference+1e-9 {
		t.Errorf("time difference: Is %v, should be %v", d, difference)
	}
	if len(result.Stops) != 2 || result.Stops[1].StopName != "Copenhagen" {
		t.Errorf("stops: Is %v, should be Aarhus and Copenhagen", result.Stops)
	}
	timeline := result.Timeline
	if len(timeline) < 2 || timeline[0].Hours != 0 {
		t.Fatalf("timeline should start at departure: %v", timeline)
	}
	last := timeline[len(timeline)-1]
	if last.Hours != result.Voyage.TotalTimeHours {
		t.Errorf("timeline ends at %v h, should end at the later arrival %v h", last.Hours, result.Voyage.TotalTimeHours)
	}
	if last.DistanceKm != result.Voyage.TotalDistanceKm || last.BaselineDistanceKm != result.Baseline.TotalDistanceKm {
		t.Errorf("final progress: Is %v and %v km, should be the total distances", last.DistanceKm, last.BaselineDistanceKm)
	}
	if timeline[1].BaselineDistanceKm <= timeline[1].DistanceKm {
		t.Errorf("after one hour the baseline should be ahead: %+v", timeline[1])
	}
	if result.Comparison.Co2SavedKg <= 0 {
		t.Errorf("economy voyage should save CO2, saves %v kg", result.Comparison.Co2SavedKg)
	}
}

func TestPlanVoyageOverrides(t *testing.T) {
	server := testServer(t)
	start := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	free := 0.0
	request := VoyageRequest{Origin: "Aarhus", Destination: "Copenhagen", StartTime: &start, Optimization: 1, CharterRatePerDay: &free}
	rec := serve(t, server, http.MethodPost, "/voyages", request)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: Is %v, should be %v (%v)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var result VoyageResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.Ship.Id != "feeder" {
		t.Errorf("default ship: Is %v, should be feeder", result.Ship.Id)
	}
	if result.Comparison.TimeCost != 0 {
		t.Errorf("time cost without charter: Is %v, should be 0", result.Comparison.TimeCost)
	}
	if result.Comparison.NetBenefit != result.Comparison.FuelSavings {
		t.Errorf("net benefit: Is %v, should be %v", result.Comparison.NetBenefit, result.Comparison.FuelSavings)
	}
}

func TestPlanVoyageErrors(t *testing.T) {
	server := testServer(t)
	cases := []struct {
		name    string
		request VoyageRequest
		code    int
	}{
		{"unknown ship", VoyageRequest{Origin: "Aarhus", Destination: "Copenhagen", Ship: "titanic"}, http.StatusNotFound},
		{"unknown port", VoyageRequest{Origin: "Atlantis", Destination: "Copenhagen"}, http.StatusNotFound},
		{"optimization out of range", VoyageRequest{Origin: "Aarhus", Destination: "Copenhagen", Optimization: 2}, http.StatusBadRequest},
		{"missing origin", VoyageRequest{Destination: "Copenhagen"}, http.StatusUnprocessableEntity},
	}
	for _, c := range cases {
		if rec := serve(t, server, http.MethodPost, "/voyages", c.request); rec.Code != c.code {
			t.Errorf("%v: status Is %v, should be %v", c.name, rec.Code, c.code)
		}
	}
}

func TestListings(t *testing.T) {
	server := testServer(t)

	rec := serve(t, server, http.MethodGet, "/ships", nil)
	var ships []ship.Profile
	if err := json.NewDecoder(rec.Body).Decode(&ships); err != nil {
		t.Fatal(err)
	}
	if len(ships) != len(testShips) {
		t.Errorf("ships: Is %v, should be %v", len(ships), len(testShips))
	}

	rec = serve(t, server, http.MethodGet, "/ports", nil)
	var ports []struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&ports); err != nil {
		t.Fatal(err)
	}
	if len(ports) != 17 {
		t.Errorf("ports: Is %v, should be 17", len(ports))
	}

	rec = serve(t, server, http.MethodGet, "/nodes", nil)
	var nodes Nodes
	if err := json.NewDecoder(rec.Body).Decode(&nodes); err != nil {
		t.Fatal(err)
	}
	if len(nodes.Waypoints) != 108 {
		t.Errorf("nodes: Is %v, should be 108", len(nodes.Waypoints))
	}
}

func TestSetNavigator(t *testing.T) {
	server := testServer(t)
	if rec := serve(t, server, http.MethodPost, "/navigator", NavigatorRequest{Navigator: "reference"}); rec.Code != http.StatusOK {
		t.Errorf("status: Is %v, should be %v", rec.Code, http.StatusOK)
	}
	if rec := serve(t, server, http.MethodPost, "/routes", RouteRequest{Origin: "Aarhus", Destination: "Copenhagen"}); rec.Code != http.StatusOK {
		t.Errorf("route with reference navigator: status Is %v, should be %v", rec.Code, http.StatusOK)
	}
	if rec := serve(t, server, http.MethodPost, "/navigator", NavigatorRequest{Navigator: "astar"}); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown navigator: status Is %v, should be %v", rec.Code, http.StatusBadRequest)
	}
}

func TestPreflight(t *testing.T) {
	server := testServer(t)
	rec := serve(t, server, http.MethodOptions, "/voyages", nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("status: Is %v, should be %v", rec.Code, http.StatusNoContent)
	}
	if methods := rec.Header().Get("Access-Control-Allow-Methods"); methods == "" {
		t.Errorf("preflight has no allowed methods")
	}
}
