package openapi_server

import (
	"encoding/json"
	"net/http"
	"strings"
)

// DefaultApiController binds http requests to an api service and writes the service results to the http response
type DefaultApiController struct {
	service      DefaultApiServicer
	errorHandler ErrorHandler
}

// DefaultApiOption for how the controller is set up.
type DefaultApiOption func(*DefaultApiController)

// WithDefaultApiErrorHandler inject ErrorHandler into controller
func WithDefaultApiErrorHandler(h ErrorHandler) DefaultApiOption {
	return func(c *DefaultApiController) {
		c.errorHandler = h
	}
}

// NewDefaultApiController creates a default api controller
func NewDefaultApiController(s DefaultApiServicer, opts ...DefaultApiOption) Router {
	controller := &DefaultApiController{
		service:      s,
		errorHandler: DefaultErrorHandler,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all of the api route for the DefaultApiController
func (c *DefaultApiController) Routes() Routes {
	return Routes{
		{
			"ComputeRoute",
			strings.ToUpper("Post"),
			"/routes",
			c.ComputeRoute,
		},
		{
			"GetRouteGeoJSON",
			strings.ToUpper("Get"),
			"/routes/geojson",
			c.GetRouteGeoJSON,
		},
		{
			"PlanVoyage",
			strings.ToUpper("Post"),
			"/voyages",
			c.PlanVoyage,
		},
		{
			"GetNodes",
			strings.ToUpper("Get"),
			"/nodes",
			c.GetNodes,
		},
		{
			"GetPorts",
			strings.ToUpper("Get"),
			"/ports",
			c.GetPorts,
		},
		{
			"GetShips",
			strings.ToUpper("Get"),
			"/ships",
			c.GetShips,
		},
		{
			"SetNavigator",
			strings.ToUpper("Post"),
			"/navigator",
			c.SetNavigator,
		},
	}
}

// ComputeRoute - Compute a new route
func (c *DefaultApiController) ComputeRoute(w http.ResponseWriter, r *http.Request) {
	routeRequestParam := RouteRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&routeRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertRouteRequestRequired(routeRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.ComputeRoute(r.Context(), routeRequestParam)
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	setCorsHeaders(w, "POST")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

// GetRouteGeoJSON - Compute a route as GeoJSON feature collection
func (c *DefaultApiController) GetRouteGeoJSON(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	routeRequestParam := RouteRequest{
		Origin:      query.Get("origin"),
		Destination: query.Get("destination"),
	}
	if err := AssertRouteRequestRequired(routeRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.GetRouteGeoJSON(r.Context(), routeRequestParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	setCorsHeaders(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

// PlanVoyage - Compute a route and simulate the voyage under the weather forecast
func (c *DefaultApiController) PlanVoyage(w http.ResponseWriter, r *http.Request) {
	voyageRequestParam := VoyageRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&voyageRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertVoyageRequestRequired(voyageRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.PlanVoyage(r.Context(), voyageRequestParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	setCorsHeaders(w, "POST")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) GetNodes(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetNodes(r.Context())
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	setCorsHeaders(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) GetPorts(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetPorts(r.Context())
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	setCorsHeaders(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) GetShips(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetShips(r.Context())
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	setCorsHeaders(w, "GET")
	EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *DefaultApiController) SetNavigator(w http.ResponseWriter, r *http.Request) {
	navigatorRequestParam := NavigatorRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&navigatorRequestParam); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertNavigatorRequestRequired(navigatorRequestParam); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.SetNavigator(r.Context(), navigatorRequestParam)
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	setCorsHeaders(w, "POST")
	EncodeJSONResponse(result.Body, &result.Code, w)
}
