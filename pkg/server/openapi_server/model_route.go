package openapi_server

type RouteRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// AssertRouteRequestRequired checks if the required fields are not zero-ed
func AssertRouteRequestRequired(obj RouteRequest) error {
	return assertRequired([]string{"origin", "destination"}, map[string]interface{}{
		"origin":      obj.Origin,
		"destination": obj.Destination,
	})
}

type RouteResult struct {
	Id          string `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Reachable   bool   `json:"reachable"`
	Direct      bool   `json:"direct"`
	Path        Path   `json:"path"`
}

type NavigatorRequest struct {
	Navigator string `json:"navigator"`
}

func AssertNavigatorRequestRequired(obj NavigatorRequest) error {
	return assertRequired([]string{"navigator"}, map[string]interface{}{
		"navigator": obj.Navigator,
	})
}
