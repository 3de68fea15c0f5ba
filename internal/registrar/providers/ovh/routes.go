package ovh

import (
	"github.com/gobwas/glob"
)

// Route is an API access rule: an HTTP method and a path pattern.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// RequiredRoutes are the API routes the ordering workflow calls.
var RequiredRoutes = []Route{
	{Method: "GET", Path: "/domain/extensions"},
	{Method: "GET", Path: "/order/cart"},
	{Method: "GET", Path: "/order/cart/*"},
	{Method: "POST", Path: "/order/cart"},
	{Method: "POST", Path: "/order/cart/*"},
	{Method: "DELETE", Path: "/order/cart/*"},
}

// MissingRoutes returns the required routes no granted rule covers. A rule
// covers a route when the methods are equal and the rule path, read as a
// shell pattern where '*' also crosses '/', matches the route path.
func MissingRoutes(granted []Route) []Route {
	matchers := make([]glob.Glob, len(granted))
	for i, rule := range granted {
		g, err := glob.Compile(rule.Path)
		if err != nil {
			continue
		}
		matchers[i] = g
	}

	var missing []Route
	for _, required := range RequiredRoutes {
		if !covered(required, granted, matchers) {
			missing = append(missing, required)
		}
	}
	return missing
}

func covered(required Route, granted []Route, matchers []glob.Glob) bool {
	for i, rule := range granted {
		if matchers[i] == nil || rule.Method != required.Method {
			continue
		}
		if matchers[i].Match(required.Path) {
			return true
		}
	}
	return false
}
