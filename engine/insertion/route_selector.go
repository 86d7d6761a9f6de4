package insertion

import "github.com/routekit/routekit/engine"

// RouteSelector produces the routes one candidate job is evaluated against.
type RouteSelector interface {
	Select(ctx *engine.InsertionContext) []*engine.RouteContext
}

// AllRouteSelector offers every live route plus, if any actor remains
// unused, one fresh RouteContext for it — the "open a new route" option.
type AllRouteSelector struct{}

func (AllRouteSelector) Select(ctx *engine.InsertionContext) []*engine.RouteContext {
	routes := make([]*engine.RouteContext, len(ctx.Solution.Routes), len(ctx.Solution.Routes)+1)
	copy(routes, ctx.Solution.Routes)
	if next, ok := ctx.Solution.Registry.Next(); ok {
		routes = append(routes, next)
	}
	return routes
}

// IsNewRoute reports whether route's actor has not yet been committed to
// ctx.Solution — i.e., whether accepting this candidate opens a new route
// and should incur the vehicle's fixed cost.
func IsNewRoute(ctx *engine.InsertionContext, route *engine.RouteContext) bool {
	for _, rc := range ctx.Solution.Routes {
		if rc.Actor.ID() == route.Actor.ID() {
			return false
		}
	}
	return true
}
