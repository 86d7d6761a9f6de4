package engine

// Registry tracks which actors in a fleet are already committed to a route
// and which remain available to open a new one. AllRouteSelector (see
// engine/insertion) consults it every insertion attempt to offer "start a
// new route with the next unused actor" alongside the already-live routes.
type Registry struct {
	actors []*Actor
	used   map[string]*RouteContext
}

// NewRegistry returns a registry over actors, all initially unused.
func NewRegistry(actors []*Actor) *Registry {
	return &Registry{
		actors: actors,
		used:   make(map[string]*RouteContext),
	}
}

// Next returns a fresh RouteContext for the first actor (in fleet order)
// that has not yet been committed to a route, and true. It returns
// (nil, false) once every actor is used. Calling Next repeatedly without an
// intervening UseRoute always yields the same actor — it peeks, it does not
// consume — so an actor skipped this round is still offered next round.
func (r *Registry) Next() (*RouteContext, bool) {
	for _, a := range r.actors {
		if _, ok := r.used[a.ID()]; !ok {
			return NewRouteContext(a), true
		}
	}
	return nil, false
}

// UseRoute marks rc's actor as committed to a route. It reports true if this
// is the first time that actor was committed (a fresh route opened) and
// false if the actor was already in use (an insertion into an existing
// live route).
func (r *Registry) UseRoute(rc *RouteContext) bool {
	id := rc.Actor.ID()
	if _, already := r.used[id]; already {
		r.used[id] = rc
		return false
	}
	r.used[id] = rc
	return true
}

// UsedRoutes returns every committed RouteContext, in fleet order.
func (r *Registry) UsedRoutes() []*RouteContext {
	out := make([]*RouteContext, 0, len(r.used))
	for _, a := range r.actors {
		if rc, ok := r.used[a.ID()]; ok {
			out = append(out, rc)
		}
	}
	return out
}

// HasUnused reports whether any actor remains available to open a new route.
func (r *Registry) HasUnused() bool {
	_, ok := r.Next()
	return ok
}
