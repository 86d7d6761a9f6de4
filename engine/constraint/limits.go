package constraint

import "github.com/routekit/routekit/engine"

// DistanceLimitModule enforces a vehicle type's optional max-distance limit.
// routeDistance reports a route's travel distance as its tour currently
// stands; the candidate job's added distance is not included. It is injected
// rather than computed here because distance depends on the Transport
// collaborator the constraint package never imports directly (cmd's
// buildPipeline supplies it).
type DistanceLimitModule struct {
	routeDistance func(route *engine.RouteContext) float64
}

// NewDistanceLimitModule returns a module scaled by routeDistance.
func NewDistanceLimitModule(routeDistance func(route *engine.RouteContext) float64) *DistanceLimitModule {
	return &DistanceLimitModule{routeDistance: routeDistance}
}

func (m *DistanceLimitModule) AcceptInsertion(*engine.SolutionContext, int, engine.Job) {}
func (m *DistanceLimitModule) AcceptRouteState(*engine.RouteContext)                    {}
func (m *DistanceLimitModule) AcceptSolutionState(*engine.SolutionContext)              {}
func (m *DistanceLimitModule) StateKeys() []int                                        { return nil }

func (m *DistanceLimitModule) Constraints() Constraints {
	return Constraints{HardRoute: []HardRouteConstraint{distanceLimitConstraint{m}}}
}

type distanceLimitConstraint struct{ m *DistanceLimitModule }

func (c distanceLimitConstraint) CheckRoute(_ *engine.SolutionContext, route *engine.RouteContext, _ engine.Job) (bool, engine.ViolationCode) {
	limit := route.Actor.Vehicle.Type.Limits.MaxDistance
	if limit == nil {
		return true, 0
	}
	if c.m.routeDistance(route) > *limit {
		return false, engine.ViolationDistanceLimit
	}
	return true, 0
}

// DurationLimitModule enforces a vehicle type's optional max-shift-time
// limit, the same way DistanceLimitModule enforces max distance.
type DurationLimitModule struct {
	routeDuration func(route *engine.RouteContext) float64
}

// NewDurationLimitModule returns a module scaled by routeDuration.
func NewDurationLimitModule(routeDuration func(route *engine.RouteContext) float64) *DurationLimitModule {
	return &DurationLimitModule{routeDuration: routeDuration}
}

func (m *DurationLimitModule) AcceptInsertion(*engine.SolutionContext, int, engine.Job) {}
func (m *DurationLimitModule) AcceptRouteState(*engine.RouteContext)                    {}
func (m *DurationLimitModule) AcceptSolutionState(*engine.SolutionContext)              {}
func (m *DurationLimitModule) StateKeys() []int                                        { return nil }

func (m *DurationLimitModule) Constraints() Constraints {
	return Constraints{HardRoute: []HardRouteConstraint{durationLimitConstraint{m}}}
}

type durationLimitConstraint struct{ m *DurationLimitModule }

func (c durationLimitConstraint) CheckRoute(_ *engine.SolutionContext, route *engine.RouteContext, _ engine.Job) (bool, engine.ViolationCode) {
	limit := route.Actor.Vehicle.Type.Limits.MaxShiftTime
	if limit == nil {
		return true, 0
	}
	if c.m.routeDuration(route) > *limit {
		return false, engine.ViolationDurationLimit
	}
	return true, 0
}
