package constraint

import "github.com/routekit/routekit/engine"

// ReachabilityModule forbids placing an activity next to a neighbor the
// routing matrix (or other transport collaborator) reports as unreachable —
// e.g., a matrix entry recorded as infinite/missing. reachable is injected
// for the same reason DistanceLimitModule injects routeDistance: this
// package never imports the Transport interface directly.
type ReachabilityModule struct {
	reachable func(from, to engine.Location) bool
}

// NewReachabilityModule returns a module backed by reachable.
func NewReachabilityModule(reachable func(from, to engine.Location) bool) *ReachabilityModule {
	return &ReachabilityModule{reachable: reachable}
}

func (m *ReachabilityModule) AcceptInsertion(*engine.SolutionContext, int, engine.Job) {}
func (m *ReachabilityModule) AcceptRouteState(*engine.RouteContext)                    {}
func (m *ReachabilityModule) AcceptSolutionState(*engine.SolutionContext)              {}
func (m *ReachabilityModule) StateKeys() []int                                        { return nil }

func (m *ReachabilityModule) Constraints() Constraints {
	return Constraints{HardActivity: []HardActivityConstraint{reachabilityConstraint{m}}}
}

type reachabilityConstraint struct{ m *ReachabilityModule }

func (c reachabilityConstraint) CheckActivity(_ *engine.RouteContext, prev, target, next engine.Activity) (bool, engine.ViolationCode, bool) {
	if !target.IsJob() {
		return true, 0, false
	}
	if !c.m.reachable(prev.Place.Location, target.Place.Location) {
		return false, engine.ViolationReachable, false
	}
	if next.Kind == engine.ActivityEnd || next.IsJob() {
		if !c.m.reachable(target.Place.Location, next.Place.Location) {
			return false, engine.ViolationReachable, false
		}
	}
	return true, 0, false
}
