package constraint

import "github.com/routekit/routekit/engine"

// TimeWindowModule enforces that a job's arrival time, computed from the
// preceding activity's departure plus travel time, falls within one of the
// place's acceptable windows. travelDuration is injected for the same
// reason the limit modules inject their route metrics.
//
// stopped is derived from whether the place's latest window has already
// passed: travel time only accumulates further down a route, so once
// arrival exceeds every window's end, no later position in this route can
// recover — the monotone-pruning rationale the pipeline's HardActivity
// contract exists for.
type TimeWindowModule struct {
	travelDuration func(from, to engine.Location) float64
}

// NewTimeWindowModule returns a module backed by travelDuration.
func NewTimeWindowModule(travelDuration func(from, to engine.Location) float64) *TimeWindowModule {
	return &TimeWindowModule{travelDuration: travelDuration}
}

func (m *TimeWindowModule) AcceptInsertion(*engine.SolutionContext, int, engine.Job) {}
func (m *TimeWindowModule) AcceptRouteState(*engine.RouteContext)                    {}
func (m *TimeWindowModule) AcceptSolutionState(*engine.SolutionContext)              {}
func (m *TimeWindowModule) StateKeys() []int                                        { return nil }

func (m *TimeWindowModule) Constraints() Constraints {
	return Constraints{HardActivity: []HardActivityConstraint{timeWindowConstraint{m}}}
}

type timeWindowConstraint struct{ m *TimeWindowModule }

func (c timeWindowConstraint) CheckActivity(_ *engine.RouteContext, prev, target, next engine.Activity) (bool, engine.ViolationCode, bool) {
	if !target.IsJob() {
		return true, 0, false
	}
	arrival := prev.Schedule.Departure + c.m.travelDuration(prev.Place.Location, target.Place.Location)
	if !target.Place.FitsAt(arrival) {
		stopped := arrival > target.Place.LatestEnd()
		return false, engine.ViolationTime, stopped
	}
	if next.IsJob() {
		start := arrival
		if earliest := target.Place.EarliestStart(); earliest > start {
			start = earliest
		}
		departure := start + target.Place.Duration
		nextArrival := departure + c.m.travelDuration(target.Place.Location, next.Place.Location)
		if !next.Place.FitsAt(nextArrival) {
			stopped := nextArrival > next.Place.LatestEnd()
			return false, engine.ViolationTime, stopped
		}
	}
	return true, 0, false
}
