package constraint

import "github.com/routekit/routekit/engine"

// minPriorityPenalty is the floor on the per-priority-level soft penalty, so
// that even a solution with zero accumulated cost still penalizes
// lower-priority jobs heavily enough to dominate the ordering.
const minPriorityPenalty = 1e9

// PriorityModule enforces that lower-priority-number jobs (more important)
// serve before higher-priority-number ones, two ways: a soft per-route
// penalty proportional to (priority-1), and a hard-activity check that
// triples of adjacent activities never regress in priority.
//
// routeCost supplies the current cost of a route, used to scale the soft
// penalty against the solution's own cost scale (spec: penalty = max(2 ×
// current max solution cost, 1e9)).
type PriorityModule struct {
	routeCost func(route *engine.RouteContext) float64
	maxCost   float64
}

// NewPriorityModule returns a module that scales its soft penalty using
// routeCost to estimate each route's current cost.
func NewPriorityModule(routeCost func(route *engine.RouteContext) float64) *PriorityModule {
	return &PriorityModule{routeCost: routeCost}
}

func (m *PriorityModule) AcceptInsertion(*engine.SolutionContext, int, engine.Job) {}

func (m *PriorityModule) AcceptRouteState(*engine.RouteContext) {}

// AcceptSolutionState recomputes the max-cost-across-routes cache the soft
// penalty scales against.
func (m *PriorityModule) AcceptSolutionState(solution *engine.SolutionContext) {
	var max float64
	for _, rc := range solution.Routes {
		if c := m.routeCost(rc); c > max {
			max = c
		}
	}
	m.maxCost = max
}

func (m *PriorityModule) StateKeys() []int { return nil }

func (m *PriorityModule) Constraints() Constraints {
	return Constraints{
		SoftRoute:    []SoftRouteConstraint{prioritySoftRoute{m}},
		HardActivity: []HardActivityConstraint{priorityHardActivity{}},
	}
}

func (m *PriorityModule) penalty() float64 {
	p := 2 * m.maxCost
	if p < minPriorityPenalty {
		p = minPriorityPenalty
	}
	return p
}

type prioritySoftRoute struct{ m *PriorityModule }

func (s prioritySoftRoute) SoftRoutePenalty(_ *engine.SolutionContext, _ *engine.RouteContext, job engine.Job) float64 {
	return float64(job.Dimens().Priority()-1) * s.m.penalty()
}

type priorityHardActivity struct{}

// CheckActivity requires non-decreasing priority (smaller number = more
// important, served earlier) across the triple. When prev carries a job,
// the comparison is prev-vs-target with stopped=false (only this position is
// ruled out). Otherwise it falls back to target-vs-next with stopped=true:
// if target already outranks next, no later position in the route helps
// either, since next's priority only gets harder to beat further along.
// A triple with neither neighbor carrying a job (no context to compare
// against) is feasible.
func (priorityHardActivity) CheckActivity(_ *engine.RouteContext, prev, target, next engine.Activity) (bool, engine.ViolationCode, bool) {
	targetPriority, ok := jobPriority(target)
	if !ok {
		return true, 0, false
	}
	if prevPriority, ok := jobPriority(prev); ok {
		if prevPriority > targetPriority {
			return false, engine.ViolationPriority, false
		}
		return true, 0, false
	}
	if nextPriority, ok := jobPriority(next); ok {
		if targetPriority > nextPriority {
			return false, engine.ViolationPriority, true
		}
	}
	return true, 0, false
}

func jobPriority(a engine.Activity) (int, bool) {
	if !a.IsJob() {
		return 0, false
	}
	return a.Job.Dimens().Priority(), true
}
