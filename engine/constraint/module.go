// Package constraint implements the constraint pipeline: an ordered
// composition of modules, each contributing zero or more hard/soft,
// route/activity checks that a candidate insertion must satisfy.
//
// # Reading Guide
//
//   - module.go: the Module interface and its four constraint variants
//   - pipeline.go: Pipeline, which aggregates modules and implements the
//     HardRoute → HardActivity → Soft evaluation order
//   - break.go, priority.go: the two exemplar modules
//   - conditional.go: the generic required/ignored reclassification module
//   - capacity.go, skills.go, locking.go, limits.go, reachability.go,
//     timewindow.go: supplemental feasibility modules
package constraint

import "github.com/routekit/routekit/engine"

// HardRouteConstraint forbids placing job in route at all, regardless of
// position.
type HardRouteConstraint interface {
	CheckRoute(solution *engine.SolutionContext, route *engine.RouteContext, job engine.Job) (ok bool, code engine.ViolationCode)
}

// HardActivityConstraint checks one candidate position, identified by the
// activity immediately before it, the candidate activity itself, and the
// activity immediately after. stopped=true means no later position in this
// route can succeed either, so the evaluator should abandon the whole route
// rather than just this position.
type HardActivityConstraint interface {
	CheckActivity(route *engine.RouteContext, prev, target, next engine.Activity) (ok bool, code engine.ViolationCode, stopped bool)
}

// SoftRouteConstraint contributes a non-negative penalty to a route's cost
// for carrying job, independent of where in the route it sits.
type SoftRouteConstraint interface {
	SoftRoutePenalty(solution *engine.SolutionContext, route *engine.RouteContext, job engine.Job) float64
}

// SoftActivityConstraint contributes a cost delta for inserting at one
// specific position.
type SoftActivityConstraint interface {
	SoftActivityCost(route *engine.RouteContext, prev, target, next engine.Activity) float64
}

// Constraints is the set of constraint variants one Module contributes to
// the pipeline. Any field may be nil or empty.
type Constraints struct {
	HardRoute    []HardRouteConstraint
	HardActivity []HardActivityConstraint
	SoftRoute    []SoftRouteConstraint
	SoftActivity []SoftActivityConstraint
}

// Module is one pluggable rule in the pipeline. Implementations must be
// stateless beyond what they publish through StateKeys on route/solution
// contexts — the pipeline itself is the only place lifecycle callbacks are
// invoked from.
type Module interface {
	// AcceptInsertion runs after job is committed to the route at routeIndex.
	AcceptInsertion(solution *engine.SolutionContext, routeIndex int, job engine.Job)
	// AcceptRouteState recomputes this module's per-route caches after a
	// structural change to route.
	AcceptRouteState(route *engine.RouteContext)
	// AcceptSolutionState recomputes solution-wide caches and may reclassify
	// jobs between the required/ignored/unassigned/locked sets.
	AcceptSolutionState(solution *engine.SolutionContext)
	// StateKeys returns the route-state map keys this module owns.
	StateKeys() []int
	// Constraints returns the hard/soft checks this module contributes.
	Constraints() Constraints
}
