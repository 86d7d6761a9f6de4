package constraint

import "github.com/routekit/routekit/engine"

// BreakModule implements the break job lifecycle (spec'd behavior): a break
// is required only while its vehicle currently owns a committed route, may
// never be inserted as the very first activity after departure, and any
// break left in unassigned after a solution-state broadcast is demoted to
// ignored rather than reported as a placement failure — missing an
// opportunistic break is not a failure the way missing a real job is.
//
// The required/ignored reclassification itself is delegated to a composed
// ConditionalJobModule, gated by isRequired below; BreakModule adds only the
// unassigned-break demotion on top, which is specific to breaks and has no
// home in the generic predicate.
//
// The richer variant that additionally intersects the break's time windows
// with actual tour departure/arrival times before demoting was left
// unimplemented; see the design notes for why.
type BreakModule struct {
	conditional *ConditionalJobModule
}

// NewBreakModule returns a ready-to-use break module.
func NewBreakModule() *BreakModule {
	m := &BreakModule{}
	m.conditional = NewConditionalJobModule(m.isRequired)
	return m
}

// isRequired is false only for a break whose vehicle has no committed route
// yet; every non-break job, and every break whose vehicle already owns a
// route, is required.
func (m *BreakModule) isRequired(solution *engine.SolutionContext, job engine.Job) bool {
	if !engine.IsBreak(job) {
		return true
	}
	vehicleID, ok := job.Dimens().BreakVehicleID()
	return ok && hasCommittedRoute(solution, vehicleID)
}

func (m *BreakModule) AcceptInsertion(*engine.SolutionContext, int, engine.Job) {}

func (m *BreakModule) AcceptRouteState(*engine.RouteContext) {}

func (m *BreakModule) AcceptSolutionState(solution *engine.SolutionContext) {
	m.conditional.AcceptSolutionState(solution)
	for job := range solution.UnassignedJobs() {
		if engine.IsBreak(job) {
			solution.Ignore(job)
		}
	}
}

func hasCommittedRoute(solution *engine.SolutionContext, vehicleID string) bool {
	for _, rc := range solution.Routes {
		if rc.Actor.Vehicle.ID == vehicleID {
			return true
		}
	}
	return false
}

func (m *BreakModule) StateKeys() []int { return nil }

func (m *BreakModule) Constraints() Constraints {
	return Constraints{HardActivity: []HardActivityConstraint{breakActivityConstraint{}}}
}

type breakActivityConstraint struct{}

// CheckActivity forbids a break from landing immediately after departure:
// prev carrying no job means prev is the start sentinel.
func (breakActivityConstraint) CheckActivity(route *engine.RouteContext, prev, target, next engine.Activity) (bool, engine.ViolationCode, bool) {
	if !target.IsJob() || !engine.IsBreak(target.Job) {
		return true, 0, false
	}
	if !prev.IsJob() {
		return false, engine.ViolationBreak, false
	}
	return true, 0, false
}
