package constraint

import "github.com/routekit/routekit/engine"

// Pipeline is the ordered composition of constraint modules the evaluator
// checks a candidate insertion against. Module order matters: it is also
// the order AcceptInsertion/AcceptRouteState/AcceptSolutionState broadcast
// in, and the order HardRoute/HardActivity constraints are tried in (so a
// cheaper module placed earlier short-circuits before a costlier one runs).
type Pipeline struct {
	modules []Module
}

// NewPipeline assembles a pipeline from modules, in evaluation order.
func NewPipeline(modules ...Module) *Pipeline {
	return &Pipeline{modules: modules}
}

// AcceptInsertion broadcasts to every module, in order.
func (p *Pipeline) AcceptInsertion(solution *engine.SolutionContext, routeIndex int, job engine.Job) {
	for _, m := range p.modules {
		m.AcceptInsertion(solution, routeIndex, job)
	}
}

// AcceptRouteState broadcasts to every module, in order.
func (p *Pipeline) AcceptRouteState(route *engine.RouteContext) {
	for _, m := range p.modules {
		m.AcceptRouteState(route)
	}
}

// AcceptSolutionState broadcasts to every module, in order.
func (p *Pipeline) AcceptSolutionState(solution *engine.SolutionContext) {
	for _, m := range p.modules {
		m.AcceptSolutionState(solution)
	}
}

// EvaluateRoute runs every HardRoute constraint, short-circuiting on the
// first violation. It is checked once per (job, route) pair, before any
// per-position HardActivity check.
func (p *Pipeline) EvaluateRoute(solution *engine.SolutionContext, route *engine.RouteContext, job engine.Job) (ok bool, code engine.ViolationCode) {
	for _, m := range p.modules {
		for _, c := range m.Constraints().HardRoute {
			if ok, code := c.CheckRoute(solution, route, job); !ok {
				return false, code
			}
		}
	}
	return true, 0
}

// EvaluateActivity runs every HardActivity constraint at one position,
// short-circuiting on the first violation and surfacing its stopped flag.
func (p *Pipeline) EvaluateActivity(route *engine.RouteContext, prev, target, next engine.Activity) (ok bool, code engine.ViolationCode, stopped bool) {
	for _, m := range p.modules {
		for _, c := range m.Constraints().HardActivity {
			if ok, code, stopped := c.CheckActivity(route, prev, target, next); !ok {
				return false, code, stopped
			}
		}
	}
	return true, 0, false
}

// EvaluateSoft sums every SoftRoute and SoftActivity contribution for one
// candidate position. Called only once both hard checks above have passed.
func (p *Pipeline) EvaluateSoft(solution *engine.SolutionContext, route *engine.RouteContext, job engine.Job, prev, target, next engine.Activity) float64 {
	var total float64
	for _, m := range p.modules {
		cs := m.Constraints()
		for _, c := range cs.SoftRoute {
			total += c.SoftRoutePenalty(solution, route, job)
		}
		for _, c := range cs.SoftActivity {
			total += c.SoftActivityCost(route, prev, target, next)
		}
	}
	return total
}
