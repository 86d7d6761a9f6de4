package recreate

import (
	"github.com/routekit/routekit/engine"
	"github.com/routekit/routekit/engine/constraint"
	"github.com/routekit/routekit/engine/insertion"
)

// RecreateWithRegret drives the insertion heuristic with
// RegretJobMapReducer, prioritizing whichever required job has the largest
// gap between its best and k-th best insertion cost.
type RecreateWithRegret struct {
	heuristic *insertion.Heuristic
	selector  insertion.AllJobSelector
	reducer   *insertion.RegretJobMapReducer
}

// NewRecreateWithRegret wires a regret-k recreate strategy; k is drawn
// uniformly from [min, max] on every Reduce call.
func NewRecreateWithRegret(pipeline *constraint.Pipeline, min, max int) *RecreateWithRegret {
	evaluator := insertion.NewEvaluator(pipeline)
	routeSelector := insertion.AllRouteSelector{}
	return &RecreateWithRegret{
		heuristic: insertion.NewHeuristic(pipeline),
		selector:  insertion.AllJobSelector{},
		reducer:   insertion.NewRegretJobMapReducer(routeSelector, evaluator, insertion.BestSelector{}, min, max),
	}
}

func (r *RecreateWithRegret) Run(ctx *engine.InsertionContext, quota engine.Quota) *engine.InsertionContext {
	return r.heuristic.Process(ctx, r.selector, r.reducer, quota)
}
