package recreate

import (
	"github.com/routekit/routekit/engine"
	"github.com/routekit/routekit/engine/constraint"
	"github.com/routekit/routekit/engine/insertion"
)

// RecreateWithGaps drives the insertion heuristic with GapsJobSelector's
// stochastic diversification, folding each batch via BestSelector against
// every live route plus one fresh actor.
type RecreateWithGaps struct {
	heuristic *insertion.Heuristic
	selector  *insertion.GapsJobSelector
	reducer   *insertion.PairJobMapReducer
}

// NewRecreateWithGaps wires a gaps-selector recreate strategy. minJobs
// bounds how small a batch GapsJobSelector may shrink to.
func NewRecreateWithGaps(pipeline *constraint.Pipeline, minJobs int) *RecreateWithGaps {
	evaluator := insertion.NewEvaluator(pipeline)
	routeSelector := insertion.AllRouteSelector{}
	return &RecreateWithGaps{
		heuristic: insertion.NewHeuristic(pipeline),
		selector:  insertion.NewGapsJobSelector(minJobs),
		reducer:   insertion.NewPairJobMapReducer(routeSelector, evaluator, insertion.BestSelector{}),
	}
}

func (r *RecreateWithGaps) Run(ctx *engine.InsertionContext, quota engine.Quota) *engine.InsertionContext {
	return r.heuristic.Process(ctx, r.selector, r.reducer, quota)
}
