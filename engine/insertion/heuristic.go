package insertion

import (
	"github.com/routekit/routekit/engine"
	"github.com/routekit/routekit/engine/constraint"
)

// Heuristic drives one construction/local-search pass: prepare, loop while
// required jobs remain and quota allows, finalize.
type Heuristic struct {
	Pipeline *constraint.Pipeline
}

// NewHeuristic returns a heuristic that broadcasts lifecycle callbacks
// through pipeline.
func NewHeuristic(pipeline *constraint.Pipeline) *Heuristic {
	return &Heuristic{Pipeline: pipeline}
}

// Process runs prepare → loop → finalize against ctx, selecting job batches
// via selector and folding each batch's evaluation via reducer, until no
// required jobs remain or quota signals. It mutates ctx.Solution in place
// and returns it for chaining.
func (h *Heuristic) Process(ctx *engine.InsertionContext, selector JobSelector, reducer JobMapReducer, quota engine.Quota) *engine.InsertionContext {
	ctx.Solution.DrainUnassignedToRequired()
	h.Pipeline.AcceptSolutionState(ctx.Solution)

	for len(ctx.Solution.RequiredJobs()) > 0 {
		if quota.IsExceeded() {
			break
		}
		batch := selector.Select(ctx)
		if len(batch) == 0 {
			break
		}
		result := reducer.Reduce(ctx, batch)
		if result.IsSuccess() {
			h.commit(ctx, *result.Success)
		} else if result.Failure != nil {
			ctx.Solution.Unassign(result.Failure.Job, int(result.Failure.Code))
		}
	}

	ctx.Solution.DrainRequiredToUnassigned(0)
	h.Pipeline.AcceptSolutionState(ctx.Solution)
	return ctx
}

// commit applies a winning Success: marks its actor used (appending a fresh
// route to solution.Routes if this was the first time), splices its
// placements into the tour, recomputes route-state caches, and broadcasts
// accept_insertion.
//
// Placement.Index already addresses the post-start-sentinel splice position
// directly (candidatePositions in evaluator.go never yields 0), so applying
// placements in ascending index order needs no further adjustment — each
// earlier splice shifts the array exactly the way a later placement's
// pre-recorded index expects.
func (h *Heuristic) commit(ctx *engine.InsertionContext, success Success) {
	route := success.Route
	isFresh := ctx.Solution.Registry.UseRoute(route)
	if isFresh {
		ctx.Solution.Routes = append(ctx.Solution.Routes, route)
	}

	for _, placement := range success.Placements {
		route.Tour.InsertAt(placement.Activity, placement.Index)
	}
	route.ClearState()
	h.Pipeline.AcceptRouteState(route)

	ctx.Solution.Assign(success.Job)
	h.Pipeline.AcceptInsertion(ctx.Solution, indexOfRoute(ctx.Solution.Routes, route), success.Job)
}

func indexOfRoute(routes []*engine.RouteContext, route *engine.RouteContext) int {
	for i, rc := range routes {
		if rc == route {
			return i
		}
	}
	return -1
}
