package insertion

import "github.com/routekit/routekit/engine"

// Placement is one activity ready to splice into a tour, at the tour index
// it was evaluated against (candidatePositions in evaluator.go never yields
// an index below 1, so this is already a valid post-start-sentinel splice
// position — see Heuristic.commit).
type Placement struct {
	Activity engine.Activity
	Index    int
}

// Success is a feasible, costed way to insert a job.
type Success struct {
	Job        engine.Job
	Route      *engine.RouteContext
	Cost       float64
	Placements []Placement
	IsNewRoute bool
}

// Failure is a job the evaluator could not place anywhere, tagged with the
// first violation code it encountered.
type Failure struct {
	Job  engine.Job
	Code engine.ViolationCode
}

// Result is exactly one of Success or Failure.
type Result struct {
	Success *Success
	Failure *Failure
}

// Ok wraps a Success as a Result.
func Ok(s Success) Result { return Result{Success: &s} }

// Err wraps a Failure as a Result.
func Err(f Failure) Result { return Result{Failure: &f} }

// IsSuccess reports whether this result succeeded.
func (r Result) IsSuccess() bool { return r.Success != nil }

// Selector folds two results into one, for use by the map reducers.
type Selector interface {
	Select(left, right Result) Result
}

// BestSelector is the default Selector: strictly lower cost wins between
// two successes (left wins ties — the earlier-evaluated candidate keeps its
// place); a success beats any failure; between two failures, the right one
// wins (arbitrary but consistent, preserved from the source exactly).
type BestSelector struct{}

func (BestSelector) Select(left, right Result) Result {
	switch {
	case left.IsSuccess() && right.IsSuccess():
		if right.Success.Cost < left.Success.Cost {
			return right
		}
		return left
	case left.IsSuccess():
		return left
	case right.IsSuccess():
		return right
	default:
		return right
	}
}
