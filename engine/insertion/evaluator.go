// Package insertion evaluates (job, route, position) candidates against a
// constraint pipeline and folds many such evaluations into one winning
// insertion.
//
// # Reading Guide
//
//   - evaluator.go: Evaluator.Evaluate, the per-candidate feasibility+cost
//     computation
//   - job_selector.go, route_selector.go: which jobs/routes a round considers
//   - result.go: Result, Success, Failure, and the tie-break Selector
//   - reducer.go: folds per-job evaluations into one result (pair, regret-k)
//   - heuristic.go: the prepare/loop/finalize driver
package insertion

import (
	"github.com/routekit/routekit/engine"
	"github.com/routekit/routekit/engine/constraint"
)

// maxMultiCombinations bounds how many (task ordering × candidate position)
// combinations a Multi job's evaluation explores, so a job with many tasks
// stays tractable; each task is placed at its first Place only. The spec's own
// Non-goals disclaim exact/optimal guarantees, so capping exploration here
// trades completeness for a bounded hot path rather than silently
// mis-costing anything.
const maxMultiCombinations = 64

// PositionKind selects which tour positions Evaluate considers.
type PositionKind int

const (
	PositionAny PositionKind = iota
	PositionConcrete
	PositionLast
)

// PositionPolicy restricts which tour indices a candidate may be inserted
// at: every open slot (Any), one specific slot (Concrete), or only the slot
// immediately before the end sentinel (Last).
type PositionPolicy struct {
	Kind  PositionKind
	Index int
}

func AnyPosition() PositionPolicy           { return PositionPolicy{Kind: PositionAny} }
func ConcretePosition(i int) PositionPolicy { return PositionPolicy{Kind: PositionConcrete, Index: i} }
func LastPosition() PositionPolicy          { return PositionPolicy{Kind: PositionLast} }

// Evaluator evaluates a job against a route under a position policy,
// returning the cheapest feasible placement or the first violation seen.
type Evaluator struct {
	Pipeline *constraint.Pipeline
}

// NewEvaluator returns an evaluator checking candidates against pipeline.
func NewEvaluator(pipeline *constraint.Pipeline) *Evaluator {
	return &Evaluator{Pipeline: pipeline}
}

// Evaluate tries every allowed position in route for job, exploring task
// orderings for Multi jobs and alternative places for Single jobs, and
// returns the cheapest feasible Result (or a Failure carrying the first
// violation code encountered).
func (e *Evaluator) Evaluate(ctx *engine.InsertionContext, job engine.Job, route *engine.RouteContext, isNewRoute bool, policy PositionPolicy) Result {
	if ok, code := e.Pipeline.EvaluateRoute(ctx.Solution, route, job); !ok {
		return Err(Failure{Job: job, Code: code})
	}

	switch j := job.(type) {
	case *engine.SingleJob:
		return e.evaluateSingle(ctx, j, route, isNewRoute, policy)
	case *engine.MultiJob:
		return e.evaluateMulti(ctx, j, route, isNewRoute, policy)
	default:
		return Err(Failure{Job: job, Code: engine.ViolationReachable})
	}
}

func (e *Evaluator) evaluateSingle(ctx *engine.InsertionContext, job *engine.SingleJob, route *engine.RouteContext, isNewRoute bool, policy PositionPolicy) Result {
	transport := ctx.Problem.Transport
	costs := route.Actor.Vehicle.Type.Costs

	var best *Success
	firstCode := engine.ViolationTime
	sawFailure := false

	for _, place := range job.Places {
		for _, index := range candidatePositions(route.Tour, policy) {
			prev := route.Tour.Activities[index-1]
			hasNext := index < len(route.Tour.Activities)
			var next engine.Activity
			if hasNext {
				next = route.Tour.Activities[index]
			}

			arrival := prev.Schedule.Departure + transport.Duration(prev.Place.Location, place.Location)
			target := engine.NewJobActivity(job, -1, place)
			start := arrival
			if earliest := place.EarliestStart(); earliest > start {
				start = earliest
			}
			target.Schedule = engine.Schedule{Arrival: arrival, Departure: start + place.Duration}

			ok, code, stopped := e.Pipeline.EvaluateActivity(route, prev, target, next)
			if !ok {
				if !sawFailure {
					firstCode = code
				}
				sawFailure = true
				if stopped {
					break
				}
				continue
			}

			soft := e.Pipeline.EvaluateSoft(ctx.Solution, route, job, prev, target, next)
			cost := soft + legCost(transport, costs, prev.Place.Location, place.Location, next, hasNext) + costs.PerServiceTime*place.Duration
			if waiting := start - arrival; waiting > 0 {
				cost += costs.PerWaitingTime * waiting
			}
			if isNewRoute {
				cost += costs.Fixed
			}

			if best == nil || cost < best.Cost {
				best = &Success{
					Job:        job,
					Route:      route,
					Cost:       cost,
					Placements: []Placement{{Activity: target, Index: index}},
					IsNewRoute: isNewRoute,
				}
			}
		}
	}

	if best != nil {
		return Ok(*best)
	}
	if sawFailure {
		return Err(Failure{Job: job, Code: firstCode})
	}
	return Err(Failure{Job: job, Code: engine.ViolationReachable})
}

// evaluateMulti explores task orderings (pickups permuted among themselves,
// deliveries permuted among themselves, pickups always first) and, for each
// ordering, places the whole task sequence as one contiguous block at a
// candidate position — a deliberate simplification of per-task position
// search that keeps the combinatorics bounded (see maxMultiCombinations).
func (e *Evaluator) evaluateMulti(ctx *engine.InsertionContext, job *engine.MultiJob, route *engine.RouteContext, isNewRoute bool, policy PositionPolicy) Result {
	transport := ctx.Problem.Transport
	costs := route.Actor.Vehicle.Type.Costs

	var best *Success
	firstCode := engine.ViolationTime
	sawFailure := false
	explored := 0

	for _, ordering := range taskOrderings(job) {
		for _, index := range candidatePositions(route.Tour, policy) {
			if explored >= maxMultiCombinations {
				break
			}
			explored++

			prev := route.Tour.Activities[index-1]
			hasNext := index < len(route.Tour.Activities)
			var next engine.Activity
			if hasNext {
				next = route.Tour.Activities[index]
			}

			activities := make([]engine.Activity, len(ordering))
			arrival := prev.Schedule.Departure
			fromLoc := prev.Place.Location
			var newTravel float64

			for i, taskIdx := range ordering {
				task := job.Tasks[taskIdx]
				place := task.Places[0]
				newTravel += legCostOneWay(transport, costs, fromLoc, place.Location)

				arrival += transport.Duration(fromLoc, place.Location)
				start := arrival
				if earliest := place.EarliestStart(); earliest > start {
					start = earliest
				}
				target := engine.NewJobActivity(job, taskIdx, place)
				target.Schedule = engine.Schedule{Arrival: arrival, Departure: start + place.Duration}
				activities[i] = target

				newTravel += costs.PerServiceTime * place.Duration
				if waiting := start - arrival; waiting > 0 {
					newTravel += costs.PerWaitingTime * waiting
				}

				fromLoc = place.Location
				arrival = target.Schedule.Departure
			}
			if hasNext {
				newTravel += legCostOneWay(transport, costs, fromLoc, next.Place.Location)
				newTravel -= legCostOneWay(transport, costs, prev.Place.Location, next.Place.Location)
			}

			feasible := true
			code := engine.ViolationTime
			stoppedRoute := false
			var softTotal float64

			for i := range activities {
				p, n := prev, next
				if i > 0 {
					p = activities[i-1]
				}
				if i < len(activities)-1 {
					n = activities[i+1]
				}
				ok, c, stopped := e.Pipeline.EvaluateActivity(route, p, activities[i], n)
				if !ok {
					feasible = false
					code = c
					stoppedRoute = stopped
					break
				}
				softTotal += e.Pipeline.EvaluateSoft(ctx.Solution, route, job, p, activities[i], n)
			}

			if !feasible {
				if !sawFailure {
					firstCode = code
				}
				sawFailure = true
				if stoppedRoute {
					break
				}
				continue
			}

			cost := softTotal + newTravel
			if isNewRoute {
				cost += costs.Fixed
			}

			placements := make([]Placement, len(activities))
			for i, a := range activities {
				placements[i] = Placement{Activity: a, Index: index + i}
			}

			if best == nil || cost < best.Cost {
				best = &Success{
					Job:        job,
					Route:      route,
					Cost:       cost,
					Placements: placements,
					IsNewRoute: isNewRoute,
				}
			}
		}
	}

	if best != nil {
		return Ok(*best)
	}
	if sawFailure {
		return Err(Failure{Job: job, Code: firstCode})
	}
	return Err(Failure{Job: job, Code: engine.ViolationReachable})
}

// taskOrderings returns every ordering this evaluator will try for job:
// permutations of its pickups, followed by permutations of its deliveries
// (capped to keep maxMultiCombinations meaningful), preserving "all pickups
// before any delivery".
func taskOrderings(job *engine.MultiJob) [][]int {
	var pickups, deliveries []int
	for i, t := range job.Tasks {
		if t.Kind == engine.TaskPickup {
			pickups = append(pickups, i)
		} else {
			deliveries = append(deliveries, i)
		}
	}
	pickupPerms := permutations(pickups)
	deliveryPerms := permutations(deliveries)

	var out [][]int
	for _, pp := range pickupPerms {
		for _, dp := range deliveryPerms {
			combined := make([]int, 0, len(pp)+len(dp))
			combined = append(combined, pp...)
			combined = append(combined, dp...)
			out = append(out, combined)
			if len(out) >= maxMultiCombinations {
				return out
			}
		}
	}
	if len(out) == 0 {
		// No pickups or no deliveries: the declared order is the only ordering.
		all := make([]int, len(job.Tasks))
		for i := range all {
			all[i] = i
		}
		out = [][]int{all}
	}
	return out
}

// permutations returns every permutation of items, capped so a job with
// more than 4 tasks of one kind falls back to its declared order rather
// than exploding combinatorially.
func permutations(items []int) [][]int {
	if len(items) == 0 {
		return [][]int{{}}
	}
	if len(items) > 4 {
		return [][]int{items}
	}
	var out [][]int
	var recurse func(remaining, chosen []int)
	recurse = func(remaining, chosen []int) {
		if len(remaining) == 0 {
			perm := make([]int, len(chosen))
			copy(perm, chosen)
			out = append(out, perm)
			return
		}
		for i, v := range remaining {
			rest := make([]int, 0, len(remaining)-1)
			rest = append(rest, remaining[:i]...)
			rest = append(rest, remaining[i+1:]...)
			next := make([]int, len(chosen), len(chosen)+1)
			copy(next, chosen)
			recurse(rest, append(next, v))
		}
	}
	recurse(items, nil)
	return out
}

// candidatePositions returns the valid splice indices for policy against
// tour: any index from just after the start sentinel up to (but not past)
// the end sentinel, if one is configured.
func candidatePositions(tour *engine.Tour, policy PositionPolicy) []int {
	maxIndex := len(tour.Activities)
	if tour.HasEnd {
		maxIndex--
	}
	switch policy.Kind {
	case PositionConcrete:
		if policy.Index >= 1 && policy.Index <= maxIndex {
			return []int{policy.Index}
		}
		return nil
	case PositionLast:
		return []int{maxIndex}
	default:
		positions := make([]int, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			positions = append(positions, i)
		}
		return positions
	}
}

// legCost returns the change in travel cost from inserting one activity at
// `to` between an activity at `from` and (if hasNext) the next activity,
// under costs' per-distance/per-driving-time coefficients.
func legCost(transport engine.Transport, costs engine.Costs, from, to engine.Location, next engine.Activity, hasNext bool) float64 {
	newCost := legCostOneWay(transport, costs, from, to)
	if !hasNext {
		return newCost
	}
	newCost += legCostOneWay(transport, costs, to, next.Place.Location)
	oldCost := legCostOneWay(transport, costs, from, next.Place.Location)
	return newCost - oldCost
}

func legCostOneWay(transport engine.Transport, costs engine.Costs, from, to engine.Location) float64 {
	return costs.PerDistance*transport.Distance(from, to) + costs.PerDrivingTime*transport.Duration(from, to)
}
