package insertion

import (
	"runtime"
	"sort"
	"sync"

	"github.com/routekit/routekit/engine"
)

// JobMapReducer maps a batch of candidate jobs through the evaluator and
// folds the per-job outcomes into the one InsertionResult the heuristic
// acts on this iteration.
type JobMapReducer interface {
	Reduce(ctx *engine.InsertionContext, jobs []engine.Job) Result
}

// PairJobMapReducer evaluates each job against every route RouteSelector
// offers, picks that job's best result, then folds across jobs in input
// order via Selector — so folding is deterministic given deterministic
// evaluation (spec: "PairJobMapReducer folds in the input job order").
type PairJobMapReducer struct {
	RouteSelector RouteSelector
	Evaluator     *Evaluator
	Result        Selector
}

// NewPairJobMapReducer returns a reducer evaluating against routeSelector's
// candidates and folding with resultSelector.
func NewPairJobMapReducer(routeSelector RouteSelector, evaluator *Evaluator, resultSelector Selector) *PairJobMapReducer {
	return &PairJobMapReducer{RouteSelector: routeSelector, Evaluator: evaluator, Result: resultSelector}
}

func (r *PairJobMapReducer) Reduce(ctx *engine.InsertionContext, jobs []engine.Job) Result {
	var folded Result
	seen := false
	for _, job := range jobs {
		res := r.evaluateJob(ctx, job)
		if !seen {
			folded = res
			seen = true
			continue
		}
		folded = r.Result.Select(folded, res)
	}
	return folded
}

func (r *PairJobMapReducer) evaluateJob(ctx *engine.InsertionContext, job engine.Job) Result {
	routes := r.RouteSelector.Select(ctx)
	var folded Result
	seen := false
	for _, route := range routes {
		res := r.Evaluator.Evaluate(ctx, job, route, IsNewRoute(ctx, route), AnyPosition())
		if !seen {
			folded = res
			seen = true
			continue
		}
		folded = r.Result.Select(folded, res)
	}
	if !seen {
		return Err(Failure{Job: job, Code: engine.ViolationReachable})
	}
	return folded
}

// RegretJobMapReducer prioritizes the job with the greatest "regret" — the
// cost gap between its best and k-th best insertion across distinct actors
// — on the theory that job loses the most opportunity if deferred.
type RegretJobMapReducer struct {
	RouteSelector RouteSelector
	Evaluator     *Evaluator
	Result        Selector
	pair          *PairJobMapReducer
	Min, Max      int
}

// NewRegretJobMapReducer draws k uniformly from [min, max] each Reduce call.
func NewRegretJobMapReducer(routeSelector RouteSelector, evaluator *Evaluator, resultSelector Selector, min, max int) *RegretJobMapReducer {
	return &RegretJobMapReducer{
		RouteSelector: routeSelector,
		Evaluator:     evaluator,
		Result:        resultSelector,
		pair:          NewPairJobMapReducer(routeSelector, evaluator, resultSelector),
		Min:           min,
		Max:           max,
	}
}

type regretCandidate struct {
	best  Success
	score float64
}

func (r *RegretJobMapReducer) Reduce(ctx *engine.InsertionContext, jobs []engine.Job) Result {
	k := r.Min
	if r.Max > r.Min {
		k = r.Min + ctx.Random.Intn(r.Max-r.Min+1)
	}
	routes := r.RouteSelector.Select(ctx)
	if k == 1 || len(routes) < 2 || len(jobs) < 2 {
		return r.pair.Reduce(ctx, jobs)
	}

	var candidates []regretCandidate

	for _, job := range jobs {
		deduped := bestPerActor(ctx, r.Evaluator, job, routes)
		if len(deduped) < k {
			continue
		}
		sort.SliceStable(deduped, func(i, j int) bool { return deduped[i].Cost < deduped[j].Cost })
		score := deduped[k-1].Cost - deduped[0].Cost
		candidates = append(candidates, regretCandidate{best: deduped[0], score: score})
	}

	if len(candidates) == 0 {
		return r.pair.Reduce(ctx, jobs)
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	return Ok(candidates[0].best)
}

// regretWorkerCount bounds how many goroutines bestPerActor fans route
// evaluation across for one job — a fixed-size pool draining a work queue,
// the same shape as the corpus's other route-calculation worker pools,
// rather than one goroutine per route.
func regretWorkerCount(n int) int {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if n < workers {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// bestPerActor evaluates job against every route, keeping only the cheapest
// success per distinct actor, in actor-first-seen (i.e. route) order. The
// per-route Evaluate calls — the expensive, CPU-bound part — fan out across
// a bounded worker pool (spec §5: "RegretJobMapReducer fans out per-job
// route evaluation across a bounded worker pool"); each worker only writes
// to its own results[idx] slot, and the fold below walks routes in their
// original order, so the outcome never depends on which worker finishes
// first.
func bestPerActor(ctx *engine.InsertionContext, evaluator *Evaluator, job engine.Job, routes []*engine.RouteContext) []Success {
	results := make([]Result, len(routes))

	if len(routes) > 0 {
		type workItem struct {
			idx   int
			route *engine.RouteContext
		}
		queue := make(chan workItem, len(routes))
		for i, route := range routes {
			queue <- workItem{idx: i, route: route}
		}
		close(queue)

		var wg sync.WaitGroup
		for w := 0; w < regretWorkerCount(len(routes)); w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for item := range queue {
					results[item.idx] = evaluator.Evaluate(ctx, job, item.route, IsNewRoute(ctx, item.route), AnyPosition())
				}
			}()
		}
		wg.Wait()
	}

	bestByActor := make(map[string]Success)
	var actorOrder []string
	for i, route := range routes {
		res := results[i]
		if !res.IsSuccess() {
			continue
		}
		actorID := route.Actor.ID()
		if cur, ok := bestByActor[actorID]; !ok || res.Success.Cost < cur.Cost {
			if _, seen := bestByActor[actorID]; !seen {
				actorOrder = append(actorOrder, actorID)
			}
			bestByActor[actorID] = *res.Success
		}
	}
	out := make([]Success, 0, len(actorOrder))
	for _, id := range actorOrder {
		out = append(out, bestByActor[id])
	}
	return out
}
