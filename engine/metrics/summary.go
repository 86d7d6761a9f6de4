// Package metrics turns a solved InsertionContext into a reportable Summary:
// assignment counts and per-route cost/load/distance/duration, plus balance
// statistics across routes. Grounded on the teacher's sim/metrics.go
// (aggregate counters) and sim/metrics_utils.go (percentile/statistics
// helpers), generalized from per-request simulation metrics to per-route
// solve metrics.
package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/routekit/routekit/engine"
)

// RouteSummary reports one committed route's cost and utilization.
type RouteSummary struct {
	ActorID  string
	Jobs     int
	Distance float64
	Duration float64
	Cost     float64
	Load     []float64 // per-dimension sum of the demand of this route's jobs
}

// Summary aggregates a solved InsertionContext for reporting.
type Summary struct {
	Assigned   int
	Unassigned int
	Ignored    int
	Locked     int

	// UnassignedByCode counts unassigned jobs per engine.ViolationCode,
	// mirroring the per-request breakdown style of the teacher's Metrics.
	UnassignedByCode map[engine.ViolationCode]int

	Routes     []RouteSummary
	TotalCost  float64
	RouteCount int

	// DistanceCV/DurationCV/LoadCV are coefficients of variation (stddev /
	// mean) across routes — 0 when fewer than two routes exist, since
	// variation across a single route is meaningless. LoadCV is computed
	// over dimension 0 of RouteSummary.Load (a vehicle's primary capacity
	// dimension); routes with no dimension-0 demand contribute 0.
	DistanceCV float64
	DurationCV float64
	LoadCV     float64
}

// Summarize computes a Summary from ctx's current solution, costing each
// route with transport and each vehicle type's declared Costs.
func Summarize(ctx *engine.InsertionContext) *Summary {
	solution := ctx.Solution
	transport := ctx.Problem.Transport

	s := &Summary{
		Assigned:         countAssigned(solution),
		Unassigned:       len(solution.UnassignedJobs()),
		Ignored:          len(solution.IgnoredJobs()),
		Locked:           len(solution.LockedJobs()),
		UnassignedByCode: make(map[engine.ViolationCode]int),
	}
	for _, code := range solution.UnassignedJobs() {
		s.UnassignedByCode[engine.ViolationCode(code)]++
	}

	for _, route := range solution.Routes {
		rs := summarizeRoute(route, transport)
		s.Routes = append(s.Routes, rs)
		s.TotalCost += rs.Cost
	}
	s.RouteCount = len(s.Routes)

	if s.RouteCount > 1 {
		distances := make([]float64, s.RouteCount)
		durations := make([]float64, s.RouteCount)
		loads := make([]float64, s.RouteCount)
		for i, rs := range s.Routes {
			distances[i] = rs.Distance
			durations[i] = rs.Duration
			if len(rs.Load) > 0 {
				loads[i] = rs.Load[0]
			}
		}
		s.DistanceCV = coefficientOfVariation(distances)
		s.DurationCV = coefficientOfVariation(durations)
		s.LoadCV = coefficientOfVariation(loads)
	}

	return s
}

func countAssigned(solution *engine.SolutionContext) int {
	count := 0
	for _, route := range solution.Routes {
		count += len(route.Tour.Jobs())
	}
	return count
}

func summarizeRoute(route *engine.RouteContext, transport engine.Transport) RouteSummary {
	costs := route.Actor.Vehicle.Type.Costs
	activities := route.Tour.Activities

	rs := RouteSummary{ActorID: route.Actor.ID(), Jobs: len(route.Tour.Jobs()), Cost: costs.Fixed, Load: routeLoad(route)}

	for i := 1; i < len(activities); i++ {
		prev, cur := activities[i-1], activities[i]
		if transport != nil {
			d := transport.Distance(prev.Place.Location, cur.Place.Location)
			rs.Distance += d
			rs.Cost += d * costs.PerDistance

			dur := transport.Duration(prev.Place.Location, cur.Place.Location)
			rs.Duration += dur
			rs.Cost += dur * costs.PerDrivingTime
		}
		waiting := cur.Schedule.Departure - cur.Schedule.Arrival - cur.Place.Duration
		if waiting < 0 {
			waiting = 0
		}
		rs.Cost += waiting * costs.PerWaitingTime
		rs.Cost += cur.Place.Duration * costs.PerServiceTime
	}

	return rs
}

// routeLoad sums each distinct job's total demand served on route, per
// dimension. A Multi job's task demands are summed too, so a delivery that
// carries negative demand offsets its pickup; the result equals the peak
// load only when no task carries negative demand.
func routeLoad(route *engine.RouteContext) []float64 {
	var load []float64
	for _, job := range route.Tour.Jobs() {
		load = addDemand(load, jobDemand(job))
	}
	return load
}

func jobDemand(job engine.Job) []float64 {
	switch j := job.(type) {
	case *engine.SingleJob:
		return j.Demand
	case *engine.MultiJob:
		var total []float64
		for _, t := range j.Tasks {
			total = addDemand(total, t.Demand)
		}
		return total
	}
	return nil
}

func addDemand(a, b []float64) []float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]float64, n)
	copy(out, a)
	for i, v := range b {
		out[i] += v
	}
	return out
}

func coefficientOfVariation(values []float64) float64 {
	mean := stat.Mean(values, nil)
	if mean == 0 {
		return 0
	}
	stddev := stat.StdDev(values, nil)
	return stddev / mean
}
