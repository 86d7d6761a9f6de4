package constraint

import "github.com/routekit/routekit/engine"

// CapacityModule enforces a vehicle type's capacity vector: the total
// demand already committed to a route plus the candidate job's own demand
// must not exceed capacity, dimension by dimension.
type CapacityModule struct{}

// NewCapacityModule returns a ready-to-use capacity module.
func NewCapacityModule() *CapacityModule {
	return &CapacityModule{}
}

func (m *CapacityModule) AcceptInsertion(*engine.SolutionContext, int, engine.Job) {}
func (m *CapacityModule) AcceptRouteState(*engine.RouteContext)                    {}
func (m *CapacityModule) AcceptSolutionState(*engine.SolutionContext)              {}
func (m *CapacityModule) StateKeys() []int                                        { return nil }

func (m *CapacityModule) Constraints() Constraints {
	return Constraints{HardRoute: []HardRouteConstraint{capacityRouteConstraint{}}}
}

type capacityRouteConstraint struct{}

func (capacityRouteConstraint) CheckRoute(_ *engine.SolutionContext, route *engine.RouteContext, job engine.Job) (bool, engine.ViolationCode) {
	capacity := route.Actor.Vehicle.Type.Capacity
	if len(capacity) == 0 {
		return true, 0
	}
	current := routeLoad(route)
	demand := jobDemand(job)
	for i, limit := range capacity {
		var have, add float64
		if i < len(current) {
			have = current[i]
		}
		if i < len(demand) {
			add = demand[i]
		}
		if have+add > limit {
			return false, engine.ViolationCapacity
		}
	}
	return true, 0
}

func routeLoad(route *engine.RouteContext) []float64 {
	var load []float64
	for _, a := range route.Tour.JobActivities() {
		load = addDemand(load, activityDemand(a))
	}
	return load
}

func activityDemand(a engine.Activity) []float64 {
	switch job := a.Job.(type) {
	case *engine.SingleJob:
		return job.Demand
	case *engine.MultiJob:
		if a.TaskIndex >= 0 && a.TaskIndex < len(job.Tasks) {
			return job.Tasks[a.TaskIndex].Demand
		}
	}
	return nil
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
