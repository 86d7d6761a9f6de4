package engine

// Plan is the jobs to place and the relations constraining how they may be
// placed.
type Plan struct {
	Jobs      []Job
	Relations []Relation
}

// Fleet is the vehicle types and concrete vehicles available to serve a Plan.
type Fleet struct {
	Types    []*VehicleType
	Vehicles []*Vehicle
}

// Actors expands every vehicle's declared shifts into one Actor per
// (vehicle, shift) pair — the units the registry and route selectors work
// with.
func (f *Fleet) Actors() []*Actor {
	var actors []*Actor
	for _, v := range f.Vehicles {
		for _, shift := range v.Type.Shifts {
			actors = append(actors, &Actor{Vehicle: v, Shift: shift})
		}
	}
	return actors
}

// Transport is the external routing-matrix collaborator: given two
// locations, how far and how long between them. The engine never computes
// geometry itself; it calls out to whatever Transport implementation the
// caller wires in (a routing matrix, a haversine approximation, a mock for
// tests).
type Transport interface {
	Distance(from, to Location) float64
	Duration(from, to Location) float64
}

// Problem bundles a Plan, a Fleet, and the Transport used to cost travel
// between them — everything an InsertionContext needs to start a solve.
type Problem struct {
	Plan      Plan
	Fleet     *Fleet
	Transport Transport
}

// NewProblem returns a Problem ready to seed an InsertionContext.
func NewProblem(plan Plan, fleet *Fleet, transport Transport) *Problem {
	return &Problem{Plan: plan, Fleet: fleet, Transport: transport}
}
