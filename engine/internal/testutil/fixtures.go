// Package testutil provides shared test fixture builders used across
// engine/, engine/constraint/, engine/insertion/, and engine/recreate/ test
// packages, so each test package isn't reinventing a minimal Problem/Job/
// Vehicle from scratch.
package testutil

import (
	"math"
	"testing"

	"github.com/routekit/routekit/engine"
)

// Window returns a single-window TimeWindow, a convenience for fixtures that
// don't care about multiple alternative windows.
func Window(start, end float64) engine.TimeWindow {
	return engine.TimeWindow{Start: start, End: end}
}

// Place returns a Place at a matrix-index location, open during window,
// taking duration to serve.
func Place(t *testing.T, index int, duration float64, window engine.TimeWindow) engine.Place {
	t.Helper()
	return engine.Place{
		Location: engine.NewLocationIndex(index),
		Duration: duration,
		Times:    []engine.TimeWindow{window},
	}
}

// SingleJob builds a *engine.SingleJob with one place, no demand, priority 1.
func SingleJob(t *testing.T, id string, place engine.Place) *engine.SingleJob {
	t.Helper()
	return &engine.SingleJob{
		Dimensions: engine.NewDimensions().Set(engine.DimID, id),
		Places:     []engine.Place{place},
	}
}

// SingleJobWithDemand builds a *engine.SingleJob carrying a capacity demand.
func SingleJobWithDemand(t *testing.T, id string, place engine.Place, demand []float64) *engine.SingleJob {
	t.Helper()
	job := SingleJob(t, id, place)
	job.Demand = demand
	return job
}

// PickupDelivery builds a *engine.MultiJob with one pickup task and one
// delivery task, each carrying demand (pickup positive, delivery is the
// matching negative so running load nets to zero after delivery).
func PickupDelivery(t *testing.T, id string, pickup, delivery engine.Place, demand []float64) *engine.MultiJob {
	t.Helper()
	negated := make([]float64, len(demand))
	for i, d := range demand {
		negated[i] = -d
	}
	return &engine.MultiJob{
		Dimensions: engine.NewDimensions().Set(engine.DimID, id),
		Tasks: []engine.Task{
			{Kind: engine.TaskPickup, Places: []engine.Place{pickup}, Demand: demand},
			{Kind: engine.TaskDelivery, Places: []engine.Place{delivery}, Demand: negated},
		},
	}
}

// VehicleType builds a *engine.VehicleType with one open-ended shift
// starting at location 0, the given capacity, and no skills/limits.
func VehicleType(t *testing.T, typeID string, capacity []float64) *engine.VehicleType {
	t.Helper()
	return &engine.VehicleType{
		TypeID:   typeID,
		Costs:    engine.Costs{Fixed: 0, PerDistance: 1, PerDrivingTime: 1},
		Capacity: capacity,
		Shifts: []engine.Shift{
			{StartLocation: engine.NewLocationIndex(0), StartEarliest: 0},
		},
	}
}

// Vehicle builds a *engine.Vehicle of vehicleType with the given id.
func Vehicle(t *testing.T, id string, vehicleType *engine.VehicleType) *engine.Vehicle {
	t.Helper()
	return &engine.Vehicle{ID: id, Type: vehicleType}
}

// Fleet builds a *engine.Fleet from the given vehicles, collecting their
// distinct types.
func Fleet(t *testing.T, vehicles ...*engine.Vehicle) *engine.Fleet {
	t.Helper()
	seen := make(map[*engine.VehicleType]bool)
	var types []*engine.VehicleType
	for _, v := range vehicles {
		if !seen[v.Type] {
			seen[v.Type] = true
			types = append(types, v.Type)
		}
	}
	return &engine.Fleet{Types: types, Vehicles: vehicles}
}

// MatrixTransport is a fixed-cost Transport stub for tests that don't care
// about geometry: every distinct (from, to) index pair costs 1 unit of
// distance and 1 unit of duration, same-location legs cost 0.
type MatrixTransport struct{}

func (MatrixTransport) Distance(from, to engine.Location) float64 {
	if from.Index == to.Index {
		return 0
	}
	return 1
}

func (MatrixTransport) Duration(from, to engine.Location) float64 {
	if from.Index == to.Index {
		return 0
	}
	return 1
}

// AssertFloat64Equal compares two float64 values with relative tolerance,
// treating a want/got pair of zero as trivially equal.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
