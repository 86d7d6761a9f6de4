package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/engine"
	"github.com/routekit/routekit/engine/constraint"
)

func breakJob(vehicleID string) *engine.SingleJob {
	return &engine.SingleJob{Dimensions: engine.NewDimensions().
		Set(engine.DimID, "break-"+vehicleID).
		Set(engine.DimType, engine.TypeBreak).
		Set(engine.DimVehicleID, vehicleID)}
}

// TestBreakModule_RequiredOnlyWhileVehicleHasCommittedRoute verifies the law:
// a break for vehicle v is required exactly while v owns a live route, and
// ignored otherwise.
func TestBreakModule_RequiredOnlyWhileVehicleHasCommittedRoute(t *testing.T) {
	m := constraint.NewBreakModule()
	b := breakJob("v1")
	sc := engine.NewSolutionContext([]engine.Job{b}, nil)

	// No committed route for v1 yet: break demotes to ignored.
	m.AcceptSolutionState(sc)
	assert.Contains(t, sc.IgnoredJobs(), engine.Job(b))

	// Once v1 has a committed route, the break is promoted back to required.
	vt := &engine.VehicleType{TypeID: "t", Shifts: []engine.Shift{{StartLocation: engine.NewLocationIndex(0)}}}
	v := &engine.Vehicle{ID: "v1", Type: vt}
	rc := engine.NewRouteContext(&engine.Actor{Vehicle: v, Shift: vt.Shifts[0]})
	sc.Routes = append(sc.Routes, rc)

	m.AcceptSolutionState(sc)
	assert.Contains(t, sc.RequiredJobs(), engine.Job(b))
}

// TestBreakModule_UnassignedAlwaysDemotesToIgnored verifies the shipped
// (simpler) Open Question resolution: every unassigned break is demoted to
// ignored regardless of why it failed.
func TestBreakModule_UnassignedAlwaysDemotesToIgnored(t *testing.T) {
	m := constraint.NewBreakModule()
	b := breakJob("v1")
	sc := engine.NewSolutionContext([]engine.Job{b}, nil)
	sc.Unassign(b, 5)

	m.AcceptSolutionState(sc)

	assert.Empty(t, sc.UnassignedJobs())
	assert.Contains(t, sc.IgnoredJobs(), engine.Job(b))
}

func TestBreakModule_ForbidsBreakImmediatelyAfterDeparture(t *testing.T) {
	m := constraint.NewBreakModule()
	cs := m.Constraints()
	require.Len(t, cs.HardActivity, 1)

	b := breakJob("v1")
	start := engine.NewStartActivity(engine.Place{}, 0)
	target := engine.NewJobActivity(b, -1, engine.Place{})

	ok, code, _ := cs.HardActivity[0].CheckActivity(nil, start, target, engine.Activity{})
	assert.False(t, ok)
	assert.Equal(t, engine.ViolationBreak, code)

	job := &engine.SingleJob{Dimensions: engine.NewDimensions().Set(engine.DimID, "j1")}
	prevJob := engine.NewJobActivity(job, -1, engine.Place{})
	ok, _, _ = cs.HardActivity[0].CheckActivity(nil, prevJob, target, engine.Activity{})
	assert.True(t, ok)
}
