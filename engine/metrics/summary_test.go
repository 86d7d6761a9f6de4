package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/engine"
	"github.com/routekit/routekit/engine/internal/testutil"
	"github.com/routekit/routekit/engine/metrics"
)

func TestSummarize_OneRouteWithOneJob(t *testing.T) {
	vt := &engine.VehicleType{
		TypeID: "t",
		Costs:  engine.Costs{Fixed: 100, PerDistance: 2, PerServiceTime: 1},
		Shifts: []engine.Shift{{StartLocation: engine.NewLocationIndex(0)}},
	}
	v := testutil.Vehicle(t, "v1", vt)
	fleet := testutil.Fleet(t, v)

	job := testutil.SingleJobWithDemand(t, "j1", testutil.Place(t, 1, 3, testutil.Window(0, 1000)), []float64{4})

	problem := engine.NewProblem(engine.Plan{Jobs: []engine.Job{job}}, fleet, testutil.MatrixTransport{})
	ctx := engine.NewInsertionContext(problem, engine.NewRandomSource(1))

	route, ok := ctx.Solution.Registry.Next()
	require.True(t, ok)
	ctx.Solution.Registry.UseRoute(route)
	ctx.Solution.Routes = append(ctx.Solution.Routes, route)
	ctx.Solution.Assign(job)

	place := testutil.Place(t, 1, 3, testutil.Window(0, 1000))
	route.Tour.InsertAt(engine.NewJobActivity(job, -1, place), 1)
	route.Tour.Activities[1].Schedule = engine.Schedule{Arrival: 5, Departure: 5}

	summary := metrics.Summarize(ctx)

	assert.Equal(t, 1, summary.Assigned)
	assert.Equal(t, 0, summary.Unassigned)
	require.Len(t, summary.Routes, 1)
	rs := summary.Routes[0]
	assert.Equal(t, "v1", rs.ActorID)
	assert.Equal(t, 1, rs.Jobs)
	testutil.AssertFloat64Equal(t, "distance", 1, rs.Distance, 1e-9)
	testutil.AssertFloat64Equal(t, "cost", 105, rs.Cost, 1e-9)
	require.Len(t, rs.Load, 1)
	assert.Equal(t, 4.0, rs.Load[0])
}

func TestSummarize_UnassignedJobsCountedByViolationCode(t *testing.T) {
	job := testutil.SingleJob(t, "j1", testutil.Place(t, 1, 0, testutil.Window(0, 1000)))
	problem := engine.NewProblem(engine.Plan{Jobs: []engine.Job{job}}, &engine.Fleet{}, testutil.MatrixTransport{})
	ctx := engine.NewInsertionContext(problem, engine.NewRandomSource(1))

	ctx.Solution.Unassign(job, int(engine.ViolationCapacity))

	summary := metrics.Summarize(ctx)
	assert.Equal(t, 0, summary.Assigned)
	assert.Equal(t, 1, summary.Unassigned)
	assert.Equal(t, 1, summary.UnassignedByCode[engine.ViolationCapacity])
}

func TestSummarize_NoVarianceStatsWithFewerThanTwoRoutes(t *testing.T) {
	vt := testutil.VehicleType(t, "t", nil)
	v := testutil.Vehicle(t, "v1", vt)
	fleet := testutil.Fleet(t, v)
	problem := engine.NewProblem(engine.Plan{}, fleet, testutil.MatrixTransport{})
	ctx := engine.NewInsertionContext(problem, engine.NewRandomSource(1))

	route, ok := ctx.Solution.Registry.Next()
	require.True(t, ok)
	ctx.Solution.Routes = append(ctx.Solution.Routes, route)

	summary := metrics.Summarize(ctx)
	assert.Equal(t, 0.0, summary.DistanceCV)
	assert.Equal(t, 0.0, summary.DurationCV)
	assert.Equal(t, 0.0, summary.LoadCV)
}

func TestSummarize_LoadCVComputedOverDimensionZero(t *testing.T) {
	vt := testutil.VehicleType(t, "t", nil)
	v1 := testutil.Vehicle(t, "v1", vt)
	v2 := testutil.Vehicle(t, "v2", vt)
	fleet := testutil.Fleet(t, v1, v2)

	jobA := testutil.SingleJobWithDemand(t, "ja", testutil.Place(t, 1, 0, testutil.Window(0, 1000)), []float64{2})
	jobB := testutil.SingleJobWithDemand(t, "jb", testutil.Place(t, 1, 0, testutil.Window(0, 1000)), []float64{8})

	problem := engine.NewProblem(engine.Plan{Jobs: []engine.Job{jobA, jobB}}, fleet, testutil.MatrixTransport{})
	ctx := engine.NewInsertionContext(problem, engine.NewRandomSource(1))

	routeA, ok := ctx.Solution.Registry.Next()
	require.True(t, ok)
	ctx.Solution.Registry.UseRoute(routeA)
	ctx.Solution.Routes = append(ctx.Solution.Routes, routeA)
	ctx.Solution.Assign(jobA)
	routeA.Tour.InsertAt(engine.NewJobActivity(jobA, -1, testutil.Place(t, 1, 0, testutil.Window(0, 1000))), 1)

	routeB, ok := ctx.Solution.Registry.Next()
	require.True(t, ok)
	ctx.Solution.Registry.UseRoute(routeB)
	ctx.Solution.Routes = append(ctx.Solution.Routes, routeB)
	ctx.Solution.Assign(jobB)
	routeB.Tour.InsertAt(engine.NewJobActivity(jobB, -1, testutil.Place(t, 1, 0, testutil.Window(0, 1000))), 1)

	summary := metrics.Summarize(ctx)
	require.Len(t, summary.Routes, 2)
	assert.NotZero(t, summary.LoadCV, "loads of 2 and 8 across two routes must yield nonzero variation")
}
