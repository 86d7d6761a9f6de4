package insertion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/engine"
	"github.com/routekit/routekit/engine/constraint"
	"github.com/routekit/routekit/engine/insertion"
	"github.com/routekit/routekit/engine/internal/testutil"
)

func emptyPipeline() *constraint.Pipeline {
	return constraint.NewPipeline()
}

func newContext(t *testing.T, vt *engine.VehicleType) (*engine.InsertionContext, *engine.RouteContext) {
	t.Helper()
	v := testutil.Vehicle(t, "v1", vt)
	fleet := testutil.Fleet(t, v)
	problem := engine.NewProblem(engine.Plan{}, fleet, testutil.MatrixTransport{})
	ctx := engine.NewInsertionContext(problem, engine.NewRandomSource(1))
	route, ok := ctx.Solution.Registry.Next()
	require.True(t, ok)
	return ctx, route
}

func TestEvaluator_FeasibleSingleJobReturnsSuccess(t *testing.T) {
	vt := testutil.VehicleType(t, "t", nil)
	ctx, route := newContext(t, vt)
	eval := insertion.NewEvaluator(emptyPipeline())

	place := testutil.Place(t, 1, 0, testutil.Window(0, 1000))
	job := testutil.SingleJob(t, "j1", place)

	result := eval.Evaluate(ctx, job, route, insertion.IsNewRoute(ctx, route), insertion.AnyPosition())
	require.True(t, result.IsSuccess())
	assert.Equal(t, job, result.Success.Job)
	assert.Len(t, result.Success.Placements, 1)
	assert.Equal(t, 1, result.Success.Placements[0].Index)
}

func TestEvaluator_InfeasibleTimeWindowReturnsFailure(t *testing.T) {
	vt := testutil.VehicleType(t, "t", nil)
	travelDuration := func(from, to engine.Location) float64 { return 1 }
	pipeline := constraint.NewPipeline(constraint.NewTimeWindowModule(travelDuration))
	ctx, route := newContext(t, vt)
	eval := insertion.NewEvaluator(pipeline)

	// Window closes before the vehicle could possibly arrive (start earliest is 0,
	// travel takes 1, window ends at -1).
	place := testutil.Place(t, 1, 0, testutil.Window(-100, -1))
	job := testutil.SingleJob(t, "j1", place)

	result := eval.Evaluate(ctx, job, route, true, insertion.AnyPosition())
	require.False(t, result.IsSuccess())
	assert.Equal(t, engine.ViolationTime, result.Failure.Code)
}

func TestEvaluator_NewRouteAddsFixedCost(t *testing.T) {
	vt := testutil.VehicleType(t, "t", nil)
	vt.Costs.Fixed = 50

	ctxNew, routeNew := newContext(t, vt)
	evalNew := insertion.NewEvaluator(emptyPipeline())
	place := testutil.Place(t, 1, 0, testutil.Window(0, 1000))
	job := testutil.SingleJob(t, "j1", place)

	resultNew := evalNew.Evaluate(ctxNew, job, routeNew, true, insertion.AnyPosition())
	require.True(t, resultNew.IsSuccess())

	ctxExisting, routeExisting := newContext(t, vt)
	evalExisting := insertion.NewEvaluator(emptyPipeline())
	resultExisting := evalExisting.Evaluate(ctxExisting, job, routeExisting, false, insertion.AnyPosition())
	require.True(t, resultExisting.IsSuccess())

	assert.Greater(t, resultNew.Success.Cost, resultExisting.Success.Cost)
	assert.InDelta(t, 50, resultNew.Success.Cost-resultExisting.Success.Cost, 1e-9)
}

func TestEvaluator_PickupBeforeDeliveryOrdering(t *testing.T) {
	vt := testutil.VehicleType(t, "t", []float64{10})
	ctx, route := newContext(t, vt)
	eval := insertion.NewEvaluator(emptyPipeline())

	pickup := testutil.Place(t, 1, 0, testutil.Window(0, 1000))
	delivery := testutil.Place(t, 2, 0, testutil.Window(0, 1000))
	job := testutil.PickupDelivery(t, "pd1", pickup, delivery, []float64{3})

	result := eval.Evaluate(ctx, job, route, true, insertion.AnyPosition())
	require.True(t, result.IsSuccess())
	require.Len(t, result.Success.Placements, 2)
	assert.Equal(t, engine.TaskPickup, job.Tasks[result.Success.Placements[0].Activity.TaskIndex].Kind)
	assert.Equal(t, engine.TaskDelivery, job.Tasks[result.Success.Placements[1].Activity.TaskIndex].Kind)
}
