package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/engine"
)

func TestTour_StartAlwaysPositionZero(t *testing.T) {
	// GIVEN a fresh tour
	start := engine.NewStartActivity(engine.Place{Location: engine.NewLocationIndex(0)}, 0)
	tour := engine.NewTour(start)

	// WHEN a job activity is inserted at index 1
	job := &engine.SingleJob{Dimensions: engine.NewDimensions().Set(engine.DimID, "j1")}
	tour.InsertAt(engine.NewJobActivity(job, -1, engine.Place{}), 1)

	// THEN the start sentinel still occupies position 0
	require.Equal(t, engine.ActivityStart, tour.Activities[0].Kind)
	assert.True(t, tour.Activities[1].IsJob())
}

func TestTour_EndStaysLastAfterInsert(t *testing.T) {
	start := engine.NewStartActivity(engine.Place{}, 0)
	tour := engine.NewTour(start)
	tour.SetEnd(engine.NewEndActivity(engine.Place{}))

	job := &engine.SingleJob{Dimensions: engine.NewDimensions().Set(engine.DimID, "j1")}
	tour.InsertAt(engine.NewJobActivity(job, -1, engine.Place{}), 1)

	end, ok := tour.End()
	require.True(t, ok)
	assert.Equal(t, engine.ActivityEnd, end.Kind)
	assert.Equal(t, engine.ActivityEnd, tour.Activities[len(tour.Activities)-1].Kind)
}

func TestTour_JobsReturnsDistinctJobsInFirstAppearanceOrder(t *testing.T) {
	start := engine.NewStartActivity(engine.Place{}, 0)
	tour := engine.NewTour(start)

	multi := &engine.MultiJob{Dimensions: engine.NewDimensions().Set(engine.DimID, "m1")}
	single := &engine.SingleJob{Dimensions: engine.NewDimensions().Set(engine.DimID, "s1")}

	tour.InsertAt(engine.NewJobActivity(multi, 0, engine.Place{}), 1)
	tour.InsertAt(engine.NewJobActivity(single, -1, engine.Place{}), 2)
	tour.InsertAt(engine.NewJobActivity(multi, 1, engine.Place{}), 3)

	jobs := tour.Jobs()
	require.Len(t, jobs, 2)
	assert.Same(t, multi, jobs[0])
	assert.Same(t, single, jobs[1])
	assert.True(t, tour.HasJob(multi))
}

func TestTour_CloneIsIndependent(t *testing.T) {
	start := engine.NewStartActivity(engine.Place{}, 0)
	tour := engine.NewTour(start)
	job := &engine.SingleJob{Dimensions: engine.NewDimensions().Set(engine.DimID, "j1")}
	tour.InsertAt(engine.NewJobActivity(job, -1, engine.Place{}), 1)

	clone := tour.Clone()
	clone.InsertAt(engine.NewJobActivity(job, -1, engine.Place{}), 1)

	assert.Len(t, tour.Activities, 2)
	assert.Len(t, clone.Activities, 3)
}
