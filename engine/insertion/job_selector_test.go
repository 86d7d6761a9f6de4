package insertion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/engine"
	"github.com/routekit/routekit/engine/insertion"
)

func ctxWithJobs(t *testing.T, n int) *engine.InsertionContext {
	t.Helper()
	jobs := make([]engine.Job, n)
	for i := range jobs {
		jobs[i] = &engine.SingleJob{Dimensions: engine.NewDimensions().Set(engine.DimID, string(rune('a'+i)))}
	}
	problem := engine.NewProblem(engine.Plan{Jobs: jobs}, &engine.Fleet{}, nil)
	return engine.NewInsertionContext(problem, engine.NewRandomSource(1))
}

func TestAllJobSelector_ReturnsEveryRequiredJob(t *testing.T) {
	ctx := ctxWithJobs(t, 5)
	selected := insertion.AllJobSelector{}.Select(ctx)
	assert.Len(t, selected, 5)
}

func TestGapsJobSelector_NeverBelowMinJobs(t *testing.T) {
	ctx := ctxWithJobs(t, 10)
	sel := insertion.NewGapsJobSelector(3)

	selected := sel.Select(ctx)
	require.GreaterOrEqual(t, len(selected), 3)
	assert.LessOrEqual(t, len(selected), 10)
}

func TestGapsJobSelector_ClampsToAvailableJobs(t *testing.T) {
	ctx := ctxWithJobs(t, 2)
	sel := insertion.NewGapsJobSelector(5)

	selected := sel.Select(ctx)
	assert.Len(t, selected, 2)
}

func TestNewJobSelector_PanicsOnUnknownName(t *testing.T) {
	assert.Panics(t, func() { insertion.NewJobSelector("bogus", 1) })
}
