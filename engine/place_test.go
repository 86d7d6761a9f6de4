package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routekit/routekit/engine"
)

func TestTimeWindow_ContainsIsInclusiveOnBothEnds(t *testing.T) {
	tw := engine.TimeWindow{Start: 10, End: 20}
	assert.True(t, tw.Contains(10))
	assert.True(t, tw.Contains(20))
	assert.True(t, tw.Contains(15))
	assert.False(t, tw.Contains(9.99))
	assert.False(t, tw.Contains(20.01))
}

func TestTimeWindow_IntersectsDetectsOverlapAndGap(t *testing.T) {
	a := engine.TimeWindow{Start: 0, End: 10}
	overlapping := engine.TimeWindow{Start: 5, End: 15}
	touching := engine.TimeWindow{Start: 10, End: 20}
	disjoint := engine.TimeWindow{Start: 11, End: 20}

	assert.True(t, a.Intersects(overlapping))
	assert.True(t, a.Intersects(touching))
	assert.False(t, a.Intersects(disjoint))
}

func TestPlace_EarliestStartAndLatestEndSpanAllWindows(t *testing.T) {
	p := engine.Place{Times: []engine.TimeWindow{
		{Start: 10, End: 20},
		{Start: 30, End: 40},
		{Start: 5, End: 15},
	}}
	assert.Equal(t, 5.0, p.EarliestStart())
	assert.Equal(t, 40.0, p.LatestEnd())
}

func TestPlace_FitsAtChecksEveryAlternativeWindow(t *testing.T) {
	p := engine.Place{Times: []engine.TimeWindow{{Start: 0, End: 5}, {Start: 30, End: 40}}}
	assert.True(t, p.FitsAt(2))
	assert.True(t, p.FitsAt(35))
	assert.False(t, p.FitsAt(10))
}

func TestLocation_IsReferenceDistinguishesIndexFromCoordinate(t *testing.T) {
	idx := engine.NewLocationIndex(3)
	coord := engine.NewCoordinate(1.5, 2.5)

	assert.True(t, idx.IsReference())
	assert.False(t, coord.IsReference())
	assert.Equal(t, 3, idx.Index)
	assert.Equal(t, 1.5, coord.Lat)
	assert.Equal(t, 2.5, coord.Lng)
}
