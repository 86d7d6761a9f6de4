package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routekit/routekit/engine"
	"github.com/routekit/routekit/engine/constraint"
)

func TestReachabilityModule_RejectsUnreachableNeighbor(t *testing.T) {
	unreachableFrom := engine.NewLocationIndex(1)
	m := constraint.NewReachabilityModule(func(from, to engine.Location) bool {
		return from != unreachableFrom
	})
	cs := m.Constraints()

	prev := engine.Activity{Place: engine.Place{Location: unreachableFrom}}
	j := &engine.SingleJob{Dimensions: engine.NewDimensions().Set(engine.DimID, "j1")}
	target := engine.NewJobActivity(j, -1, engine.Place{Location: engine.NewLocationIndex(2)})

	ok, code, _ := cs.HardActivity[0].CheckActivity(nil, prev, target, engine.Activity{})
	assert.False(t, ok)
	assert.Equal(t, engine.ViolationReachable, code)
}

func TestReachabilityModule_AcceptsReachableChain(t *testing.T) {
	m := constraint.NewReachabilityModule(func(from, to engine.Location) bool { return true })
	cs := m.Constraints()

	prev := engine.Activity{Place: engine.Place{Location: engine.NewLocationIndex(1)}}
	j := &engine.SingleJob{Dimensions: engine.NewDimensions().Set(engine.DimID, "j1")}
	target := engine.NewJobActivity(j, -1, engine.Place{Location: engine.NewLocationIndex(2)})
	next := engine.Activity{Kind: engine.ActivityEnd, Place: engine.Place{Location: engine.NewLocationIndex(3)}}

	ok, _, _ := cs.HardActivity[0].CheckActivity(nil, prev, target, next)
	assert.True(t, ok)
}
