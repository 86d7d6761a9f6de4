package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/engine"
)

func actor(id string) *engine.Actor {
	vt := &engine.VehicleType{TypeID: "t", Shifts: []engine.Shift{{StartLocation: engine.NewLocationIndex(0)}}}
	v := &engine.Vehicle{ID: id, Type: vt}
	return &engine.Actor{Vehicle: v, Shift: vt.Shifts[0]}
}

func TestRegistry_NextPeeksFirstUnusedInFleetOrder(t *testing.T) {
	a1, a2 := actor("a1"), actor("a2")
	reg := engine.NewRegistry([]*engine.Actor{a1, a2})

	rc1, ok := reg.Next()
	require.True(t, ok)
	assert.Same(t, a1, rc1.Actor)

	// Peeking again without using it returns the same actor.
	rc1b, ok := reg.Next()
	require.True(t, ok)
	assert.Same(t, a1, rc1b.Actor)
}

func TestRegistry_UseRouteMarksActorUsedExactlyOnce(t *testing.T) {
	a1, a2 := actor("a1"), actor("a2")
	reg := engine.NewRegistry([]*engine.Actor{a1, a2})

	rc1, _ := reg.Next()
	firstCommit := reg.UseRoute(rc1)
	assert.True(t, firstCommit)

	secondCommit := reg.UseRoute(rc1)
	assert.False(t, secondCommit, "a second UseRoute on the same route must not report a fresh commit")

	rc2, ok := reg.Next()
	require.True(t, ok)
	assert.Same(t, a2, rc2.Actor)
}

func TestRegistry_HasUnusedFalseWhenAllUsed(t *testing.T) {
	a1 := actor("a1")
	reg := engine.NewRegistry([]*engine.Actor{a1})

	assert.True(t, reg.HasUnused())
	rc1, _ := reg.Next()
	reg.UseRoute(rc1)
	assert.False(t, reg.HasUnused())

	_, ok := reg.Next()
	assert.False(t, ok)
}
