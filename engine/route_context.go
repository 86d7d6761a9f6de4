package engine

import "math"

// RouteContext owns one actor's Tour plus the per-route state constraint
// modules cache across evaluations (e.g. running load, running time). State
// is keyed by small integer module ids rather than strings, since it sits on
// the hot insertion-evaluation path (spec §4.2 "StateKeys").
type RouteContext struct {
	Actor *Actor
	Tour  *Tour
	state map[int]any
}

// NewRouteContext builds a fresh route for actor: a start sentinel at
// actor's shift start location/window, and an end sentinel if the shift
// declares one.
func NewRouteContext(actor *Actor) *RouteContext {
	tour := NewTour(NewStartActivity(shiftStartPlace(actor.Shift), actor.Shift.StartEarliest))
	if actor.Shift.HasEnd {
		tour.SetEnd(NewEndActivity(shiftEndPlace(actor.Shift)))
	}
	return &RouteContext{Actor: actor, Tour: tour, state: make(map[int]any)}
}

func shiftStartPlace(s Shift) Place {
	end := math.MaxFloat64
	if s.StartLatest != nil {
		end = *s.StartLatest
	}
	return Place{Location: s.StartLocation, Times: []TimeWindow{{Start: s.StartEarliest, End: end}}}
}

func shiftEndPlace(s Shift) Place {
	return Place{Location: s.EndLocation, Times: []TimeWindow{{Start: s.StartEarliest, End: s.EndLatest}}}
}

// State returns the cached value for key, and whether one was set.
func (rc *RouteContext) State(key int) (any, bool) {
	v, ok := rc.state[key]
	return v, ok
}

// SetState caches value under key.
func (rc *RouteContext) SetState(key int, value any) {
	rc.state[key] = value
}

// ClearState drops every cached value, forcing constraint modules to
// recompute on next access. Called whenever a route's activities change.
func (rc *RouteContext) ClearState() {
	rc.state = make(map[int]any)
}

// Clone returns a deep copy of rc: an independent Tour and a fresh state
// map (state is recomputed rather than copied). The commit path does not
// call it: Registry.UseRoute records and Heuristic commits the candidate
// RouteContext itself, which Registry.Next built fresh for that round.
func (rc *RouteContext) Clone() *RouteContext {
	return &RouteContext{Actor: rc.Actor, Tour: rc.Tour.Clone(), state: make(map[int]any)}
}
