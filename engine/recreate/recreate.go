// Package recreate holds concrete strategies that rebuild a full solution
// from a partially (or entirely) destroyed one by repeated insertion. Each
// strategy is a thin composition of a job selector, a reducer, and the
// shared insertion.Heuristic driver — the policy choice is which selector
// and reducer it wires together, not a bespoke loop.
package recreate

import "github.com/routekit/routekit/engine"

// Recreate rebuilds ctx's solution in place, inserting required jobs until
// none remain or quota signals, and returns ctx.
type Recreate interface {
	Run(ctx *engine.InsertionContext, quota engine.Quota) *engine.InsertionContext
}
