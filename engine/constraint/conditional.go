package constraint

import "github.com/routekit/routekit/engine"

// Predicate is a pure function of the current solution and one job. It must
// not mutate solution or depend on anything outside it — ConditionalJobModule
// may re-evaluate it any number of times per solve.
type Predicate func(solution *engine.SolutionContext, job engine.Job) bool

// ConditionalJobModule is the generic building block behind BreakModule:
// it holds a Predicate and, on every AcceptSolutionState, moves jobs that
// fail it from required into ignored, and moves previously-ignored jobs
// whose predicate now holds back into required.
type ConditionalJobModule struct {
	IsRequired Predicate
}

// NewConditionalJobModule returns a module gated by predicate.
func NewConditionalJobModule(predicate Predicate) *ConditionalJobModule {
	return &ConditionalJobModule{IsRequired: predicate}
}

func (m *ConditionalJobModule) AcceptInsertion(*engine.SolutionContext, int, engine.Job) {}

// AcceptRouteState is a no-op: this module only reclassifies on solution-wide
// broadcasts, since required/ignored membership is solution state, not
// per-route state.
func (m *ConditionalJobModule) AcceptRouteState(*engine.RouteContext) {}

func (m *ConditionalJobModule) AcceptSolutionState(solution *engine.SolutionContext) {
	for _, job := range solution.RequiredJobs() {
		if !m.IsRequired(solution, job) {
			solution.Ignore(job)
		}
	}
	for _, job := range solution.IgnoredJobs() {
		if m.IsRequired(solution, job) {
			solution.Require(job)
		}
	}
}

func (m *ConditionalJobModule) StateKeys() []int { return nil }

func (m *ConditionalJobModule) Constraints() Constraints { return Constraints{} }
