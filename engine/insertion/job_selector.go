package insertion

import "github.com/routekit/routekit/engine"

// JobSelector produces the batch of jobs one heuristic iteration considers.
type JobSelector interface {
	Select(ctx *engine.InsertionContext) []engine.Job
}

// AllJobSelector yields every required job, in the order SolutionContext
// happens to hold them.
type AllJobSelector struct{}

func (AllJobSelector) Select(ctx *engine.InsertionContext) []engine.Job {
	return ctx.Solution.RequiredJobs()
}

// GapsJobSelector shuffles the required jobs using the context's random
// source, then yields a random prefix of length uniformly drawn from
// [MinJobs, max(MinJobs, len(required))] — stochastic diversification so
// successive iterations don't always contend over the same job set.
type GapsJobSelector struct {
	MinJobs int
}

// NewGapsJobSelector returns a selector that never yields fewer than
// minJobs jobs (when that many are available).
func NewGapsJobSelector(minJobs int) *GapsJobSelector {
	return &GapsJobSelector{MinJobs: minJobs}
}

func (s *GapsJobSelector) Select(ctx *engine.InsertionContext) []engine.Job {
	jobs := ctx.Solution.RequiredJobs()
	ctx.Random.Shuffle(len(jobs), func(i, j int) { jobs[i], jobs[j] = jobs[j], jobs[i] })

	upper := s.MinJobs
	if len(jobs) > upper {
		upper = len(jobs)
	}
	n := s.MinJobs
	if upper > s.MinJobs {
		n = s.MinJobs + ctx.Random.Intn(upper-s.MinJobs+1)
	}
	if n > len(jobs) {
		n = len(jobs)
	}
	return jobs[:n]
}

// NewJobSelector resolves a selector by name, panicking on an unknown one —
// a config/wiring mistake the caller should fix, not recover from.
func NewJobSelector(name string, minJobs int) JobSelector {
	switch name {
	case "all":
		return AllJobSelector{}
	case "gaps":
		return NewGapsJobSelector(minJobs)
	default:
		panic("insertion: unknown job selector " + name)
	}
}
