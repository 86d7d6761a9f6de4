package engine

import "sort"

// SolutionContext places every job not committed to a route into exactly one
// of four disjoint sets:
//
//   - required: not yet placed, the heuristic will try to insert these
//   - ignored: intentionally excluded (e.g. a conditional job whose
//     predicate demoted it, or an unassigned break)
//   - unassigned: the heuristic tried and failed, tagged with why
//   - locked: moved there by Lock; the heuristic neither selects nor
//     inserts these
//
// Every transition method removes the job from the other three sets before
// adding it to the target one, so the four sets stay disjoint by
// construction. Assign removes a job from all four, so AllJobs returns the
// job set the context was built from minus the jobs committed to routes.
type SolutionContext struct {
	required   map[Job]struct{}
	ignored    map[Job]struct{}
	unassigned map[Job]int
	locked     map[Job]struct{}

	Routes   []*RouteContext
	Registry *Registry
}

// NewSolutionContext builds a context with every job required and no routes
// committed yet.
func NewSolutionContext(jobs []Job, actors []*Actor) *SolutionContext {
	required := make(map[Job]struct{}, len(jobs))
	for _, j := range jobs {
		required[j] = struct{}{}
	}
	return &SolutionContext{
		required:   required,
		ignored:    make(map[Job]struct{}),
		unassigned: make(map[Job]int),
		locked:     make(map[Job]struct{}),
		Registry:   NewRegistry(actors),
	}
}

// RequiredJobs returns the jobs still awaiting an insertion attempt.
func (sc *SolutionContext) RequiredJobs() []Job {
	return jobKeys(sc.required)
}

// IgnoredJobs returns the jobs intentionally excluded from insertion.
func (sc *SolutionContext) IgnoredJobs() []Job {
	return jobKeys(sc.ignored)
}

// UnassignedJobs returns a copy of the job-to-violation-code map for jobs the
// heuristic attempted and could not place.
func (sc *SolutionContext) UnassignedJobs() map[Job]int {
	out := make(map[Job]int, len(sc.unassigned))
	for j, code := range sc.unassigned {
		out[j] = code
	}
	return out
}

// LockedJobs returns the jobs moved into the locked set by Lock.
func (sc *SolutionContext) LockedJobs() []Job {
	return jobKeys(sc.locked)
}

// IsRequired reports whether job is currently in the required set.
func (sc *SolutionContext) IsRequired(job Job) bool {
	_, ok := sc.required[job]
	return ok
}

// Require moves job into the required set.
func (sc *SolutionContext) Require(job Job) {
	sc.clear(job)
	sc.required[job] = struct{}{}
}

// Ignore moves job into the ignored set.
func (sc *SolutionContext) Ignore(job Job) {
	sc.clear(job)
	sc.ignored[job] = struct{}{}
}

// Unassign moves job into the unassigned set, tagged with the violation
// code (or 0 when none applies, e.g. jobs left over at finalize).
func (sc *SolutionContext) Unassign(job Job, code int) {
	sc.clear(job)
	sc.unassigned[job] = code
}

// Lock moves job into the locked set.
func (sc *SolutionContext) Lock(job Job) {
	sc.clear(job)
	sc.locked[job] = struct{}{}
}

// Assign removes job from whichever of the four sets it occupied, because it
// has been committed to a route. A job that is placed stays out of all four
// sets for the remainder of the solve.
func (sc *SolutionContext) Assign(job Job) {
	sc.clear(job)
}

func (sc *SolutionContext) clear(job Job) {
	delete(sc.required, job)
	delete(sc.ignored, job)
	delete(sc.unassigned, job)
	delete(sc.locked, job)
}

// DrainUnassignedToRequired moves every unassigned job back into required,
// clearing their violation codes. Called at the start of Heuristic.Process
// so a fresh pass reconsiders jobs a previous pass gave up on.
func (sc *SolutionContext) DrainUnassignedToRequired() {
	for job := range sc.unassigned {
		sc.required[job] = struct{}{}
	}
	sc.unassigned = make(map[Job]int)
}

// DrainRequiredToUnassigned moves every remaining required job into
// unassigned under code, clearing required. Called at the end of
// Heuristic.Process for whatever the loop never placed.
func (sc *SolutionContext) DrainRequiredToUnassigned(code int) {
	for job := range sc.required {
		sc.unassigned[job] = code
	}
	sc.required = make(map[Job]struct{})
}

// AllJobs returns the union of all four sets.
func (sc *SolutionContext) AllJobs() []Job {
	out := make([]Job, 0, len(sc.required)+len(sc.ignored)+len(sc.unassigned)+len(sc.locked))
	out = append(out, jobKeys(sc.required)...)
	out = append(out, jobKeys(sc.ignored)...)
	out = append(out, jobKeys(sc.unassigned)...)
	out = append(out, jobKeys(sc.locked)...)
	return out
}

// jobKeys returns m's keys sorted by job ID, so the job lists handed to
// selectors do not depend on map iteration order.
func jobKeys[V any](m map[Job]V) []Job {
	out := make([]Job, 0, len(m))
	for j := range m {
		out = append(out, j)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID() < out[b].ID() })
	return out
}
