package constraint

import "github.com/routekit/routekit/engine"

// LockingModule enforces job-to-vehicle locking relations: a job bound by a
// Relation may only be placed on that relation's actor, and — for Sequence
// and Strict relations — only adjacent to the tour's existing relation jobs
// in an order consistent with the relation's declared job order. Strict
// additionally requires true adjacency (no other job interleaved); Sequence
// only requires the relative order, gaps allowed.
type LockingModule struct {
	byJob map[string]engine.Relation
}

// NewLockingModule indexes relations by job id for O(1) lookup on the hot
// insertion path.
func NewLockingModule(relations []engine.Relation) *LockingModule {
	byJob := make(map[string]engine.Relation)
	for _, r := range relations {
		for _, id := range r.JobIDs {
			byJob[id] = r
		}
	}
	return &LockingModule{byJob: byJob}
}

func (m *LockingModule) AcceptInsertion(*engine.SolutionContext, int, engine.Job) {}
func (m *LockingModule) AcceptRouteState(*engine.RouteContext)                    {}
func (m *LockingModule) AcceptSolutionState(*engine.SolutionContext)              {}
func (m *LockingModule) StateKeys() []int                                        { return nil }

func (m *LockingModule) Constraints() Constraints {
	return Constraints{
		HardRoute:    []HardRouteConstraint{lockingRouteConstraint{m}},
		HardActivity: []HardActivityConstraint{lockingActivityConstraint{m}},
	}
}

type lockingRouteConstraint struct{ m *LockingModule }

func (c lockingRouteConstraint) CheckRoute(_ *engine.SolutionContext, route *engine.RouteContext, job engine.Job) (bool, engine.ViolationCode) {
	if rel, ok := c.m.byJob[job.ID()]; ok && rel.ActorID != route.Actor.ID() {
		return false, engine.ViolationLocking
	}
	return true, 0
}

type lockingActivityConstraint struct{ m *LockingModule }

// CheckActivity only has the immediate triple to work with (the pipeline's
// HardActivity contract is local by design), so ordering is enforced
// against the immediate neighbors rather than the whole tour: if the
// neighbor belongs to the same relation, target's declared order relative
// to it must hold, and for Strict must be the exact next/previous slot.
func (c lockingActivityConstraint) CheckActivity(_ *engine.RouteContext, prev, target, next engine.Activity) (bool, engine.ViolationCode, bool) {
	if !target.IsJob() {
		return true, 0, false
	}
	rel, ok := c.m.byJob[target.Job.ID()]
	if !ok || rel.Type == engine.RelationAny {
		return true, 0, false
	}
	targetPos := indexOf(rel.JobIDs, target.Job.ID())

	if prev.IsJob() {
		if prevRel, ok := c.m.byJob[prev.Job.ID()]; ok && sameRelation(prevRel, rel) {
			prevPos := indexOf(rel.JobIDs, prev.Job.ID())
			if rel.Type == engine.RelationStrict && targetPos != prevPos+1 {
				return false, engine.ViolationLocking, false
			}
			if rel.Type == engine.RelationSequence && targetPos <= prevPos {
				return false, engine.ViolationLocking, false
			}
		}
	}
	if next.IsJob() {
		if nextRel, ok := c.m.byJob[next.Job.ID()]; ok && sameRelation(nextRel, rel) {
			nextPos := indexOf(rel.JobIDs, next.Job.ID())
			if rel.Type == engine.RelationStrict && nextPos != targetPos+1 {
				return false, engine.ViolationLocking, false
			}
			if rel.Type == engine.RelationSequence && nextPos <= targetPos {
				return false, engine.ViolationLocking, false
			}
		}
	}
	return true, 0, false
}

func sameRelation(a, b engine.Relation) bool {
	return a.ActorID == b.ActorID && a.Type == b.Type && len(a.JobIDs) == len(b.JobIDs) && a.JobIDs[0] == b.JobIDs[0]
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
