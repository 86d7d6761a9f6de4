package engine

// RelationType controls how strictly a Relation's jobs must be ordered
// within the vehicle's tour (spec §3 "locking relations").
type RelationType int

const (
	// RelationAny requires every listed job to end up on the named vehicle,
	// in any order relative to each other and to other jobs on that tour.
	RelationAny RelationType = iota
	// RelationSequence requires the listed jobs to appear on the named
	// vehicle's tour in the given order, but other jobs may be interleaved.
	RelationSequence
	// RelationStrict requires the listed jobs to appear contiguously, in the
	// given order, with no other job interleaved.
	RelationStrict
)

// Relation locks a set of jobs to one vehicle, with an ordering strictness.
type Relation struct {
	Type    RelationType
	JobIDs  []string
	ActorID string
}

// JobSet returns this relation's job ids as a set for membership checks.
func (r Relation) JobSet() map[string]bool {
	set := make(map[string]bool, len(r.JobIDs))
	for _, id := range r.JobIDs {
		set[id] = true
	}
	return set
}
