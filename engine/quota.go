package engine

import "time"

// Quota bounds how long the insertion heuristic may keep running. Checked
// between selector/reducer rounds in Heuristic.Process so a long-running
// solve can be cut off without leaving the solution in a partial state.
type Quota interface {
	IsExceeded() bool
}

// TimeQuota exceeds once a wall-clock deadline passes.
type TimeQuota struct {
	deadline time.Time
}

// NewTimeQuota returns a Quota that exceeds limit after this call returns.
func NewTimeQuota(limit time.Duration) *TimeQuota {
	return &TimeQuota{deadline: time.Now().Add(limit)}
}

// IsExceeded reports whether the deadline has passed.
func (q *TimeQuota) IsExceeded() bool {
	return time.Now().After(q.deadline)
}

type unlimitedQuota struct{}

func (unlimitedQuota) IsExceeded() bool { return false }

// NoQuota never exceeds; used by tests and callers that want the heuristic
// to run to completion regardless of wall-clock time.
var NoQuota Quota = unlimitedQuota{}
