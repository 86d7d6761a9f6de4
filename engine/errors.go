package engine

import "fmt"

// ViolationCode identifies which constraint rejected a candidate insertion.
// Values are stable across releases — callers (reporting, tests) may depend
// on the specific integer.
type ViolationCode int

const (
	ViolationTime          ViolationCode = 1
	ViolationDistanceLimit ViolationCode = 2
	ViolationDurationLimit ViolationCode = 3
	ViolationCapacity      ViolationCode = 4
	ViolationBreak         ViolationCode = 5
	ViolationSkills        ViolationCode = 6
	ViolationLocking       ViolationCode = 7
	ViolationReachable     ViolationCode = 8
	ViolationPriority      ViolationCode = 9
	ViolationArea          ViolationCode = 10
)

// Assertf panics with a formatted message if cond is false. Reserved for
// invariants that, if violated, indicate a bug in the engine itself (a
// partition that should be disjoint overlapping, a tour missing its start
// sentinel) rather than a malformed problem — those are rejected earlier, at
// the engine/format boundary, as a FormatError.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
