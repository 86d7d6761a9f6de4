package engine

// Job is the unit of work to be assigned to a vehicle tour. A Job is either
// a Single (one task, one or more alternative places) or a Multi (ordered
// sub-tasks — all pickups before any delivery). Job is implemented by
// pointer types (*SingleJob, *MultiJob) so that Job values used as set/map
// keys in SolutionContext compare by identity, matching the original's
// Arc<Job> reference-equality semantics.
type Job interface {
	// Dimens returns this job's attribute bag (identity, priority, skills, ...).
	Dimens() Dimensions
	// ID is a convenience accessor for Dimens().ID().
	ID() string
	isJob()
}

// SingleJob is a job with exactly one task, offered at one or more
// alternative Places (the evaluator tries each in turn).
type SingleJob struct {
	Dimensions Dimensions
	Places     []Place
	// Demand is the per-dimension quantity consumed from vehicle capacity;
	// nil/empty for jobs with no capacity impact (e.g. breaks).
	Demand []float64
}

func (s *SingleJob) Dimens() Dimensions { return s.Dimensions }
func (s *SingleJob) ID() string         { return s.Dimensions.ID() }
func (*SingleJob) isJob()               {}

// TaskKind discriminates a Multi job's sub-tasks.
type TaskKind int

const (
	TaskPickup TaskKind = iota
	TaskDelivery
)

// Task is one ordered sub-task of a Multi job.
type Task struct {
	Kind   TaskKind
	Places []Place
	Demand []float64
	Tag    string
}

// MultiJob is a job with ordered sub-tasks: every pickup must be served
// before any delivery (spec §3).
type MultiJob struct {
	Dimensions Dimensions
	Tasks      []Task
}

func (m *MultiJob) Dimens() Dimensions { return m.Dimensions }
func (m *MultiJob) ID() string         { return m.Dimensions.ID() }
func (*MultiJob) isJob()               {}

// Pickups returns the pickup sub-tasks in declared order.
func (m *MultiJob) Pickups() []Task {
	return m.tasksOfKind(TaskPickup)
}

// Deliveries returns the delivery sub-tasks in declared order.
func (m *MultiJob) Deliveries() []Task {
	return m.tasksOfKind(TaskDelivery)
}

func (m *MultiJob) tasksOfKind(kind TaskKind) []Task {
	var out []Task
	for _, t := range m.Tasks {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// IsBreak reports whether job is a Single break job (type="break").
func IsBreak(job Job) bool {
	single, ok := job.(*SingleJob)
	return ok && single.Dimensions.IsBreak()
}
