package engine

// ActivityKind discriminates sentinel activities from job activities.
type ActivityKind int

const (
	ActivityStart ActivityKind = iota
	ActivityEnd
	ActivityJob
)

// Schedule records when an activity was actually served.
type Schedule struct {
	Arrival   float64
	Departure float64
}

// Activity is one stop in a Tour: either the synthetic start/end sentinel or
// a single task of a job (TaskIndex indexes into a Multi job's Tasks; -1 for
// Single jobs and sentinels).
type Activity struct {
	Kind      ActivityKind
	Job       Job // nil for sentinels
	TaskIndex int
	Place     Place
	Schedule  Schedule
}

// NewStartActivity returns the synthetic activity that always occupies
// position 0 of a Tour (spec §3 invariant).
func NewStartActivity(place Place, departure float64) Activity {
	return Activity{Kind: ActivityStart, TaskIndex: -1, Place: place, Schedule: Schedule{Departure: departure}}
}

// NewEndActivity returns the synthetic activity that, when present, always
// occupies the last position of a Tour.
func NewEndActivity(place Place) Activity {
	return Activity{Kind: ActivityEnd, TaskIndex: -1, Place: place}
}

// NewJobActivity returns an activity serving one task of job at place.
// taskIndex is -1 for Single jobs.
func NewJobActivity(job Job, taskIndex int, place Place) Activity {
	return Activity{Kind: ActivityJob, Job: job, TaskIndex: taskIndex, Place: place}
}

// IsJob reports whether this activity serves a job task (as opposed to a
// start/end sentinel).
func (a Activity) IsJob() bool {
	return a.Kind == ActivityJob
}

// Tour is the ordered activity sequence for one actor: a start sentinel at
// position 0, zero or more job activities, and an optional end sentinel in
// the last position (spec §3).
type Tour struct {
	Activities []Activity
	HasEnd     bool
}

// NewTour creates a tour with only its start sentinel.
func NewTour(start Activity) *Tour {
	return &Tour{Activities: []Activity{start}}
}

// SetEnd appends the end sentinel and marks the tour as having one.
func (t *Tour) SetEnd(end Activity) {
	t.Activities = append(t.Activities, end)
	t.HasEnd = true
}

// Start returns the start sentinel (position 0).
func (t *Tour) Start() Activity {
	return t.Activities[0]
}

// End returns the end sentinel and whether one is present.
func (t *Tour) End() (Activity, bool) {
	if !t.HasEnd {
		return Activity{}, false
	}
	return t.Activities[len(t.Activities)-1], true
}

// InsertAt splices activity into the tour so it becomes element index,
// shifting later activities right. index must address a position strictly
// between the start sentinel and the end sentinel (if any) — callers never
// insert at 0, matching spec §3's "start is position 0" invariant.
func (t *Tour) InsertAt(a Activity, index int) {
	t.Activities = append(t.Activities, Activity{})
	copy(t.Activities[index+1:], t.Activities[index:])
	t.Activities[index] = a
}

// JobActivities returns every non-sentinel activity, in tour order.
func (t *Tour) JobActivities() []Activity {
	out := make([]Activity, 0, len(t.Activities))
	for _, a := range t.Activities {
		if a.IsJob() {
			out = append(out, a)
		}
	}
	return out
}

// Jobs returns the distinct jobs served by this tour, in first-appearance
// order (a Multi job contributes one entry even though it occupies several
// activities).
func (t *Tour) Jobs() []Job {
	seen := make(map[Job]bool)
	var out []Job
	for _, a := range t.Activities {
		if !a.IsJob() || seen[a.Job] {
			continue
		}
		seen[a.Job] = true
		out = append(out, a.Job)
	}
	return out
}

// HasJob reports whether job already occupies some activity in this tour.
func (t *Tour) HasJob(job Job) bool {
	for _, a := range t.Activities {
		if a.Job == job {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the tour; RouteContext.Clone uses it.
func (t *Tour) Clone() *Tour {
	activities := make([]Activity, len(t.Activities))
	copy(activities, t.Activities)
	return &Tour{Activities: activities, HasEnd: t.HasEnd}
}
