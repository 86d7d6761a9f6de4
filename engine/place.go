package engine

// Location is either a geo-coordinate or an index into a routing matrix.
// Mirrors the pragmatic format's untagged Location union (model.rs) — Go has
// no sum types, so the discriminant is explicit via IsReference.
type Location struct {
	Lat   float64
	Lng   float64
	Index int
	// Reference is true when Index addresses a routing matrix entry;
	// false when Lat/Lng is a geo-coordinate.
	Reference bool
}

// NewCoordinate returns a geo-coordinate Location.
func NewCoordinate(lat, lng float64) Location {
	return Location{Lat: lat, Lng: lng}
}

// NewLocationIndex returns a routing-matrix-index Location.
func NewLocationIndex(index int) Location {
	return Location{Index: index, Reference: true}
}

// IsReference reports whether this Location addresses a routing matrix index
// rather than a geo-coordinate.
func (l Location) IsReference() bool {
	return l.Reference
}

// TimeWindow is a closed interval [Start, End] in the engine's time unit
// (left to the caller — ticks, seconds, or RFC3339-derived epoch seconds).
type TimeWindow struct {
	Start float64
	End   float64
}

// Contains reports whether t falls within the window, inclusive on both ends.
func (tw TimeWindow) Contains(t float64) bool {
	return t >= tw.Start && t <= tw.End
}

// Intersects reports whether tw and other overlap.
func (tw TimeWindow) Intersects(other TimeWindow) bool {
	return tw.Start <= other.End && other.Start <= tw.End
}

// Place is a single location a job (or job task) can be served at: where,
// how long service takes, and during which windows it may start.
type Place struct {
	Location Location
	Duration float64
	// Times is non-empty per spec §3; a Place with a zero-value Times slice
	// is malformed and callers should reject it at the format boundary
	// (see engine/format) rather than let it flow into the engine.
	Times []TimeWindow
}

// EarliestStart returns the earliest time a service window at this place
// allows starting, used by hard-activity time checks.
func (p Place) EarliestStart() float64 {
	earliest := p.Times[0].Start
	for _, tw := range p.Times[1:] {
		if tw.Start < earliest {
			earliest = tw.Start
		}
	}
	return earliest
}

// FitsAt reports whether arrival time t falls within any of this place's
// acceptable time windows.
func (p Place) FitsAt(t float64) bool {
	for _, tw := range p.Times {
		if tw.Contains(t) {
			return true
		}
	}
	return false
}

// LatestEnd returns the latest time any of this place's windows stays open,
// used to decide whether a missed window can still be reached further down
// a route (stopped=false) or is hopeless for the rest of it (stopped=true).
func (p Place) LatestEnd() float64 {
	latest := p.Times[0].End
	for _, tw := range p.Times[1:] {
		if tw.End > latest {
			latest = tw.End
		}
	}
	return latest
}
