package engine

// Costs captures a vehicle's per-use and per-unit cost coefficients.
type Costs struct {
	Fixed       float64 // cost of using this vehicle at all, per tour
	PerDistance float64
	PerDrivingTime float64
	PerWaitingTime float64
	PerServiceTime float64
}

// AreaLimit restricts a vehicle to serving jobs inside a polygon (outer
// shape). Priority is carried but AreaModule does not read it: a job inside
// any listed area is accepted.
type AreaLimit struct {
	Priority   int
	OuterShape []Location
}

// Limits bounds a vehicle's shift (spec §3: "optional limits").
type Limits struct {
	MaxDistance   *float64
	MaxShiftTime  *float64
	AllowedAreas  []AreaLimit
}

// Break describes a vehicle break opportunity: either an absolute
// time-window list, or a pair of offsets from shift start (spec §6).
type Break struct {
	TimeWindows  []TimeWindow // used when Offsets is empty
	Offsets      []float64    // [earliest, latest] offset from shift start; used when non-empty
	Duration     float64
	Places       []Place // alternative places the break can be served at (may reuse current position)
}

// ResolveWindows returns this break's absolute time windows given a shift
// start time, resolving Offsets into TimeWindows when present.
func (b Break) ResolveWindows(shiftStart float64) []TimeWindow {
	if len(b.Offsets) == 0 {
		return b.TimeWindows
	}
	return []TimeWindow{{Start: shiftStart + b.Offsets[0], End: shiftStart + b.Offsets[1]}}
}

// Reload is a place where a vehicle can load/unload cargo mid-tour.
type Reload struct {
	Place Place
}

// Shift describes one period during which an actor is available.
type Shift struct {
	StartLocation Location
	StartEarliest float64
	StartLatest   *float64 // nil means unconstrained (spec §3)

	HasEnd      bool
	EndLocation Location
	EndLatest   float64

	Depots  []Place
	Breaks  []Break
	Reloads []Reload
}

// VehicleType groups the costs, capacity, skills, and shifts shared by a
// family of concrete vehicles.
type VehicleType struct {
	TypeID   string
	Costs    Costs
	Capacity []float64
	Skills   []string
	Shifts   []Shift
	Limits   Limits
}

// Vehicle is one concrete vehicle of a VehicleType.
type Vehicle struct {
	ID       string
	Type     *VehicleType
	Dimensions Dimensions
}

// Dimens returns this vehicle's attribute bag, defaulting to one carrying
// just its id if none was set explicitly.
func (v *Vehicle) Dimens() Dimensions {
	if v.Dimensions != nil {
		return v.Dimensions
	}
	return NewDimensions().Set(DimID, v.ID)
}

// Actor is the (driver, vehicle, shift-detail) triple that executes one
// tour. Drivers are not separately modeled here (no per-driver cost/skill
// divergence in this engine) so Actor reduces to a vehicle+shift pair, but
// keeps its own identity so two actors sharing a vehicle-type-and-shift are
// still distinguishable by the registry.
type Actor struct {
	Vehicle *Vehicle
	Shift   Shift
}

// ID returns a stable identity string for this actor, used by the regret
// reducer's per-actor dedup (spec §4.3 step 3).
func (a *Actor) ID() string {
	return a.Vehicle.ID
}
