package engine

// Well-known dimension keys. Kept as constants rather than ad-hoc string
// literals so the hot insertion path never typos a lookup key.
const (
	DimID        = "id"
	DimPriority  = "priority"
	DimSkills    = "skills"
	DimType      = "type"
	DimVehicleID = "vehicle_id"
)

// TypeBreak is the dimension value DimType carries for break jobs (spec §3/§4.7).
const TypeBreak = "break"

// Dimensions is a heterogeneous, string-keyed attribute bag attached to jobs
// and vehicles. It is intentionally a thin wrapper over map[string]any:
// per Design Note "Attribute bags", the boundary representation stays
// string-keyed and type-tagged, while the well-known keys above avoid
// repeated hashing of literal strings in the hot insertion loop.
type Dimensions map[string]any

// NewDimensions returns an empty, ready-to-use Dimensions map.
func NewDimensions() Dimensions {
	return make(Dimensions)
}

// Set stores a value under key and returns the receiver for chaining.
func (d Dimensions) Set(key string, value any) Dimensions {
	d[key] = value
	return d
}

// String returns the string value at key, or ("", false) if absent or of a
// different type.
func (d Dimensions) String(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns the int value at key, or (0, false) if absent or of a
// different type.
func (d Dimensions) Int(key string) (int, bool) {
	v, ok := d[key]
	if !ok {
		return 0, false
	}
	i, ok := v.(int)
	return i, ok
}

// Strings returns the []string value at key, or (nil, false) if absent or of
// a different type.
func (d Dimensions) Strings(key string) ([]string, bool) {
	v, ok := d[key]
	if !ok {
		return nil, false
	}
	s, ok := v.([]string)
	return s, ok
}

// ID returns the DimID value, defaulting to "" when unset.
func (d Dimensions) ID() string {
	s, _ := d.String(DimID)
	return s
}

// Priority returns the DimPriority value, defaulting to 1 (highest
// importance) when unset — matching the original's `unwrap_or(1)` convention
// in priorities.rs.
func (d Dimensions) Priority() int {
	p, ok := d.Int(DimPriority)
	if !ok {
		return 1
	}
	return p
}

// Skills returns the DimSkills value, or nil if the job/vehicle has none.
func (d Dimensions) Skills() []string {
	s, _ := d.Strings(DimSkills)
	return s
}

// IsBreak reports whether these dimensions mark a break job.
func (d Dimensions) IsBreak() bool {
	t, _ := d.String(DimType)
	return t == TypeBreak
}

// BreakVehicleID returns the DimVehicleID value and whether it was present.
// Only meaningful when IsBreak() is true.
func (d Dimensions) BreakVehicleID() (string, bool) {
	return d.String(DimVehicleID)
}
