package constraint

import "github.com/routekit/routekit/engine"

// AreaModule restricts a vehicle type's declared AllowedAreas: when a
// vehicle type lists one or more areas, every job it serves must fall
// inside at least one of them. A vehicle type with no declared areas is
// unrestricted (spec §3/§6 "optional limits").
type AreaModule struct{}

// NewAreaModule returns a ready-to-use area module.
func NewAreaModule() *AreaModule {
	return &AreaModule{}
}

func (m *AreaModule) AcceptInsertion(*engine.SolutionContext, int, engine.Job) {}
func (m *AreaModule) AcceptRouteState(*engine.RouteContext)                    {}
func (m *AreaModule) AcceptSolutionState(*engine.SolutionContext)              {}
func (m *AreaModule) StateKeys() []int                                        { return nil }

func (m *AreaModule) Constraints() Constraints {
	return Constraints{HardRoute: []HardRouteConstraint{areaRouteConstraint{}}}
}

type areaRouteConstraint struct{}

func (areaRouteConstraint) CheckRoute(_ *engine.SolutionContext, route *engine.RouteContext, job engine.Job) (bool, engine.ViolationCode) {
	areas := route.Actor.Vehicle.Type.Limits.AllowedAreas
	if len(areas) == 0 {
		return true, 0
	}
	for _, loc := range jobLocations(job) {
		if !inAnyArea(loc, areas) {
			return false, engine.ViolationArea
		}
	}
	return true, 0
}

func jobLocations(job engine.Job) []engine.Location {
	var locs []engine.Location
	switch j := job.(type) {
	case *engine.SingleJob:
		for _, p := range j.Places {
			locs = append(locs, p.Location)
		}
	case *engine.MultiJob:
		for _, t := range j.Tasks {
			for _, p := range t.Places {
				locs = append(locs, p.Location)
			}
		}
	}
	return locs
}

func inAnyArea(loc engine.Location, areas []engine.AreaLimit) bool {
	for _, area := range areas {
		if pointInPolygon(loc, area.OuterShape) {
			return true
		}
	}
	return false
}

// pointInPolygon is the standard ray-casting test: count how many polygon
// edges a horizontal ray from point crosses, odd means inside.
func pointInPolygon(point engine.Location, polygon []engine.Location) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := polygon[i], polygon[j]
		crosses := (pi.Lat > point.Lat) != (pj.Lat > point.Lat)
		if !crosses {
			continue
		}
		intersectLng := (pj.Lng-pi.Lng)*(point.Lat-pi.Lat)/(pj.Lat-pi.Lat) + pi.Lng
		if point.Lng < intersectLng {
			inside = !inside
		}
	}
	return inside
}
