package format

import "github.com/routekit/routekit/engine"

// ValidateFleet checks a decoded Fleet for the structural issues the
// original's validation/vehicles.rs catches before a problem ever reaches
// the solver: duplicate ids, inverted windows, malformed area shapes, and
// depot placement. It returns every violation found rather than stopping at
// the first, since loader.go callers care most about the full picture; Load
// itself only surfaces the first.
func ValidateFleet(fleet *engine.Fleet) []*FormatError {
	var errs []*FormatError

	seenType := make(map[string]bool, len(fleet.Types))
	for _, t := range fleet.Types {
		if seenType[t.TypeID] {
			errs = append(errs, newFormatError(ErrDuplicateTypeID, "duplicate vehicle type id %q", t.TypeID))
		}
		seenType[t.TypeID] = true

		for _, shift := range t.Shifts {
			errs = append(errs, validateShift(t.TypeID, shift)...)
		}

		for _, area := range t.Limits.AllowedAreas {
			if len(area.OuterShape) < 3 {
				errs = append(errs, newFormatError(ErrAreaShape,
					"vehicle type %q: allowed area needs at least 3 points, got %d", t.TypeID, len(area.OuterShape)))
			}
		}
	}

	seenVehicle := make(map[string]bool, len(fleet.Vehicles))
	for _, v := range fleet.Vehicles {
		if seenVehicle[v.ID] {
			errs = append(errs, newFormatError(ErrDuplicateVehicleID, "duplicate vehicle id %q", v.ID))
		}
		seenVehicle[v.ID] = true
	}

	return errs
}

func validateShift(typeID string, shift engine.Shift) []*FormatError {
	var errs []*FormatError

	if shift.StartLatest != nil && *shift.StartLatest < shift.StartEarliest {
		errs = append(errs, newFormatError(ErrShiftTimeOrdering,
			"vehicle type %q: shift start_latest (%v) precedes start_earliest (%v)",
			typeID, *shift.StartLatest, shift.StartEarliest))
	}
	if shift.HasEnd && shift.EndLatest < shift.StartEarliest {
		errs = append(errs, newFormatError(ErrShiftTimeOrdering,
			"vehicle type %q: shift end_latest (%v) precedes start_earliest (%v)",
			typeID, shift.EndLatest, shift.StartEarliest))
	}

	for _, depot := range shift.Depots {
		errs = append(errs, validateWindows(typeID, "depot", depot.Times)...)
		if depot.Location == shift.StartLocation {
			errs = append(errs, newFormatError(ErrDepotDistinctness,
				"vehicle type %q: depot location must differ from shift start", typeID))
		}
	}
	errs = append(errs, validateDepotUniqueness(typeID, shift.Depots)...)

	for _, brk := range shift.Breaks {
		errs = append(errs, validateWindows(typeID, "break", brk.TimeWindows)...)
		if len(brk.Offsets) != 0 && len(brk.Offsets) != 2 {
			errs = append(errs, newFormatError(ErrWindowCorrectness,
				"vehicle type %q: break offsets must have exactly 2 elements, got %d", typeID, len(brk.Offsets)))
		} else if len(brk.Offsets) == 2 && brk.Offsets[0] > brk.Offsets[1] {
			errs = append(errs, newFormatError(ErrWindowCorrectness,
				"vehicle type %q: break offset start (%v) exceeds end (%v)", typeID, brk.Offsets[0], brk.Offsets[1]))
		}
	}

	for _, reload := range shift.Reloads {
		errs = append(errs, validateWindows(typeID, "reload", reload.Place.Times)...)
	}

	return errs
}

func validateWindows(typeID, kind string, windows []engine.TimeWindow) []*FormatError {
	var errs []*FormatError
	for _, w := range windows {
		if w.Start > w.End {
			errs = append(errs, newFormatError(ErrWindowCorrectness,
				"vehicle type %q: %s window start (%v) exceeds end (%v)", typeID, kind, w.Start, w.End))
		}
	}
	return errs
}

func validateDepotUniqueness(typeID string, depots []engine.Place) []*FormatError {
	var errs []*FormatError
	seen := make(map[engine.Location]bool, len(depots))
	for _, d := range depots {
		if seen[d.Location] {
			errs = append(errs, newFormatError(ErrDepotUniqueness,
				"vehicle type %q: duplicate depot location", typeID))
		}
		seen[d.Location] = true
	}
	return errs
}
