package format

import "github.com/routekit/routekit/engine"

type locationDTO struct {
	Lat   *float64 `yaml:"lat,omitempty"`
	Lng   *float64 `yaml:"lng,omitempty"`
	Index *int     `yaml:"index,omitempty"`
}

func (l locationDTO) toLocation() (engine.Location, error) {
	if l.Index != nil {
		return engine.NewLocationIndex(*l.Index), nil
	}
	if l.Lat != nil && l.Lng != nil {
		return engine.NewCoordinate(*l.Lat, *l.Lng), nil
	}
	return engine.Location{}, newFormatError(ErrDeserialize, "location requires either index or lat/lng")
}

type timeWindowDTO struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

func (t timeWindowDTO) toTimeWindow() engine.TimeWindow {
	return engine.TimeWindow{Start: t.Start, End: t.End}
}

type placeDTO struct {
	Location locationDTO     `yaml:"location"`
	Duration float64         `yaml:"duration"`
	Times    []timeWindowDTO `yaml:"times"`
}

func (p placeDTO) toPlace() (engine.Place, error) {
	loc, err := p.Location.toLocation()
	if err != nil {
		return engine.Place{}, err
	}
	if len(p.Times) == 0 {
		return engine.Place{}, newFormatError(ErrDeserialize, "place requires at least one time window")
	}
	times := make([]engine.TimeWindow, len(p.Times))
	for i, t := range p.Times {
		times[i] = t.toTimeWindow()
	}
	return engine.Place{Location: loc, Duration: p.Duration, Times: times}, nil
}

type taskDTO struct {
	Kind   string     `yaml:"kind"`
	Places []placeDTO `yaml:"places"`
	Demand []float64  `yaml:"demand,omitempty"`
	Tag    string     `yaml:"tag,omitempty"`
}

func (t taskDTO) toTask() (engine.Task, error) {
	places := make([]engine.Place, len(t.Places))
	for i, pd := range t.Places {
		place, err := pd.toPlace()
		if err != nil {
			return engine.Task{}, err
		}
		places[i] = place
	}
	kind := engine.TaskPickup
	if t.Kind == "delivery" {
		kind = engine.TaskDelivery
	}
	return engine.Task{Kind: kind, Places: places, Demand: t.Demand, Tag: t.Tag}, nil
}

type jobDTO struct {
	ID       string     `yaml:"id"`
	Priority int        `yaml:"priority,omitempty"`
	Skills   []string   `yaml:"skills,omitempty"`
	Type     string     `yaml:"type,omitempty"`
	VehicleID string    `yaml:"vehicle_id,omitempty"`
	Places   []placeDTO `yaml:"places,omitempty"`
	Tasks    []taskDTO  `yaml:"tasks,omitempty"`
	Demand   []float64  `yaml:"demand,omitempty"`
}

func (j jobDTO) toJob() (engine.Job, error) {
	dims := engine.NewDimensions().Set(engine.DimID, j.ID)
	if j.Priority != 0 {
		dims.Set(engine.DimPriority, j.Priority)
	}
	if len(j.Skills) > 0 {
		dims.Set(engine.DimSkills, j.Skills)
	}
	if j.Type != "" {
		dims.Set(engine.DimType, j.Type)
	}
	if j.VehicleID != "" {
		dims.Set(engine.DimVehicleID, j.VehicleID)
	}

	if len(j.Tasks) > 0 {
		tasks := make([]engine.Task, len(j.Tasks))
		for i, td := range j.Tasks {
			task, err := td.toTask()
			if err != nil {
				return nil, err
			}
			tasks[i] = task
		}
		return &engine.MultiJob{Dimensions: dims, Tasks: tasks}, nil
	}

	places := make([]engine.Place, len(j.Places))
	for i, pd := range j.Places {
		place, err := pd.toPlace()
		if err != nil {
			return nil, err
		}
		places[i] = place
	}
	return &engine.SingleJob{Dimensions: dims, Places: places, Demand: j.Demand}, nil
}

type relationDTO struct {
	Type    string   `yaml:"type"`
	JobIDs  []string `yaml:"job_ids"`
	ActorID string   `yaml:"actor_id"`
}

func (r relationDTO) toRelation() engine.Relation {
	kind := engine.RelationAny
	switch r.Type {
	case "sequence":
		kind = engine.RelationSequence
	case "strict":
		kind = engine.RelationStrict
	}
	return engine.Relation{Type: kind, JobIDs: r.JobIDs, ActorID: r.ActorID}
}

type planDTO struct {
	Jobs      []jobDTO      `yaml:"jobs"`
	Relations []relationDTO `yaml:"relations,omitempty"`
}

func (p planDTO) toPlan() (engine.Plan, error) {
	jobs := make([]engine.Job, len(p.Jobs))
	for i, jd := range p.Jobs {
		job, err := jd.toJob()
		if err != nil {
			return engine.Plan{}, err
		}
		jobs[i] = job
	}
	relations := make([]engine.Relation, len(p.Relations))
	for i, rd := range p.Relations {
		relations[i] = rd.toRelation()
	}
	return engine.Plan{Jobs: jobs, Relations: relations}, nil
}

type costsDTO struct {
	Fixed          float64 `yaml:"fixed"`
	PerDistance    float64 `yaml:"per_distance"`
	PerDrivingTime float64 `yaml:"per_driving_time"`
	PerWaitingTime float64 `yaml:"per_waiting_time"`
	PerServiceTime float64 `yaml:"per_service_time"`
}

func (c costsDTO) toCosts() engine.Costs {
	return engine.Costs{
		Fixed:          c.Fixed,
		PerDistance:    c.PerDistance,
		PerDrivingTime: c.PerDrivingTime,
		PerWaitingTime: c.PerWaitingTime,
		PerServiceTime: c.PerServiceTime,
	}
}

type areaLimitDTO struct {
	Priority   int           `yaml:"priority"`
	OuterShape []locationDTO `yaml:"outer_shape"`
}

func (a areaLimitDTO) toAreaLimit() (engine.AreaLimit, error) {
	shape := make([]engine.Location, len(a.OuterShape))
	for i, ld := range a.OuterShape {
		loc, err := ld.toLocation()
		if err != nil {
			return engine.AreaLimit{}, err
		}
		shape[i] = loc
	}
	return engine.AreaLimit{Priority: a.Priority, OuterShape: shape}, nil
}

type limitsDTO struct {
	MaxDistance  *float64       `yaml:"max_distance,omitempty"`
	MaxShiftTime *float64       `yaml:"max_shift_time,omitempty"`
	AllowedAreas []areaLimitDTO `yaml:"allowed_areas,omitempty"`
}

func (l limitsDTO) toLimits() (engine.Limits, error) {
	areas := make([]engine.AreaLimit, len(l.AllowedAreas))
	for i, ad := range l.AllowedAreas {
		area, err := ad.toAreaLimit()
		if err != nil {
			return engine.Limits{}, err
		}
		areas[i] = area
	}
	return engine.Limits{MaxDistance: l.MaxDistance, MaxShiftTime: l.MaxShiftTime, AllowedAreas: areas}, nil
}

type breakDTO struct {
	TimeWindows []timeWindowDTO `yaml:"time_windows,omitempty"`
	Offsets     []float64       `yaml:"offsets,omitempty"`
	Duration    float64         `yaml:"duration"`
	Places      []placeDTO      `yaml:"places"`
}

func (b breakDTO) toBreak() (engine.Break, error) {
	windows := make([]engine.TimeWindow, len(b.TimeWindows))
	for i, t := range b.TimeWindows {
		windows[i] = t.toTimeWindow()
	}
	places := make([]engine.Place, len(b.Places))
	for i, pd := range b.Places {
		place, err := pd.toPlace()
		if err != nil {
			return engine.Break{}, err
		}
		places[i] = place
	}
	return engine.Break{TimeWindows: windows, Offsets: b.Offsets, Duration: b.Duration, Places: places}, nil
}

type reloadDTO struct {
	Place placeDTO `yaml:"place"`
}

func (r reloadDTO) toReload() (engine.Reload, error) {
	place, err := r.Place.toPlace()
	if err != nil {
		return engine.Reload{}, err
	}
	return engine.Reload{Place: place}, nil
}

type shiftDTO struct {
	Start         locationDTO  `yaml:"start"`
	StartEarliest float64      `yaml:"start_earliest"`
	StartLatest   *float64     `yaml:"start_latest,omitempty"`
	End           *locationDTO `yaml:"end,omitempty"`
	EndLatest     *float64     `yaml:"end_latest,omitempty"`
	Depots        []placeDTO   `yaml:"depots,omitempty"`
	Breaks        []breakDTO   `yaml:"breaks,omitempty"`
	Reloads       []reloadDTO  `yaml:"reloads,omitempty"`
}

func (s shiftDTO) toShift() (engine.Shift, error) {
	start, err := s.Start.toLocation()
	if err != nil {
		return engine.Shift{}, err
	}
	shift := engine.Shift{StartLocation: start, StartEarliest: s.StartEarliest, StartLatest: s.StartLatest}

	if s.End != nil {
		endLoc, err := s.End.toLocation()
		if err != nil {
			return engine.Shift{}, err
		}
		shift.HasEnd = true
		shift.EndLocation = endLoc
		if s.EndLatest != nil {
			shift.EndLatest = *s.EndLatest
		}
	}

	shift.Depots = make([]engine.Place, len(s.Depots))
	for i, pd := range s.Depots {
		place, err := pd.toPlace()
		if err != nil {
			return engine.Shift{}, err
		}
		shift.Depots[i] = place
	}

	shift.Breaks = make([]engine.Break, len(s.Breaks))
	for i, bd := range s.Breaks {
		b, err := bd.toBreak()
		if err != nil {
			return engine.Shift{}, err
		}
		shift.Breaks[i] = b
	}

	shift.Reloads = make([]engine.Reload, len(s.Reloads))
	for i, rd := range s.Reloads {
		r, err := rd.toReload()
		if err != nil {
			return engine.Shift{}, err
		}
		shift.Reloads[i] = r
	}

	return shift, nil
}

type vehicleTypeDTO struct {
	TypeID   string     `yaml:"type_id"`
	Costs    costsDTO   `yaml:"costs"`
	Capacity []float64  `yaml:"capacity"`
	Skills   []string   `yaml:"skills,omitempty"`
	Shifts   []shiftDTO `yaml:"shifts"`
	Limits   limitsDTO  `yaml:"limits,omitempty"`
}

func (v vehicleTypeDTO) toVehicleType() (*engine.VehicleType, error) {
	shifts := make([]engine.Shift, len(v.Shifts))
	for i, sd := range v.Shifts {
		shift, err := sd.toShift()
		if err != nil {
			return nil, err
		}
		shifts[i] = shift
	}
	limits, err := v.Limits.toLimits()
	if err != nil {
		return nil, err
	}
	return &engine.VehicleType{
		TypeID:   v.TypeID,
		Costs:    v.Costs.toCosts(),
		Capacity: v.Capacity,
		Skills:   v.Skills,
		Shifts:   shifts,
		Limits:   limits,
	}, nil
}

type vehicleDTO struct {
	ID     string `yaml:"id"`
	TypeID string `yaml:"type_id"`
}

type fleetDTO struct {
	Types    []vehicleTypeDTO `yaml:"types"`
	Vehicles []vehicleDTO     `yaml:"vehicles"`
}

func (f fleetDTO) toFleet() (*engine.Fleet, error) {
	typesByID := make(map[string]*engine.VehicleType, len(f.Types))
	types := make([]*engine.VehicleType, 0, len(f.Types))
	for _, td := range f.Types {
		vt, err := td.toVehicleType()
		if err != nil {
			return nil, err
		}
		typesByID[vt.TypeID] = vt
		types = append(types, vt)
	}

	vehicles := make([]*engine.Vehicle, 0, len(f.Vehicles))
	for _, vd := range f.Vehicles {
		vt, ok := typesByID[vd.TypeID]
		if !ok {
			return nil, newFormatError(ErrDeserialize, "vehicle %q references unknown type_id %q", vd.ID, vd.TypeID)
		}
		vehicles = append(vehicles, &engine.Vehicle{ID: vd.ID, Type: vt})
	}

	return &engine.Fleet{Types: types, Vehicles: vehicles}, nil
}

type matrixDTO struct {
	Size      int       `yaml:"size"`
	Distances []float64 `yaml:"distances"`
	Durations []float64 `yaml:"travel_times"`
}

type problemDTO struct {
	Plan   planDTO    `yaml:"plan"`
	Fleet  fleetDTO   `yaml:"fleet"`
	Matrix *matrixDTO `yaml:"matrix,omitempty"`
}
