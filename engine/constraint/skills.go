package constraint

import "github.com/routekit/routekit/engine"

// SkillsModule forbids placing a job whose required skills are not a subset
// of its candidate vehicle's skills.
type SkillsModule struct{}

// NewSkillsModule returns a ready-to-use skills module.
func NewSkillsModule() *SkillsModule {
	return &SkillsModule{}
}

func (m *SkillsModule) AcceptInsertion(*engine.SolutionContext, int, engine.Job) {}
func (m *SkillsModule) AcceptRouteState(*engine.RouteContext)                    {}
func (m *SkillsModule) AcceptSolutionState(*engine.SolutionContext)              {}
func (m *SkillsModule) StateKeys() []int                                        { return nil }

func (m *SkillsModule) Constraints() Constraints {
	return Constraints{HardRoute: []HardRouteConstraint{skillsRouteConstraint{}}}
}

type skillsRouteConstraint struct{}

func (skillsRouteConstraint) CheckRoute(_ *engine.SolutionContext, route *engine.RouteContext, job engine.Job) (bool, engine.ViolationCode) {
	required := job.Dimens().Skills()
	if len(required) == 0 {
		return true, 0
	}
	available := make(map[string]bool, len(route.Actor.Vehicle.Type.Skills))
	for _, s := range route.Actor.Vehicle.Type.Skills {
		available[s] = true
	}
	for _, s := range required {
		if !available[s] {
			return false, engine.ViolationSkills
		}
	}
	return true, 0
}
