// Package access resolves what a portal role is allowed to do.
package access

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleModerator     Role = "moderator"
	RoleTrainer       Role = "trainer"
	RoleExpert        Role = "expert"
	RoleEmployee      Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleModerator, RoleTrainer, RoleExpert, RoleEmployee:
		return true
	}
	return false
}

// Capabilities is resolved once per request and passed down.
type Capabilities struct {
	CanCreateEvents   bool `json:"can_create_events"`
	CanSeeStats       bool `json:"can_see_stats"`
	CanSeeAllEvents   bool `json:"can_see_all_events"`
	CanManageTests    bool `json:"can_manage_tests"`
	CanDeleteTests    bool `json:"can_delete_tests"`
	CanViewAllResults bool `json:"can_view_all_results"`
	CanGradeAnswers   bool `json:"can_grade_answers"`
	CanTakeTests      bool `json:"can_take_tests"`
}

// CapabilitiesFor maps a role to its capabilities. Unknown roles get nothing.
func CapabilitiesFor(role Role) Capabilities {
	switch role {
	case RoleAdministrator:
		return Capabilities{
			CanCreateEvents:   true,
			CanSeeStats:       true,
			CanSeeAllEvents:   true,
			CanManageTests:    true,
			CanDeleteTests:    true,
			CanViewAllResults: true,
			CanGradeAnswers:   true,
			CanTakeTests:      true,
		}
	case RoleModerator:
		return Capabilities{
			CanCreateEvents:   true,
			CanSeeStats:       true,
			CanSeeAllEvents:   true,
			CanManageTests:    true,
			CanViewAllResults: true,
			CanGradeAnswers:   true,
			CanTakeTests:      true,
		}
	case RoleTrainer:
		return Capabilities{
			CanCreateEvents:   true,
			CanSeeStats:       true,
			CanViewAllResults: true,
			CanGradeAnswers:   true,
			CanTakeTests:      true,
		}
	case RoleExpert:
		// experts evaluate free-text answers but never see event statistics
		return Capabilities{
			CanGradeAnswers: true,
			CanTakeTests:    true,
		}
	case RoleEmployee:
		return Capabilities{CanTakeTests: true}
	default:
		return Capabilities{}
	}
}
