package constants

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEngineer = "engineer"
	RolePR       = "pr"
	RoleViewer   = "viewer"
)

var AllRoles = []string{RoleAdmin, RoleManager, RoleEngineer, RolePR, RoleViewer}

// Роли, которым виден раздел переоформления собственности (إفراغ).
var ClearanceRoles = []string{RoleAdmin, RoleManager, RolePR}

// Роли, которые могут менять проекты.
var ProjectEditorRoles = []string{RoleAdmin, RoleManager}

// Роли, которые могут менять технические заявки.
var TechnicalEditorRoles = []string{RoleAdmin, RoleManager, RoleEngineer}

func HasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func CanViewClearance(role string) bool {
	return HasRole(role, ClearanceRoles)
}

func IsKnownRole(role string) bool {
	return HasRole(role, AllRoles)
}
