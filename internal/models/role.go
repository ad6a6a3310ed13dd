package models

import "strings"

// Role represents the simulated user types the dashboard can switch between.
type Role string

const (
	RoleStudent    Role = "student"
	RoleDepartment Role = "department"
	RoleOperator   Role = "operator"
)

// DefaultRole is the role selected when the dashboard first loads.
const DefaultRole = RoleStudent

var roleOrder = []Role{RoleStudent, RoleDepartment, RoleOperator}

// legacy Indonesian tags accepted as aliases on input.
var roleAliases = map[string]Role{
	"mahasiswa": RoleStudent,
	"prodi":     RoleDepartment,
}

// Roles returns every role in switcher order.
func Roles() []Role {
	out := make([]Role, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleDepartment, RoleOperator:
		return true
	}
	return false
}

// ParseRole maps a raw tag onto a Role. The boolean is false for unknown tags.
func ParseRole(raw string) (Role, bool) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if r := Role(tag); r.Valid() {
		return r, true
	}
	if r, ok := roleAliases[tag]; ok {
		return r, true
	}
	return "", false
}

// Label is the Indonesian tag shown in the session chip and role switcher.
func (r Role) Label() string {
	switch r {
	case RoleStudent:
		return "mahasiswa"
	case RoleDepartment:
		return "prodi"
	case RoleOperator:
		return "operator"
	}
	return string(r)
}

// Initials is the avatar text shown in the sidebar session chip.
func (r Role) Initials() string {
	switch r {
	case RoleStudent:
		return "AF"
	case RoleDepartment:
		return "PR"
	default:
		return "OP"
	}
}
