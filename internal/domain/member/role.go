package member

import "strings"

// Role is a bit set of the roles a respondent volunteered for.
type Role uint8

// Roles.
const (
	RoleDesigner Role = 1 << iota
	RoleDeveloper
	RoleLeader
)

// Has reports whether every bit of r is set in set.
func (set Role) Has(r Role) bool { return set&r == r && r != 0 }

func (set Role) String() string {
	if set == 0 {
		return "none"
	}
	var names []string
	if set.Has(RoleDesigner) {
		names = append(names, "designer")
	}
	if set.Has(RoleDeveloper) {
		names = append(names, "developer")
	}
	if set.Has(RoleLeader) {
		names = append(names, "leader")
	}
	return strings.Join(names, "|")
}
