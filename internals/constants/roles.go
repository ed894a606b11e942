package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// Role error message templates
const (
	ErrOnlyTeachersCanAccess = "❌ Only teacher or admin may access %s."
	ErrOnlyAdminsCanAccess   = "❌ Only admin may access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleParent,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// IsKnownRole reports whether role is one of the four recognized roles.
// Anything else (including empty) is treated as no special access.
func IsKnownRole(role string) bool {
	switch role {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleParent:
		return true
	}
	return false
}
