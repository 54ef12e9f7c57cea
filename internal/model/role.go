package model

import "strings"

// Canonical role codes as stored in t104_role_tile_access.role_code and
// expected by the tile authorizer.  The profile store is mid-migration and
// still contains lowercase codes from the old seed data ("program_office",
// "developer"); NormalizeRole maps those onto this set.
const (
	RoleDeveloper     = "DEVELOPER"
	RoleProgramOffice = "PROGRAM_OFFICE"
	RoleStudent       = "STUDENT"
	RoleFaculty       = "FACULTY"
	RoleTA            = "TA"
	RoleExamOffice    = "EXAM_OFFICE"
	RoleSodoxoOffice  = "SODOXO_OFFICE"
	RoleUser          = "USER" // minimum-privilege default
)

// legacyRoles maps lowercase codes from the legacy users table and the old
// t106 seed data to canonical codes.
var legacyRoles = map[string]string{
	"developer":      RoleDeveloper,
	"program_office": RoleProgramOffice,
	"student":        RoleStudent,
	"faculty":        RoleFaculty,
	"ta":             RoleTA,
	"exam_office":    RoleExamOffice,
	"sodoxo_office":  RoleSodoxoOffice,
	"user":           RoleUser,
}

var knownRoles = map[string]bool{
	RoleDeveloper:     true,
	RoleProgramOffice: true,
	RoleStudent:       true,
	RoleFaculty:       true,
	RoleTA:            true,
	RoleExamOffice:    true,
	RoleSodoxoOffice:  true,
	RoleUser:          true,
}

// NormalizeRole converts a role code from either store into its canonical
// uppercase form.  Empty input degrades to RoleUser.  Codes outside the
// known set are upper-cased and passed through unchanged: the authorizer
// treats an unknown role as "no tiles", not as an error.
func NormalizeRole(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return RoleUser
	}
	if canonical, ok := legacyRoles[strings.ToLower(code)]; ok {
		return canonical
	}
	return strings.ToUpper(code)
}

// KnownRole reports whether code is one of the canonical role codes.
func KnownRole(code string) bool {
	return knownRoles[code]
}
