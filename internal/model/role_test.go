package model

import "testing"

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"program_office", RoleProgramOffice}, // legacy lowercase seed data
		{"developer", RoleDeveloper},
		{"PROGRAM_OFFICE", RoleProgramOffice}, // already canonical
		{"Program_Office", RoleProgramOffice}, // mixed casing
		{"  ta  ", RoleTA},
		{"sodoxo_office", RoleSodoxoOffice},
		{"", RoleUser},                  // empty degrades to minimum privilege
		{"registrar", "REGISTRAR"},      // unknown codes pass through upper-cased
		{"user", RoleUser},
	}
	for _, tc := range cases {
		if got := NormalizeRole(tc.in); got != tc.want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKnownRole(t *testing.T) {
	for _, r := range []string{RoleDeveloper, RoleProgramOffice, RoleStudent, RoleFaculty, RoleTA, RoleExamOffice, RoleSodoxoOffice, RoleUser} {
		if !KnownRole(r) {
			t.Errorf("KnownRole(%q) = false, want true", r)
		}
	}
	if KnownRole("REGISTRAR") {
		t.Error("KnownRole(REGISTRAR) = true, want false")
	}
	if KnownRole("program_office") {
		t.Error("KnownRole should only accept canonical uppercase codes")
	}
}
