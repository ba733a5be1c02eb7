package model

import "testing"

// ============================================================================
// MemberRole Tests
// ============================================================================

func TestMemberRole_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role MemberRole
		want bool
	}{
		{MemberRoleUser, true},
		{MemberRoleLibrarian, true},
		{MemberRoleAdmin, true},
		{MemberRole("superuser"), false},
		{MemberRole(""), false},
	}

	for _, tc := range cases {
		if got := tc.role.IsValid(); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestMemberRole_IsStaff(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role MemberRole
		want bool
	}{
		{MemberRoleUser, false},
		{MemberRoleLibrarian, true},
		{MemberRoleAdmin, true},
		{MemberRole(""), false},
	}

	for _, tc := range cases {
		if got := tc.role.IsStaff(); got != tc.want {
			t.Errorf("IsStaff(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestMember_IsStaff_DelegatesToRole(t *testing.T) {
	t.Parallel()

	m := &Member{Username: "alice", Role: MemberRoleLibrarian}
	if !m.IsStaff() {
		t.Error("librarian member should be staff")
	}

	m.Role = MemberRoleUser
	if m.IsStaff() {
		t.Error("user member should not be staff")
	}
}
