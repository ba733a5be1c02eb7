package model

import "time"

// MemberRole represents the role of a member in the system
type MemberRole string

const (
	MemberRoleUser      MemberRole = "user"      // Can read the catalog and own history
	MemberRoleLibrarian MemberRole = "librarian" // Can manage the catalog and run loans
	MemberRoleAdmin     MemberRole = "admin"     // Full access
)

// IsValid returns true if the role is one of the known roles
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleUser, MemberRoleLibrarian, MemberRoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff returns true if the role may run lending operations (includes admin)
func (r MemberRole) IsStaff() bool {
	return r == MemberRoleLibrarian || r == MemberRoleAdmin
}

// Member represents a registered account
type Member struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Hash      string     `json:"-"` // Never expose the password hash
	Role      MemberRole `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsStaff returns true if the member may run lending operations
func (m *Member) IsStaff() bool {
	return m.Role.IsStaff()
}
