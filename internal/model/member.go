package model

// MemberRole is a practice member's role. Exactly one member holds OWNER per
// practice; that is an upstream guarantee the console relies on but does not
// enforce.
type MemberRole string

const (
	RoleOwner MemberRole = "OWNER"
	RoleAdmin MemberRole = "ADMIN"
	RoleStaff MemberRole = "STAFF"
)

// PracticeMember is one staff entry, keyed by email.
type PracticeMember struct {
	Email    string     `json:"user_email"`
	Name     string     `json:"user_name"`
	Role     MemberRole `json:"role"`
	IsActive bool       `json:"is_active"`
}

// AddMemberRequest adds a member; role defaults to STAFF and OWNER is not
// assignable through this path.
type AddMemberRequest struct {
	Email string     `json:"email" binding:"required,email"`
	Name  string     `json:"name"`
	Role  MemberRole `json:"role" binding:"omitempty,oneof=ADMIN STAFF"`
}

// EditMemberRequest updates a member's role or active flag.
type EditMemberRequest struct {
	Role     *MemberRole `json:"role,omitempty" binding:"omitempty,oneof=OWNER ADMIN STAFF"`
	IsActive *bool       `json:"is_active,omitempty"`
}
