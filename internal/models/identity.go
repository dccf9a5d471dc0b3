package models

import "github.com/golang-jwt/jwt/v5"

// Role values assigned by the identity provider during onboarding.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

// IdentityClaims is the token payload minted by the external identity
// provider. Role and the linked domain id live in public metadata; this API
// verifies the signature but never issues tokens.
type IdentityClaims struct {
	Role      string `json:"role,omitempty"`
	StudentID string `json:"studentId,omitempty"`
	FacultyID string `json:"facultyId,omitempty"`
	jwt.RegisteredClaims
}

// IdentityContext is the authenticated principal as seen by this core:
// who they are, which role they carry, and the linked domain id for that
// role. A missing Role or a missing role-specific id means the principal
// has not completed onboarding.
type IdentityContext struct {
	UserID    string `json:"userId"`
	Role      Role   `json:"role,omitempty"`
	StudentID string `json:"studentId,omitempty"`
	FacultyID string `json:"facultyId,omitempty"`
}

// Onboarded reports whether the principal carries a role and the id that
// role requires.
func (i IdentityContext) Onboarded() bool {
	switch i.Role {
	case RoleStudent:
		return i.StudentID != ""
	case RoleFaculty:
		return i.FacultyID != ""
	default:
		return false
	}
}
