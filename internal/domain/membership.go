package domain

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleCoach   Role = "coach"
	RoleStudent Role = "student"
)

// Membership links a user to an organization under a role. The
// directory is an external collaborator; this subsystem only reads it.
type Membership struct {
	UserID         uuid.UUID `json:"user_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Role           Role      `json:"role"`
	IsActive       bool      `json:"is_active"`
	UserName       string    `json:"user_name"`
	UserAvatar     *string   `json:"user_avatar,omitempty"`
}

// rolePriority orders roles for ambiguous multi-role users:
// owner > admin > trainer/coach > student.
var rolePriority = map[Role]int{
	RoleOwner:   4,
	RoleAdmin:   3,
	RoleTrainer: 2,
	RoleCoach:   2,
	RoleStudent: 1,
}

// PrimaryMembership selects the highest-priority active membership for
// a user who may hold several roles in one organization. Returns false
// when no active membership exists.
func PrimaryMembership(memberships []*Membership) (*Membership, bool) {
	var best *Membership
	for _, m := range memberships {
		if !m.IsActive {
			continue
		}
		if best == nil || rolePriority[m.Role] > rolePriority[best.Role] {
			best = m
		}
	}
	return best, best != nil
}

// CanInitiateForStudent reports whether the role may create a manual
// check-in on a student's behalf.
func (r Role) CanInitiateForStudent() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleTrainer, RoleCoach:
		return true
	}
	return false
}

// IsTrainer reports whether the role is a trainer-like role that can
// run training sessions and appear in proximity lookups.
func (r Role) IsTrainer() bool {
	return r == RoleTrainer || r == RoleCoach
}
