package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckInCode is a short-lived shareable code bound to a gym. The code
// value is unique across the system, case-insensitively: it is stored
// uppercase and looked up uppercase.
type CheckInCode struct {
	ID        uuid.UUID  `json:"id"`
	GymID     uuid.UUID  `json:"gym_id"`
	Code      string     `json:"code"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	MaxUses   *int       `json:"max_uses,omitempty"`
	UsesCount int        `json:"uses_count"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsValid reports whether the code can still be redeemed at the given
// instant: active, not expired, and under its use cap when one is set.
func (c *CheckInCode) IsValid(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	if c.MaxUses != nil && c.UsesCount >= *c.MaxUses {
		return false
	}
	return true
}

type CreateCodeRequest struct {
	GymID     uuid.UUID  `json:"gym_id" validate:"required"`
	ExpiresAt *time.Time `json:"expires_at"`
	MaxUses   *int       `json:"max_uses" validate:"omitempty,min=1"`
}
