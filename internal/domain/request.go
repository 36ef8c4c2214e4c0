package domain

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestConfirmed RequestStatus = "confirmed"
	RequestRejected  RequestStatus = "rejected"
)

// CheckInRequest is the lighter-weight approval record: a student asks
// a named approver for permission. Approving one creates a CheckIn.
type CheckInRequest struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"user_id"`
	GymID        uuid.UUID     `json:"gym_id"`
	ApproverID   uuid.UUID     `json:"approver_id"`
	Status       RequestStatus `json:"status"`
	Reason       *string       `json:"reason,omitempty"`
	ResponseNote *string       `json:"response_note,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	ExpiresAt    *time.Time    `json:"expires_at,omitempty"`
	RespondedAt  *time.Time    `json:"responded_at,omitempty"`
}

// PendingExpired reports whether the request sat unanswered past its
// deadline at the given instant.
func (r *CheckInRequest) PendingExpired(now time.Time) bool {
	return r.Status == RequestPending && r.ExpiresAt != nil && now.After(*r.ExpiresAt)
}

type CreateCheckInRequestDTO struct {
	GymID      uuid.UUID `json:"gym_id" validate:"required"`
	ApproverID uuid.UUID `json:"approver_id" validate:"required"`
	Reason     *string   `json:"reason" validate:"omitempty,max=500"`
}

type RespondToRequestDTO struct {
	Approved     bool    `json:"approved"`
	ResponseNote *string `json:"response_note" validate:"omitempty,max=500"`
}

// RequestResponse pairs the updated request with the check-in created
// on approval (nil on rejection).
type RequestResponse struct {
	Request *CheckInRequest `json:"request"`
	CheckIn *CheckIn        `json:"checkin,omitempty"`
}
