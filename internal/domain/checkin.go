package domain

import (
	"time"

	"github.com/google/uuid"
)

type CheckInMethod string

const (
	MethodManual    CheckInMethod = "manual"
	MethodCode      CheckInMethod = "code"
	MethodLocation  CheckInMethod = "location"
	MethodRequest   CheckInMethod = "request"
	MethodProximity CheckInMethod = "proximity"
)

type CheckInStatus string

const (
	StatusPendingAcceptance CheckInStatus = "pending_acceptance"
	StatusConfirmed         CheckInStatus = "confirmed"
	StatusRejected          CheckInStatus = "rejected"
)

type TrainingMode string

const (
	TrainingInPerson TrainingMode = "in_person"
	TrainingOnline   TrainingMode = "online"
)

// CheckIn is the core presence record linking a user to a gym for a
// bounded or open-ended interval.
//
// At most one check-in per subject user may be active (status in
// {confirmed, pending_acceptance} and not checked out) at any time.
// The invariant is enforced at the orchestration layer under a
// per-subject lock, not by a uniqueness constraint.
type CheckIn struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"user_id"`
	GymID         uuid.UUID     `json:"gym_id"`
	Method        CheckInMethod `json:"method"`
	Status        CheckInStatus `json:"status"`
	InitiatedBy   *uuid.UUID    `json:"initiated_by,omitempty"`
	ApprovedBy    *uuid.UUID    `json:"approved_by,omitempty"`
	CheckedInAt   time.Time     `json:"checked_in_at"`
	AcceptedAt    *time.Time    `json:"accepted_at,omitempty"`
	ExpiresAt     *time.Time    `json:"expires_at,omitempty"`
	CheckedOutAt  *time.Time    `json:"checked_out_at,omitempty"`
	TrainingMode  *TrainingMode `json:"training_mode,omitempty"`
	Notes         *string       `json:"notes,omitempty"`
	AppointmentID *uuid.UUID    `json:"appointment_id,omitempty"`
}

// IsActive reports whether the check-in still occupies the subject's
// single active slot.
func (c *CheckIn) IsActive() bool {
	if c.CheckedOutAt != nil {
		return false
	}
	return c.Status == StatusConfirmed || c.Status == StatusPendingAcceptance
}

// PendingExpired reports whether a pending-acceptance check-in has
// outlived its acceptance window at the given instant.
func (c *CheckIn) PendingExpired(now time.Time) bool {
	return c.Status == StatusPendingAcceptance && c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// StartedAt is the instant elapsed time is measured from: acceptance
// when one was required, creation otherwise.
func (c *CheckIn) StartedAt() time.Time {
	if c.AcceptedAt != nil {
		return *c.AcceptedAt
	}
	return c.CheckedInAt
}

// DurationMinutes is the completed visit length, or 0 while active.
func (c *CheckIn) DurationMinutes() int {
	if c.CheckedOutAt == nil {
		return 0
	}
	return int(c.CheckedOutAt.Sub(c.StartedAt()).Minutes())
}

type CheckInRequestDTO struct {
	GymID        uuid.UUID     `json:"gym_id" validate:"required"`
	TrainingMode *TrainingMode `json:"training_mode" validate:"omitempty,oneof=in_person online"`
	Notes        *string       `json:"notes" validate:"omitempty,max=500"`
}

type CheckInForStudentRequest struct {
	StudentID    uuid.UUID     `json:"student_id" validate:"required"`
	GymID        uuid.UUID     `json:"gym_id" validate:"required"`
	TrainingMode *TrainingMode `json:"training_mode" validate:"omitempty,oneof=in_person online"`
	Notes        *string       `json:"notes" validate:"omitempty,max=500"`
}

type CheckOutRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=500"`
}

type CheckInByCodeRequest struct {
	Code string `json:"code" validate:"required,min=4,max=20"`
}

type CheckInByLocationRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

type CheckInNearTrainerRequest struct {
	Lat       float64   `json:"lat" validate:"lat"`
	Lng       float64   `json:"lng" validate:"lng"`
	TrainerID uuid.UUID `json:"trainer_id" validate:"required"`
}

type CheckInFilter struct {
	UserID     *uuid.UUID
	GymID      *uuid.UUID
	ApproverID *uuid.UUID
	FromDate   *time.Time
	ToDate     *time.Time
	Limit      int
	Offset     int
}

// LocationCheckInResult carries the outcome of a location-based
// check-in attempt, including the near-miss case where the nearest gym
// exists but the caller is outside its radius.
type LocationCheckInResult struct {
	Success        bool      `json:"success"`
	CheckIn        *CheckIn  `json:"checkin,omitempty"`
	NearestGym     *Gym      `json:"nearest_gym,omitempty"`
	DistanceMeters *float64  `json:"distance_meters,omitempty"`
}

// PendingCheckIn is a pending-acceptance entry as shown to the subject
// who must confirm presence.
type PendingCheckIn struct {
	CheckIn         *CheckIn  `json:"checkin"`
	InitiatedByID   uuid.UUID `json:"initiated_by_id"`
	InitiatedByName string    `json:"initiated_by_name"`
	InitiatedByRole Role      `json:"initiated_by_role"`
	GymName         string    `json:"gym_name"`
}

type CheckInStats struct {
	PeriodDays           int     `json:"period_days"`
	TotalCheckIns        int     `json:"total_checkins"`
	TotalDurationMinutes int     `json:"total_duration_minutes"`
	AvgDurationMinutes   float64 `json:"avg_duration_minutes"`
}
