package domain

import (
	"time"

	"github.com/google/uuid"
)

// TrainerLocation is a trainer's ephemeral GPS position. It is
// refreshed with a TTL on every push; read-side logic treats an
// expired entry as absent. SessionActive is only meaningful while the
// location has not expired.
type TrainerLocation struct {
	TrainerID        uuid.UUID  `json:"trainer_id"`
	Lat              float64    `json:"lat"`
	Lng              float64    `json:"lng"`
	UpdatedAt        time.Time  `json:"updated_at"`
	ExpiresAt        time.Time  `json:"expires_at"`
	SessionActive    bool       `json:"session_active"`
	SessionStartedAt *time.Time `json:"session_started_at,omitempty"`
}

// Expired reports whether the entry should be treated as absent.
func (l *TrainerLocation) Expired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}

type PushLocationRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

// LocationSource tells how a trainer's position was resolved.
type LocationSource string

const (
	SourceCheckIn LocationSource = "checkin"
	SourceGPS     LocationSource = "gps"
)

// ResolvedLocation is a trainer's current position resolved by
// priority: active confirmed check-in (gym coordinates) over shared
// GPS. A trainer with neither is unreachable.
type ResolvedLocation struct {
	Lat     float64
	Lng     float64
	Source  LocationSource
	GymID   *uuid.UUID
	GymName *string
}

// NearbyTrainer is one entry of a nearest-trainer lookup, sorted
// ascending by distance.
type NearbyTrainer struct {
	TrainerID      uuid.UUID      `json:"trainer_id"`
	TrainerName    string         `json:"trainer_name"`
	DistanceMeters float64        `json:"distance_meters"`
	Source         LocationSource `json:"source"`
	GymID          *uuid.UUID     `json:"gym_id,omitempty"`
	GymName        *string        `json:"gym_name,omitempty"`
	SessionActive  bool           `json:"session_active"`
}

// SessionCheckIn is a check-in as shown inside a trainer's active
// session view.
type SessionCheckIn struct {
	CheckIn        *CheckIn `json:"checkin"`
	StudentName    string   `json:"student_name"`
	StudentAvatar  *string  `json:"student_avatar,omitempty"`
	ElapsedMinutes int      `json:"elapsed_minutes"`
	Status         string   `json:"status"` // "active" or "completed"
}

// ActiveSession is the trainer-side view of a running training
// session.
type ActiveSession struct {
	TrainerID uuid.UUID        `json:"trainer_id"`
	StartedAt time.Time        `json:"started_at"`
	Lat       float64          `json:"lat"`
	Lng       float64          `json:"lng"`
	CheckIns  []SessionCheckIn `json:"checkins"`
}
