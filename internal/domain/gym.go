package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gym is a fixed venue with coordinates and a matching radius. Gyms are
// never hard-deleted, only deactivated.
type Gym struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Phone          *string   `json:"phone,omitempty"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	RadiusMeters   int       `json:"radius_meters"` // 10..1000
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateGymRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Name           string    `json:"name" validate:"required,min=2,max=255"`
	Address        string    `json:"address" validate:"required,min=5,max=500"`
	Phone          *string   `json:"phone" validate:"omitempty,max=50"`
	Lat            float64   `json:"lat" validate:"lat"`
	Lng            float64   `json:"lng" validate:"lng"`
	RadiusMeters   int       `json:"radius_meters" validate:"omitempty,radius_m"`
}

type UpdateGymRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=2,max=255"`
	Address      *string  `json:"address" validate:"omitempty,min=5,max=500"`
	Phone        *string  `json:"phone" validate:"omitempty,max=50"`
	Lat          *float64 `json:"lat" validate:"omitempty,lat"`
	Lng          *float64 `json:"lng" validate:"omitempty,lng"`
	RadiusMeters *int     `json:"radius_meters" validate:"omitempty,radius_m"`
	IsActive     *bool    `json:"is_active"`
}

type GymFilter struct {
	OrganizationID *uuid.UUID
	ActiveOnly     bool
	Limit          int
	Offset         int
}

// NearbyGym is the result of a nearest-gym lookup. WithinRadius is
// distance <= the gym's own radius.
type NearbyGym struct {
	Gym            *Gym    `json:"gym"`
	DistanceMeters float64 `json:"distance_meters"`
	WithinRadius   bool    `json:"within_radius"`
}
