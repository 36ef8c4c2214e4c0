package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// GymRepository is the persistence boundary for venues.
type GymRepository interface {
	Create(ctx context.Context, gym *domain.Gym) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Gym, error)
	Update(ctx context.Context, gym *domain.Gym) error
	List(ctx context.Context, filter domain.GymFilter) ([]*domain.Gym, error)
}

// CheckInRepository is the persistence boundary for presence records.
// GetActiveForUser returns (nil, nil) when the user has no active
// check-in.
type CheckInRepository interface {
	Create(ctx context.Context, checkin *domain.CheckIn) error
	Get(ctx context.Context, id uuid.UUID) (*domain.CheckIn, error)
	Update(ctx context.Context, checkin *domain.CheckIn) error
	GetActiveForUser(ctx context.Context, userID uuid.UUID) (*domain.CheckIn, error)
	ListPendingForUser(ctx context.Context, userID uuid.UUID) ([]*domain.CheckIn, error)
	ListOpenByApprover(ctx context.Context, approverID uuid.UUID) ([]*domain.CheckIn, error)
	ListByApproverSince(ctx context.Context, approverID uuid.UUID, since time.Time) ([]*domain.CheckIn, error)
	List(ctx context.Context, filter domain.CheckInFilter) ([]*domain.CheckIn, error)
}

// CodeRepository is the persistence boundary for check-in codes.
// GetByValue returns (nil, nil) when no code matches.
type CodeRepository interface {
	Create(ctx context.Context, code *domain.CheckInCode) error
	GetByValue(ctx context.Context, value string) (*domain.CheckInCode, error)
	Update(ctx context.Context, code *domain.CheckInCode) error
}

// RequestRepository is the persistence boundary for approval requests.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.CheckInRequest) error
	Get(ctx context.Context, id uuid.UUID) (*domain.CheckInRequest, error)
	Update(ctx context.Context, req *domain.CheckInRequest) error
	ListPendingForApprover(ctx context.Context, approverID uuid.UUID, gymID *uuid.UUID) ([]*domain.CheckInRequest, error)
	ListForUser(ctx context.Context, userID uuid.UUID, status *domain.RequestStatus, limit int) ([]*domain.CheckInRequest, error)
}

// TrainerLocationStore holds ephemeral trainer positions. Get returns
// (nil, nil) when no unexpired entry exists.
type TrainerLocationStore interface {
	Upsert(ctx context.Context, loc *domain.TrainerLocation) error
	Get(ctx context.Context, trainerID uuid.UUID) (*domain.TrainerLocation, error)
	Delete(ctx context.Context, trainerID uuid.UUID) error
}

// MembershipDirectory resolves organization membership and roles. It
// belongs to the wider platform; this subsystem only reads from it.
type MembershipDirectory interface {
	ListTrainers(ctx context.Context, organizationID uuid.UUID) ([]*domain.Membership, error)
	ListMemberships(ctx context.Context, organizationID, userID uuid.UUID) ([]*domain.Membership, error)
}

// Notifier is the push/in-app notification sink. Calls are best-effort:
// services log failures and never propagate them.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// Service is the composition root for the presence engine.
type Service struct {
	Gyms      *GymService
	Codes     *CodeService
	CheckIns  *CheckInService
	Requests  *RequestService
	Proximity *ProximityService
	Locations *LocationService
}

func NewService(
	gyms *GymService,
	codes *CodeService,
	checkins *CheckInService,
	requests *RequestService,
	proximity *ProximityService,
	locations *LocationService,
) *Service {
	return &Service{
		Gyms:      gyms,
		Codes:     codes,
		CheckIns:  checkins,
		Requests:  requests,
		Proximity: proximity,
		Locations: locations,
	}
}
