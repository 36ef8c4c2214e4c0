package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/internal/geo"
	"github.com/marcelpiva/myfit-api-sub002/pkg/e"
)

// GymService manages the gym directory. Gyms are deactivated, never
// hard-deleted.
type GymService struct {
	gyms          GymRepository
	logger        *slog.Logger
	defaultRadius int

	Now func() time.Time
}

func NewGymService(gyms GymRepository, logger *slog.Logger, defaultRadius int) *GymService {
	if defaultRadius < 10 || defaultRadius > 1000 {
		defaultRadius = 100
	}
	return &GymService{
		gyms:          gyms,
		logger:        logger,
		defaultRadius: defaultRadius,
		Now:           time.Now,
	}
}

func (s *GymService) Create(ctx context.Context, req domain.CreateGymRequest) (*domain.Gym, error) {
	if !geo.ValidCoordinates(req.Lat, req.Lng) {
		return nil, fmt.Errorf("service: create gym: %w", e.ErrInvalidCoordinates)
	}

	radius := req.RadiusMeters
	if radius == 0 {
		radius = s.defaultRadius
	}
	if radius < 10 || radius > 1000 {
		return nil, fmt.Errorf("service: create gym: radius %d out of bounds: %w", radius, e.ErrInvalidInput)
	}

	gym := &domain.Gym{
		ID:             uuid.New(),
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Address:        req.Address,
		Phone:          req.Phone,
		Lat:            req.Lat,
		Lng:            req.Lng,
		RadiusMeters:   radius,
		IsActive:       true,
		CreatedAt:      s.Now().UTC(),
	}

	if err := s.gyms.Create(ctx, gym); err != nil {
		s.logger.Error("gym create failed", slog.Any("error", err))
		return nil, err
	}

	s.logger.Info("gym created",
		slog.String("gym_id", gym.ID.String()),
		slog.String("organization_id", gym.OrganizationID.String()),
		slog.Int("radius_m", gym.RadiusMeters),
	)
	return gym, nil
}

func (s *GymService) Get(ctx context.Context, id uuid.UUID) (*domain.Gym, error) {
	return s.gyms.Get(ctx, id)
}

func (s *GymService) List(ctx context.Context, filter domain.GymFilter) ([]*domain.Gym, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	return s.gyms.List(ctx, filter)
}

func (s *GymService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateGymRequest) (*domain.Gym, error) {
	gym, err := s.gyms.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		gym.Name = *req.Name
	}
	if req.Address != nil {
		gym.Address = *req.Address
	}
	if req.Phone != nil {
		gym.Phone = req.Phone
	}
	if req.Lat != nil {
		gym.Lat = *req.Lat
	}
	if req.Lng != nil {
		gym.Lng = *req.Lng
	}
	if req.RadiusMeters != nil {
		if *req.RadiusMeters < 10 || *req.RadiusMeters > 1000 {
			return nil, fmt.Errorf("service: update gym: radius %d out of bounds: %w", *req.RadiusMeters, e.ErrInvalidInput)
		}
		gym.RadiusMeters = *req.RadiusMeters
	}
	if req.IsActive != nil {
		gym.IsActive = *req.IsActive
	}

	if !geo.ValidCoordinates(gym.Lat, gym.Lng) {
		return nil, fmt.Errorf("service: update gym: %w", e.ErrInvalidCoordinates)
	}

	if err := s.gyms.Update(ctx, gym); err != nil {
		s.logger.Error("gym update failed", slog.String("gym_id", id.String()), slog.Any("error", err))
		return nil, err
	}

	return gym, nil
}

// Deactivate is the soft-delete path for a venue.
func (s *GymService) Deactivate(ctx context.Context, id uuid.UUID) error {
	inactive := false
	_, err := s.Update(ctx, id, domain.UpdateGymRequest{IsActive: &inactive})
	return err
}
