package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/config"
	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/internal/geo"
	"github.com/marcelpiva/myfit-api-sub002/pkg/e"
)

// ProximityService answers "what is near this point" for both gyms and
// trainers. Distance is great-circle; "within radius" is always the
// inclusive comparison distance <= radius.
type ProximityService struct {
	gyms        GymRepository
	checkins    CheckInRepository
	memberships MembershipDirectory
	locations   TrainerLocationStore
	logger      *slog.Logger
	cfg         config.CheckInConfig

	Now func() time.Time
}

func NewProximityService(
	gyms GymRepository,
	checkins CheckInRepository,
	memberships MembershipDirectory,
	locations TrainerLocationStore,
	logger *slog.Logger,
	cfg config.CheckInConfig,
) *ProximityService {
	return &ProximityService{
		gyms:        gyms,
		checkins:    checkins,
		memberships: memberships,
		locations:   locations,
		logger:      logger,
		cfg:         cfg,
		Now:         time.Now,
	}
}

// NearestGym returns the closest active gym to the point, or (nil, nil)
// when the directory has no active gyms for the filter.
func (s *ProximityService) NearestGym(ctx context.Context, lat, lng float64, organizationID *uuid.UUID) (*domain.NearbyGym, error) {
	if !geo.ValidCoordinates(lat, lng) {
		return nil, fmt.Errorf("service: nearest gym: %w", e.ErrInvalidCoordinates)
	}

	gyms, err := s.gyms.List(ctx, domain.GymFilter{
		OrganizationID: organizationID,
		ActiveOnly:     true,
		Limit:          100,
	})
	if err != nil {
		return nil, err
	}

	var nearest *domain.Gym
	nearestDistance := math.Inf(1)

	for _, gym := range gyms {
		d := geo.Distance(lat, lng, gym.Lat, gym.Lng)
		if d < nearestDistance {
			nearestDistance = d
			nearest = gym
		}
	}

	if nearest == nil {
		return nil, nil
	}

	return &domain.NearbyGym{
		Gym:            nearest,
		DistanceMeters: nearestDistance,
		WithinRadius:   nearestDistance <= float64(nearest.RadiusMeters),
	}, nil
}

// ResolveTrainerLocation resolves a trainer's current position by
// priority: an active confirmed check-in wins over shared GPS. Returns
// (nil, nil) when the trainer is unreachable.
func (s *ProximityService) ResolveTrainerLocation(ctx context.Context, trainerID uuid.UUID) (*domain.ResolvedLocation, error) {
	active, err := s.checkins.GetActiveForUser(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if active != nil && active.Status == domain.StatusConfirmed {
		gym, err := s.gyms.Get(ctx, active.GymID)
		if err != nil {
			return nil, err
		}
		return &domain.ResolvedLocation{
			Lat:     gym.Lat,
			Lng:     gym.Lng,
			Source:  domain.SourceCheckIn,
			GymID:   &gym.ID,
			GymName: &gym.Name,
		}, nil
	}

	loc, err := s.locations.Get(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if loc == nil || loc.Expired(s.Now()) {
		return nil, nil
	}

	return &domain.ResolvedLocation{
		Lat:    loc.Lat,
		Lng:    loc.Lng,
		Source: domain.SourceGPS,
	}, nil
}

// NearbyTrainers lists reachable trainers/coaches of the organization
// within the discovery radius, sorted ascending by distance.
func (s *ProximityService) NearbyTrainers(ctx context.Context, lat, lng float64, organizationID uuid.UUID) ([]*domain.NearbyTrainer, error) {
	if !geo.ValidCoordinates(lat, lng) {
		return nil, fmt.Errorf("service: nearby trainers: %w", e.ErrInvalidCoordinates)
	}

	trainers, err := s.memberships.ListTrainers(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	nearby := make([]*domain.NearbyTrainer, 0, len(trainers))

	for _, m := range trainers {
		loc, err := s.ResolveTrainerLocation(ctx, m.UserID)
		if err != nil {
			s.logger.Warn("resolve trainer location failed",
				slog.String("trainer_id", m.UserID.String()),
				slog.Any("error", err),
			)
			continue
		}
		if loc == nil {
			continue
		}

		d := geo.Distance(lat, lng, loc.Lat, loc.Lng)
		if d > s.cfg.TrainerRadiusMeters {
			continue
		}

		sessionActive := false
		if stored, err := s.locations.Get(ctx, m.UserID); err == nil && stored != nil && !stored.Expired(now) {
			sessionActive = stored.SessionActive
		}

		nearby = append(nearby, &domain.NearbyTrainer{
			TrainerID:      m.UserID,
			TrainerName:    m.UserName,
			DistanceMeters: math.Round(d*10) / 10,
			Source:         loc.Source,
			GymID:          loc.GymID,
			GymName:        loc.GymName,
			SessionActive:  sessionActive,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	return nearby, nil
}
