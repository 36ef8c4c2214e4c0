package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/config"
	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/internal/geo"
	"github.com/marcelpiva/myfit-api-sub002/pkg/e"
)

// LocationService owns the trainer side of presence: ephemeral GPS
// pushes and the explicit training-session lifecycle. Ending a session
// checks out every student the trainer still has open.
type LocationService struct {
	locations   TrainerLocationStore
	checkins    CheckInRepository
	gyms        GymRepository
	memberships MembershipDirectory
	sink        notifySink
	logger      *slog.Logger
	cfg         config.CheckInConfig

	Now func() time.Time
}

func NewLocationService(
	locations TrainerLocationStore,
	checkins CheckInRepository,
	gyms GymRepository,
	memberships MembershipDirectory,
	notifier Notifier,
	logger *slog.Logger,
	cfg config.CheckInConfig,
) *LocationService {
	return &LocationService{
		locations:   locations,
		checkins:    checkins,
		gyms:        gyms,
		memberships: memberships,
		sink:        notifySink{notifier: notifier, logger: logger},
		logger:      logger,
		cfg:         cfg,
		Now:         time.Now,
	}
}

// PushLocation refreshes the trainer's shared position and its TTL.
// Session state survives the refresh.
func (s *LocationService) PushLocation(ctx context.Context, trainerID uuid.UUID, req domain.PushLocationRequest) (*domain.TrainerLocation, error) {
	if !geo.ValidCoordinates(req.Lat, req.Lng) {
		return nil, fmt.Errorf("service: push location: %w", e.ErrInvalidCoordinates)
	}

	now := s.Now().UTC()
	loc := &domain.TrainerLocation{
		TrainerID: trainerID,
		Lat:       req.Lat,
		Lng:       req.Lng,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.cfg.LocationTTL),
	}

	if prev, err := s.locations.Get(ctx, trainerID); err == nil && prev != nil {
		loc.SessionActive = prev.SessionActive
		loc.SessionStartedAt = prev.SessionStartedAt
	}

	if err := s.locations.Upsert(ctx, loc); err != nil {
		return nil, err
	}

	s.logger.Debug("trainer location pushed",
		slog.String("trainer_id", trainerID.String()),
		slog.Time("expires_at", loc.ExpiresAt),
	)
	return loc, nil
}

// DeleteLocation stops sharing the trainer's position immediately.
func (s *LocationService) DeleteLocation(ctx context.Context, trainerID uuid.UUID) error {
	return s.locations.Delete(ctx, trainerID)
}

// StartSession marks the trainer's shared location as an active
// training session. The position must be shared first.
func (s *LocationService) StartSession(ctx context.Context, trainerID uuid.UUID, req domain.PushLocationRequest) (*domain.TrainerLocation, error) {
	if !geo.ValidCoordinates(req.Lat, req.Lng) {
		return nil, fmt.Errorf("service: start session: %w", e.ErrInvalidCoordinates)
	}

	now := s.Now().UTC()
	loc := &domain.TrainerLocation{
		TrainerID:     trainerID,
		Lat:           req.Lat,
		Lng:           req.Lng,
		UpdatedAt:     now,
		ExpiresAt:     now.Add(s.cfg.LocationTTL),
		SessionActive: true,
	}

	startedAt := now
	if prev, err := s.locations.Get(ctx, trainerID); err == nil && prev != nil && prev.SessionActive && prev.SessionStartedAt != nil {
		startedAt = *prev.SessionStartedAt
	}
	loc.SessionStartedAt = &startedAt

	if err := s.locations.Upsert(ctx, loc); err != nil {
		return nil, err
	}

	s.logger.Info("training session started",
		slog.String("trainer_id", trainerID.String()),
		slog.Time("started_at", startedAt),
	)
	return loc, nil
}

// EndSession clears the trainer's session flag and checks out every
// confirmed check-in approved by them. Returns the affected student
// IDs. Pending requests are left to their own acceptance deadline.
func (s *LocationService) EndSession(ctx context.Context, trainerID uuid.UUID) ([]uuid.UUID, error) {
	loc, err := s.locations.Get(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if loc == nil || !loc.SessionActive {
		return nil, fmt.Errorf("service: no active session for trainer %s: %w", trainerID, e.ErrNotFound)
	}

	now := s.Now().UTC()

	open, err := s.checkins.ListOpenByApprover(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	affected := make([]uuid.UUID, 0, len(open))
	for _, c := range open {
		if c.Status != domain.StatusConfirmed {
			continue
		}
		checkedOut := now
		c.CheckedOutAt = &checkedOut
		if err := s.checkins.Update(ctx, c); err != nil {
			return nil, err
		}
		if c.UserID != trainerID {
			affected = append(affected, c.UserID)
		}
	}

	loc.SessionActive = false
	loc.SessionStartedAt = nil
	if err := s.locations.Upsert(ctx, loc); err != nil {
		return nil, err
	}

	s.logger.Info("training session ended",
		slog.String("trainer_id", trainerID.String()),
		slog.Int("students_checked_out", len(affected)),
	)

	for _, studentID := range affected {
		s.sink.send(ctx, now, sessionEndedNote(studentID, trainerID))
	}
	return affected, nil
}

// ActiveSession builds the trainer's live session view: who is checked
// in with them and for how long.
func (s *LocationService) ActiveSession(ctx context.Context, trainerID uuid.UUID) (*domain.ActiveSession, error) {
	loc, err := s.locations.Get(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if loc == nil || !loc.SessionActive || loc.SessionStartedAt == nil {
		return nil, fmt.Errorf("service: no active session for trainer %s: %w", trainerID, e.ErrNotFound)
	}

	now := s.Now().UTC()

	// The view spans today's check-ins, widened to the session start
	// when an overnight session crosses midnight.
	since := now.Truncate(24 * time.Hour)
	if loc.SessionStartedAt.Before(since) {
		since = *loc.SessionStartedAt
	}

	items, err := s.checkins.ListByApproverSince(ctx, trainerID, since)
	if err != nil {
		return nil, err
	}

	session := &domain.ActiveSession{
		TrainerID: trainerID,
		StartedAt: *loc.SessionStartedAt,
		Lat:       loc.Lat,
		Lng:       loc.Lng,
		CheckIns:  make([]domain.SessionCheckIn, 0, len(items)),
	}

	for _, c := range items {
		if c.Status == domain.StatusRejected || c.UserID == trainerID {
			continue
		}

		// Lazy expiry: a confirmed check-in whose visit bound passed is
		// closed here, at the moment someone observes it.
		if c.IsActive() && c.Status == domain.StatusConfirmed && c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
			checkedOut := *c.ExpiresAt
			c.CheckedOutAt = &checkedOut
			if err := s.checkins.Update(ctx, c); err != nil {
				s.logger.Warn("lazy checkout failed",
					slog.String("checkin_id", c.ID.String()),
					slog.Any("error", err),
				)
			}
		}

		entry := domain.SessionCheckIn{
			CheckIn:     c,
			StudentName: s.studentName(ctx, c),
			Status:      "completed",
		}
		if c.IsActive() {
			entry.Status = "active"
			entry.ElapsedMinutes = int(now.Sub(c.StartedAt()).Minutes())
		} else {
			entry.ElapsedMinutes = c.DurationMinutes()
		}
		session.CheckIns = append(session.CheckIns, entry)
	}
	return session, nil
}

func (s *LocationService) studentName(ctx context.Context, c *domain.CheckIn) string {
	const fallback = "Student"

	gym, err := s.gyms.Get(ctx, c.GymID)
	if err != nil {
		return fallback
	}
	ms, err := s.memberships.ListMemberships(ctx, gym.OrganizationID, c.UserID)
	if err != nil {
		return fallback
	}
	if m, ok := domain.PrimaryMembership(ms); ok {
		return m.UserName
	}
	return fallback
}
