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

// CheckInService drives the check-in state machine:
//
//	pending_acceptance -> confirmed -> (checked out)
//	pending_acceptance -> rejected   (decline or expiry)
//
// Check-ins created by code, location or request approval are
// confirmed directly. Expiry is handled lazily: read and accept paths
// sweep stale pending entries before acting, so no background timer is
// needed.
type CheckInService struct {
	checkins    CheckInRepository
	gyms        GymRepository
	codes       CodeRepository
	memberships MembershipDirectory
	locations   TrainerLocationStore
	proximity   *ProximityService
	sink        notifySink
	logger      *slog.Logger
	cfg         config.CheckInConfig
	locks       *userLocks

	Now func() time.Time
}

func NewCheckInService(
	checkins CheckInRepository,
	gyms GymRepository,
	codes CodeRepository,
	memberships MembershipDirectory,
	locations TrainerLocationStore,
	proximity *ProximityService,
	notifier Notifier,
	logger *slog.Logger,
	cfg config.CheckInConfig,
) *CheckInService {
	return &CheckInService{
		checkins:    checkins,
		gyms:        gyms,
		codes:       codes,
		memberships: memberships,
		locations:   locations,
		proximity:   proximity,
		sink:        notifySink{notifier: notifier, logger: logger},
		logger:      logger,
		cfg:         cfg,
		locks:       newUserLocks(),
		Now:         time.Now,
	}
}

// createActive inserts a check-in while holding the subject's lock,
// enforcing the one-active-check-in invariant across the
// query-then-act window.
func (s *CheckInService) createActive(ctx context.Context, c *domain.CheckIn) error {
	unlock := s.locks.Lock(c.UserID)
	defer unlock()

	active, err := s.checkins.GetActiveForUser(ctx, c.UserID)
	if err != nil {
		return err
	}
	if active != nil {
		now := s.Now().UTC()
		if !active.PendingExpired(now) {
			return fmt.Errorf("service: user %s already has an active check-in: %w", c.UserID, e.ErrConflict)
		}
		// A dead pending request must not block a fresh check-in.
		if err := s.expirePending(ctx, active, now); err != nil {
			return err
		}
	}

	return s.checkins.Create(ctx, c)
}

// CheckIn creates a manual, self-initiated check-in. It is confirmed
// immediately: the subject vouches for their own presence.
func (s *CheckInService) CheckIn(ctx context.Context, userID uuid.UUID, req domain.CheckInRequestDTO) (*domain.CheckIn, error) {
	if _, err := s.gyms.Get(ctx, req.GymID); err != nil {
		return nil, err
	}

	now := s.Now().UTC()
	c := &domain.CheckIn{
		ID:           uuid.New(),
		UserID:       userID,
		GymID:        req.GymID,
		Method:       domain.MethodManual,
		Status:       domain.StatusConfirmed,
		CheckedInAt:  now,
		TrainingMode: req.TrainingMode,
		Notes:        req.Notes,
	}

	if err := s.createActive(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("check-in created",
		slog.String("checkin_id", c.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("method", string(c.Method)),
	)
	return c, nil
}

// CheckInForStudent creates a pending-acceptance check-in on a
// student's behalf. The student must confirm within the acceptance
// window or the record auto-rejects.
func (s *CheckInService) CheckInForStudent(ctx context.Context, initiatorID uuid.UUID, req domain.CheckInForStudentRequest) (*domain.CheckIn, error) {
	gym, err := s.gyms.Get(ctx, req.GymID)
	if err != nil {
		return nil, err
	}

	initiator, err := s.primaryMembership(ctx, gym.OrganizationID, initiatorID)
	if err != nil {
		return nil, err
	}
	if initiator == nil || !initiator.Role.CanInitiateForStudent() {
		return nil, fmt.Errorf("service: only trainers or admins may check in students: %w", e.ErrForbidden)
	}

	student, err := s.primaryMembership(ctx, gym.OrganizationID, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, fmt.Errorf("service: student not found in organization: %w", e.ErrNotFound)
	}

	now := s.Now().UTC()
	expiresAt := now.Add(s.cfg.AcceptanceWindow)
	c := &domain.CheckIn{
		ID:           uuid.New(),
		UserID:       req.StudentID,
		GymID:        req.GymID,
		Method:       domain.MethodManual,
		Status:       domain.StatusPendingAcceptance,
		InitiatedBy:  &initiatorID,
		ApprovedBy:   &initiatorID,
		CheckedInAt:  now,
		ExpiresAt:    &expiresAt,
		TrainingMode: req.TrainingMode,
		Notes:        req.Notes,
	}

	if err := s.createActive(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("pending-acceptance check-in created",
		slog.String("checkin_id", c.ID.String()),
		slog.String("student_id", req.StudentID.String()),
		slog.String("initiator_id", initiatorID.String()),
		slog.Time("expires_at", expiresAt),
	)

	s.sink.send(ctx, now, pendingCreatedNote(c))
	return c, nil
}

// Accept confirms a pending-acceptance check-in. Only the counterparty
// may accept; the initiator never can. An expired record is rejected
// as a side effect and the caller gets ErrExpired.
func (s *CheckInService) Accept(ctx context.Context, actorID, checkinID uuid.UUID) (*domain.CheckIn, error) {
	c, err := s.checkins.Get(ctx, checkinID)
	if err != nil {
		return nil, err
	}

	if c.InitiatedBy != nil && *c.InitiatedBy == actorID {
		return nil, fmt.Errorf("service: initiator cannot accept their own check-in: %w", e.ErrForbidden)
	}
	if actorID != c.UserID {
		return nil, fmt.Errorf("service: only the check-in subject may accept: %w", e.ErrForbidden)
	}
	if c.Status != domain.StatusPendingAcceptance {
		return nil, fmt.Errorf("service: check-in is %s: %w", c.Status, e.ErrInvalidState)
	}

	now := s.Now().UTC()
	if c.PendingExpired(now) {
		if err := s.expirePending(ctx, c, now); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("service: acceptance window passed: %w", e.ErrExpired)
	}

	c.Status = domain.StatusConfirmed
	c.AcceptedAt = &now

	// The acceptance deadline is spent; expires_at now bounds the visit
	// itself so an abandoned check-in gets closed lazily.
	visitEnd := now.Add(s.cfg.LocationTTL)
	c.ExpiresAt = &visitEnd

	if err := s.checkins.Update(ctx, c); err != nil {
		return nil, err
	}

	// A trainer acting for a student is now provably at the gym: sync
	// their shared location and force the session flag so the trainer's
	// and student's displayed elapsed time stay aligned.
	if c.InitiatedBy != nil && *c.InitiatedBy != c.UserID {
		if err := s.syncInitiatorSession(ctx, c, now); err != nil {
			s.logger.Warn("trainer session sync failed",
				slog.String("checkin_id", c.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	s.logger.Info("check-in accepted",
		slog.String("checkin_id", c.ID.String()),
		slog.String("actor_id", actorID.String()),
	)

	if note, ok := acceptedNote(c); ok {
		s.sink.send(ctx, now, note)
	}
	return c, nil
}

func (s *CheckInService) syncInitiatorSession(ctx context.Context, c *domain.CheckIn, now time.Time) error {
	gym, err := s.gyms.Get(ctx, c.GymID)
	if err != nil {
		return err
	}

	startedAt := c.StartedAt()
	return s.locations.Upsert(ctx, &domain.TrainerLocation{
		TrainerID:        *c.InitiatedBy,
		Lat:              gym.Lat,
		Lng:              gym.Lng,
		UpdatedAt:        now,
		ExpiresAt:        now.Add(s.cfg.LocationTTL),
		SessionActive:    true,
		SessionStartedAt: &startedAt,
	})
}

// Reject declines a pending-acceptance check-in. Initiator, subject
// and approver may all reject.
func (s *CheckInService) Reject(ctx context.Context, actorID, checkinID uuid.UUID) (*domain.CheckIn, error) {
	c, err := s.checkins.Get(ctx, checkinID)
	if err != nil {
		return nil, err
	}

	if !s.mayReject(c, actorID) {
		return nil, fmt.Errorf("service: actor %s may not reject this check-in: %w", actorID, e.ErrForbidden)
	}
	if c.Status != domain.StatusPendingAcceptance {
		return nil, fmt.Errorf("service: check-in is %s: %w", c.Status, e.ErrInvalidState)
	}

	now := s.Now().UTC()
	c.Status = domain.StatusRejected
	c.CheckedOutAt = &now

	if err := s.checkins.Update(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("check-in rejected",
		slog.String("checkin_id", c.ID.String()),
		slog.String("actor_id", actorID.String()),
	)

	for _, recipient := range rejectionRecipients(c, actorID) {
		s.sink.send(ctx, now, rejectedNote(c, recipient))
	}
	return c, nil
}

func (s *CheckInService) mayReject(c *domain.CheckIn, actorID uuid.UUID) bool {
	if actorID == c.UserID {
		return true
	}
	if c.InitiatedBy != nil && *c.InitiatedBy == actorID {
		return true
	}
	if c.ApprovedBy != nil && *c.ApprovedBy == actorID {
		return true
	}
	return false
}

// Checkout closes the caller's confirmed check-in. If the approving
// trainer has no other confirmed students left after this, their
// session flag is cleared.
func (s *CheckInService) Checkout(ctx context.Context, userID uuid.UUID, req domain.CheckOutRequest) (*domain.CheckIn, error) {
	active, err := s.checkins.GetActiveForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, fmt.Errorf("service: no active check-in for user %s: %w", userID, e.ErrNotFound)
	}

	now := s.Now().UTC()
	if active.PendingExpired(now) {
		if err := s.expirePending(ctx, active, now); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("service: no active check-in for user %s: %w", userID, e.ErrNotFound)
	}
	if active.Status != domain.StatusConfirmed {
		return nil, fmt.Errorf("service: check-in is %s, not confirmed: %w", active.Status, e.ErrInvalidState)
	}

	active.CheckedOutAt = &now
	if req.Notes != nil {
		active.Notes = req.Notes
	}

	if err := s.checkins.Update(ctx, active); err != nil {
		return nil, err
	}

	s.logger.Info("checked out",
		slog.String("checkin_id", active.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("duration_min", active.DurationMinutes()),
	)

	if active.ApprovedBy != nil && *active.ApprovedBy != userID {
		s.inferSessionEnd(ctx, *active.ApprovedBy)
	}
	return active, nil
}

// inferSessionEnd clears a trainer's session flag once their last
// confirmed student checks out.
func (s *CheckInService) inferSessionEnd(ctx context.Context, trainerID uuid.UUID) {
	open, err := s.checkins.ListOpenByApprover(ctx, trainerID)
	if err != nil {
		s.logger.Warn("session-end inference failed", slog.Any("error", err))
		return
	}
	// Unanswered pending requests do not hold a session open.
	for _, c := range open {
		if c.Status == domain.StatusConfirmed {
			return
		}
	}

	loc, err := s.locations.Get(ctx, trainerID)
	if err != nil || loc == nil || !loc.SessionActive {
		return
	}

	loc.SessionActive = false
	loc.SessionStartedAt = nil
	if err := s.locations.Upsert(ctx, loc); err != nil {
		s.logger.Warn("clearing trainer session failed",
			slog.String("trainer_id", trainerID.String()),
			slog.Any("error", err),
		)
		return
	}

	s.logger.Info("trainer session auto-ended", slog.String("trainer_id", trainerID.String()))
}

// CheckInByCode redeems a check-in code: validates it, creates a
// confirmed check-in, then increments the use counter.
func (s *CheckInService) CheckInByCode(ctx context.Context, userID uuid.UUID, req domain.CheckInByCodeRequest) (*domain.CheckIn, error) {
	code, err := s.codes.GetByValue(ctx, normalizeCode(req.Code))
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, fmt.Errorf("service: code %q: %w", req.Code, e.ErrNotFound)
	}

	now := s.Now().UTC()
	if !code.IsValid(now) {
		return nil, fmt.Errorf("service: code %s is expired or exhausted: %w", code.Code, e.ErrInvalidInput)
	}

	c := &domain.CheckIn{
		ID:          uuid.New(),
		UserID:      userID,
		GymID:       code.GymID,
		Method:      domain.MethodCode,
		Status:      domain.StatusConfirmed,
		CheckedInAt: now,
	}

	if err := s.createActive(ctx, c); err != nil {
		return nil, err
	}

	code.UsesCount++
	if err := s.codes.Update(ctx, code); err != nil {
		s.logger.Error("code use increment failed",
			slog.String("code", code.Code),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.Info("check-in by code",
		slog.String("checkin_id", c.ID.String()),
		slog.String("code", code.Code),
		slog.Int("uses_count", code.UsesCount),
	)
	return c, nil
}

// CheckInByLocation matches the caller's position against the gym
// directory. The near-miss outcome (nearest gym exists but out of
// radius) is a result, not an error.
func (s *CheckInService) CheckInByLocation(ctx context.Context, userID uuid.UUID, organizationID *uuid.UUID, req domain.CheckInByLocationRequest) (*domain.LocationCheckInResult, error) {
	nearby, err := s.proximity.NearestGym(ctx, req.Lat, req.Lng, organizationID)
	if err != nil {
		return nil, err
	}
	if nearby == nil {
		return &domain.LocationCheckInResult{Success: false}, nil
	}

	result := &domain.LocationCheckInResult{
		NearestGym:     nearby.Gym,
		DistanceMeters: &nearby.DistanceMeters,
	}
	if !nearby.WithinRadius {
		return result, nil
	}

	c := &domain.CheckIn{
		ID:          uuid.New(),
		UserID:      userID,
		GymID:       nearby.Gym.ID,
		Method:      domain.MethodLocation,
		Status:      domain.StatusConfirmed,
		CheckedInAt: s.Now().UTC(),
	}

	if err := s.createActive(ctx, c); err != nil {
		return nil, err
	}

	result.Success = true
	result.CheckIn = c

	s.logger.Info("check-in by location",
		slog.String("checkin_id", c.ID.String()),
		slog.String("gym_id", nearby.Gym.ID.String()),
		slog.Float64("distance_m", nearby.DistanceMeters),
	)
	return result, nil
}

// CheckInNearTrainer lets a student check in against their trainer's
// resolved position rather than a gym's.
func (s *CheckInService) CheckInNearTrainer(ctx context.Context, userID, organizationID uuid.UUID, req domain.CheckInNearTrainerRequest) (*domain.CheckIn, error) {
	if !geo.ValidCoordinates(req.Lat, req.Lng) {
		return nil, fmt.Errorf("service: check-in near trainer: %w", e.ErrInvalidCoordinates)
	}

	loc, err := s.proximity.ResolveTrainerLocation(ctx, req.TrainerID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("service: trainer location unavailable: %w", e.ErrNotFound)
	}

	distance := geo.Distance(req.Lat, req.Lng, loc.Lat, loc.Lng)
	if distance > s.cfg.NearTrainerMaxMeters {
		return nil, fmt.Errorf("service: %dm from trainer, max %.0fm: %w",
			int(distance), s.cfg.NearTrainerMaxMeters, e.ErrInvalidInput)
	}

	gymID, err := s.resolveNearTrainerGym(ctx, organizationID, loc)
	if err != nil {
		return nil, err
	}

	now := s.Now().UTC()
	c := &domain.CheckIn{
		ID:          uuid.New(),
		UserID:      userID,
		GymID:       gymID,
		Method:      domain.MethodProximity,
		Status:      domain.StatusConfirmed,
		ApprovedBy:  &req.TrainerID,
		CheckedInAt: now,
	}

	if err := s.createActive(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("check-in near trainer",
		slog.String("checkin_id", c.ID.String()),
		slog.String("trainer_id", req.TrainerID.String()),
		slog.Float64("distance_m", distance),
	)

	s.sink.send(ctx, now, nearTrainerNote(c, req.TrainerID))
	return c, nil
}

// resolveNearTrainerGym picks the venue for a near-trainer check-in:
// the trainer's own check-in gym, else the closest gym to the trainer,
// else any org gym, else a venue auto-created at the trainer's spot.
func (s *CheckInService) resolveNearTrainerGym(ctx context.Context, organizationID uuid.UUID, loc *domain.ResolvedLocation) (uuid.UUID, error) {
	if loc.GymID != nil {
		return *loc.GymID, nil
	}

	nearby, err := s.proximity.NearestGym(ctx, loc.Lat, loc.Lng, &organizationID)
	if err != nil {
		return uuid.Nil, err
	}
	if nearby != nil {
		return nearby.Gym.ID, nil
	}

	gyms, err := s.gyms.List(ctx, domain.GymFilter{OrganizationID: &organizationID, ActiveOnly: true, Limit: 1})
	if err != nil {
		return uuid.Nil, err
	}
	if len(gyms) > 0 {
		return gyms[0].ID, nil
	}

	gym := &domain.Gym{
		ID:             uuid.New(),
		OrganizationID: organizationID,
		Name:           "Personal trainer location",
		Address:        "Personal trainer location",
		Lat:            loc.Lat,
		Lng:            loc.Lng,
		RadiusMeters:   200,
		IsActive:       true,
		CreatedAt:      s.Now().UTC(),
	}
	if err := s.gyms.Create(ctx, gym); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("auto-created gym at trainer location", slog.String("gym_id", gym.ID.String()))
	return gym.ID, nil
}

// GetActive returns the user's active check-in, or (nil, nil). A
// pending request past its acceptance deadline is expired in place and
// reported as absent.
func (s *CheckInService) GetActive(ctx context.Context, userID uuid.UUID) (*domain.CheckIn, error) {
	active, err := s.checkins.GetActiveForUser(ctx, userID)
	if err != nil || active == nil {
		return active, err
	}

	now := s.Now().UTC()
	if active.PendingExpired(now) {
		if err := s.expirePending(ctx, active, now); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return active, nil
}

func (s *CheckInService) List(ctx context.Context, filter domain.CheckInFilter) ([]*domain.CheckIn, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	return s.checkins.List(ctx, filter)
}

// ListPending returns the user's pending-acceptance check-ins after
// sweeping expired entries, so callers never observe a stale one.
func (s *CheckInService) ListPending(ctx context.Context, userID uuid.UUID) ([]*domain.PendingCheckIn, error) {
	items, err := s.checkins.ListPendingForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending, err := s.sweepExpired(ctx, items)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.PendingCheckIn, 0, len(pending))
	for _, c := range pending {
		out = append(out, s.decoratePending(ctx, c))
	}
	return out, nil
}

func (s *CheckInService) decoratePending(ctx context.Context, c *domain.CheckIn) *domain.PendingCheckIn {
	p := &domain.PendingCheckIn{CheckIn: c, InitiatedByName: "Personal"}
	if c.InitiatedBy != nil {
		p.InitiatedByID = *c.InitiatedBy
	}

	gym, err := s.gyms.Get(ctx, c.GymID)
	if err != nil {
		return p
	}
	p.GymName = gym.Name

	if c.InitiatedBy == nil {
		return p
	}
	if m, err := s.primaryMembership(ctx, gym.OrganizationID, *c.InitiatedBy); err == nil && m != nil {
		p.InitiatedByName = m.UserName
		p.InitiatedByRole = m.Role
	}
	return p
}

// sweepExpired is the explicit expiry pass: every pending-acceptance
// record past its deadline transitions to rejected before the caller
// sees the rest. Returning the survivors keeps call sites uniform.
func (s *CheckInService) sweepExpired(ctx context.Context, items []*domain.CheckIn) ([]*domain.CheckIn, error) {
	now := s.Now().UTC()
	alive := items[:0]

	for _, c := range items {
		if !c.PendingExpired(now) {
			alive = append(alive, c)
			continue
		}
		if err := s.expirePending(ctx, c, now); err != nil {
			return nil, err
		}
	}
	return alive, nil
}

func (s *CheckInService) expirePending(ctx context.Context, c *domain.CheckIn, now time.Time) error {
	c.Status = domain.StatusRejected
	c.CheckedOutAt = &now
	annotate(c, "auto-rejected: acceptance window expired")

	if err := s.checkins.Update(ctx, c); err != nil {
		return err
	}

	s.logger.Info("pending check-in expired",
		slog.String("checkin_id", c.ID.String()),
		slog.Time("expires_at", *c.ExpiresAt),
	)

	for _, recipient := range rejectionRecipients(c, uuid.Nil) {
		s.sink.send(ctx, now, rejectedNote(c, recipient))
	}
	return nil
}

// Stats aggregates a user's check-in history over the trailing period.
func (s *CheckInService) Stats(ctx context.Context, userID uuid.UUID, days int) (*domain.CheckInStats, error) {
	if days <= 0 {
		days = 30
	}

	from := s.Now().UTC().AddDate(0, 0, -days)
	items, err := s.checkins.List(ctx, domain.CheckInFilter{
		UserID:   &userID,
		FromDate: &from,
		Limit:    1000,
	})
	if err != nil {
		return nil, err
	}

	stats := &domain.CheckInStats{PeriodDays: days, TotalCheckIns: len(items)}
	for _, c := range items {
		stats.TotalDurationMinutes += c.DurationMinutes()
	}
	if len(items) > 0 {
		stats.AvgDurationMinutes = float64(stats.TotalDurationMinutes) / float64(len(items))
	}
	return stats, nil
}

func (s *CheckInService) primaryMembership(ctx context.Context, organizationID, userID uuid.UUID) (*domain.Membership, error) {
	ms, err := s.memberships.ListMemberships(ctx, organizationID, userID)
	if err != nil {
		return nil, err
	}
	m, ok := domain.PrimaryMembership(ms)
	if !ok {
		return nil, nil
	}
	return m, nil
}

func annotate(c *domain.CheckIn, note string) {
	if c.Notes == nil || *c.Notes == "" {
		c.Notes = &note
		return
	}
	combined := *c.Notes + "; " + note
	c.Notes = &combined
}
