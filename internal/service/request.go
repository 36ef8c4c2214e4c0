package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/config"
	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/pkg/e"
)

// RequestService handles the lighter approval flow: a student asks a
// named approver, the approver answers, approval creates a confirmed
// check-in. Requests left unanswered expire through the same lazy
// sweep pattern check-ins use.
type RequestService struct {
	requests RequestRepository
	gyms     GymRepository
	checkins *CheckInService
	sink     notifySink
	logger   *slog.Logger
	cfg      config.CheckInConfig

	Now func() time.Time
}

func NewRequestService(
	requests RequestRepository,
	gyms GymRepository,
	checkins *CheckInService,
	notifier Notifier,
	logger *slog.Logger,
	cfg config.CheckInConfig,
) *RequestService {
	return &RequestService{
		requests: requests,
		gyms:     gyms,
		checkins: checkins,
		sink:     notifySink{notifier: notifier, logger: logger},
		logger:   logger,
		cfg:      cfg,
		Now:      time.Now,
	}
}

// Create opens a pending request. A user with an active check-in
// cannot open one; the check-in already proves presence.
func (s *RequestService) Create(ctx context.Context, userID uuid.UUID, dto domain.CreateCheckInRequestDTO) (*domain.CheckInRequest, error) {
	if userID == dto.ApproverID {
		return nil, fmt.Errorf("service: cannot request approval from yourself: %w", e.ErrInvalidInput)
	}
	if _, err := s.gyms.Get(ctx, dto.GymID); err != nil {
		return nil, err
	}

	active, err := s.checkins.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("service: user %s already has an active check-in: %w", userID, e.ErrConflict)
	}

	now := s.Now().UTC()
	expiresAt := now.Add(s.cfg.PendingRequestExpiry)
	req := &domain.CheckInRequest{
		ID:         uuid.New(),
		UserID:     userID,
		GymID:      dto.GymID,
		ApproverID: dto.ApproverID,
		Status:     domain.RequestPending,
		Reason:     dto.Reason,
		CreatedAt:  now,
		ExpiresAt:  &expiresAt,
	}

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info("check-in request created",
		slog.String("request_id", req.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("approver_id", dto.ApproverID.String()),
	)

	s.sink.send(ctx, now, requestCreatedNote(req))
	return req, nil
}

// Respond records the approver's answer. Approval creates a confirmed
// check-in for the requester; if the requester picked up an active
// check-in in the meantime, the approval fails with conflict and the
// request stays pending.
func (s *RequestService) Respond(ctx context.Context, actorID, requestID uuid.UUID, dto domain.RespondToRequestDTO) (*domain.RequestResponse, error) {
	req, err := s.requests.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.ApproverID != actorID {
		return nil, fmt.Errorf("service: only the designated approver may respond: %w", e.ErrForbidden)
	}
	if req.Status != domain.RequestPending {
		return nil, fmt.Errorf("service: request is %s: %w", req.Status, e.ErrInvalidState)
	}

	now := s.Now().UTC()
	if req.PendingExpired(now) {
		if err := s.expireRequest(ctx, req, now); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("service: request expired: %w", e.ErrExpired)
	}

	resp := &domain.RequestResponse{Request: req}

	if dto.Approved {
		c := &domain.CheckIn{
			ID:          uuid.New(),
			UserID:      req.UserID,
			GymID:       req.GymID,
			Method:      domain.MethodRequest,
			Status:      domain.StatusConfirmed,
			ApprovedBy:  &actorID,
			CheckedInAt: now,
		}
		if err := s.checkins.createActive(ctx, c); err != nil {
			return nil, err
		}
		req.Status = domain.RequestConfirmed
		resp.CheckIn = c
	} else {
		req.Status = domain.RequestRejected
	}

	req.RespondedAt = &now
	req.ResponseNote = dto.ResponseNote

	if err := s.requests.Update(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info("check-in request answered",
		slog.String("request_id", req.ID.String()),
		slog.String("status", string(req.Status)),
	)

	s.sink.send(ctx, now, requestRespondedNote(req, dto.Approved))
	return resp, nil
}

// ListPendingForApprover returns the approver's open inbox after
// sweeping expired entries.
func (s *RequestService) ListPendingForApprover(ctx context.Context, approverID uuid.UUID, gymID *uuid.UUID) ([]*domain.CheckInRequest, error) {
	items, err := s.requests.ListPendingForApprover(ctx, approverID, gymID)
	if err != nil {
		return nil, err
	}
	return s.sweepExpired(ctx, items)
}

// ListForUser returns the requester's own history.
func (s *RequestService) ListForUser(ctx context.Context, userID uuid.UUID, status *domain.RequestStatus, limit int) ([]*domain.CheckInRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	items, err := s.requests.ListForUser(ctx, userID, status, limit)
	if err != nil {
		return nil, err
	}
	if status == nil || *status == domain.RequestPending {
		return s.sweepExpired(ctx, items)
	}
	return items, nil
}

func (s *RequestService) sweepExpired(ctx context.Context, items []*domain.CheckInRequest) ([]*domain.CheckInRequest, error) {
	now := s.Now().UTC()
	alive := items[:0]

	for _, r := range items {
		if !r.PendingExpired(now) {
			alive = append(alive, r)
			continue
		}
		if err := s.expireRequest(ctx, r, now); err != nil {
			return nil, err
		}
	}
	return alive, nil
}

func (s *RequestService) expireRequest(ctx context.Context, r *domain.CheckInRequest, now time.Time) error {
	note := "auto-rejected: request expired unanswered"
	r.Status = domain.RequestRejected
	r.RespondedAt = &now
	r.ResponseNote = &note

	if err := s.requests.Update(ctx, r); err != nil {
		return err
	}

	s.logger.Info("check-in request expired",
		slog.String("request_id", r.ID.String()),
	)

	s.sink.send(ctx, now, requestRespondedNote(r, false))
	return nil
}
