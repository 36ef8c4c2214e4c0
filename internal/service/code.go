package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/pkg/e"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 8

	// codeGenAttempts bounds the uniqueness-retry loop. With 36^8
	// possible values a collision is already very unlikely; uniqueness
	// is still enforced by lookup rather than assumed from randomness.
	codeGenAttempts = 5
)

// CodeService manages the check-in code registry.
type CodeService struct {
	codes  CodeRepository
	gyms   GymRepository
	logger *slog.Logger

	Now func() time.Time
}

func NewCodeService(codes CodeRepository, gyms GymRepository, logger *slog.Logger) *CodeService {
	return &CodeService{
		codes:  codes,
		gyms:   gyms,
		logger: logger,
		Now:    time.Now,
	}
}

func (s *CodeService) Create(ctx context.Context, req domain.CreateCodeRequest) (*domain.CheckInCode, error) {
	if _, err := s.gyms.Get(ctx, req.GymID); err != nil {
		return nil, err
	}

	var value string
	for attempt := 0; ; attempt++ {
		candidate, err := generateCode(codeLength)
		if err != nil {
			return nil, fmt.Errorf("service: generate code: %w", err)
		}
		existing, err := s.codes.GetByValue(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			value = candidate
			break
		}
		if attempt+1 >= codeGenAttempts {
			return nil, fmt.Errorf("service: could not generate a unique code: %w", e.ErrInternal)
		}
	}

	code := &domain.CheckInCode{
		ID:        uuid.New(),
		GymID:     req.GymID,
		Code:      value,
		ExpiresAt: req.ExpiresAt,
		MaxUses:   req.MaxUses,
		IsActive:  true,
		CreatedAt: s.Now().UTC(),
	}

	if err := s.codes.Create(ctx, code); err != nil {
		s.logger.Error("code create failed", slog.Any("error", err))
		return nil, err
	}

	s.logger.Info("check-in code created",
		slog.String("gym_id", code.GymID.String()),
		slog.String("code", code.Code),
	)
	return code, nil
}

func (s *CodeService) GetByValue(ctx context.Context, value string) (*domain.CheckInCode, error) {
	code, err := s.codes.GetByValue(ctx, normalizeCode(value))
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, fmt.Errorf("service: code %q: %w", value, e.ErrNotFound)
	}
	return code, nil
}

func (s *CodeService) Deactivate(ctx context.Context, value string) error {
	code, err := s.GetByValue(ctx, value)
	if err != nil {
		return err
	}

	code.IsActive = false
	if err := s.codes.Update(ctx, code); err != nil {
		s.logger.Error("code deactivate failed", slog.String("code", code.Code), slog.Any("error", err))
		return err
	}
	return nil
}

// normalizeCode applies the case-insensitivity rule: codes are stored
// and looked up uppercase.
func normalizeCode(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func generateCode(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b), nil
}
