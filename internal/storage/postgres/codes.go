package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/pkg/e"
)

type CodeRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCodeRepo(pool *pgxpool.Pool, logger *slog.Logger) *CodeRepo {
	return &CodeRepo{pool: pool, logger: logger}
}

const codeColumns = `id, gym_id, code, expires_at, max_uses, uses_count, is_active, created_at`

func (r *CodeRepo) Create(ctx context.Context, code *domain.CheckInCode) error {
	const op = "postgres.Code.Create"

	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO checkin_codes (id, gym_id, code, expires_at, max_uses, uses_count, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		code.ID,
		code.GymID,
		code.Code,
		code.ExpiresAt,
		code.MaxUses,
		code.UsesCount,
		code.IsActive,
		code.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// GetByValue returns (nil, nil) when no code matches. The value is
// expected already normalized to uppercase by the caller.
func (r *CodeRepo) GetByValue(ctx context.Context, value string) (*domain.CheckInCode, error) {
	const op = "postgres.Code.GetByValue"

	const query = `SELECT ` + codeColumns + ` FROM checkin_codes WHERE code = $1`

	var code domain.CheckInCode
	err := r.pool.QueryRow(ctx, query, value).Scan(
		&code.ID,
		&code.GymID,
		&code.Code,
		&code.ExpiresAt,
		&code.MaxUses,
		&code.UsesCount,
		&code.IsActive,
		&code.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &code, nil
}

func (r *CodeRepo) Update(ctx context.Context, code *domain.CheckInCode) error {
	const op = "postgres.Code.Update"

	const query = `
		UPDATE checkin_codes
		SET expires_at = $2, max_uses = $3, uses_count = $4, is_active = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		code.ID,
		code.ExpiresAt,
		code.MaxUses,
		code.UsesCount,
		code.IsActive,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return e.WrapError(ctx, op, pgx.ErrNoRows)
	}
	return nil
}
