package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/pkg/e"
)

type GymRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewGymRepo(pool *pgxpool.Pool, logger *slog.Logger) *GymRepo {
	return &GymRepo{pool: pool, logger: logger}
}

const gymColumns = `id, organization_id, name, address, phone, lat, lng, radius_meters, is_active, created_at`

func (r *GymRepo) Create(ctx context.Context, gym *domain.Gym) error {
	const op = "postgres.Gym.Create"

	if gym.ID == uuid.Nil {
		gym.ID = uuid.New()
	}
	if gym.CreatedAt.IsZero() {
		gym.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO gyms (id, organization_id, name, address, phone, lat, lng, radius_meters, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		gym.ID,
		gym.OrganizationID,
		gym.Name,
		gym.Address,
		gym.Phone,
		gym.Lat,
		gym.Lng,
		gym.RadiusMeters,
		gym.IsActive,
		gym.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *GymRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Gym, error) {
	const op = "postgres.Gym.Get"

	const query = `SELECT ` + gymColumns + ` FROM gyms WHERE id = $1`

	gym, err := scanGym(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return gym, nil
}

func (r *GymRepo) Update(ctx context.Context, gym *domain.Gym) error {
	const op = "postgres.Gym.Update"

	const query = `
		UPDATE gyms
		SET name = $2, address = $3, phone = $4, lat = $5, lng = $6, radius_meters = $7, is_active = $8
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		gym.ID,
		gym.Name,
		gym.Address,
		gym.Phone,
		gym.Lat,
		gym.Lng,
		gym.RadiusMeters,
		gym.IsActive,
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

func (r *GymRepo) List(ctx context.Context, filter domain.GymFilter) ([]*domain.Gym, error) {
	const op = "postgres.Gym.List"

	query := `SELECT ` + gymColumns + ` FROM gyms WHERE 1=1`
	var args []any

	if filter.OrganizationID != nil {
		args = append(args, *filter.OrganizationID)
		query += fmt.Sprintf(" AND organization_id = $%d", len(args))
	}
	if filter.ActiveOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var gyms []*domain.Gym
	for rows.Next() {
		gym, err := scanGym(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		gyms = append(gyms, gym)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return gyms, nil
}

func scanGym(row pgx.Row) (*domain.Gym, error) {
	var gym domain.Gym
	err := row.Scan(
		&gym.ID,
		&gym.OrganizationID,
		&gym.Name,
		&gym.Address,
		&gym.Phone,
		&gym.Lat,
		&gym.Lng,
		&gym.RadiusMeters,
		&gym.IsActive,
		&gym.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &gym, nil
}
