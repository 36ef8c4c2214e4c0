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

type RequestRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewRequestRepo(pool *pgxpool.Pool, logger *slog.Logger) *RequestRepo {
	return &RequestRepo{pool: pool, logger: logger}
}

const requestColumns = `id, user_id, gym_id, approver_id, status, reason, response_note,
	created_at, expires_at, responded_at`

func (r *RequestRepo) Create(ctx context.Context, req *domain.CheckInRequest) error {
	const op = "postgres.Request.Create"

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO checkin_requests (id, user_id, gym_id, approver_id, status, reason, response_note,
			created_at, expires_at, responded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		req.ID,
		req.UserID,
		req.GymID,
		req.ApproverID,
		req.Status,
		req.Reason,
		req.ResponseNote,
		req.CreatedAt,
		req.ExpiresAt,
		req.RespondedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *RequestRepo) Get(ctx context.Context, id uuid.UUID) (*domain.CheckInRequest, error) {
	const op = "postgres.Request.Get"

	const query = `SELECT ` + requestColumns + ` FROM checkin_requests WHERE id = $1`

	req, err := scanRequest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return req, nil
}

func (r *RequestRepo) Update(ctx context.Context, req *domain.CheckInRequest) error {
	const op = "postgres.Request.Update"

	const query = `
		UPDATE checkin_requests
		SET status = $2, response_note = $3, responded_at = $4
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		req.ID,
		req.Status,
		req.ResponseNote,
		req.RespondedAt,
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

func (r *RequestRepo) ListPendingForApprover(ctx context.Context, approverID uuid.UUID, gymID *uuid.UUID) ([]*domain.CheckInRequest, error) {
	const op = "postgres.Request.ListPendingForApprover"

	query := `
		SELECT ` + requestColumns + `
		FROM checkin_requests
		WHERE approver_id = $1 AND status = 'pending'
	`
	args := []any{approverID}

	if gymID != nil {
		args = append(args, *gymID)
		query += fmt.Sprintf(" AND gym_id = $%d", len(args))
	}
	query += ` ORDER BY created_at ASC`

	return r.queryRequests(ctx, op, query, args...)
}

func (r *RequestRepo) ListForUser(ctx context.Context, userID uuid.UUID, status *domain.RequestStatus, limit int) ([]*domain.CheckInRequest, error) {
	const op = "postgres.Request.ListForUser"

	query := `SELECT ` + requestColumns + ` FROM checkin_requests WHERE user_id = $1`
	args := []any{userID}

	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	return r.queryRequests(ctx, op, query, args...)
}

func (r *RequestRepo) queryRequests(ctx context.Context, op, query string, args ...any) ([]*domain.CheckInRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var requests []*domain.CheckInRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return requests, nil
}

func scanRequest(row pgx.Row) (*domain.CheckInRequest, error) {
	var req domain.CheckInRequest
	err := row.Scan(
		&req.ID,
		&req.UserID,
		&req.GymID,
		&req.ApproverID,
		&req.Status,
		&req.Reason,
		&req.ResponseNote,
		&req.CreatedAt,
		&req.ExpiresAt,
		&req.RespondedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
