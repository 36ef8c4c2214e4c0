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

type CheckInRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCheckInRepo(pool *pgxpool.Pool, logger *slog.Logger) *CheckInRepo {
	return &CheckInRepo{pool: pool, logger: logger}
}

const checkinColumns = `id, user_id, gym_id, method, status, initiated_by, approved_by,
	checked_in_at, accepted_at, expires_at, checked_out_at, training_mode, notes, appointment_id`

// activeClause selects check-ins still occupying the subject's single
// active slot.
const activeClause = `status IN ('confirmed', 'pending_acceptance') AND checked_out_at IS NULL`

func (r *CheckInRepo) Create(ctx context.Context, c *domain.CheckIn) error {
	const op = "postgres.CheckIn.Create"

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CheckedInAt.IsZero() {
		c.CheckedInAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO checkins (id, user_id, gym_id, method, status, initiated_by, approved_by,
			checked_in_at, accepted_at, expires_at, checked_out_at, training_mode, notes, appointment_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.UserID,
		c.GymID,
		c.Method,
		c.Status,
		c.InitiatedBy,
		c.ApprovedBy,
		c.CheckedInAt,
		c.AcceptedAt,
		c.ExpiresAt,
		c.CheckedOutAt,
		c.TrainingMode,
		c.Notes,
		c.AppointmentID,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *CheckInRepo) Get(ctx context.Context, id uuid.UUID) (*domain.CheckIn, error) {
	const op = "postgres.CheckIn.Get"

	const query = `SELECT ` + checkinColumns + ` FROM checkins WHERE id = $1`

	c, err := scanCheckIn(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return c, nil
}

func (r *CheckInRepo) Update(ctx context.Context, c *domain.CheckIn) error {
	const op = "postgres.CheckIn.Update"

	const query = `
		UPDATE checkins
		SET status = $2, accepted_at = $3, expires_at = $4, checked_out_at = $5, notes = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Status,
		c.AcceptedAt,
		c.ExpiresAt,
		c.CheckedOutAt,
		c.Notes,
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

// GetActiveForUser returns (nil, nil) when the user has no active
// check-in.
func (r *CheckInRepo) GetActiveForUser(ctx context.Context, userID uuid.UUID) (*domain.CheckIn, error) {
	const op = "postgres.CheckIn.GetActiveForUser"

	const query = `
		SELECT ` + checkinColumns + `
		FROM checkins
		WHERE user_id = $1 AND ` + activeClause + `
		ORDER BY checked_in_at DESC
		LIMIT 1
	`

	c, err := scanCheckIn(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return c, nil
}

func (r *CheckInRepo) ListPendingForUser(ctx context.Context, userID uuid.UUID) ([]*domain.CheckIn, error) {
	const op = "postgres.CheckIn.ListPendingForUser"

	const query = `
		SELECT ` + checkinColumns + `
		FROM checkins
		WHERE user_id = $1 AND status = 'pending_acceptance' AND checked_out_at IS NULL
		ORDER BY checked_in_at DESC
	`

	return r.queryCheckIns(ctx, op, query, userID)
}

func (r *CheckInRepo) ListOpenByApprover(ctx context.Context, approverID uuid.UUID) ([]*domain.CheckIn, error) {
	const op = "postgres.CheckIn.ListOpenByApprover"

	const query = `
		SELECT ` + checkinColumns + `
		FROM checkins
		WHERE approved_by = $1 AND ` + activeClause + `
		ORDER BY checked_in_at ASC
	`

	return r.queryCheckIns(ctx, op, query, approverID)
}

func (r *CheckInRepo) ListByApproverSince(ctx context.Context, approverID uuid.UUID, since time.Time) ([]*domain.CheckIn, error) {
	const op = "postgres.CheckIn.ListByApproverSince"

	const query = `
		SELECT ` + checkinColumns + `
		FROM checkins
		WHERE approved_by = $1 AND checked_in_at >= $2
		ORDER BY checked_in_at ASC
	`

	return r.queryCheckIns(ctx, op, query, approverID, since)
}

func (r *CheckInRepo) List(ctx context.Context, filter domain.CheckInFilter) ([]*domain.CheckIn, error) {
	const op = "postgres.CheckIn.List"

	query := `SELECT ` + checkinColumns + ` FROM checkins WHERE 1=1`
	var args []any

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.GymID != nil {
		args = append(args, *filter.GymID)
		query += fmt.Sprintf(" AND gym_id = $%d", len(args))
	}
	if filter.ApproverID != nil {
		args = append(args, *filter.ApproverID)
		query += fmt.Sprintf(" AND approved_by = $%d", len(args))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		query += fmt.Sprintf(" AND checked_in_at >= $%d", len(args))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		query += fmt.Sprintf(" AND checked_in_at <= $%d", len(args))
	}
	query += ` ORDER BY checked_in_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	return r.queryCheckIns(ctx, op, query, args...)
}

func (r *CheckInRepo) queryCheckIns(ctx context.Context, op, query string, args ...any) ([]*domain.CheckIn, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var checkins []*domain.CheckIn
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		checkins = append(checkins, c)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return checkins, nil
}

func scanCheckIn(row pgx.Row) (*domain.CheckIn, error) {
	var c domain.CheckIn
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.GymID,
		&c.Method,
		&c.Status,
		&c.InitiatedBy,
		&c.ApprovedBy,
		&c.CheckedInAt,
		&c.AcceptedAt,
		&c.ExpiresAt,
		&c.CheckedOutAt,
		&c.TrainingMode,
		&c.Notes,
		&c.AppointmentID,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
