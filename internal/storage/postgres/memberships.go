package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/pkg/e"
)

// MembershipRepo reads the platform-owned membership tables. This
// subsystem never writes them.
type MembershipRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewMembershipRepo(pool *pgxpool.Pool, logger *slog.Logger) *MembershipRepo {
	return &MembershipRepo{pool: pool, logger: logger}
}

const membershipColumns = `m.user_id, m.organization_id, m.role, m.is_active, u.name, u.avatar_url`

func (r *MembershipRepo) ListTrainers(ctx context.Context, organizationID uuid.UUID) ([]*domain.Membership, error) {
	const op = "postgres.Membership.ListTrainers"

	const query = `
		SELECT ` + membershipColumns + `
		FROM memberships m
		JOIN users u ON u.id = m.user_id
		WHERE m.organization_id = $1 AND m.role IN ('trainer', 'coach') AND m.is_active = true
		ORDER BY u.name ASC
	`

	return r.queryMemberships(ctx, op, query, organizationID)
}

func (r *MembershipRepo) ListMemberships(ctx context.Context, organizationID, userID uuid.UUID) ([]*domain.Membership, error) {
	const op = "postgres.Membership.ListMemberships"

	const query = `
		SELECT ` + membershipColumns + `
		FROM memberships m
		JOIN users u ON u.id = m.user_id
		WHERE m.organization_id = $1 AND m.user_id = $2
	`

	return r.queryMemberships(ctx, op, query, organizationID, userID)
}

func (r *MembershipRepo) queryMemberships(ctx context.Context, op, query string, args ...any) ([]*domain.Membership, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var memberships []*domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return memberships, nil
}

func scanMembership(row pgx.Row) (*domain.Membership, error) {
	var m domain.Membership
	err := row.Scan(
		&m.UserID,
		&m.OrganizationID,
		&m.Role,
		&m.IsActive,
		&m.UserName,
		&m.UserAvatar,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
