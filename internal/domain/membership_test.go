package domain_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
)

func member(role domain.Role, active bool) *domain.Membership {
	return &domain.Membership{
		UserID:         uuid.New(),
		OrganizationID: uuid.New(),
		Role:           role,
		IsActive:       active,
	}
}

func TestPrimaryMembership_Priority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		roles []domain.Role
		want  domain.Role
	}{
		{"owner_beats_admin", []domain.Role{domain.RoleAdmin, domain.RoleOwner}, domain.RoleOwner},
		{"admin_beats_trainer", []domain.Role{domain.RoleTrainer, domain.RoleAdmin}, domain.RoleAdmin},
		{"trainer_beats_student", []domain.Role{domain.RoleStudent, domain.RoleTrainer}, domain.RoleTrainer},
		{"coach_beats_student", []domain.Role{domain.RoleCoach, domain.RoleStudent}, domain.RoleCoach},
		{"single_student", []domain.Role{domain.RoleStudent}, domain.RoleStudent},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var ms []*domain.Membership
			for _, r := range tc.roles {
				ms = append(ms, member(r, true))
			}

			got, ok := domain.PrimaryMembership(ms)
			if !ok {
				t.Fatalf("expected a membership")
			}
			if got.Role != tc.want {
				t.Fatalf("primary role = %s, want %s", got.Role, tc.want)
			}
		})
	}
}

func TestPrimaryMembership_IgnoresInactive(t *testing.T) {
	t.Parallel()

	ms := []*domain.Membership{
		member(domain.RoleOwner, false),
		member(domain.RoleStudent, true),
	}

	got, ok := domain.PrimaryMembership(ms)
	if !ok {
		t.Fatalf("expected a membership")
	}
	if got.Role != domain.RoleStudent {
		t.Fatalf("primary role = %s, want student (owner is inactive)", got.Role)
	}
}

func TestPrimaryMembership_Empty(t *testing.T) {
	t.Parallel()

	if _, ok := domain.PrimaryMembership(nil); ok {
		t.Fatalf("expected no membership for empty input")
	}
	if _, ok := domain.PrimaryMembership([]*domain.Membership{member(domain.RoleOwner, false)}); ok {
		t.Fatalf("expected no membership when all inactive")
	}
}

func TestRoleCapabilities(t *testing.T) {
	t.Parallel()

	for _, r := range []domain.Role{domain.RoleOwner, domain.RoleAdmin, domain.RoleTrainer, domain.RoleCoach} {
		if !r.CanInitiateForStudent() {
			t.Fatalf("%s should be allowed to check in students", r)
		}
	}
	if domain.RoleStudent.CanInitiateForStudent() {
		t.Fatalf("student must not check in other students")
	}

	if !domain.RoleTrainer.IsTrainer() || !domain.RoleCoach.IsTrainer() {
		t.Fatalf("trainer/coach should be trainer-like")
	}
	if domain.RoleAdmin.IsTrainer() {
		t.Fatalf("admin is not trainer-like")
	}
}
