//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id uuid PRIMARY KEY,
			name text NOT NULL,
			avatar_url text
		);

		CREATE TABLE IF NOT EXISTS memberships (
			user_id uuid NOT NULL REFERENCES users(id),
			organization_id uuid NOT NULL,
			role text NOT NULL,
			is_active boolean NOT NULL DEFAULT true,
			PRIMARY KEY (user_id, organization_id, role)
		);

		CREATE TABLE IF NOT EXISTS gyms (
			id uuid PRIMARY KEY,
			organization_id uuid NOT NULL,
			name text NOT NULL,
			address text NOT NULL DEFAULT '',
			phone text,
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			radius_meters integer NOT NULL,
			is_active boolean NOT NULL DEFAULT true,
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS checkins (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL,
			gym_id uuid NOT NULL REFERENCES gyms(id),
			method text NOT NULL,
			status text NOT NULL,
			initiated_by uuid,
			approved_by uuid,
			checked_in_at timestamptz NOT NULL,
			accepted_at timestamptz,
			expires_at timestamptz,
			checked_out_at timestamptz,
			training_mode text,
			notes text,
			appointment_id uuid
		);

		CREATE TABLE IF NOT EXISTS checkin_codes (
			id uuid PRIMARY KEY,
			gym_id uuid NOT NULL REFERENCES gyms(id),
			code text NOT NULL UNIQUE,
			expires_at timestamptz,
			max_uses integer,
			uses_count integer NOT NULL DEFAULT 0,
			is_active boolean NOT NULL DEFAULT true,
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS checkin_requests (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL,
			gym_id uuid NOT NULL REFERENCES gyms(id),
			approver_id uuid NOT NULL,
			status text NOT NULL,
			reason text,
			response_note text,
			created_at timestamptz NOT NULL,
			expires_at timestamptz,
			responded_at timestamptz
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE checkin_requests, checkin_codes, checkins, gyms, memberships, users`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func seedGym(t *testing.T) *domain.Gym {
	t.Helper()

	gym := &domain.Gym{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Name:           "Test Gym",
		Address:        "1 Test Street",
		Lat:            -23.5505,
		Lng:            -46.6333,
		RadiusMeters:   100,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := NewGymRepo(testPool, testLogger()).Create(context.Background(), gym); err != nil {
		t.Fatalf("seed gym: %v", err)
	}
	return gym
}

// --- gyms ---

func TestGymRepo_CreateGetUpdate(t *testing.T) {
	truncateAll(t)

	repo := NewGymRepo(testPool, testLogger())
	gym := seedGym(t)

	got, err := repo.Get(context.Background(), gym.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != gym.Name || got.Lat != gym.Lat || got.RadiusMeters != gym.RadiusMeters {
		t.Fatalf("round-trip mismatch: %+v", got)
	}

	got.Name = "Renamed"
	got.IsActive = false
	if err := repo.Update(context.Background(), got); err != nil {
		t.Fatalf("Update: %v", err)
	}

	again, err := repo.Get(context.Background(), gym.ID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if again.Name != "Renamed" || again.IsActive {
		t.Fatalf("update not persisted: %+v", again)
	}
}

func TestGymRepo_Get_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewGymRepo(testPool, testLogger())
	_, err := repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestGymRepo_List_ActiveOnlyAndOrgFilter(t *testing.T) {
	truncateAll(t)

	repo := NewGymRepo(testPool, testLogger())
	orgID := uuid.New()

	for i, active := range []bool{true, true, false} {
		gym := &domain.Gym{
			ID:             uuid.New(),
			OrganizationID: orgID,
			Name:           fmt.Sprintf("Gym %d", i),
			Address:        "Somewhere",
			Lat:            1,
			Lng:            1,
			RadiusMeters:   100,
			IsActive:       active,
			CreatedAt:      time.Now().UTC(),
		}
		if err := repo.Create(context.Background(), gym); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	_ = seedGym(t) // other org

	got, err := repo.List(context.Background(), domain.GymFilter{OrganizationID: &orgID, ActiveOnly: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 active gyms for org, got %d", len(got))
	}
}

// --- checkins ---

func TestCheckInRepo_ActiveSlot(t *testing.T) {
	truncateAll(t)

	repo := NewCheckInRepo(testPool, testLogger())
	gym := seedGym(t)
	userID := uuid.New()

	active, err := repo.GetActiveForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetActiveForUser: %v", err)
	}
	if active != nil {
		t.Fatalf("expected no active check-in, got %+v", active)
	}

	c := &domain.CheckIn{
		ID:          uuid.New(),
		UserID:      userID,
		GymID:       gym.ID,
		Method:      domain.MethodManual,
		Status:      domain.StatusConfirmed,
		CheckedInAt: time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	active, err = repo.GetActiveForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetActiveForUser: %v", err)
	}
	if active == nil || active.ID != c.ID {
		t.Fatalf("expected the created check-in, got %+v", active)
	}

	now := time.Now().UTC()
	active.CheckedOutAt = &now
	if err := repo.Update(context.Background(), active); err != nil {
		t.Fatalf("Update: %v", err)
	}

	active, err = repo.GetActiveForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetActiveForUser after checkout: %v", err)
	}
	if active != nil {
		t.Fatalf("checked-out record must not be active, got %+v", active)
	}
}

func TestCheckInRepo_PendingAndApproverQueries(t *testing.T) {
	truncateAll(t)

	repo := NewCheckInRepo(testPool, testLogger())
	gym := seedGym(t)
	trainerID := uuid.New()
	studentID := uuid.New()

	base := time.Now().UTC().Add(-time.Hour)
	expires := base.Add(5 * time.Minute)

	pending := &domain.CheckIn{
		ID:          uuid.New(),
		UserID:      studentID,
		GymID:       gym.ID,
		Method:      domain.MethodManual,
		Status:      domain.StatusPendingAcceptance,
		InitiatedBy: &trainerID,
		ApprovedBy:  &trainerID,
		CheckedInAt: base,
		ExpiresAt:   &expires,
	}
	if err := repo.Create(context.Background(), pending); err != nil {
		t.Fatalf("Create pending: %v", err)
	}

	confirmed := &domain.CheckIn{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		GymID:       gym.ID,
		Method:      domain.MethodRequest,
		Status:      domain.StatusConfirmed,
		ApprovedBy:  &trainerID,
		CheckedInAt: base.Add(time.Minute),
	}
	if err := repo.Create(context.Background(), confirmed); err != nil {
		t.Fatalf("Create confirmed: %v", err)
	}

	got, err := repo.ListPendingForUser(context.Background(), studentID)
	if err != nil {
		t.Fatalf("ListPendingForUser: %v", err)
	}
	if len(got) != 1 || got[0].ID != pending.ID {
		t.Fatalf("unexpected pending list: %d", len(got))
	}
	if got[0].ExpiresAt == nil || !got[0].ExpiresAt.Equal(expires) {
		t.Fatalf("expires_at round-trip mismatch: %+v", got[0].ExpiresAt)
	}

	open, err := repo.ListOpenByApprover(context.Background(), trainerID)
	if err != nil {
		t.Fatalf("ListOpenByApprover: %v", err)
	}
	if len(open) != 2 {
		t.Fatalf("expected 2 open check-ins for approver, got %d", len(open))
	}

	since, err := repo.ListByApproverSince(context.Background(), trainerID, base.Add(30*time.Second))
	if err != nil {
		t.Fatalf("ListByApproverSince: %v", err)
	}
	if len(since) != 1 || since[0].ID != confirmed.ID {
		t.Fatalf("unexpected since list: %d", len(since))
	}
}

func TestCheckInRepo_ListFilter(t *testing.T) {
	truncateAll(t)

	repo := NewCheckInRepo(testPool, testLogger())
	gym := seedGym(t)
	userID := uuid.New()

	old := time.Now().UTC().Add(-72 * time.Hour)
	recent := time.Now().UTC().Add(-time.Hour)

	for _, at := range []time.Time{old, recent} {
		out := at.Add(30 * time.Minute)
		c := &domain.CheckIn{
			ID:           uuid.New(),
			UserID:       userID,
			GymID:        gym.ID,
			Method:       domain.MethodManual,
			Status:       domain.StatusConfirmed,
			CheckedInAt:  at,
			CheckedOutAt: &out,
		}
		if err := repo.Create(context.Background(), c); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	from := time.Now().UTC().Add(-24 * time.Hour)
	got, err := repo.List(context.Background(), domain.CheckInFilter{UserID: &userID, FromDate: &from, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 check-in in window, got %d", len(got))
	}
}

// --- codes ---

func TestCodeRepo_RoundTripAndUniqueness(t *testing.T) {
	truncateAll(t)

	repo := NewCodeRepo(testPool, testLogger())
	gym := seedGym(t)

	code := &domain.CheckInCode{
		ID:        uuid.New(),
		GymID:     gym.ID,
		Code:      "ABCD1234",
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), code); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := &domain.CheckInCode{
		ID:        uuid.New(),
		GymID:     gym.ID,
		Code:      "ABCD1234",
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	err := repo.Create(context.Background(), dup)
	if !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got: %v", err)
	}

	got, err := repo.GetByValue(context.Background(), "ABCD1234")
	if err != nil {
		t.Fatalf("GetByValue: %v", err)
	}
	if got == nil || got.ID != code.ID {
		t.Fatalf("unexpected code: %+v", got)
	}

	missing, err := repo.GetByValue(context.Background(), "ZZZZ9999")
	if err != nil {
		t.Fatalf("GetByValue missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown code, got %+v", missing)
	}

	got.UsesCount = 3
	got.IsActive = false
	if err := repo.Update(context.Background(), got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	again, _ := repo.GetByValue(context.Background(), "ABCD1234")
	if again.UsesCount != 3 || again.IsActive {
		t.Fatalf("update not persisted: %+v", again)
	}
}

// --- requests ---

func TestRequestRepo_Lifecycle(t *testing.T) {
	truncateAll(t)

	repo := NewRequestRepo(testPool, testLogger())
	gym := seedGym(t)
	userID := uuid.New()
	approverID := uuid.New()

	expires := time.Now().UTC().Add(20 * time.Minute)
	req := &domain.CheckInRequest{
		ID:         uuid.New(),
		UserID:     userID,
		GymID:      gym.ID,
		ApproverID: approverID,
		Status:     domain.RequestPending,
		CreatedAt:  time.Now().UTC(),
		ExpiresAt:  &expires,
	}
	if err := repo.Create(context.Background(), req); err != nil {
		t.Fatalf("Create: %v", err)
	}

	inbox, err := repo.ListPendingForApprover(context.Background(), approverID, nil)
	if err != nil {
		t.Fatalf("ListPendingForApprover: %v", err)
	}
	if len(inbox) != 1 || inbox[0].ID != req.ID {
		t.Fatalf("unexpected inbox: %d", len(inbox))
	}

	now := time.Now().UTC()
	note := "looks good"
	req.Status = domain.RequestConfirmed
	req.RespondedAt = &now
	req.ResponseNote = &note
	if err := repo.Update(context.Background(), req); err != nil {
		t.Fatalf("Update: %v", err)
	}

	inbox, err = repo.ListPendingForApprover(context.Background(), approverID, nil)
	if err != nil {
		t.Fatalf("ListPendingForApprover after respond: %v", err)
	}
	if len(inbox) != 0 {
		t.Fatalf("answered request must leave the inbox")
	}

	pending := domain.RequestConfirmed
	mine, err := repo.ListForUser(context.Background(), userID, &pending, 10)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(mine) != 1 || mine[0].ResponseNote == nil || *mine[0].ResponseNote != note {
		t.Fatalf("unexpected user history: %+v", mine)
	}
}

// --- memberships ---

func TestMembershipRepo_ListTrainers(t *testing.T) {
	truncateAll(t)

	repo := NewMembershipRepo(testPool, testLogger())
	orgID := uuid.New()

	seed := func(name, role string, active bool) uuid.UUID {
		id := uuid.New()
		if _, err := testPool.Exec(context.Background(),
			`INSERT INTO users (id, name) VALUES ($1, $2)`, id, name); err != nil {
			t.Fatalf("seed user: %v", err)
		}
		if _, err := testPool.Exec(context.Background(),
			`INSERT INTO memberships (user_id, organization_id, role, is_active) VALUES ($1, $2, $3, $4)`,
			id, orgID, role, active); err != nil {
			t.Fatalf("seed membership: %v", err)
		}
		return id
	}

	trainerID := seed("Alex", "trainer", true)
	seed("Brook", "coach", true)
	seed("Casey", "student", true)
	seed("Drew", "trainer", false)

	got, err := repo.ListTrainers(context.Background(), orgID)
	if err != nil {
		t.Fatalf("ListTrainers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 active trainers, got %d", len(got))
	}

	ms, err := repo.ListMemberships(context.Background(), orgID, trainerID)
	if err != nil {
		t.Fatalf("ListMemberships: %v", err)
	}
	if len(ms) != 1 || ms[0].Role != domain.RoleTrainer || ms[0].UserName != "Alex" {
		t.Fatalf("unexpected memberships: %+v", ms)
	}
}
