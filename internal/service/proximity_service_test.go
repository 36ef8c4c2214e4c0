package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/internal/service"
	mock_service "github.com/marcelpiva/myfit-api-sub002/internal/service/mocks"
)

type proximityFixture struct {
	gyms        *mock_service.MockGymRepository
	checkins    *mock_service.MockCheckInRepository
	memberships *mock_service.MockMembershipDirectory
	locations   *mock_service.MockTrainerLocationStore
	svc         *service.ProximityService
}

func newProximityFixture(t *testing.T, ctrl *gomock.Controller) *proximityFixture {
	t.Helper()

	f := &proximityFixture{
		gyms:        mock_service.NewMockGymRepository(ctrl),
		checkins:    mock_service.NewMockCheckInRepository(ctrl),
		memberships: mock_service.NewMockMembershipDirectory(ctrl),
		locations:   mock_service.NewMockTrainerLocationStore(ctrl),
	}
	f.svc = service.NewProximityService(f.gyms, f.checkins, f.memberships, f.locations, testLogger(), testCheckInConfig())
	f.svc.Now = func() time.Time { return mustTime(t) }
	return f
}

func TestProximityService_NearestGym_PicksClosest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProximityFixture(t, ctrl)

	near := activeGym(uuid.New())
	near.Lat, near.Lng = 0.0005, 0 // ~55m
	far := activeGym(uuid.New())
	far.Lat, far.Lng = 0.01, 0 // ~1.1km

	f.gyms.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.Gym{far, near}, nil).Times(1)

	got, err := f.svc.NearestGym(context.Background(), 0, 0, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Gym.ID != near.ID {
		t.Fatalf("expected nearest gym %s got %s", near.ID, got.Gym.ID)
	}
	if !got.WithinRadius {
		t.Fatalf("55m against a 100m radius must be within")
	}
	if got.DistanceMeters < 50 || got.DistanceMeters > 60 {
		t.Fatalf("unexpected distance %v", got.DistanceMeters)
	}
}

func TestProximityService_NearestGym_OutOfRadius(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProximityFixture(t, ctrl)

	gym := activeGym(uuid.New())
	gym.Lat, gym.Lng = 0, 0
	gym.RadiusMeters = 100

	f.gyms.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.Gym{gym}, nil).Times(1)

	// ~500m away: still the nearest, but not within.
	got, err := f.svc.NearestGym(context.Background(), 0.0045, 0, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || got.WithinRadius {
		t.Fatalf("expected out-of-radius nearest, got %+v", got)
	}
}

func TestProximityService_NearestGym_EmptyDirectory(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProximityFixture(t, ctrl)

	f.gyms.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	got, err := f.svc.NearestGym(context.Background(), 0, 0, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for empty directory, got %+v", got)
	}
}

func TestProximityService_ResolveTrainerLocation_CheckInWins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProximityFixture(t, ctrl)
	trainerID := uuid.New()
	gym := activeGym(uuid.New())

	f.checkins.EXPECT().GetActiveForUser(gomock.Any(), trainerID).Return(&domain.CheckIn{
		ID:     uuid.New(),
		UserID: trainerID,
		GymID:  gym.ID,
		Status: domain.StatusConfirmed,
	}, nil).Times(1)
	f.gyms.EXPECT().Get(gomock.Any(), gym.ID).Return(gym, nil).Times(1)
	// The GPS store must not be consulted when a check-in resolves.

	got, err := f.svc.ResolveTrainerLocation(context.Background(), trainerID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Source != domain.SourceCheckIn {
		t.Fatalf("expected source=checkin got %q", got.Source)
	}
	if got.Lat != gym.Lat || got.Lng != gym.Lng {
		t.Fatalf("check-in resolution must use gym coordinates")
	}
	if got.GymID == nil || *got.GymID != gym.ID {
		t.Fatalf("expected gym binding, got %+v", got)
	}
}

func TestProximityService_ResolveTrainerLocation_GPSFallback(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProximityFixture(t, ctrl)
	trainerID := uuid.New()

	f.checkins.EXPECT().GetActiveForUser(gomock.Any(), trainerID).Return(nil, nil).Times(1)
	f.locations.EXPECT().Get(gomock.Any(), trainerID).Return(&domain.TrainerLocation{
		TrainerID: trainerID,
		Lat:       -23.5,
		Lng:       -46.6,
		ExpiresAt: mustTime(t).Add(time.Hour),
	}, nil).Times(1)

	got, err := f.svc.ResolveTrainerLocation(context.Background(), trainerID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Source != domain.SourceGPS || got.Lat != -23.5 {
		t.Fatalf("expected GPS resolution, got %+v", got)
	}
}

func TestProximityService_ResolveTrainerLocation_ExpiredGPS(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProximityFixture(t, ctrl)
	trainerID := uuid.New()

	f.checkins.EXPECT().GetActiveForUser(gomock.Any(), trainerID).Return(nil, nil).Times(1)
	f.locations.EXPECT().Get(gomock.Any(), trainerID).Return(&domain.TrainerLocation{
		TrainerID: trainerID,
		Lat:       1,
		Lng:       2,
		ExpiresAt: mustTime(t).Add(-time.Minute),
	}, nil).Times(1)

	got, err := f.svc.ResolveTrainerLocation(context.Background(), trainerID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != nil {
		t.Fatalf("expired location must resolve as unreachable, got %+v", got)
	}
}

func TestProximityService_NearbyTrainers_FiltersAndSorts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProximityFixture(t, ctrl)
	orgID := uuid.New()

	closeTrainer := uuid.New()
	farTrainer := uuid.New()
	outOfRange := uuid.New()
	unreachable := uuid.New()

	f.memberships.EXPECT().ListTrainers(gomock.Any(), orgID).Return([]*domain.Membership{
		{UserID: farTrainer, Role: domain.RoleTrainer, IsActive: true, UserName: "Far"},
		{UserID: closeTrainer, Role: domain.RoleCoach, IsActive: true, UserName: "Close"},
		{UserID: outOfRange, Role: domain.RoleTrainer, IsActive: true, UserName: "Away"},
		{UserID: unreachable, Role: domain.RoleTrainer, IsActive: true, UserName: "Ghost"},
	}, nil).Times(1)

	gps := func(id uuid.UUID, lat float64) {
		f.checkins.EXPECT().GetActiveForUser(gomock.Any(), id).Return(nil, nil).Times(1)
		f.locations.EXPECT().Get(gomock.Any(), id).Return(&domain.TrainerLocation{
			TrainerID: id,
			Lat:       lat,
			Lng:       0,
			ExpiresAt: mustTime(t).Add(time.Hour),
		}, nil).Times(1)
	}
	gps(farTrainer, 0.003)   // ~330m
	gps(closeTrainer, 0.001) // ~110m
	gps(outOfRange, 0.01)    // ~1.1km, beyond the 500m discovery radius

	f.checkins.EXPECT().GetActiveForUser(gomock.Any(), unreachable).Return(nil, nil).Times(1)
	f.locations.EXPECT().Get(gomock.Any(), unreachable).Return(nil, nil).Times(1)

	// Session annotation for the two survivors.
	f.locations.EXPECT().Get(gomock.Any(), closeTrainer).Return(&domain.TrainerLocation{
		TrainerID:     closeTrainer,
		SessionActive: true,
		ExpiresAt:     mustTime(t).Add(time.Hour),
	}, nil).AnyTimes()
	f.locations.EXPECT().Get(gomock.Any(), farTrainer).Return(nil, nil).AnyTimes()

	got, err := f.svc.NearbyTrainers(context.Background(), 0, 0, orgID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 nearby trainers, got %d", len(got))
	}
	if got[0].TrainerID != closeTrainer || got[1].TrainerID != farTrainer {
		t.Fatalf("expected ascending distance order, got %+v", got)
	}
	if !got[0].SessionActive {
		t.Fatalf("expected session annotation on the close trainer")
	}
}
