package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/internal/service"
	mock_service "github.com/marcelpiva/myfit-api-sub002/internal/service/mocks"
	"github.com/marcelpiva/myfit-api-sub002/pkg/e"
)

func newGymService(t *testing.T, ctrl *gomock.Controller) (*service.GymService, *mock_service.MockGymRepository) {
	t.Helper()

	gyms := mock_service.NewMockGymRepository(ctrl)
	svc := service.NewGymService(gyms, testLogger(), 100)
	svc.Now = func() time.Time { return mustTime(t) }
	return svc, gyms
}

func TestGymService_Create_DefaultsRadius(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gyms := newGymService(t, ctrl)

	var created *domain.Gym
	gyms.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *domain.Gym) error {
			created = g
			return nil
		}).Times(1)

	got, err := svc.Create(context.Background(), domain.CreateGymRequest{
		OrganizationID: uuid.New(),
		Name:           "Main Unit",
		Address:        "Av. Paulista 1000",
		Lat:            -23.5614,
		Lng:            -46.6558,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.RadiusMeters != 100 {
		t.Fatalf("expected default radius 100 got %d", created.RadiusMeters)
	}
	if !got.IsActive {
		t.Fatalf("new gym must be active")
	}
}

func TestGymService_Create_BadCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newGymService(t, ctrl)

	_, err := svc.Create(context.Background(), domain.CreateGymRequest{
		OrganizationID: uuid.New(),
		Name:           "Nowhere",
		Lat:            -91,
		Lng:            0,
	})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates got %v", err)
	}
}

func TestGymService_Create_RadiusOutOfBounds(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newGymService(t, ctrl)

	for _, radius := range []int{5, 1500} {
		_, err := svc.Create(context.Background(), domain.CreateGymRequest{
			OrganizationID: uuid.New(),
			Name:           "Edge",
			Lat:            0,
			Lng:            0,
			RadiusMeters:   radius,
		})
		if !errors.Is(err, e.ErrInvalidInput) {
			t.Fatalf("radius=%d: expected ErrInvalidInput got %v", radius, err)
		}
	}
}

func TestGymService_Update_Partial(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gyms := newGymService(t, ctrl)
	existing := activeGym(uuid.New())

	name := "Renamed Unit"
	radius := 250

	var updated *domain.Gym
	gomock.InOrder(
		gyms.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil).Times(1),
		gyms.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *domain.Gym) error {
				updated = g
				return nil
			}).Times(1),
	)

	got, err := svc.Update(context.Background(), existing.ID, domain.UpdateGymRequest{
		Name:         &name,
		RadiusMeters: &radius,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Name != name || updated.RadiusMeters != radius {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if got.Lat != existing.Lat || got.Lng != existing.Lng {
		t.Fatalf("untouched fields must survive the patch")
	}
}

func TestGymService_Deactivate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gyms := newGymService(t, ctrl)
	existing := activeGym(uuid.New())

	gomock.InOrder(
		gyms.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil).Times(1),
		gyms.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *domain.Gym) error {
				if g.IsActive {
					t.Fatalf("expected inactive gym")
				}
				return nil
			}).Times(1),
	)

	if err := svc.Deactivate(context.Background(), existing.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestGymService_List_CapsLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gyms := newGymService(t, ctrl)

	gyms.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.GymFilter) ([]*domain.Gym, error) {
			if filter.Limit != 50 {
				t.Fatalf("expected capped limit 50, got %d", filter.Limit)
			}
			return nil, nil
		}).Times(1)

	if _, err := svc.List(context.Background(), domain.GymFilter{Limit: 500}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
