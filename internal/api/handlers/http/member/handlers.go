package member

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/internal/middleware"
	"github.com/marcelpiva/myfit-api-sub002/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type CheckIns interface {
	CheckIn(ctx context.Context, userID uuid.UUID, req domain.CheckInRequestDTO) (*domain.CheckIn, error)
	CheckInForStudent(ctx context.Context, initiatorID uuid.UUID, req domain.CheckInForStudentRequest) (*domain.CheckIn, error)
	CheckInByCode(ctx context.Context, userID uuid.UUID, req domain.CheckInByCodeRequest) (*domain.CheckIn, error)
	CheckInByLocation(ctx context.Context, userID uuid.UUID, organizationID *uuid.UUID, req domain.CheckInByLocationRequest) (*domain.LocationCheckInResult, error)
	CheckInNearTrainer(ctx context.Context, userID, organizationID uuid.UUID, req domain.CheckInNearTrainerRequest) (*domain.CheckIn, error)
	Accept(ctx context.Context, actorID, checkinID uuid.UUID) (*domain.CheckIn, error)
	Reject(ctx context.Context, actorID, checkinID uuid.UUID) (*domain.CheckIn, error)
	Checkout(ctx context.Context, userID uuid.UUID, req domain.CheckOutRequest) (*domain.CheckIn, error)
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.CheckIn, error)
	List(ctx context.Context, filter domain.CheckInFilter) ([]*domain.CheckIn, error)
	ListPending(ctx context.Context, userID uuid.UUID) ([]*domain.PendingCheckIn, error)
	Stats(ctx context.Context, userID uuid.UUID, days int) (*domain.CheckInStats, error)
}

type Requests interface {
	Create(ctx context.Context, userID uuid.UUID, dto domain.CreateCheckInRequestDTO) (*domain.CheckInRequest, error)
	Respond(ctx context.Context, actorID, requestID uuid.UUID, dto domain.RespondToRequestDTO) (*domain.RequestResponse, error)
	ListPendingForApprover(ctx context.Context, approverID uuid.UUID, gymID *uuid.UUID) ([]*domain.CheckInRequest, error)
	ListForUser(ctx context.Context, userID uuid.UUID, status *domain.RequestStatus, limit int) ([]*domain.CheckInRequest, error)
}

type TrainerSessions interface {
	PushLocation(ctx context.Context, trainerID uuid.UUID, req domain.PushLocationRequest) (*domain.TrainerLocation, error)
	DeleteLocation(ctx context.Context, trainerID uuid.UUID) error
	StartSession(ctx context.Context, trainerID uuid.UUID, req domain.PushLocationRequest) (*domain.TrainerLocation, error)
	EndSession(ctx context.Context, trainerID uuid.UUID) ([]uuid.UUID, error)
	ActiveSession(ctx context.Context, trainerID uuid.UUID) (*domain.ActiveSession, error)
}

type Discovery interface {
	NearestGym(ctx context.Context, lat, lng float64, organizationID *uuid.UUID) (*domain.NearbyGym, error)
	NearbyTrainers(ctx context.Context, lat, lng float64, organizationID uuid.UUID) ([]*domain.NearbyTrainer, error)
}

type Handler struct {
	logger    *slog.Logger
	CheckIns  CheckIns
	Requests  Requests
	Sessions  TrainerSessions
	Discovery Discovery
}

func NewHandler(logger *slog.Logger, checkins CheckIns, requests Requests, sessions TrainerSessions, discovery Discovery) *Handler {
	return &Handler{
		logger:    logger,
		CheckIns:  checkins,
		Requests:  requests,
		Sessions:  sessions,
		Discovery: discovery,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// actor extracts the authenticated member id. The Actor middleware
// guarantees it on every member route; the guard is for tests hitting
// handlers directly.
func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	actorID, ok := middleware.ActorID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return uuid.Nil, false
	}
	return actorID, true
}

func (h *Handler) bind(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		h.log(r).Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := validator.ValidateStruct(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseCoords(q map[string][]string) (lat, lng float64, err error) {
	get := func(key string) string {
		if vs := q[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}
	lat, err = strconv.ParseFloat(get("lat"), 64)
	if err != nil {
		return 0, 0, err
	}
	lng, err = strconv.ParseFloat(get("lng"), 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}
