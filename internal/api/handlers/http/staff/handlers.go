package staff

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
	"github.com/marcelpiva/myfit-api-sub002/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Gyms interface {
	Create(ctx context.Context, req domain.CreateGymRequest) (*domain.Gym, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Gym, error)
	List(ctx context.Context, filter domain.GymFilter) ([]*domain.Gym, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateGymRequest) (*domain.Gym, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type Codes interface {
	Create(ctx context.Context, req domain.CreateCodeRequest) (*domain.CheckInCode, error)
	Deactivate(ctx context.Context, value string) error
}

type Handler struct {
	logger *slog.Logger
	Gyms   Gyms
	Codes  Codes
}

func NewHandler(logger *slog.Logger, gyms Gyms, codes Codes) *Handler {
	return &Handler{
		logger: logger,
		Gyms:   gyms,
		Codes:  codes,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) GymCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateGymRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	gym, err := h.Gyms.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("gym created", slog.String("id", gym.ID.String()), slog.String("name", gym.Name))
	h.writeJSON(w, http.StatusCreated, gym)
}

func (h *Handler) GymList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	filter := domain.GymFilter{
		ActiveOnly: q.Get("active_only") == "true",
		Limit:      parseInt(q.Get("limit"), 50),
		Offset:     parseInt(q.Get("offset"), 0),
	}
	if raw := q.Get("organization_id"); raw != "" {
		orgID, err := uuid.Parse(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid organization_id"})
			return
		}
		filter.OrganizationID = &orgID
	}

	gyms, err := h.Gyms.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("gyms listed", slog.Int("count", len(gyms)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"gyms":  gyms,
		"count": len(gyms),
	})
}

func (h *Handler) GymGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	gym, err := h.Gyms.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, gym)
}

func (h *Handler) GymUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateGymRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	gym, err := h.Gyms.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("gym updated", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, gym)
}

func (h *Handler) GymDeactivate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Gyms.Deactivate(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("gym deactivated", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CodeCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	code, err := h.Codes.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("code created", slog.String("gym_id", code.GymID.String()))
	h.writeJSON(w, http.StatusCreated, code)
}

func (h *Handler) CodeDeactivate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	value := chi.URLParam(r, "value")
	if value == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing code value"})
		return
	}

	if err := h.Codes.Deactivate(r.Context(), value); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("code deactivated")
	w.WriteHeader(http.StatusNoContent)
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
