package member

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/internal/middleware"
)

func (h *Handler) CheckInCreate(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req domain.CheckInRequestDTO
	if !h.bind(w, r, &req) {
		return
	}

	c, err := h.CheckIns.CheckIn(r.Context(), actorID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("check-in created",
		slog.String("id", c.ID.String()),
		slog.String("gym_id", c.GymID.String()),
	)
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) CheckInForStudent(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req domain.CheckInForStudentRequest
	if !h.bind(w, r, &req) {
		return
	}

	c, err := h.CheckIns.CheckInForStudent(r.Context(), actorID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("check-in initiated for student",
		slog.String("id", c.ID.String()),
		slog.String("student_id", c.UserID.String()),
	)
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) CheckInByCode(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req domain.CheckInByCodeRequest
	if !h.bind(w, r, &req) {
		return
	}

	c, err := h.CheckIns.CheckInByCode(r.Context(), actorID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) CheckInByLocation(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req domain.CheckInByLocationRequest
	if !h.bind(w, r, &req) {
		return
	}

	var orgID *uuid.UUID
	if id, ok := middleware.OrganizationID(r.Context()); ok {
		orgID = &id
	}

	result, err := h.CheckIns.CheckInByLocation(r.Context(), actorID, orgID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	// A near-miss is a valid answer, not an error.
	code := http.StatusCreated
	if !result.Success {
		code = http.StatusOK
	}
	h.writeJSON(w, code, result)
}

func (h *Handler) CheckInNearTrainer(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	orgID, ok := middleware.OrganizationID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing X-Organization-ID"})
		return
	}

	var req domain.CheckInNearTrainerRequest
	if !h.bind(w, r, &req) {
		return
	}

	c, err := h.CheckIns.CheckInNearTrainer(r.Context(), actorID, orgID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) CheckInAccept(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	c, err := h.CheckIns.Accept(r.Context(), actorID, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("check-in accepted", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) CheckInReject(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	c, err := h.CheckIns.Reject(r.Context(), actorID, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("check-in rejected", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req domain.CheckOutRequest
	if r.ContentLength > 0 {
		if !h.bind(w, r, &req) {
			return
		}
	}

	c, err := h.CheckIns.Checkout(r.Context(), actorID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("checked out",
		slog.String("id", c.ID.String()),
		slog.Int("duration_min", c.DurationMinutes()),
	)
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) CheckInActive(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	c, err := h.CheckIns.GetActive(r.Context(), actorID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if c == nil {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "no active check-in"})
		return
	}

	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) CheckInPending(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	pending, err := h.CheckIns.ListPending(r.Context(), actorID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"pending": pending,
		"count":   len(pending),
	})
}

func (h *Handler) CheckInHistory(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	filter := domain.CheckInFilter{
		UserID: &actorID,
		Limit:  parseInt(q.Get("limit"), 20),
		Offset: parseInt(q.Get("offset"), 0),
	}
	if raw := q.Get("gym_id"); raw != "" {
		gymID, err := uuid.Parse(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid gym_id"})
			return
		}
		filter.GymID = &gymID
	}
	if raw := q.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid from date"})
			return
		}
		filter.FromDate = &from
	}
	if raw := q.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid to date"})
			return
		}
		filter.ToDate = &to
	}

	items, err := h.CheckIns.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"checkins": items,
		"count":    len(items),
	})
}

func (h *Handler) CheckInStats(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	days := parseInt(r.URL.Query().Get("days"), 30)

	stats, err := h.CheckIns.Stats(r.Context(), actorID, days)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
