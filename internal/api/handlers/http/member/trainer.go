package member

import (
	"net/http"

	"log/slog"

	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
	"github.com/marcelpiva/myfit-api-sub002/internal/middleware"
)

func (h *Handler) LocationPush(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req domain.PushLocationRequest
	if !h.bind(w, r, &req) {
		return
	}

	loc, err := h.Sessions.PushLocation(r.Context(), actorID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, loc)
}

func (h *Handler) LocationDelete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	if err := h.Sessions.DeleteLocation(r.Context(), actorID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SessionStart(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req domain.PushLocationRequest
	if !h.bind(w, r, &req) {
		return
	}

	loc, err := h.Sessions.StartSession(r.Context(), actorID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("training session started", slog.String("trainer_id", actorID.String()))
	h.writeJSON(w, http.StatusOK, loc)
}

func (h *Handler) SessionEnd(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	studentIDs, err := h.Sessions.EndSession(r.Context(), actorID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("training session ended",
		slog.String("trainer_id", actorID.String()),
		slog.Int("checked_out", len(studentIDs)),
	)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"checked_out_students": studentIDs,
		"count":                len(studentIDs),
	})
}

func (h *Handler) SessionActive(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	session, err := h.Sessions.ActiveSession(r.Context(), actorID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, session)
}

func (h *Handler) NearbyTrainers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.actor(w, r); !ok {
		return
	}

	orgID, ok := middleware.OrganizationID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing X-Organization-ID"})
		return
	}

	lat, lng, err := parseCoords(r.URL.Query())
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid lat/lng"})
		return
	}

	trainers, err := h.Discovery.NearbyTrainers(r.Context(), lat, lng, orgID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"trainers": trainers,
		"count":    len(trainers),
	})
}

func (h *Handler) NearestGym(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.actor(w, r); !ok {
		return
	}

	lat, lng, err := parseCoords(r.URL.Query())
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid lat/lng"})
		return
	}

	var orgID *uuid.UUID
	if id, ok := middleware.OrganizationID(r.Context()); ok {
		orgID = &id
	}

	nearest, err := h.Discovery.NearestGym(r.Context(), lat, lng, orgID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if nearest == nil {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "no gyms found"})
		return
	}

	h.writeJSON(w, http.StatusOK, nearest)
}
