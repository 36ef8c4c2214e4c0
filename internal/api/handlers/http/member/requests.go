package member

import (
	"net/http"

	"log/slog"

	"github.com/google/uuid"

	"github.com/marcelpiva/myfit-api-sub002/internal/domain"
)

func (h *Handler) RequestCreate(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	var dto domain.CreateCheckInRequestDTO
	if !h.bind(w, r, &dto) {
		return
	}

	req, err := h.Requests.Create(r.Context(), actorID, dto)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("check-in request created",
		slog.String("id", req.ID.String()),
		slog.String("approver_id", req.ApproverID.String()),
	)
	h.writeJSON(w, http.StatusCreated, req)
}

func (h *Handler) RequestRespond(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var dto domain.RespondToRequestDTO
	if !h.bind(w, r, &dto) {
		return
	}

	resp, err := h.Requests.Respond(r.Context(), actorID, id, dto)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("check-in request responded",
		slog.String("id", id.String()),
		slog.Bool("approved", dto.Approved),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

// RequestInbox lists pending requests awaiting the caller's approval.
func (h *Handler) RequestInbox(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	var gymID *uuid.UUID
	if raw := r.URL.Query().Get("gym_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid gym_id"})
			return
		}
		gymID = &id
	}

	items, err := h.Requests.ListPendingForApprover(r.Context(), actorID, gymID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"requests": items,
		"count":    len(items),
	})
}

// RequestList lists the caller's own outgoing requests.
func (h *Handler) RequestList(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()

	var status *domain.RequestStatus
	if raw := q.Get("status"); raw != "" {
		s := domain.RequestStatus(raw)
		switch s {
		case domain.RequestPending, domain.RequestConfirmed, domain.RequestRejected:
			status = &s
		default:
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
			return
		}
	}

	items, err := h.Requests.ListForUser(r.Context(), actorID, status, parseInt(q.Get("limit"), 20))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"requests": items,
		"count":    len(items),
	})
}
