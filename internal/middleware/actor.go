package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey int

const (
	actorIDKey ctxKey = iota
	orgIDKey
)

// Actor resolves the calling member from the X-User-ID header set by
// the upstream auth gateway. Requests without a parseable user id are
// rejected before they reach a handler. X-Organization-ID is optional
// and only needed by the discovery endpoints.
func Actor() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-User-ID")
			if raw == "" {
				http.Error(w, "missing X-User-ID", http.StatusUnauthorized)
				return
			}
			actorID, err := uuid.Parse(raw)
			if err != nil {
				http.Error(w, "invalid X-User-ID", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), actorIDKey, actorID)

			if rawOrg := r.Header.Get("X-Organization-ID"); rawOrg != "" {
				orgID, err := uuid.Parse(rawOrg)
				if err != nil {
					http.Error(w, "invalid X-Organization-ID", http.StatusBadRequest)
					return
				}
				ctx = context.WithValue(ctx, orgIDKey, orgID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorID returns the authenticated member id. The bool is false only
// when the handler is reached without the Actor middleware.
func ActorID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actorIDKey).(uuid.UUID)
	return id, ok
}

func OrganizationID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(orgIDKey).(uuid.UUID)
	return id, ok
}

// WithActor is used by handler tests to seed the request context.
func WithActor(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, actorIDKey, actorID)
}

func WithOrganization(ctx context.Context, orgID uuid.UUID) context.Context {
	return context.WithValue(ctx, orgIDKey, orgID)
}
