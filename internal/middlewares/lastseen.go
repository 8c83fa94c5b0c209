package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/zodin-dev/symphony/internal/logger"
)

// LastSeenToucher updates a user's last-seen timestamp.
type LastSeenToucher interface {
	TouchLastSeen(ctx context.Context, userID uuid.UUID) error
}

// LastSeenMiddleware stamps the authenticated user's last_seen on every
// request. Runs after AuthMiddleware; anonymous requests pass through. A
// failed touch is logged but never blocks the request.
func LastSeenMiddleware(toucher LastSeenToucher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if userID := GetUserIDFromContext(ctx); userID != uuid.Nil {
				if err := toucher.TouchLastSeen(ctx, userID); err != nil {
					logger.Log.Errorw("failed to touch last_seen", "user_id", userID, "err", err)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
