package server

import (
	"context"
	"net/http"
	"strings"
)

const keyIDKey contextKey = "key_id"

// authenticate requires a "Bearer <token>" Authorization header and
// validates it against s.deps.Issuer, stashing the resolved key ID in
// the request context for rateLimit and the audit log to key on.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		keyID, err := s.deps.Issuer.ValidateToken(token)
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), keyIDKey, keyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// keyIDFromContext retrieves the key ID resolved by authenticate.
func keyIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyIDKey).(string)
	return id
}

// rateLimit enforces s.deps.Limiter against the authenticated key ID,
// rejecting with 429 and a Retry-After hint once the window is spent.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keyID := keyIDFromContext(r.Context())

		info, err := s.deps.Limiter.Allow(r.Context(), keyID)
		if err != nil {
			http.Error(w, "rate limit check failed", http.StatusInternalServerError)
			return
		}
		if !info.Allowed {
			w.Header().Set("Retry-After", info.ResetAt.Format(http.TimeFormat))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
