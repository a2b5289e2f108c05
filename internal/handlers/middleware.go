package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"wathiq/internal/models"
	"wathiq/internal/security"
	"wathiq/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const UserContextKey ContextKey = "user"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService *service.AuthService
	authLimiter *security.RateLimiter
	aiLimiter   *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService, authLimiter, aiLimiter *security.RateLimiter) *Middleware {
	return &Middleware{
		authService: authService,
		authLimiter: authLimiter,
		aiLimiter:   aiLimiter,
	}
}

// RequireAuth is middleware that requires a valid bearer token
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		user, err := m.authService.UserFromToken(token)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "invalid or expired token", nil)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// RateLimit throttles unauthenticated endpoints (login, register) by IP
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return limit(m.authLimiter, next)
}

// AILimit throttles AI-gateway-backed endpoints by IP. These endpoints are
// expensive upstream, so the budget is much tighter than the auth one.
func (m *Middleware) AILimit(next http.HandlerFunc) http.HandlerFunc {
	return limit(m.aiLimiter, next)
}

func limit(limiter *security.RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow(security.GetClientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, "too many requests, please slow down", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetUserFromContext retrieves the user from the request context
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
