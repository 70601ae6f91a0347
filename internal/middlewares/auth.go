package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/kebabmane/toDo/internal/jwt"
	"github.com/kebabmane/toDo/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware resolves the bearer token into an Identity stored in the request
// context. Requests without a valid token are rejected with 401.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "error", err, "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, tokenErrorMessage(err))
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "error", err, "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, tokenErrorMessage(err))
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				writeError(w, http.StatusUnauthorized, tokenErrorMessage(err))
				return
			}

			ctx = WithIdentity(ctx, Identity{UserID: userID, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrMissingToken):
		return "Authorization token is required"
	case errors.Is(err, jwt.ErrInvalidHeader):
		return "Invalid authorization header format"
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	default:
		return "Invalid token"
	}
}
