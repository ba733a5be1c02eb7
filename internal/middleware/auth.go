package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/forgo/biblio/internal/model"
	"github.com/forgo/biblio/pkg/jwt"
)

// AuthService defines the interface for token validation
type AuthService interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// ClaimsKey is the context key for JWT claims
const ClaimsKey contextKey = "claims"

// UsernameKey is the context key for the member's username
const UsernameKey contextKey = "username"

// RoleKey is the context key for the member's role
const RoleKey contextKey = "role"

// Auth returns a middleware that validates bearer tokens and stores the
// member's identity in the request context
func Auth(authService AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				model.NewUnauthorizedError("missing authorization header").WriteJSON(w)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				model.NewUnauthorizedError("invalid authorization header format").WriteJSON(w)
				return
			}

			claims, err := authService.ValidateToken(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, jwt.ErrTokenExpired):
					model.NewUnauthorizedError("token expired").WriteJSON(w)
				case errors.Is(err, jwt.ErrInvalidSignature):
					model.NewUnauthorizedError("invalid token signature").WriteJSON(w)
				default:
					model.NewUnauthorizedError("invalid token").WriteJSON(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), MemberIDKey, claims.MemberID)
			ctx = context.WithValue(ctx, UsernameKey, claims.Username)
			ctx = context.WithValue(ctx, RoleKey, model.MemberRole(claims.Role))
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns a middleware that allows only the given roles through.
// It must run after Auth. An empty role in context means the request never
// passed authentication and is rejected outright.
func RequireRole(roles ...model.MemberRole) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := GetRole(r.Context())
			if role == "" {
				model.NewUnauthorizedError("authentication required").WriteJSON(w)
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			model.NewForbiddenError("insufficient role").WriteJSON(w)
		})
	}
}

// RequireStaff allows librarians and admins through
func RequireStaff() Middleware {
	return RequireRole(model.MemberRoleLibrarian, model.MemberRoleAdmin)
}

// GetMemberID extracts the authenticated member's ID from context
func GetMemberID(ctx context.Context) string {
	if id, ok := ctx.Value(MemberIDKey).(string); ok {
		return id
	}
	return ""
}

// GetUsername extracts the authenticated member's username from context
func GetUsername(ctx context.Context) string {
	if username, ok := ctx.Value(UsernameKey).(string); ok {
		return username
	}
	return ""
}

// GetRole extracts the authenticated member's role from context
func GetRole(ctx context.Context) model.MemberRole {
	if role, ok := ctx.Value(RoleKey).(model.MemberRole); ok {
		return role
	}
	return ""
}

// GetClaims extracts the JWT claims from context
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}
