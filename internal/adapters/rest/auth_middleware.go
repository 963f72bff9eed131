package rest

import (
	"net/http"
	"property-service/internal/contextkeys"
	"property-service/internal/core/port"
	"property-service/internal/core/port/usecases_port"
	"strings"
)

// AuthMiddleware validates bearer tokens and puts the caller identity
// into the request context.
type AuthMiddleware struct {
	validateUC usecases_port.ValidateTokenUseCase
}

func NewAuthMiddleware(validateUC usecases_port.ValidateTokenUseCase) *AuthMiddleware {
	return &AuthMiddleware{validateUC: validateUC}
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}
	return tokenString
}

// Authenticate rejects requests without a valid bearer token.
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header with Bearer token required")
			return
		}

		claims, err := am.validateUC.Execute(r.Context(), tokenString)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := contextkeys.ContextWithIdentity(r.Context(), claims.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional attaches the identity when a valid bearer token is supplied
// and lets the request through anonymously otherwise. The listing
// endpoint uses it so owner scoping works for logged-in callers while
// everyone else still gets the public result set.
func (am *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := am.validateUC.Execute(r.Context(), tokenString)
		if err != nil {
			logger := contextkeys.LoggerFromContext(r.Context())
			logger.Warn("Ignoring invalid token on public endpoint", port.Fields{"path": r.URL.Path})
			next.ServeHTTP(w, r)
			return
		}

		ctx := contextkeys.ContextWithIdentity(r.Context(), claims.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects authenticated callers whose role is not in the
// allowed set. It must run after Authenticate.
func (am *AuthMiddleware) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := contextkeys.IdentityFromContext(r.Context())
			if !ok {
				WriteJSONError(w, http.StatusInternalServerError, "Missing identity in context")
				return
			}

			for _, role := range roles {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			WriteJSONError(w, http.StatusForbidden, "Insufficient permissions")
		})
	}
}
