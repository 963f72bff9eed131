package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidateUseCase struct {
	claims *domain.Claims
}

func (s *stubValidateUseCase) Execute(ctx context.Context, tokenString string) (*domain.Claims, error) {
	if s.claims == nil {
		return nil, domain.ErrTokenInvalid
	}
	return s.claims, nil
}

func identityProbe(t *testing.T, captured **domain.Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, ok := contextkeys.IdentityFromContext(r.Context()); ok {
			*captured = &identity
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	userID := uuid.New()
	am := NewAuthMiddleware(&stubValidateUseCase{claims: &domain.Claims{UserID: userID, Role: domain.RoleUser}})

	var captured *domain.Identity
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()

	am.Authenticate(identityProbe(t, &captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, userID, captured.UserID)
}

func TestAuthenticate_RejectsMissingAndMalformedHeaders(t *testing.T) {
	am := NewAuthMiddleware(&stubValidateUseCase{claims: &domain.Claims{UserID: uuid.New()}})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *domain.Identity
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			am.Authenticate(identityProbe(t, &captured)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, captured)
		})
	}
}

func TestAuthenticate_RejectsInvalidToken(t *testing.T) {
	am := NewAuthMiddleware(&stubValidateUseCase{claims: nil})

	var captured *domain.Identity
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	am.Authenticate(identityProbe(t, &captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
}

func TestOptional_AnonymousPassesThrough(t *testing.T) {
	am := NewAuthMiddleware(&stubValidateUseCase{claims: nil})

	var captured *domain.Identity
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	am.Optional(identityProbe(t, &captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, captured)
}

func TestOptional_InvalidTokenStaysAnonymous(t *testing.T) {
	am := NewAuthMiddleware(&stubValidateUseCase{claims: nil})

	var captured *domain.Identity
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	am.Optional(identityProbe(t, &captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "the public listing never 401s")
	assert.Nil(t, captured)
}

func TestOptional_ValidTokenAttachesIdentity(t *testing.T) {
	userID := uuid.New()
	am := NewAuthMiddleware(&stubValidateUseCase{claims: &domain.Claims{UserID: userID, Role: domain.RoleAgent}})

	var captured *domain.Identity
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid")
	rec := httptest.NewRecorder()

	am.Optional(identityProbe(t, &captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, domain.RoleAgent, captured.Role)
}

func TestRequireRole(t *testing.T) {
	am := NewAuthMiddleware(&stubValidateUseCase{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	t.Run("allowed role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = req.WithContext(contextkeys.ContextWithIdentity(req.Context(), domain.Identity{UserID: uuid.New(), Role: domain.RoleAdmin}))
		rec := httptest.NewRecorder()

		am.RequireRole("admin", "agent")(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("disallowed role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = req.WithContext(contextkeys.ContextWithIdentity(req.Context(), domain.Identity{UserID: uuid.New(), Role: domain.RoleUser}))
		rec := httptest.NewRecorder()

		am.RequireRole("admin")(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
