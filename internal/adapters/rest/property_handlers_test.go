package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchUseCase struct {
	result *domain.SearchResult
	err    error

	gotRaw      map[string]string
	gotIdentity *domain.Identity
}

func (s *stubSearchUseCase) Execute(ctx context.Context, raw map[string]string, identity *domain.Identity) (*domain.SearchResult, error) {
	s.gotRaw = raw
	s.gotIdentity = identity
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func searchResult(n int, total int64) *domain.SearchResult {
	items := make([]domain.PropertyCard, n)
	for i := range items {
		items[i] = domain.PropertyCard{ID: uuid.New(), Title: "Listing", Category: "rent"}
	}
	return &domain.SearchResult{
		Items:      items,
		Pagination: domain.NewPagination(1, domain.DefaultLimit, total),
		Filters:    domain.AppliedFilters{Applied: true, Normalized: domain.FilterSpec{Category: "rent"}},
	}
}

func TestSearchProperties_Handler(t *testing.T) {
	stub := &stubSearchUseCase{result: searchResult(3, 3)}
	handler := NewPropertiesHandler(stub, nil, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?category=rent&minPrice=1000&page=1", nil)
	rec := httptest.NewRecorder()

	handler.SearchProperties(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, int64(3), resp.Pagination.Total)
	assert.True(t, resp.Filters.Applied)

	assert.Equal(t, "rent", stub.gotRaw["category"])
	assert.Equal(t, "1000", stub.gotRaw["minPrice"])
	assert.Nil(t, stub.gotIdentity, "no identity without authentication")
}

func TestSearchProperties_Handler_PassesIdentity(t *testing.T) {
	stub := &stubSearchUseCase{result: searchResult(0, 0)}
	handler := NewPropertiesHandler(stub, nil, nil, nil, nil, nil)

	identity := domain.Identity{UserID: uuid.New(), Role: domain.RoleUser}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?myProperties=true", nil)
	req = req.WithContext(contextkeys.ContextWithIdentity(req.Context(), identity))
	rec := httptest.NewRecorder()

	handler.SearchProperties(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.gotIdentity)
	assert.Equal(t, identity.UserID, stub.gotIdentity.UserID)
}

func TestSearchProperties_Handler_StoreFailure(t *testing.T) {
	stub := &stubSearchUseCase{err: errors.New("db down")}
	handler := NewPropertiesHandler(stub, nil, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	rec := httptest.NewRecorder()

	handler.SearchProperties(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["error"])
}

func TestSearchProperties_Handler_EmptyPageSerializesAsArray(t *testing.T) {
	stub := &stubSearchUseCase{result: &domain.SearchResult{
		Items:      []domain.PropertyCard{},
		Pagination: domain.NewPagination(1, 12, 0),
	}}
	handler := NewPropertiesHandler(stub, nil, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	rec := httptest.NewRecorder()

	handler.SearchProperties(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`, "an empty page must be [] not null")
}
