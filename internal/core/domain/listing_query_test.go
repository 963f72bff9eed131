package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeListingQuery_Defaults(t *testing.T) {
	q := NormalizeListingQuery(map[string]string{}, nil)

	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Equal(t, StatusAvailable, q.Status)
	assert.Equal(t, SortKeyNewest, q.SortKey)
	assert.Empty(t, q.Category)
	assert.Empty(t, q.Type)
	assert.Nil(t, q.PriceMin)
	assert.Nil(t, q.OwnerID)
}

func TestNormalizeListingQuery_EnumHandling(t *testing.T) {
	tests := []struct {
		name         string
		raw          map[string]string
		wantCategory string
		wantType     string
		wantStatus   string
		wantSortKey  string
	}{
		{
			name:         "valid values pass through lowercased",
			raw:          map[string]string{"category": "RENT", "type": "Apartment", "status": "Sold", "sortBy": "price-low"},
			wantCategory: "rent",
			wantType:     "apartment",
			wantStatus:   "sold",
			wantSortKey:  "price-low",
		},
		{
			name:         "unknown category and type are dropped",
			raw:          map[string]string{"category": "lease", "type": "castle"},
			wantCategory: "",
			wantType:     "",
			wantStatus:   StatusAvailable,
			wantSortKey:  SortKeyNewest,
		},
		{
			name:         "unknown status falls back to available",
			raw:          map[string]string{"status": "archived"},
			wantCategory: "",
			wantType:     "",
			wantStatus:   StatusAvailable,
			wantSortKey:  SortKeyNewest,
		},
		{
			name:         "unknown sort key falls back to newest",
			raw:          map[string]string{"sortBy": "popularity"},
			wantCategory: "",
			wantType:     "",
			wantStatus:   StatusAvailable,
			wantSortKey:  SortKeyNewest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NormalizeListingQuery(tt.raw, nil)
			assert.Equal(t, tt.wantCategory, q.Category)
			assert.Equal(t, tt.wantType, q.Type)
			assert.Equal(t, tt.wantStatus, q.Status)
			assert.Equal(t, tt.wantSortKey, q.SortKey)
		})
	}
}

func TestNormalizeListingQuery_NumericParams(t *testing.T) {
	raw := map[string]string{
		"minPrice": "1000.50",
		"maxPrice": "abc",
		"bedrooms": "3",
		"minSize":  "",
		"maxSize":  "250",
	}

	q := NormalizeListingQuery(raw, nil)

	require.NotNil(t, q.PriceMin)
	assert.Equal(t, 1000.50, *q.PriceMin)
	assert.Nil(t, q.PriceMax, "malformed numbers are dropped, not errored")
	require.NotNil(t, q.BedroomsMin)
	assert.Equal(t, 3, *q.BedroomsMin)
	assert.Nil(t, q.SizeMin)
	require.NotNil(t, q.SizeMax)
	assert.Equal(t, 250.0, *q.SizeMax)
}

func TestNormalizeListingQuery_PageAndLimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		raw       map[string]string
		wantPage  int
		wantLimit int
	}{
		{"zero page clamps to first", map[string]string{"page": "0"}, 1, DefaultLimit},
		{"negative page clamps to first", map[string]string{"page": "-3"}, 1, DefaultLimit},
		{"garbage page falls back", map[string]string{"page": "two"}, 1, DefaultLimit},
		{"limit above maximum is capped", map[string]string{"limit": "500"}, 1, MaxLimit},
		{"limit below one clamps to one", map[string]string{"limit": "0"}, 1, 1},
		{"valid values pass through", map[string]string{"page": "4", "limit": "25"}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NormalizeListingQuery(tt.raw, nil)
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantLimit, q.Limit)
		})
	}
}

func TestNormalizeListingQuery_OwnerScope(t *testing.T) {
	userID := uuid.New()
	identity := &Identity{UserID: userID, Role: RoleUser}

	t.Run("authenticated myProperties sets the owner", func(t *testing.T) {
		q := NormalizeListingQuery(map[string]string{"myProperties": "true"}, identity)
		require.NotNil(t, q.OwnerID)
		assert.Equal(t, userID, *q.OwnerID)
	})

	t.Run("anonymous myProperties is ignored", func(t *testing.T) {
		q := NormalizeListingQuery(map[string]string{"myProperties": "true"}, nil)
		assert.Nil(t, q.OwnerID)
	})

	t.Run("myProperties false leaves scope public", func(t *testing.T) {
		q := NormalizeListingQuery(map[string]string{"myProperties": "false"}, identity)
		assert.Nil(t, q.OwnerID)
	})
}

func TestListingQuery_FilterSpec(t *testing.T) {
	minPrice := 500.0
	q := NormalizeListingQuery(map[string]string{
		"category": "rent",
		"location": "Lekki",
		"minPrice": "500",
		"search":   "garden",
	}, nil)

	spec := q.FilterSpec()

	assert.True(t, spec.ActiveOnly, "activity guard is always on")
	assert.Equal(t, "rent", spec.Category)
	assert.Equal(t, "Lekki", spec.LocationContains)
	require.NotNil(t, spec.PriceMin)
	assert.Equal(t, minPrice, *spec.PriceMin)
	assert.Equal(t, "garden", spec.Search)
	assert.True(t, spec.Applied())
}

func TestFilterSpec_AppliedAndEcho(t *testing.T) {
	bare := FilterSpec{ActiveOnly: true, Status: StatusAvailable}
	assert.True(t, bare.Applied(), "the status default still counts as a clause")

	empty := FilterSpec{ActiveOnly: true}
	assert.False(t, empty.Applied())

	echoed := bare.Echo()
	assert.False(t, echoed.ActiveOnly, "the activity guard is stripped from the echo")
	assert.Equal(t, StatusAvailable, echoed.Status)
}

func TestListingQuery_Offset(t *testing.T) {
	q := ListingQuery{Page: 3, Limit: 12}
	assert.Equal(t, 24, q.Offset())

	first := ListingQuery{Page: 1, Limit: 50}
	assert.Equal(t, 0, first.Offset())
}

func TestSortSpecForKey(t *testing.T) {
	tests := []struct {
		key            string
		wantField      string
		wantDescending bool
	}{
		{"price-low", SortFieldPrice, false},
		{"price-high", SortFieldPrice, true},
		{"size-small", SortFieldSize, false},
		{"size-large", SortFieldSize, true},
		{"bedrooms", SortFieldBedrooms, true},
		{"newest", SortFieldCreatedAt, true},
		{"nonsense", SortFieldCreatedAt, true},
		{"", SortFieldCreatedAt, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			spec := SortSpecForKey(tt.key)
			assert.Equal(t, tt.wantField, spec.Field)
			assert.Equal(t, tt.wantDescending, spec.Descending)
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		limit    int
		total    int64
		want     Pagination
	}{
		{
			name:  "middle page",
			page:  2, limit: 10, total: 25,
			want: Pagination{Page: 2, Limit: 10, Total: 25, Pages: 3, HasNext: true, HasPrev: true},
		},
		{
			name:  "last page",
			page:  3, limit: 10, total: 25,
			want: Pagination{Page: 3, Limit: 10, Total: 25, Pages: 3, HasNext: false, HasPrev: true},
		},
		{
			name:  "exact multiple",
			page:  1, limit: 12, total: 24,
			want: Pagination{Page: 1, Limit: 12, Total: 24, Pages: 2, HasNext: true, HasPrev: false},
		},
		{
			name:  "empty result",
			page:  1, limit: 12, total: 0,
			want: Pagination{Page: 1, Limit: 12, Total: 0, Pages: 0, HasNext: false, HasPrev: false},
		},
		{
			name:  "page beyond the end",
			page:  9, limit: 12, total: 24,
			want: Pagination{Page: 9, Limit: 12, Total: 24, Pages: 2, HasNext: false, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.limit, tt.total))
		})
	}
}
