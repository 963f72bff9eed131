package postgres

import (
	"fmt"
	"testing"

	"property-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }

func TestApplyFilter_ActiveOnly(t *testing.T) {
	where, args := applyFilter(domain.FilterSpec{ActiveOnly: true})

	assert.Equal(t, "WHERE p.is_active = true", where)
	assert.Empty(t, args)
}

func TestApplyFilter_Empty(t *testing.T) {
	where, args := applyFilter(domain.FilterSpec{})

	assert.Equal(t, "", where)
	assert.Empty(t, args)
}

func TestApplyFilter_ClauseOrderAndPlaceholders(t *testing.T) {
	ownerID := uuid.New()
	filter := domain.FilterSpec{
		ActiveOnly:       true,
		OwnerID:          &ownerID,
		Category:         "rent",
		Type:             "apartment",
		LocationContains: "Lekki",
		PriceMin:         floatPtr(1000),
		PriceMax:         floatPtr(5000),
		BedroomsMin:      intPtr(2),
		BathroomsMin:     intPtr(1),
		SizeMin:          floatPtr(50),
		SizeMax:          floatPtr(200),
		Status:           "available",
	}

	where, args := applyFilter(filter)

	want := "WHERE p.is_active = true" +
		" AND p.owner_id = $1" +
		" AND p.category = $2" +
		" AND p.type = $3" +
		" AND " + locationExpr + " ILIKE $4" +
		" AND p.price >= $5" +
		" AND p.price <= $6" +
		" AND p.bedrooms >= $7" +
		" AND p.bathrooms >= $8" +
		" AND p.size >= $9" +
		" AND p.size <= $10" +
		" AND p.status = $11"
	assert.Equal(t, want, where)

	require.Len(t, args, 11)
	assert.Equal(t, ownerID, args[0])
	assert.Equal(t, "rent", args[1])
	assert.Equal(t, "apartment", args[2])
	assert.Equal(t, "%Lekki%", args[3])
	assert.Equal(t, 1000.0, args[4])
	assert.Equal(t, 5000.0, args[5])
	assert.Equal(t, 2, args[6])
	assert.Equal(t, 1, args[7])
	assert.Equal(t, 50.0, args[8])
	assert.Equal(t, 200.0, args[9])
	assert.Equal(t, "available", args[10])
}

func TestApplyFilter_SearchBlock(t *testing.T) {
	filter := domain.FilterSpec{
		ActiveOnly: true,
		Status:     "available",
		Search:     "garden",
	}

	where, args := applyFilter(filter)

	wantSearch := fmt.Sprintf(
		"(p.title ILIKE $%d OR p.description ILIKE $%d OR %s ILIKE $%d OR p.type ILIKE $%d)",
		2, 3, locationExpr, 4, 5,
	)
	assert.Equal(t, "WHERE p.is_active = true AND p.status = $1 AND "+wantSearch, where)

	require.Len(t, args, 5)
	assert.Equal(t, "available", args[0])
	for i := 1; i < 5; i++ {
		assert.Equal(t, "%garden%", args[i], "all four search placeholders carry the same pattern")
	}
}

func TestApplyFilter_Deterministic(t *testing.T) {
	filter := domain.FilterSpec{
		ActiveOnly:  true,
		Category:    "sell",
		PriceMin:    floatPtr(100),
		BedroomsMin: intPtr(3),
		Status:      "available",
		Search:      "pool",
	}

	firstWhere, firstArgs := applyFilter(filter)
	secondWhere, secondArgs := applyFilter(filter)

	assert.Equal(t, firstWhere, secondWhere)
	assert.Equal(t, firstArgs, secondArgs)
}

func TestApplyFilter_InvertedRangeProducesContradiction(t *testing.T) {
	// An inverted range is passed through verbatim; it matches nothing
	// rather than being silently corrected.
	filter := domain.FilterSpec{
		ActiveOnly: true,
		PriceMin:   floatPtr(5000),
		PriceMax:   floatPtr(1000),
	}

	where, args := applyFilter(filter)

	assert.Contains(t, where, "p.price >= $1")
	assert.Contains(t, where, "p.price <= $2")
	assert.Equal(t, []interface{}{5000.0, 1000.0}, args)
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name string
		sort domain.SortSpec
		want string
	}{
		{"price ascending", domain.SortSpec{Field: domain.SortFieldPrice}, "ORDER BY p.price ASC, p.id ASC"},
		{"price descending", domain.SortSpec{Field: domain.SortFieldPrice, Descending: true}, "ORDER BY p.price DESC, p.id ASC"},
		{"size", domain.SortSpec{Field: domain.SortFieldSize, Descending: true}, "ORDER BY p.size DESC, p.id ASC"},
		{"bedrooms", domain.SortSpec{Field: domain.SortFieldBedrooms, Descending: true}, "ORDER BY p.bedrooms DESC, p.id ASC"},
		{"newest", domain.SortSpec{Field: domain.SortFieldCreatedAt, Descending: true}, "ORDER BY p.created_at DESC, p.id ASC"},
		{"unknown field falls back to created_at", domain.SortSpec{Field: "mystery"}, "ORDER BY p.created_at ASC, p.id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.sort))
		})
	}
}
