package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProperty_Defaults(t *testing.T) {
	ownerID := uuid.New()
	p := NewProperty(PropertyDraft{
		Title:       "  Two bedroom flat  ",
		Description: "Bright flat close to the waterfront.",
		Type:        "Apartment",
		Category:    "RENT",
		Price:       350000,
	}, ownerID)

	assert.Equal(t, "Two bedroom flat", p.Title)
	assert.Equal(t, "apartment", p.Type)
	assert.Equal(t, "rent", p.Category)
	assert.Equal(t, "NGN", p.Currency)
	assert.Equal(t, "sqft", p.SizeUnit)
	assert.Equal(t, "Nigeria", p.Location.Country)
	assert.Equal(t, DefaultLongitude, p.Location.Longitude)
	assert.Equal(t, DefaultLatitude, p.Location.Latitude)
	assert.NotEmpty(t, p.Geohash, "geohash is derived from the coordinates")
	assert.Equal(t, StatusAvailable, p.Status)
	assert.True(t, p.IsActive)
	assert.Equal(t, ownerID, p.OwnerID)
	assert.NotEqual(t, uuid.Nil, p.ID)
}

func TestNewProperty_PrimaryImage(t *testing.T) {
	p := NewProperty(PropertyDraft{
		Title:    "With images",
		Category: "sell",
		Price:    1,
		Images: []PropertyImage{
			{URL: "https://cdn.example.com/a.jpg"},
			{URL: "https://cdn.example.com/b.jpg"},
		},
	}, uuid.New())

	require.Len(t, p.Images, 2)
	assert.True(t, p.Images[0].IsPrimary, "first image becomes primary when none is marked")
	assert.False(t, p.Images[1].IsPrimary)

	marked := NewProperty(PropertyDraft{
		Title:    "Explicit primary",
		Category: "sell",
		Price:    1,
		Images: []PropertyImage{
			{URL: "https://cdn.example.com/a.jpg"},
			{URL: "https://cdn.example.com/b.jpg", IsPrimary: true},
		},
	}, uuid.New())

	assert.False(t, marked.Images[0].IsPrimary, "an explicit primary is left alone")
	assert.True(t, marked.Images[1].IsPrimary)
}

func TestNewProperty_CustomCoordinatesKeepGeohashInSync(t *testing.T) {
	p := NewProperty(PropertyDraft{
		Title:    "Located",
		Category: "sell",
		Price:    1,
		Location: Location{Longitude: 7.49, Latitude: 9.06},
	}, uuid.New())

	q := NewProperty(PropertyDraft{
		Title:    "Elsewhere",
		Category: "sell",
		Price:    1,
		Location: Location{Longitude: 3.3792, Latitude: 6.5244},
	}, uuid.New())

	assert.NotEqual(t, p.Geohash, q.Geohash)
}

func TestProperty_ApplyDraft(t *testing.T) {
	ownerID := uuid.New()
	p := NewProperty(PropertyDraft{Title: "Original", Category: "sell", Price: 100}, ownerID)
	originalID := p.ID

	p.ApplyDraft(PropertyDraft{
		Title:    "Renamed",
		Category: "rent",
		Price:    200,
		Status:   "pending",
	})

	assert.Equal(t, originalID, p.ID, "identity survives an update")
	assert.Equal(t, ownerID, p.OwnerID)
	assert.Equal(t, "Renamed", p.Title)
	assert.Equal(t, "rent", p.Category)
	assert.Equal(t, 200.0, p.Price)
	assert.Equal(t, StatusPending, p.Status)
}

func TestProperty_CanBeManagedBy(t *testing.T) {
	ownerID := uuid.New()
	p := NewProperty(PropertyDraft{Title: "Guarded", Category: "sell", Price: 1}, ownerID)

	assert.True(t, p.CanBeManagedBy(Identity{UserID: ownerID, Role: RoleUser}))
	assert.True(t, p.CanBeManagedBy(Identity{UserID: uuid.New(), Role: RoleAdmin}))
	assert.False(t, p.CanBeManagedBy(Identity{UserID: uuid.New(), Role: RoleAgent}))
}

func TestLocation_DisplayText(t *testing.T) {
	loc := Location{Address: "12 Marina Rd", City: "Lagos", State: "", Country: "Nigeria"}
	assert.Equal(t, "12 Marina Rd, Lagos, Nigeria", loc.DisplayText())

	empty := Location{}
	assert.Equal(t, "", empty.DisplayText())
}
