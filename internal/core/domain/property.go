package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
)

// Property categories.
const (
	CategoryRent = "rent"
	CategorySell = "sell"
)

// Property statuses.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusRented    = "rented"
	StatusPending   = "pending"
	StatusDraft     = "draft"
)

var ValidCategories = map[string]struct{}{
	CategoryRent: {},
	CategorySell: {},
}

var ValidPropertyTypes = map[string]struct{}{
	"apartment": {},
	"house":     {},
	"duplex":    {},
	"bungalow":  {},
	"land":      {},
	"villa":     {},
	"studio":    {},
	"penthouse": {},
	"office":    {},
	"shop":      {},
}

var ValidStatuses = map[string]struct{}{
	StatusAvailable: {},
	StatusSold:      {},
	StatusRented:    {},
	StatusPending:   {},
	StatusDraft:     {},
}

// Default coordinates used when a listing is created without any:
// Lagos, Nigeria.
const (
	DefaultLongitude = 3.3792
	DefaultLatitude  = 6.5244
)

// Location of a property. Address, city and state together form the
// searchable location text.
type Location struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// DisplayText is the flat form of the location used for presentation and
// substring search.
func (l Location) DisplayText() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{l.Address, l.City, l.State, l.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}

// PropertyImage is one hosted image of a listing.
type PropertyImage struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"isPrimary"`
	Alt       string `json:"alt,omitempty"`
}

// Property is the full listing entity.
type Property struct {
	ID          uuid.UUID
	Title       string
	Description string
	Type        string
	Category    string
	Price       float64
	Currency    string
	Location    Location
	Geohash     string
	Bedrooms    int
	Bathrooms   int
	Size        float64
	SizeUnit    string
	Images      []PropertyImage
	Features    []string
	Amenities   []string
	Status      string
	IsActive    bool
	IsFeatured  bool
	Views       int64
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PropertyDraft carries the caller-supplied fields of a new or updated
// listing. Validation of the raw payload happens at the transport
// boundary against the JSON schema contract.
type PropertyDraft struct {
	Title       string
	Description string
	Type        string
	Category    string
	Price       float64
	Currency    string
	Location    Location
	Bedrooms    int
	Bathrooms   int
	Size        float64
	SizeUnit    string
	Images      []PropertyImage
	Features    []string
	Amenities   []string
	Status      string
}

// NewProperty builds a listing from a draft, fills defaults and derives
// the geohash from the coordinates.
func NewProperty(draft PropertyDraft, ownerID uuid.UUID) *Property {
	now := time.Now().UTC()

	if draft.Location.Longitude == 0 && draft.Location.Latitude == 0 {
		draft.Location.Longitude = DefaultLongitude
		draft.Location.Latitude = DefaultLatitude
	}
	if draft.Location.Country == "" {
		draft.Location.Country = "Nigeria"
	}
	if draft.Currency == "" {
		draft.Currency = "NGN"
	}
	if draft.SizeUnit == "" {
		draft.SizeUnit = "sqft"
	}
	status := strings.ToLower(strings.TrimSpace(draft.Status))
	if _, ok := ValidStatuses[status]; !ok {
		status = StatusAvailable
	}

	p := &Property{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Type:        strings.ToLower(strings.TrimSpace(draft.Type)),
		Category:    strings.ToLower(strings.TrimSpace(draft.Category)),
		Price:       draft.Price,
		Currency:    draft.Currency,
		Location:    draft.Location,
		Geohash:     geohash.Encode(draft.Location.Latitude, draft.Location.Longitude),
		Bedrooms:    draft.Bedrooms,
		Bathrooms:   draft.Bathrooms,
		Size:        draft.Size,
		SizeUnit:    draft.SizeUnit,
		Images:      draft.Images,
		Features:    normalizeTags(draft.Features),
		Amenities:   normalizeTags(draft.Amenities),
		Status:      status,
		IsActive:    true,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.ensurePrimaryImage()
	return p
}

// ApplyDraft overwrites the caller-editable fields of an existing
// listing and refreshes the geohash.
func (p *Property) ApplyDraft(draft PropertyDraft) {
	updated := NewProperty(draft, p.OwnerID)

	p.Title = updated.Title
	p.Description = updated.Description
	p.Type = updated.Type
	p.Category = updated.Category
	p.Price = updated.Price
	p.Currency = updated.Currency
	p.Location = updated.Location
	p.Geohash = updated.Geohash
	p.Bedrooms = updated.Bedrooms
	p.Bathrooms = updated.Bathrooms
	p.Size = updated.Size
	p.SizeUnit = updated.SizeUnit
	p.Images = updated.Images
	p.Features = updated.Features
	p.Amenities = updated.Amenities
	p.Status = updated.Status
	p.UpdatedAt = time.Now().UTC()
}

// CanBeManagedBy reports whether the identity may update or delete the
// listing: the owner and admins only.
func (p *Property) CanBeManagedBy(identity Identity) bool {
	return identity.Role == "admin" || identity.UserID == p.OwnerID
}

func (p *Property) ensurePrimaryImage() {
	if len(p.Images) == 0 {
		return
	}
	for _, img := range p.Images {
		if img.IsPrimary {
			return
		}
	}
	p.Images[0].IsPrimary = true
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// PropertyCard is the list projection of a listing used by the search
// endpoint. Internal columns stay behind in the store adapter.
type PropertyCard struct {
	ID         uuid.UUID       `json:"id"`
	Title      string          `json:"title"`
	Type       string          `json:"type"`
	Category   string          `json:"category"`
	Price      float64         `json:"price"`
	Currency   string          `json:"currency"`
	Location   string          `json:"location"`
	Bedrooms   int             `json:"bedrooms"`
	Bathrooms  int             `json:"bathrooms"`
	Size       float64         `json:"size"`
	SizeUnit   string          `json:"sizeUnit"`
	Status     string          `json:"status"`
	IsFeatured bool            `json:"isFeatured"`
	Images     []PropertyImage `json:"images"`
	OwnerID    uuid.UUID       `json:"owner"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// PropertyStats is the aggregate summary over active listings.
type PropertyStats struct {
	Total    int64   `json:"total"`
	ForSale  int64   `json:"forSale"`
	ForRent  int64   `json:"forRent"`
	AvgPrice float64 `json:"avgPrice"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}
