package domain

import "github.com/google/uuid"

// FilterSpec is the store-agnostic description of which property records
// qualify for a query. All clauses are combined with AND; Search expands
// inside the store into an OR across title, description, location and
// type. Zero values and nil pointers mean "clause not present".
type FilterSpec struct {
	// ActiveOnly is the mandatory soft-delete guard. It is always set by
	// the engine and stripped again from the echoed filter state.
	ActiveOnly bool `json:"-"`

	OwnerID          *uuid.UUID `json:"owner,omitempty"`
	Category         string     `json:"category,omitempty"`
	Type             string     `json:"type,omitempty"`
	LocationContains string     `json:"location,omitempty"`
	PriceMin         *float64   `json:"minPrice,omitempty"`
	PriceMax         *float64   `json:"maxPrice,omitempty"`
	BedroomsMin      *int       `json:"bedrooms,omitempty"`
	BathroomsMin     *int       `json:"bathrooms,omitempty"`
	SizeMin          *float64   `json:"minSize,omitempty"`
	SizeMax          *float64   `json:"maxSize,omitempty"`
	Status           string     `json:"status,omitempty"`
	Search           string     `json:"search,omitempty"`
}

// Applied reports whether any clause beyond the mandatory ActiveOnly
// guard was added.
func (f FilterSpec) Applied() bool {
	return f.OwnerID != nil ||
		f.Category != "" ||
		f.Type != "" ||
		f.LocationContains != "" ||
		f.PriceMin != nil ||
		f.PriceMax != nil ||
		f.BedroomsMin != nil ||
		f.BathroomsMin != nil ||
		f.SizeMin != nil ||
		f.SizeMax != nil ||
		f.Status != "" ||
		f.Search != ""
}

// Echo returns the filter as it is reported back to the caller. The
// ActiveOnly guard is an implementation default, not user intent, so it
// is omitted from the echo.
func (f FilterSpec) Echo() FilterSpec {
	f.ActiveOnly = false
	return f
}
