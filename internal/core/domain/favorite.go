package domain

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteItem is one saved listing of a user.
type FavoriteItem struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	CreatedAt  time.Time
}

// PaginatedFavorites is the repository response for a user's favorites
// page: the property cards of the saved listings plus the total count.
type PaginatedFavorites struct {
	Items      []PropertyCard
	TotalCount int64
}
