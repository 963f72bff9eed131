package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

// FindWithFilter returns one page of property cards matching the filter.
// It deliberately runs outside a transaction: the paired CountWithFilter
// call operates on the same filter snapshot and the engine runs both
// concurrently.
func (a *PropertyStorageAdapter) FindWithFilter(ctx context.Context, filter domain.FilterSpec, sort domain.SortSpec, limit, offset int) ([]domain.PropertyCard, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyStorageAdapter",
		"method":    "FindWithFilter",
		"limit":     limit,
		"offset":    offset,
	})

	whereClause, args := applyFilter(filter)

	// The SELECT list is the card projection; internal columns such as
	// the geohash never reach the API response.
	query := fmt.Sprintf(`
		SELECT p.id, p.title, p.type, p.category, p.price, p.currency,
		       %s AS location,
		       p.bedrooms, p.bathrooms, p.size, p.size_unit,
		       p.status, p.is_featured, p.images, p.owner_id, p.created_at
		FROM properties p
		%s
		%s
		LIMIT $%d OFFSET $%d`,
		locationExpr, whereClause, orderClause(sort), len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to find properties with filter", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find properties with filter: %w", err)
	}
	defer rows.Close()

	cards := make([]domain.PropertyCard, 0, limit)
	for rows.Next() {
		var (
			card   domain.PropertyCard
			images []byte
		)
		if err := rows.Scan(
			&card.ID, &card.Title, &card.Type, &card.Category, &card.Price, &card.Currency,
			&card.Location, &card.Bedrooms, &card.Bathrooms, &card.Size, &card.SizeUnit,
			&card.Status, &card.IsFeatured, &images, &card.OwnerID, &card.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan property card: %w", err)
		}
		if len(images) > 0 {
			if err := json.Unmarshal(images, &card.Images); err != nil {
				return nil, fmt.Errorf("failed to unmarshal images: %w", err)
			}
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during property rows iteration", err, nil)
		return nil, fmt.Errorf("error during property rows iteration: %w", err)
	}

	repoLogger.Debug("Successfully found properties for page", port.Fields{"count": len(cards)})
	return cards, nil
}

// CountWithFilter returns the total number of matches for the filter.
func (a *PropertyStorageAdapter) CountWithFilter(ctx context.Context, filter domain.FilterSpec) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyStorageAdapter",
		"method":    "CountWithFilter",
	})

	whereClause, args := applyFilter(filter)
	query := fmt.Sprintf("SELECT COUNT(*) FROM properties p %s", whereClause)

	var total int64
	if err := a.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		repoLogger.Error("Failed to count properties with filter", err, port.Fields{"query": query})
		return 0, fmt.Errorf("failed to count properties with filter: %w", err)
	}

	return total, nil
}
