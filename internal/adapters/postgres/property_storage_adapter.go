package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PropertyStorageAdapter implements PropertyStoragePort for PostgreSQL.
type PropertyStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPropertyStorageAdapter(pool *pgxpool.Pool) (*PropertyStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyStorageAdapter{pool: pool}, nil
}

const propertyColumns = `id, title, description, type, category, price, currency,
	address, city, state, country, longitude, latitude, geohash,
	bedrooms, bathrooms, size, size_unit, images, features, amenities,
	status, is_active, is_featured, views, owner_id, created_at, updated_at`

// Create inserts a new listing.
func (a *PropertyStorageAdapter) Create(ctx context.Context, p *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyStorageAdapter",
		"method":      "Create",
		"property_id": p.ID.String(),
	})

	images, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("failed to marshal images: %w", err)
	}

	query := `
		INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`

	_, err = a.pool.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Type, p.Category, p.Price, p.Currency,
		p.Location.Address, p.Location.City, p.Location.State, p.Location.Country,
		p.Location.Longitude, p.Location.Latitude, p.Geohash,
		p.Bedrooms, p.Bathrooms, p.Size, p.SizeUnit, images, p.Features, p.Amenities,
		p.Status, p.IsActive, p.IsFeatured, p.Views, p.OwnerID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to insert property", err, nil)
		return fmt.Errorf("failed to insert property: %w", err)
	}

	repoLogger.Debug("Property inserted.", nil)
	return nil
}

// Update overwrites the editable columns of an existing listing.
func (a *PropertyStorageAdapter) Update(ctx context.Context, p *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyStorageAdapter",
		"method":      "Update",
		"property_id": p.ID.String(),
	})

	images, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("failed to marshal images: %w", err)
	}

	query := `
		UPDATE properties SET
			title = $2, description = $3, type = $4, category = $5, price = $6,
			currency = $7, address = $8, city = $9, state = $10, country = $11,
			longitude = $12, latitude = $13, geohash = $14, bedrooms = $15,
			bathrooms = $16, size = $17, size_unit = $18, images = $19,
			features = $20, amenities = $21, status = $22, updated_at = $23
		WHERE id = $1`

	cmdTag, err := a.pool.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Type, p.Category, p.Price,
		p.Currency, p.Location.Address, p.Location.City, p.Location.State, p.Location.Country,
		p.Location.Longitude, p.Location.Latitude, p.Geohash, p.Bedrooms,
		p.Bathrooms, p.Size, p.SizeUnit, images, p.Features, p.Amenities, p.Status, p.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to update property", err, nil)
		return fmt.Errorf("failed to update property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}

	repoLogger.Debug("Property updated.", nil)
	return nil
}

// Deactivate is the soft delete.
func (a *PropertyStorageAdapter) Deactivate(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyStorageAdapter",
		"method":      "Deactivate",
		"property_id": id.String(),
	})

	cmdTag, err := a.pool.Exec(ctx,
		`UPDATE properties SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		repoLogger.Error("Failed to deactivate property", err, nil)
		return fmt.Errorf("failed to deactivate property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Property to deactivate was not found.", nil)
		return domain.ErrPropertyNotFound
	}

	repoLogger.Debug("Property deactivated.", nil)
	return nil
}

// GetByID loads a full listing row.
func (a *PropertyStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyStorageAdapter",
		"method":      "GetByID",
		"property_id": id.String(),
	})

	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	var (
		p      domain.Property
		images []byte
	)
	err := a.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Type, &p.Category, &p.Price, &p.Currency,
		&p.Location.Address, &p.Location.City, &p.Location.State, &p.Location.Country,
		&p.Location.Longitude, &p.Location.Latitude, &p.Geohash,
		&p.Bedrooms, &p.Bathrooms, &p.Size, &p.SizeUnit, &images, &p.Features, &p.Amenities,
		&p.Status, &p.IsActive, &p.IsFeatured, &p.Views, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Property not found.", nil)
			return nil, domain.ErrPropertyNotFound
		}
		repoLogger.Error("Failed to get property", err, nil)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal images: %w", err)
		}
	}

	return &p, nil
}

// IncrementViews bumps the view counter without touching updated_at.
func (a *PropertyStorageAdapter) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := a.pool.Exec(ctx, `UPDATE properties SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// GetStats aggregates the summary over active listings.
func (a *PropertyStorageAdapter) GetStats(ctx context.Context) (*domain.PropertyStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyStorageAdapter",
		"method":    "GetStats",
	})

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE category = 'sell'),
			COUNT(*) FILTER (WHERE category = 'rent'),
			COALESCE(AVG(price), 0),
			COALESCE(MIN(price), 0),
			COALESCE(MAX(price), 0)
		FROM properties
		WHERE is_active = true`

	var stats domain.PropertyStats
	err := a.pool.QueryRow(ctx, query).Scan(
		&stats.Total, &stats.ForSale, &stats.ForRent,
		&stats.AvgPrice, &stats.MinPrice, &stats.MaxPrice,
	)
	if err != nil {
		repoLogger.Error("Failed to aggregate property stats", err, nil)
		return nil, fmt.Errorf("failed to aggregate property stats: %w", err)
	}

	return &stats, nil
}
