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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FavoritesRepository implements FavoritesRepositoryPort for PostgreSQL.
type FavoritesRepository struct {
	pool *pgxpool.Pool
}

func NewFavoritesRepository(pool *pgxpool.Pool) (*FavoritesRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FavoritesRepository{pool: pool}, nil
}

// Add inserts the pair. A duplicate insert is treated as success.
func (r *FavoritesRepository) Add(ctx context.Context, userID, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "FavoritesRepository",
		"method":      "Add",
		"user_id":     userID.String(),
		"property_id": propertyID.String(),
	})

	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_favorites (user_id, property_id) VALUES ($1, $2)`, userID, propertyID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			repoLogger.Warn("Favorite already exists, operation considered successful.", nil)
			return nil
		}
		repoLogger.Error("Failed to add favorite", err, nil)
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	repoLogger.Debug("Successfully added to favorites.", nil)
	return nil
}

func (r *FavoritesRepository) Remove(ctx context.Context, userID, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "FavoritesRepository",
		"method":      "Remove",
		"user_id":     userID.String(),
		"property_id": propertyID.String(),
	})

	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM user_favorites WHERE user_id = $1 AND property_id = $2`, userID, propertyID)
	if err != nil {
		repoLogger.Error("Failed to remove favorite", err, nil)
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Attempted to remove a favorite that did not exist.", nil)
		return domain.ErrFavoriteNotFound
	}

	repoLogger.Debug("Successfully removed from favorites.", nil)
	return nil
}

// FindPaginatedByUser returns one page of the user's saved listings as
// property cards, newest favorite first. Listings that were deactivated
// after being saved are skipped.
func (r *FavoritesRepository) FindPaginatedByUser(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedFavorites, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "FavoritesRepository",
		"method":    "FindPaginatedByUser",
		"user_id":   userID.String(),
		"limit":     limit,
		"offset":    offset,
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		repoLogger.Error("Failed to begin transaction", err, nil)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var totalCount int64
	countQuery := `
		SELECT COUNT(*)
		FROM user_favorites f
		JOIN properties p ON p.id = f.property_id
		WHERE f.user_id = $1 AND p.is_active = true`
	if err := tx.QueryRow(ctx, countQuery, userID).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count favorites", err, nil)
		return nil, fmt.Errorf("failed to count favorites: %w", err)
	}

	if totalCount == 0 {
		return &domain.PaginatedFavorites{Items: []domain.PropertyCard{}, TotalCount: 0}, nil
	}

	dataQuery := fmt.Sprintf(`
		SELECT p.id, p.title, p.type, p.category, p.price, p.currency,
		       %s AS location,
		       p.bedrooms, p.bathrooms, p.size, p.size_unit,
		       p.status, p.is_featured, p.images, p.owner_id, p.created_at
		FROM user_favorites f
		JOIN properties p ON p.id = f.property_id
		WHERE f.user_id = $1 AND p.is_active = true
		ORDER BY f.created_at DESC, p.id ASC
		LIMIT $2 OFFSET $3`, locationExpr)

	rows, err := tx.Query(ctx, dataQuery, userID, limit, offset)
	if err != nil {
		repoLogger.Error("Failed to query favorites page", err, nil)
		return nil, fmt.Errorf("failed to query favorites page: %w", err)
	}
	defer rows.Close()

	items := make([]domain.PropertyCard, 0, limit)
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
			return nil, fmt.Errorf("failed to scan favorite card: %w", err)
		}
		if len(images) > 0 {
			if err := json.Unmarshal(images, &card.Images); err != nil {
				return nil, fmt.Errorf("failed to unmarshal images: %w", err)
			}
		}
		items = append(items, card)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during favorites rows iteration", err, nil)
		return nil, fmt.Errorf("error during favorites rows iteration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Successfully found favorites for page", port.Fields{"count": len(items)})
	return &domain.PaginatedFavorites{Items: items, TotalCount: totalCount}, nil
}

func (r *FavoritesRepository) IsFavorited(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_favorites WHERE user_id = $1 AND property_id = $2)`,
		userID, propertyID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}
