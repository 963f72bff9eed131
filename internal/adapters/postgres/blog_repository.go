package postgres

import (
	"context"
	"errors"
	"fmt"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BlogRepository implements BlogRepositoryPort for PostgreSQL.
type BlogRepository struct {
	pool *pgxpool.Pool
}

func NewBlogRepository(pool *pgxpool.Pool) (*BlogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &BlogRepository{pool: pool}, nil
}

func (r *BlogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "BlogRepository",
		"method":    "Create",
		"post_id":   post.ID.String(),
	})

	query := `
		INSERT INTO blog_posts (id, title, slug, excerpt, content, image, tags,
		                        published, author_id, views, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content, post.Image, post.Tags,
		post.Published, post.AuthorID, post.Views, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		repoLogger.Error("Failed to insert blog post", err, nil)
		return fmt.Errorf("failed to insert blog post: %w", err)
	}

	repoLogger.Debug("Blog post inserted.", nil)
	return nil
}

// FindPublished returns one page of published posts, newest first.
func (r *BlogRepository) FindPublished(ctx context.Context, limit, offset int) (*domain.PaginatedBlogPosts, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "BlogRepository",
		"method":    "FindPublished",
		"limit":     limit,
		"offset":    offset,
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var totalCount int64
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM blog_posts WHERE published = true`).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count blog posts", err, nil)
		return nil, fmt.Errorf("failed to count blog posts: %w", err)
	}

	if totalCount == 0 {
		return &domain.PaginatedBlogPosts{Posts: []domain.BlogPost{}, TotalCount: 0}, nil
	}

	rows, err := tx.Query(ctx, `
		SELECT id, title, slug, excerpt, content, image, tags,
		       published, author_id, views, created_at, updated_at
		FROM blog_posts
		WHERE published = true
		ORDER BY created_at DESC, id ASC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		repoLogger.Error("Failed to query blog posts", err, nil)
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.BlogPost, 0, limit)
	for rows.Next() {
		var post domain.BlogPost
		if err := rows.Scan(
			&post.ID, &post.Title, &post.Slug, &post.Excerpt, &post.Content, &post.Image, &post.Tags,
			&post.Published, &post.AuthorID, &post.Views, &post.CreatedAt, &post.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during blog posts iteration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Successfully found blog posts for page", port.Fields{"count": len(posts)})
	return &domain.PaginatedBlogPosts{Posts: posts, TotalCount: totalCount}, nil
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, slug, excerpt, content, image, tags,
		       published, author_id, views, created_at, updated_at
		FROM blog_posts
		WHERE slug = $1 AND published = true`, slug).
		Scan(&post.ID, &post.Title, &post.Slug, &post.Excerpt, &post.Content, &post.Image, &post.Tags,
			&post.Published, &post.AuthorID, &post.Views, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return &post, nil
}

func (r *BlogRepository) IncrementViews(ctx context.Context, slug string) error {
	_, err := r.pool.Exec(ctx, `UPDATE blog_posts SET views = views + 1 WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}
