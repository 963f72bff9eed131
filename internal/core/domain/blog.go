package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

const slugMaxLength = 50

// BlogPost is one article of the marketplace blog.
type BlogPost struct {
	ID        uuid.UUID
	Title     string
	Slug      string
	Excerpt   string
	Content   string
	Image     string
	Tags      []string
	Published bool
	AuthorID  uuid.UUID
	Views     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBlogPost creates a post, deriving the slug from the title when none
// is supplied.
func NewBlogPost(title, excerpt, content, image string, tags []string, published bool, authorID uuid.UUID) *BlogPost {
	now := time.Now().UTC()
	return &BlogPost{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(title),
		Slug:      Slugify(title),
		Excerpt:   strings.TrimSpace(excerpt),
		Content:   strings.TrimSpace(content),
		Image:     strings.TrimSpace(image),
		Tags:      normalizeTags(tags),
		Published: published,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ReadingTime estimates the reading time in minutes at 200 words per
// minute, never less than one minute for non-empty content.
func (b *BlogPost) ReadingTime() int {
	words := len(strings.Fields(b.Content))
	if words == 0 {
		return 0
	}
	const wordsPerMinute = 200
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// Slugify lowercases the title, strips everything but letters, digits
// and spaces, and joins the words with dashes, capped at 50 characters.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	slug := strings.Join(strings.Fields(b.String()), "-")
	if len(slug) > slugMaxLength {
		slug = slug[:slugMaxLength]
		slug = strings.TrimRight(slug, "-")
	}
	return slug
}

// PaginatedBlogPosts is the repository response for the post listing.
type PaginatedBlogPosts struct {
	Posts      []BlogPost
	TotalCount int64
}
