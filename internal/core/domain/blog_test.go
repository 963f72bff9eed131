package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain title", "Buying Your First Home", "buying-your-first-home"},
		{"punctuation stripped", "Rent vs. Buy: What's Right?", "rent-vs-buy-whats-right"},
		{"collapsed whitespace", "  Lots   of   spaces  ", "lots-of-spaces"},
		{"digits kept", "Top 10 Areas in 2026", "top-10-areas-in-2026"},
		{"empty title", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugify_CapsLengthWithoutTrailingDash(t *testing.T) {
	long := strings.Repeat("market update ", 10)
	slug := Slugify(long)

	assert.LessOrEqual(t, len(slug), 50)
	assert.False(t, strings.HasSuffix(slug, "-"))
}

func TestBlogPost_ReadingTime(t *testing.T) {
	empty := &BlogPost{}
	assert.Equal(t, 0, empty.ReadingTime())

	short := &BlogPost{Content: "just a few words here"}
	assert.Equal(t, 1, short.ReadingTime(), "anything non-empty reads for at least a minute")

	long := &BlogPost{Content: strings.Repeat("word ", 450)}
	assert.Equal(t, 3, long.ReadingTime())
}

func TestNewBlogPost(t *testing.T) {
	authorID := uuid.New()
	post := NewBlogPost("  Guide to Lekki  ", "Short intro", "Body text here.", "", []string{" Homes ", ""}, true, authorID)

	assert.Equal(t, "Guide to Lekki", post.Title)
	assert.Equal(t, "guide-to-lekki", post.Slug)
	assert.Equal(t, []string{"homes"}, post.Tags)
	assert.True(t, post.Published)
	assert.Equal(t, authorID, post.AuthorID)
	assert.NotEqual(t, uuid.Nil, post.ID)
}
