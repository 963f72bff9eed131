package rest

import (
	"property-service/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// SuccessResponse is the envelope for single-object responses.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// SearchResponse is the envelope of the listing endpoint: the page of
// property cards plus pagination metadata and the echoed filter state.
type SearchResponse struct {
	Success    bool                  `json:"success"`
	Data       []domain.PropertyCard `json:"data"`
	Pagination domain.Pagination     `json:"pagination"`
	Filters    domain.AppliedFilters `json:"filters"`
}

// PaginatedResponse is the envelope for the favorites and blog listings.
type PaginatedResponse struct {
	Success    bool              `json:"success"`
	Data       interface{}       `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

// PropertyPayload is the request body of the create and update
// endpoints. The raw body is validated against the JSON schema contract
// before it is decoded into this struct.
type PropertyPayload struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Type        string                 `json:"type"`
	Category    string                 `json:"category"`
	Price       float64                `json:"price"`
	Currency    string                 `json:"currency"`
	Location    domain.Location        `json:"location"`
	Bedrooms    int                    `json:"bedrooms"`
	Bathrooms   int                    `json:"bathrooms"`
	Size        float64                `json:"size"`
	SizeUnit    string                 `json:"sizeUnit"`
	Images      []domain.PropertyImage `json:"images"`
	Features    []string               `json:"features"`
	Amenities   []string               `json:"amenities"`
	Status      string                 `json:"status"`
}

func (p PropertyPayload) toDraft() domain.PropertyDraft {
	return domain.PropertyDraft{
		Title:       p.Title,
		Description: p.Description,
		Type:        p.Type,
		Category:    p.Category,
		Price:       p.Price,
		Currency:    p.Currency,
		Location:    p.Location,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Size:        p.Size,
		SizeUnit:    p.SizeUnit,
		Images:      p.Images,
		Features:    p.Features,
		Amenities:   p.Amenities,
		Status:      p.Status,
	}
}

// PropertyResponse is the detail projection of a listing.
type PropertyResponse struct {
	ID          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Type        string                 `json:"type"`
	Category    string                 `json:"category"`
	Price       float64                `json:"price"`
	Currency    string                 `json:"currency"`
	Location    domain.Location        `json:"location"`
	Bedrooms    int                    `json:"bedrooms"`
	Bathrooms   int                    `json:"bathrooms"`
	Size        float64                `json:"size"`
	SizeUnit    string                 `json:"sizeUnit"`
	Images      []domain.PropertyImage `json:"images"`
	Features    []string               `json:"features"`
	Amenities   []string               `json:"amenities"`
	Status      string                 `json:"status"`
	IsFeatured  bool                   `json:"isFeatured"`
	Views       int64                  `json:"views"`
	OwnerID     uuid.UUID              `json:"owner"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

func toPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Type:        p.Type,
		Category:    p.Category,
		Price:       p.Price,
		Currency:    p.Currency,
		Location:    p.Location,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Size:        p.Size,
		SizeUnit:    p.SizeUnit,
		Images:      p.Images,
		Features:    p.Features,
		Amenities:   p.Amenities,
		Status:      p.Status,
		IsFeatured:  p.IsFeatured,
		Views:       p.Views,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public projection of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is the body returned by register and login.
type AuthResponse struct {
	Token string       `json:"token,omitempty"`
	User  UserResponse `json:"user"`
}

// AddFavoriteRequest is the body of POST /favorites.
type AddFavoriteRequest struct {
	PropertyID string `json:"propertyId"`
}

// CreateBlogPostRequest is the body of POST /blog.
type CreateBlogPostRequest struct {
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Image     string   `json:"image"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

// BlogPostResponse adds the derived reading time to a post.
type BlogPostResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content,omitempty"`
	Image       string    `json:"image"`
	Tags        []string  `json:"tags"`
	AuthorID    uuid.UUID `json:"author"`
	Views       int64     `json:"views"`
	ReadingTime int       `json:"readingTime"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toBlogPostResponse(post *domain.BlogPost, includeContent bool) BlogPostResponse {
	resp := BlogPostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Excerpt:     post.Excerpt,
		Image:       post.Image,
		Tags:        post.Tags,
		AuthorID:    post.AuthorID,
		Views:       post.Views,
		ReadingTime: post.ReadingTime(),
		CreatedAt:   post.CreatedAt,
	}
	if includeContent {
		resp.Content = post.Content
	}
	return resp
}
