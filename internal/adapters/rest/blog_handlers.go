package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
	"property-service/internal/core/port/usecases_port"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// BlogHandler serves the marketplace blog endpoints.
type BlogHandler struct {
	listUC   usecases_port.ListBlogPostsUseCase
	getUC    usecases_port.GetBlogPostUseCase
	createUC usecases_port.CreateBlogPostUseCase
}

func NewBlogHandler(
	listUC usecases_port.ListBlogPostsUseCase,
	getUC usecases_port.GetBlogPostUseCase,
	createUC usecases_port.CreateBlogPostUseCase,
) *BlogHandler {
	return &BlogHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
	}
}

// ListPosts handles GET /api/v1/blog. Post bodies are left out of the
// listing, the excerpt is enough for the index page.
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListPosts"})

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	posts, pagination, err := h.listUC.Execute(r.Context(), page, limit)
	if err != nil {
		logger.Error("List blog posts use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve blog posts")
		return
	}

	items := make([]BlogPostResponse, len(posts))
	for i := range posts {
		items[i] = toBlogPostResponse(&posts[i], false)
	}

	RespondWithJSON(w, http.StatusOK, PaginatedResponse{
		Success:    true,
		Data:       items,
		Pagination: pagination,
	})
}

// GetPost handles GET /api/v1/blog/{slug}.
func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPost"})

	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		WriteJSONError(w, http.StatusBadRequest, "Missing slug")
		return
	}

	post, err := h.getUC.Execute(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrBlogPostNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Blog post not found")
			return
		}
		logger.Error("Get blog post use case failed", err, port.Fields{"slug": slug})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve blog post")
		return
	}

	RespondWithJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: toBlogPostResponse(post, true)})
}

// CreatePost handles POST /api/v1/blog.
func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreatePost"})

	identity, ok := contextkeys.IdentityFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		WriteJSONError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	post := domain.NewBlogPost(req.Title, req.Excerpt, req.Content, req.Image, req.Tags, req.Published, identity.UserID)
	if err := h.createUC.Execute(r.Context(), post); err != nil {
		logger.Error("Create blog post use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create blog post")
		return
	}

	logger.Info("Blog post created", port.Fields{"post_id": post.ID.String(), "slug": post.Slug})
	RespondWithJSON(w, http.StatusCreated, SuccessResponse{Success: true, Data: toBlogPostResponse(post, true)})
}
