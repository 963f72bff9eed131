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

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FavoritesHandler serves the saved-listings endpoints.
type FavoritesHandler struct {
	addUC    usecases_port.AddToFavoritesUseCase
	removeUC usecases_port.RemoveFromFavoritesUseCase
	listUC   usecases_port.GetUserFavoritesUseCase
	checkUC  usecases_port.CheckFavoriteUseCase
}

func NewFavoritesHandler(
	addUC usecases_port.AddToFavoritesUseCase,
	removeUC usecases_port.RemoveFromFavoritesUseCase,
	listUC usecases_port.GetUserFavoritesUseCase,
	checkUC usecases_port.CheckFavoriteUseCase,
) *FavoritesHandler {
	return &FavoritesHandler{
		addUC:    addUC,
		removeUC: removeUC,
		listUC:   listUC,
		checkUC:  checkUC,
	}
}

// GetUserFavorites handles GET /api/v1/favorites.
func (h *FavoritesHandler) GetUserFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserFavorites"})

	identity, ok := contextkeys.IdentityFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	handlerLogger := logger.WithFields(port.Fields{"user_id": identity.UserID.String()})

	result, pagination, err := h.listUC.Execute(r.Context(), identity.UserID, page, limit)
	if err != nil {
		handlerLogger.Error("Get user favorites use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve favorites")
		return
	}

	handlerLogger.Info("Successfully retrieved user favorites", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Items),
	})
	RespondWithJSON(w, http.StatusOK, PaginatedResponse{
		Success:    true,
		Data:       result.Items,
		Pagination: pagination,
	})
}

// AddToFavorites handles POST /api/v1/favorites.
func (h *FavoritesHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddToFavorites"})

	identity, ok := contextkeys.IdentityFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		logger.Warn("Invalid propertyId format in request", port.Fields{"provided_id": req.PropertyID})
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyId format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":     identity.UserID.String(),
		"property_id": propertyID.String(),
	})

	if err := h.addUC.Execute(r.Context(), identity.UserID, propertyID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrOwnFavorite):
			WriteJSONError(w, http.StatusBadRequest, "You cannot favorite your own listing")
		default:
			handlerLogger.Error("Add to favorites use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to add to favorites")
		}
		return
	}

	handlerLogger.Info("Successfully added listing to favorites", nil)
	w.WriteHeader(http.StatusCreated)
}

// RemoveFromFavorites handles DELETE /api/v1/favorites/{propertyID}.
func (h *FavoritesHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveFromFavorites"})

	identity, ok := contextkeys.IdentityFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyID in URL")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":     identity.UserID.String(),
		"property_id": propertyID.String(),
	})

	if err := h.removeUC.Execute(r.Context(), identity.UserID, propertyID); err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Favorite not found")
			return
		}
		handlerLogger.Error("Remove from favorites use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to remove from favorites")
		return
	}

	handlerLogger.Info("Successfully removed listing from favorites", nil)
	w.WriteHeader(http.StatusNoContent)
}

// CheckFavorite handles GET /api/v1/favorites/{propertyID}.
func (h *FavoritesHandler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CheckFavorite"})

	identity, ok := contextkeys.IdentityFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyID in URL")
		return
	}

	isFavorited, err := h.checkUC.Execute(r.Context(), identity.UserID, propertyID)
	if err != nil {
		logger.Error("Check favorite use case failed", err, port.Fields{"property_id": propertyID.String()})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to check favorite")
		return
	}

	RespondWithJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: map[string]bool{"isFavorited": isFavorited}})
}
