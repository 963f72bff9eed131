package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"property-service/internal/contextkeys"
	"property-service/internal/contracts"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
	"property-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// PropertiesHandler serves the listing, detail, write and stats
// endpoints.
type PropertiesHandler struct {
	searchUC usecases_port.SearchPropertiesUseCase
	getUC    usecases_port.GetPropertyUseCase
	createUC usecases_port.CreatePropertyUseCase
	updateUC usecases_port.UpdatePropertyUseCase
	deleteUC usecases_port.DeletePropertyUseCase
	statsUC  usecases_port.GetPropertyStatsUseCase
}

func NewPropertiesHandler(
	searchUC usecases_port.SearchPropertiesUseCase,
	getUC usecases_port.GetPropertyUseCase,
	createUC usecases_port.CreatePropertyUseCase,
	updateUC usecases_port.UpdatePropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase,
	statsUC usecases_port.GetPropertyStatsUseCase,
) *PropertiesHandler {
	return &PropertiesHandler{
		searchUC: searchUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		statsUC:  statsUC,
	}
}

// SearchProperties handles GET /api/v1/properties.
func (h *PropertiesHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SearchProperties"})

	// first value wins for repeated parameters
	raw := make(map[string]string, len(r.URL.Query()))
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			raw[key] = values[0]
		}
	}

	var identity *domain.Identity
	if id, ok := contextkeys.IdentityFromContext(r.Context()); ok {
		identity = &id
	}

	result, err := h.searchUC.Execute(r.Context(), raw, identity)
	if err != nil {
		logger.Error("Search properties use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve properties")
		return
	}

	logger.Info("Successfully retrieved properties", port.Fields{
		"total_found":   result.Pagination.Total,
		"items_on_page": len(result.Items),
	})
	RespondWithJSON(w, http.StatusOK, SearchResponse{
		Success:    true,
		Data:       result.Items,
		Pagination: result.Pagination,
		Filters:    result.Filters,
	})
}

// GetProperty handles GET /api/v1/properties/{propertyID}.
func (h *PropertiesHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProperty"})

	id, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	property, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Get property use case failed", err, port.Fields{"property_id": id.String()})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve property")
		return
	}

	RespondWithJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: toPropertyResponse(property)})
}

// CreateProperty handles POST /api/v1/properties.
func (h *PropertiesHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	identity, ok := contextkeys.IdentityFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	payload, ok := decodePropertyPayload(w, r, contracts.SchemaPropertyCreate, logger)
	if !ok {
		return
	}

	property, err := h.createUC.Execute(r.Context(), payload.toDraft(), identity)
	if err != nil {
		logger.Error("Create property use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create property")
		return
	}

	logger.Info("Property created", port.Fields{"property_id": property.ID.String()})
	RespondWithJSON(w, http.StatusCreated, SuccessResponse{Success: true, Data: toPropertyResponse(property)})
}

// UpdateProperty handles PUT /api/v1/properties/{propertyID}.
func (h *PropertiesHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	identity, ok := contextkeys.IdentityFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	payload, ok := decodePropertyPayload(w, r, contracts.SchemaPropertyUpdate, logger)
	if !ok {
		return
	}

	property, err := h.updateUC.Execute(r.Context(), id, payload.toDraft(), identity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "Only the owner or an admin can update a listing")
		default:
			logger.Error("Update property use case failed", err, port.Fields{"property_id": id.String()})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to update property")
		}
		return
	}

	logger.Info("Property updated", port.Fields{"property_id": property.ID.String()})
	RespondWithJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: toPropertyResponse(property)})
}

// DeleteProperty handles DELETE /api/v1/properties/{propertyID}. The
// listing is deactivated, not removed.
func (h *PropertiesHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteProperty"})

	identity, ok := contextkeys.IdentityFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id, identity); err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "Only the owner or an admin can delete a listing")
		default:
			logger.Error("Delete property use case failed", err, port.Fields{"property_id": id.String()})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to delete property")
		}
		return
	}

	logger.Info("Property deactivated", port.Fields{"property_id": id.String()})
	RespondWithJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: map[string]string{"message": "Property deleted"}})
}

// GetStats handles GET /api/v1/properties/stats/summary.
func (h *PropertiesHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetStats"})

	stats, err := h.statsUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get property stats use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve stats")
		return
	}

	RespondWithJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: stats})
}

// decodePropertyPayload reads the body, validates it against the named
// JSON schema and decodes it. It writes the error response itself and
// reports success through the second return value.
func decodePropertyPayload(w http.ResponseWriter, r *http.Request, schemaName string, logger port.LoggerPort) (PropertyPayload, bool) {
	var payload PropertyPayload

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return payload, false
	}

	if err := contracts.ValidatePayload(schemaName, body); err != nil {
		logger.Warn("Property payload failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property payload: "+err.Error())
		return payload, false
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return payload, false
	}

	return payload, true
}
