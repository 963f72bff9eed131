package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
	"property-service/internal/core/port/usecases_port"
	"strings"
)

// AuthHandler serves registration, login and the current-user endpoint.
type AuthHandler struct {
	registerUC usecases_port.RegisterUserUseCase
	loginUC    usecases_port.LoginUserUseCase
	getUserUC  usecases_port.GetUserUseCase
}

func NewAuthHandler(
	registerUC usecases_port.RegisterUserUseCase,
	loginUC usecases_port.LoginUserUseCase,
	getUserUC usecases_port.GetUserUseCase,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		getUserUC:  getUserUC,
	}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Register"})

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || len(req.Password) < 6 {
		WriteJSONError(w, http.StatusBadRequest, "Name, email and a password of at least 6 characters are required")
		return
	}

	user, err := h.registerUC.Execute(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			WriteJSONError(w, http.StatusConflict, "Email is already registered")
			return
		}
		logger.Error("Register user use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	logger.Info("User registered", port.Fields{"user_id": user.ID.String()})
	RespondWithJSON(w, http.StatusCreated, SuccessResponse{Success: true, Data: AuthResponse{User: toUserResponse(user)}})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := h.loginUC.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logger.Error("Login use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	logger.Info("User logged in", port.Fields{"user_id": user.ID.String()})
	RespondWithJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: AuthResponse{Token: token, User: toUserResponse(user)}})
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Me"})

	identity, ok := contextkeys.IdentityFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.getUserUC.Execute(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		logger.Error("Get user use case failed", err, port.Fields{"user_id": identity.UserID.String()})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}

	RespondWithJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: toUserResponse(user)})
}
