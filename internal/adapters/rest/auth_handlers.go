package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"
	"idx-service/internal/core/port/usecases_port"
)

type AuthHandlers struct {
	registerUC usecases_port.RegisterUserUseCasePort
	loginUC    usecases_port.LoginUserUseCasePort
}

func NewAuthHandlers(registerUC usecases_port.RegisterUserUseCasePort, loginUC usecases_port.LoginUserUseCasePort) *AuthHandlers {
	return &AuthHandlers{
		registerUC: registerUC,
		loginUC:    loginUC,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Register"})

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode register request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		logger.Warn("Email and password are required", nil)
		WriteJSONError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"email": req.Email})
	handlerLogger.Info("Processing register request", nil)

	user, token, err := h.registerUC.Execute(r.Context(), req.Email, req.Name, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			handlerLogger.Warn("Registration failed: email already in use", nil)
			WriteJSONError(w, http.StatusConflict, "Email already in use")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	RespondWithJSON(w, http.StatusCreated, AuthResponse{User: toUserResponse(user), Token: token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode login request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"email": req.Email})
	handlerLogger.Info("Processing login request", nil)

	user, token, err := h.loginUC.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown user and wrong password are indistinguishable to the client.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			handlerLogger.Warn("Login rejected", nil)
			WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to login")
		return
	}

	RespondWithJSON(w, http.StatusOK, AuthResponse{User: toUserResponse(user), Token: token})
}

// Me handles GET /api/auth/me (authenticated).
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{
		"id":    claims.UserID.String(),
		"email": claims.Email,
		"role":  claims.Role,
	})
}
