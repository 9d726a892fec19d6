package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/common"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/services"
)

// tokenValidity is how long issued bearer tokens remain valid.
const tokenValidity = 7 * 24 * time.Hour

type AuthHandler struct {
	Auth      services.AuthService
	JWTSecret string
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

type registerRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	MinistryCode string `json:"ministryCode"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password required")
		return
	}

	session, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, authErrorStatus(err), err.Error())
		return
	}

	token, err := h.createToken(session)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create token")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Token:    token,
		Username: session.Username,
		Role:     session.Role,
		Name:     session.Name,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Username == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "username, password and name required")
		return
	}

	if err := h.Auth.Register(r.Context(), req.Username, req.Password, req.Name, req.MinistryCode); err != nil {
		writeError(w, authErrorStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "pending approval"})
}

func (h *AuthHandler) createToken(session *models.Session) (string, error) {
	claims := &Claims{
		Username: session.Username,
		Role:     session.Role,
		Name:     session.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenValidity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.JWTSecret))
}

// authErrorStatus maps registry error kinds to HTTP statuses. Messages are
// passed through verbatim; the kind is what picks the code.
func authErrorStatus(err error) int {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrPendingApproval),
		errors.Is(err, common.ErrAccountDisabled),
		errors.Is(err, common.ErrorUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, common.ErrInvalidMinistryCode):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrUsernameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
