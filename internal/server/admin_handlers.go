package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/services"
)

// AdminHandler exposes the approval workflow. Routes are mounted behind
// Auth + RequireAdmin; the registry checks the acting role a second time so
// the rule holds even for direct (non-HTTP) callers.
type AdminHandler struct {
	Auth services.AuthService
}

func (h *AdminHandler) Pending(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	pending, err := h.Auth.PendingUsers(r.Context(), claims.Role)
	if err != nil {
		writeError(w, authErrorStatus(err), err.Error())
		return
	}

	// Never expose stored passwords through the API.
	type pendingUser struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Role     string `json:"role"`
		Status   string `json:"status"`
		JoinedAt string `json:"joinedAt"`
	}
	out := make([]pendingUser, 0, len(pending))
	for _, u := range pending {
		out = append(out, pendingUser{
			Username: u.Username,
			Name:     u.Name,
			Role:     u.Role,
			Status:   u.Status,
			JoinedAt: u.JoinedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	username := chi.URLParam(r, "username")

	if err := h.Auth.ApproveUser(r.Context(), claims.Role, username); err != nil {
		writeError(w, authErrorStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"username": username, "status": "APPROVED"})
}

func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	username := chi.URLParam(r, "username")

	if err := h.Auth.RejectUser(r.Context(), claims.Role, username); err != nil {
		writeError(w, authErrorStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"username": username, "status": "REJECTED"})
}
