package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

type userService interface {
	GetCurrentUser(ctx context.Context) (*domain.User, error)
}

// UserHandler serves /api/me.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

// Me handles GET /api/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetCurrentUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: u.ID.String(), Email: u.Email, Name: u.Name})
}
