package rest

import (
	"net/http"

	"github.com/heartmarshall/fastslide-backend/internal/framework"
)

// FrameworkHandler exposes the static content and hook angle catalogues.
type FrameworkHandler struct{}

// NewFrameworkHandler creates a FrameworkHandler.
func NewFrameworkHandler() *FrameworkHandler {
	return &FrameworkHandler{}
}

// ContentAngles handles GET /api/frameworks/content-angles.
func (h *FrameworkHandler) ContentAngles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, mapSlice(framework.ContentAngles(), toContentAngleResponse))
}

// HookAngles handles GET /api/frameworks/hook-angles.
func (h *FrameworkHandler) HookAngles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, mapSlice(framework.HookAngles(), toHookAngleResponse))
}
