package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/fastslide-backend/internal/config"
	"github.com/heartmarshall/fastslide-backend/internal/transport/middleware"
)

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health         *HealthHandler
	Brainstorm     *BrainstormHandler
	ContextProfile *ContextProfileHandler
	Presentation   *PresentationHandler
	Slide          *SlideHandler
	Image          *ImageHandler
	Framework      *FrameworkHandler
	Generation     *GenerationHandler
	User           *UserHandler
}

// RouterConfig carries the cross-cutting settings of the HTTP stack.
type RouterConfig struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	RateLimiter *middleware.RateLimiter
	UserID      uuid.UUID
}

// NewRouter builds the ServeMux and wraps it in the middleware chain.
// Model-backed endpoints sit behind a second, tighter rate limit.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	gen := cfg.RateLimiter.Limit("generation", cfg.RateLimit.GenerationPerMinute)
	limited := func(fn http.HandlerFunc) http.Handler { return middleware.Wrap(fn, gen) }

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/me", h.User.Me)

	mux.HandleFunc("GET /api/frameworks/content-angles", h.Framework.ContentAngles)
	mux.HandleFunc("GET /api/frameworks/hook-angles", h.Framework.HookAngles)

	mux.HandleFunc("GET /api/brainstorms", h.Brainstorm.List)
	mux.HandleFunc("POST /api/brainstorms", h.Brainstorm.Create)
	mux.HandleFunc("GET /api/brainstorms/{id}", h.Brainstorm.Get)
	mux.HandleFunc("PATCH /api/brainstorms/{id}", h.Brainstorm.Update)
	mux.HandleFunc("DELETE /api/brainstorms/{id}", h.Brainstorm.Delete)

	mux.HandleFunc("GET /api/context-profiles", h.ContextProfile.List)
	mux.HandleFunc("POST /api/context-profiles", h.ContextProfile.Create)
	mux.HandleFunc("POST /api/context-profiles/default", h.ContextProfile.CreateDefault)
	mux.HandleFunc("GET /api/context-profiles/{id}", h.ContextProfile.Get)
	mux.HandleFunc("PATCH /api/context-profiles/{id}", h.ContextProfile.Update)
	mux.HandleFunc("DELETE /api/context-profiles/{id}", h.ContextProfile.Delete)

	mux.HandleFunc("GET /api/presentations", h.Presentation.List)
	mux.HandleFunc("POST /api/presentations", h.Presentation.Create)
	mux.Handle("POST /api/presentations/generate", limited(h.Presentation.Generate))
	mux.Handle("POST /api/presentations/quick-start", limited(h.Presentation.QuickStart))
	mux.HandleFunc("GET /api/presentations/{id}", h.Presentation.Get)
	mux.HandleFunc("PATCH /api/presentations/{id}", h.Presentation.Update)
	mux.HandleFunc("DELETE /api/presentations/{id}", h.Presentation.Delete)

	mux.HandleFunc("GET /api/presentations/{id}/slides", h.Slide.List)
	mux.HandleFunc("POST /api/presentations/{id}/slides", h.Slide.Create)
	mux.HandleFunc("PUT /api/presentations/{id}/slides/order", h.Slide.Reorder)
	mux.HandleFunc("GET /api/presentations/{id}/slides/{slideID}", h.Slide.Get)
	mux.HandleFunc("PATCH /api/presentations/{id}/slides/{slideID}", h.Slide.Update)
	mux.HandleFunc("DELETE /api/presentations/{id}/slides/{slideID}", h.Slide.Delete)

	mux.Handle("POST /api/generation/content", limited(h.Generation.Content))

	mux.Handle("POST /api/images/generate", limited(h.Image.Generate))
	mux.HandleFunc("GET /api/images", h.Image.List)
	mux.HandleFunc("POST /api/images", h.Image.Save)
	mux.HandleFunc("GET /api/images/stats", h.Image.Stats)
	mux.HandleFunc("PATCH /api/images/{id}/tags", h.Image.UpdateTags)
	mux.HandleFunc("DELETE /api/images/{id}", h.Image.Delete)

	// Metrics reads the pattern the mux stores on the request, so it must
	// wrap the mux directly.
	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(cfg.Logger),
		middleware.Identity(cfg.UserID),
		middleware.Logger(cfg.Logger),
		middleware.CORS(cfg.CORS),
		cfg.RateLimiter.Limit("general", cfg.RateLimit.RequestsPerMinute),
		middleware.Metrics(),
	)(mux)
}
