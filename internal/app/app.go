package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/fastslide-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/fastslide-backend/internal/adapter/postgres/audit"
	brainstormrepo "github.com/heartmarshall/fastslide-backend/internal/adapter/postgres/brainstorm"
	profilerepo "github.com/heartmarshall/fastslide-backend/internal/adapter/postgres/contextprofile"
	libraryrepo "github.com/heartmarshall/fastslide-backend/internal/adapter/postgres/imagelibrary"
	presentationrepo "github.com/heartmarshall/fastslide-backend/internal/adapter/postgres/presentation"
	sliderepo "github.com/heartmarshall/fastslide-backend/internal/adapter/postgres/slide"
	userrepo "github.com/heartmarshall/fastslide-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/fastslide-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/fastslide-backend/internal/adapter/provider/limiter"
	"github.com/heartmarshall/fastslide-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/fastslide-backend/internal/config"
	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/service/brainstorm"
	"github.com/heartmarshall/fastslide-backend/internal/service/contextprofile"
	"github.com/heartmarshall/fastslide-backend/internal/service/generation"
	"github.com/heartmarshall/fastslide-backend/internal/service/imagegen"
	"github.com/heartmarshall/fastslide-backend/internal/service/imagelibrary"
	"github.com/heartmarshall/fastslide-backend/internal/service/presentation"
	"github.com/heartmarshall/fastslide-backend/internal/service/slide"
	"github.com/heartmarshall/fastslide-backend/internal/service/user"
	"github.com/heartmarshall/fastslide-backend/internal/transport/middleware"
	"github.com/heartmarshall/fastslide-backend/internal/transport/rest"
)

const rateLimiterCleanup = time.Minute

type chatCompleter interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

// Run is the application entry point. It loads configuration, connects to
// the database, provisions the demo user, wires the services and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.RegisterPoolMetrics(prometheus.DefaultRegisterer, pool); err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	handler, stop, err := buildHandler(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// buildHandler wires repositories, providers, services and handlers. The
// returned stop func releases background resources.
func buildHandler(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func(), error) {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	brainstorms := brainstormrepo.New(pool)
	profiles := profilerepo.New(pool)
	presentations := presentationrepo.New(pool)
	slides := sliderepo.New(pool)
	library := libraryrepo.New(pool)
	audit := auditrepo.New(pool)

	userSvc := user.NewService(logger, users, user.DemoUser{Email: cfg.Demo.Email, Name: cfg.Demo.Name})
	demo, err := userSvc.EnsureDemoUser(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("provision demo user: %w", err)
	}

	outbound := limiter.New(cfg.LLM.RequestsPerSecond, 1)
	llm, llmMode := newCompleter(cfg, logger)
	genSvc := generation.NewService(logger, limiter.NewCompleter(llm, outbound, cfg.LLM.Provider), generation.Options{
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})

	imageClient := openai.NewImageClient(openai.Config{
		APIKey:  cfg.ImageAPIKey(),
		BaseURL: cfg.LLM.OpenAIBaseURL,
		Timeout: cfg.LLM.Timeout,
	}, logger)
	imageSvc := imagegen.NewService(logger,
		limiter.NewImageGenerator(imageClient, outbound, "openai"),
		library,
		imagegen.Models{
			Primary:     cfg.Image.PrimaryModel,
			Fallback:    cfg.Image.FallbackModel,
			DefaultSize: domain.ImageSize(cfg.Image.DefaultSize),
		},
	)

	brainstormSvc := brainstorm.NewService(logger, brainstorms, audit, txm)
	profileSvc := contextprofile.NewService(logger, profiles, audit, txm)
	presentationSvc := presentation.NewService(logger,
		presentations, brainstorms, profiles, slides,
		brainstormSvc, profileSvc, genSvc, audit, txm,
	)
	slideSvc := slide.NewService(logger, slides, presentations, audit, txm)
	librarySvc := imagelibrary.NewService(logger, library, audit, txm)

	rl := middleware.NewRateLimiter(rateLimiterCleanup)

	handler := rest.NewRouter(rest.Handlers{
		Health:         rest.NewHealthHandler(pool, BuildVersion(), llmMode, imageClient.HasCredential()),
		Brainstorm:     rest.NewBrainstormHandler(brainstormSvc, logger),
		ContextProfile: rest.NewContextProfileHandler(profileSvc, logger),
		Presentation:   rest.NewPresentationHandler(presentationSvc, logger),
		Slide:          rest.NewSlideHandler(slideSvc, logger),
		Image:          rest.NewImageHandler(imageSvc, librarySvc, logger),
		Framework:      rest.NewFrameworkHandler(),
		Generation:     rest.NewGenerationHandler(genSvc, logger),
		User:           rest.NewUserHandler(userSvc, logger),
	}, rest.RouterConfig{
		Logger:      logger,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		RateLimiter: rl,
		UserID:      demo.ID,
	})

	return handler, rl.Stop, nil
}

// newCompleter picks the chat backend. The second value names it for the
// health endpoint; without a key generation always takes the fallback path.
func newCompleter(cfg *config.Config, logger *slog.Logger) (chatCompleter, string) {
	if cfg.LLM.Provider == "anthropic" {
		// LLM_MODEL defaults to an OpenAI model name; leave it to the adapter default.
		model := cfg.LLM.Model
		if strings.HasPrefix(model, "gpt-") {
			model = ""
		}
		c := anthropic.NewChatClient(anthropic.Config{
			APIKey:  cfg.LLM.AnthropicAPIKey,
			BaseURL: cfg.LLM.AnthropicBaseURL,
			Model:   model,
			Timeout: cfg.LLM.Timeout,
		}, logger)
		if cfg.LLM.AnthropicAPIKey == "" {
			return c, "fallback"
		}
		return c, c.Name()
	}

	c := openai.NewChatClient(openai.Config{
		APIKey:  cfg.LLM.OpenAIAPIKey,
		BaseURL: cfg.LLM.OpenAIBaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)
	if cfg.LLM.OpenAIAPIKey == "" {
		return c, "fallback"
	}
	return c, c.Name()
}
