package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nextstep-ai/guide-server/internal/advisor"
	"github.com/nextstep-ai/guide-server/internal/ai"
	"github.com/nextstep-ai/guide-server/internal/assessment"
	"github.com/nextstep-ai/guide-server/internal/auth"
	"github.com/nextstep-ai/guide-server/internal/education"
	"github.com/nextstep-ai/guide-server/internal/goals"
	"github.com/nextstep-ai/guide-server/internal/httpapi"
	"github.com/nextstep-ai/guide-server/internal/occupations"
	"github.com/nextstep-ai/guide-server/internal/platform/cache"
	"github.com/nextstep-ai/guide-server/internal/platform/config"
	"github.com/nextstep-ai/guide-server/internal/platform/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(newLogHandler(cfg.Log))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Postgres is optional; without it everything lives in memory and is
	// lost on restart.
	var db *database.DB
	if cfg.Database.URL != "" {
		db, err = database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
		slog.Info("database connected")
	} else {
		slog.Warn("no database configured, using in-memory stores")
	}

	var redis *cache.Cache
	if cfg.Cache.URL != "" {
		redis, err = cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			slog.Error("failed to connect to cache", "error", err)
			os.Exit(1)
		}
		defer redis.Close()
		slog.Info("cache connected")
	}

	var (
		users   auth.UserStore
		records assessment.RecordStore
		goalsDB goals.Store
	)
	if db != nil {
		users = auth.NewPostgresUserStore(db.Pool)
		records, err = assessment.NewPostgresRecordStore(db.Pool)
		if err != nil {
			slog.Error("failed to create record store", "error", err)
			os.Exit(1)
		}
		goalsDB = goals.NewPostgresStore(db.Pool)
	} else {
		users = auth.NewMemoryUserStore()
		records = assessment.NewMemoryRecordStore()
		goalsDB = goals.NewMemoryStore()
	}

	var creds auth.CredentialStore
	if redis != nil {
		creds = auth.NewCacheCredentialStore(redis, cfg.Auth.OTPTTL, cfg.Auth.SessionTTL)
	} else {
		creds = auth.NewMemoryCredentialStore(cfg.Auth.OTPTTL, cfg.Auth.SessionTTL)
	}
	authSvc := auth.NewService(users, creds, cfg.Auth.SimulatedOTP)

	router := ai.NewRouter()
	if cfg.AI.Google.APIKey != "" {
		router.Register("google", ai.NewGoogleProvider(cfg.AI.Google.APIKey,
			ai.WithGoogleModels(cfg.AI.Google.TextModel, cfg.AI.Google.ImageModel)))
	}
	if cfg.AI.OpenAI.APIKey != "" {
		router.Register("openai", ai.NewOpenAIProvider(cfg.AI.OpenAI.APIKey))
	}
	if !router.HasProvider() {
		slog.Warn("no AI provider configured, narrative generation disabled")
	}

	adv := advisor.New(router)
	submissions := advisor.NewService(adv, records)
	mentor := advisor.NewMentor(router, advisor.NewMemoryMentorStore())

	occ := occupations.NewService(cfg.Occupations.SourceURL, cfg.Occupations.Format,
		nil, occupations.NewDatasetCache(redis))
	go func() {
		if err := occ.Bootstrap(ctx); err != nil {
			slog.Error("occupation dataset bootstrap failed", "error", err)
		}
	}()

	eduLoader, err := education.NewLoader()
	if err != nil {
		slog.Error("failed to load education data", "error", err)
		os.Exit(1)
	}

	srv := httpapi.NewServer(httpapi.Deps{
		Auth:        authSvc,
		Submissions: submissions,
		Advisor:     adv,
		Mentor:      mentor,
		Goals:       goalsDB,
		Occupations: occ,
		Education:   eduLoader,
		Ready:       readiness(db, redis),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      srv.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// readiness reports connectivity of whichever backends are configured.
func readiness(db *database.DB, redis *cache.Cache) func(ctx context.Context) error {
	if db == nil && redis == nil {
		return nil
	}
	return func(ctx context.Context) error {
		if db != nil {
			if err := db.HealthCheck(ctx); err != nil {
				return fmt.Errorf("database: %w", err)
			}
		}
		if redis != nil {
			if err := redis.HealthCheck(ctx); err != nil {
				return fmt.Errorf("cache: %w", err)
			}
		}
		return nil
	}
}

func newLogHandler(cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: logLevel(cfg.Level)}
	if cfg.Format == "text" {
		return slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.NewJSONHandler(os.Stdout, opts)
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
