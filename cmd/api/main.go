package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FIKE110/inverta/internal/appliances"
	"github.com/FIKE110/inverta/internal/auth"
	"github.com/FIKE110/inverta/internal/branding"
	"github.com/FIKE110/inverta/internal/catalog"
	"github.com/FIKE110/inverta/internal/estimator"
	estimatorsvc "github.com/FIKE110/inverta/internal/estimator/service"
	"github.com/FIKE110/inverta/internal/events"
	apphttp "github.com/FIKE110/inverta/internal/http"
	"github.com/FIKE110/inverta/internal/http/router"
	"github.com/FIKE110/inverta/internal/leads"
	"github.com/FIKE110/inverta/internal/notification"
	"github.com/FIKE110/inverta/internal/notification/email"
	"github.com/FIKE110/inverta/internal/scheduler"
	"github.com/FIKE110/inverta/platform/config"
	"github.com/FIKE110/inverta/platform/db"
	"github.com/FIKE110/inverta/platform/logger"
	"github.com/FIKE110/inverta/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	redisClient := initRedis(cfg, log)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	followUpScheduler, closeScheduler := initFollowUpScheduler(cfg, log)
	if closeScheduler != nil {
		defer closeScheduler()
	}

	sender := initEmailSender(cfg, log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module reacts to domain events and serves the SSE stream
	notificationModule := notification.NewModule(eventBus, sender, cfg.SalesInboxAddress, log)
	defer notificationModule.Close()

	authModule := auth.NewModule(pool, cfg, val, log)
	catalogModule := catalog.NewModule(pool, eventBus, val, log)
	appliancesModule := appliances.NewModule(pool, val, log)
	leadsModule := leads.NewModule(pool, eventBus, val, log)
	estimatorModule := estimator.NewModule(catalogModule.Service(), leadsModule.Service(), followUpScheduler, val, log)

	// Seed starter data so a fresh deployment serves estimates immediately
	seedGroup, seedCtx := errgroup.WithContext(ctx)
	seedGroup.Go(func() error { return catalogModule.Service().SeedDefaults(seedCtx) })
	seedGroup.Go(func() error { return appliancesModule.Service().SeedDefaults(seedCtx) })
	if err := seedGroup.Wait(); err != nil {
		log.Error("failed to seed starter data", "error", err)
		panic("failed to seed starter data: " + err.Error())
	}

	modules := []apphttp.Module{
		authModule,
		estimatorModule,
		leadsModule,
		catalogModule,
		appliancesModule,
		notificationModule,
	}

	if redisClient != nil {
		modules = append(modules, branding.NewModule(redisClient, eventBus, val, log))
	} else {
		log.Warn("REDIS_URL not configured; branding settings disabled")
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules:  modules,
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initRedis(cfg *config.Config, log *logger.Logger) *redis.Client {
	if !cfg.IsRedisEnabled() {
		return nil
	}

	opts, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		log.Error("failed to parse redis url", "error", err)
		return nil
	}
	return redis.NewClient(opts)
}

func initFollowUpScheduler(cfg config.SchedulerConfig, log *logger.Logger) (estimatorsvc.FollowUpScheduler, func()) {
	if !cfg.IsRedisEnabled() {
		log.Warn("REDIS_URL not configured; lead follow-up emails disabled")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg, log)
	if err != nil {
		log.Error("failed to initialize follow-up scheduler client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func initEmailSender(cfg *config.Config, log *logger.Logger) email.Sender {
	if !cfg.IsEmailEnabled() {
		log.Warn("SMTP not configured; outgoing email disabled")
		return email.NoopSender{}
	}
	return email.NewSMTPSender(cfg)
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
