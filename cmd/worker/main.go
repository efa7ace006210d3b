// The worker processes scheduled asynq tasks, currently the delayed lead
// follow-up emails. It runs separately from the API so email bursts never
// compete with request handling.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/FIKE110/inverta/internal/notification/email"
	"github.com/FIKE110/inverta/internal/scheduler"
	"github.com/FIKE110/inverta/platform/config"
	"github.com/FIKE110/inverta/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting worker", "env", cfg.Env, "queue", cfg.FollowUpQueue)

	if !cfg.IsRedisEnabled() {
		panic("REDIS_URL is required for the worker")
	}

	var sender email.Sender
	if cfg.IsEmailEnabled() {
		sender = email.NewSMTPSender(cfg)
	} else {
		log.Warn("SMTP not configured; follow-up emails will be dropped")
		sender = email.NoopSender{}
	}

	worker, err := scheduler.NewWorker(cfg, sender, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- worker.Run()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, stopping worker")
		worker.Shutdown()
	case err := <-srvErr:
		if err != nil {
			log.Error("worker error", "error", err)
			panic("worker error: " + err.Error())
		}
	}
}
