package scheduler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/FIKE110/inverta/internal/notification/email"
	"github.com/FIKE110/inverta/platform/config"
	"github.com/FIKE110/inverta/platform/logger"
)

// Worker processes scheduled tasks. It runs in its own binary so email
// bursts never compete with API request handling.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	log    *logger.Logger
}

// FollowUpHandler sends the follow-up email for a queued lead.
type FollowUpHandler struct {
	sender email.Sender
	log    *logger.Logger
}

// NewFollowUpHandler creates the follow-up task handler.
func NewFollowUpHandler(sender email.Sender, log *logger.Logger) *FollowUpHandler {
	return &FollowUpHandler{sender: sender, log: log}
}

// ProcessTask handles one follow-up task. Returning an error lets asynq
// retry with backoff.
func (h *FollowUpHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload FollowUpPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal follow-up payload: %w", asynq.SkipRetry)
	}

	if err := h.sender.SendFollowUpEmail(ctx, payload.Email, payload.Name); err != nil {
		return fmt.Errorf("send follow-up email: %w", err)
	}

	h.log.Info("sent lead follow-up email", "lead_id", payload.LeadID, "email", payload.Email)
	return nil
}

// NewWorker creates the asynq worker with the follow-up handler registered.
func NewWorker(cfg config.SchedulerConfig, sender email.Sender, log *logger.Logger) (*Worker, error) {
	opt, err := asynq.ParseRedisURI(cfg.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("parse redis uri: %w", err)
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			cfg.GetFollowUpQueue(): 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.Handle(TypeLeadFollowUp, NewFollowUpHandler(sender, log))

	return &Worker{server: server, mux: mux, log: log}, nil
}

// Run starts processing tasks and blocks until Shutdown is called.
func (w *Worker) Run() error {
	return w.server.Run(w.mux)
}

// Shutdown stops the worker, waiting for in-flight tasks.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}
