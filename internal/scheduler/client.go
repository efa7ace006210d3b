package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/FIKE110/inverta/platform/config"
	"github.com/FIKE110/inverta/platform/logger"
)

// Client enqueues scheduled tasks. It implements the estimator's
// FollowUpScheduler interface.
type Client struct {
	client *asynq.Client
	delay  time.Duration
	queue  string
	log    *logger.Logger
}

// NewClient creates a scheduler client from the Redis configuration.
func NewClient(cfg config.SchedulerConfig, log *logger.Logger) (*Client, error) {
	opt, err := asynq.ParseRedisURI(cfg.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("parse redis uri: %w", err)
	}

	return &Client{
		client: asynq.NewClient(opt),
		delay:  cfg.GetFollowUpDelay(),
		queue:  cfg.GetFollowUpQueue(),
		log:    log,
	}, nil
}

// ScheduleFollowUp queues the follow-up email for a fresh lead after the
// configured delay.
func (c *Client) ScheduleFollowUp(ctx context.Context, leadID uuid.UUID, name, email string) error {
	task, err := NewFollowUpTask(leadID, name, email)
	if err != nil {
		return err
	}

	info, err := c.client.EnqueueContext(ctx, task,
		asynq.ProcessIn(c.delay),
		asynq.Queue(c.queue),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return fmt.Errorf("enqueue follow-up: %w", err)
	}

	c.log.Debug("scheduled lead follow-up", "lead_id", leadID, "task_id", info.ID, "process_in", c.delay)
	return nil
}

// Close releases the underlying Redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}
