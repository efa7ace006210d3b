package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/FIKE110/inverta/platform/logger"
)

type fakeSender struct {
	sentTo   []string
	sentName []string
	err      error
}

func (f *fakeSender) SendEstimateEmail(context.Context, string, string, string, float64, int64) error {
	return nil
}

func (f *fakeSender) SendLeadAlertEmail(context.Context, string, string, string, string, string, int64) error {
	return nil
}

func (f *fakeSender) SendFollowUpEmail(_ context.Context, toEmail, name string) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = append(f.sentTo, toEmail)
	f.sentName = append(f.sentName, name)
	return nil
}

func TestFollowUpHandlerSendsEmail(t *testing.T) {
	sender := &fakeSender{}
	handler := NewFollowUpHandler(sender, logger.New("test"))

	task, err := NewFollowUpTask(uuid.New(), "Ada Obi", "ada@example.com")
	if err != nil {
		t.Fatalf("NewFollowUpTask failed: %v", err)
	}

	if err := handler.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("ProcessTask failed: %v", err)
	}
	if len(sender.sentTo) != 1 || sender.sentTo[0] != "ada@example.com" {
		t.Fatalf("expected follow-up to ada@example.com, got %v", sender.sentTo)
	}
	if sender.sentName[0] != "Ada Obi" {
		t.Fatalf("expected name Ada Obi, got %q", sender.sentName[0])
	}
}

func TestFollowUpHandlerRetriesOnSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	handler := NewFollowUpHandler(sender, logger.New("test"))

	task, err := NewFollowUpTask(uuid.New(), "Ada Obi", "ada@example.com")
	if err != nil {
		t.Fatalf("NewFollowUpTask failed: %v", err)
	}

	err = handler.ProcessTask(context.Background(), task)
	if err == nil {
		t.Fatal("expected error for retry")
	}
	if errors.Is(err, asynq.SkipRetry) {
		t.Fatal("send failures must stay retryable")
	}
}

func TestFollowUpHandlerSkipsRetryOnBadPayload(t *testing.T) {
	handler := NewFollowUpHandler(&fakeSender{}, logger.New("test"))

	task := asynq.NewTask(TypeLeadFollowUp, []byte("not json"))
	err := handler.ProcessTask(context.Background(), task)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry for malformed payload, got %v", err)
	}
}
