package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/FIKE110/inverta/internal/events"
	"github.com/FIKE110/inverta/platform/logger"
)

type fakeSender struct {
	estimates []string
	alerts    []string
	followUps []string
}

func (f *fakeSender) SendEstimateEmail(_ context.Context, toEmail, _, _ string, _ float64, _ int64) error {
	f.estimates = append(f.estimates, toEmail)
	return nil
}

func (f *fakeSender) SendLeadAlertEmail(_ context.Context, toEmail, _, _, _, _ string, _ int64) error {
	f.alerts = append(f.alerts, toEmail)
	return nil
}

func (f *fakeSender) SendFollowUpEmail(_ context.Context, toEmail, _ string) error {
	f.followUps = append(f.followUps, toEmail)
	return nil
}

func capturedEvent() events.LeadCaptured {
	return events.LeadCaptured{
		BaseEvent:       events.NewBaseEvent(),
		LeadID:          uuid.New(),
		Name:            "Ada Obi",
		Email:           "ada@example.com",
		Phone:           "+2348012345678",
		SystemSizeLabel: "5kVA",
		DailyEnergyKWh:  6.9,
		TotalCost:       2180000,
	}
}

func TestLeadCapturedSendsEstimateAndAlert(t *testing.T) {
	bus := events.NewInMemoryBus(logger.New("test"))
	sender := &fakeSender{}
	NewModule(bus, sender, "sales@example.com", logger.New("test"))

	if err := bus.PublishSync(context.Background(), capturedEvent()); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if len(sender.estimates) != 1 || sender.estimates[0] != "ada@example.com" {
		t.Fatalf("expected estimate email to prospect, got %v", sender.estimates)
	}
	if len(sender.alerts) != 1 || sender.alerts[0] != "sales@example.com" {
		t.Fatalf("expected alert email to sales inbox, got %v", sender.alerts)
	}
}

func TestLeadCapturedWithoutSalesInboxSkipsAlert(t *testing.T) {
	bus := events.NewInMemoryBus(logger.New("test"))
	sender := &fakeSender{}
	NewModule(bus, sender, "", logger.New("test"))

	if err := bus.PublishSync(context.Background(), capturedEvent()); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if len(sender.estimates) != 1 {
		t.Fatalf("expected estimate email, got %v", sender.estimates)
	}
	if len(sender.alerts) != 0 {
		t.Fatalf("expected no alert email, got %v", sender.alerts)
	}
}

func TestStatusChangeSendsNoEmail(t *testing.T) {
	bus := events.NewInMemoryBus(logger.New("test"))
	sender := &fakeSender{}
	NewModule(bus, sender, "sales@example.com", logger.New("test"))

	err := bus.PublishSync(context.Background(), events.LeadStatusChanged{
		BaseEvent:      events.NewBaseEvent(),
		LeadID:         uuid.New(),
		PreviousStatus: "New",
		NewStatus:      "Contacted",
		ChangedByID:    uuid.New(),
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if len(sender.estimates) != 0 || len(sender.alerts) != 0 {
		t.Fatalf("expected no emails on status change, got estimates=%v alerts=%v", sender.estimates, sender.alerts)
	}
}
