// Package notification fans lead pipeline events out to email and the
// dashboard's live SSE stream. It owns no storage; everything it does is a
// reaction to events other modules publish.
package notification

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FIKE110/inverta/internal/events"
	apphttp "github.com/FIKE110/inverta/internal/http"
	"github.com/FIKE110/inverta/internal/notification/email"
	"github.com/FIKE110/inverta/internal/notification/sse"
	"github.com/FIKE110/inverta/platform/httpkit"
	"github.com/FIKE110/inverta/platform/logger"
)

// Module is the notification bounded context module implementing http.Module.
type Module struct {
	sender     email.Sender
	stream     *sse.Service
	salesInbox string
	log        *logger.Logger
}

// NewModule creates the notification module and subscribes it to the lead
// pipeline events. salesInbox may be empty to disable the internal alert.
func NewModule(bus events.Bus, sender email.Sender, salesInbox string, log *logger.Logger) *Module {
	m := &Module{
		sender:     sender,
		stream:     sse.New(log),
		salesInbox: salesInbox,
		log:        log,
	}

	bus.Subscribe(events.LeadCaptured{}.EventName(), events.HandlerFunc(m.onLeadCaptured))
	bus.Subscribe(events.LeadStatusChanged{}.EventName(), events.HandlerFunc(m.onLeadStatusChanged))
	bus.Subscribe(events.CatalogItemChanged{}.EventName(), events.HandlerFunc(m.onCatalogChanged))
	bus.Subscribe(events.BrandingUpdated{}.EventName(), events.HandlerFunc(m.onBrandingUpdated))

	return m
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "notification"
}

// RegisterRoutes mounts the SSE stream on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/notifications/stream", m.stream.Handler(func(c *gin.Context) (uuid.UUID, bool) {
		identity := httpkit.GetIdentity(c)
		if !identity.IsAuthenticated() {
			return uuid.Nil, false
		}
		return identity.UserID(), true
	}))
}

// Close disconnects all SSE clients.
func (m *Module) Close() {
	m.stream.Close()
}

func (m *Module) onLeadCaptured(ctx context.Context, event events.Event) error {
	captured, ok := event.(events.LeadCaptured)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	m.stream.Broadcast(sse.Event{
		Type:    sse.EventLeadCaptured,
		LeadID:  captured.LeadID,
		Message: fmt.Sprintf("New lead: %s (%s)", captured.Name, captured.SystemSizeLabel),
		Data:    captured,
	})

	if err := m.sender.SendEstimateEmail(ctx, captured.Email, captured.Name,
		captured.SystemSizeLabel, captured.DailyEnergyKWh, captured.TotalCost); err != nil {
		m.log.Error("failed to send estimate email", "lead_id", captured.LeadID, "error", err)
	}

	if m.salesInbox != "" {
		if err := m.sender.SendLeadAlertEmail(ctx, m.salesInbox, captured.Name, captured.Email,
			captured.Phone, captured.SystemSizeLabel, captured.TotalCost); err != nil {
			m.log.Error("failed to send lead alert email", "lead_id", captured.LeadID, "error", err)
		}
	}

	return nil
}

func (m *Module) onLeadStatusChanged(_ context.Context, event events.Event) error {
	changed, ok := event.(events.LeadStatusChanged)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	m.stream.Broadcast(sse.Event{
		Type:    sse.EventLeadStatusChanged,
		LeadID:  changed.LeadID,
		Message: fmt.Sprintf("Lead moved from %s to %s", changed.PreviousStatus, changed.NewStatus),
		Data:    changed,
	})
	return nil
}

func (m *Module) onCatalogChanged(_ context.Context, event events.Event) error {
	changed, ok := event.(events.CatalogItemChanged)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	m.stream.Broadcast(sse.Event{
		Type: sse.EventCatalogChanged,
		Data: changed,
	})
	return nil
}

func (m *Module) onBrandingUpdated(_ context.Context, event events.Event) error {
	updated, ok := event.(events.BrandingUpdated)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	m.stream.Broadcast(sse.Event{
		Type: sse.EventBrandingUpdated,
		Data: updated,
	})
	return nil
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
