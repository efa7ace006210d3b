// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"github.com/FIKE110/inverta/platform/events"
	"github.com/FIKE110/inverta/platform/logger"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Lead Domain Events
// =============================================================================

// LeadCaptured is published when the public calculator produces an estimate
// and a lead record is persisted.
type LeadCaptured struct {
	BaseEvent
	LeadID          uuid.UUID `json:"leadId"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	SystemSizeLabel string    `json:"systemSizeLabel"`
	DailyEnergyKWh  float64   `json:"dailyEnergyKwh"`
	TotalCost       int64     `json:"totalCost"`
}

func (e LeadCaptured) EventName() string { return "leads.lead.captured" }

// LeadStatusChanged is published when an installer moves a lead through the
// pipeline on the dashboard.
type LeadStatusChanged struct {
	BaseEvent
	LeadID         uuid.UUID `json:"leadId"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	ChangedByID    uuid.UUID `json:"changedById"`
}

func (e LeadStatusChanged) EventName() string { return "leads.lead.status_changed" }

// =============================================================================
// Catalog Domain Events
// =============================================================================

// CatalogItemChanged is published when the price list is created, updated,
// or reordered. Dashboard clients refresh their cached snapshot on it.
type CatalogItemChanged struct {
	BaseEvent
	ItemID uuid.UUID `json:"itemId"`
	Kind   string    `json:"kind"`
	Action string    `json:"action"` // "created", "updated", "deleted"
}

func (e CatalogItemChanged) EventName() string { return "catalog.item.changed" }

// =============================================================================
// Branding Domain Events
// =============================================================================

// BrandingUpdated is published when the marketing site theme settings change.
type BrandingUpdated struct {
	BaseEvent
	UpdatedByID uuid.UUID `json:"updatedById"`
}

func (e BrandingUpdated) EventName() string { return "branding.updated" }
