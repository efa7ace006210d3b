package repository

import (
	"context"

	"github.com/google/uuid"
)

// Lead statuses, in pipeline order.
const (
	StatusNew       = "New"
	StatusContacted = "Contacted"
	StatusConverted = "Converted"
	StatusClosed    = "Closed"
)

// Lead is a persisted prospect captured by the public calculator, plus the
// derived sizing figures the dashboard displays.
type Lead struct {
	ID              uuid.UUID
	Name            string
	Email           string
	Phone           string
	DailyEnergyKWh  float64
	SystemSizeLabel string
	TotalCost       int64
	Status          string
	Notes           *string
	CreatedAt       string
	UpdatedAt       string
}

// CreateLeadParams contains data for inserting a lead.
type CreateLeadParams struct {
	Name            string
	Email           string
	Phone           string
	DailyEnergyKWh  float64
	SystemSizeLabel string
	TotalCost       int64
}

// UpdateLeadParams contains optional fields for updating a lead.
type UpdateLeadParams struct {
	ID     uuid.UUID
	Status *string
	Notes  *string
}

// ListLeadsParams filters the dashboard listing.
type ListLeadsParams struct {
	Search    string
	Status    string
	Offset    int
	Limit     int
	SortBy    string
	SortOrder string
}

// StatusCount is one row of the pipeline stats breakdown.
type StatusCount struct {
	Status string
	Count  int
}

// Stats summarizes the lead pipeline for the dashboard.
type Stats struct {
	Total         int
	ByStatus      []StatusCount
	PipelineValue int64
}

// Repository defines storage operations for leads.
type Repository interface {
	Create(ctx context.Context, params CreateLeadParams) (Lead, error)
	Update(ctx context.Context, params UpdateLeadParams) (Lead, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
	List(ctx context.Context, params ListLeadsParams) ([]Lead, int, error)
	Stats(ctx context.Context) (Stats, error)
}
