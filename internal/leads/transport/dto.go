package transport

import "github.com/google/uuid"

// UpdateLeadRequest contains optional fields for updating a lead on the
// dashboard. Status transitions are free-form within the known pipeline.
type UpdateLeadRequest struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=New Contacted Converted Closed"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ListLeadsRequest filters the dashboard lead listing.
type ListLeadsRequest struct {
	Search    string `form:"search" validate:"max=100"`
	Status    string `form:"status" validate:"omitempty,oneof=New Contacted Converted Closed"`
	Page      int    `form:"page" validate:"omitempty,min=1"`
	PageSize  int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
	SortBy    string `form:"sortBy" validate:"omitempty,oneof=createdAt updatedAt name totalCost status"`
	SortOrder string `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// LeadResponse represents a lead in API responses.
type LeadResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	DailyEnergyKWh  float64   `json:"dailyEnergyKwh"`
	SystemSizeLabel string    `json:"systemSizeLabel"`
	TotalCost       int64     `json:"totalCost"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       string    `json:"createdAt"`
	UpdatedAt       string    `json:"updatedAt"`
}

// LeadListResponse wraps a paginated lead listing.
type LeadListResponse struct {
	Items    []LeadResponse `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// StatusCountResponse is one row of the pipeline breakdown.
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatsResponse summarizes the lead pipeline for the dashboard.
type StatsResponse struct {
	Total         int                   `json:"total"`
	ByStatus      []StatusCountResponse `json:"byStatus"`
	PipelineValue int64                 `json:"pipelineValue"`
}
