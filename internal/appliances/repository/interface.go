package repository

import (
	"context"

	"github.com/google/uuid"
)

// Preset is one appliance the public calculator offers for selection, with
// a typical wattage the visitor can override.
type Preset struct {
	ID           uuid.UUID
	Name         string
	Wattage      float64
	Icon         string
	DisplayOrder int
	CreatedAt    string
	UpdatedAt    string
}

// CreatePresetParams contains data for inserting a preset.
type CreatePresetParams struct {
	Name         string
	Wattage      float64
	Icon         string
	DisplayOrder int
}

// UpdatePresetParams contains optional fields for updating a preset.
type UpdatePresetParams struct {
	ID           uuid.UUID
	Name         *string
	Wattage      *float64
	Icon         *string
	DisplayOrder *int
}

// Repository defines storage operations for appliance presets.
type Repository interface {
	Create(ctx context.Context, params CreatePresetParams) (Preset, error)
	Update(ctx context.Context, params UpdatePresetParams) (Preset, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (Preset, error)
	// List returns all presets ordered by display_order, then created_at.
	List(ctx context.Context) ([]Preset, error)
	Count(ctx context.Context) (int, error)
}
