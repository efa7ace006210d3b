package repository

import (
	"context"

	"github.com/google/uuid"
)

// Item is a persisted price-list entry. UnitPrice is in whole currency
// units; SpecCapacity is watts for panels, volt-amps for inverters and
// watt-hours for batteries. DisplayOrder drives the store listing order,
// which the sizing engine's first-match selection depends on.
type Item struct {
	ID           uuid.UUID
	Kind         string
	Name         string
	UnitPrice    int64
	SpecCapacity float64
	SpecUnit     string
	DisplayOrder int
	CreatedAt    string
	UpdatedAt    string
}

// CreateItemParams contains data for inserting a catalog item.
type CreateItemParams struct {
	Kind         string
	Name         string
	UnitPrice    int64
	SpecCapacity float64
	SpecUnit     string
	DisplayOrder int
}

// UpdateItemParams contains optional fields for updating a catalog item.
type UpdateItemParams struct {
	ID           uuid.UUID
	Name         *string
	UnitPrice    *int64
	SpecCapacity *float64
	SpecUnit     *string
	DisplayOrder *int
}

// ListItemsParams filters the admin listing.
type ListItemsParams struct {
	Search string
	Kind   string
}

// Repository defines storage operations for the catalog.
type Repository interface {
	Create(ctx context.Context, params CreateItemParams) (Item, error)
	Update(ctx context.Context, params UpdateItemParams) (Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (Item, error)
	// List returns items ordered by display_order then created_at. The
	// order is part of the sizing contract and must be stable between
	// catalog mutations.
	List(ctx context.Context, params ListItemsParams) ([]Item, error)
	Count(ctx context.Context) (int, error)
}
