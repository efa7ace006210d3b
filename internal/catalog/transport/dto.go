package transport

import "github.com/google/uuid"

// CreateItemRequest contains data for creating a catalog item.
type CreateItemRequest struct {
	Kind         string   `json:"kind" validate:"required,oneof=panel inverter battery installation"`
	Name         string   `json:"name" validate:"required,min=1,max=200"`
	UnitPrice    *int64   `json:"unitPrice" validate:"required,min=0"`
	SpecCapacity *float64 `json:"specCapacity" validate:"required,min=0"`
	SpecUnit     string   `json:"specUnit" validate:"max=20"`
	DisplayOrder *int     `json:"displayOrder,omitempty" validate:"omitempty,min=0"`
}

// UpdateItemRequest contains optional fields for updating a catalog item.
type UpdateItemRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	UnitPrice    *int64   `json:"unitPrice,omitempty" validate:"omitempty,min=0"`
	SpecCapacity *float64 `json:"specCapacity,omitempty" validate:"omitempty,min=0"`
	SpecUnit     *string  `json:"specUnit,omitempty" validate:"omitempty,max=20"`
	DisplayOrder *int     `json:"displayOrder,omitempty" validate:"omitempty,min=0"`
}

// ListItemsRequest filters the admin catalog listing.
type ListItemsRequest struct {
	Search string `form:"search" validate:"max=100"`
	Kind   string `form:"kind" validate:"omitempty,oneof=panel inverter battery installation"`
}

// ItemResponse represents a catalog item in API responses.
type ItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Kind         string    `json:"kind"`
	Name         string    `json:"name"`
	UnitPrice    int64     `json:"unitPrice"`
	SpecCapacity float64   `json:"specCapacity"`
	SpecUnit     string    `json:"specUnit"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
}

// ItemListResponse wraps a list of catalog items in display order.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
