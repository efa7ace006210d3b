package transport

import "github.com/google/uuid"

// CreatePresetRequest contains data for creating an appliance preset.
type CreatePresetRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=100"`
	Wattage      *float64 `json:"wattage" validate:"required,gt=0,lte=100000"`
	Icon         string   `json:"icon" validate:"max=50"`
	DisplayOrder *int     `json:"displayOrder,omitempty" validate:"omitempty,min=0"`
}

// UpdatePresetRequest contains optional fields for updating a preset.
type UpdatePresetRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Wattage      *float64 `json:"wattage,omitempty" validate:"omitempty,gt=0,lte=100000"`
	Icon         *string  `json:"icon,omitempty" validate:"omitempty,max=50"`
	DisplayOrder *int     `json:"displayOrder,omitempty" validate:"omitempty,min=0"`
}

// PresetResponse represents an appliance preset in API responses.
type PresetResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Wattage      float64   `json:"wattage"`
	Icon         string    `json:"icon"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
}

// PresetListResponse wraps the preset listing in display order.
type PresetListResponse struct {
	Items []PresetResponse `json:"items"`
	Total int              `json:"total"`
}
