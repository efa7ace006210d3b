package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/FIKE110/inverta/internal/appliances/repository"
	"github.com/FIKE110/inverta/internal/appliances/transport"
	"github.com/FIKE110/inverta/platform/logger"
	"github.com/FIKE110/inverta/platform/sanitize"
)

// Service provides business logic for appliance presets.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new appliance preset service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create inserts an appliance preset.
func (s *Service) Create(ctx context.Context, req transport.CreatePresetRequest) (transport.PresetResponse, error) {
	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	}

	preset, err := s.repo.Create(ctx, repository.CreatePresetParams{
		Name:         sanitize.Text(req.Name),
		Wattage:      *req.Wattage,
		Icon:         sanitize.Text(req.Icon),
		DisplayOrder: displayOrder,
	})
	if err != nil {
		return transport.PresetResponse{}, err
	}
	return toResponse(preset), nil
}

// Update modifies an appliance preset.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdatePresetRequest) (transport.PresetResponse, error) {
	preset, err := s.repo.Update(ctx, repository.UpdatePresetParams{
		ID:           id,
		Name:         sanitize.TextPtr(req.Name),
		Wattage:      req.Wattage,
		Icon:         sanitize.TextPtr(req.Icon),
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return transport.PresetResponse{}, err
	}
	return toResponse(preset), nil
}

// Delete removes an appliance preset.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// GetByID retrieves an appliance preset.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.PresetResponse, error) {
	preset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.PresetResponse{}, err
	}
	return toResponse(preset), nil
}

// List retrieves presets in display order for the public calculator.
func (s *Service) List(ctx context.Context) (transport.PresetListResponse, error) {
	presets, err := s.repo.List(ctx)
	if err != nil {
		return transport.PresetListResponse{}, err
	}

	responses := make([]transport.PresetResponse, 0, len(presets))
	for _, preset := range presets {
		responses = append(responses, toResponse(preset))
	}
	return transport.PresetListResponse{Items: responses, Total: len(responses)}, nil
}

// SeedDefaults inserts the standard household appliance list when the table
// is empty, so a fresh deployment's calculator is usable immediately.
func (s *Service) SeedDefaults(ctx context.Context) error {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	defaults := []repository.CreatePresetParams{
		{Name: "LED bulb", Wattage: 10, Icon: "lightbulb", DisplayOrder: 0},
		{Name: "Ceiling fan", Wattage: 70, Icon: "fan", DisplayOrder: 1},
		{Name: "Standing fan", Wattage: 60, Icon: "fan", DisplayOrder: 2},
		{Name: "TV (LED 43\")", Wattage: 80, Icon: "tv", DisplayOrder: 3},
		{Name: "Refrigerator", Wattage: 200, Icon: "fridge", DisplayOrder: 4},
		{Name: "Chest freezer", Wattage: 300, Icon: "fridge", DisplayOrder: 5},
		{Name: "Air conditioner (1HP)", Wattage: 750, Icon: "ac", DisplayOrder: 6},
		{Name: "Air conditioner (1.5HP)", Wattage: 1100, Icon: "ac", DisplayOrder: 7},
		{Name: "Washing machine", Wattage: 500, Icon: "washer", DisplayOrder: 8},
		{Name: "Microwave", Wattage: 1000, Icon: "microwave", DisplayOrder: 9},
		{Name: "Electric iron", Wattage: 1200, Icon: "iron", DisplayOrder: 10},
		{Name: "Water pump (1HP)", Wattage: 750, Icon: "pump", DisplayOrder: 11},
		{Name: "Laptop", Wattage: 65, Icon: "laptop", DisplayOrder: 12},
		{Name: "Phone charger", Wattage: 10, Icon: "phone", DisplayOrder: 13},
		{Name: "Wi-Fi router", Wattage: 15, Icon: "router", DisplayOrder: 14},
	}
	for _, params := range defaults {
		if _, err := s.repo.Create(ctx, params); err != nil {
			return err
		}
	}

	s.log.Info("seeded default appliance presets", "items", len(defaults))
	return nil
}

func toResponse(preset repository.Preset) transport.PresetResponse {
	return transport.PresetResponse{
		ID:           preset.ID,
		Name:         preset.Name,
		Wattage:      preset.Wattage,
		Icon:         preset.Icon,
		DisplayOrder: preset.DisplayOrder,
		CreatedAt:    preset.CreatedAt,
		UpdatedAt:    preset.UpdatedAt,
	}
}
