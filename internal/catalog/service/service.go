package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/FIKE110/inverta/internal/catalog/repository"
	"github.com/FIKE110/inverta/internal/catalog/transport"
	"github.com/FIKE110/inverta/internal/events"
	"github.com/FIKE110/inverta/internal/sizing"
	"github.com/FIKE110/inverta/platform/logger"
)

// Service provides business logic for the equipment catalog.
type Service struct {
	repo repository.Repository
	bus  events.Bus
	log  *logger.Logger
}

// New creates a new catalog service.
func New(repo repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

// Create inserts a catalog item and notifies subscribers.
func (s *Service) Create(ctx context.Context, req transport.CreateItemRequest) (transport.ItemResponse, error) {
	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	}

	item, err := s.repo.Create(ctx, repository.CreateItemParams{
		Kind:         req.Kind,
		Name:         req.Name,
		UnitPrice:    *req.UnitPrice,
		SpecCapacity: *req.SpecCapacity,
		SpecUnit:     req.SpecUnit,
		DisplayOrder: displayOrder,
	})
	if err != nil {
		return transport.ItemResponse{}, err
	}

	s.publishChange(ctx, item.ID, item.Kind, "created")
	return toResponse(item), nil
}

// Update modifies a catalog item and notifies subscribers.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateItemRequest) (transport.ItemResponse, error) {
	item, err := s.repo.Update(ctx, repository.UpdateItemParams{
		ID:           id,
		Name:         req.Name,
		UnitPrice:    req.UnitPrice,
		SpecCapacity: req.SpecCapacity,
		SpecUnit:     req.SpecUnit,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return transport.ItemResponse{}, err
	}

	s.publishChange(ctx, item.ID, item.Kind, "updated")
	return toResponse(item), nil
}

// Delete removes a catalog item and notifies subscribers.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishChange(ctx, item.ID, item.Kind, "deleted")
	return nil
}

// GetByID retrieves a catalog item.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.ItemResponse, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ItemResponse{}, err
	}
	return toResponse(item), nil
}

// List retrieves catalog items in display order.
func (s *Service) List(ctx context.Context, req transport.ListItemsRequest) (transport.ItemListResponse, error) {
	items, err := s.repo.List(ctx, repository.ListItemsParams{Search: req.Search, Kind: req.Kind})
	if err != nil {
		return transport.ItemListResponse{}, err
	}

	responses := make([]transport.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toResponse(item))
	}
	return transport.ItemListResponse{Items: responses, Total: len(responses)}, nil
}

// Snapshot returns the catalog as an immutable slice for the sizing engine,
// in store display order. The engine's battery and panel selection take the
// first entry of a kind, so this ordering is part of the sizing contract.
func (s *Service) Snapshot(ctx context.Context) ([]sizing.CatalogItem, error) {
	items, err := s.repo.List(ctx, repository.ListItemsParams{})
	if err != nil {
		return nil, err
	}

	snapshot := make([]sizing.CatalogItem, 0, len(items))
	for _, item := range items {
		snapshot = append(snapshot, sizing.CatalogItem{
			Name:         item.Name,
			Kind:         sizing.ItemKind(item.Kind),
			UnitPrice:    item.UnitPrice,
			SpecCapacity: item.SpecCapacity,
			SpecUnit:     item.SpecUnit,
		})
	}
	return snapshot, nil
}

// SeedDefaults inserts a starter price list when the catalog is empty, so a
// fresh deployment can serve estimates immediately.
func (s *Service) SeedDefaults(ctx context.Context) error {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	defaults := []repository.CreateItemParams{
		{Kind: "panel", Name: "Mono 550W panel", UnitPrice: 120000, SpecCapacity: 550, SpecUnit: "W", DisplayOrder: 0},
		{Kind: "inverter", Name: "Hybrid 5kVA inverter", UnitPrice: 650000, SpecCapacity: 5000, SpecUnit: "VA", DisplayOrder: 1},
		{Kind: "inverter", Name: "Hybrid 10kVA inverter", UnitPrice: 1100000, SpecCapacity: 10000, SpecUnit: "VA", DisplayOrder: 2},
		{Kind: "battery", Name: "LiFePO4 4.8kWh battery", UnitPrice: 900000, SpecCapacity: 4800, SpecUnit: "Wh", DisplayOrder: 3},
		{Kind: "installation", Name: "Standard installation", UnitPrice: 150000, SpecCapacity: 1, SpecUnit: "", DisplayOrder: 4},
	}
	for _, params := range defaults {
		if _, err := s.repo.Create(ctx, params); err != nil {
			return err
		}
	}

	s.log.Info("seeded default catalog", "items", len(defaults))
	return nil
}

func (s *Service) publishChange(ctx context.Context, id uuid.UUID, kind, action string) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, events.CatalogItemChanged{
		BaseEvent: events.NewBaseEvent(),
		ItemID:    id,
		Kind:      kind,
		Action:    action,
	})
}

func toResponse(item repository.Item) transport.ItemResponse {
	return transport.ItemResponse{
		ID:           item.ID,
		Kind:         item.Kind,
		Name:         item.Name,
		UnitPrice:    item.UnitPrice,
		SpecCapacity: item.SpecCapacity,
		SpecUnit:     item.SpecUnit,
		DisplayOrder: item.DisplayOrder,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
