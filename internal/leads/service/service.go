package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/FIKE110/inverta/internal/events"
	"github.com/FIKE110/inverta/internal/leads/repository"
	"github.com/FIKE110/inverta/internal/leads/transport"
	"github.com/FIKE110/inverta/platform/logger"
	"github.com/FIKE110/inverta/platform/sanitize"
)

const defaultPageSize = 20

// Service provides business logic for the lead pipeline.
type Service struct {
	repo repository.Repository
	bus  events.Bus
	log  *logger.Logger
}

// New creates a new leads service.
func New(repo repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

// Capture persists a lead produced by the public calculator. The contact
// fields are sanitized here because they arrive from an unauthenticated form.
func (s *Service) Capture(ctx context.Context, params repository.CreateLeadParams) (transport.LeadResponse, error) {
	params.Name = sanitize.Text(params.Name)
	params.Email = sanitize.Text(params.Email)

	lead, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	if s.bus != nil {
		s.bus.Publish(ctx, events.LeadCaptured{
			BaseEvent:       events.NewBaseEvent(),
			LeadID:          lead.ID,
			Name:            lead.Name,
			Email:           lead.Email,
			Phone:           lead.Phone,
			SystemSizeLabel: lead.SystemSizeLabel,
			DailyEnergyKWh:  lead.DailyEnergyKWh,
			TotalCost:       lead.TotalCost,
		})
	}

	s.log.LeadCaptured(lead.ID.String(), lead.Email, lead.TotalCost)
	return toResponse(lead), nil
}

// Update changes a lead's status or notes and publishes a status change
// event when the status actually moved.
func (s *Service) Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, req transport.UpdateLeadRequest) (transport.LeadResponse, error) {
	previous, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	lead, err := s.repo.Update(ctx, repository.UpdateLeadParams{
		ID:     id,
		Status: req.Status,
		Notes:  sanitize.TextPtr(req.Notes),
	})
	if err != nil {
		return transport.LeadResponse{}, err
	}

	if s.bus != nil && lead.Status != previous.Status {
		s.bus.Publish(ctx, events.LeadStatusChanged{
			BaseEvent:      events.NewBaseEvent(),
			LeadID:         lead.ID,
			PreviousStatus: previous.Status,
			NewStatus:      lead.Status,
			ChangedByID:    actorID,
		})
	}

	return toResponse(lead), nil
}

// Delete removes a lead from the pipeline.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// GetByID retrieves a single lead.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LeadResponse{}, err
	}
	return toResponse(lead), nil
}

// List retrieves leads with filters and pagination.
func (s *Service) List(ctx context.Context, req transport.ListLeadsRequest) (transport.LeadListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	items, total, err := s.repo.List(ctx, repository.ListLeadsParams{
		Search:    req.Search,
		Status:    req.Status,
		Offset:    (page - 1) * pageSize,
		Limit:     pageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return transport.LeadListResponse{}, err
	}

	responses := make([]transport.LeadResponse, 0, len(items))
	for _, lead := range items {
		responses = append(responses, toResponse(lead))
	}
	return transport.LeadListResponse{
		Items:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Stats summarizes the pipeline for the dashboard overview cards.
func (s *Service) Stats(ctx context.Context) (transport.StatsResponse, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return transport.StatsResponse{}, err
	}

	byStatus := make([]transport.StatusCountResponse, 0, len(stats.ByStatus))
	for _, sc := range stats.ByStatus {
		byStatus = append(byStatus, transport.StatusCountResponse{Status: sc.Status, Count: sc.Count})
	}
	return transport.StatsResponse{
		Total:         stats.Total,
		ByStatus:      byStatus,
		PipelineValue: stats.PipelineValue,
	}, nil
}

func toResponse(lead repository.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:              lead.ID,
		Name:            lead.Name,
		Email:           lead.Email,
		Phone:           lead.Phone,
		DailyEnergyKWh:  lead.DailyEnergyKWh,
		SystemSizeLabel: lead.SystemSizeLabel,
		TotalCost:       lead.TotalCost,
		Status:          lead.Status,
		Notes:           lead.Notes,
		CreatedAt:       lead.CreatedAt,
		UpdatedAt:       lead.UpdatedAt,
	}
}
