package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/FIKE110/inverta/internal/estimator/transport"
	leadsrepo "github.com/FIKE110/inverta/internal/leads/repository"
	leadstransport "github.com/FIKE110/inverta/internal/leads/transport"
	"github.com/FIKE110/inverta/internal/sizing"
	"github.com/FIKE110/inverta/platform/logger"
	"github.com/FIKE110/inverta/platform/phone"
)

// CatalogSnapshotter supplies the current price list for a calculation.
type CatalogSnapshotter interface {
	Snapshot(ctx context.Context) ([]sizing.CatalogItem, error)
}

// LeadRecorder persists the captured lead and fires its domain event.
type LeadRecorder interface {
	Capture(ctx context.Context, params leadsrepo.CreateLeadParams) (leadstransport.LeadResponse, error)
}

// FollowUpScheduler queues a delayed follow-up for a fresh lead. Optional;
// a nil scheduler disables follow-ups.
type FollowUpScheduler interface {
	ScheduleFollowUp(ctx context.Context, leadID uuid.UUID, name, email string) error
}

// Service runs the public calculator: size the system against the live
// catalog, persist the lead, and queue the follow-up.
type Service struct {
	catalog   CatalogSnapshotter
	leads     LeadRecorder
	scheduler FollowUpScheduler
	log       *logger.Logger
}

// New creates a new estimator service.
func New(catalog CatalogSnapshotter, leads LeadRecorder, scheduler FollowUpScheduler, log *logger.Logger) *Service {
	return &Service{catalog: catalog, leads: leads, scheduler: scheduler, log: log}
}

// Estimate sizes a system for the submitted appliance inventory and records
// the submitter as a lead. The lead write is part of the operation; an
// estimate the pipeline never saw is a lost prospect.
func (s *Service) Estimate(ctx context.Context, req transport.EstimateRequest) (transport.EstimateResponse, error) {
	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return transport.EstimateResponse{}, err
	}

	appliances := make([]sizing.ApplianceDemand, 0, len(req.Appliances))
	for _, a := range req.Appliances {
		appliances = append(appliances, sizing.ApplianceDemand{
			Wattage:    *a.Wattage,
			Count:      *a.Count,
			DailyHours: *a.DailyHours,
		})
	}

	result := sizing.Size(sizing.SizingRequest{
		MonthlyGridBill: *req.MonthlyGridBill,
		MonthlyFuelCost: *req.MonthlyFuelCost,
		Appliances:      appliances,
		Catalog:         catalog,
	})

	lead, err := s.leads.Capture(ctx, leadsrepo.CreateLeadParams{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           phone.NormalizeE164(req.Phone),
		DailyEnergyKWh:  result.DailyEnergyKWh(),
		SystemSizeLabel: result.SystemSizeLabel(),
		TotalCost:       result.TotalCost,
	})
	if err != nil {
		return transport.EstimateResponse{}, err
	}

	if s.scheduler != nil {
		if err := s.scheduler.ScheduleFollowUp(ctx, lead.ID, lead.Name, lead.Email); err != nil {
			// The estimate already succeeded; a lost follow-up is not
			// worth failing the request over.
			s.log.Error("failed to schedule lead follow-up", "lead_id", lead.ID, "error", err)
		}
	}

	return toResponse(lead.ID, result), nil
}

func toComponent(sel sizing.Selection) transport.ComponentResponse {
	return transport.ComponentResponse{
		Name:         sel.Item.Name,
		Count:        sel.Count,
		UnitPrice:    sel.Item.UnitPrice,
		SpecCapacity: sel.Item.SpecCapacity,
		SpecUnit:     sel.Item.SpecUnit,
	}
}

func toResponse(leadID uuid.UUID, result sizing.SizingResult) transport.EstimateResponse {
	return transport.EstimateResponse{
		LeadID:             leadID.String(),
		DailyEnergyKWh:     result.DailyEnergyKWh(),
		PeakLoadWatts:      result.PeakLoadWatts,
		SystemSizeLabel:    result.SystemSizeLabel(),
		Panels:             toComponent(result.Panels),
		Inverters:          toComponent(result.Inverters),
		Batteries:          toComponent(result.Batteries),
		EquipmentCost:      result.EquipmentCost,
		InstallationCost:   result.InstallationCost,
		TotalCost:          result.TotalCost,
		TotalAnnualSavings: result.TotalAnnualSavings,
		PaybackYears:       result.PaybackYears,
		CO2MitigatedTons:   result.CO2MitigatedTons,
	}
}
