package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/FIKE110/inverta/internal/events"
	"github.com/FIKE110/inverta/internal/leads/repository"
	"github.com/FIKE110/inverta/internal/leads/transport"
	"github.com/FIKE110/inverta/platform/apperr"
	"github.com/FIKE110/inverta/platform/logger"
)

type fakeRepo struct {
	leads      map[uuid.UUID]repository.Lead
	lastCreate repository.CreateLeadParams
	lastList   repository.ListLeadsParams
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{leads: make(map[uuid.UUID]repository.Lead)}
}

func (f *fakeRepo) Create(_ context.Context, params repository.CreateLeadParams) (repository.Lead, error) {
	f.lastCreate = params
	lead := repository.Lead{
		ID:              uuid.New(),
		Name:            params.Name,
		Email:           params.Email,
		Phone:           params.Phone,
		DailyEnergyKWh:  params.DailyEnergyKWh,
		SystemSizeLabel: params.SystemSizeLabel,
		TotalCost:       params.TotalCost,
		Status:          repository.StatusNew,
	}
	f.leads[lead.ID] = lead
	return lead, nil
}

func (f *fakeRepo) Update(_ context.Context, params repository.UpdateLeadParams) (repository.Lead, error) {
	lead, ok := f.leads[params.ID]
	if !ok {
		return repository.Lead{}, apperr.NotFound("lead not found")
	}
	if params.Status != nil {
		lead.Status = *params.Status
	}
	if params.Notes != nil {
		lead.Notes = params.Notes
	}
	f.leads[params.ID] = lead
	return lead, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.leads[id]; !ok {
		return apperr.NotFound("lead not found")
	}
	delete(f.leads, id)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return repository.Lead{}, apperr.NotFound("lead not found")
	}
	return lead, nil
}

func (f *fakeRepo) List(_ context.Context, params repository.ListLeadsParams) ([]repository.Lead, int, error) {
	f.lastList = params
	items := make([]repository.Lead, 0, len(f.leads))
	for _, lead := range f.leads {
		items = append(items, lead)
	}
	return items, len(items), nil
}

func (f *fakeRepo) Stats(_ context.Context) (repository.Stats, error) {
	stats := repository.Stats{}
	for _, lead := range f.leads {
		stats.Total++
		if lead.Status != repository.StatusClosed {
			stats.PipelineValue += lead.TotalCost
		}
	}
	return stats, nil
}

type capturingBus struct {
	published []events.Event
}

func (b *capturingBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *capturingBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *capturingBus) Subscribe(string, events.Handler) {}

func newTestService(repo repository.Repository, bus events.Bus) *Service {
	return New(repo, bus, logger.New("test"))
}

func TestCapturePublishesLeadCaptured(t *testing.T) {
	repo := newFakeRepo()
	bus := &capturingBus{}
	svc := newTestService(repo, bus)

	resp, err := svc.Capture(context.Background(), repository.CreateLeadParams{
		Name:            "Ada Obi",
		Email:           "ada@example.com",
		Phone:           "+2348012345678",
		DailyEnergyKWh:  10.5,
		SystemSizeLabel: "5kVA",
		TotalCost:       2650000,
	})
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if resp.Status != repository.StatusNew {
		t.Fatalf("expected status %q, got %q", repository.StatusNew, resp.Status)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(bus.published))
	}
	captured, ok := bus.published[0].(events.LeadCaptured)
	if !ok {
		t.Fatalf("expected LeadCaptured event, got %T", bus.published[0])
	}
	if captured.LeadID != resp.ID {
		t.Fatalf("event lead id %s does not match response id %s", captured.LeadID, resp.ID)
	}
	if captured.TotalCost != 2650000 {
		t.Fatalf("expected event total cost 2650000, got %d", captured.TotalCost)
	}
}

func TestCaptureSanitizesContactFields(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &capturingBus{})

	_, err := svc.Capture(context.Background(), repository.CreateLeadParams{
		Name:  "<script>alert(1)</script>Ada",
		Email: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if repo.lastCreate.Name == "<script>alert(1)</script>Ada" {
		t.Fatal("expected name to be sanitized before persistence")
	}
}

func TestUpdateStatusChangePublishesEvent(t *testing.T) {
	repo := newFakeRepo()
	bus := &capturingBus{}
	svc := newTestService(repo, bus)

	created, err := svc.Capture(context.Background(), repository.CreateLeadParams{
		Name: "Ada Obi", Email: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	bus.published = nil

	actorID := uuid.New()
	status := repository.StatusContacted
	updated, err := svc.Update(context.Background(), created.ID, actorID, transport.UpdateLeadRequest{Status: &status})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != repository.StatusContacted {
		t.Fatalf("expected status %q, got %q", repository.StatusContacted, updated.Status)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(bus.published))
	}
	change, ok := bus.published[0].(events.LeadStatusChanged)
	if !ok {
		t.Fatalf("expected LeadStatusChanged event, got %T", bus.published[0])
	}
	if change.PreviousStatus != repository.StatusNew || change.NewStatus != repository.StatusContacted {
		t.Fatalf("unexpected transition %q -> %q", change.PreviousStatus, change.NewStatus)
	}
	if change.ChangedByID != actorID {
		t.Fatalf("expected actor %s, got %s", actorID, change.ChangedByID)
	}
}

func TestUpdateNotesOnlyDoesNotPublish(t *testing.T) {
	repo := newFakeRepo()
	bus := &capturingBus{}
	svc := newTestService(repo, bus)

	created, err := svc.Capture(context.Background(), repository.CreateLeadParams{
		Name: "Ada Obi", Email: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	bus.published = nil

	notes := "called, no answer"
	if _, err := svc.Update(context.Background(), created.ID, uuid.New(), transport.UpdateLeadRequest{Notes: &notes}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(bus.published) != 0 {
		t.Fatalf("expected no published events for a notes-only update, got %d", len(bus.published))
	}
}

func TestUpdateUnknownLeadReturnsNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), &capturingBus{})

	status := repository.StatusClosed
	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), transport.UpdateLeadRequest{Status: &status})
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListDefaultsPagination(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &capturingBus{})

	result, err := svc.List(context.Background(), transport.ListLeadsRequest{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if result.Page != 1 || result.PageSize != defaultPageSize {
		t.Fatalf("expected defaults page=1 pageSize=%d, got page=%d pageSize=%d", defaultPageSize, result.Page, result.PageSize)
	}
	if repo.lastList.Offset != 0 || repo.lastList.Limit != defaultPageSize {
		t.Fatalf("unexpected repo params offset=%d limit=%d", repo.lastList.Offset, repo.lastList.Limit)
	}
}

func TestListPageOffsets(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &capturingBus{})

	if _, err := svc.List(context.Background(), transport.ListLeadsRequest{Page: 3, PageSize: 10}); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if repo.lastList.Offset != 20 || repo.lastList.Limit != 10 {
		t.Fatalf("expected offset=20 limit=10, got offset=%d limit=%d", repo.lastList.Offset, repo.lastList.Limit)
	}
}
