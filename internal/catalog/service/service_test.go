package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/FIKE110/inverta/internal/catalog/repository"
	"github.com/FIKE110/inverta/internal/catalog/transport"
	"github.com/FIKE110/inverta/internal/events"
	"github.com/FIKE110/inverta/internal/sizing"
	"github.com/FIKE110/inverta/platform/apperr"
	"github.com/FIKE110/inverta/platform/logger"
)

type fakeRepo struct {
	items []repository.Item
}

func (f *fakeRepo) Create(_ context.Context, params repository.CreateItemParams) (repository.Item, error) {
	item := repository.Item{
		ID:           uuid.New(),
		Kind:         params.Kind,
		Name:         params.Name,
		UnitPrice:    params.UnitPrice,
		SpecCapacity: params.SpecCapacity,
		SpecUnit:     params.SpecUnit,
		DisplayOrder: params.DisplayOrder,
	}
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeRepo) Update(_ context.Context, params repository.UpdateItemParams) (repository.Item, error) {
	for i, item := range f.items {
		if item.ID == params.ID {
			if params.Name != nil {
				item.Name = *params.Name
			}
			if params.UnitPrice != nil {
				item.UnitPrice = *params.UnitPrice
			}
			f.items[i] = item
			return item, nil
		}
	}
	return repository.Item{}, apperr.NotFound("catalog item not found")
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("catalog item not found")
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Item, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return repository.Item{}, apperr.NotFound("catalog item not found")
}

func (f *fakeRepo) List(_ context.Context, _ repository.ListItemsParams) ([]repository.Item, error) {
	out := make([]repository.Item, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeRepo) Count(_ context.Context) (int, error) {
	return len(f.items), nil
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

func price(v int64) *int64 { return &v }

func capacity(v float64) *float64 { return &v }

func TestCreatePublishesChangeEvent(t *testing.T) {
	bus := &capturingBus{}
	svc := New(&fakeRepo{}, bus, logger.New("test"))

	item, err := svc.Create(context.Background(), transport.CreateItemRequest{
		Kind:         "panel",
		Name:         "Mono 550W panel",
		UnitPrice:    price(120000),
		SpecCapacity: capacity(550),
		SpecUnit:     "W",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(bus.published))
	}
	changed, ok := bus.published[0].(events.CatalogItemChanged)
	if !ok {
		t.Fatalf("expected CatalogItemChanged, got %T", bus.published[0])
	}
	if changed.ItemID != item.ID || changed.Action != "created" {
		t.Fatalf("unexpected event %+v", changed)
	}
}

func TestSnapshotPreservesStoreOrder(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, &capturingBus{}, logger.New("test"))

	names := []string{"First battery", "Second battery", "Only panel"}
	kinds := []string{"battery", "battery", "panel"}
	for i := range names {
		if _, err := svc.Create(context.Background(), transport.CreateItemRequest{
			Kind:         kinds[i],
			Name:         names[i],
			UnitPrice:    price(100),
			SpecCapacity: capacity(1000),
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	snapshot, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snapshot) != 3 {
		t.Fatalf("expected 3 items, got %d", len(snapshot))
	}
	for i, want := range names {
		if snapshot[i].Name != want {
			t.Fatalf("expected %q at position %d, got %q", want, i, snapshot[i].Name)
		}
	}
	if snapshot[0].Kind != sizing.KindBattery {
		t.Fatalf("expected battery kind, got %q", snapshot[0].Kind)
	}
}

func TestSeedDefaultsOnlyOnEmptyCatalog(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, &capturingBus{}, logger.New("test"))

	if err := svc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}
	seeded := len(repo.items)
	if seeded == 0 {
		t.Fatal("expected seeded items")
	}

	if err := svc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("second SeedDefaults failed: %v", err)
	}
	if len(repo.items) != seeded {
		t.Fatalf("expected no additional items, got %d after %d", len(repo.items), seeded)
	}
}

func TestSeedDefaultsIncludesEverySizingKind(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, &capturingBus{}, logger.New("test"))

	if err := svc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}

	kinds := make(map[string]bool)
	for _, item := range repo.items {
		kinds[item.Kind] = true
	}
	for _, kind := range []string{"panel", "inverter", "battery", "installation"} {
		if !kinds[kind] {
			t.Fatalf("seed defaults missing kind %q", kind)
		}
	}
}

func TestDeleteUnknownItemReturnsNotFound(t *testing.T) {
	svc := New(&fakeRepo{}, &capturingBus{}, logger.New("test"))

	err := svc.Delete(context.Background(), uuid.New())
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
