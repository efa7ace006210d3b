package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/FIKE110/inverta/platform/logger"
)

type testEvent struct {
	BaseEvent
	value int
}

func (testEvent) EventName() string { return "test.event" }

func TestPublishSyncRunsHandlersInline(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	got := 0
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, event Event) error {
		got = event.(testEvent).value
		return nil
	}))

	if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), value: 42}); err != nil {
		t.Fatalf("PublishSync failed: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected handler to see 42, got %d", got)
	}
}

func TestPublishSyncReturnsFirstError(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))
	wantErr := errors.New("handler failed")

	bus.Subscribe("test.event", HandlerFunc(func(context.Context, Event) error {
		return wantErr
	}))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent()})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected handler error, got %v", err)
	}
}

func TestPublishFansOutToAllHandlers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	var wg sync.WaitGroup
	wg.Add(2)
	var mu sync.Mutex
	calls := 0

	handler := HandlerFunc(func(context.Context, Event) error {
		mu.Lock()
		calls++
		mu.Unlock()
		wg.Done()
		return nil
	})
	bus.Subscribe("test.event", handler)
	bus.Subscribe("test.event", handler)

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent()})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handlers did not run within deadline")
	}

	mu.Lock()
	defer mu.Unlock()
	if calls != 2 {
		t.Fatalf("expected 2 handler calls, got %d", calls)
	}
}

func TestPublishIgnoresUnsubscribedEvents(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent()})
	if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent()}); err != nil {
		t.Fatalf("expected no error without subscribers, got %v", err)
	}
}

func TestPublishSurvivesCancelledContext(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	ran := make(chan struct{})
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, _ Event) error {
		if ctx.Err() != nil {
			t.Error("handler context should be detached from the publisher's")
		}
		close(ran)
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, testEvent{BaseEvent: NewBaseEvent()})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not run")
	}
}
