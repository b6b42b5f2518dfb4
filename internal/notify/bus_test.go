package notify_test

import (
	"testing"

	"github.com/fitai-labs/fitai-backend/internal/notify"
)

func TestPublishReachesSubscribers(t *testing.T) {
	t.Parallel()

	bus := notify.NewBus()

	var events []string
	var details []any
	bus.Subscribe(notify.EventActivityLogged, func(event string, detail any) {
		events = append(events, event)
		details = append(details, detail)
	})

	bus.Publish(notify.EventActivityLogged, "payload")
	bus.Publish(notify.EventUserUpdated, nil) // different event, not delivered

	if len(events) != 1 || events[0] != notify.EventActivityLogged {
		t.Fatalf("events = %v", events)
	}
	if details[0] != "payload" {
		t.Fatalf("detail = %v", details[0])
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	bus := notify.NewBus()

	calls := 0
	unsubscribe := bus.Subscribe(notify.EventUserUpdated, func(string, any) { calls++ })

	bus.Publish(notify.EventUserUpdated, nil)
	unsubscribe()
	bus.Publish(notify.EventUserUpdated, nil)

	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}

func TestPanickingHandlerDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	bus := notify.NewBus()

	reached := false
	bus.Subscribe(notify.EventExpenseAdded, func(string, any) { panic("boom") })
	bus.Subscribe(notify.EventExpenseAdded, func(string, any) { reached = true })

	bus.Publish(notify.EventExpenseAdded, nil)

	if !reached {
		t.Fatal("panic in one handler starved the rest")
	}
}

func TestPublishWithNoSubscribers(t *testing.T) {
	t.Parallel()

	bus := notify.NewBus()
	bus.Publish(notify.EventStorageRestored, nil)
}
