package bot

import "testing"

func TestBusDelivery(t *testing.T) {
	b := NewBus()

	var once, persistent int
	b.Subscribe(SystemEventStartupNotice, true, func(SystemEvent) { once++ })
	b.Subscribe(SystemEventStartupNotice, false, func(SystemEvent) { persistent++ })

	b.Publish(SystemEvent{Type: SystemEventStartupNotice})
	b.Publish(SystemEvent{Type: SystemEventStartupNotice})
	b.Close()
	b.Run()

	if once != 1 {
		t.Errorf("Expected one-shot subscriber to fire once, got %d", once)
	}
	if persistent != 2 {
		t.Errorf("Expected persistent subscriber to fire twice, got %d", persistent)
	}
}

func TestBusDropsWhenFull(t *testing.T) {
	b := NewBus()

	// Queue capacity is 16; overfilling must not block the publisher.
	for i := 0; i < 40; i++ {
		b.Publish(SystemEvent{Type: SystemEventPrefixUpdated})
	}

	delivered := 0
	b.Subscribe(SystemEventPrefixUpdated, false, func(SystemEvent) { delivered++ })
	b.Close()
	b.Run()

	if delivered != 16 {
		t.Errorf("Expected 16 queued events delivered, got %d", delivered)
	}
}

func TestBusPublishAfterClose(t *testing.T) {
	b := NewBus()

	delivered := 0
	b.Subscribe(SystemEventPrefixUpdated, false, func(SystemEvent) { delivered++ })
	b.Publish(SystemEvent{Type: SystemEventPrefixUpdated})
	b.Close()

	// A handler finishing mid-teardown may still publish; the event is
	// dropped, the process must not crash.
	b.Publish(SystemEvent{Type: SystemEventPrefixUpdated})
	b.Close()
	b.Run()

	if delivered != 1 {
		t.Errorf("Expected only the pre-close event delivered, got %d", delivered)
	}
}

func TestBusUnrelatedEventType(t *testing.T) {
	b := NewBus()
	b.Subscribe(SystemEventStartupNotice, false, func(SystemEvent) {
		t.Error("Subscriber must not fire for a different event type")
	})
	b.Publish(SystemEvent{Type: SystemEventPrefixUpdated})
	b.Close()
	b.Run()
}
