package watcher

import (
	"sync"
	"testing"
	"time"
)

func TestDebouncerCollapsesBurst(t *testing.T) {
	var mu sync.Mutex
	var batches [][]FileEvent

	d := NewDebouncer(20*time.Millisecond, 100, func(events []FileEvent) {
		mu.Lock()
		batches = append(batches, events)
		mu.Unlock()
	})
	defer d.Stop()

	for i := 0; i < 5; i++ {
		d.Add(FileEvent{Path: "/ws/.devcontainer/devcontainer.json", Type: EventModify})
	}

	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(batches) != 1 {
		t.Fatalf("expected 1 flush, got %d", len(batches))
	}
	if len(batches[0]) != 1 {
		t.Errorf("burst not collapsed by path: %v", batches[0])
	}
}

func TestDebouncerFlushesOnMaxBatch(t *testing.T) {
	flushed := make(chan []FileEvent, 1)

	d := NewDebouncer(time.Hour, 2, func(events []FileEvent) {
		flushed <- events
	})
	defer d.Stop()

	d.Add(FileEvent{Path: "/a", Type: EventCreate})
	d.Add(FileEvent{Path: "/b", Type: EventCreate})

	select {
	case events := <-flushed:
		if len(events) != 2 {
			t.Errorf("expected 2 events, got %d", len(events))
		}
	case <-time.After(time.Second):
		t.Fatal("max batch did not trigger a flush")
	}
}

func TestDebouncerStopFlushesPending(t *testing.T) {
	flushed := make(chan []FileEvent, 1)

	d := NewDebouncer(time.Hour, 100, func(events []FileEvent) {
		flushed <- events
	})

	d.Add(FileEvent{Path: "/pending", Type: EventDelete})
	d.Stop()

	select {
	case events := <-flushed:
		if len(events) != 1 || events[0].Path != "/pending" {
			t.Errorf("unexpected flush contents: %v", events)
		}
	case <-time.After(time.Second):
		t.Fatal("Stop did not flush pending events")
	}

	// Adds after Stop are dropped.
	d.Add(FileEvent{Path: "/late", Type: EventCreate})
	select {
	case events := <-flushed:
		t.Errorf("event accepted after Stop: %v", events)
	case <-time.After(50 * time.Millisecond):
	}
}
