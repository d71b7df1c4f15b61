package backend

import (
	"github.com/dshills/rebind/internal/input"
	"github.com/dshills/rebind/internal/input/mouse"
)

// Backend is a source of raw input events.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current viewport size.
	Size() mouse.Size

	// PollEvents blocks until input arrives and returns the decoded
	// events, which may be empty after Interrupt. ok is false once the
	// backend has no more input.
	PollEvents() (events []input.Event, ok bool)

	// Interrupt wakes a blocked PollEvents.
	Interrupt()
}

// NullBackend is a Backend fed programmatically.
// Used in tests and for headless hosts.
type NullBackend struct {
	size   mouse.Size
	events chan []input.Event
	done   chan struct{}
}

// NewNullBackend creates a backend reporting the given size.
func NewNullBackend(size mouse.Size) *NullBackend {
	return &NullBackend{
		size:   size,
		events: make(chan []input.Event, 64),
		done:   make(chan struct{}),
	}
}

// Init implements Backend.
func (b *NullBackend) Init() error { return nil }

// Shutdown implements Backend.
func (b *NullBackend) Shutdown() {}

// Size implements Backend.
func (b *NullBackend) Size() mouse.Size { return b.size }

// Feed queues a batch of events for PollEvents.
func (b *NullBackend) Feed(events ...input.Event) {
	select {
	case <-b.done:
	case b.events <- events:
	}
}

// Close makes PollEvents report no more input once queued batches are
// drained.
func (b *NullBackend) Close() {
	select {
	case <-b.done:
	default:
		close(b.done)
	}
}

// PollEvents implements Backend.
func (b *NullBackend) PollEvents() ([]input.Event, bool) {
	select {
	case evs := <-b.events:
		return evs, true
	default:
	}
	select {
	case evs := <-b.events:
		return evs, true
	case <-b.done:
		return nil, false
	}
}

// Interrupt implements Backend.
func (b *NullBackend) Interrupt() {
	select {
	case b.events <- nil:
	default:
	}
}
