// Package feed fans out row-level change events to per-checklist subscribers.
package feed

import (
	"context"
	"sync"

	"realtime-checklist/internal/model"
	"realtime-checklist/pkg/log"
)

// DefaultBufferSize is the per-subscriber channel capacity used when none is configured.
const DefaultBufferSize = 256

// Hub is an in-process change feed. Publish never blocks: when a subscriber's
// buffer is full the event is dropped for that subscriber and a warning is logged.
type Hub struct {
	l       log.Logger
	bufSize int

	mu     sync.RWMutex
	subs   map[string]map[*Subscription]struct{}
	closed bool
}

// New creates a Hub.
func New(l log.Logger, bufSize int) *Hub {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	return &Hub{
		l:       l,
		bufSize: bufSize,
		subs:    make(map[string]map[*Subscription]struct{}),
	}
}

// Subscribe opens a subscription for checklistID. On a closed hub the
// returned subscription's channel is already closed.
func (h *Hub) Subscribe(checklistID string) *Subscription {
	sub := &Subscription{
		hub:         h,
		checklistID: checklistID,
		ch:          make(chan model.ChangeEvent, h.bufSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub.closed = true
		close(sub.ch)
		return sub
	}

	set, ok := h.subs[checklistID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[checklistID] = set
	}
	set[sub] = struct{}{}
	return sub
}

// Publish delivers ev to every subscriber of ev.ChecklistID.
func (h *Hub) Publish(ctx context.Context, ev model.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[ev.ChecklistID] {
		select {
		case sub.ch <- ev:
		default:
			h.l.Warnf(ctx, "feed.Publish: buffer full, dropped %s %s event for checklist %s", ev.Entity, ev.Op, ev.ChecklistID)
		}
	}
}

// Subscribers returns the number of open subscriptions for checklistID.
func (h *Hub) Subscribers(checklistID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[checklistID])
}

// Close ends every open subscription. Later subscriptions are born closed.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, set := range h.subs {
		for sub := range set {
			sub.closed = true
			close(sub.ch)
		}
		delete(h.subs, id)
	}
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub.closed {
		return
	}
	sub.closed = true
	close(sub.ch)

	set := h.subs[sub.checklistID]
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.checklistID)
	}
}

// Subscription is one open channel on a Hub.
type Subscription struct {
	hub         *Hub
	checklistID string
	ch          chan model.ChangeEvent
	closed      bool // guarded by hub.mu
}

// Events returns the event channel. It is closed when the subscription ends.
func (s *Subscription) Events() <-chan model.ChangeEvent {
	return s.ch
}

// Close unsubscribes. It is safe to call more than once.
func (s *Subscription) Close() error {
	s.hub.remove(s)
	return nil
}
