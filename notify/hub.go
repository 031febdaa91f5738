// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/inwarddesk/inward-desk/auth"
	"github.com/inwarddesk/inward-desk/models"
)

// subscriberBuffer bounds the per-subscriber event queue. A subscriber that
// falls this far behind starts losing events; delivery is fire-and-forget.
const subscriberBuffer = 16

// Subscriber is one connected client's view of the event stream.
type Subscriber struct {
	id       string
	identity auth.Identity
	ch       chan models.Event
}

// Events returns the subscriber's receive channel. It is closed on Unsubscribe.
func (s *Subscriber) Events() <-chan models.Event {
	return s.ch
}

// Hub routes task lifecycle events to connected subscribers.
//
// Delivery is keyed by identity: an event for task T reaches subscribers
// whose email equals T's assignee, plus every admin subscriber. There is no
// acknowledgement, no replay, and no delivery to clients that connect later.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

// Subscribe registers a new subscriber for the authenticated identity.
func (h *Hub) Subscribe(identity auth.Identity) *Subscriber {
	sub := &Subscriber{
		id:       uuid.NewString(),
		identity: identity,
		ch:       make(chan models.Event, subscriberBuffer),
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	slog.Info("subscriber connected", "subscriber", sub.id, "email", identity.Email, "role", identity.Role)
	return sub
}

// Unsubscribe removes the subscriber and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	_, ok := h.subs[sub]
	if ok {
		delete(h.subs, sub)
	}
	h.mu.Unlock()

	if ok {
		close(sub.ch)
		slog.Info("subscriber disconnected", "subscriber", sub.id, "email", sub.identity.Email)
	}
}

// Publish delivers the event to the task's assignee and to all admins.
// Sends never block: a full subscriber queue drops the event.
func (h *Hub) Publish(event string, task models.Task) {
	ev := models.Event{Event: event, Task: task}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		if sub.identity.Role != models.RoleAdmin && sub.identity.Email != task.AssignedTo {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			slog.Warn("dropping event for slow subscriber",
				"subscriber", sub.id,
				"email", sub.identity.Email,
				"event", event,
				"inwardNo", task.InwardNo,
			)
		}
	}
}

// SubscriberCount reports the number of connected subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
