// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"testing"

	"github.com/inwarddesk/inward-desk/auth"
	"github.com/inwarddesk/inward-desk/models"
)

func TestPublish_RoutesToAssignee(t *testing.T) {
	hub := NewHub()

	assignee := hub.Subscribe(auth.Identity{Email: "a@example.com", Role: models.RoleTableUser})
	other := hub.Subscribe(auth.Identity{Email: "b@example.com", Role: models.RoleTableUser})
	defer hub.Unsubscribe(assignee)
	defer hub.Unsubscribe(other)

	task := models.Task{InwardNo: "IN-1", AssignedTo: "a@example.com", Status: models.StatusPending}
	hub.Publish(models.EventNewTask, task)

	select {
	case ev := <-assignee.Events():
		if ev.Event != models.EventNewTask {
			t.Errorf("expected event newTask, got %s", ev.Event)
		}
		if ev.Task.InwardNo != "IN-1" {
			t.Errorf("expected task IN-1, got %s", ev.Task.InwardNo)
		}
	default:
		t.Fatal("assignee should have received the event")
	}

	select {
	case ev := <-other.Events():
		t.Errorf("unrelated subscriber should not receive events, got %v", ev)
	default:
	}
}

func TestPublish_AdminReceivesAll(t *testing.T) {
	hub := NewHub()

	admin := hub.Subscribe(auth.Identity{Email: "admin@example.com", Role: models.RoleAdmin})
	defer hub.Unsubscribe(admin)

	hub.Publish(models.EventTaskUpdated, models.Task{InwardNo: "IN-9", AssignedTo: "someone@example.com"})

	select {
	case ev := <-admin.Events():
		if ev.Event != models.EventTaskUpdated {
			t.Errorf("expected event taskUpdated, got %s", ev.Event)
		}
	default:
		t.Fatal("admin should receive events for every task")
	}
}

func TestPublish_NoReplayForLateSubscriber(t *testing.T) {
	hub := NewHub()

	hub.Publish(models.EventNewTask, models.Task{InwardNo: "IN-1", AssignedTo: "late@example.com"})

	late := hub.Subscribe(auth.Identity{Email: "late@example.com", Role: models.RoleTableUser})
	defer hub.Unsubscribe(late)

	select {
	case ev := <-late.Events():
		t.Errorf("late subscriber should not see earlier events, got %v", ev)
	default:
	}
}

func TestPublish_SlowSubscriberDropsWithoutBlocking(t *testing.T) {
	hub := NewHub()

	slow := hub.Subscribe(auth.Identity{Email: "slow@example.com", Role: models.RoleTableUser})
	defer hub.Unsubscribe(slow)

	task := models.Task{InwardNo: "IN-1", AssignedTo: "slow@example.com"}

	// Overfill the subscriber queue; Publish must return regardless.
	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Publish(models.EventTaskUpdated, task)
	}

	if got := len(slow.ch); got != subscriberBuffer {
		t.Errorf("expected queue capped at %d events, got %d", subscriberBuffer, got)
	}
}

func TestUnsubscribe_ClosesChannelOnce(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(auth.Identity{Email: "a@example.com", Role: models.RoleTableUser})
	hub.Unsubscribe(sub)
	hub.Unsubscribe(sub) // second call must be a no-op, not a double close

	if _, ok := <-sub.Events(); ok {
		t.Error("expected closed channel after Unsubscribe")
	}
	if hub.SubscriberCount() != 0 {
		t.Errorf("expected 0 subscribers, got %d", hub.SubscriberCount())
	}
}
