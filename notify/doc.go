// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify delivers task lifecycle events to connected clients.

# Hub

The Hub holds one Subscriber per connected client, keyed by the client's
authenticated identity:

	hub := notify.NewHub()
	sub := hub.Subscribe(identity)
	defer hub.Unsubscribe(sub)

Publishing routes by relevance rather than broadcasting: the event for a
task reaches subscribers whose email matches the task's assignee, plus all
admin subscribers. Other clients never observe the event, so no task data
leaks to unrelated users.

	hub.Publish(models.EventNewTask, task)

# Delivery Semantics

Fire-and-forget. Each subscriber has a small buffered queue; a subscriber
that stops draining loses events rather than blocking the publisher. There
is no acknowledgement, no replay for late joiners, and no ordering guarantee
across concurrent mutations.

# Websocket Endpoint

ServeWS bridges the hub onto a websocket connection. It expects the request
to have passed the access gate already:

	mux.HandleFunc("GET /api/events", middleware.RequireAuth(secret,
		func(w http.ResponseWriter, r *http.Request) { notify.ServeWS(hub, w, r) }))

Frames are JSON envelopes:

	{"event": "newTask", "task": {...}}
	{"event": "taskUpdated", "task": {...}}

No client-to-server events are defined; inbound frames are discarded. The
server pings every 30 seconds to keep intermediaries from timing out idle
connections.
*/
package notify
