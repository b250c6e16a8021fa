// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package services

import (
	"context"
)

// ContextHub is satisfied by *websocket.Hub.
type ContextHub interface {
	RunWithContext(ctx context.Context) error
}

// NotificationHubService runs the WebSocket hub that pushes
// dataset_reloaded messages. Clients are closed when the hub stops.
type NotificationHubService struct {
	hub  ContextHub
	name string
}

// NewNotificationHubService wraps hub.
func NewNotificationHubService(hub ContextHub) *NotificationHubService {
	return &NotificationHubService{
		hub:  hub,
		name: "notification-hub",
	}
}

// Serve implements suture.Service.
func (n *NotificationHubService) Serve(ctx context.Context) error {
	return n.hub.RunWithContext(ctx)
}

// String implements fmt.Stringer.
func (n *NotificationHubService) String() string {
	return n.name
}
