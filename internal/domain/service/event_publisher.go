package service

import (
	"context"
	"time"
)

// AlertCreatedEvent is published after an alert has been stored and fanned out.
type AlertCreatedEvent struct {
	RequestID     string    `json:"request_id,omitempty"`
	AlertID       string    `json:"alert_id"`
	DeviceID      string    `json:"device_id"` // External device id of the alerting device.
	Type          string    `json:"type"`
	Timestamp     time.Time `json:"timestamp"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	PushAttempted int       `json:"push_attempted"`
	PushFailed    int       `json:"push_failed"`
}

// EventPublisher defines the interface for publishing alert events to downstream consumers.
type EventPublisher interface {
	// PublishAlertCreated publishes an alert event.
	PublishAlertCreated(ctx context.Context, event *AlertCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
