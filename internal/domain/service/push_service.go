// Package service declares the outbound collaborators the use cases depend on.
package service

import (
	"context"

	"seguridad/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrTokenUnregistered is returned by a PushService when the gateway reports the token as no longer valid.
var ErrTokenUnregistered = errors.New("push token is no longer registered")

// PushNotification is the user-visible content of an alert push.
type PushNotification struct {
	Title string
	Body  string
	Sound string
}

// PushService delivers a single notification to a single device token.
type PushService interface {
	// Send delivers notification to token through the gateway selected by the token environment.
	Send(ctx context.Context, token *entity.DeviceToken, notification *PushNotification) error
}
