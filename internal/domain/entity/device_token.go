package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushEnvironment selects the push gateway a token is delivered through.
type PushEnvironment string

const (
	PushEnvironmentProduction PushEnvironment = "production"
	PushEnvironmentSandbox    PushEnvironment = "sandbox"
)

// IsValid reports whether e is a known environment.
func (e PushEnvironment) IsValid() bool {
	return e == PushEnvironmentProduction || e == PushEnvironmentSandbox
}

// DeviceToken is a push token. Token is globally unique and may be repointed to another device.
type DeviceToken struct {
	ID          uuid.UUID       `json:"id"`
	DeviceID    uuid.UUID       `json:"device_id"`
	Token       string          `json:"token"`
	Environment PushEnvironment `json:"environment"`
	CreatedAt   time.Time       `json:"created_at"`
	LastSeenAt  time.Time       `json:"last_seen_at"`
}

// Suffix returns the last characters of the token, safe to log.
func (t *DeviceToken) Suffix() string {
	const keep = 8
	if len(t.Token) <= keep {
		return t.Token
	}

	return t.Token[len(t.Token)-keep:]
}
