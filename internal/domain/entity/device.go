// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPlatform is assigned to devices first seen through an operation that carries no platform.
const DefaultPlatform = "ios"

// Device is the canonical record of a client installation, keyed by its external identifier.
type Device struct {
	ID         uuid.UUID `json:"id"`           // Store-assigned internal identity.
	ExternalID string    `json:"external_id"`  // Opaque client-supplied identifier, globally unique.
	Platform   string    `json:"platform"`     // Client platform (ios, android).
	CreatedAt  time.Time `json:"created_at"`   // First time the device was referenced.
	LastSeenAt time.Time `json:"last_seen_at"` // Last time any operation referenced the device.
}
