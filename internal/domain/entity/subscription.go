package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a directed edge: the subscriber receives push alerts for the owner's events.
type Subscription struct {
	ID                 uuid.UUID `json:"id"`
	OwnerDeviceID      uuid.UUID `json:"owner_device_id"`
	SubscriberDeviceID uuid.UUID `json:"subscriber_device_id"`
	CreatedAt          time.Time `json:"created_at"`
}
