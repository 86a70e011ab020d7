package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
type SubscriptionModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerDeviceID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_subscriptions_owner_subscriber,priority:1"`
	SubscriberDeviceID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_subscriptions_owner_subscriber,priority:2"`
	CreatedAt          time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
