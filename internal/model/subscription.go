package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPendingConfirmation = "pending_confirmation"
	StatusConfirmed           = "confirmed"
)

type Subscription struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:text;not null"`
	Name         string    `gorm:"type:text;not null"`
	SubscribedAt time.Time `gorm:"not null"`
	Status       string    `gorm:"type:text;not null"`

	Tokens []SubscriptionToken `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE"`
}

func (Subscription) TableName() string { return "subscriptions" }

type SubscriptionToken struct {
	SubscriptionToken string    `gorm:"type:text;primaryKey"`
	SubscriberID      uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (SubscriptionToken) TableName() string { return "subscription_tokens" }
