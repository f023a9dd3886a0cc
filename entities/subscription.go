package entities

import (
	"github.com/google/uuid"
)

// SubscriptionTransaction tracks a Midtrans checkout for the web
// subscription path. Mobile subscriptions arrive through the RevenueCat
// webhook and never create one of these rows.
type SubscriptionTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID     string    `gorm:"uniqueIndex" json:"order_id"`
	UserID      string    `gorm:"index" json:"user_id"`
	GrossAmount int64     `json:"gross_amount"`
	Status      string    `json:"status"` // "pending", "settlement", "expire", "cancel"

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
