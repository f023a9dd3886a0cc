package entities

import (
	"github.com/google/uuid"
)

const (
	NotificationAudienceAll          = "all"
	NotificationAudienceSubscribed   = "subscribed"
	NotificationAudienceUnsubscribed = "unsubscribed"
)

// NotificationLog records one push broadcast attempt and its outcome.
type NotificationLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title          string    `json:"title"`
	Message        string    `gorm:"type:text" json:"message"`
	TargetAudience string    `gorm:"default:all" json:"target_audience"`
	SentCount      int       `json:"sent_count"`
	FailureCount   int       `json:"failure_count"`
	Status         string    `json:"status"` // "success", "failed", "partial"

	Timestamp
}
