package entities

import (
	"time"
)

// DeletedUser archives the identity of a removed account so admins can
// audit deletions after the user row is gone.
type DeletedUser struct {
	ID            string    `gorm:"primary_key" json:"id"`
	UID           string    `gorm:"index" json:"uid"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	AuthProvider  string    `json:"authProvider"`
	DeletedReason string    `json:"deletedReason,omitempty"`
	DeletedAt     time.Time `gorm:"type:timestamp" json:"deletedAt"`

	Timestamp
}
