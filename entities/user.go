package entities

import (
	"gorm.io/datatypes"
)

const (
	AuthProviderPassword = "password"
	AuthProviderGoogle   = "google"
)

type User struct {
	UID                   string                      `gorm:"primary_key" json:"uid"`
	FullName              string                      `json:"full_name"`
	Email                 string                      `gorm:"uniqueIndex" json:"email"`
	Password              string                      `json:"-"`
	ProfilePic            string                      `json:"profile_pic,omitempty"`
	AllergenicIngredients datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"allergenic_ingredients"`
	AuthProvider          string                      `json:"auth_provider"`
	Role                  string                      `gorm:"default:user" json:"role"`
	IsSubscribedUser      bool                        `json:"is_subscribed_user"`
	PushyToken            string                      `json:"pushy_token,omitempty"`

	Timestamp
}
