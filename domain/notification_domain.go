package domain

import (
	"errors"
)

var (
	MessageSuccessSendNotification = "notification sent successfully"
	MessageSuccessGetNotifications = "success get notification logs"

	MessageFailedSendNotification = "failed to send notification"
	MessageFailedGetNotifications = "failed to get notification logs"

	ErrNoPushTokens = errors.New("no push tokens registered for target audience")
)

type (
	SendNotificationRequest struct {
		Title          string `json:"title" validate:"required"`
		Message        string `json:"message" validate:"required"`
		TargetAudience string `json:"targetAudience" validate:"omitempty,oneof=all subscribed unsubscribed"`
	}
)
