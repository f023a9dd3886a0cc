package domain

import (
	"errors"
)

var (
	MessageSuccessCreateTransaction = "transaction created successfully"
	MessageSuccessProcessWebhook    = "webhook processed"

	MessageFailedCreateTransaction = "failed to create transaction"
	MessageFailedProcessWebhook    = "failed to process webhook"

	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrInvalidWebhookPayload = errors.New("invalid webhook payload")
)

type (
	CreateTransactionRequest struct {
		GrossAmount int64 `json:"grossAmount" validate:"required,gt=0"`
	}

	CreateTransactionResponse struct {
		OrderID     string `json:"orderId"`
		Token       string `json:"token"`
		RedirectURL string `json:"redirectUrl"`
	}

	// RevenueCatWebhookRequest is the body RevenueCat posts on subscription
	// lifecycle events. Only the fields this service reads are declared.
	RevenueCatWebhookRequest struct {
		Event *RevenueCatEvent `json:"event"`
	}

	RevenueCatEvent struct {
		Type      string `json:"type"`
		AppUserID string `json:"app_user_id"`
	}
)
