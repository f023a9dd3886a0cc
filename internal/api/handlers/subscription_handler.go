package handlers

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/internal/api/presenters"
	"Cookly-Backend/pkg/subscription"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SubscriptionHandler interface {
		CreateTransaction(c *fiber.Ctx) error
		MidtransNotification(c *fiber.Ctx) error
		RevenueCatWebhook(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
		validator           *validator.Validate
		revenueCatAuthToken string
	}

	midtransNotificationPayload struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService, validator *validator.Validate, revenueCatAuthToken string) SubscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: subscriptionService,
		validator:           validator,
		revenueCatAuthToken: revenueCatAuthToken,
	}
}

func (h *subscriptionHandler) CreateTransaction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateTransactionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTransaction, err)
	}

	res, err := h.subscriptionService.CreateTransaction(c.Context(), userID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateTransaction, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateTransaction, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTransaction)
}

func (h *subscriptionHandler) MidtransNotification(c *fiber.Ctx) error {
	payload := new(midtransNotificationPayload)

	if err := c.BodyParser(payload); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if payload.OrderID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessWebhook, domain.ErrInvalidWebhookPayload)
	}

	err := h.subscriptionService.HandleMidtransNotification(c.Context(), payload.OrderID, payload.TransactionStatus, payload.FraudStatus)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedProcessWebhook, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessProcessWebhook)
}

// RevenueCatWebhook always acknowledges with 200 once the payload is
// authorized and well-formed; RevenueCat retries anything else, and events
// for users this backend does not know about must not be retried forever.
func (h *subscriptionHandler) RevenueCatWebhook(c *fiber.Ctx) error {
	if h.revenueCatAuthToken != "" && c.Get("Authorization") != "Bearer "+h.revenueCatAuthToken {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
	}

	req := new(domain.RevenueCatWebhookRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	err := h.subscriptionService.HandleRevenueCatEvent(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWebhookPayload) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessWebhook, err)
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			log.Printf("revenuecat webhook: no user for app_user_id %q", req.Event.AppUserID)
			return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessProcessWebhook)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessProcessWebhook)
}
