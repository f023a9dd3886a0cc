package handlers

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/internal/api/presenters"
	"Cookly-Backend/pkg/notification"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		SendNotification(c *fiber.Ctx) error
		GetLogs(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		validator           *validator.Validate
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, validator *validator.Validate) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		validator:           validator,
	}
}

func (h *notificationHandler) SendNotification(c *fiber.Ctx) error {
	req := new(domain.SendNotificationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendNotification, err)
	}

	res, err := h.notificationService.SendNotification(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNoPushTokens) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSendNotification, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSendNotification, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendNotification)
}

func (h *notificationHandler) GetLogs(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	logs, total, err := h.notificationService.GetLogs(c.Context(), limit, offset)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"logs":  logs,
		"total": total,
	}, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}
