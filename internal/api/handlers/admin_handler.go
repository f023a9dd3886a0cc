package handlers

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"Cookly-Backend/internal/api/presenters"
	"Cookly-Backend/pkg/admin"
	"context"

	"github.com/gofiber/fiber/v2"
)

type (
	// UserLister is satisfied by the user repository; the admin surface
	// only needs the paged listings from it.
	UserLister interface {
		GetUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error)
		GetDeletedUsers(ctx context.Context, page, limit int, search string) ([]*entities.DeletedUser, int64, error)
	}

	AdminHandler interface {
		GetDashboardStats(c *fiber.Ctx) error
		GetUserGrowth(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		GetDeletedUsers(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		users        UserLister
	}
)

func NewAdminHandler(adminService admin.AdminService, users UserLister) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		users:        users,
	}
}

func (h *adminHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.adminService.GetDashboardStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *adminHandler) GetUserGrowth(c *fiber.Ctx) error {
	growth, err := h.adminService.GetUserGrowth(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUserGrowth, err)
	}

	return presenters.SuccessResponse(c, growth, fiber.StatusOK, domain.MessageSuccessGetUserGrowth)
}

func (h *adminHandler) GetUsers(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	users, count, err := h.users.GetUsers(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, paginated(users, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *adminHandler) GetDeletedUsers(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	search := c.Query("search")

	archived, count, err := h.users.GetDeletedUsers(c.Context(), page, limit, search)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDeleted, err)
	}

	return presenters.SuccessResponse(c, paginated(archived, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetDeleted)
}
