package handlers

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/internal/api/presenters"
	"Cookly-Backend/pkg/bugreport"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BugReportHandler interface {
		CreateReport(c *fiber.Ctx) error
		GetReports(c *fiber.Ctx) error
		ResolveReport(c *fiber.Ctx) error
	}

	bugReportHandler struct {
		bugReportService bugreport.BugReportService
		validator        *validator.Validate
	}
)

func NewBugReportHandler(bugReportService bugreport.BugReportService, validator *validator.Validate) BugReportHandler {
	return &bugReportHandler{
		bugReportService: bugReportService,
		validator:        validator,
	}
}

func (h *bugReportHandler) CreateReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateBugReportRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("screenshot")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Screenshot = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBugReport, err)
	}

	res, err := h.bugReportService.CreateReport(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateBugReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateBugReport)
}

func (h *bugReportHandler) GetReports(c *fiber.Ctx) error {
	onlyOpen := c.QueryBool("open", false)

	reports, err := h.bugReportService.GetReports(c.Context(), onlyOpen)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetBugReports, err)
	}

	return presenters.SuccessResponse(c, reports, fiber.StatusOK, domain.MessageSuccessGetBugReports)
}

func (h *bugReportHandler) ResolveReport(c *fiber.Ctx) error {
	reportID := c.Params("reportId")

	res, err := h.bugReportService.ResolveReport(c.Context(), reportID)
	if err != nil {
		if errors.Is(err, domain.ErrBugReportNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedResolveBugReport, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedResolveBugReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveBugReport)
}
