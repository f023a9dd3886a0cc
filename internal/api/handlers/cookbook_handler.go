package handlers

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/internal/api/presenters"
	"Cookly-Backend/pkg/cookbook"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CookbookHandler interface {
		SavePrivateRecipe(c *fiber.Ctx) error
		AddToCookbook(c *fiber.Ctx) error
		GetUserCookbook(c *fiber.Ctx) error
		GetUserRecipe(c *fiber.Ctx) error
		GetUserRecipeByOriginal(c *fiber.Ctx) error
		IsRecipeInCookbook(c *fiber.Ctx) error
		UpdateUserRecipe(c *fiber.Ctx) error
		FullUpdateUserRecipe(c *fiber.Ctx) error
		ResetProgress(c *fiber.Ctx) error
		RemoveFromCookbook(c *fiber.Ctx) error
	}

	cookbookHandler struct {
		cookbookService cookbook.CookbookService
		validator       *validator.Validate
	}
)

func NewCookbookHandler(cookbookService cookbook.CookbookService, validator *validator.Validate) CookbookHandler {
	return &cookbookHandler{
		cookbookService: cookbookService,
		validator:       validator,
	}
}

// cookbookErrorStatus maps the service sentinels to the protocol statuses:
// 404 not-found, 409 conflict, 500 for anything the store threw unclassified.
func cookbookErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserRecipeNotFound), errors.Is(err, domain.ErrRecipeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyInCookbook):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *cookbookHandler) SavePrivateRecipe(c *fiber.Ctx) error {
	req := new(domain.SavePrivateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSavePrivateRecipe, err)
	}

	res, err := h.cookbookService.SavePrivateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, cookbookErrorStatus(err), domain.MessageFailedSavePrivateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSavePrivateRecipe)
}

func (h *cookbookHandler) AddToCookbook(c *fiber.Ctx) error {
	req := new(domain.AddToCookbookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCookbook, err)
	}

	res, err := h.cookbookService.AddToCookbook(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, cookbookErrorStatus(err), domain.MessageFailedAddToCookbook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddToCookbook)
}

func (h *cookbookHandler) GetUserCookbook(c *fiber.Ctx) error {
	userID := c.Params("userId")

	res, err := h.cookbookService.GetUserCookbook(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, cookbookErrorStatus(err), domain.MessageFailedGetCookbook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCookbook)
}

func (h *cookbookHandler) GetUserRecipe(c *fiber.Ctx) error {
	userRecipeID := c.Params("userRecipeId")

	res, err := h.cookbookService.GetUserRecipe(c.Context(), userRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, cookbookErrorStatus(err), domain.MessageFailedGetUserRecipe, err)
	}
	if res == nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetUserRecipe, domain.ErrUserRecipeNotFound)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserRecipe)
}

func (h *cookbookHandler) GetUserRecipeByOriginal(c *fiber.Ctx) error {
	userID := c.Params("userId")
	originalRecipeID := c.Params("originalRecipeId")

	res, err := h.cookbookService.GetUserRecipeByOriginal(c.Context(), userID, originalRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, cookbookErrorStatus(err), domain.MessageFailedGetUserRecipe, err)
	}
	if res == nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetUserRecipe, domain.ErrUserRecipeNotFound)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserRecipe)
}

func (h *cookbookHandler) IsRecipeInCookbook(c *fiber.Ctx) error {
	userID := c.Params("userId")
	originalRecipeID := c.Params("originalRecipeId")

	inCookbook, err := h.cookbookService.IsRecipeInCookbook(c.Context(), userID, originalRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, cookbookErrorStatus(err), domain.MessageFailedGetCookbook, err)
	}

	return presenters.SuccessResponse(c, domain.InCookbookResponse{IsInCookbook: inCookbook}, fiber.StatusOK, domain.MessageSuccessGetCookbook)
}

func (h *cookbookHandler) UpdateUserRecipe(c *fiber.Ctx) error {
	userRecipeID := c.Params("userRecipeId")
	req := new(domain.UpdateProgressRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.cookbookService.UpdateProgress(c.Context(), userRecipeID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, cookbookErrorStatus(err), domain.MessageFailedUpdateProgress, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProgress)
}

func (h *cookbookHandler) FullUpdateUserRecipe(c *fiber.Ctx) error {
	userRecipeID := c.Params("userRecipeId")
	req := new(domain.FullUpdateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.cookbookService.FullUpdate(c.Context(), userRecipeID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, cookbookErrorStatus(err), domain.MessageFailedFullUpdate, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFullUpdate)
}

func (h *cookbookHandler) ResetProgress(c *fiber.Ctx) error {
	userRecipeID := c.Params("userRecipeId")

	res, err := h.cookbookService.ResetProgress(c.Context(), userRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, cookbookErrorStatus(err), domain.MessageFailedResetProgress, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResetProgress)
}

func (h *cookbookHandler) RemoveFromCookbook(c *fiber.Ctx) error {
	userRecipeID := c.Params("userRecipeId")

	removed, err := h.cookbookService.RemoveFromCookbook(c.Context(), userRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, cookbookErrorStatus(err), domain.MessageFailedRemoveFromCookbook, err)
	}
	if !removed {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemoveFromCookbook, domain.ErrUserRecipeNotFound)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFromCookbook)
}
