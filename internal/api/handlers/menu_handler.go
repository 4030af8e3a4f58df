package handlers

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/internal/api/presenters"
	"Resto-POS-Backend/pkg/menu"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		CreateCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
		CreateMenuItem(c *fiber.Ctx) error
		GetMenuItems(c *fiber.Ctx) error
		GetMenuItemDetails(c *fiber.Ctx) error
		UpdateMenuItem(c *fiber.Ctx) error
		DeleteMenuItem(c *fiber.Ctx) error
		UploadMenuItemImage(c *fiber.Ctx) error
		SetRecipe(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CreateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.menuService.CreateCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *menuHandler) GetCategories(c *fiber.Ctx) error {
	includeInactive := c.Query("include_inactive", "false") == "true"

	categories, err := h.menuService.GetCategories(c.Context(), includeInactive)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, categories, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *menuHandler) UpdateCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	req := new(domain.UpdateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	if err := h.menuService.UpdateCategory(c.Context(), categoryID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *menuHandler) DeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	if err := h.menuService.DeleteCategory(c.Context(), categoryID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}

func (h *menuHandler) CreateMenuItem(c *fiber.Ctx) error {
	req := new(domain.CreateMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenuItem, err)
	}

	res, err := h.menuService.CreateMenuItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenuItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMenuItem)
}

func (h *menuHandler) GetMenuItems(c *fiber.Ctx) error {
	categoryID := c.Query("category_id", "")
	availableOnly := c.Query("available_only", "false") == "true"

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	items, count, err := h.menuService.GetMenuItems(c.Context(), categoryID, availableOnly, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMenuItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": count,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

func (h *menuHandler) GetMenuItemDetails(c *fiber.Ctx) error {
	itemID := c.Params("id")

	res, err := h.menuService.GetMenuItemDetails(c.Context(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMenuItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

func (h *menuHandler) UpdateMenuItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, err)
	}

	if err := h.menuService.UpdateMenuItem(c.Context(), itemID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMenuItem)
}

func (h *menuHandler) DeleteMenuItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.menuService.DeleteMenuItem(c.Context(), itemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMenuItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMenuItem)
}

func (h *menuHandler) UploadMenuItemImage(c *fiber.Ctx) error {
	itemID := c.Params("id")

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	url, err := h.menuService.UploadMenuItemImage(c.Context(), itemID, file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": url}, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

func (h *menuHandler) SetRecipe(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.SetRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetRecipe, err)
	}

	if err := h.menuService.SetRecipe(c.Context(), itemID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetRecipe)
}

func (h *menuHandler) GetRecipe(c *fiber.Ctx) error {
	itemID := c.Params("id")

	lines, err := h.menuService.GetRecipe(c.Context(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, err)
	}

	return presenters.SuccessResponse(c, lines, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}
