package handlers

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/internal/api/presenters"
	"Resto-POS-Backend/pkg/inventory"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		AddIngredient(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
		GetIngredientDetails(c *fiber.Ctx) error
		UpdateIngredient(c *fiber.Ctx) error
		DeactivateIngredient(c *fiber.Ctx) error
		RestockIngredient(c *fiber.Ctx) error
		AdjustStock(c *fiber.Ctx) error
		CheckLowStock(c *fiber.Ctx) error
		GetStockHistory(c *fiber.Ctx) error
		GetUsageReport(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) AddIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	res, err := h.inventoryService.AddIngredient(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddIngredient)
}

func (h *inventoryHandler) GetIngredients(c *fiber.Ctx) error {
	includeInactive := c.Query("include_inactive", "false") == "true"

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	ingredients, count, err := h.inventoryService.GetIngredients(c.Context(), includeInactive, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"ingredients": ingredients,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": count,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *inventoryHandler) GetIngredientDetails(c *fiber.Ctx) error {
	ingredientID := c.Params("id")

	res, err := h.inventoryService.GetIngredientDetails(c.Context(), ingredientID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *inventoryHandler) UpdateIngredient(c *fiber.Ctx) error {
	ingredientID := c.Params("id")
	req := new(domain.UpdateIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateIngredient, err)
	}

	if err := h.inventoryService.UpdateIngredient(c.Context(), ingredientID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateIngredient)
}

func (h *inventoryHandler) DeactivateIngredient(c *fiber.Ctx) error {
	ingredientID := c.Params("id")

	if err := h.inventoryService.DeactivateIngredient(c.Context(), ingredientID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteIngredient)
}

func (h *inventoryHandler) RestockIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	ingredientID := c.Params("id")
	req := new(domain.RestockRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRestock, err)
	}

	if err := h.inventoryService.RestockIngredient(c.Context(), ingredientID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRestock, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRestock)
}

func (h *inventoryHandler) AdjustStock(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	ingredientID := c.Params("id")
	req := new(domain.AdjustStockRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRestock, err)
	}

	if err := h.inventoryService.AdjustStock(c.Context(), ingredientID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRestock, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRestock)
}

func (h *inventoryHandler) CheckLowStock(c *fiber.Ctx) error {
	ingredientID := c.Params("id")

	low, err := h.inventoryService.CheckLowStock(c.Context(), ingredientID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"low_stock": low}, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *inventoryHandler) GetStockHistory(c *fiber.Ctx) error {
	ingredientID := c.Query("ingredient_id", "")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	entries, count, err := h.inventoryService.GetStockHistory(c.Context(), ingredientID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStockHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"history": entries,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": count,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetStockHistory)
}

// reportRange parses the inclusive start/end dates of a usage report.
// The end bound extends to the last instant of its day so history rows
// written with sub-second timestamps still fall inside it.
func reportRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startDate, endDate.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

func (h *inventoryHandler) GetUsageReport(c *fiber.Ctx) error {
	startDate, endDate, err := reportRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUsageReport, err)
	}

	report, err := h.inventoryService.GetUsageReport(c.Context(), startDate, endDate)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUsageReport, err)
	}

	return presenters.SuccessResponse(c, report, fiber.StatusOK, domain.MessageSuccessGetUsageReport)
}
