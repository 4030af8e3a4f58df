package handlers

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/internal/api/presenters"
	"Resto-POS-Backend/pkg/order"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		CreateOrder(c *fiber.Ctx) error
		GetOrders(c *fiber.Ctx) error
		GetOrderDetails(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
		GetKitchenQueue(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) CreateOrder(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	req := new(domain.CreateOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrder, err)
	}

	res, err := h.orderService.CreateOrder(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOrder)
}

func (h *orderHandler) GetOrders(c *fiber.Ctx) error {
	status := c.Query("status", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	orders, count, err := h.orderService.GetOrders(c.Context(), status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"orders": orders,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": count,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetOrderDetails(c *fiber.Ctx) error {
	orderID := c.Params("id")

	res, err := h.orderService.GetOrderDetails(c.Context(), orderID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("id")
	req := new(domain.UpdateOrderStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrder, err)
	}

	if err := h.orderService.UpdateOrderStatus(c.Context(), orderID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateOrder)
}

func (h *orderHandler) GetKitchenQueue(c *fiber.Ctx) error {
	orders, err := h.orderService.GetKitchenQueue(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedKitchenQueue, err)
	}

	return presenters.SuccessResponse(c, orders, fiber.StatusOK, domain.MessageSuccessKitchenQueue)
}
