package handlers

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/internal/api/presenters"
	"Resto-POS-Backend/pkg/payment"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PaymentHandler interface {
		RecordCashPayment(c *fiber.Ctx) error
		CreateCheckout(c *fiber.Ctx) error
		HandleWebhook(c *fiber.Ctx) error
		GetPayments(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewPaymentHandler(paymentService payment.PaymentService, validator *validator.Validate) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *paymentHandler) RecordCashPayment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RecordPaymentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordPayment, err)
	}

	res, err := h.paymentService.RecordCashPayment(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordPayment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRecordPayment)
}

func (h *paymentHandler) CreateCheckout(c *fiber.Ctx) error {
	req := new(domain.CreateCheckoutRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCheckout, err)
	}

	res, err := h.paymentService.CreateCheckout(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCheckout)
}

func (h *paymentHandler) HandleWebhook(c *fiber.Ctx) error {
	payload := make(map[string]interface{})

	if err := c.BodyParser(&payload); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.paymentService.HandleWebhook(c.Context(), payload); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPaymentWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessPaymentWebhook)
}

func (h *paymentHandler) GetPayments(c *fiber.Ctx) error {
	status := c.Query("status", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	payments, count, err := h.paymentService.GetPayments(c.Context(), status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPayments, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"payments": payments,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": count,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetPayments)
}
