package handlers

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/internal/api/presenters"
	"Resto-POS-Backend/pkg/table"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TableHandler interface {
		CreateTable(c *fiber.Ctx) error
		GetTables(c *fiber.Ctx) error
		UpdateTable(c *fiber.Ctx) error
		CreateReservation(c *fiber.Ctx) error
		GetReservations(c *fiber.Ctx) error
		UpdateReservationStatus(c *fiber.Ctx) error
	}

	tableHandler struct {
		tableService table.TableService
		validator    *validator.Validate
	}
)

func NewTableHandler(tableService table.TableService, validator *validator.Validate) TableHandler {
	return &tableHandler{
		tableService: tableService,
		validator:    validator,
	}
}

func (h *tableHandler) CreateTable(c *fiber.Ctx) error {
	req := new(domain.CreateTableRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTable, err)
	}

	res, err := h.tableService.CreateTable(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTable, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTable)
}

func (h *tableHandler) GetTables(c *fiber.Ctx) error {
	tables, err := h.tableService.GetTables(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTables, err)
	}

	return presenters.SuccessResponse(c, tables, fiber.StatusOK, domain.MessageSuccessGetTables)
}

func (h *tableHandler) UpdateTable(c *fiber.Ctx) error {
	tableID := c.Params("id")
	req := new(domain.UpdateTableRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTable, err)
	}

	if err := h.tableService.UpdateTable(c.Context(), tableID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTable, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateTable)
}

func (h *tableHandler) CreateReservation(c *fiber.Ctx) error {
	req := new(domain.CreateReservationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReservation, err)
	}

	res, err := h.tableService.CreateReservation(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReservation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReservation)
}

func (h *tableHandler) GetReservations(c *fiber.Ctx) error {
	status := c.Query("status", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	reservations, count, err := h.tableService.GetReservations(c.Context(), status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReservations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"reservations": reservations,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": count,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetReservations)
}

func (h *tableHandler) UpdateReservationStatus(c *fiber.Ctx) error {
	reservationID := c.Params("id")
	req := new(domain.UpdateReservationStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReservation, err)
	}

	if err := h.tableService.UpdateReservationStatus(c.Context(), reservationID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReservation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateReservation)
}
