package handlers

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/internal/api/presenters"
	"Resto-POS-Backend/pkg/notification"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
		MarkAllAsRead(c *fiber.Ctx) error
		DeleteNotification(c *fiber.Ctx) error
		GetPreferences(c *fiber.Ctx) error
		UpdatePreferences(c *fiber.Ctx) error
		GetQuietHours(c *fiber.Ctx) error
		UpdateQuietHours(c *fiber.Ctx) error
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

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	unreadOnly := c.Query("unread_only", "false") == "true"

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	notifications, count, err := h.notificationService.GetUserNotifications(c.Context(), userID, unreadOnly, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"notifications": notifications,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": count,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) MarkAsRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	notificationID := c.Params("id")

	if err := h.notificationService.MarkAsRead(c.Context(), notificationID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkRead)
}

func (h *notificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.notificationService.MarkAllAsRead(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkAllRead)
}

func (h *notificationHandler) DeleteNotification(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	notificationID := c.Params("id")

	if err := h.notificationService.DeleteNotification(c.Context(), notificationID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteNotif, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteNotif)
}

func (h *notificationHandler) GetPreferences(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	preferences, err := h.notificationService.GetPreferences(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPreferences, err)
	}

	return presenters.SuccessResponse(c, preferences, fiber.StatusOK, domain.MessageSuccessGetPreferences)
}

func (h *notificationHandler) UpdatePreferences(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdatePreferencesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.notificationService.UpdatePreferences(c.Context(), userID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePreferences, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePreferences)
}

func (h *notificationHandler) GetQuietHours(c *fiber.Ctx) error {
	quietHours, err := h.notificationService.GetQuietHours(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetQuietHours, err)
	}

	return presenters.SuccessResponse(c, quietHours, fiber.StatusOK, domain.MessageSuccessGetQuietHours)
}

func (h *notificationHandler) UpdateQuietHours(c *fiber.Ctx) error {
	req := new(domain.UpdateQuietHoursRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateQuietHours, err)
	}

	if err := h.notificationService.UpdateQuietHours(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateQuietHours, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateQuietHours)
}
