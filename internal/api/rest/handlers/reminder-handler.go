package handlers

import (
	"github.com/dristi2006/expiry-date-tracker/internal/dto"
	"github.com/dristi2006/expiry-date-tracker/internal/helper"
	"github.com/dristi2006/expiry-date-tracker/internal/helper/utils"
	"github.com/dristi2006/expiry-date-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReminderHandler struct {
	svc  services.ReminderService
	auth helper.Auth
}

func NewReminderHandler(svc services.ReminderService, auth helper.Auth) *ReminderHandler {
	return &ReminderHandler{svc: svc, auth: auth}
}

func (h *ReminderHandler) SetupRoutes(router fiber.Router) {
	reminders := router.Group("/reminders")
	reminders.Get("/", h.List)
	reminders.Post("/", h.Create)
	reminders.Get("/:item_id", h.GetByItem)
	reminders.Put("/:id", h.Update)
	reminders.Delete("/:id", h.Delete)
}

func (h *ReminderHandler) List(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}

	reminders, err := h.svc.List(user.UserID)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, reminders)
}

func (h *ReminderHandler) GetByItem(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}

	itemID, err := parseID(ctx, "item_id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid item id")
	}

	reminder, err := h.svc.GetByItem(itemID, user.UserID)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, reminder)
}

func (h *ReminderHandler) Create(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}

	var requestBody dto.ReminderRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "item_id, days_before, and notify_time are required")
	}

	reminder, err := h.svc.Create(user.UserID, requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, fiber.Map{
		"id":      reminder.ID,
		"message": "Reminder created successfully",
	})
}

func (h *ReminderHandler) Update(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}

	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid reminder id")
	}

	var requestBody dto.ReminderRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "item_id, days_before, and notify_time are required")
	}

	if err := h.svc.Update(id, user.UserID, requestBody); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"message": "Reminder updated successfully"})
}

func (h *ReminderHandler) Delete(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}

	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid reminder id")
	}

	if err := h.svc.Delete(id, user.UserID); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"message": "Reminder deleted successfully"})
}
