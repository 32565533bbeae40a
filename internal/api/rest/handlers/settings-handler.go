package handlers

import (
	"github.com/dristi2006/expiry-date-tracker/internal/helper"
	"github.com/dristi2006/expiry-date-tracker/internal/helper/utils"
	"github.com/dristi2006/expiry-date-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	svc  services.SettingsService
	auth helper.Auth
}

func NewSettingsHandler(svc services.SettingsService, auth helper.Auth) *SettingsHandler {
	return &SettingsHandler{svc: svc, auth: auth}
}

func (h *SettingsHandler) SetupRoutes(router fiber.Router) {
	settings := router.Group("/settings")
	settings.Get("/", h.Get)
	settings.Post("/", h.Save)
}

func (h *SettingsHandler) Get(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}

	settings, err := h.svc.Get(user.UserID)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, settings)
}

func (h *SettingsHandler) Save(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}

	settings := map[string]interface{}{}
	if err := ctx.BodyParser(&settings); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid settings payload")
	}

	if err := h.svc.Save(user.UserID, settings); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"success": true})
}
