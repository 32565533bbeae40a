package handlers

import (
	"github.com/dristi2006/expiry-date-tracker/internal/dto"
	"github.com/dristi2006/expiry-date-tracker/internal/helper/utils"
	"github.com/dristi2006/expiry-date-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) SetupRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/verify-2fa", h.Verify2FA)
	auth.Post("/login", h.Login)
	auth.Post("/resend-2fa", h.Resend2FA)
}

func (h *AuthHandler) Signup(ctx *fiber.Ctx) error {
	var requestBody dto.SignupRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "All fields required")
	}

	if err := h.svc.Signup(requestBody); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.SignupResponse{Needs2FA: true})
}

func (h *AuthHandler) Verify2FA(ctx *fiber.Ctx) error {
	var requestBody dto.VerifyRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "Email and code required.")
	}

	resp, err := h.svc.Verify(requestBody.Email, requestBody.Code)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "Email and password required.")
	}

	resp, err := h.svc.Login(requestBody.Email, requestBody.Password)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AuthHandler) Resend2FA(ctx *fiber.Ctx) error {
	var requestBody dto.ResendRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "Email required.")
	}

	if err := h.svc.Resend(requestBody.Email); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Verification code resent to your email.",
	})
}
