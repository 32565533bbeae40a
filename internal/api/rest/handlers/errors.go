package handlers

import (
	"errors"
	"log"

	"github.com/dristi2006/expiry-date-tracker/internal/helper/utils"
	"github.com/dristi2006/expiry-date-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

// respondServiceError maps service sentinels to HTTP statuses and stable
// codes. Unknown errors are logged and reported as a generic store fault so
// internals never reach the client.
func respondServiceError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "All fields required")
	case errors.Is(err, services.ErrDuplicateAccount):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "DUPLICATE_ACCOUNT", "Email/username exists")
	case errors.Is(err, services.ErrInvalidCode):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "INVALID_CODE", "Invalid code or email.")
	case errors.Is(err, services.ErrCodeExpired):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "CODE_EXPIRED", "Code expired.")
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
	case errors.Is(err, services.ErrUnverifiedAccount):
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "UNVERIFIED_ACCOUNT", "Please verify your email before logging in.")
	case errors.Is(err, services.ErrNotFoundOrVerified):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "NOT_FOUND_OR_VERIFIED", "User not found or already verified.")
	case errors.Is(err, services.ErrNotification):
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "NOTIFICATION_ERROR", "Could not send verification email.")
	case errors.Is(err, services.ErrNotFound):
		return utils.ResponseError(ctx, fiber.StatusNotFound, "NOT_FOUND", "Not found")
	default:
		log.Printf("internal error: %v", err)
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "STORE_ERROR", "Internal Server Error")
	}
}
