package middleware

import (
	"strings"

	"github.com/dristi2006/expiry-date-tracker/internal/helper"
	"github.com/dristi2006/expiry-date-tracker/internal/helper/utils"
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware guards protected routes. It distinguishes a missing header,
// a header without a token, and a token that fails validation, and never
// falls through to the handler on any of them.
func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := strings.TrimSpace(ctx.Get("Authorization"))
		if authHeader == "" {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "MISSING_HEADER", "Authorization header missing")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "MISSING_TOKEN", "Token missing")
		}

		claims, err := auth.VerifyToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
		}

		ctx.Locals("userID", claims.UserID)
		ctx.Locals("user", claims)
		return ctx.Next()
	}
}
