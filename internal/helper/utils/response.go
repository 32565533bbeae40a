package utils

import "github.com/gofiber/fiber/v2"

// ResponseError returns a machine-readable code alongside the message so
// clients can branch without parsing prose.
func ResponseError(ctx *fiber.Ctx, status int, code, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
		"code":  code,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(data)
}
