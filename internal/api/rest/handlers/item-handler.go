package handlers

import (
	"io"
	"strconv"

	"github.com/dristi2006/expiry-date-tracker/internal/dto"
	"github.com/dristi2006/expiry-date-tracker/internal/helper"
	"github.com/dristi2006/expiry-date-tracker/internal/helper/utils"
	"github.com/dristi2006/expiry-date-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

const maxScanUpload = 10 * 1024 * 1024 // 10MB

type ItemHandler struct {
	svc     services.ItemService
	scanSvc services.ScanService
	auth    helper.Auth
}

func NewItemHandler(svc services.ItemService, scanSvc services.ScanService, auth helper.Auth) *ItemHandler {
	return &ItemHandler{svc: svc, scanSvc: scanSvc, auth: auth}
}

func (h *ItemHandler) SetupRoutes(router fiber.Router) {
	items := router.Group("/items")
	items.Get("/", h.List)
	items.Post("/", h.Create)
	items.Post("/scan", h.Scan)
	items.Get("/:id", h.Get)
	items.Put("/:id", h.Update)
	items.Delete("/:id", h.Delete)
}

func (h *ItemHandler) List(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}

	items, err := h.svc.List(user.UserID)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, items)
}

func (h *ItemHandler) Get(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}

	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid item id")
	}

	item, err := h.svc.Get(id, user.UserID)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, item)
}

func (h *ItemHandler) Create(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}

	var requestBody dto.ItemRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "Name and expiry_date are required")
	}

	item, err := h.svc.Create(user.UserID, requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, fiber.Map{
		"id":      item.ID,
		"message": "Item created successfully",
	})
}

func (h *ItemHandler) Update(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}

	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid item id")
	}

	var requestBody dto.ItemRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "Name and expiry_date are required")
	}

	if err := h.svc.Update(id, user.UserID, requestBody); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"message": "Item updated successfully"})
}

func (h *ItemHandler) Delete(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}

	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid item id")
	}

	if err := h.svc.Delete(id, user.UserID); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"message": "Item deleted successfully"})
}

// Scan accepts a multipart label photo and runs the barcode/expiry readers
// over it. Nothing is persisted; the client decides what to do with the
// extracted values.
func (h *ItemHandler) Scan(ctx *fiber.Ctx) error {
	if _, err := h.auth.GetCurrentUser(ctx); err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "No image file uploaded")
	}
	if file.Size > maxScanUpload {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "VALIDATION_ERROR", "file too large (max 10MB)")
	}

	f, err := file.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "STORE_ERROR", "cannot open uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "STORE_ERROR", "cannot read uploaded file")
	}

	result, err := h.scanSvc.Scan(ctx.Context(), data)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Scan complete",
		"data":    result,
	})
}

func parseID(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
