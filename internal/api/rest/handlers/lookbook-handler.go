package handlers

import (
	"github.com/dristi2006/expiry-date-tracker/internal/helper/utils"
	"github.com/dristi2006/expiry-date-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Lookbook routes are public reference data; no auth guard.
type LookbookHandler struct {
	svc services.LookbookService
}

func NewLookbookHandler(svc services.LookbookService) *LookbookHandler {
	return &LookbookHandler{svc: svc}
}

func (h *LookbookHandler) SetupRoutes(router fiber.Router) {
	lookbook := router.Group("/lookbook")
	lookbook.Get("/", h.List)
	lookbook.Get("/:item_name", h.GetByItemName)
}

func (h *LookbookHandler) List(ctx *fiber.Ctx) error {
	entries, err := h.svc.List()
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, entries)
}

func (h *LookbookHandler) GetByItemName(ctx *fiber.Ctx) error {
	itemName := ctx.Params("item_name")

	entry, err := h.svc.GetByItemName(itemName)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, entry)
}
