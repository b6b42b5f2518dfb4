package records

import (
	"errors"

	"github.com/fitai-labs/fitai-backend/internal/dto"
	"github.com/fitai-labs/fitai-backend/internal/identity"
	"github.com/fitai-labs/fitai-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	svc    *Service
	stores store.Factory
}

func NewHandler(svc *Service, stores store.Factory) *Handler {
	return &Handler{svc: svc, stores: stores}
}

func (h *Handler) ownerStore(c *fiber.Ctx) (store.Store, error) {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return nil, err
	}
	return h.stores(userID), nil
}

type recordResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Get handles GET /records/:key.
func (h *Handler) Get(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	key := c.Params("key")
	value, ok, err := h.svc.Get(st, key)
	if errors.Is(err, ErrUnknownKey) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "No record stored under " + key,
		})
	}
	return c.JSON(recordResponse{Key: key, Value: value})
}

// Put handles PUT /records/:key.
func (h *Handler) Put(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	key := c.Params("key")
	if err := h.svc.Put(st, key, req.Value); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(recordResponse{Key: key, Value: req.Value})
}

// Delete handles DELETE /records/:key.
func (h *Handler) Delete(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.svc.Delete(st, c.Params("key")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export handles GET /records/export - the full data dump.
func (h *Handler) Export(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	c.Set("Content-Disposition", `attachment; filename="fitai-export.json"`)
	return c.JSON(h.svc.Export(st))
}

// Wipe handles DELETE /records - the full data wipe.
func (h *Handler) Wipe(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.svc.Wipe(st); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to wipe data",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
