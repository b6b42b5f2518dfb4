package habits

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

// List handles GET /habits.
func (h *Handler) List(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	return c.JSON(h.svc.List(st))
}

// Add handles POST /habits.
func (h *Handler) Add(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req struct {
		Title string `json:"title"`
	}
	if err := c.BodyParser(&req); err != nil || req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Title is required",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(h.svc.Add(st, req.Title))
}

// Toggle handles PUT /habits/:id/days/:day.
func (h *Handler) Toggle(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid habit id",
		})
	}
	day, err := c.ParamsInt("day")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid day index",
		})
	}

	habits, err := h.svc.ToggleDay(st, id, day)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, ErrHabitNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(habits)
}

// Delete handles DELETE /habits/:id.
func (h *Handler) Delete(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid habit id",
		})
	}

	habits, err := h.svc.Delete(st, id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(habits)
}
