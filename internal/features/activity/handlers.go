package activity

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

// Log handles POST /activities.
func (h *Handler) Log(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req LogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.svc.Append(h.stores(userID), userID, &req)
	if err != nil {
		if errors.Is(err, ErrUnknownType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to log activity",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List handles GET /activities - the full ledger, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	items := h.svc.List(st)
	if items == nil {
		items = []Item{}
	}
	return c.JSON(items)
}

// RecentWorkouts handles GET /activities/workouts.
func (h *Handler) RecentWorkouts(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	views := h.svc.RecentWorkouts(st)
	if views == nil {
		views = []WorkoutView{}
	}
	return c.JSON(views)
}
