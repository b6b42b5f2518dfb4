package profile

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

// GetProfile handles GET /profile.
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	p := h.svc.Get(st)
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "No profile saved",
		})
	}
	return c.JSON(p)
}

// SaveProfile handles PUT /profile.
func (h *Handler) SaveProfile(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req SaveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	p, err := h.svc.Save(st, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidMetrics) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save profile",
		})
	}
	return c.JSON(p)
}

// GetRecommendations handles GET /profile/recommendations.
func (h *Handler) GetRecommendations(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	p := h.svc.Get(st)
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "No profile saved",
		})
	}
	return c.JSON(h.svc.Recommendations(p))
}

// GetConditions handles GET /profile/conditions - the fixed condition
// lookup table for the edit screen.
func (h *Handler) GetConditions(c *fiber.Ctx) error {
	return c.JSON(BodyConditions)
}
