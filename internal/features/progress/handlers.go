package progress

import (
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

// GetSummary handles GET /progress.
func (h *Handler) GetSummary(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	return c.JSON(h.svc.Summarize(st))
}

// GetToday handles GET /progress/today.
func (h *Handler) GetToday(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	return c.JSON(h.svc.Summarize(st).Today)
}
