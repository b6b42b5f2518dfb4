package expenses

import (
	"errors"
	"strconv"

	"github.com/fitai-labs/fitai-backend/internal/dto"
	"github.com/fitai-labs/fitai-backend/internal/features/activity"
	"github.com/fitai-labs/fitai-backend/internal/identity"
	"github.com/fitai-labs/fitai-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	svc    *Service
	ledger *activity.Service
	stores store.Factory
}

func NewHandler(svc *Service, ledger *activity.Service, stores store.Factory) *Handler {
	return &Handler{svc: svc, ledger: ledger, stores: stores}
}

func (h *Handler) ownerStore(c *fiber.Ctx) (store.Store, error) {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return nil, err
	}
	return h.stores(userID), nil
}

// List handles GET /expenses.
func (h *Handler) List(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	out := h.svc.List(st)
	if out == nil {
		out = []Expense{}
	}
	return c.JSON(out)
}

// Add handles POST /expenses.
func (h *Handler) Add(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req AddRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	exp, err := h.svc.Add(st, &req)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) || errors.Is(err, ErrNegativeAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to add expense",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(exp)
}

// Delete handles DELETE /expenses/:id.
func (h *Handler) Delete(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid expense id",
		})
	}

	if err := h.svc.Delete(st, id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetStats handles GET /expenses/stats.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	workouts := len(h.ledger.RecentWorkouts(st))
	return c.JSON(h.svc.ComputeStats(st, workouts))
}
