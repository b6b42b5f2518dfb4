package sync

import (
	"context"

	"github.com/fitai-labs/fitai-backend/internal/dto"
	"github.com/fitai-labs/fitai-backend/internal/identity"
	"github.com/fitai-labs/fitai-backend/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	svc    *Service
	stores store.Factory
}

func NewHandler(svc *Service, stores store.Factory) *Handler {
	return &Handler{svc: svc, stores: stores}
}

func (h *Handler) caller(c *fiber.Ctx) (uuid.UUID, string, error) {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return uuid.Nil, "", err
	}
	email, err := identity.GetEmail(c)
	if err != nil {
		return uuid.Nil, "", err
	}
	return userID, email, nil
}

type pullResponse struct {
	Result Result `json:"result"`
}

// Pull handles POST /sync/pull - restore the remote bundle over local
// state.
func (h *Handler) Pull(c *fiber.Ctx) error {
	userID, email, err := h.caller(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	result := h.svc.Pull(c.Context(), h.stores(userID), email)
	return c.JSON(pullResponse{Result: result})
}

// Backup handles POST /sync/backup - re-bundle live keys, cache, and
// push opportunistically. Always succeeds from the caller's view.
func (h *Handler) Backup(c *fiber.Ctx) error {
	userID, email, err := h.caller(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	h.svc.Backup(h.stores(userID), email)
	return c.SendStatus(fiber.StatusAccepted)
}

// Push handles POST /sync/push - upload the last cached bundle without
// re-collecting. Fire-and-forget semantics surface as 202 regardless of
// the upload's fate.
func (h *Handler) Push(c *fiber.Ctx) error {
	userID, email, err := h.caller(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	// The request context dies with this handler; the background push
	// gets its own.
	st := h.stores(userID)
	go h.svc.Push(context.Background(), st, email)
	return c.SendStatus(fiber.StatusAccepted)
}
