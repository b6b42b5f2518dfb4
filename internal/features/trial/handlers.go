package trial

import (
	"errors"

	"github.com/fitai-labs/fitai-backend/internal/dto"
	"github.com/fitai-labs/fitai-backend/internal/fingerprint"
	"github.com/fitai-labs/fitai-backend/internal/identity"
	"github.com/fitai-labs/fitai-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	svc     *Service
	stores  store.Factory
	devices fingerprint.Provider
}

func NewHandler(svc *Service, stores store.Factory, devices fingerprint.Provider) *Handler {
	return &Handler{svc: svc, stores: stores, devices: devices}
}

func (h *Handler) ownerStore(c *fiber.Ctx) (store.Store, error) {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return nil, err
	}
	return h.stores(userID), nil
}

// StatusResponse is the full trial readout for the paywall screens.
type StatusResponse struct {
	Record        *Record  `json:"record"`
	DaysRemaining int      `json:"days_remaining"`
	Features      Features `json:"features"`
}

// GetStatus handles GET /trial.
func (h *Handler) GetStatus(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	rec := h.svc.Get(st)
	return c.JSON(StatusResponse{
		Record:        rec,
		DaysRemaining: h.svc.DaysRemaining(rec),
		Features:      h.svc.FallbackFeatures(rec),
	})
}

// CanStart handles GET /trial/eligibility.
func (h *Handler) CanStart(c *fiber.Ctx) error {
	st, err := h.ownerStore(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	deviceID := h.devices.DeviceID(c)
	if deviceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: fingerprint.HeaderName + " header is required",
		})
	}
	return c.JSON(h.svc.CanStart(st, deviceID))
}

// Start handles POST /trial/start.
func (h *Handler) Start(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	deviceID := h.devices.DeviceID(c)
	if deviceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: fingerprint.HeaderName + " header is required",
		})
	}

	email, _ := identity.GetEmail(c)

	rec, err := h.svc.Start(h.stores(userID), deviceID, email)
	if err != nil {
		if errors.Is(err, ErrAlreadyUsed) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to start trial",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}
