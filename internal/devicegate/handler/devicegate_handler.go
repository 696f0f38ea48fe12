package handler

import (
	"context"
	"errors"

	"github.com/EAATA-Brasil/backendAppShop/internal/devicegate/dto"
	"github.com/EAATA-Brasil/backendAppShop/internal/devicegate/service"
	gateerror "github.com/EAATA-Brasil/backendAppShop/internal/errors"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type DeviceGateHandler struct {
	admissionService *service.AdmissionService
	settingsService  *service.SettingsService
	health           HealthChecker
}

func NewDeviceGateHandler(admissionService *service.AdmissionService, settingsService *service.SettingsService, health HealthChecker) *DeviceGateHandler {
	return &DeviceGateHandler{
		admissionService: admissionService,
		settingsService:  settingsService,
		health:           health,
	}
}

func (h *DeviceGateHandler) CheckDevice(c *fiber.Ctx) error {
	var input dto.DeviceCheckInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	decision, err := h.admissionService.Check(c.Context(), input)
	if err != nil {
		if errors.Is(err, gateerror.ErrMissingCustomerID) || errors.Is(err, gateerror.ErrMissingDeviceID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	if !decision.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": decision.Message})
	}

	return c.Status(fiber.StatusOK).JSON(dto.DeviceCheckResponse{
		Status:  "ok",
		Message: decision.Message,
	})
}

func (h *DeviceGateHandler) GetSettings(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.settingsService.Get(c.Context()))
}

func (h *DeviceGateHandler) UpdateSettings(c *fiber.Ctx) error {
	var input dto.SettingsInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.settingsService.Update(c.Context(), input); err != nil {
		if errors.Is(err, gateerror.ErrInvalidDeviceLimit) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

func (h *DeviceGateHandler) ListCustomerDevices(c *fiber.Ctx) error {
	devices, err := h.admissionService.ListDevices(c.Context(), c.Params("customer_id"))
	if err != nil {
		if errors.Is(err, gateerror.ErrMissingCustomerID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"devices": devices})
}

func (h *DeviceGateHandler) Health(c *fiber.Ctx) error {
	if err := h.health.HealthCheck(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// RequireAdminKey guards the administrative endpoints. The configured value is
// a bcrypt hash; the admin surface is disabled outright when it is empty.
func (h *DeviceGateHandler) RequireAdminKey(keyHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if keyHash == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": gateerror.ErrInvalidAdminKey.Error()})
		}

		key := c.Get("X-Admin-Key")
		if key == "" || bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)) != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": gateerror.ErrInvalidAdminKey.Error()})
		}

		return c.Next()
	}
}
