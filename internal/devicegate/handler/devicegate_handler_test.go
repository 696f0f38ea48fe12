package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/EAATA-Brasil/backendAppShop/config"
	"github.com/EAATA-Brasil/backendAppShop/internal/devicegate/domain"
	"github.com/EAATA-Brasil/backendAppShop/internal/devicegate/dto"
	"github.com/EAATA-Brasil/backendAppShop/internal/devicegate/handler"
	"github.com/EAATA-Brasil/backendAppShop/internal/devicegate/service"
	"github.com/EAATA-Brasil/backendAppShop/internal/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealth struct {
	err error
}

func (s stubHealth) HealthCheck(context.Context) error { return s.err }

func newTestConfig() *config.Config {
	return &config.Config{
		DefaultMaxDevices:   2,
		DefaultBlockMessage: "default block message",
	}
}

func newTestHandler(t *testing.T, health handler.HealthChecker) (*handler.DeviceGateHandler, *mocks.MockDeviceRepository, *mocks.MockPublisher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockDeviceRepository(ctrl)
	mockPublisher := mocks.NewMockPublisher(ctrl)
	cfg := newTestConfig()
	admissionService := service.NewAdmissionService(mockRepo, mockPublisher, cfg)
	settingsService := service.NewSettingsService(mockRepo, cfg)

	return handler.NewDeviceGateHandler(admissionService, settingsService, health), mockRepo, mockPublisher
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&out))
	return out
}

func TestCheckDevice(t *testing.T) {
	gateHandler, mockRepo, mockPublisher := newTestHandler(t, stubHealth{})

	app := fiber.New()
	app.Post("/api/device-check", gateHandler.CheckDevice)

	settings := &domain.Settings{MaxDevices: 2, BlockMessage: "limit reached"}

	t.Run("allows a new device", func(t *testing.T) {
		mockRepo.EXPECT().GetSettings(gomock.Any()).Return(settings, nil)
		mockRepo.EXPECT().RegisterDevice(gomock.Any(), "cust_1", "dA", 2).Return(domain.OutcomeRegistered, nil)
		mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		body, _ := json.Marshal(dto.DeviceCheckInput{CustomerID: "cust_1", DeviceID: "dA"})
		req := httptest.NewRequest("POST", "/api/device-check", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		out := decodeBody(t, resp.Body)
		assert.Equal(t, "ok", out["status"])
	})

	t.Run("allows an already registered device", func(t *testing.T) {
		mockRepo.EXPECT().GetSettings(gomock.Any()).Return(settings, nil)
		mockRepo.EXPECT().RegisterDevice(gomock.Any(), "cust_1", "dA", 2).Return(domain.OutcomeAlreadyRegistered, nil)
		mockRepo.EXPECT().TouchDevice(gomock.Any(), "cust_1", "dA").Return(nil)
		mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		body, _ := json.Marshal(dto.DeviceCheckInput{CustomerID: "cust_1", DeviceID: "dA"})
		req := httptest.NewRequest("POST", "/api/device-check", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("denies over the limit with the block message", func(t *testing.T) {
		mockRepo.EXPECT().GetSettings(gomock.Any()).Return(settings, nil)
		mockRepo.EXPECT().RegisterDevice(gomock.Any(), "cust_1", "dC", 2).Return(domain.OutcomeLimitExceeded, nil)
		mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		body, _ := json.Marshal(dto.DeviceCheckInput{CustomerID: "cust_1", DeviceID: "dC"})
		req := httptest.NewRequest("POST", "/api/device-check", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

		out := decodeBody(t, resp.Body)
		assert.Equal(t, "limit reached", out["error"])
	})

	t.Run("bad request on malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/device-check", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad request on missing device_id", func(t *testing.T) {
		body, _ := json.Marshal(dto.DeviceCheckInput{CustomerID: "cust_1"})
		req := httptest.NewRequest("POST", "/api/device-check", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("internal error on persistence failure", func(t *testing.T) {
		mockRepo.EXPECT().GetSettings(gomock.Any()).Return(settings, nil)
		mockRepo.EXPECT().RegisterDevice(gomock.Any(), "cust_1", "dA", 2).
			Return(domain.OutcomeUnknown, errors.New("db down"))

		body, _ := json.Marshal(dto.DeviceCheckInput{CustomerID: "cust_1", DeviceID: "dA"})
		req := httptest.NewRequest("POST", "/api/device-check", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestGetSettings(t *testing.T) {
	gateHandler, mockRepo, _ := newTestHandler(t, stubHealth{})

	app := fiber.New()
	app.Get("/api/settings", gateHandler.GetSettings)

	t.Run("returns stored settings", func(t *testing.T) {
		mockRepo.EXPECT().GetSettings(gomock.Any()).
			Return(&domain.Settings{MaxDevices: 4, BlockMessage: "stop"}, nil)

		req := httptest.NewRequest("GET", "/api/settings", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		out := decodeBody(t, resp.Body)
		assert.Equal(t, float64(4), out["max_devices"])
		assert.Equal(t, "stop", out["block_message"])
	})

	t.Run("returns defaults when no row exists", func(t *testing.T) {
		mockRepo.EXPECT().GetSettings(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest("GET", "/api/settings", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		out := decodeBody(t, resp.Body)
		assert.Equal(t, float64(2), out["max_devices"])
	})
}

func TestUpdateSettings(t *testing.T) {
	gateHandler, mockRepo, _ := newTestHandler(t, stubHealth{})

	app := fiber.New()
	app.Post("/api/settings", gateHandler.UpdateSettings)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().UpsertSettings(gomock.Any(), gomock.Any()).Return(nil)

		body, _ := json.Marshal(dto.SettingsInput{MaxDevices: 3, BlockMessage: "stop"})
		req := httptest.NewRequest("POST", "/api/settings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		out := decodeBody(t, resp.Body)
		assert.Equal(t, true, out["ok"])
	})

	t.Run("rejects invalid limit", func(t *testing.T) {
		body, _ := json.Marshal(dto.SettingsInput{MaxDevices: 0, BlockMessage: "stop"})
		req := httptest.NewRequest("POST", "/api/settings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("internal error on persistence failure", func(t *testing.T) {
		mockRepo.EXPECT().UpsertSettings(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		body, _ := json.Marshal(dto.SettingsInput{MaxDevices: 3, BlockMessage: "stop"})
		req := httptest.NewRequest("POST", "/api/settings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestListCustomerDevices(t *testing.T) {
	gateHandler, mockRepo, _ := newTestHandler(t, stubHealth{})

	app := fiber.New()
	app.Get("/api/customers/:customer_id/devices", gateHandler.ListCustomerDevices)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().ListDevices(gomock.Any(), "cust_1").Return([]domain.Device{
			{DeviceID: "dA"}, {DeviceID: "dB"},
		}, nil)

		req := httptest.NewRequest("GET", "/api/customers/cust_1/devices", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		out := decodeBody(t, resp.Body)
		devices, ok := out["devices"].([]any)
		require.True(t, ok)
		assert.Len(t, devices, 2)
	})

	t.Run("internal error on persistence failure", func(t *testing.T) {
		mockRepo.EXPECT().ListDevices(gomock.Any(), "cust_1").Return(nil, errors.New("db error"))

		req := httptest.NewRequest("GET", "/api/customers/cust_1/devices", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		gateHandler, _, _ := newTestHandler(t, stubHealth{})
		app := fiber.New()
		app.Get("/healthz", gateHandler.Health)

		resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unavailable", func(t *testing.T) {
		gateHandler, _, _ := newTestHandler(t, stubHealth{err: errors.New("no connection")})
		app := fiber.New()
		app.Get("/healthz", gateHandler.Health)

		resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}
