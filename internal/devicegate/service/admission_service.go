package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/EAATA-Brasil/backendAppShop/config"
	"github.com/EAATA-Brasil/backendAppShop/internal/audit"
	"github.com/EAATA-Brasil/backendAppShop/internal/devicegate/domain"
	"github.com/EAATA-Brasil/backendAppShop/internal/devicegate/dto"
	gateerror "github.com/EAATA-Brasil/backendAppShop/internal/errors"
	"github.com/google/uuid"
)

type AdmissionService struct {
	repo      domain.DeviceRepository
	publisher audit.Publisher
	cfg       *config.Config
}

func NewAdmissionService(repo domain.DeviceRepository, publisher audit.Publisher, cfg *config.Config) *AdmissionService {
	return &AdmissionService{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Check decides whether a device may access the storefront for the given
// customer, registering it when the customer is still under the limit. The
// decision reflects persisted state at read time; settings are re-read on
// every call.
func (s *AdmissionService) Check(ctx context.Context, input dto.DeviceCheckInput) (*domain.Decision, error) {
	if strings.TrimSpace(input.CustomerID) == "" {
		return nil, gateerror.ErrMissingCustomerID
	}
	if strings.TrimSpace(input.DeviceID) == "" {
		return nil, gateerror.ErrMissingDeviceID
	}

	settings := s.effectiveSettings(ctx)

	outcome, err := s.repo.RegisterDevice(ctx, input.CustomerID, input.DeviceID, settings.MaxDevices)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gateerror.ErrDeviceUnavailable, err)
	}

	var decision *domain.Decision
	switch outcome {
	case domain.OutcomeAlreadyRegistered:
		// Refresh is best-effort: the device is already admitted either way.
		if err := s.repo.TouchDevice(ctx, input.CustomerID, input.DeviceID); err != nil {
			slog.WarnContext(ctx, "failed to refresh device last_seen",
				"customer_id", input.CustomerID, "device_id", input.DeviceID, "error", err)
		}
		decision = &domain.Decision{
			Allowed: true,
			Reason:  domain.ReasonAlreadyRegistered,
			Message: "device already registered",
		}
	case domain.OutcomeRegistered:
		decision = &domain.Decision{
			Allowed: true,
			Reason:  domain.ReasonRegistered,
			Message: "device registered",
		}
	default:
		decision = &domain.Decision{
			Allowed: false,
			Reason:  domain.ReasonDenied,
			Message: settings.BlockMessage,
		}
	}

	s.publisher.Publish(ctx, audit.Event{
		EventID:    uuid.NewString(),
		CustomerID: input.CustomerID,
		DeviceID:   input.DeviceID,
		Outcome:    decision.Reason,
		Timestamp:  time.Now().UnixMilli(),
	})

	return decision, nil
}

// ListDevices returns the registered devices for a customer.
func (s *AdmissionService) ListDevices(ctx context.Context, customerID string) ([]dto.DeviceOutput, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, gateerror.ErrMissingCustomerID
	}

	devices, err := s.repo.ListDevices(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gateerror.ErrDeviceUnavailable, err)
	}

	out := make([]dto.DeviceOutput, 0, len(devices))
	for _, d := range devices {
		out = append(out, dto.DeviceOutput{
			DeviceID:  d.DeviceID,
			FirstSeen: d.FirstSeen,
			LastSeen:  d.LastSeen,
		})
	}

	return out, nil
}

// effectiveSettings loads the stored settings, falling back to the configured
// defaults when no row exists or the read fails. A settings outage must not
// block logins.
func (s *AdmissionService) effectiveSettings(ctx context.Context) domain.Settings {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		slog.WarnContext(ctx, "settings read failed, using defaults", "error", err)
		return s.defaultSettings()
	}
	if settings == nil {
		return s.defaultSettings()
	}

	return *settings
}

func (s *AdmissionService) defaultSettings() domain.Settings {
	return domain.Settings{
		MaxDevices:   s.cfg.DefaultMaxDevices,
		BlockMessage: s.cfg.DefaultBlockMessage,
	}
}
