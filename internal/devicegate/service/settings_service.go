package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/EAATA-Brasil/backendAppShop/config"
	"github.com/EAATA-Brasil/backendAppShop/internal/devicegate/domain"
	"github.com/EAATA-Brasil/backendAppShop/internal/devicegate/dto"
	gateerror "github.com/EAATA-Brasil/backendAppShop/internal/errors"
)

type SettingsService struct {
	repo domain.DeviceRepository
	cfg  *config.Config
}

func NewSettingsService(repo domain.DeviceRepository, cfg *config.Config) *SettingsService {
	return &SettingsService{repo: repo, cfg: cfg}
}

// Get returns the stored settings, or the defaults when no row exists or the
// store is unreachable.
func (s *SettingsService) Get(ctx context.Context) *dto.SettingsOutput {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		slog.WarnContext(ctx, "settings read failed, using defaults", "error", err)
		settings = nil
	}
	if settings == nil {
		settings = &domain.Settings{
			MaxDevices:   s.cfg.DefaultMaxDevices,
			BlockMessage: s.cfg.DefaultBlockMessage,
		}
	}

	return &dto.SettingsOutput{
		MaxDevices:   settings.MaxDevices,
		BlockMessage: settings.BlockMessage,
	}
}

// Update upserts the singleton settings row. An empty block message falls
// back to the default text.
func (s *SettingsService) Update(ctx context.Context, input dto.SettingsInput) error {
	if input.MaxDevices < 1 {
		return gateerror.ErrInvalidDeviceLimit
	}

	message := strings.TrimSpace(input.BlockMessage)
	if message == "" {
		message = s.cfg.DefaultBlockMessage
	}

	return s.repo.UpsertSettings(ctx, &domain.Settings{
		MaxDevices:   input.MaxDevices,
		BlockMessage: message,
	})
}
