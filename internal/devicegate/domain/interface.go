package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_device_repository.go -package=mocks github.com/EAATA-Brasil/backendAppShop/internal/devicegate/domain DeviceRepository

type DeviceRepository interface {
	GetSettings(ctx context.Context) (*Settings, error)
	UpsertSettings(ctx context.Context, settings *Settings) error
	ListDevices(ctx context.Context, customerID string) ([]Device, error)
	RegisterDevice(ctx context.Context, customerID, deviceID string, maxDevices int) (RegistrationOutcome, error)
	TouchDevice(ctx context.Context, customerID, deviceID string) error
}
