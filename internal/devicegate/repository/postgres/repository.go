package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/EAATA-Brasil/backendAppShop/internal/devicegate/domain"
	"github.com/EAATA-Brasil/backendAppShop/pkg/constant"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the repository needs. pgxmock
// implements the same surface, so tests can swap the pool out.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresRepository struct {
	db PgxPool
}

func NewPostgresRepository(db PgxPool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetSettings returns the stored settings row, or (nil, nil) when none has
// been written yet.
func (r *PostgresRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT max_devices, block_message
		FROM settings
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, constant.SettingsRowID)

	var s domain.Settings
	err := row.Scan(&s.MaxDevices, &s.BlockMessage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &s, nil
}

func (r *PostgresRepository) UpsertSettings(ctx context.Context, settings *domain.Settings) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO settings (id, max_devices, block_message)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET
			max_devices = EXCLUDED.max_devices,
			block_message = EXCLUDED.block_message
	`, constant.SettingsRowID, settings.MaxDevices, settings.BlockMessage)

	return err
}

func (r *PostgresRepository) ListDevices(ctx context.Context, customerID string) ([]domain.Device, error) {
	var devices []domain.Device
	err := pgxscan.Select(ctx, r.db, &devices, `
		SELECT id, customer_id, device_id, first_seen, last_seen
		FROM devices
		WHERE customer_id = $1
		ORDER BY first_seen ASC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	return devices, nil
}

// RegisterDevice runs the count-then-insert sequence inside a single
// transaction, serialized per customer with an advisory lock so that two
// logins racing at the limit boundary cannot both insert.
func (r *PostgresRepository) RegisterDevice(ctx context.Context, customerID, deviceID string, maxDevices int) (outcome domain.RegistrationOutcome, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.OutcomeUnknown, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, customerID); err != nil {
		return domain.OutcomeUnknown, fmt.Errorf("failed to lock customer: %w", err)
	}

	known, count, err := registeredDevices(ctx, tx, customerID, deviceID)
	if err != nil {
		return domain.OutcomeUnknown, err
	}

	if known {
		return domain.OutcomeAlreadyRegistered, nil
	}
	if count >= maxDevices {
		return domain.OutcomeLimitExceeded, nil
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO devices (id, customer_id, device_id, first_seen, last_seen)
		VALUES (gen_random_uuid(), $1, $2, now(), now())
	`, customerID, deviceID)
	if err != nil {
		return domain.OutcomeUnknown, fmt.Errorf("failed to register device: %w", err)
	}

	return domain.OutcomeRegistered, nil
}

func registeredDevices(ctx context.Context, tx pgx.Tx, customerID, deviceID string) (known bool, count int, err error) {
	rows, err := tx.Query(ctx, `SELECT device_id FROM devices WHERE customer_id = $1`, customerID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to load device set: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return false, 0, fmt.Errorf("failed to scan device row: %w", err)
		}
		count++
		if id == deviceID {
			known = true
		}
	}
	if err := rows.Err(); err != nil {
		return false, 0, fmt.Errorf("failed to read device set: %w", err)
	}

	return known, count, nil
}

// TouchDevice refreshes last_seen for an already registered device.
func (r *PostgresRepository) TouchDevice(ctx context.Context, customerID, deviceID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE devices
		SET last_seen = now()
		WHERE customer_id = $1 AND device_id = $2
	`, customerID, deviceID)

	return err
}
