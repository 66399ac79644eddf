package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SettingsStore = (*SettingsRepo)(nil)

// Setting keys.
const (
	keyCity    = "location.city"
	keyCountry = "location.country"
)

// SettingsRepo is the SQLite implementation of the SettingsStore port.
type SettingsRepo struct {
	db *DB
}

// NewSettingsRepo creates a new SettingsRepo backed by the given DB.
func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// GetLocation returns the stored prayer-time location, or ok=false when no
// location has been saved yet.
func (r *SettingsRepo) GetLocation(ctx context.Context) (model.Location, bool, error) {
	city, ok1, err := r.get(ctx, keyCity)
	if err != nil {
		return model.Location{}, false, err
	}
	country, ok2, err := r.get(ctx, keyCountry)
	if err != nil {
		return model.Location{}, false, err
	}
	if !ok1 || !ok2 {
		return model.Location{}, false, nil
	}
	return model.Location{City: city, Country: country}, true, nil
}

// SetLocation stores the prayer-time location.
func (r *SettingsRepo) SetLocation(ctx context.Context, loc model.Location) error {
	if err := r.set(ctx, keyCity, loc.City); err != nil {
		return err
	}
	return r.set(ctx, keyCountry, loc.Country)
}

func (r *SettingsRepo) get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM settings WHERE key = ?`
	var value string
	err := r.db.Reader.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, true, nil
}

func (r *SettingsRepo) set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	_, err := r.db.Writer.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}
