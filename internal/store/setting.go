package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UpsertSettingParams represents parameters for creating or updating a setting
type UpsertSettingParams struct {
	Key         string
	Value       string
	ValueType   string
	Category    string
	Description *string
	UpdatedBy   *string
}

const sqlUpsertSetting = `
INSERT INTO settings (key, value, value_type, category, description, updated_by)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value,
    value_type = EXCLUDED.value_type,
    category = EXCLUDED.category,
    description = COALESCE(EXCLUDED.description, settings.description),
    updated_at = NOW(),
    updated_by = EXCLUDED.updated_by
RETURNING key, value, value_type, category, description, updated_at, updated_by
`

// UpsertSetting creates or updates a key-value setting
func (s *Store) UpsertSetting(ctx context.Context, params UpsertSettingParams) (Setting, error) {
	var setting Setting
	err := s.db.GetContext(ctx, &setting, sqlUpsertSetting,
		params.Key,
		params.Value,
		params.ValueType,
		params.Category,
		params.Description,
		params.UpdatedBy)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert setting", err)
		return Setting{}, fmt.Errorf("failed to upsert setting: %w", err)
	}
	return setting, nil
}

const sqlGetSetting = `
SELECT key, value, value_type, category, description, updated_at, updated_by
FROM settings
WHERE key = $1
`

// GetSetting retrieves one setting by key
func (s *Store) GetSetting(ctx context.Context, key string) (Setting, error) {
	var setting Setting
	err := s.db.GetContext(ctx, &setting, sqlGetSetting, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Setting{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get setting", err)
		return Setting{}, fmt.Errorf("failed to get setting: %w", err)
	}
	return setting, nil
}

const sqlListSettings = `
SELECT key, value, value_type, category, description, updated_at, updated_by
FROM settings
WHERE ($1::text IS NULL OR category = $1)
ORDER BY category, key
`

// ListSettings retrieves settings, optionally filtered by category
func (s *Store) ListSettings(ctx context.Context, category *string) ([]Setting, error) {
	var settings []Setting
	err := s.db.SelectContext(ctx, &settings, sqlListSettings, category)
	if err != nil {
		s.logger.Error(ctx, "failed to list settings", err)
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}
