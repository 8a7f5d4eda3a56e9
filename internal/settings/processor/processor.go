package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SettingStore defines the database operations required by SettingProcessor
type SettingStore interface {
	UpsertSetting(ctx context.Context, params store.UpsertSettingParams) (store.Setting, error)
	GetSetting(ctx context.Context, key string) (store.Setting, error)
	ListSettings(ctx context.Context, category *string) ([]store.Setting, error)
}

var (
	ErrSettingNotFound  = errors.New("setting not found")
	ErrInvalidValueType = errors.New("value type must be one of int, float, string, bool")
	ErrInvalidValue     = errors.New("value does not parse as its declared type")
	ErrInvalidKey       = errors.New("key must not be empty")
)

var validValueTypes = map[string]bool{
	store.SettingTypeInt:    true,
	store.SettingTypeFloat:  true,
	store.SettingTypeString: true,
	store.SettingTypeBool:   true,
}

type SettingProcessor struct {
	store  SettingStore
	logger *observability.Logger
}

func New(store SettingStore, logger *observability.Logger) SettingProcessor {
	return SettingProcessor{store: store, logger: logger}
}

// UpsertSettingParams carries one key-value setting write
type UpsertSettingParams struct {
	Key         string
	Value       string
	ValueType   string
	Category    string
	Description *string
	UpdatedBy   *string
}

// TypedValue is a setting with its value converted to the declared type
type TypedValue struct {
	Key       string `json:"key"`
	Value     any    `json:"value"`
	ValueType string `json:"value_type"`
	Category  string `json:"category"`
}

// ConvertValue parses a raw setting value according to its declared type
func ConvertValue(value, valueType string) (any, error) {
	switch valueType {
	case store.SettingTypeInt:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an int", ErrInvalidValue, value)
		}
		return n, nil
	case store.SettingTypeFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a float", ErrInvalidValue, value)
		}
		return f, nil
	case store.SettingTypeBool:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "yes", "on":
			return true, nil
		default:
			return false, nil
		}
	case store.SettingTypeString:
		return value, nil
	}
	return nil, ErrInvalidValueType
}

// UpsertSetting creates or updates a setting, validating that the value
// parses as its declared type before it is written.
func (p *SettingProcessor) UpsertSetting(ctx context.Context, params UpsertSettingParams) (store.Setting, error) {
	key := strings.TrimSpace(params.Key)
	if key == "" {
		return store.Setting{}, ErrInvalidKey
	}
	if !validValueTypes[params.ValueType] {
		return store.Setting{}, ErrInvalidValueType
	}
	if _, err := ConvertValue(params.Value, params.ValueType); err != nil {
		return store.Setting{}, err
	}

	category := params.Category
	if category == "" {
		category = "general"
	}

	setting, err := p.store.UpsertSetting(ctx, store.UpsertSettingParams{
		Key:         key,
		Value:       params.Value,
		ValueType:   params.ValueType,
		Category:    category,
		Description: params.Description,
		UpdatedBy:   params.UpdatedBy,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to upsert setting", err)
		return store.Setting{}, err
	}

	p.logger.Info(ctx, "setting updated",
		observability.Field{Key: "key", Value: key},
		observability.Field{Key: "category", Value: category},
	)
	return setting, nil
}

// GetSetting retrieves one setting by key
func (p *SettingProcessor) GetSetting(ctx context.Context, key string) (store.Setting, error) {
	setting, err := p.store.GetSetting(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Setting{}, ErrSettingNotFound
		}
		p.logger.Error(ctx, "failed to get setting", err)
		return store.Setting{}, err
	}
	return setting, nil
}

// GetTypedValue retrieves a setting and converts its value to the declared type
func (p *SettingProcessor) GetTypedValue(ctx context.Context, key string) (TypedValue, error) {
	setting, err := p.GetSetting(ctx, key)
	if err != nil {
		return TypedValue{}, err
	}
	value, err := ConvertValue(setting.Value, setting.ValueType)
	if err != nil {
		return TypedValue{}, err
	}
	return TypedValue{
		Key:       setting.Key,
		Value:     value,
		ValueType: setting.ValueType,
		Category:  setting.Category,
	}, nil
}

// ListSettings retrieves settings, optionally filtered by category
func (p *SettingProcessor) ListSettings(ctx context.Context, category *string) ([]store.Setting, error) {
	settings, err := p.store.ListSettings(ctx, category)
	if err != nil {
		p.logger.Error(ctx, "failed to list settings", err)
		return nil, err
	}
	if settings == nil {
		settings = []store.Setting{}
	}
	return settings, nil
}
