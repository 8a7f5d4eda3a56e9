package processor

import (
	"context"
	"fmt"
)

const reportsCategory = "operational"

// ReportsConfig is the typed view of the operational settings consumed by the
// weekly report pipeline. Values are validated when loaded, not at send time.
type ReportsConfig struct {
	Enabled   bool
	Email     string
	WeeksBack int
}

func defaultReportsConfig() ReportsConfig {
	return ReportsConfig{
		Enabled:   false,
		Email:     "admin@deepcalm.local",
		WeeksBack: 1,
	}
}

// LoadReportsConfig reads the operational settings category and converts it
// into a ReportsConfig. A value that does not parse as its declared type fails
// the whole load rather than being silently skipped.
func (p *SettingProcessor) LoadReportsConfig(ctx context.Context) (ReportsConfig, error) {
	category := reportsCategory
	settings, err := p.store.ListSettings(ctx, &category)
	if err != nil {
		p.logger.Error(ctx, "failed to load reports settings", err)
		return ReportsConfig{}, err
	}

	config := defaultReportsConfig()
	for _, setting := range settings {
		value, err := ConvertValue(setting.Value, setting.ValueType)
		if err != nil {
			return ReportsConfig{}, fmt.Errorf("setting %q: %w", setting.Key, err)
		}
		switch setting.Key {
		case "reports_enabled":
			enabled, ok := value.(bool)
			if !ok {
				return ReportsConfig{}, fmt.Errorf("setting %q: %w: expected bool, got %s", setting.Key, ErrInvalidValue, setting.ValueType)
			}
			config.Enabled = enabled
		case "reports_email":
			email, ok := value.(string)
			if !ok || email == "" {
				return ReportsConfig{}, fmt.Errorf("setting %q: %w: expected non-empty string", setting.Key, ErrInvalidValue)
			}
			config.Email = email
		case "reports_weeks_back":
			weeks, ok := value.(int)
			if !ok || weeks < 1 {
				return ReportsConfig{}, fmt.Errorf("setting %q: %w: expected positive int", setting.Key, ErrInvalidValue)
			}
			config.WeeksBack = weeks
		}
	}
	return config, nil
}
