package store

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	// PostgreSQL array format: {item1,item2,item3}
	return "{" + strings.Join(a, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	str = strings.Trim(str, "{}")
	if str == "" {
		*a = []string{}
		return nil
	}
	*a = strings.Split(str, ",")
	return nil
}

// Campaign represents an advertising campaign
type Campaign struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	Title         string      `db:"title" json:"title"`
	SKU           string      `db:"sku" json:"sku"`
	BudgetRub     float64     `db:"budget_rub" json:"budget_rub"`
	TargetCACRub  float64     `db:"target_cac_rub" json:"target_cac_rub"`
	TargetROAS    float64     `db:"target_roas" json:"target_roas"`
	Channels      StringArray `db:"channels" json:"channels"`
	Status        string      `db:"status" json:"status"`
	ABTestEnabled bool        `db:"ab_test_enabled" json:"ab_test_enabled"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updated_at"`
}

// Creative represents an ad creative variant belonging to a campaign
type Creative struct {
	ID               uuid.UUID `db:"id" json:"id"`
	CampaignID       uuid.UUID `db:"campaign_id" json:"campaign_id"`
	Variant          string    `db:"variant" json:"variant"`
	Title            string    `db:"title" json:"title"`
	Body             string    `db:"body" json:"body"`
	ImageURL         *string   `db:"image_url" json:"image_url"`
	CTA              *string   `db:"cta" json:"cta"`
	GeneratedBy      string    `db:"generated_by" json:"generated_by"`
	ModerationStatus string    `db:"moderation_status" json:"moderation_status"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// Placement represents a creative deployed on one advertising channel
type Placement struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	CampaignID         uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	CreativeID         *uuid.UUID `db:"creative_id" json:"creative_id"`
	ChannelCode        string     `db:"channel_code" json:"channel_code"`
	ExternalCampaignID *string    `db:"external_campaign_id" json:"external_campaign_id"`
	ExternalAdID       *string    `db:"external_ad_id" json:"external_ad_id"`
	Status             string     `db:"status" json:"status"`
	ErrorMessage       *string    `db:"error_message" json:"error_message"`
	PublishedAt        *time.Time `db:"published_at" json:"published_at"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
}

// Lead represents a prospective customer keyed by phone, carrying UTM attribution
type Lead struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Phone        string     `db:"phone" json:"phone"`
	UTMSource    *string    `db:"utm_source" json:"utm_source"`
	UTMCampaign  *string    `db:"utm_campaign" json:"utm_campaign"`
	UTMContent   *string    `db:"utm_content" json:"utm_content"`
	UTMMedium    *string    `db:"utm_medium" json:"utm_medium"`
	UTMTerm      *string    `db:"utm_term" json:"utm_term"`
	FirstTouchAt *time.Time `db:"first_touch_at" json:"first_touch_at"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// Conversion represents a realized sale tied to a lead and optionally a campaign
type Conversion struct {
	ID          int        `db:"id" json:"id"`
	LeadID      uuid.UUID  `db:"lead_id" json:"lead_id"`
	CampaignID  *uuid.UUID `db:"campaign_id" json:"campaign_id"`
	ChannelCode *string    `db:"channel_code" json:"channel_code"`
	RevenueRub  float64    `db:"revenue_rub" json:"revenue_rub"`
	ConvertedAt time.Time  `db:"converted_at" json:"converted_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// Setting represents a key-value configuration entry with a typed value
type Setting struct {
	Key         string    `db:"key" json:"key"`
	Value       string    `db:"value" json:"value"`
	ValueType   string    `db:"value_type" json:"value_type"`
	Category    string    `db:"category" json:"category"`
	Description *string   `db:"description" json:"description"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
	UpdatedBy   *string   `db:"updated_by" json:"updated_by"`
}
