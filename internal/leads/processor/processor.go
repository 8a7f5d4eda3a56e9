package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LeadStore defines the database operations required by LeadProcessor
type LeadStore interface {
	UpsertLead(ctx context.Context, params store.UpsertLeadParams) (store.Lead, error)
	GetLeadByID(ctx context.Context, leadID uuid.UUID) (store.Lead, error)
	GetLeadByPhone(ctx context.Context, phone string) (store.Lead, error)
	CreateConversion(ctx context.Context, params store.CreateConversionParams) (store.Conversion, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
}

var (
	ErrInvalidPhone     = errors.New("phone must not be empty")
	ErrLeadNotFound     = errors.New("lead not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvalidRevenue   = errors.New("revenue must not be negative")
	ErrInvalidChannel   = errors.New("unknown channel code")
)

var validChannels = map[string]bool{
	store.ChannelVK:     true,
	store.ChannelDirect: true,
	store.ChannelAvito:  true,
}

type LeadProcessor struct {
	store  LeadStore
	logger *observability.Logger
}

func New(store LeadStore, logger *observability.Logger) LeadProcessor {
	return LeadProcessor{store: store, logger: logger}
}

// UpsertLeadParams carries lead identity and attribution for ingestion
type UpsertLeadParams struct {
	Phone        string
	UTMSource    *string
	UTMCampaign  *string
	UTMContent   *string
	UTMMedium    *string
	UTMTerm      *string
	FirstTouchAt *time.Time
}

// UpsertLead creates or refreshes a lead keyed by phone. Attribution tags only
// overwrite when the incoming value is present; the earliest first touch wins.
func (p *LeadProcessor) UpsertLead(ctx context.Context, params UpsertLeadParams) (store.Lead, error) {
	phone := strings.TrimSpace(params.Phone)
	if phone == "" {
		return store.Lead{}, ErrInvalidPhone
	}

	firstTouch := params.FirstTouchAt
	if firstTouch == nil {
		now := time.Now().UTC()
		firstTouch = &now
	}

	lead, err := p.store.UpsertLead(ctx, store.UpsertLeadParams{
		Phone:        phone,
		UTMSource:    params.UTMSource,
		UTMCampaign:  params.UTMCampaign,
		UTMContent:   params.UTMContent,
		UTMMedium:    params.UTMMedium,
		UTMTerm:      params.UTMTerm,
		FirstTouchAt: firstTouch,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to upsert lead", err)
		return store.Lead{}, err
	}
	return lead, nil
}

// GetLead retrieves a lead by ID
func (p *LeadProcessor) GetLead(ctx context.Context, leadID uuid.UUID) (store.Lead, error) {
	lead, err := p.store.GetLeadByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Lead{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return store.Lead{}, err
	}
	return lead, nil
}

// CreateConversionParams carries a realized sale. CampaignID is nil for
// organic conversions.
type CreateConversionParams struct {
	LeadID      uuid.UUID
	CampaignID  *uuid.UUID
	ChannelCode *string
	RevenueRub  float64
	ConvertedAt *time.Time
}

// CreateConversion records a sale for an existing lead. The campaign is
// optional; a conversion without one is treated as organic by the aggregators.
func (p *LeadProcessor) CreateConversion(ctx context.Context, params CreateConversionParams) (store.Conversion, error) {
	if params.RevenueRub < 0 {
		return store.Conversion{}, ErrInvalidRevenue
	}
	if params.ChannelCode != nil && !validChannels[*params.ChannelCode] {
		return store.Conversion{}, ErrInvalidChannel
	}

	if _, err := p.store.GetLeadByID(ctx, params.LeadID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Conversion{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return store.Conversion{}, err
	}

	if params.CampaignID != nil {
		if _, err := p.store.GetCampaignByID(ctx, *params.CampaignID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return store.Conversion{}, ErrCampaignNotFound
			}
			p.logger.Error(ctx, "failed to get campaign", err)
			return store.Conversion{}, err
		}
	}

	convertedAt := time.Now().UTC()
	if params.ConvertedAt != nil {
		convertedAt = *params.ConvertedAt
	}

	conversion, err := p.store.CreateConversion(ctx, store.CreateConversionParams{
		LeadID:      params.LeadID,
		CampaignID:  params.CampaignID,
		ChannelCode: params.ChannelCode,
		RevenueRub:  params.RevenueRub,
		ConvertedAt: convertedAt,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create conversion", err)
		return store.Conversion{}, err
	}

	p.logger.Info(ctx, "conversion recorded",
		observability.Field{Key: "lead_id", Value: params.LeadID.String()},
		observability.Field{Key: "revenue_rub", Value: params.RevenueRub},
	)
	return conversion, nil
}
