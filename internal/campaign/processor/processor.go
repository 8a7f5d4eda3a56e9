package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"errors"
	"regexp"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, params store.ListCampaignsParams) (store.ListCampaignsResult, error)
	UpdateCampaign(ctx context.Context, campaignID uuid.UUID, params store.UpdateCampaignParams) (store.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID uuid.UUID) error
}

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvalidTitle     = errors.New("title must be between 3 and 255 characters")
	ErrInvalidSKU       = errors.New("sku must match the catalog format, e.g. THAI-90")
	ErrRestrictedSKU    = errors.New("sku is not allowed in ad campaigns")
	ErrInvalidBudget    = errors.New("budget must be positive")
	ErrInvalidTarget    = errors.New("targets must be positive")
	ErrInvalidChannel   = errors.New("unknown channel code")
	ErrNoChannels       = errors.New("campaign needs at least one channel")
	ErrInvalidStatus    = errors.New("invalid campaign status")
)

var skuPattern = regexp.MustCompile(`^[A-Z]+-[0-9]+$`)

// Services the salon does not advertise on external platforms. Moderation on
// the ad networks rejects these verticals outright.
var restrictedSKUs = map[string]struct{}{
	"TANTRA-120": {},
	"YONI-240":   {},
}

var validStatuses = map[string]struct{}{
	store.CampaignStatusDraft:   {},
	store.CampaignStatusActive:  {},
	store.CampaignStatusPaused:  {},
	store.CampaignStatusStopped: {},
}

var validChannels = map[string]struct{}{
	store.ChannelVK:     {},
	store.ChannelDirect: {},
	store.ChannelAvito:  {},
}

type CampaignProcessor struct {
	store  CampaignStore
	logger *observability.Logger
}

func New(store CampaignStore, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Title         string
	SKU           string
	BudgetRub     float64
	TargetCACRub  float64
	TargetROAS    float64
	Channels      []string
	ABTestEnabled bool
}

// UpdateCampaignParams represents parameters for partially updating a campaign
type UpdateCampaignParams struct {
	Title         *string
	BudgetRub     *float64
	TargetCACRub  *float64
	TargetROAS    *float64
	Status        *string
	ABTestEnabled *bool
}

// ListCampaignsParams represents pagination and filtering for campaign listing
type ListCampaignsParams struct {
	Page     int
	PageSize int
	Status   *string
}

// ListCampaignsResponse is one page of campaigns plus pagination metadata
type ListCampaignsResponse struct {
	Campaigns []store.Campaign `json:"campaigns"`
	Total     int              `json:"total"`
	Page      int              `json:"page"`
	PageSize  int              `json:"page_size"`
}

func validateTitle(title string) error {
	if len(title) < 3 || len(title) > 255 {
		return ErrInvalidTitle
	}
	return nil
}

func validateSKU(sku string) error {
	if !skuPattern.MatchString(sku) {
		return ErrInvalidSKU
	}
	if _, restricted := restrictedSKUs[sku]; restricted {
		return ErrRestrictedSKU
	}
	return nil
}

func validateChannels(channels []string) error {
	if len(channels) == 0 {
		return ErrNoChannels
	}
	for _, ch := range channels {
		if _, ok := validChannels[ch]; !ok {
			return ErrInvalidChannel
		}
	}
	return nil
}

// CreateCampaign validates and persists a new campaign in draft status
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, params CreateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "sku", Value: params.SKU},
	)

	if err := validateTitle(params.Title); err != nil {
		return store.Campaign{}, err
	}
	if err := validateSKU(params.SKU); err != nil {
		return store.Campaign{}, err
	}
	if params.BudgetRub <= 0 {
		return store.Campaign{}, ErrInvalidBudget
	}
	if params.TargetCACRub <= 0 || params.TargetROAS <= 0 {
		return store.Campaign{}, ErrInvalidTarget
	}
	if err := validateChannels(params.Channels); err != nil {
		return store.Campaign{}, err
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Title:         params.Title,
		SKU:           params.SKU,
		BudgetRub:     params.BudgetRub,
		TargetCACRub:  params.TargetCACRub,
		TargetROAS:    params.TargetROAS,
		Channels:      params.Channels,
		ABTestEnabled: params.ABTestEnabled,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign created",
		observability.Field{Key: "campaign_id", Value: campaign.ID.String()})
	return campaign, nil
}

// GetCampaign retrieves a single campaign by ID
func (p *CampaignProcessor) GetCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

// ListCampaigns retrieves a page of campaigns, optionally filtered by status
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, params ListCampaignsParams) (ListCampaignsResponse, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 20
	}
	if params.PageSize > 100 {
		params.PageSize = 100
	}
	if params.Status != nil {
		if _, ok := validStatuses[*params.Status]; !ok {
			return ListCampaignsResponse{}, ErrInvalidStatus
		}
	}

	result, err := p.store.ListCampaigns(ctx, store.ListCampaignsParams{
		Page:     params.Page,
		PageSize: params.PageSize,
		Status:   params.Status,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return ListCampaignsResponse{}, err
	}

	campaigns := result.Campaigns
	if campaigns == nil {
		campaigns = []store.Campaign{}
	}
	return ListCampaignsResponse{
		Campaigns: campaigns,
		Total:     result.Total,
		Page:      params.Page,
		PageSize:  params.PageSize,
	}, nil
}

// UpdateCampaign validates and applies a partial update
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, params UpdateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	if params.Title != nil {
		if err := validateTitle(*params.Title); err != nil {
			return store.Campaign{}, err
		}
	}
	if params.BudgetRub != nil && *params.BudgetRub <= 0 {
		return store.Campaign{}, ErrInvalidBudget
	}
	if params.TargetCACRub != nil && *params.TargetCACRub <= 0 {
		return store.Campaign{}, ErrInvalidTarget
	}
	if params.TargetROAS != nil && *params.TargetROAS <= 0 {
		return store.Campaign{}, ErrInvalidTarget
	}
	if params.Status != nil {
		if _, ok := validStatuses[*params.Status]; !ok {
			return store.Campaign{}, ErrInvalidStatus
		}
	}

	campaign, err := p.store.UpdateCampaign(ctx, campaignID, store.UpdateCampaignParams{
		Title:         params.Title,
		BudgetRub:     params.BudgetRub,
		TargetCACRub:  params.TargetCACRub,
		TargetROAS:    params.TargetROAS,
		Status:        params.Status,
		ABTestEnabled: params.ABTestEnabled,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign updated")
	return campaign, nil
}

// DeleteCampaign removes a campaign and its dependent rows
func (p *CampaignProcessor) DeleteCampaign(ctx context.Context, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	if err := p.store.DeleteCampaign(ctx, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to delete campaign", err)
		return err
	}

	p.logger.Info(ctx, "campaign deleted")
	return nil
}
