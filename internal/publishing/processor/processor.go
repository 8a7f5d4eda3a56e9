package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// PublishingStore defines the database operations required by PublishingProcessor
type PublishingStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListCreativesByCampaign(ctx context.Context, campaignID uuid.UUID, moderationStatus *string) ([]store.Creative, error)
	CreatePlacement(ctx context.Context, params store.CreatePlacementParams) (store.Placement, error)
	ListCampaignPlacements(ctx context.Context, campaignID uuid.UUID, dateFrom, dateTo *time.Time) ([]store.Placement, error)
	ListCampaignPlacementsByStatus(ctx context.Context, campaignID uuid.UUID, status string) ([]store.Placement, error)
	UpdatePlacementStatus(ctx context.Context, placementID uuid.UUID, status string, errorMessage *string) (store.Placement, error)
}

// CampaignAdsClient is a connector for platforms that model ads as campaigns
// (VK Ads, Яндекс.Директ)
type CampaignAdsClient interface {
	CreateCampaign(ctx context.Context, title, body string, imageURL *string, budgetRub float64) (string, error)
	PauseCampaign(ctx context.Context, externalCampaignID string) error
}

// ClassifiedAdsClient is a connector for listing platforms (Avito)
type ClassifiedAdsClient interface {
	CreateAd(ctx context.Context, title, body string, imageURL *string) (string, error)
	PauseAd(ctx context.Context, externalAdID string) error
}

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrNoChannels          = errors.New("no channels to publish to")
	ErrNoApprovedCreatives = errors.New("campaign has no approved creatives")
	ErrUnknownChannel      = errors.New("unknown channel code")
)

type PublishingProcessor struct {
	store  PublishingStore
	vk     CampaignAdsClient
	direct CampaignAdsClient
	avito  ClassifiedAdsClient
	logger *observability.Logger
}

func New(store PublishingStore, vk, direct CampaignAdsClient, avito ClassifiedAdsClient, logger *observability.Logger) PublishingProcessor {
	return PublishingProcessor{
		store:  store,
		vk:     vk,
		direct: direct,
		avito:  avito,
		logger: logger,
	}
}

// PublishResult reports the outcome of a campaign publication
type PublishResult struct {
	Placements   []store.Placement `json:"placements"`
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
}

// CampaignStatusResult is the per-status placement rollup for one campaign
type CampaignStatusResult struct {
	Campaign         store.Campaign    `json:"campaign"`
	TotalPlacements  int               `json:"total_placements"`
	ActivePlacements int               `json:"active_placements"`
	PausedPlacements int               `json:"paused_placements"`
	FailedPlacements int               `json:"failed_placements"`
	Placements       []store.Placement `json:"placements"`
}

// PauseResult reports the outcome of pausing a campaign's placements
type PauseResult struct {
	PausedCount int `json:"paused_count"`
	FailedCount int `json:"failed_count"`
}

// PublishCampaign deploys every approved creative of a campaign to the given
// channels (defaulting to the campaign's own channel list). Failures on one
// placement do not stop the rest.
func (p *PublishingProcessor) PublishCampaign(ctx context.Context, campaignID uuid.UUID, channels []string) (PublishResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PublishResult{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return PublishResult{}, err
	}

	targetChannels := channels
	if len(targetChannels) == 0 {
		targetChannels = campaign.Channels
	}
	if len(targetChannels) == 0 {
		return PublishResult{}, ErrNoChannels
	}

	approved := store.ModerationStatusApproved
	creatives, err := p.store.ListCreativesByCampaign(ctx, campaignID, &approved)
	if err != nil {
		p.logger.Error(ctx, "failed to list approved creatives", err)
		return PublishResult{}, err
	}
	if len(creatives) == 0 {
		return PublishResult{}, ErrNoApprovedCreatives
	}

	result := PublishResult{Placements: []store.Placement{}}
	for _, channel := range targetChannels {
		for _, creative := range creatives {
			placement, err := p.publishToChannel(ctx, campaign, creative, channel)
			if err != nil {
				result.FailedCount++
				p.logger.Error(ctx, "failed to publish creative", err,
					observability.Field{Key: "creative_id", Value: creative.ID.String()},
					observability.Field{Key: "channel", Value: channel},
				)
				continue
			}
			result.Placements = append(result.Placements, placement)
			result.SuccessCount++
		}
	}

	p.logger.Info(ctx, "campaign published",
		observability.Field{Key: "success_count", Value: result.SuccessCount},
		observability.Field{Key: "failed_count", Value: result.FailedCount},
	)
	return result, nil
}

func (p *PublishingProcessor) publishToChannel(ctx context.Context, campaign store.Campaign, creative store.Creative, channel string) (store.Placement, error) {
	var externalID string
	var err error
	switch channel {
	case store.ChannelVK:
		externalID, err = p.vk.CreateCampaign(ctx, creative.Title, creative.Body, creative.ImageURL, campaign.BudgetRub)
	case store.ChannelDirect:
		externalID, err = p.direct.CreateCampaign(ctx, creative.Title, creative.Body, creative.ImageURL, campaign.BudgetRub)
	case store.ChannelAvito:
		externalID, err = p.avito.CreateAd(ctx, creative.Title, creative.Body, creative.ImageURL)
	default:
		return store.Placement{}, ErrUnknownChannel
	}
	if err != nil {
		return store.Placement{}, err
	}

	now := time.Now().UTC()
	return p.store.CreatePlacement(ctx, store.CreatePlacementParams{
		CampaignID:         campaign.ID,
		CreativeID:         &creative.ID,
		ChannelCode:        channel,
		ExternalCampaignID: &externalID,
		Status:             store.PlacementStatusActive,
		PublishedAt:        &now,
	})
}

// GetCampaignStatus rolls up a campaign's placements by lifecycle status
func (p *PublishingProcessor) GetCampaignStatus(ctx context.Context, campaignID uuid.UUID) (CampaignStatusResult, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CampaignStatusResult{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return CampaignStatusResult{}, err
	}

	placements, err := p.store.ListCampaignPlacements(ctx, campaignID, nil, nil)
	if err != nil {
		p.logger.Error(ctx, "failed to list placements", err)
		return CampaignStatusResult{}, err
	}

	result := CampaignStatusResult{
		Campaign:        campaign,
		TotalPlacements: len(placements),
		Placements:      placements,
	}
	if result.Placements == nil {
		result.Placements = []store.Placement{}
	}
	for _, pl := range placements {
		switch pl.Status {
		case store.PlacementStatusActive:
			result.ActivePlacements++
		case store.PlacementStatusPaused:
			result.PausedPlacements++
		case store.PlacementStatusFailed:
			result.FailedPlacements++
		}
	}
	return result, nil
}

// PauseCampaign pauses every active placement of a campaign on its platform.
// A platform failure marks that placement as failed and moves on.
func (p *PublishingProcessor) PauseCampaign(ctx context.Context, campaignID uuid.UUID) (PauseResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	if _, err := p.store.GetCampaignByID(ctx, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PauseResult{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return PauseResult{}, err
	}

	placements, err := p.store.ListCampaignPlacementsByStatus(ctx, campaignID, store.PlacementStatusActive)
	if err != nil {
		p.logger.Error(ctx, "failed to list active placements", err)
		return PauseResult{}, err
	}

	var result PauseResult
	for _, placement := range placements {
		if err := p.pauseOnPlatform(ctx, placement); err != nil {
			result.FailedCount++
			p.logger.Error(ctx, "failed to pause placement", err,
				observability.Field{Key: "placement_id", Value: placement.ID.String()},
				observability.Field{Key: "channel", Value: placement.ChannelCode},
			)
			continue
		}
		if _, err := p.store.UpdatePlacementStatus(ctx, placement.ID, store.PlacementStatusPaused, nil); err != nil {
			result.FailedCount++
			p.logger.Error(ctx, "failed to record placement pause", err,
				observability.Field{Key: "placement_id", Value: placement.ID.String()},
			)
			continue
		}
		result.PausedCount++
	}

	p.logger.Info(ctx, "campaign paused",
		observability.Field{Key: "paused_count", Value: result.PausedCount},
		observability.Field{Key: "failed_count", Value: result.FailedCount},
	)
	return result, nil
}

func (p *PublishingProcessor) pauseOnPlatform(ctx context.Context, placement store.Placement) error {
	externalID := ""
	if placement.ExternalCampaignID != nil {
		externalID = *placement.ExternalCampaignID
	}
	switch placement.ChannelCode {
	case store.ChannelVK:
		return p.vk.PauseCampaign(ctx, externalID)
	case store.ChannelDirect:
		return p.direct.PauseCampaign(ctx, externalID)
	case store.ChannelAvito:
		return p.avito.PauseAd(ctx, externalID)
	}
	return ErrUnknownChannel
}
