package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// CreativeStore defines the database operations required by CreativeProcessor
type CreativeStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	CreateCreative(ctx context.Context, params store.CreateCreativeParams) (store.Creative, error)
	GetCreativeByID(ctx context.Context, creativeID uuid.UUID) (store.Creative, error)
	ListCreativesByCampaign(ctx context.Context, campaignID uuid.UUID, moderationStatus *string) ([]store.Creative, error)
	UpdateCreativeModeration(ctx context.Context, creativeID uuid.UUID, status string) (store.Creative, error)
	DeleteCreative(ctx context.Context, creativeID uuid.UUID) error
}

var (
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrCreativeNotFound       = errors.New("creative not found")
	ErrRestrictedContent      = errors.New("creative contains restricted content")
	ErrInvalidModerationState = errors.New("invalid moderation status")
)

// Brandbook stop words. Copy containing these never reaches the ad networks.
var stopWords = []string{"эротический", "интимный", "тантра", "yoni"}

type CreativeProcessor struct {
	store  CreativeStore
	logger *observability.Logger
}

func New(store CreativeStore, logger *observability.Logger) CreativeProcessor {
	return CreativeProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateCreativeParams represents parameters for manually creating a creative
type CreateCreativeParams struct {
	CampaignID uuid.UUID
	Variant    string
	Title      string
	Body       string
	ImageURL   *string
	CTA        *string
}

func containsStopWord(title, body string) bool {
	text := strings.ToLower(title + " " + body)
	for _, word := range stopWords {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// GenerateCreatives creates template-based ad variants for a campaign and
// persists them in pending moderation status
func (p *CreativeProcessor) GenerateCreatives(ctx context.Context, campaignID uuid.UUID, count int) ([]store.Creative, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return nil, err
	}

	variants := generateVariants(campaign.SKU, count)
	creatives := make([]store.Creative, 0, len(variants))
	for _, v := range variants {
		cta := v.CTA
		creative, err := p.store.CreateCreative(ctx, store.CreateCreativeParams{
			CampaignID:  campaignID,
			Variant:     v.Variant,
			Title:       v.Title,
			Body:        v.Body,
			CTA:         &cta,
			GeneratedBy: store.CreativeSourceLLM,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to persist generated creative", err)
			return nil, err
		}
		creatives = append(creatives, creative)
	}

	p.logger.Info(ctx, "creatives generated",
		observability.Field{Key: "count", Value: len(creatives)},
		observability.Field{Key: "sku", Value: campaign.SKU})
	return creatives, nil
}

// CreateCreative persists a manually written creative after the brandbook
// stop-word check
func (p *CreativeProcessor) CreateCreative(ctx context.Context, params CreateCreativeParams) (store.Creative, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: params.CampaignID.String()},
	)

	if containsStopWord(params.Title, params.Body) {
		p.logger.Warn(ctx, "creative rejected by stop-word check")
		return store.Creative{}, ErrRestrictedContent
	}

	if _, err := p.store.GetCampaignByID(ctx, params.CampaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Creative{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Creative{}, err
	}

	creative, err := p.store.CreateCreative(ctx, store.CreateCreativeParams{
		CampaignID:  params.CampaignID,
		Variant:     params.Variant,
		Title:       params.Title,
		Body:        params.Body,
		ImageURL:    params.ImageURL,
		CTA:         params.CTA,
		GeneratedBy: store.CreativeSourceManual,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create creative", err)
		return store.Creative{}, err
	}

	p.logger.Info(ctx, "creative created",
		observability.Field{Key: "creative_id", Value: creative.ID.String()})
	return creative, nil
}

// ListCreatives retrieves a campaign's creatives, optionally filtered by
// moderation status
func (p *CreativeProcessor) ListCreatives(ctx context.Context, campaignID uuid.UUID, moderationStatus *string) ([]store.Creative, error) {
	if moderationStatus != nil {
		switch *moderationStatus {
		case store.ModerationStatusPending, store.ModerationStatusApproved, store.ModerationStatusRejected:
		default:
			return nil, ErrInvalidModerationState
		}
	}

	creatives, err := p.store.ListCreativesByCampaign(ctx, campaignID, moderationStatus)
	if err != nil {
		p.logger.Error(ctx, "failed to list creatives", err)
		return nil, err
	}
	if creatives == nil {
		creatives = []store.Creative{}
	}
	return creatives, nil
}

// GetCreative retrieves a creative by ID
func (p *CreativeProcessor) GetCreative(ctx context.Context, creativeID uuid.UUID) (store.Creative, error) {
	creative, err := p.store.GetCreativeByID(ctx, creativeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Creative{}, ErrCreativeNotFound
		}
		p.logger.Error(ctx, "failed to get creative", err)
		return store.Creative{}, err
	}
	return creative, nil
}

// ModerateCreative approves or rejects a creative
func (p *CreativeProcessor) ModerateCreative(ctx context.Context, creativeID uuid.UUID, status string) (store.Creative, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "creative_id", Value: creativeID.String()},
		observability.Field{Key: "moderation_status", Value: status},
	)

	if status != store.ModerationStatusApproved && status != store.ModerationStatusRejected {
		return store.Creative{}, ErrInvalidModerationState
	}

	creative, err := p.store.UpdateCreativeModeration(ctx, creativeID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Creative{}, ErrCreativeNotFound
		}
		p.logger.Error(ctx, "failed to update creative moderation", err)
		return store.Creative{}, err
	}

	p.logger.Info(ctx, "creative moderated")
	return creative, nil
}

// DeleteCreative removes a creative
func (p *CreativeProcessor) DeleteCreative(ctx context.Context, creativeID uuid.UUID) error {
	if err := p.store.DeleteCreative(ctx, creativeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCreativeNotFound
		}
		p.logger.Error(ctx, "failed to delete creative", err)
		return err
	}
	return nil
}
