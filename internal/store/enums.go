package store

// Campaign ENUMs
const (
	CampaignStatusDraft   = "draft"
	CampaignStatusActive  = "active"
	CampaignStatusPaused  = "paused"
	CampaignStatusStopped = "stopped"
)

// Placement ENUMs
const (
	PlacementStatusPending   = "pending"
	PlacementStatusPublished = "published"
	PlacementStatusActive    = "active"
	PlacementStatusPaused    = "paused"
	PlacementStatusFailed    = "failed"
)

// Channel codes
const (
	ChannelVK     = "vk"
	ChannelDirect = "direct"
	ChannelAvito  = "avito"
)

// Creative ENUMs
const (
	ModerationStatusPending  = "pending"
	ModerationStatusApproved = "approved"
	ModerationStatusRejected = "rejected"
)

const (
	CreativeSourceLLM    = "llm"
	CreativeSourceManual = "manual"
)

// Setting value types
const (
	SettingTypeInt    = "int"
	SettingTypeFloat  = "float"
	SettingTypeString = "string"
	SettingTypeBool   = "bool"
)
