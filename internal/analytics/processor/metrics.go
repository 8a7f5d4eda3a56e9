package processor

import (
	"math"
	"strings"
)

// Goal status values shared by CAC and ROAS classification.
const (
	StatusOnTrack     = "on_track"
	StatusOverTarget  = "over_target"
	StatusUnderTarget = "under_target"
	StatusUnknown     = "unknown"
)

// Known channel codes.
const (
	ChannelVK     = "vk"
	ChannelDirect = "direct"
	ChannelAvito  = "avito"
)

var channelNames = map[string]string{
	ChannelVK:     "VK Ads",
	ChannelDirect: "Яндекс.Директ",
	ChannelAvito:  "Avito",
}

// round2 rounds to 2 decimal places. Every derived metric is rounded at the
// point of computation, not once at the end.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func float64Ptr(v float64) *float64 {
	return &v
}

// ConversionRate returns conversions/leads as a percentage, 0.0 when there
// are no leads.
func ConversionRate(conversions, leads int) float64 {
	if leads <= 0 {
		return 0.0
	}
	return round2(float64(conversions) / float64(leads) * 100)
}

// CAC returns spend per conversion, nil when there are no conversions.
func CAC(spend float64, conversions int) *float64 {
	if conversions <= 0 {
		return nil
	}
	return float64Ptr(round2(spend / float64(conversions)))
}

// ROAS returns revenue per unit of spend, nil when nothing was spent.
func ROAS(revenue, spend float64) *float64 {
	if spend <= 0 {
		return nil
	}
	return float64Ptr(round2(revenue / spend))
}

// CTR returns clicks/impressions as a percentage, 0.0 when there are no
// impressions.
func CTR(clicks, impressions int) float64 {
	if impressions <= 0 {
		return 0.0
	}
	return round2(float64(clicks) / float64(impressions) * 100)
}

// CACStatus classifies an actual CAC against its target. The over/under
// labels between CACStatus and ROASStatus are intentionally kept as-is for
// compatibility with existing dashboard consumers.
func CACStatus(actual *float64, target float64) string {
	if actual == nil || *actual == 0 || target == 0 {
		return StatusUnknown
	}
	switch {
	case *actual <= target:
		return StatusOnTrack
	case *actual <= target*1.2:
		return StatusOverTarget
	default:
		return StatusUnderTarget
	}
}

// ROASStatus classifies an actual ROAS against its target.
func ROASStatus(actual *float64, target float64) string {
	if actual == nil || *actual == 0 || target == 0 {
		return StatusUnknown
	}
	switch {
	case *actual >= target:
		return StatusOnTrack
	case *actual >= target*0.8:
		return StatusUnderTarget
	default:
		return StatusOverTarget
	}
}

// InferChannel maps a lead's utm_source to a channel code by case-insensitive
// substring match, first match wins. Returns "" when the source does not
// resolve to a known channel.
func InferChannel(utmSource string) string {
	if utmSource == "" {
		return ""
	}
	lower := strings.ToLower(utmSource)
	switch {
	case strings.Contains(lower, "vk"):
		return ChannelVK
	case strings.Contains(lower, "direct"), strings.Contains(lower, "yandex"):
		return ChannelDirect
	case strings.Contains(lower, "avito"):
		return ChannelAvito
	}
	return ""
}

// ChannelName returns the display name for a channel code, falling back to
// the raw code for unknown channels.
func ChannelName(code string) string {
	if name, ok := channelNames[code]; ok {
		return name
	}
	return code
}
