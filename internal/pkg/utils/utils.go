package utils

import (
	"fmt"
)

// FormatDuration renders minutes as a compact duration label.
// Example: 90 -> "1h 30m", 45 -> "45m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}

	return fmt.Sprintf("%dm", mins)
}

// StopsLabel renders a stop count as the UI label.
func StopsLabel(stops int) string {
	switch stops {
	case 0:
		return "Nonstop"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

// EmissionsBadge pairs a label with the badge variant used to render it.
type EmissionsBadge struct {
	Label   string `json:"label"`
	Variant string `json:"variant"`
}

// EmissionsLabel classifies a CO2 difference (percent vs the route's
// typical emissions) into a display badge.
func EmissionsLabel(differencePercent int) EmissionsBadge {
	switch {
	case differencePercent <= -10:
		return EmissionsBadge{
			Label:   fmt.Sprintf("%d%% less CO₂", -differencePercent),
			Variant: "secondary",
		}
	case differencePercent <= 0:
		return EmissionsBadge{Label: "Avg emissions", Variant: "outline"}
	case differencePercent <= 20:
		return EmissionsBadge{
			Label:   fmt.Sprintf("%d%% more CO₂", differencePercent),
			Variant: "outline",
		}
	default:
		return EmissionsBadge{
			Label:   fmt.Sprintf("%d%% more CO₂", differencePercent),
			Variant: "destructive",
		}
	}
}
