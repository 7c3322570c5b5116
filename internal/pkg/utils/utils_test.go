//go:build unit

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	durationRequest := func(minutes int, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, FormatDuration(minutes))
		}
	}

	t.Run("hours_and_minutes", durationRequest(90, "1h 30m"))
	t.Run("whole_hour", durationRequest(60, "1h 0m"))
	t.Run("minutes_only", durationRequest(45, "45m"))
	t.Run("zero", durationRequest(0, "0m"))
	t.Run("long_haul", durationRequest(610, "10h 10m"))
}

func TestStopsLabel(t *testing.T) {
	assert.Equal(t, "Nonstop", StopsLabel(0))
	assert.Equal(t, "1 stop", StopsLabel(1))
	assert.Equal(t, "2 stops", StopsLabel(2))
	assert.Equal(t, "3 stops", StopsLabel(3))
}

func TestEmissionsLabel(t *testing.T) {
	labelRequest := func(differencePercent int, want EmissionsBadge) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, EmissionsLabel(differencePercent))
		}
	}

	t.Run("much_less", labelRequest(-15, EmissionsBadge{Label: "15% less CO₂", Variant: "secondary"}))
	t.Run("boundary_less", labelRequest(-10, EmissionsBadge{Label: "10% less CO₂", Variant: "secondary"}))
	t.Run("slightly_less", labelRequest(-5, EmissionsBadge{Label: "Avg emissions", Variant: "outline"}))
	t.Run("average", labelRequest(0, EmissionsBadge{Label: "Avg emissions", Variant: "outline"}))
	t.Run("slightly_more", labelRequest(12, EmissionsBadge{Label: "12% more CO₂", Variant: "outline"}))
	t.Run("much_more", labelRequest(25, EmissionsBadge{Label: "25% more CO₂", Variant: "destructive"}))
}
