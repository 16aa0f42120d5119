package scoring

import (
	"testing"

	"github.com/jonathan/opportunity-scout/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyIncome_AllTimeframesAgree(t *testing.T) {
	// The same $4800/month expressed in every unit must normalize identically.
	tests := []struct {
		name string
		r    types.IncomeRange
	}{
		{"hourly", types.IncomeRange{Min: 30, Max: 30, Timeframe: types.TimeframeHourly}},
		{"daily", types.IncomeRange{Min: 240, Max: 240, Timeframe: types.TimeframeDaily}},
		{"weekly", types.IncomeRange{Min: 1200, Max: 1200, Timeframe: types.TimeframeWeekly}},
		{"monthly", types.IncomeRange{Min: 4800, Max: 4800, Timeframe: types.TimeframeMonthly}},
		{"annual", types.IncomeRange{Min: 57600, Max: 57600, Timeframe: types.TimeframeAnnual}},
		{"per-project", types.IncomeRange{Min: 14400, Max: 14400, Timeframe: types.TimeframePerProject}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := MonthlyIncome(tt.r)
			assert.InDelta(t, 4800, min, 0.001)
			assert.InDelta(t, 4800, max, 0.001)
		})
	}
}

func TestMonthlyIncome_HourlyRoundTrip(t *testing.T) {
	// $30/hour at 40 hours/week over 4 weeks is the 160-hour month.
	min, _ := MonthlyIncome(types.IncomeRange{Min: 30, Max: 30, Timeframe: types.TimeframeHourly})
	assert.InDelta(t, 30*40*4, min, 0.001)
}

func TestMonthlyIncome_UnknownTimeframeTreatedAsMonthly(t *testing.T) {
	min, max := MonthlyIncome(types.IncomeRange{Min: 100, Max: 200, Timeframe: "fortnightly"})
	assert.Equal(t, 100.0, min)
	assert.Equal(t, 200.0, max)
}

func TestMonthlyMidpoint(t *testing.T) {
	mid := MonthlyMidpoint(types.IncomeRange{Min: 1000, Max: 2000, Timeframe: types.TimeframeWeekly})
	assert.InDelta(t, 6000, mid, 0.001)
}

func TestParseWeeklyHours(t *testing.T) {
	tests := []struct {
		band string
		want float64
	}{
		{"10-20 hours/week", 15},
		{"about 15 hrs", 15},
		{"5 hours per week", 5},
		{"2.5 hours", 2.5},
		{"whenever I can", DefaultWeeklyHours},
		{"", DefaultWeeklyHours},
		{"0 hours", DefaultWeeklyHours},
	}

	for _, tt := range tests {
		t.Run(tt.band, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseWeeklyHours(tt.band), 0.001)
		})
	}
}
