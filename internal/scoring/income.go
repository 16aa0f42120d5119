// Package scoring computes multi-feature match scores between opportunities and user profiles.
package scoring

import (
	"regexp"
	"strconv"

	"github.com/jonathan/opportunity-scout/internal/types"
)

// Monthly conversion factors per timeframe unit. Each unit maps an estimate
// onto a common monthly basis: 160 working hours, 20 working days, 4 weeks,
// 12 months, and roughly 3 months per completed project.
const (
	hoursPerMonth    = 160.0
	daysPerMonth     = 20.0
	weeksPerMonth    = 4.0
	monthsPerYear    = 12.0
	monthsPerProject = 3.0
)

// DefaultWeeklyHours is assumed when a user's availability band cannot be parsed.
const DefaultWeeklyHours = 10.0

// MonthlyIncome converts an income range to a monthly basis.
// Unknown timeframes are treated as monthly.
func MonthlyIncome(r types.IncomeRange) (min, max float64) {
	factor := 1.0
	switch r.Timeframe {
	case types.TimeframeHourly:
		factor = hoursPerMonth
	case types.TimeframeDaily:
		factor = daysPerMonth
	case types.TimeframeWeekly:
		factor = weeksPerMonth
	case types.TimeframeAnnual:
		factor = 1 / monthsPerYear
	case types.TimeframePerProject:
		factor = 1 / monthsPerProject
	}
	return r.Min * factor, r.Max * factor
}

// MonthlyMidpoint returns the midpoint of an income range on a monthly basis.
func MonthlyMidpoint(r types.IncomeRange) float64 {
	min, max := MonthlyIncome(r)
	return (min + max) / 2
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseWeeklyHours extracts a weekly-hours figure from a free-text
// availability band like "10-20 hours/week" or "about 15 hrs". A band
// averages its bounds; a single number is used as-is. Unparseable input
// falls back to DefaultWeeklyHours.
func ParseWeeklyHours(band string) float64 {
	matches := numberPattern.FindAllString(band, 2)
	if len(matches) == 0 {
		return DefaultWeeklyHours
	}

	first, err := strconv.ParseFloat(matches[0], 64)
	if err != nil {
		return DefaultWeeklyHours
	}
	if len(matches) == 1 {
		if first <= 0 {
			return DefaultWeeklyHours
		}
		return first
	}

	second, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return first
	}
	avg := (first + second) / 2
	if avg <= 0 {
		return DefaultWeeklyHours
	}
	return avg
}
