// Package types provides type definitions for structured data used throughout the opportunity-scout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// OpportunityType classifies how an opportunity generates income
type OpportunityType string

// The closed set of opportunity types produced by providers
const (
	TypeFreelance      OpportunityType = "freelance"
	TypeDigitalProduct OpportunityType = "digital-product"
	TypeContent        OpportunityType = "content"
	TypeService        OpportunityType = "service"
	TypePassiveIncome  OpportunityType = "passive-income"
	TypeInfoProduct    OpportunityType = "info-product"
)

// Valid reports whether t is one of the known opportunity types.
func (t OpportunityType) Valid() bool {
	switch t {
	case TypeFreelance, TypeDigitalProduct, TypeContent, TypeService, TypePassiveIncome, TypeInfoProduct:
		return true
	}
	return false
}

// Level is a coarse ordinal classification (entry barrier, competition, risk appetite)
type Level string

// Ordinal levels used for entry barrier, competition, and risk appetite
const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Ordinal maps a level to 1/2/3 for comparisons. Unknown levels map to 2 (medium).
func (l Level) Ordinal() int {
	switch Level(strings.ToLower(string(l))) {
	case LevelLow:
		return 1
	case LevelHigh:
		return 3
	default:
		return 2
	}
}

// Timeframe is the unit an income range is expressed in
type Timeframe string

// Timeframe units accepted on income ranges
const (
	TimeframeHourly     Timeframe = "hourly"
	TimeframeDaily      Timeframe = "daily"
	TimeframeWeekly     Timeframe = "weekly"
	TimeframeMonthly    Timeframe = "monthly"
	TimeframeAnnual     Timeframe = "annual"
	TimeframePerProject Timeframe = "per-project"
)

// TimeUnit is the unit a time-commitment range is expressed in
type TimeUnit string

// Time-commitment units
const (
	TimeUnitHoursPerWeek TimeUnit = "hours/week"
	TimeUnitHoursPerDay  TimeUnit = "hours/day"
	TimeUnitTotalHours   TimeUnit = "total-hours"
)

// LocationMode describes where an opportunity can be worked from
type LocationMode string

// Location modes
const (
	LocationRemote LocationMode = "remote"
	LocationLocal  LocationMode = "local"
	LocationBoth   LocationMode = "both"
)

// IncomeRange is an estimated income band with its timeframe unit
type IncomeRange struct {
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	Timeframe Timeframe `json:"timeframe"`
}

// CostRange is an estimated startup cost band
type CostRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// TimeCommitment is an estimated time requirement band with its unit
type TimeCommitment struct {
	Min  float64  `json:"min"`
	Max  float64  `json:"max"`
	Unit TimeUnit `json:"unit"`
}

// RawOpportunity is a provider's unprocessed candidate, before scoring and enrichment
type RawOpportunity struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Source         string          `json:"source"`
	Type           OpportunityType `json:"type"`
	RequiredSkills []string        `json:"required_skills"`
	NiceToHaves    []string        `json:"nice_to_haves,omitempty"`
	Income         IncomeRange     `json:"income"`
	StartupCost    CostRange       `json:"startup_cost"`
	TimeRequired   TimeCommitment  `json:"time_required"`
	Location       LocationMode    `json:"location"`
	EntryBarrier   Level           `json:"entry_barrier"`
	Competition    Level           `json:"competition"`
	StepsToStart   []string        `json:"steps_to_start,omitempty"`
}

// Normalize repairs a malformed candidate in place with safe defaults so a
// single bad provider record never aborts a batch. Ranges are forced to
// min <= max, missing units default to monthly/hours-per-week, and unknown
// enum values fall back to neutral mediums.
func (o *RawOpportunity) Normalize() {
	if o.Income.Min > o.Income.Max {
		o.Income.Min, o.Income.Max = o.Income.Max, o.Income.Min
	}
	if o.Income.Min < 0 {
		o.Income.Min = 0
	}
	if o.Income.Max < 0 {
		o.Income.Max = 0
	}
	if o.Income.Timeframe == "" {
		o.Income.Timeframe = TimeframeMonthly
	}

	if o.StartupCost.Min > o.StartupCost.Max {
		o.StartupCost.Min, o.StartupCost.Max = o.StartupCost.Max, o.StartupCost.Min
	}
	if o.StartupCost.Min < 0 {
		o.StartupCost.Min = 0
	}
	if o.StartupCost.Max < 0 {
		o.StartupCost.Max = 0
	}

	if o.TimeRequired.Min > o.TimeRequired.Max {
		o.TimeRequired.Min, o.TimeRequired.Max = o.TimeRequired.Max, o.TimeRequired.Min
	}
	if o.TimeRequired.Min < 0 {
		o.TimeRequired.Min = 0
	}
	if o.TimeRequired.Max < 0 {
		o.TimeRequired.Max = 0
	}
	if o.TimeRequired.Unit == "" {
		o.TimeRequired.Unit = TimeUnitHoursPerWeek
	}

	if !o.Type.Valid() {
		o.Type = TypeFreelance
	}
	if o.EntryBarrier == "" {
		o.EntryBarrier = LevelMedium
	}
	if o.Competition == "" {
		o.Competition = LevelMedium
	}
	if o.Location == "" {
		o.Location = LocationBoth
	}
}

// AverageWeeklyHours returns the midpoint of the time requirement expressed
// in hours per week. Total-hour estimates are spread over a four-week month.
func (o *RawOpportunity) AverageWeeklyHours() float64 {
	mid := (o.TimeRequired.Min + o.TimeRequired.Max) / 2
	switch o.TimeRequired.Unit {
	case TimeUnitHoursPerDay:
		return mid * 5
	case TimeUnitTotalHours:
		return mid / 4
	default:
		return mid
	}
}
