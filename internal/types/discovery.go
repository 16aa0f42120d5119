// Package types provides type definitions for structured data used throughout the opportunity-scout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// DiscoveryInput is the user profile a discovery request runs against.
// It is immutable for the duration of one request.
type DiscoveryInput struct {
	Skills           []string `json:"skills" validate:"required,min=1,dive,required"`
	TimeAvailability string   `json:"time_availability" validate:"required"`
	RiskAppetite     Level    `json:"risk_appetite" validate:"required,oneof=low medium high"`
	IncomeGoal       float64  `json:"income_goal" validate:"required,gt=0"`
	WorkPreference   string   `json:"work_preference" validate:"required,oneof=remote local both"`
	Context          string   `json:"context,omitempty"`
}

// Category is one of the four strategic buckets a scored opportunity lands in
type Category string

// The four strategic buckets, named by what the user should do with them
const (
	CategoryQuickWin     Category = "quick-win"
	CategoryGrowth       Category = "growth"
	CategoryPassive      Category = "passive-income-stream"
	CategoryAspirational Category = "aspirational"
)

// SkillMatch breaks a candidate's skill overlap into three disjoint groups
type SkillMatch struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Related []string `json:"related"`
}

// LearningResource points a user at material for closing one missing skill
type LearningResource struct {
	Skill    string `json:"skill"`
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	Provider string `json:"provider,omitempty"`
	Hours    int    `json:"hours"`
}

// SkillGap summarizes what a user would need to learn before starting
type SkillGap struct {
	Resources      []LearningResource `json:"resources,omitempty"`
	TotalHours     int                `json:"total_hours"`
	DifficultyTier string             `json:"difficulty_tier,omitempty"` // beginner, intermediate, advanced
}

// EnrichedOpportunity is a scored and categorized candidate ready for display.
// ID is engine-assigned and namespaced by source, so identical titles from
// different providers never collide.
type EnrichedOpportunity struct {
	RawOpportunity

	ID                 string     `json:"id"`
	MatchScore         float64    `json:"match_score"`
	SkillMatch         SkillMatch `json:"skill_match"`
	TimeToFirstRevenue int        `json:"time_to_first_revenue_days"`
	SuccessStories     []string   `json:"success_stories,omitempty"`
	SkillGap           *SkillGap  `json:"skill_gap,omitempty"`
	Category           Category   `json:"category"`
}

// Metrics records what a discovery run did
type Metrics struct {
	SourcesSearched int           `json:"sources_searched"`
	TotalFound      int           `json:"total_found"`
	MatchThreshold  float64       `json:"match_threshold"`
	ProcessingTime  time.Duration `json:"processing_time"`
	CacheHit        bool          `json:"cache_hit"`
}

// DiscoveryResult is the immutable output of one discovery call
type DiscoveryResult struct {
	RequestID     string                `json:"request_id"`
	GeneratedAt   time.Time             `json:"generated_at"`
	Input         DiscoveryInput        `json:"input"`
	Opportunities []EnrichedOpportunity `json:"opportunities"`
	Categories    map[Category][]string `json:"categories"`
	Metrics       Metrics               `json:"metrics"`
}
