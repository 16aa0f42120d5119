// Package config provides configuration loading and validation for the discovery engine and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Scoring holds the tunable weights and thresholds of the match model.
// The defaults mirror the shipped behavior; none of these are invariants.
type Scoring struct {
	SkillWeight      float64 `json:"skill_weight,omitempty"`      // Skill overlap, roughly double any other feature
	TimeWeight       float64 `json:"time_weight,omitempty"`       // Time-commitment fit
	RiskWeight       float64 `json:"risk_weight,omitempty"`       // Entry barrier vs risk appetite
	IncomeWeight     float64 `json:"income_weight,omitempty"`     // Income vs monthly goal
	QualityWeight    float64 `json:"quality_weight,omitempty"`    // Description-length proxy, weak tiebreaker
	PopularityWeight float64 `json:"popularity_weight,omitempty"` // External engagement proxy

	ROIBlend          float64 `json:"roi_blend,omitempty"`           // Fraction of the final score taken from the ROI pass (0-1)
	QuickWinThreshold float64 `json:"quick_win_threshold,omitempty"` // Score above which a low-barrier candidate is a quick win
	ModerateThreshold float64 `json:"moderate_threshold,omitempty"`  // Score below which a high-ceiling candidate is aspirational
	NoiseWindow       float64 `json:"noise_window,omitempty"`        // Score gap treated as a tie when ranking
	MatchThreshold    float64 `json:"match_threshold,omitempty"`     // Minimum score kept in the result set
}

// Cache holds Result Cache lifecycle settings.
type Cache struct {
	TTL       time.Duration `json:"ttl,omitempty"`        // Freshness window for a cached result
	Retention time.Duration `json:"retention,omitempty"`  // Hard age limit enforced by the sweep
	SweepSpec string        `json:"sweep_spec,omitempty"` // cron spec for the retention sweep, e.g. "@every 1h"
}

// Providers holds outbound-call settings shared by network-backed adapters.
type Providers struct {
	Timeout    time.Duration `json:"timeout,omitempty"`     // Per-attempt deadline for one upstream call
	MaxRetries int           `json:"max_retries,omitempty"` // Retries after the first attempt
	Backoff    time.Duration `json:"backoff,omitempty"`     // Initial backoff, doubled per retry
	MemoTTL    time.Duration `json:"memo_ttl,omitempty"`    // Per-adapter memo cache freshness
	UseBrowser bool          `json:"use_browser,omitempty"` // Render JS-heavy boards with a headless browser
	RateBurst  int           `json:"burst,omitempty"`       // Upstream calls allowed in a burst, per source
	RatePerSec float64       `json:"rate,omitempty"`        // Sustained upstream calls per second, per source
}

// SkillGap holds resolver caps.
type SkillGap struct {
	MaxResourcesPerSkill     int `json:"max_resources_per_skill,omitempty"`
	MaxResourcesPerCandidate int `json:"max_resources_per_candidate,omitempty"`
}

// Config is the full engine configuration, loadable from a JSON file.
// All fields are optional; missing values use defaults.
type Config struct {
	Scoring   Scoring   `json:"scoring,omitempty"`
	Cache     Cache     `json:"cache,omitempty"`
	Providers Providers `json:"providers,omitempty"`
	SkillGap  SkillGap  `json:"skill_gap,omitempty"`

	RedisURL    string   `json:"redis_url,omitempty"`     // Optional Redis-backed Result Cache
	DatabaseURL string   `json:"database_url,omitempty"`  // Optional Postgres engagement source
	RSSFeeds    []string `json:"rss_feeds,omitempty"`     // Feeds for the content-platform adapter
	GigBoardURL string   `json:"gig_board_url,omitempty"` // Endpoint for the gig board adapter
}

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		Scoring: Scoring{
			SkillWeight:       0.30,
			TimeWeight:        0.15,
			RiskWeight:        0.15,
			IncomeWeight:      0.15,
			QualityWeight:     0.10,
			PopularityWeight:  0.15,
			ROIBlend:          0.20,
			QuickWinThreshold: 80,
			ModerateThreshold: 60,
			NoiseWindow:       10,
			MatchThreshold:    40,
		},
		Cache: Cache{
			TTL:       time.Hour,
			Retention: 24 * time.Hour,
			SweepSpec: "@every 1h",
		},
		Providers: Providers{
			Timeout:    15 * time.Second,
			MaxRetries: 2,
			Backoff:    500 * time.Millisecond,
			MemoTTL:    time.Hour,
			RateBurst:  5,
			RatePerSec: 2,
		},
		SkillGap: SkillGap{
			MaxResourcesPerSkill:     2,
			MaxResourcesPerCandidate: 6,
		},
	}
}

// Load reads configuration from a JSON file and fills unset values with
// defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := Default()

	// A config file that sets no weights at all gets the full default set.
	// Partial weight sets are kept as-is; Validate rejects all-zero totals.
	s := c.Scoring
	if s.SkillWeight+s.TimeWeight+s.RiskWeight+s.IncomeWeight+s.QualityWeight+s.PopularityWeight == 0 {
		c.Scoring.SkillWeight = def.Scoring.SkillWeight
		c.Scoring.TimeWeight = def.Scoring.TimeWeight
		c.Scoring.RiskWeight = def.Scoring.RiskWeight
		c.Scoring.IncomeWeight = def.Scoring.IncomeWeight
		c.Scoring.QualityWeight = def.Scoring.QualityWeight
		c.Scoring.PopularityWeight = def.Scoring.PopularityWeight
	}
	if c.Scoring.ROIBlend == 0 {
		c.Scoring.ROIBlend = def.Scoring.ROIBlend
	}
	if c.Scoring.QuickWinThreshold == 0 {
		c.Scoring.QuickWinThreshold = def.Scoring.QuickWinThreshold
	}
	if c.Scoring.ModerateThreshold == 0 {
		c.Scoring.ModerateThreshold = def.Scoring.ModerateThreshold
	}
	if c.Scoring.NoiseWindow == 0 {
		c.Scoring.NoiseWindow = def.Scoring.NoiseWindow
	}
	if c.Scoring.MatchThreshold == 0 {
		c.Scoring.MatchThreshold = def.Scoring.MatchThreshold
	}

	if c.Cache.TTL == 0 {
		c.Cache.TTL = def.Cache.TTL
	}
	if c.Cache.Retention == 0 {
		c.Cache.Retention = def.Cache.Retention
	}
	if c.Cache.SweepSpec == "" {
		c.Cache.SweepSpec = def.Cache.SweepSpec
	}

	if c.Providers.Timeout == 0 {
		c.Providers.Timeout = def.Providers.Timeout
	}
	if c.Providers.MaxRetries == 0 {
		c.Providers.MaxRetries = def.Providers.MaxRetries
	}
	if c.Providers.Backoff == 0 {
		c.Providers.Backoff = def.Providers.Backoff
	}
	if c.Providers.MemoTTL == 0 {
		c.Providers.MemoTTL = def.Providers.MemoTTL
	}
	if c.Providers.RateBurst == 0 {
		c.Providers.RateBurst = def.Providers.RateBurst
	}
	if c.Providers.RatePerSec == 0 {
		c.Providers.RatePerSec = def.Providers.RatePerSec
	}

	if c.SkillGap.MaxResourcesPerSkill == 0 {
		c.SkillGap.MaxResourcesPerSkill = def.SkillGap.MaxResourcesPerSkill
	}
	if c.SkillGap.MaxResourcesPerCandidate == 0 {
		c.SkillGap.MaxResourcesPerCandidate = def.SkillGap.MaxResourcesPerCandidate
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	s := c.Scoring
	for name, w := range map[string]float64{
		"skill_weight":      s.SkillWeight,
		"time_weight":       s.TimeWeight,
		"risk_weight":       s.RiskWeight,
		"income_weight":     s.IncomeWeight,
		"quality_weight":    s.QualityWeight,
		"popularity_weight": s.PopularityWeight,
	} {
		if w < 0 {
			return fmt.Errorf("config error: '%s' must be non-negative", name)
		}
	}
	if s.SkillWeight+s.TimeWeight+s.RiskWeight+s.IncomeWeight+s.QualityWeight+s.PopularityWeight <= 0 {
		return fmt.Errorf("config error: scoring weights must not all be zero")
	}
	if s.ROIBlend < 0 || s.ROIBlend > 1 {
		return fmt.Errorf("config error: 'roi_blend' must be in [0,1]")
	}
	if s.QuickWinThreshold < 0 || s.QuickWinThreshold > 100 {
		return fmt.Errorf("config error: 'quick_win_threshold' must be in [0,100]")
	}
	if s.MatchThreshold < 0 || s.MatchThreshold > 100 {
		return fmt.Errorf("config error: 'match_threshold' must be in [0,100]")
	}

	if c.Cache.TTL < 0 || c.Cache.Retention < 0 {
		return fmt.Errorf("config error: cache durations must be non-negative")
	}
	if c.Cache.Retention > 0 && c.Cache.Retention < c.Cache.TTL {
		return fmt.Errorf("config error: cache retention must not be shorter than TTL")
	}

	if c.Providers.MaxRetries < 0 {
		return fmt.Errorf("config error: 'max_retries' must be non-negative")
	}
	if c.Providers.RatePerSec < 0 {
		return fmt.Errorf("config error: 'rate' must be non-negative")
	}

	return nil
}
