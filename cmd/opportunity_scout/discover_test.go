package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/opportunity-scout/internal/config"
	"github.com/jonathan/opportunity-scout/internal/types"
)

func resetDiscoverFlags() {
	discoverSkills = nil
	discoverTime = ""
	discoverRisk = "medium"
	discoverIncomeGoal = 0
	discoverWork = "remote"
	discoverInputFile = ""
	discoverSchemaFile = ""
	discoverRedisURL = ""
	discoverDatabaseURL = ""
	discoverRSSFeeds = nil
	discoverGigBoardURL = ""
	discoverUseBrowser = false
}

func TestBuildInputFromFlags(t *testing.T) {
	resetDiscoverFlags()
	discoverSkills = []string{"javascript", "writing"}
	discoverTime = "10-20 hours/week"
	discoverRisk = "Medium"
	discoverIncomeGoal = 2000
	discoverWork = "Remote"

	input, err := buildInput()
	require.NoError(t, err)

	assert.Equal(t, []string{"javascript", "writing"}, input.Skills)
	assert.Equal(t, types.LevelMedium, input.RiskAppetite)
	assert.Equal(t, "remote", input.WorkPreference)
}

func TestBuildInputRequiresProfileFlags(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
		want  string
	}{
		{
			name:  "missing skills",
			setup: func() {},
			want:  "--skills",
		},
		{
			name: "missing time",
			setup: func() {
				discoverSkills = []string{"writing"}
			},
			want: "--time",
		},
		{
			name: "missing income goal",
			setup: func() {
				discoverSkills = []string{"writing"}
				discoverTime = "5 hours/week"
			},
			want: "--income-goal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetDiscoverFlags()
			tt.setup()

			_, err := buildInput()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuildInputFromDocument(t *testing.T) {
	resetDiscoverFlags()
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	doc := `{
		"skills": ["design"],
		"time_availability": "5-10 hours/week",
		"risk_appetite": "low",
		"income_goal": 800,
		"work_preference": "both"
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	discoverInputFile = path

	input, err := buildInput()
	require.NoError(t, err)
	assert.Equal(t, []string{"design"}, input.Skills)
	assert.Equal(t, 800.0, input.IncomeGoal)
}

func TestBuildInputRejectsInvalidDocument(t *testing.T) {
	resetDiscoverFlags()
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills": []}`), 0o644))
	discoverInputFile = path

	_, err := buildInput()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestBuildInputWithCustomSchema(t *testing.T) {
	resetDiscoverFlags()
	dir := t.TempDir()
	docPath := filepath.Join(dir, "profile.json")
	doc := `{
		"skills": ["design"],
		"time_availability": "5-10 hours/week",
		"risk_appetite": "low",
		"income_goal": 800,
		"work_preference": "both"
	}`
	require.NoError(t, os.WriteFile(docPath, []byte(doc), 0o644))

	schemaPath := filepath.Join(dir, "strict.schema.json")
	schema := `{
		"type": "object",
		"required": ["skills", "region"]
	}`
	require.NoError(t, os.WriteFile(schemaPath, []byte(schema), 0o644))

	discoverInputFile = docPath

	input, err := buildInput()
	require.NoError(t, err)
	assert.Equal(t, []string{"design"}, input.Skills)

	discoverSchemaFile = schemaPath
	_, err = buildInput()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
	assert.Contains(t, err.Error(), "region")
}

func TestBuildInputSchemaRequiresInput(t *testing.T) {
	resetDiscoverFlags()
	discoverSkills = []string{"writing"}
	discoverTime = "5 hours/week"
	discoverIncomeGoal = 500
	discoverSchemaFile = "strict.schema.json"

	_, err := buildInput()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input")
}

func TestBuildRegistryDefaultSources(t *testing.T) {
	cfg := config.Default()

	registry, err := buildRegistry(&cfg)
	require.NoError(t, err)

	order := registry.Order()
	assert.Equal(t, []string{"upcraft", "makerbay", "taskhive", "cashflowlab", "courseforge"}, order)
}

func TestBuildRegistryOptionalSources(t *testing.T) {
	cfg := config.Default()
	cfg.GigBoardURL = "http://localhost:9999/gigs"
	cfg.RSSFeeds = []string{"http://localhost:9999/feed.xml"}

	registry, err := buildRegistry(&cfg)
	require.NoError(t, err)

	order := registry.Order()
	assert.Contains(t, order, "gigboard")
	assert.Contains(t, order, "creatorwire")
	assert.Len(t, order, 7)
}

func TestApplyFlagOverridesPrecedence(t *testing.T) {
	resetDiscoverFlags()
	t.Setenv("REDIS_URL", "redis://from-env:6379")

	cfg := config.Default()
	applyFlagOverrides(&cfg)
	assert.Equal(t, "redis://from-env:6379", cfg.RedisURL)

	discoverRedisURL = "redis://from-flag:6379"
	applyFlagOverrides(&cfg)
	assert.Equal(t, "redis://from-flag:6379", cfg.RedisURL)
}
