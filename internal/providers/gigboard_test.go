package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonathan/opportunity-scout/internal/config"
	"github.com/jonathan/opportunity-scout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gigBoardPage = `<html><body>
<div class="gig">
  <h2 class="gig-title">React dashboard buildout</h2>
  <p class="gig-desc">Three-month contract building an analytics dashboard.</p>
  <span class="gig-rate">$40-60/hr</span>
  <span class="gig-skills">javascript, react</span>
  <span class="gig-hours">15-25 hrs/week</span>
</div>
<div class="gig">
  <h2 class="gig-title">Technical blog ghostwriting</h2>
  <p class="gig-desc">Ongoing articles for a developer tools company.</p>
  <span class="gig-rate">$500/project</span>
  <span class="gig-skills">writing</span>
  <span class="gig-hours">5 hrs/week</span>
</div>
<div class="gig"><h2 class="gig-title"></h2></div>
</body></html>`

func gigBoardConfig() config.Providers {
	return config.Providers{
		Timeout:    2 * time.Second,
		MaxRetries: 1,
		Backoff:    time.Millisecond,
		MemoTTL:    time.Hour,
	}
}

func TestGigBoard_ParsesListings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "javascript,writing", r.URL.Query().Get("skills"))
		_, _ = w.Write([]byte(gigBoardPage))
	}))
	defer server.Close()

	board := NewGigBoard(server.URL, gigBoardConfig())
	opps := board.Fetch(context.Background(), catalogInput("javascript", "writing"))

	require.Len(t, opps, 2, "the titleless listing is dropped")

	first := opps[0]
	assert.Equal(t, "React dashboard buildout", first.Title)
	assert.Equal(t, "gigboard", first.Source)
	assert.Equal(t, []string{"javascript", "react"}, first.RequiredSkills)
	assert.Equal(t, types.IncomeRange{Min: 40, Max: 60, Timeframe: types.TimeframeHourly}, first.Income)
	assert.Equal(t, 15.0, first.TimeRequired.Min)
	assert.Equal(t, 25.0, first.TimeRequired.Max)

	second := opps[1]
	assert.Equal(t, types.TimeframePerProject, second.Income.Timeframe)
	assert.Equal(t, 500.0, second.Income.Min)
	assert.Equal(t, 5.0, second.TimeRequired.Max)
}

func TestGigBoard_ServerErrorDegradesToEmpty(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	board := NewGigBoard(server.URL, gigBoardConfig())
	opps := board.Fetch(context.Background(), catalogInput("javascript"))

	assert.Empty(t, opps, "failures never propagate as errors")
	assert.Equal(t, 2, calls, "one attempt plus one retry")
}

func TestGigBoard_UnreachableHostDegradesToEmpty(t *testing.T) {
	board := NewGigBoard("http://127.0.0.1:1", gigBoardConfig())

	opps := board.Fetch(context.Background(), catalogInput("javascript"))

	assert.Empty(t, opps)
}

func TestGigBoard_MemoizesSuccessfulFetch(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(gigBoardPage))
	}))
	defer server.Close()

	board := NewGigBoard(server.URL, gigBoardConfig())
	ctx := context.Background()

	board.Fetch(ctx, catalogInput("javascript"))
	board.Fetch(ctx, catalogInput("javascript"))

	assert.Equal(t, 1, calls, "second fetch inside the memo TTL hits the cache")
}

func TestGigBoard_BrowserRendering(t *testing.T) {
	cfg := gigBoardConfig()
	cfg.UseBrowser = true

	board := NewGigBoard("http://gigboard.example", cfg)
	rendered := 0
	board.render = func(_ context.Context, url string) (string, error) {
		rendered++
		assert.Contains(t, url, "skills=javascript")
		return gigBoardPage, nil
	}

	opps := board.Fetch(context.Background(), catalogInput("javascript"))

	assert.Equal(t, 1, rendered)
	assert.Len(t, opps, 2)
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		raw  string
		want types.IncomeRange
	}{
		{"$40-60/hr", types.IncomeRange{Min: 40, Max: 60, Timeframe: types.TimeframeHourly}},
		{"$500/project", types.IncomeRange{Min: 500, Max: 500, Timeframe: types.TimeframePerProject}},
		{"$2000-3000/month", types.IncomeRange{Min: 2000, Max: 3000, Timeframe: types.TimeframeMonthly}},
		{"$250/day", types.IncomeRange{Min: 250, Max: 250, Timeframe: types.TimeframeDaily}},
		{"negotiable", types.IncomeRange{Timeframe: types.TimeframeHourly}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRate(tt.raw))
		})
	}
}
