package providers

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/opportunity-scout/internal/cache"
	"github.com/jonathan/opportunity-scout/internal/config"
	"github.com/jonathan/opportunity-scout/internal/types"
)

const gigBoardUserAgent = "Mozilla/5.0 (compatible; OpportunityScout/1.0)"

// GigBoard scrapes a remote gig listing board. The board serves an HTML
// search page; listings carry a title, description, rate band, skill list,
// and weekly-hours band. JS-heavy boards can be rendered through a headless
// browser instead of plain HTTP.
type GigBoard struct {
	baseURL string
	cfg     config.Providers
	client  *http.Client
	memo    *cache.Memo[[]types.RawOpportunity]
	limiter *Throttle

	// render is swapped in tests; defaults to renderPage (chromedp).
	render func(ctx context.Context, url string) (string, error)
}

// NewGigBoard constructs a gig board adapter for the given search endpoint.
func NewGigBoard(baseURL string, cfg config.Providers) *GigBoard {
	return &GigBoard{
		baseURL: strings.TrimRight(baseURL, "/"),
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		memo:    cache.NewMemo[[]types.RawOpportunity](cfg.MemoTTL),
		limiter: NewThrottle(cfg.RateBurst, cfg.RatePerSec),
		render:  renderPage,
	}
}

// Source implements Provider.
func (g *GigBoard) Source() string { return "gigboard" }

// Fetch queries the board for the user's skills. All failures degrade to an
// empty result after bounded retries; the aggregator never sees an error
// from this adapter.
func (g *GigBoard) Fetch(ctx context.Context, input *types.DiscoveryInput) []types.RawOpportunity {
	key := cache.SkillKey(input.Skills)
	if hit, ok := g.memo.Get(key); ok {
		return copyOpportunities(hit)
	}

	var html string
	err := withRetry(ctx, g.Source(), g.cfg, func(ctx context.Context) error {
		if err := g.limiter.Wait(ctx); err != nil {
			return err
		}
		var err error
		html, err = g.fetchPage(ctx, input.Skills)
		return err
	})
	if err != nil {
		log.Printf("[provider:gigboard] fetch failed after retries: %v, returning empty result", err)
		return nil
	}

	opportunities, err := parseGigListings(html)
	if err != nil {
		log.Printf("[provider:gigboard] parse failed: %v, returning empty result", err)
		return nil
	}

	g.memo.Set(key, copyOpportunities(opportunities))
	return opportunities
}

// fetchPage retrieves the search page over HTTP, or through the headless
// browser when configured for JS-rendered boards.
func (g *GigBoard) fetchPage(ctx context.Context, skills []string) (string, error) {
	params := url.Values{}
	params.Set("skills", strings.Join(skills, ","))
	reqURL := g.baseURL + "?" + params.Encode()

	if g.cfg.UseBrowser {
		return g.render(ctx, reqURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", gigBoardUserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gig board returned %d", resp.StatusCode)
	}

	return string(body), nil
}

// parseGigListings extracts opportunities from the board's search page.
func parseGigListings(html string) ([]types.RawOpportunity, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	var out []types.RawOpportunity
	doc.Find(".gig").Each(func(_ int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Find(".gig-title").Text())
		if title == "" {
			return
		}

		opp := types.RawOpportunity{
			Title:          title,
			Description:    strings.TrimSpace(sel.Find(".gig-desc").Text()),
			Source:         "gigboard",
			Type:           types.TypeFreelance,
			RequiredSkills: splitSkills(sel.Find(".gig-skills").Text()),
			Income:         parseRate(sel.Find(".gig-rate").Text()),
			TimeRequired:   parseHoursBand(sel.Find(".gig-hours").Text()),
			Location:       types.LocationRemote,
			EntryBarrier:   types.LevelLow,
			Competition:    types.LevelHigh,
		}
		opp.Normalize()
		out = append(out, opp)
	})

	return out, nil
}

func splitSkills(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var ratePattern = regexp.MustCompile(`\$?(\d+(?:\.\d+)?)(?:\s*-\s*\$?(\d+(?:\.\d+)?))?`)

// parseRate reads bands like "$40-60/hr" or "$500/project". Anything
// unreadable becomes a zero-width hourly range, repaired downstream.
func parseRate(raw string) types.IncomeRange {
	r := types.IncomeRange{Timeframe: types.TimeframeHourly}
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "project"):
		r.Timeframe = types.TimeframePerProject
	case strings.Contains(lower, "day"):
		r.Timeframe = types.TimeframeDaily
	case strings.Contains(lower, "week"):
		r.Timeframe = types.TimeframeWeekly
	case strings.Contains(lower, "month"):
		r.Timeframe = types.TimeframeMonthly
	case strings.Contains(lower, "year"), strings.Contains(lower, "annum"):
		r.Timeframe = types.TimeframeAnnual
	}

	m := ratePattern.FindStringSubmatch(raw)
	if m == nil {
		return r
	}
	r.Min, _ = strconv.ParseFloat(m[1], 64)
	if m[2] != "" {
		r.Max, _ = strconv.ParseFloat(m[2], 64)
	} else {
		r.Max = r.Min
	}
	return r
}

var hoursPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)(?:\s*-\s*(\d+(?:\.\d+)?))?`)

// parseHoursBand reads bands like "10-20 hrs/week".
func parseHoursBand(raw string) types.TimeCommitment {
	tc := types.TimeCommitment{Unit: types.TimeUnitHoursPerWeek}
	m := hoursPattern.FindStringSubmatch(raw)
	if m == nil {
		return tc
	}
	tc.Min, _ = strconv.ParseFloat(m[1], 64)
	if m[2] != "" {
		tc.Max, _ = strconv.ParseFloat(m[2], 64)
	} else {
		tc.Max = tc.Min
	}
	return tc
}
