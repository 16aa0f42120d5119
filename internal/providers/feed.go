package providers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/jonathan/opportunity-scout/internal/cache"
	"github.com/jonathan/opportunity-scout/internal/config"
	"github.com/jonathan/opportunity-scout/internal/types"
)

// maxFeedItems caps how many items one feed contributes per fetch.
const maxFeedItems = 10

// ContentFeed models content-platform opportunities from RSS/Atom feeds of
// creator-economy calls (newsletter sponsorships, paid syndication, open
// pitch windows). Feeds are not queryable, so items are pulled and filtered
// locally against the user's skills.
type ContentFeed struct {
	feeds   []string
	cfg     config.Providers
	client  *http.Client
	parser  *gofeed.Parser
	memo    *cache.Memo[[]types.RawOpportunity]
	limiter *Throttle
}

// NewContentFeed constructs the feed adapter over the given feed URLs.
func NewContentFeed(feeds []string, cfg config.Providers) *ContentFeed {
	return &ContentFeed{
		feeds:   feeds,
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		parser:  gofeed.NewParser(),
		memo:    cache.NewMemo[[]types.RawOpportunity](cfg.MemoTTL),
		limiter: NewThrottle(cfg.RateBurst, cfg.RatePerSec),
	}
}

// Source implements Provider.
func (c *ContentFeed) Source() string { return "creatorwire" }

// Fetch pulls every configured feed and keeps items mentioning any user
// skill. A feed that fails after retries is skipped; the rest still count.
func (c *ContentFeed) Fetch(ctx context.Context, input *types.DiscoveryInput) []types.RawOpportunity {
	if len(c.feeds) == 0 {
		return nil
	}

	key := cache.SkillKey(input.Skills)
	if hit, ok := c.memo.Get(key); ok {
		return copyOpportunities(hit)
	}

	var out []types.RawOpportunity
	for _, feedURL := range c.feeds {
		var feed *gofeed.Feed
		err := withRetry(ctx, c.Source(), c.cfg, func(ctx context.Context) error {
			if err := c.limiter.Wait(ctx); err != nil {
				return err
			}
			var err error
			feed, err = c.fetchFeed(ctx, feedURL)
			return err
		})
		if err != nil {
			log.Printf("[provider:creatorwire] feed %s failed after retries: %v, skipping", feedURL, err)
			continue
		}
		out = append(out, itemsToOpportunities(feed, input.Skills)...)
	}

	c.memo.Set(key, copyOpportunities(out))
	return out
}

func (c *ContentFeed) fetchFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return c.parser.Parse(resp.Body)
}

// itemsToOpportunities shapes matching feed items into content
// opportunities. The item's categories become its required skills when
// present; otherwise the matched user skill does.
func itemsToOpportunities(feed *gofeed.Feed, userSkills []string) []types.RawOpportunity {
	var out []types.RawOpportunity
	for _, item := range feed.Items {
		if len(out) >= maxFeedItems {
			break
		}

		matched := matchingSkill(item, userSkills)
		if matched == "" {
			continue
		}

		required := item.Categories
		if len(required) == 0 {
			required = []string{matched}
		}

		opp := types.RawOpportunity{
			Title:          strings.TrimSpace(item.Title),
			Description:    strings.TrimSpace(item.Description),
			Source:         "creatorwire",
			Type:           types.TypeContent,
			RequiredSkills: required,
			Income:         types.IncomeRange{Min: 50, Max: 500, Timeframe: types.TimeframePerProject},
			TimeRequired:   types.TimeCommitment{Min: 2, Max: 8, Unit: types.TimeUnitHoursPerWeek},
			Location:       types.LocationRemote,
			EntryBarrier:   types.LevelLow,
			Competition:    types.LevelHigh,
			StepsToStart:   []string{"Read the submission guidelines", "Pitch a specific angle", "Deliver on the stated deadline"},
		}
		opp.Normalize()
		out = append(out, opp)
	}
	return out
}

func matchingSkill(item *gofeed.Item, userSkills []string) string {
	haystack := strings.ToLower(item.Title + " " + item.Description + " " + strings.Join(item.Categories, " "))
	for _, skill := range userSkills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" && strings.Contains(haystack, skill) {
			return skill
		}
	}
	return ""
}
