package market

import (
	"context"
	"sort"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/opendunl/portlink/internal/infra"
	"github.com/opendunl/portlink/pkg/models"
)

// HeadlineSource is one RSS feed of commodity-market news.
type HeadlineSource struct {
	Name   string
	RSSURL string
}

// DefaultHeadlineSources lists the configured commodity news feeds.
var DefaultHeadlineSources = []HeadlineSource{
	{Name: "Yahoo Finance", RSSURL: "https://finance.yahoo.com/news/rssindex"},
	{Name: "OilPrice.com", RSSURL: "https://oilprice.com/rss/main"},
	{Name: "Investing.com Commodities", RSSURL: "https://www.investing.com/rss/news_11.rss"},
}

// Headlines fetches market news from RSS sources. A failed source is
// skipped, never fatal; headlines are decoration on the dashboard.
type Headlines struct {
	sources []HeadlineSource
	cache   *infra.Cache
	limiter *infra.RateLimiter
	parser  *gofeed.Parser
}

// NewHeadlines creates a headlines fetcher with the default sources.
func NewHeadlines() *Headlines {
	return NewHeadlinesWithSources(DefaultHeadlineSources)
}

// NewHeadlinesWithSources creates a headlines fetcher with custom sources.
func NewHeadlinesWithSources(sources []HeadlineSource) *Headlines {
	return &Headlines{
		sources: sources,
		cache:   infra.NewCache(10 * time.Minute),
		limiter: infra.NewRateLimiter(2, time.Second),
		parser:  gofeed.NewParser(),
	}
}

// Fetch returns up to limit recent headlines across all sources, newest
// first. With no reachable source it returns an empty slice.
func (h *Headlines) Fetch(ctx context.Context, limit int) []models.Headline {
	const cacheKey = "headlines"
	if cached, ok := h.cache.Get(cacheKey); ok {
		return capHeadlines(cached.([]models.Headline), limit)
	}

	var all []models.Headline
	for _, src := range h.sources {
		if err := h.limiter.Wait(ctx); err != nil {
			break
		}
		feed, err := h.parser.ParseURLWithContext(src.RSSURL, ctx)
		if err != nil {
			// Non-critical: skip failed sources.
			continue
		}
		for _, item := range feed.Items {
			headline := models.Headline{
				Title:  item.Title,
				Source: src.Name,
				URL:    item.Link,
			}
			if item.PublishedParsed != nil {
				headline.Published = *item.PublishedParsed
			}
			all = append(all, headline)
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Published.After(all[j].Published)
	})

	h.cache.Set(cacheKey, all)
	return capHeadlines(all, limit)
}

func capHeadlines(headlines []models.Headline, limit int) []models.Headline {
	if limit > 0 && len(headlines) > limit {
		return headlines[:limit]
	}
	return headlines
}
