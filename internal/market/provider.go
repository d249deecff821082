// Package market fetches daily closing-price history for the benchmark
// symbol map from the Yahoo Finance v8 chart API, and market headlines
// from RSS sources.
//
// The history fetch is all-or-nothing: any per-symbol failure degrades
// the whole operation to an empty, well-formed result so the pipeline
// keeps running without market data.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/url"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opendunl/portlink/internal/config"
	"github.com/opendunl/portlink/internal/infra"
	"github.com/opendunl/portlink/pkg/models"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// dayKey is sortable (lexical order == chronological order) and buckets
// intraday timestamps to one observation per session.
const dayKey = "2006-01-02"

// dateLabel is the x-axis label format, e.g. "Jan 02".
const dateLabel = "Jan 02"

// Client fetches closing-price history for a set of symbols.
type Client struct {
	baseURL        string
	lookbackMonths int
	interval       string
	timeoutSec     int
	cache          *infra.Cache
	limiter        *infra.RateLimiter
	now            func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different chart endpoint. Used by
// tests to target an httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithClock overrides the clock used to compute the lookback window.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a market-history client from config.
func NewClient(cfg config.MarketConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:        defaultBaseURL,
		lookbackMonths: cfg.LookbackMonths,
		interval:       cfg.Interval,
		timeoutSec:     cfg.HTTPTimeoutSec,
		cache:          infra.NewCache(15 * time.Minute),
		limiter:        infra.NewRateLimiter(5, time.Second),
		now:            time.Now,
	}
	if c.lookbackMonths <= 0 {
		c.lookbackMonths = 3
	}
	if c.interval == "" {
		c.interval = "1d"
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// History fetches the lookback window of daily closes for every symbol in
// the map. Gaps are forward-filled along the date axis, remaining leading
// gaps are zero-filled, and values are rounded to 2 decimal places, so
// every dataset has exactly len(Dates) finite values.
//
// On any fetch failure (network, provider error, unknown symbol, timeout)
// the whole operation degrades to the empty result rather than failing
// the pipeline.
func (c *Client) History(ctx context.Context, symbols SymbolMap) models.History {
	fmt.Println("... 📈 Fetching market data")

	if len(symbols) == 0 {
		return models.EmptyHistory()
	}

	ctx, cancel := infra.WithTimeout(ctx, c.timeoutSec)
	defer cancel()

	var mu sync.Mutex
	series := make(map[string]map[string]float64, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	for id, ticker := range symbols {
		id, ticker := id, ticker
		g.Go(func() error {
			closes, err := c.fetchCloses(gctx, ticker)
			if err != nil {
				return err
			}
			mu.Lock()
			series[id] = closes
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("Warning: market data fetch failed (%v). Continuing without it.\n", err)
		return models.EmptyHistory()
	}

	return buildHistory(series)
}

// fetchCloses retrieves one symbol's daily closes keyed by day.
func (c *Client) fetchCloses(ctx context.Context, ticker string) (map[string]float64, error) {
	if cached, ok := c.cache.Get(ticker); ok {
		return cached.(map[string]float64), nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	end := c.now()
	start := end.AddDate(0, -c.lookbackMonths, 0)

	reqURL := fmt.Sprintf(
		"%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=%s",
		c.baseURL, url.PathEscape(ticker), start.Unix(), end.Unix(), c.interval,
	)

	var resp chartResponse
	if err := fetchJSON(ctx, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("chart %s: %w", ticker, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart %s: %s", ticker, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("chart %s: no data", ticker)
	}

	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart %s: no quote indicator", ticker)
	}

	closes := make(map[string]float64, len(result.Timestamp))
	quote := result.Indicators.Quote[0]
	for i, ts := range result.Timestamp {
		if i < len(quote.Close) && quote.Close[i] != nil {
			closes[time.Unix(ts, 0).UTC().Format(dayKey)] = *quote.Close[i]
		}
	}

	c.cache.Set(ticker, closes)
	return closes, nil
}

// buildHistory aligns the per-symbol series on a shared date axis (the
// sorted union of all observed days), forward-fills gaps, zero-fills
// anything still missing, and rounds to 2 decimals.
func buildHistory(series map[string]map[string]float64) models.History {
	daySet := make(map[string]struct{})
	for _, closes := range series {
		for day := range closes {
			daySet[day] = struct{}{}
		}
	}

	days := make([]string, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Strings(days)

	labels := make([]string, len(days))
	for i, day := range days {
		t, err := time.Parse(dayKey, day)
		if err != nil {
			labels[i] = day
			continue
		}
		labels[i] = t.Format(dateLabel)
	}

	datasets := make(map[string][]float64, len(series))
	for id, closes := range series {
		values := make([]float64, len(days))
		last, seen := 0.0, false
		for i, day := range days {
			if v, ok := closes[day]; ok {
				last, seen = v, true
			}
			if seen {
				values[i] = round2(last)
			} // leading gap stays zero
		}
		datasets[id] = values
	}

	return models.History{Dates: labels, Datasets: datasets}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// fetchJSON performs a GET request and decodes the response into dest.
func fetchJSON(ctx context.Context, reqURL string, dest any) error {
	body, _, err := infra.DoGet(ctx, reqURL, map[string]string{"Accept": "application/json"})
	if err != nil {
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}
