// Package pipeline wires the stages together: ingest → resolve links and
// fetch market data → assemble graph → render. Stages communicate through
// JSON artifacts on disk and must run in that fixed order; each stage
// consumes the previous stage's output.
package pipeline

import (
	"context"
	"fmt"

	"github.com/opendunl/portlink/internal/config"
	"github.com/opendunl/portlink/internal/graph"
	"github.com/opendunl/portlink/internal/ingest"
	"github.com/opendunl/portlink/internal/market"
	"github.com/opendunl/portlink/internal/render"
	"github.com/opendunl/portlink/internal/resolve"
	"github.com/opendunl/portlink/pkg/models"
)

// HistoryFetcher is the narrow boundary to the market-data collaborator.
// Implementations must degrade to models.EmptyHistory on failure rather
// than returning an error; missing market data never fails the pipeline.
type HistoryFetcher interface {
	History(ctx context.Context, symbols market.SymbolMap) models.History
}

// HeadlineFetcher is the optional news collaborator.
type HeadlineFetcher interface {
	Fetch(ctx context.Context, limit int) []models.Headline
}

// Pipeline runs the batch stages over the configured data directories.
type Pipeline struct {
	cfg       *config.Config
	coords    ingest.CoordinateTable
	symbols   market.SymbolMap
	resolver  *resolve.Resolver
	history   HistoryFetcher
	headlines HeadlineFetcher // nil disables the headlines panel
}

// Option customizes pipeline wiring, mainly for tests.
type Option func(*Pipeline)

// WithHistoryFetcher replaces the market-data client.
func WithHistoryFetcher(f HistoryFetcher) Option {
	return func(p *Pipeline) { p.history = f }
}

// WithHeadlineFetcher replaces the headlines client.
func WithHeadlineFetcher(f HeadlineFetcher) Option {
	return func(p *Pipeline) { p.headlines = f }
}

// WithCoordinates replaces the static coordinate table.
func WithCoordinates(coords ingest.CoordinateTable) Option {
	return func(p *Pipeline) { p.coords = coords }
}

// WithSymbolMap replaces the benchmark symbol map / whitelist.
func WithSymbolMap(symbols market.SymbolMap) Option {
	return func(p *Pipeline) { p.symbols = symbols }
}

// New creates a pipeline with production wiring: default coordinate
// table, default symbol map, the configured resolver threshold, and the
// Yahoo Finance client.
func New(cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:      cfg,
		coords:   ingest.DefaultCoordinates(),
		symbols:  market.DefaultSymbolMap(),
		resolver: resolve.New(nil, cfg.Resolver.Threshold),
		history:  market.NewClient(cfg.Market),
	}
	if cfg.Market.Headlines {
		p.headlines = market.NewHeadlines()
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ingest runs the ingestion stage: reference CSVs → processed JSON.
func (p *Pipeline) Ingest() error {
	return ingest.Run(p.cfg, p.coords)
}

// Enrich runs the enrichment stage: resolve benchmark→port links, fetch
// market history, assemble the graph, and write the combined payload.
func (p *Pipeline) Enrich(ctx context.Context) error {
	payload, err := p.BuildPayload(ctx)
	if err != nil {
		return err
	}
	if err := ingest.WriteArtifact(p.cfg.PayloadPath(), payload); err != nil {
		return err
	}
	fmt.Printf("✅ Enrichment complete → %s\n", p.cfg.PayloadPath())
	return nil
}

// BuildPayload assembles the dashboard payload in memory from the
// processed artifacts.
func (p *Pipeline) BuildPayload(ctx context.Context) (*models.Payload, error) {
	dir := p.cfg.Data.ProcessedDir

	var ports []models.Port
	if err := ingest.ReadArtifact(dir+"/ports.json", &ports); err != nil {
		return nil, err
	}
	var benchmarks []models.Benchmark
	if err := ingest.ReadArtifact(dir+"/benchmarks.json", &benchmarks); err != nil {
		return nil, err
	}
	var currencies []models.Currency
	if err := ingest.ReadArtifact(dir+"/currencies.json", &currencies); err != nil {
		return nil, err
	}

	result := p.resolver.Resolve(benchmarks, ports)
	for _, c := range result.Collisions {
		fmt.Printf("Warning: port names collide after normalization (%q): kept %s, dropped %s\n",
			c.Normalized, c.KeptID, c.DroppedID)
	}

	marketData := p.history.History(ctx, p.symbols)

	assembler := graph.New(p.symbols)
	g := assembler.Assemble(ports, benchmarks, result.Links)

	// The whitelist applies to the payload benchmark list and to graph
	// node creation alike, from the same symbol map.
	listed := make([]models.Benchmark, 0, len(benchmarks))
	for _, b := range benchmarks {
		if p.symbols.Contains(b.ID) {
			listed = append(listed, b)
		}
	}

	payload := &models.Payload{
		Ports:      ports,
		Benchmarks: listed,
		MarketData: marketData,
		Graph:      g,
	}
	if p.headlines != nil {
		payload.Headlines = p.headlines.Fetch(ctx, p.cfg.Market.HeadlineLimit)
	}
	return payload, nil
}

// Render runs the rendering stage: payload JSON → static HTML document.
func (p *Pipeline) Render() error {
	var payload models.Payload
	if err := ingest.ReadArtifact(p.cfg.PayloadPath(), &payload); err != nil {
		return err
	}
	if err := render.Render(&payload, p.cfg.Render.Title, p.cfg.Render.OutputFile); err != nil {
		return err
	}
	fmt.Printf("✅ Dashboard ready: %s\n", p.cfg.Render.OutputFile)
	return nil
}

// Run executes all stages in their fixed order.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.Ingest(); err != nil {
		return err
	}
	if err := p.Enrich(ctx); err != nil {
		return err
	}
	return p.Render()
}
