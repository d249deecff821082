package models

import "time"

// History is a set of aligned daily closing-price series. Every dataset
// has exactly len(Dates) values; gaps are forward-filled then zero-filled
// before the history leaves the market package.
//
// Degraded marks a history that could not be fetched: Dates and Datasets
// are empty but well-formed, and the dashboard shows an explicit notice
// instead of silent zeros.
type History struct {
	Dates    []string             `json:"dates"`    // x-axis labels, e.g. "Jan 02"
	Datasets map[string][]float64 `json:"datasets"` // benchmark id → closes
	Degraded bool                 `json:"degraded,omitempty"`
}

// EmptyHistory returns the well-formed degraded fallback result.
func EmptyHistory() History {
	return History{
		Dates:    []string{},
		Datasets: map[string][]float64{},
		Degraded: true,
	}
}

// Headline is a single market news item from an RSS source.
type Headline struct {
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	URL       string    `json:"url"`
	Published time.Time `json:"published,omitempty"`
}

// Payload is the combined dashboard payload written by the enrich stage
// and consumed by the renderer.
type Payload struct {
	Ports      []Port      `json:"ports"`
	Benchmarks []Benchmark `json:"benchmarks"` // whitelisted benchmarks only
	MarketData History     `json:"market_data"`
	Graph      Graph       `json:"graph"`
	Headlines  []Headline  `json:"headlines,omitempty"`
}
