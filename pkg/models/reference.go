// Package models defines the domain types shared across the PortLink
// pipeline: reference records (ports, benchmarks, currencies), the
// knowledge graph, market history, and the final dashboard payload.
package models

// Port represents a geographic port location from the reference data.
// Records are immutable after ingestion.
type Port struct {
	ID        string  `json:"id"`     // derived from the source URI's trailing segment
	Name      string  `json:"name"`   // display name, e.g. "Singapore"
	Region    string  `json:"region"` // e.g. "Asia Pacific"
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	SourceURI string  `json:"source_uri"`
}

// Benchmark represents a pricing benchmark from the reference data.
type Benchmark struct {
	ID          string `json:"id"`
	Symbol      string `json:"symbol"`      // e.g. "AAGZU00"
	Description string `json:"description"` // free text, e.g. "Gasoil FOB Spore Cargo"
	Commodity   string `json:"commodity"`   // commodity family, e.g. "GASOIL"
	Currency    string `json:"currency"`    // ISO code, e.g. "USD"
	UOM         string `json:"uom"`         // unit of measure, e.g. "BBL"
	SourceURI   string `json:"source_uri"`
}

// Currency represents a currency reference record.
type Currency struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	SourceURI string `json:"source_uri"`
}
