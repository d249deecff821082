package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opendunl/portlink/internal/config"
	"github.com/opendunl/portlink/pkg/models"
)

const portsCSV = `ID,port,region
https://dunl.example.com/reference/locations/SIN,Singapore,Asia Pacific
https://dunl.example.com/reference/locations/ROT,Rotterdam Port Charge,Europe
https://dunl.example.com/reference/locations/NOPE,Atlantis,Nowhere
`

const benchmarksCSV = `ID,symbol,description,commodity,currency,uom
https://dunl.example.com/reference/symbols/AAGZU00,AAGZU00,Crude Oil FOB Singapore Cargo,CRUDE,USD,BBL
https://dunl.example.com/reference/symbols/B2,,,,,
`

const currenciesCSV = `ID,currencyCode,currencyLabel
https://dunl.example.com/reference/currencies/USD,USD,US Dollar
https://dunl.example.com/reference/currencies/EUR,,Euro
`

func testCoords() CoordinateTable {
	return CoordinateTable{
		"SIN": {Lat: 1.3521, Lng: 103.8198},
		"ROT": {Lat: 51.9225, Lng: 4.4792},
	}
}

func TestCleanID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://dunl.example.com/reference/locations/SIN", "SIN"},
		{"plain-id", "plain-id"},
		{"", ""},
		{"trailing/slash/", ""},
	}
	for _, tt := range tests {
		if got := CleanID(tt.in); got != tt.want {
			t.Errorf("CleanID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePortsFiltersByCoordinates(t *testing.T) {
	ports, err := ParsePorts(strings.NewReader(portsCSV), testCoords())
	if err != nil {
		t.Fatalf("ParsePorts: %v", err)
	}
	if len(ports) != 2 {
		t.Fatalf("expected 2 ports (Atlantis has no coordinates), got %d", len(ports))
	}

	sin := ports[0]
	if sin.ID != "SIN" || sin.Name != "Singapore" || sin.Region != "Asia Pacific" {
		t.Errorf("first port = %+v", sin)
	}
	if sin.Lat != 1.3521 || sin.Lng != 103.8198 {
		t.Errorf("coordinates not applied: %+v", sin)
	}
	if sin.SourceURI != "https://dunl.example.com/reference/locations/SIN" {
		t.Errorf("source URI = %q", sin.SourceURI)
	}
}

func TestParseBenchmarksDefaults(t *testing.T) {
	benchmarks, err := ParseBenchmarks(strings.NewReader(benchmarksCSV))
	if err != nil {
		t.Fatalf("ParseBenchmarks: %v", err)
	}
	if len(benchmarks) != 2 {
		t.Fatalf("expected 2 benchmarks, got %d", len(benchmarks))
	}

	full := benchmarks[0]
	if full.ID != "AAGZU00" || full.Commodity != "CRUDE" || full.UOM != "BBL" {
		t.Errorf("benchmark = %+v", full)
	}

	// The sparse row gets documented defaults instead of failing.
	sparse := benchmarks[1]
	if sparse.Symbol != DefaultSymbol {
		t.Errorf("symbol default = %q", sparse.Symbol)
	}
	if sparse.Commodity != DefaultCommodity {
		t.Errorf("commodity default = %q", sparse.Commodity)
	}
	if sparse.Currency != DefaultCurrency {
		t.Errorf("currency default = %q", sparse.Currency)
	}
	if sparse.Description != "" {
		t.Errorf("description default = %q, want empty", sparse.Description)
	}
}

func TestParsePortsDefaultsName(t *testing.T) {
	csv := "ID,region\nhttps://x/SIN,Asia\n"
	ports, err := ParsePorts(strings.NewReader(csv), testCoords())
	if err != nil {
		t.Fatalf("ParsePorts: %v", err)
	}
	if len(ports) != 1 || ports[0].Name != DefaultPortName {
		t.Errorf("ports = %+v, want name %q", ports, DefaultPortName)
	}
}

func TestParseCurrencies(t *testing.T) {
	currencies, err := ParseCurrencies(strings.NewReader(currenciesCSV))
	if err != nil {
		t.Fatalf("ParseCurrencies: %v", err)
	}
	if len(currencies) != 2 {
		t.Fatalf("expected 2 currencies, got %d", len(currencies))
	}
	if currencies[0].Code != "USD" || currencies[0].Label != "US Dollar" {
		t.Errorf("currency = %+v", currencies[0])
	}
	if currencies[1].Code != DefaultSymbol {
		t.Errorf("missing code should default, got %q", currencies[1].Code)
	}
}

func TestRunWritesArtifacts(t *testing.T) {
	cfg := testConfig(t)
	writeRawCSVs(t, cfg)

	if err := Run(cfg, testCoords()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var ports []models.Port
	if err := ReadArtifact(filepath.Join(cfg.Data.ProcessedDir, "ports.json"), &ports); err != nil {
		t.Fatalf("read ports artifact: %v", err)
	}
	if len(ports) != 2 {
		t.Errorf("ports artifact has %d records, want 2", len(ports))
	}

	var benchmarks []models.Benchmark
	if err := ReadArtifact(filepath.Join(cfg.Data.ProcessedDir, "benchmarks.json"), &benchmarks); err != nil {
		t.Fatalf("read benchmarks artifact: %v", err)
	}
	if len(benchmarks) != 2 {
		t.Errorf("benchmarks artifact has %d records, want 2", len(benchmarks))
	}
}

func TestRunMissingInputAborts(t *testing.T) {
	cfg := testConfig(t)
	// No raw CSVs written.
	err := Run(cfg, testCoords())
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Errorf("error type = %T, want *MissingInputError", err)
	}
	// No partial output for the stage.
	if _, statErr := os.Stat(filepath.Join(cfg.Data.ProcessedDir, "ports.json")); statErr == nil {
		t.Error("partial artifact written despite missing input")
	}
}

func TestReadArtifactMissing(t *testing.T) {
	var dest []models.Port
	err := ReadArtifact(filepath.Join(t.TempDir(), "nope.json"), &dest)
	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Errorf("error type = %T, want *MissingInputError", err)
	}
}

// --- helpers ---

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Data: config.DataConfig{
			RawDir:        filepath.Join(dir, "raw"),
			ProcessedDir:  filepath.Join(dir, "processed"),
			EnrichedDir:   filepath.Join(dir, "enriched"),
			PortsCSV:      "ports.csv",
			BenchmarksCSV: "benchmarks.csv",
			CurrenciesCSV: "currencies.csv",
		},
	}
}

func writeRawCSVs(t *testing.T, cfg *config.Config) {
	t.Helper()
	if err := os.MkdirAll(cfg.Data.RawDir, 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		cfg.PortsPath():      portsCSV,
		cfg.BenchmarksPath(): benchmarksCSV,
		cfg.CurrenciesPath(): currenciesCSV,
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}
