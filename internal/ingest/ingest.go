// Package ingest reads the reference CSV files (ports, benchmarks,
// currencies) into typed records and persists them as JSON artifacts for
// the enrich stage.
//
// The CSVs are schema-on-read: columns are addressed by header name, and a
// row missing an expected field gets a documented default instead of
// failing the row. The `ID` column is a URI-like string whose trailing
// path segment becomes the domain identifier.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/opendunl/portlink/internal/config"
	"github.com/opendunl/portlink/pkg/models"
)

// Default values substituted for malformed or missing fields.
const (
	DefaultPortName  = "Unknown Port"
	DefaultRegion    = "Global"
	DefaultCommodity = "General"
	DefaultCurrency  = "USD"
	DefaultSymbol    = "N/A"
)

// MissingInputError reports a required input file that does not exist.
// It aborts the pipeline run for that stage; no partial output is written.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input file %s: %v", e.Path, e.Err)
}

func (e *MissingInputError) Unwrap() error { return e.Err }

// CleanID extracts the domain identifier from a URI-like ID string by
// taking the trailing path segment. Empty input yields an empty id.
func CleanID(uri string) string {
	if uri == "" {
		return ""
	}
	parts := strings.Split(uri, "/")
	return parts[len(parts)-1]
}

// ParsePorts decodes the ports CSV. Only ports present in the coordinate
// table are kept.
func ParsePorts(r io.Reader, coords CoordinateTable) ([]models.Port, error) {
	rows, header, err := readCSV(r)
	if err != nil {
		return nil, err
	}

	ports := make([]models.Port, 0, len(rows))
	for _, row := range rows {
		uri := field(row, header, "ID", "")
		pid := CleanID(uri)
		coord, ok := coords[pid]
		if !ok {
			continue
		}
		ports = append(ports, models.Port{
			ID:        pid,
			Name:      field(row, header, "port", DefaultPortName),
			Region:    field(row, header, "region", DefaultRegion),
			Lat:       coord.Lat,
			Lng:       coord.Lng,
			SourceURI: uri,
		})
	}
	return ports, nil
}

// ParseBenchmarks decodes the benchmarks CSV.
func ParseBenchmarks(r io.Reader) ([]models.Benchmark, error) {
	rows, header, err := readCSV(r)
	if err != nil {
		return nil, err
	}

	benchmarks := make([]models.Benchmark, 0, len(rows))
	for _, row := range rows {
		uri := field(row, header, "ID", "")
		benchmarks = append(benchmarks, models.Benchmark{
			ID:          CleanID(uri),
			Symbol:      field(row, header, "symbol", DefaultSymbol),
			Description: field(row, header, "description", ""),
			Commodity:   field(row, header, "commodity", DefaultCommodity),
			Currency:    field(row, header, "currency", DefaultCurrency),
			UOM:         field(row, header, "uom", DefaultSymbol),
			SourceURI:   uri,
		})
	}
	return benchmarks, nil
}

// ParseCurrencies decodes the currencies CSV.
func ParseCurrencies(r io.Reader) ([]models.Currency, error) {
	rows, header, err := readCSV(r)
	if err != nil {
		return nil, err
	}

	currencies := make([]models.Currency, 0, len(rows))
	for _, row := range rows {
		currencies = append(currencies, models.Currency{
			Code:      field(row, header, "currencyCode", DefaultSymbol),
			Label:     field(row, header, "currencyLabel", ""),
			SourceURI: field(row, header, "ID", ""),
		})
	}
	return currencies, nil
}

// Run ingests all three reference CSVs and writes the processed JSON
// artifacts. A missing input file aborts the run with MissingInputError.
func Run(cfg *config.Config, coords CoordinateTable) error {
	fmt.Println("... Ingesting Ports")
	ports, err := parseFile(cfg.PortsPath(), func(r io.Reader) ([]models.Port, error) {
		return ParsePorts(r, coords)
	})
	if err != nil {
		return err
	}

	fmt.Println("... Ingesting Benchmarks")
	benchmarks, err := parseFile(cfg.BenchmarksPath(), ParseBenchmarks)
	if err != nil {
		return err
	}

	fmt.Println("... Ingesting Currencies")
	currencies, err := parseFile(cfg.CurrenciesPath(), ParseCurrencies)
	if err != nil {
		return err
	}

	dir := cfg.Data.ProcessedDir
	if err := WriteArtifact(filepath.Join(dir, "ports.json"), ports); err != nil {
		return err
	}
	if err := WriteArtifact(filepath.Join(dir, "benchmarks.json"), benchmarks); err != nil {
		return err
	}
	if err := WriteArtifact(filepath.Join(dir, "currencies.json"), currencies); err != nil {
		return err
	}

	fmt.Printf("✅ Ingestion complete: %d ports, %d benchmarks, %d currencies → %s\n",
		len(ports), len(benchmarks), len(currencies), dir)
	return nil
}

// parseFile opens path and runs the given parser, mapping a missing file
// to MissingInputError.
func parseFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingInputError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// WriteArtifact marshals v as indented JSON and writes it to path,
// creating parent directories as needed.
func WriteArtifact(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadArtifact loads a JSON artifact into dest. A missing file is
// reported as MissingInputError.
func ReadArtifact(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &MissingInputError{Path: path, Err: err}
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// readCSV reads all rows and returns them with a header→column index map.
func readCSV(r io.Reader) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows; missing fields get defaults

	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(all) == 0 {
		return nil, map[string]int{}, nil
	}

	header := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		header[strings.TrimSpace(name)] = i
	}
	return all[1:], header, nil
}

// field returns the named column of row, or def when the column is absent
// or empty.
func field(row []string, header map[string]int, key, def string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return def
	}
	val := strings.TrimSpace(row[idx])
	if val == "" {
		return def
	}
	return val
}
