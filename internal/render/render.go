// Package render projects the finalized dashboard payload into a single
// self-contained HTML document. It defines no new data: the template is a
// pure view over the payload.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/opendunl/portlink/pkg/models"
)

// Data is the template model for the dashboard.
type Data struct {
	Title       string
	GeneratedAt string

	Ports      []models.Port
	Benchmarks []models.Benchmark
	Headlines  []models.Headline

	NodeCount int
	EdgeCount int
	LinkCount int // resolved benchmark→port links only

	MarketDegraded bool

	// PayloadJSON is the full payload serialized for the client-side
	// chart and network views.
	PayloadJSON template.JS
}

// Render writes the dashboard document for payload to outPath.
func Render(payload *models.Payload, title, outPath string) error {
	fmt.Println("🎨 Rendering dashboard...")

	html, err := HTML(payload, title)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(outPath, html, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}

// HTML renders the dashboard document to memory.
func HTML(payload *models.Payload, title string) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	links := 0
	for _, e := range payload.Graph.Edges {
		if e.Label != "" {
			links++
		}
	}

	data := Data{
		Title:          title,
		GeneratedAt:    time.Now().UTC().Format("2006-01-02 15:04 UTC"),
		Ports:          payload.Ports,
		Benchmarks:     payload.Benchmarks,
		Headlines:      payload.Headlines,
		NodeCount:      len(payload.Graph.Nodes),
		EdgeCount:      len(payload.Graph.Edges),
		LinkCount:      links,
		MarketDegraded: payload.MarketData.Degraded,
		PayloadJSON:    template.JS(raw),
	}

	tmpl, err := template.New("dashboard").Parse(DashboardTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}
