package config

import "os"

// ArtifactSource represents where a data artifact currently exists.
type ArtifactSource string

const (
	ArtifactPresent ArtifactSource = "present"
	ArtifactMissing ArtifactSource = "missing"
)

// ArtifactStatus describes one pipeline input or output file.
type ArtifactStatus struct {
	Name   string         `json:"name"`
	Path   string         `json:"path"`
	Stage  string         `json:"stage"` // "raw", "processed", "enriched", "rendered"
	Source ArtifactSource `json:"source"`
}

// CheckArtifacts reports the presence of every pipeline artifact, in
// pipeline order. Useful for diagnosing which stage can run next.
func CheckArtifacts(cfg *Config) []ArtifactStatus {
	return []ArtifactStatus{
		checkArtifact("Ports CSV", cfg.PortsPath(), "raw"),
		checkArtifact("Benchmarks CSV", cfg.BenchmarksPath(), "raw"),
		checkArtifact("Currencies CSV", cfg.CurrenciesPath(), "raw"),
		checkArtifact("Ports JSON", cfg.Data.ProcessedDir+"/ports.json", "processed"),
		checkArtifact("Benchmarks JSON", cfg.Data.ProcessedDir+"/benchmarks.json", "processed"),
		checkArtifact("Currencies JSON", cfg.Data.ProcessedDir+"/currencies.json", "processed"),
		checkArtifact("Dashboard payload", cfg.PayloadPath(), "enriched"),
		checkArtifact("Rendered dashboard", cfg.Render.OutputFile, "rendered"),
	}
}

func checkArtifact(name, path, stage string) ArtifactStatus {
	status := ArtifactStatus{Name: name, Path: path, Stage: stage}
	if _, err := os.Stat(path); err == nil {
		status.Source = ArtifactPresent
	} else {
		status.Source = ArtifactMissing
	}
	return status
}
