// PortLink — benchmark-to-port entity resolution and dashboard pipeline.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opendunl/portlink/internal/config"
	"github.com/opendunl/portlink/internal/pipeline"
	"github.com/opendunl/portlink/internal/server"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "portlink",
	Short: "PortLink — link pricing benchmarks to ports and build a dashboard",
	Long: `PortLink ingests reference CSV data (ports, pricing benchmarks,
currencies), fuzzy-matches benchmark descriptions to port names, augments
the result with market price history, and renders a knowledge-graph
dashboard as a single static HTML document.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("PortLink %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Ingest Command ---

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest reference CSVs into processed JSON artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return pipeline.New(cfg).Ingest()
	},
}

// --- Enrich Command ---

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Resolve benchmark→port links, fetch market data, assemble the graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		return pipeline.New(cfg).Enrich(cmd.Context())
	},
}

// --- Render Command ---

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the dashboard payload into a static HTML document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return pipeline.New(cfg).Render()
	},
}

// --- Run Command ---

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: ingest → enrich → render",
	RunE: func(cmd *cobra.Command, args []string) error {
		return pipeline.New(cfg).Run(cmd.Context())
	},
}

// --- Serve Command ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the rendered dashboard and payload over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		if port != 0 {
			cfg.Server.Port = port
		}
		return server.NewServer(cfg).ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "override listen port")
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which pipeline artifacts are present",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Pipeline artifacts:")
		for _, a := range config.CheckArtifacts(cfg) {
			marker := "✅"
			if a.Source == config.ArtifactMissing {
				marker = "❌"
			}
			fmt.Printf("  %s %-20s [%s] %s\n", marker, a.Name, a.Stage, a.Path)
		}
	},
}
