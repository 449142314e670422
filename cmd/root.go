package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/halcyonlab/tablechat/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	workDir string

	// Loaded configuration
	cfg *cfgpkg.Global

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

var rootCmd = &cobra.Command{
	Use:   "tablechat",
	Short: "tablechat: chat-driven analysis of Excel and CSV data",
	Long: `tablechat understands Traditional Chinese and English requests about
tabular data: it classifies what you want, extracts the entities you
mention, and routes to cleaning, statistics, chart selection or report
generation over the currently loaded Excel/CSV file.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.tablechat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&workDir, "dir", "", "working directory for file search and exports (overrides config)")
}

func loadConfig() {
	if debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	slog.SetDefault(logger)

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	if rootCmd.PersistentFlags().Changed("dir") && workDir != "" {
		cfg.WorkingDirectory = workDir
	}
}

// effectiveConfig returns the loaded config, falling back to defaults
// when loading failed.
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	wd, _ := os.Getwd()
	return &cfgpkg.Global{
		Language:         "zh-TW",
		DetailLevel:      "standard",
		ChartStyle:       "auto",
		OutputFormat:     "xlsx",
		WorkingDirectory: wd,
		MaxSearchResults: 10,
	}
}
