package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/halcyonlab/tablechat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set tablechat preferences",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "language: %s\n", c.Language)
		fmt.Fprintf(out, "detail_level: %s\n", c.DetailLevel)
		fmt.Fprintf(out, "chart_style: %s\n", c.ChartStyle)
		fmt.Fprintf(out, "output_format: %s\n", c.OutputFormat)
		fmt.Fprintf(out, "working_directory: %s\n", c.WorkingDirectory)
		fmt.Fprintf(out, "max_search_results: %d\n", c.MaxSearchResults)
		fmt.Fprintf(out, "history_limit: %d\n", c.HistoryLimit)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "language":
			cfg.Language = val
		case "detail_level":
			switch val {
			case "brief", "standard", "detailed":
				cfg.DetailLevel = val
			default:
				return fmt.Errorf("invalid detail_level: %s (use brief, standard or detailed)", val)
			}
		case "chart_style":
			cfg.ChartStyle = val
		case "output_format":
			switch val {
			case "xlsx", "csv", "json":
				cfg.OutputFormat = val
			default:
				return fmt.Errorf("invalid output_format: %s (use xlsx, csv or json)", val)
			}
		case "working_directory":
			cfg.WorkingDirectory = val
		case "max_search_results":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid max_search_results: %s", val)
			}
			cfg.MaxSearchResults = n
		case "history_limit":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid history_limit: %s", val)
			}
			cfg.HistoryLimit = n
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
