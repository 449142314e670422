package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/halcyonlab/tablechat/internal/dataset"
	"github.com/halcyonlab/tablechat/internal/report"
)

var analyzeOutput string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Build the full analysis report for an Excel/CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		d, err := dataset.Load(path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}

		meta := report.FileMeta{Path: path, Name: filepath.Base(path)}
		if info, err := os.Stat(path); err == nil {
			meta.SizeBytes = info.Size()
			meta.ModTime = info.ModTime()
		}

		var b report.Builder
		text := b.Build(d, meta)

		if analyzeOutput != "" {
			if err := os.WriteFile(analyzeOutput, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "📋 報表已儲存: %s\n", analyzeOutput)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write the report to a file instead of stdout")
	rootCmd.AddCommand(analyzeCmd)
}
