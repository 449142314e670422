package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcyonlab/tablechat/internal/assistant"
)

var askFile string

var askCmd = &cobra.Command{
	Use:   "ask <utterance>",
	Short: "Answer a single request and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		host := newShellHost(c.WorkingDirectory, logger)
		if askFile != "" {
			if err := host.Load(askFile); err != nil {
				return fmt.Errorf("load %s: %w", askFile, err)
			}
		}
		a := assistant.New(host,
			assistant.WithLogger(logger),
			assistant.WithSearchLimit(c.MaxSearchResults),
			assistant.WithExportFormat(c.OutputFormat),
		)
		fmt.Fprintln(cmd.OutOrStdout(), a.Respond(strings.Join(args, " ")))
		return nil
	},
}

func init() {
	askCmd.Flags().StringVarP(&askFile, "file", "f", "", "data file to load before answering")
	rootCmd.AddCommand(askCmd)
}
