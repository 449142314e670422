package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcyonlab/tablechat/internal/assistant"
	"github.com/halcyonlab/tablechat/internal/session"
)

var chatFile string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive analysis session",
	Long: `Chat opens a conversational loop. Type requests in Traditional
Chinese or English; meta commands start with a colon:

  :load <file>   load an Excel/CSV file (plain text opens as a preview)
  :summary       show the conversation digest
  :history       list recent turns
  :quit          leave the session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		host := newShellHost(c.WorkingDirectory, logger)

		var opts []session.Option
		if c.HistoryLimit > 0 {
			opts = append(opts, session.WithMaxTurns(c.HistoryLimit))
		}
		a := assistant.New(host,
			assistant.WithLogger(logger),
			assistant.WithContext(session.New(opts...)),
			assistant.WithSearchLimit(c.MaxSearchResults),
			assistant.WithExportFormat(c.OutputFormat),
		)

		out := cmd.OutOrStdout()
		if chatFile != "" {
			if err := host.Load(chatFile); err != nil {
				return fmt.Errorf("load %s: %w", chatFile, err)
			}
			fmt.Fprintf(out, "%s\n\n", host.loadBanner())
		}

		fmt.Fprintln(out, "💬 歡迎使用 tablechat！輸入需求開始分析，:quit 離開。")
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for {
			fmt.Fprint(out, "\n> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, ":") {
				if quit := runMeta(out, host, a, line); quit {
					break
				}
				continue
			}
			fmt.Fprintln(out, a.Respond(line))
		}
		return scanner.Err()
	},
}

// runMeta handles colon commands; returns true when the session ends.
func runMeta(out io.Writer, host *shellHost, a *assistant.Assistant, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":exit":
		fmt.Fprintln(out, "👋 再見！")
		return true
	case ":load":
		if len(fields) < 2 {
			fmt.Fprintln(out, "用法: :load <file>")
			return false
		}
		path := strings.Join(fields[1:], " ")
		if err := host.Load(path); err != nil {
			fmt.Fprintf(out, "⚠️ 載入失敗: %v\n", err)
			return false
		}
		fmt.Fprintln(out, host.loadBanner())
	case ":summary":
		fmt.Fprintln(out, a.Context().Summarize())
	case ":history":
		turns := a.Context().History(10)
		if len(turns) == 0 {
			fmt.Fprintln(out, "尚未開始對話")
			return false
		}
		for _, t := range turns {
			fmt.Fprintf(out, "[%s] %s (意圖: %s)\n",
				t.Timestamp.Format("15:04:05"), t.Utterance, t.Intent)
		}
	default:
		fmt.Fprintf(out, "未知指令: %s\n", fields[0])
	}
	return false
}

func init() {
	chatCmd.Flags().StringVarP(&chatFile, "file", "f", "", "data file to load before the session starts")
	rootCmd.AddCommand(chatCmd)
}
