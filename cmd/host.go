package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/halcyonlab/tablechat/internal/chart"
	"github.com/halcyonlab/tablechat/internal/dataset"
	"github.com/halcyonlab/tablechat/internal/export"
	"github.com/halcyonlab/tablechat/internal/report"
)

// shellHost adapts the terminal session to the assistant's host
// contract. It owns the current-dataset slot; chart rendering has no
// graphical surface here, so panels are only logged.
type shellHost struct {
	ds      *dataset.Dataset
	meta    report.FileMeta
	preview string
	root    string
	log     *slog.Logger
}

func newShellHost(root string, log *slog.Logger) *shellHost {
	return &shellHost{root: root, log: log}
}

func (h *shellHost) Dataset() *dataset.Dataset     { return h.ds }
func (h *shellHost) SetDataset(d *dataset.Dataset) { h.ds = d }
func (h *shellHost) CurrentFile() report.FileMeta  { return h.meta }
func (h *shellHost) SearchRoot() string            { return h.root }

// Load reads a data file and makes it the current dataset. Plain-text
// files carry no tabular structure; they load as a preview string and
// clear the dataset slot.
func (h *shellHost) Load(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".log", ".md":
		text, err := dataset.LoadText(path)
		if err != nil {
			return err
		}
		h.ds = nil
		h.preview = text
	default:
		d, err := dataset.Load(path)
		if err != nil {
			return err
		}
		h.ds = d
		h.preview = ""
	}

	meta := report.FileMeta{Path: path, Name: filepath.Base(path)}
	if info, err := os.Stat(path); err == nil {
		meta.SizeBytes = info.Size()
		meta.ModTime = info.ModTime()
	}
	h.meta = meta
	return nil
}

// loadBanner describes the most recent Load for the terminal.
func (h *shellHost) loadBanner() string {
	if h.ds != nil {
		return fmt.Sprintf("📂 已載入 %s (%d 行 × %d 欄)", h.meta.Name, h.ds.Rows(), h.ds.Cols())
	}
	return fmt.Sprintf("📄 已開啟 %s (文字預覽)\n%s", h.meta.Name, previewExcerpt(h.preview, 10))
}

// previewExcerpt returns at most n lines of text, marking truncation.
func previewExcerpt(text string, n int) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines[:n], "\n") + "\n..."
}

func (h *shellHost) OpenFilePicker() error {
	// No dialog in a terminal; the :load command covers this.
	h.log.Debug("file picker requested in shell session")
	return nil
}

func (h *shellHost) RenderChart(panels []chart.Panel) error {
	for _, p := range panels {
		h.log.Debug("chart panel selected", "kind", p.Kind.String(), "title", p.Title)
	}
	return nil
}

func (h *shellHost) ExportDataset(name string) error {
	if h.ds == nil {
		return fmt.Errorf("no dataset loaded")
	}
	return export.Write(h.ds, filepath.Join(h.root, name))
}
