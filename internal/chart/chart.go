// Package chart picks which visualizations fit a dataset. Rendering
// itself is left to the host application; this package only decides
// the panel layout and labels.
package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/halcyonlab/tablechat/internal/dataset"
)

// ErrNoNumeric is returned when a dataset has no numeric column to
// plot.
var ErrNoNumeric = errors.New("沒有數值欄位可以製作圖表")

// Kind identifies a chart type.
type Kind int

const (
	KindHistogram Kind = iota
	KindBox
	KindScatter
	KindHeatmap
	KindLine
	KindBar
	KindPie
)

var kindNames = map[Kind]string{
	KindHistogram: "直方圖",
	KindBox:       "盒鬚圖",
	KindScatter:   "散佈圖",
	KindHeatmap:   "相關性熱力圖",
	KindLine:      "折線圖",
	KindBar:       "柱狀圖",
	KindPie:       "圓餅圖",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "圖表"
}

// FromTerm maps a vocabulary chart term to a Kind. The second return
// is false when the term names no specific kind.
func FromTerm(term string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(term)) {
	case "柱狀圖", "長條圖", "bar":
		return KindBar, true
	case "折線圖", "線圖", "line":
		return KindLine, true
	case "圓餅圖", "餅圖", "pie":
		return KindPie, true
	case "散點圖", "散佈圖", "scatter":
		return KindScatter, true
	case "直方圖", "histogram":
		return KindHistogram, true
	case "盒鬚圖", "箱形圖", "box":
		return KindBox, true
	case "熱力圖", "heatmap":
		return KindHeatmap, true
	}
	return 0, false
}

// Panel is one suggested chart over named columns.
type Panel struct {
	Kind    Kind
	Title   string
	Columns []string
}

const (
	boxColumnLimit     = 4
	heatmapColumnLimit = 5
)

// Suggest builds the panel set for a dataset. Explicitly requested
// kinds come first, skipping any the dataset cannot support, followed
// by the standard set: a histogram of the first numeric column, then
// with two or more numeric columns a box plot, a scatter of the first
// pair and a correlation heatmap. Each kind appears at most once.
func Suggest(d *dataset.Dataset, requested ...Kind) ([]Panel, error) {
	if d == nil {
		return nil, ErrNoNumeric
	}
	numIdx := d.NumericColumns()
	if len(numIdx) == 0 {
		return nil, ErrNoNumeric
	}

	names := make([]string, len(numIdx))
	for i, idx := range numIdx {
		names[i] = d.Columns[idx].Name
	}

	var panels []Panel
	have := make(map[Kind]bool)
	add := func(p Panel, ok bool) {
		if !ok || have[p.Kind] {
			return
		}
		have[p.Kind] = true
		panels = append(panels, p)
	}

	for _, k := range requested {
		add(panelFor(k, d, names))
	}

	add(panelFor(KindHistogram, d, names))
	if len(names) >= 2 {
		add(panelFor(KindBox, d, names))
		add(panelFor(KindScatter, d, names))
		add(panelFor(KindHeatmap, d, names))
	}
	return panels, nil
}

// panelFor builds the panel for one kind over the numeric column names,
// or reports that the dataset cannot support it.
func panelFor(k Kind, d *dataset.Dataset, names []string) (Panel, bool) {
	switch k {
	case KindHistogram:
		return Panel{Kind: KindHistogram, Title: fmt.Sprintf("%s 分布圖", names[0]), Columns: names[:1]}, true
	case KindLine:
		return Panel{Kind: KindLine, Title: fmt.Sprintf("%s 趨勢圖", names[0]), Columns: names[:1]}, true
	case KindBar:
		return Panel{Kind: KindBar, Title: fmt.Sprintf("%s 柱狀圖", names[0]), Columns: names[:1]}, true
	case KindBox:
		cols := names
		if len(cols) > boxColumnLimit {
			cols = cols[:boxColumnLimit]
		}
		return Panel{Kind: KindBox, Title: "盒鬚圖", Columns: cols}, true
	case KindScatter:
		if len(names) < 2 {
			return Panel{}, false
		}
		return Panel{Kind: KindScatter, Title: fmt.Sprintf("%s vs %s", names[0], names[1]), Columns: names[:2]}, true
	case KindHeatmap:
		if len(names) < 2 {
			return Panel{}, false
		}
		cols := names
		if len(cols) > heatmapColumnLimit {
			cols = cols[:heatmapColumnLimit]
		}
		return Panel{Kind: KindHeatmap, Title: "相關性熱力圖", Columns: cols}, true
	case KindPie:
		for _, col := range d.Columns {
			if col.Kind == dataset.KindText {
				return Panel{Kind: KindPie, Title: fmt.Sprintf("%s 比例圖", col.Name), Columns: []string{col.Name}}, true
			}
		}
		return Panel{}, false
	}
	return Panel{}, false
}

// Summary renders the chat-facing description of a panel set.
func Summary(panels []Panel) string {
	var b strings.Builder
	b.WriteString("📊 圖表生成完成！\n\n✅ 已生成以下圖表:\n")
	for _, p := range panels {
		fmt.Fprintf(&b, "• %s: %s\n", p.Kind, p.Title)
	}
	return b.String()
}
