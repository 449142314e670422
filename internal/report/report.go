// Package report assembles the full analysis document: file metadata,
// structure overview, numeric and categorical statistics, quality
// checks, correlations and a rule-driven recommendation list.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/halcyonlab/tablechat/internal/dataset"
	"github.com/halcyonlab/tablechat/internal/stats"
)

var (
	divider = strings.Repeat("═", 80)
	rule    = strings.Repeat("─", 80)
)

const (
	// memoryAdviceBytes triggers the optimization suggestion.
	memoryAdviceBytes = 100 << 20
	// categoricalSectionLimit caps how many text columns get a
	// frequency table of their own.
	categoricalSectionLimit = 3
)

// FileMeta describes the source file for the header section. Zero
// values render as placeholders, so a report can be produced for an
// in-memory dataset with no backing file.
type FileMeta struct {
	Path      string
	Name      string
	SizeBytes int64
	ModTime   time.Time
}

// Builder renders analysis reports. The zero value uses the wall
// clock; tests inject a fixed one.
type Builder struct {
	Now func() time.Time
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// Build produces the report text. A nil dataset degrades to the file
// metadata and generic suggestions; everything else appears only when
// the data supports it.
func (b *Builder) Build(d *dataset.Dataset, meta FileMeta) string {
	var sb strings.Builder
	b.writeHeader(&sb, meta)
	writeFileInfo(&sb, meta)

	var sum stats.Summary
	loaded := d != nil && d.Cols() > 0
	if loaded {
		sum = stats.Describe(d)
		writeStructure(&sb, d, sum)
		writeNumeric(&sb, sum)
		writeCategorical(&sb, sum)
		writeQuality(&sb, d, sum)
		writeCorrelations(&sb, sum)
	}
	writeSuggestions(&sb, d, sum, loaded)
	b.writeFooter(&sb)
	return sb.String()
}

func (b *Builder) writeHeader(sb *strings.Builder, meta FileMeta) {
	sb.WriteString("📋 專業分析報表\n")
	sb.WriteString(divider + "\n")
	fmt.Fprintf(sb, "📅 生成時間: %s\n", b.now().Format("2006年01月02日 15:04:05"))
	path := meta.Path
	if path == "" {
		path = "N/A"
	}
	fmt.Fprintf(sb, "📁 檔案路徑: %s\n", path)
}

func writeFileInfo(sb *strings.Builder, meta FileMeta) {
	sb.WriteString("\n📊 1. 檔案基本資訊\n" + rule + "\n")
	name := meta.Name
	if name == "" {
		name = "N/A"
	}
	fmt.Fprintf(sb, "• 檔案名稱: %s\n", name)
	fmt.Fprintf(sb, "• 檔案大小: %s\n", FormatFileSize(meta.SizeBytes))
	if !meta.ModTime.IsZero() {
		fmt.Fprintf(sb, "• 修改時間: %s\n", meta.ModTime.Format("2006-01-02 15:04:05"))
	}
}

func writeStructure(sb *strings.Builder, d *dataset.Dataset, sum stats.Summary) {
	sb.WriteString("\n📈 2. 資料結構分析\n" + rule + "\n")
	fmt.Fprintf(sb, "• 總記錄數: %d 筆\n", sum.Rows)
	fmt.Fprintf(sb, "• 總欄位數: %d 個\n", sum.Cols)
	fmt.Fprintf(sb, "• 記憶體使用: %s\n", FormatFileSize(d.ApproxBytes()))
	fmt.Fprintf(sb, "• 資料密度: %.1f%%\n", sum.Completeness*100)

	sb.WriteString("\n📋 2.1 欄位詳細資訊\n")
	for _, cs := range sum.Columns {
		fmt.Fprintf(sb, "• %s | 類型: %s | 非空值: %d | 缺失率: %.1f%% | 唯一值: %d\n",
			cs.Name, cs.Kind, cs.NonNull, cs.MissingPct, cs.Distinct)
	}
}

func writeNumeric(sb *strings.Builder, sum stats.Summary) {
	wrote := false
	for _, cs := range sum.Columns {
		if cs.Numeric == nil {
			continue
		}
		if !wrote {
			sb.WriteString("\n🔢 3. 數值統計分析\n" + rule + "\n")
			wrote = true
		}
		n := cs.Numeric
		fmt.Fprintf(sb, "• %s:\n", cs.Name)
		fmt.Fprintf(sb, "  平均值: %.2f | 標準差: %.2f\n", n.Mean, n.Std)
		fmt.Fprintf(sb, "  最小值: %.2f | 第一四分位數: %.2f | 中位數: %.2f | 第三四分位數: %.2f | 最大值: %.2f\n",
			n.Min, n.Q1, n.Median, n.Q3, n.Max)
		if n.Mean != 0 {
			fmt.Fprintf(sb, "  變異係數: %.2f%%\n", n.Std/n.Mean*100)
		}
	}
}

func writeCategorical(sb *strings.Builder, sum stats.Summary) {
	wrote := 0
	for _, cs := range sum.Columns {
		if cs.Kind != dataset.KindText || wrote >= categoricalSectionLimit {
			continue
		}
		if wrote == 0 {
			sb.WriteString("\n📝 4. 分類統計分析\n" + rule + "\n")
		}
		wrote++
		fmt.Fprintf(sb, "• %s (前%d項):\n", cs.Name, stats.TopValueCount)
		for _, vc := range cs.TopValues {
			pct := 0.0
			if sum.Rows > 0 {
				pct = float64(vc.Count) / float64(sum.Rows) * 100
			}
			fmt.Fprintf(sb, "  - %s: %d (%.1f%%)\n", vc.Value, vc.Count, pct)
		}
	}
}

func writeQuality(sb *strings.Builder, d *dataset.Dataset, sum stats.Summary) {
	sb.WriteString("\n🎯 5. 資料品質評估\n" + rule + "\n")
	total := sum.Rows * sum.Cols
	missing := d.MissingCells()
	fmt.Fprintf(sb, "• 總資料點: %d 個\n", total)
	fmt.Fprintf(sb, "• 有效資料點: %d 個\n", total-missing)
	fmt.Fprintf(sb, "• 缺失資料點: %d 個\n", missing)
	fmt.Fprintf(sb, "• 完整性評分: %.1f%%\n", sum.Completeness*100)

	flagged := false
	for _, cs := range sum.Columns {
		if cs.Outliers == 0 {
			continue
		}
		if !flagged {
			sb.WriteString("• 發現異常值:\n")
			flagged = true
		}
		pct := float64(cs.Outliers) / float64(sum.Rows) * 100
		fmt.Fprintf(sb, "  - %s: %d 個異常值 (%.1f%%)\n", cs.Name, cs.Outliers, pct)
	}
	if !flagged {
		sb.WriteString("• ✅ 未發現顯著異常值\n")
	}

	dups := duplicateRows(d)
	pct := 0.0
	if sum.Rows > 0 {
		pct = float64(dups) / float64(sum.Rows) * 100
	}
	fmt.Fprintf(sb, "• 重複記錄: %d 筆 (%.1f%%)\n", dups, pct)
}

func writeCorrelations(sb *strings.Builder, sum stats.Summary) {
	if len(sum.Correlations) == 0 {
		return
	}
	sb.WriteString("\n📊 6. 相關性分析\n" + rule + "\n")
	strong := false
	for _, p := range sum.Correlations {
		if !p.Strong {
			continue
		}
		if !strong {
			sb.WriteString("• 發現強相關性 (|r| > 0.7):\n")
			strong = true
		}
		fmt.Fprintf(sb, "  - %s ↔ %s: %.3f (%s)\n", p.A, p.B, p.R, p.Direction())
	}
	if !strong {
		sb.WriteString("• ✅ 未發現強相關性變數\n")
	}
}

// writeSuggestions evaluates the recommendation rules in a fixed
// order and always ends with the export suggestion.
func writeSuggestions(sb *strings.Builder, d *dataset.Dataset, sum stats.Summary, loaded bool) {
	sb.WriteString("\n💡 7. 專業建議與後續行動\n" + rule + "\n")
	var lines []string
	if !loaded {
		lines = append(lines, "建議開啟支援的資料檔案格式進行分析")
	} else {
		numeric := len(d.NumericColumns())
		if sum.Completeness < 0.95 {
			lines = append(lines, "資料清理: 缺失值比例較高，建議進行缺失值處理和資料清理")
		}
		if dups := duplicateRows(d); dups > 0 {
			lines = append(lines, fmt.Sprintf("去重處理: 發現%d筆重複資料，建議進行去重操作", dups))
		}
		if float64(sum.TotalOutliers) > float64(sum.Rows)*0.05 {
			lines = append(lines, "異常值處理: 檢測到較多異常值，建議進行異常值分析和處理")
		}
		if numeric > 1 {
			lines = append(lines, "統計分析: 適合進行描述性統計、相關性分析和回歸分析")
		}
		if numeric >= 2 {
			lines = append(lines, "視覺化分析: 建議創建散佈圖、直方圖和相關性熱力圖")
		}
		if sum.Rows > 100 && numeric > 2 {
			lines = append(lines, "進階分析: 資料規模適合進行機器學習和預測模型建構")
		}
		if d.ApproxBytes() > memoryAdviceBytes {
			lines = append(lines, "效能優化: 檔案較大，建議進行資料類型優化以減少記憶體使用")
		}
		lines = append(lines, "報表輸出: 建議匯出處理結果為Excel格式，便於後續使用和分享")
	}
	for i, line := range lines {
		fmt.Fprintf(sb, "7.%d %s\n", i+1, line)
	}
}

func (b *Builder) writeFooter(sb *strings.Builder) {
	sb.WriteString("\n" + divider + "\n")
	fmt.Fprintf(sb, "📋 報表生成完成 | ⏰ 分析時間: %s\n", b.now().Format("2006-01-02 15:04:05"))
}

// duplicateRows counts rows that repeat an earlier full row.
func duplicateRows(d *dataset.Dataset) int {
	seen := make(map[string]struct{}, d.Rows())
	dups := 0
	for i := 0; i < d.Rows(); i++ {
		key := d.RowKey(i)
		if _, ok := seen[key]; ok {
			dups++
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}

// FormatFileSize renders a byte count with binary unit steps.
func FormatFileSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	case n < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	default:
		return fmt.Sprintf("%.1f GB", float64(n)/(1024*1024*1024))
	}
}
