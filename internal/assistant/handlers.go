package assistant

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/halcyonlab/tablechat/internal/chart"
	"github.com/halcyonlab/tablechat/internal/clean"
	"github.com/halcyonlab/tablechat/internal/files"
	"github.com/halcyonlab/tablechat/internal/nlu"
	"github.com/halcyonlab/tablechat/internal/stats"
)

// num renders figures with thousand separators for the Chinese
// response templates.
var num = message.NewPrinter(language.TraditionalChinese)

var greetings = []string{
	"您好！我是您的專業數據分析助手。今天我可以幫您處理什麼工作呢？",
	"嗨！很高興為您服務。我可以協助您分析數據、處理Excel檔案、生成報表等工作。",
	"您好！無論是數據分析、檔案處理，還是複雜的業務問題，我都能幫您解決。",
}

func (a *Assistant) handleGreeting() string {
	return greetings[a.rng.Intn(len(greetings))]
}

func (a *Assistant) handleFileOpen(entities nlu.Entities) string {
	var b strings.Builder
	b.WriteString("我來幫您開啟檔案。")

	switch {
	case entities.Has(nlu.CatFileTypes, "excel", "xlsx"):
		b.WriteString("\n\n📊 Excel檔案處理：\n")
		b.WriteString("• 我可以讀取工作表內容\n")
		b.WriteString("• 進行數據清理和分析\n")
		b.WriteString("• 生成統計報表和圖表\n\n")
		b.WriteString("請告訴我您想要進行什麼具體操作？")
	case entities.Has(nlu.CatFileTypes, "csv"):
		b.WriteString("\n\n📄 CSV檔案處理：\n")
		b.WriteString("• 自動檢測編碼格式\n")
		b.WriteString("• 數據結構分析\n")
		b.WriteString("• 轉換為Excel格式\n")
	default:
		b.WriteString("\n\n請問您要開啟什麼類型的檔案？我支援：\n")
		b.WriteString("• Excel檔案 (.xlsx, .xls)\n")
		b.WriteString("• CSV檔案 (.csv)\n")
		b.WriteString("• 文字檔案 (.txt)\n")
	}

	b.WriteString("\n\n[正在開啟檔案選擇器...]")
	if err := a.host.OpenFilePicker(); err != nil {
		a.log.Warn("file picker failed", "error", err)
	}
	return b.String()
}

func (a *Assistant) handleDataAnalysis(entities nlu.Entities, utterance string) string {
	var b strings.Builder
	b.WriteString("🔍 我來協助您進行數據分析。\n\n")

	d := a.host.Dataset()
	if d == nil || d.Cols() == 0 {
		b.WriteString("請先載入數據檔案，然後我就能為您進行各種分析。\n\n")
		b.WriteString("💡 建議步驟：\n")
		b.WriteString("1. 開啟Excel或CSV檔案\n")
		b.WriteString("2. 告訴我您想分析什麼\n")
		b.WriteString("3. 我會提供詳細的分析結果")
		return b.String()
	}

	fmt.Fprintf(&b, "📊 目前載入的數據：%d 行 × %d 欄\n\n", d.Rows(), d.Cols())

	text := nlu.Normalize(utterance)
	operations := entities[nlu.CatOperations]
	switch {
	case entities.Has(nlu.CatDataFields, "薪資") || strings.Contains(text, "薪資"):
		b.WriteString(a.analyzeSalary())
	case entities.Has(nlu.CatDataFields, "業績", "銷售"):
		b.WriteString(a.analyzeSales())
	case len(operations) > 0:
		b.WriteString(a.performOperations(operations))
	default:
		b.WriteString("我可以為您進行以下分析：\n")
		b.WriteString("• 📈 描述性統計：平均值、中位數、標準差\n")
		b.WriteString("• 📊 相關性分析：變數間的關聯程度\n")
		b.WriteString("• 🔍 異常值檢測：識別數據中的異常點\n")
		b.WriteString("• 📋 分組統計：按類別進行統計分析\n\n")
		b.WriteString("請告訴我您想要哪種分析？")
	}
	return b.String()
}

func (a *Assistant) analyzeSalary() string {
	d := a.host.Dataset()
	var b strings.Builder
	b.WriteString("💰 薪資數據分析結果：\n\n")

	sum := stats.Describe(d)
	byName := make(map[string]stats.ColumnSummary, len(sum.Columns))
	for _, cs := range sum.Columns {
		byName[cs.Name] = cs
	}

	salaryCols := d.FindColumns("薪資", "薪水", "工資", "salary")
	for _, name := range salaryCols {
		cs, ok := byName[name]
		if !ok || cs.Numeric == nil {
			continue
		}
		fmt.Fprintf(&b, "📊 %s統計：\n", name)
		num.Fprintf(&b, "• 平均薪資：%.0f 元\n", cs.Numeric.Mean)
		num.Fprintf(&b, "• 中位數：%.0f 元\n", cs.Numeric.Median)
		num.Fprintf(&b, "• 最低薪資：%.0f 元\n", cs.Numeric.Min)
		num.Fprintf(&b, "• 最高薪資：%.0f 元\n", cs.Numeric.Max)
		num.Fprintf(&b, "• 標準差：%.0f 元\n\n", cs.Numeric.Std)
	}

	deptCols := d.FindColumns("部門", "dept", "department", "單位")
	if len(deptCols) > 0 && len(salaryCols) > 0 {
		groupIdx := d.ColumnIndex(deptCols[0])
		valueIdx := d.ColumnIndex(salaryCols[0])
		groups := stats.GroupMeans(d, groupIdx, valueIdx)
		if len(groups) > 0 {
			b.WriteString("🏢 部門薪資分析：\n")
			for _, g := range groups {
				num.Fprintf(&b, "• %s：平均 %.0f 元 (%d 人)\n", g.Key, g.Mean, g.Count)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("💡 建議進一步分析：\n")
	b.WriteString("• 薪資分布圖表\n")
	b.WriteString("• 部門間薪資比較\n")
	b.WriteString("• 薪資成長趨勢分析")
	return b.String()
}

func (a *Assistant) analyzeSales() string {
	d := a.host.Dataset()
	var b strings.Builder
	b.WriteString("📊 銷售數據分析結果：\n\n")

	for _, name := range d.FindColumns("銷售", "業績", "sales", "營收", "收入") {
		idx := d.ColumnIndex(name)
		vals := d.NumericValues(idx)
		if len(vals) == 0 {
			continue
		}
		var total float64
		for _, v := range vals {
			total += v
		}
		fmt.Fprintf(&b, "💼 %s統計：\n", name)
		num.Fprintf(&b, "• 總銷售額：%.0f\n", total)
		num.Fprintf(&b, "• 平均銷售額：%.0f\n", total/float64(len(vals)))
		fmt.Fprintf(&b, "• 銷售筆數：%d 筆\n\n", d.Rows())
	}

	b.WriteString("📈 可進行的進階分析：\n")
	b.WriteString("• 銷售趨勢分析\n")
	b.WriteString("• 產品/客戶排行榜\n")
	b.WriteString("• 季節性分析\n")
	b.WriteString("• 目標達成率分析")
	return b.String()
}

// performOperations computes the requested aggregates over at most
// the first three numeric columns.
func (a *Assistant) performOperations(operations []string) string {
	d := a.host.Dataset()
	var b strings.Builder
	b.WriteString("🧮 計算結果：\n\n")

	numIdx := d.NumericColumns()
	if len(numIdx) > 3 {
		numIdx = numIdx[:3]
	}

	for _, op := range operations {
		switch op {
		case "求和":
			for _, idx := range numIdx {
				var total float64
				for _, v := range d.NumericValues(idx) {
					total += v
				}
				num.Fprintf(&b, "• %s 總和：%.2f\n", d.Columns[idx].Name, total)
			}
		case "平均":
			for _, idx := range numIdx {
				vals := d.NumericValues(idx)
				if len(vals) == 0 {
					continue
				}
				var total float64
				for _, v := range vals {
					total += v
				}
				num.Fprintf(&b, "• %s 平均：%.2f\n", d.Columns[idx].Name, total/float64(len(vals)))
			}
		case "最大":
			for _, idx := range numIdx {
				vals := d.NumericValues(idx)
				if len(vals) == 0 {
					continue
				}
				max := vals[0]
				for _, v := range vals[1:] {
					if v > max {
						max = v
					}
				}
				num.Fprintf(&b, "• %s 最大值：%.2f\n", d.Columns[idx].Name, max)
			}
		case "最小":
			for _, idx := range numIdx {
				vals := d.NumericValues(idx)
				if len(vals) == 0 {
					continue
				}
				min := vals[0]
				for _, v := range vals[1:] {
					if v < min {
						min = v
					}
				}
				num.Fprintf(&b, "• %s 最小值：%.2f\n", d.Columns[idx].Name, min)
			}
		case "計數":
			fmt.Fprintf(&b, "• 總記錄數：%d 筆\n", d.Rows())
		}
	}

	b.WriteString("\n✅ 計算完成！")
	return b.String()
}

func (a *Assistant) handleExcelWork(utterance string) string {
	text := nlu.Normalize(utterance)
	var b strings.Builder
	b.WriteString("📊 Excel專業處理服務\n\n")

	switch {
	case strings.Contains(text, "清理"):
		b.WriteString("🧹 數據清理服務：\n")
		b.WriteString("• 移除重複項\n• 填充缺失值\n• 格式標準化\n• 異常值處理\n\n")
	case strings.Contains(text, "分析"):
		b.WriteString("📈 數據分析服務：\n")
		b.WriteString("• 描述性統計\n• 相關性分析\n• 趨勢分析\n• 異常檢測\n\n")
	case strings.Contains(text, "圖表"):
		b.WriteString("📊 圖表製作服務：\n")
		b.WriteString("• 折線圖、柱狀圖\n• 散佈圖、盒鬚圖\n• 相關性熱力圖\n• 專業報表圖表\n\n")
	default:
		b.WriteString("我可以提供以下Excel服務：\n")
		b.WriteString("• 🧹 數據清理與整理\n")
		b.WriteString("• 📈 統計分析與計算\n")
		b.WriteString("• 📊 圖表製作與視覺化\n")
		b.WriteString("• 📋 專業報表生成\n")
		b.WriteString("• 💾 格式轉換與匯出\n\n")
	}

	b.WriteString("請告訴我您具體想要做什麼？我會提供專業的處理方案。")
	return b.String()
}

func (a *Assistant) handleChartCreate(entities nlu.Entities) string {
	var b strings.Builder
	b.WriteString("📊 圖表製作服務\n\n")

	var requested []chart.Kind
	if terms := entities[nlu.CatChartTypes]; len(terms) > 0 {
		fmt.Fprintf(&b, "正在為您準備 %s ...\n\n", strings.Join(terms, "、"))
		for _, term := range terms {
			if k, ok := chart.FromTerm(term); ok {
				requested = append(requested, k)
			}
		}
	}

	b.WriteString("我可以製作以下類型的圖表：\n")
	b.WriteString("• 📈 折線圖：適合顯示趨勢變化\n")
	b.WriteString("• 📊 柱狀圖：適合比較不同類別\n")
	b.WriteString("• 🥧 圓餅圖：適合顯示比例關係\n")
	b.WriteString("• 📉 散佈圖：適合分析相關性\n")
	b.WriteString("• 📋 盒鬚圖：適合顯示數據分布\n")
	b.WriteString("• 🔥 熱力圖：適合顯示相關矩陣\n\n")

	panels, err := chart.Suggest(a.host.Dataset(), requested...)
	if err != nil {
		b.WriteString("⚠️ 尚未載入含數值欄位的資料，請先開啟檔案再製作圖表。")
		return b.String()
	}

	b.WriteString(chart.Summary(panels))
	if err := a.host.RenderChart(panels); err != nil {
		a.log.Warn("chart rendering failed", "error", err)
	}
	return b.String()
}

func (a *Assistant) handleReportGenerate() string {
	var b strings.Builder
	b.WriteString("📋 專業報表生成服務\n\n")
	b.WriteString("我會為您創建包含以下內容的專業報表：\n\n")
	b.WriteString("📊 數據概況：基本統計資訊、資料完整性評估\n")
	b.WriteString("📈 深度分析：描述性統計、相關性分析、異常值檢測\n")
	b.WriteString("💡 專業建議：數據處理建議、後續分析方向\n\n")

	d := a.host.Dataset()
	if d == nil || d.Cols() == 0 {
		b.WriteString("請先載入資料檔案，我就能立即生成完整的分析報表。")
		return b.String()
	}

	b.WriteString("📝 正在生成專業報表...\n\n")
	b.WriteString(a.reports.Build(d, a.host.CurrentFile()))
	return b.String()
}

func (a *Assistant) handleHelpRequest(utterance string) string {
	text := nlu.Normalize(utterance)
	if strings.Contains(text, "怎麼") || strings.Contains(text, "如何") {
		switch {
		case strings.Contains(text, "excel"):
			return excelTutorial
		case strings.Contains(text, "分析"):
			return analysisTutorial
		case strings.Contains(text, "圖表"):
			return chartTutorial
		}
	}

	var b strings.Builder
	b.WriteString("💡 使用指南\n\n")
	b.WriteString("我能協助您處理各種數據工作：\n\n")
	b.WriteString("🗣️ 對話方式：\n")
	b.WriteString("• 直接說出您的需求，例如：\n")
	b.WriteString("  - \"幫我分析這個薪資表\"\n")
	b.WriteString("  - \"製作銷售業績圖表\"\n")
	b.WriteString("  - \"清理這份數據的重複項\"\n\n")
	b.WriteString("📊 專業服務：\n")
	b.WriteString("• Excel檔案處理與分析\n")
	b.WriteString("• 數據清理與統計分析\n")
	b.WriteString("• 圖表製作與報表生成\n")
	b.WriteString("• 複雜業務問題解決\n\n")
	b.WriteString("💬 互動技巧：\n")
	b.WriteString("• 描述具體需求而非籠統要求\n")
	b.WriteString("• 提供背景資訊幫助我理解\n")
	b.WriteString("• 隨時詢問不懂的地方\n\n")
	b.WriteString("有什麼具體問題想問我嗎？")
	return b.String()
}

func (a *Assistant) handleFileSave() string {
	var b strings.Builder
	b.WriteString("💾 檔案儲存與匯出\n\n")

	d := a.host.Dataset()
	if d == nil || d.Cols() == 0 {
		b.WriteString("目前沒有可以匯出的資料。請先載入並處理資料檔案。\n\n")
		b.WriteString("支援的匯出格式：\n")
		b.WriteString("• Excel (.xlsx)\n• CSV (.csv)\n• JSON (.json)")
		return b.String()
	}

	exportName := "分析結果." + a.exportFormat
	fmt.Fprintf(&b, "正在將目前的資料匯出為 %s 檔案...\n", strings.ToUpper(a.exportFormat))
	if err := a.host.ExportDataset(exportName); err != nil {
		a.log.Warn("export failed", "error", err)
		b.WriteString("⚠️ 匯出未完成，請確認目錄權限後重試。")
		return b.String()
	}
	fmt.Fprintf(&b, "✅ 已匯出: %s", exportName)
	return b.String()
}

func (a *Assistant) handleDataClean() string {
	d := a.host.Dataset()
	if d == nil || d.Cols() == 0 {
		return "🧹 數據清理服務\n\n請先載入資料檔案，我會自動移除重複項並填補缺失值。"
	}

	cleaned, rep, err := clean.Clean(d)
	if err != nil {
		return fmt.Sprintf("⚠️ 清理失敗: %v", err)
	}
	a.host.SetDataset(cleaned)
	return rep.Render()
}

func (a *Assistant) handleSearchFile(entities nlu.Entities) string {
	var keywords []string
	for _, cat := range []nlu.Category{nlu.CatDataFields, nlu.CatDepartments, nlu.CatTimePeriods} {
		keywords = append(keywords, entities[cat]...)
	}
	extensions := extensionsForTypes(entities[nlu.CatFileTypes])

	var b strings.Builder
	b.WriteString("🔍 檔案搜尋\n\n")

	results, err := files.Search(a.host.SearchRoot(), keywords, extensions, a.searchLimit)
	if err != nil {
		a.log.Warn("file search failed", "error", err)
	}
	if len(results) == 0 {
		b.WriteString("沒有找到符合的檔案。\n\n")
		b.WriteString("💡 搜尋提示：\n")
		b.WriteString("• 說出檔名中的關鍵字，例如 \"找薪資相關的Excel檔\"\n")
		b.WriteString("• 指定檔案類型可縮小範圍 (excel、csv)")
		return b.String()
	}

	fmt.Fprintf(&b, "找到 %d 個檔案：\n", len(results))
	for _, p := range results {
		fmt.Fprintf(&b, "• %s\n", filepath.Base(p))
	}
	b.WriteString("\n說 \"幫我開啟檔案\" 即可載入其中一個進行分析。")
	return b.String()
}

func (a *Assistant) handleCompareData(entities nlu.Entities) string {
	var b strings.Builder
	b.WriteString("📊 數據比較分析\n\n")

	if periods := entities[nlu.CatTimePeriods]; len(periods) > 0 {
		b.WriteString("⏰ 時間比較分析：\n")
		fmt.Fprintf(&b, "正在準備 %s 的比較分析...\n\n", strings.Join(periods, "、"))
	}
	if departments := entities[nlu.CatDepartments]; len(departments) > 0 {
		b.WriteString("🏢 部門比較分析：\n")
		fmt.Fprintf(&b, "正在比較 %s 部門的數據...\n\n", strings.Join(departments, "、"))
	}

	b.WriteString("我可以進行以下比較分析：\n")
	b.WriteString("• 📅 期間對比：本月vs上月、今年vs去年\n")
	b.WriteString("• 🏢 部門對比：各部門指標比較\n")
	b.WriteString("• 📊 指標對比：多個KPI的綜合比較\n")
	b.WriteString("• 📈 趨勢對比：不同期間的變化趨勢\n\n")
	b.WriteString("💡 比較分析將包含：\n")
	b.WriteString("• 絕對數值比較\n")
	b.WriteString("• 成長率計算\n")
	b.WriteString("• 差異分析\n")
	b.WriteString("• 視覺化圖表")
	return b.String()
}

func (a *Assistant) handleTrendAnalysis() string {
	var b strings.Builder
	b.WriteString("📈 趨勢分析服務\n\n")
	b.WriteString("我將為您進行深度趨勢分析：\n\n")
	b.WriteString("📊 趨勢識別：\n")
	b.WriteString("• 上升/下降趨勢\n")
	b.WriteString("• 季節性模式\n")
	b.WriteString("• 週期性變化\n")
	b.WriteString("• 異常波動點\n\n")
	b.WriteString("🔮 預測模型：\n")
	b.WriteString("• 短期趨勢預測\n")
	b.WriteString("• 中期發展預估\n")
	b.WriteString("• 信心區間計算\n\n")
	b.WriteString("📋 分析報告：\n")
	b.WriteString("• 趨勢總結\n")
	b.WriteString("• 關鍵轉折點\n")
	b.WriteString("• 業務影響評估\n")
	b.WriteString("• 行動建議\n\n")
	b.WriteString("請提供您的時間序列數據，我將進行專業的趨勢分析。")
	return b.String()
}

func (a *Assistant) handleProblemSolve() string {
	var b strings.Builder
	b.WriteString("🔧 問題診斷與解決\n\n")
	b.WriteString("讓我幫您診斷和解決問題：\n\n")
	b.WriteString("🔍 常見問題診斷：\n")
	b.WriteString("• 檔案無法開啟\n")
	b.WriteString("• 數據格式錯誤\n")
	b.WriteString("• 計算結果異常\n")
	b.WriteString("• 圖表顯示問題\n\n")
	b.WriteString("💡 解決方案：\n")
	b.WriteString("• 逐步問題分析\n")
	b.WriteString("• 多種解決方案\n")
	b.WriteString("• 預防措施建議\n\n")
	b.WriteString("請詳細描述您遇到的問題：\n")
	b.WriteString("• 在什麼情況下發生？\n")
	b.WriteString("• 具體的錯誤訊息？\n")
	b.WriteString("• 期望的結果是什麼？\n\n")
	b.WriteString("我會根據問題提供最適合的解決方案。")
	return b.String()
}

func (a *Assistant) handleUnknown() string {
	var b strings.Builder
	b.WriteString("🤔 我正在學習理解您的需求...\n\n")
	b.WriteString("為了更好地協助您，請告訴我：\n\n")
	b.WriteString("💼 您遇到的工作問題：\n")
	b.WriteString("• 需要處理什麼類型的檔案？\n")
	b.WriteString("• 想要進行什麼操作？\n")
	b.WriteString("• 期望得到什麼結果？\n\n")
	b.WriteString("🎯 您可以這樣說：\n")
	b.WriteString("• \"我有一份員工薪資表，想分析各部門薪資水準\"\n")
	b.WriteString("• \"需要清理這個CSV檔案的重複資料\"\n")
	b.WriteString("• \"幫我製作銷售業績的趨勢圖表\"\n\n")
	b.WriteString("💬 或者直接問我：\n")
	b.WriteString("• \"你能幫我做什麼？\"\n")
	b.WriteString("• \"如何分析數據？\"\n")
	b.WriteString("• \"怎麼製作圖表？\"")
	return b.String()
}

// extensionsForTypes maps file-type entity terms to search suffixes.
func extensionsForTypes(types []string) []string {
	var exts []string
	seen := make(map[string]struct{})
	add := func(list ...string) {
		for _, e := range list {
			if _, ok := seen[e]; !ok {
				seen[e] = struct{}{}
				exts = append(exts, e)
			}
		}
	}
	for _, t := range types {
		switch t {
		case "excel", "xlsx":
			add(".xlsx")
		case "xls":
			add(".xls")
		case "csv":
			add(".csv")
		case "txt":
			add(".txt")
		case "pdf":
			add(".pdf")
		case "docx":
			add(".docx")
		}
	}
	return exts
}
