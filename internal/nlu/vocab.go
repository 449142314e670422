package nlu

// KeywordSet is one labeled keyword list for the classifier. Scan order
// across sets is significant: the first set to reach the best score wins.
type KeywordSet struct {
	Intent   Intent
	Keywords []string
}

// DefaultKeywordSets returns the classifier's keyword table. The order
// and contents are fixed; changing either changes tie-breaking.
func DefaultKeywordSets() []KeywordSet {
	return []KeywordSet{
		{IntentGreeting, []string{"你好", "嗨", "hello", "早安", "午安", "晚安"}},
		{IntentFileOpen, []string{"開啟", "打開", "載入", "讀取", "開檔案"}},
		{IntentDataAnalysis, []string{"分析", "統計", "計算", "數據", "資料"}},
		{IntentExcelWork, []string{"excel", "試算表", "表格", "工作表", "xlsx", "xls"}},
		{IntentChartCreate, []string{"圖表", "圖形", "視覺化", "繪圖", "chart"}},
		{IntentReportGenerate, []string{"報表", "報告", "總結", "摘要", "report"}},
		{IntentHelpRequest, []string{"幫忙", "協助", "教學", "怎麼", "如何", "help"}},
		{IntentFileSave, []string{"儲存", "存檔", "匯出", "輸出", "save", "export"}},
		{IntentDataClean, []string{"清理", "整理", "去重", "填充", "標準化"}},
		{IntentSearchFile, []string{"找", "搜尋", "尋找", "查找", "find", "search"}},
		{IntentCompareData, []string{"比較", "對比", "比對", "compare"}},
		{IntentTrendAnalysis, []string{"趨勢", "變化", "預測", "trend", "預估"}},
		{IntentProblemSolve, []string{"問題", "錯誤", "故障", "不會", "不懂", "problem"}},
	}
}

// Category names one of the six fixed entity vocabularies.
type Category string

const (
	CatFileTypes   Category = "file_types"
	CatTimePeriods Category = "time_periods"
	CatOperations  Category = "operations"
	CatChartTypes  Category = "chart_types"
	CatDepartments Category = "departments"
	CatDataFields  Category = "data_fields"
)

// Vocabulary is one category's term list, scanned in order.
type Vocabulary struct {
	Category Category
	Terms    []string
}

// DefaultVocabularies returns the entity vocabulary table.
func DefaultVocabularies() []Vocabulary {
	return []Vocabulary{
		{CatFileTypes, []string{"excel", "csv", "txt", "pdf", "docx", "xlsx", "xls"}},
		{CatTimePeriods, []string{"今天", "昨天", "本週", "上週", "本月", "上月", "今年", "去年"}},
		{CatOperations, []string{"求和", "平均", "最大", "最小", "計數", "百分比"}},
		{CatChartTypes, []string{"折線圖", "柱狀圖", "圓餅圖", "散佈圖", "盒鬚圖"}},
		{CatDepartments, []string{"業務", "技術", "行政", "財務", "人資", "客服"}},
		{CatDataFields, []string{"薪資", "業績", "銷售", "成本", "利潤", "數量"}},
	}
}
