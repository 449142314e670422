package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKnownIntents(t *testing.T) {
	c := NewClassifier(DefaultKeywordSets())

	tests := []struct {
		utterance string
		want      Intent
	}{
		{"你好", IntentGreeting},
		{"Hello!", IntentGreeting},
		{"幫我開啟檔案", IntentFileOpen},
		{"分析載入的數據", IntentDataAnalysis},
		{"繪製圖表", IntentChartCreate},
		{"生成報表", IntentReportGenerate},
		{"幫我清理去重", IntentDataClean},
		{"搜尋薪資檔案", IntentSearchFile},
		{"比較本月與上月", IntentCompareData},
		{"預測未來趨勢", IntentTrendAnalysis},
		{"儲存處理結果", IntentFileSave},
	}
	for _, tc := range tests {
		got := c.Classify(tc.utterance)
		assert.Equal(t, tc.want, got.Intent, "utterance %q", tc.utterance)
		assert.Greater(t, got.Confidence, 0.0, "utterance %q", tc.utterance)
		assert.LessOrEqual(t, got.Confidence, 1.0)
	}
}

func TestClassifyNoMatchIsUnknown(t *testing.T) {
	c := NewClassifier(DefaultKeywordSets())
	got := c.Classify("asdkjasd")
	assert.Equal(t, IntentUnknown, got.Intent)
	assert.Equal(t, 0.0, got.Confidence)
}

func TestClassifyConfidenceIsCoverageRatio(t *testing.T) {
	c := NewClassifier(DefaultKeywordSets())
	// one of six greeting keywords
	got := c.Classify("你好")
	assert.Equal(t, IntentGreeting, got.Intent)
	assert.InDelta(t, 1.0/6.0, got.Confidence, 1e-12)
}

func TestClassifyFirstSeenWinsTies(t *testing.T) {
	sets := []KeywordSet{
		{IntentFileOpen, []string{"alpha", "beta"}},
		{IntentFileSave, []string{"alpha", "gamma"}},
	}
	c := NewClassifier(sets)
	got := c.Classify("alpha")
	// both score 1/2; the earlier set keeps the win
	assert.Equal(t, IntentFileOpen, got.Intent)
	assert.InDelta(t, 0.5, got.Confidence, 1e-12)
}

func TestClassifySmallSetBiasPreserved(t *testing.T) {
	sets := []KeywordSet{
		{IntentDataAnalysis, []string{"one", "two", "three", "four"}},
		{IntentCompareData, []string{"five"}},
	}
	c := NewClassifier(sets)
	// one match each: 1/4 vs 1/1, so the small set wins outright
	got := c.Classify("one five")
	assert.Equal(t, IntentCompareData, got.Intent)
	assert.Equal(t, 1.0, got.Confidence)
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier(DefaultKeywordSets())
	first := c.Classify("分析各部門平均薪資")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Classify("分析各部門平均薪資"))
	}
}

func TestClassifyNormalizesCase(t *testing.T) {
	c := NewClassifier(DefaultKeywordSets())
	assert.Equal(t, c.Classify("HELLO"), c.Classify("  hello  "))
}

func TestExtractGroupsByCategory(t *testing.T) {
	e := NewExtractor(DefaultVocabularies())
	got := e.Extract("幫我分析Excel裡各部門的薪資，算平均和求和")

	require.Contains(t, got, CatFileTypes)
	assert.Equal(t, []string{"excel"}, got[CatFileTypes])
	require.Contains(t, got, CatDataFields)
	assert.Equal(t, []string{"薪資"}, got[CatDataFields])
	require.Contains(t, got, CatOperations)
	assert.Equal(t, []string{"求和", "平均"}, got[CatOperations])
}

func TestExtractOmitsEmptyCategories(t *testing.T) {
	e := NewExtractor(DefaultVocabularies())
	got := e.Extract("asdkjasd")
	assert.Empty(t, got)
}

func TestExtractScanOrderWithinCategory(t *testing.T) {
	e := NewExtractor(DefaultVocabularies())
	got := e.Extract("本月比上月多，去年同期呢")
	assert.Equal(t, []string{"本月", "上月", "去年"}, got[CatTimePeriods])
}

func TestExtractPure(t *testing.T) {
	e := NewExtractor(DefaultVocabularies())
	a := e.Extract("excel 薪資")
	b := e.Extract("excel 薪資")
	assert.Equal(t, a, b)
}

func TestEntitiesHas(t *testing.T) {
	ents := Entities{CatFileTypes: {"excel", "csv"}}
	assert.True(t, ents.Has(CatFileTypes))
	assert.True(t, ents.Has(CatFileTypes, "csv"))
	assert.False(t, ents.Has(CatFileTypes, "pdf"))
	assert.False(t, ents.Has(CatDepartments))
}

func TestIntentStringCoversAllLabels(t *testing.T) {
	all := []Intent{
		IntentUnknown, IntentGreeting, IntentFileOpen, IntentDataAnalysis,
		IntentExcelWork, IntentChartCreate, IntentReportGenerate,
		IntentHelpRequest, IntentFileSave, IntentDataClean, IntentSearchFile,
		IntentCompareData, IntentTrendAnalysis, IntentProblemSolve,
	}
	seen := make(map[string]bool)
	for _, in := range all {
		name := in.String()
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate label %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, 14)
}
