package session

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonlab/tablechat/internal/nlu"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRecordAppendsInOrder(t *testing.T) {
	c := New(WithClock(fixedClock(time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC))))

	c.Record("你好", nlu.Result{Intent: nlu.IntentGreeting, Confidence: 0.2}, nil)
	c.Record("分析數據", nlu.Result{Intent: nlu.IntentDataAnalysis, Confidence: 0.4}, nil)

	require.Equal(t, 2, c.Len())
	h := c.History(0)
	assert.Equal(t, "你好", h[0].Utterance)
	assert.Equal(t, "分析數據", h[1].Utterance)

	last, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, nlu.IntentDataAnalysis, last.Intent)
	assert.NotEqual(t, h[0].ID, h[1].ID)
}

func TestHistoryReturnsLastN(t *testing.T) {
	c := New()
	for i := 0; i < 7; i++ {
		c.Record(fmt.Sprintf("第%d句", i), nlu.Result{Intent: nlu.IntentUnknown}, nil)
	}
	h := c.History(3)
	require.Len(t, h, 3)
	assert.Equal(t, "第4句", h[0].Utterance)
	assert.Equal(t, "第6句", h[2].Utterance)
}

func TestUnboundedByDefault(t *testing.T) {
	c := New()
	for i := 0; i < 200; i++ {
		c.Record("x", nlu.Result{}, nil)
	}
	assert.Equal(t, 200, c.Len())
}

func TestMaxTurnsRingBuffer(t *testing.T) {
	c := New(WithMaxTurns(3))
	for i := 0; i < 5; i++ {
		c.Record(fmt.Sprintf("u%d", i), nlu.Result{}, nil)
	}
	require.Equal(t, 3, c.Len())
	h := c.History(0)
	assert.Equal(t, "u2", h[0].Utterance)
	assert.Equal(t, "u4", h[2].Utterance)
}

func TestSummarizeEmpty(t *testing.T) {
	c := New()
	assert.Equal(t, "尚未開始對話", c.Summarize())
}

func TestSummarizeDigest(t *testing.T) {
	ts := time.Date(2025, 3, 1, 14, 5, 9, 0, time.UTC)
	c := New(WithClock(fixedClock(ts)))
	for i := 0; i < 7; i++ {
		c.Record("分析薪資", nlu.Result{Intent: nlu.IntentDataAnalysis, Confidence: 0.2}, nil)
	}

	s := c.Summarize()
	assert.Contains(t, s, "對話記錄 (7 次互動)")
	assert.Contains(t, s, "[14:05:09] 分析薪資")
	assert.Contains(t, s, "意圖: data_analysis")
	// only the last five turns appear
	assert.Equal(t, 5, strings.Count(s, "意圖:"))
}

func TestSummarizeTruncatesLongUtterances(t *testing.T) {
	c := New()
	long := strings.Repeat("長", 60)
	c.Record(long, nlu.Result{Intent: nlu.IntentUnknown}, nil)
	s := c.Summarize()
	assert.Contains(t, s, strings.Repeat("長", 50)+"...")
	assert.NotContains(t, s, strings.Repeat("長", 51))
}

func TestHistoryCopyIsIndependent(t *testing.T) {
	c := New()
	c.Record("原句", nlu.Result{}, nil)
	h := c.History(0)
	h[0].Utterance = "改寫"
	again := c.History(0)
	assert.Equal(t, "原句", again[0].Utterance)
}
