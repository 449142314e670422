package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonlab/tablechat/internal/dataset"
)

func salaryData(t *testing.T) *dataset.Dataset {
	t.Helper()
	return dataset.New(
		[]string{"姓名", "部門", "薪資", "年齡"},
		[][]string{
			{"張三", "業務", "50000", "30"},
			{"李四", "業務", "52000", "35"},
			{"王五", "工程", "70000", "40"},
			{"趙六", "工程", "72000", "45"},
			{"陳七", "人資", "48000", "50"},
		},
	)
}

func TestDescribeBasics(t *testing.T) {
	s := Describe(salaryData(t))

	assert.Equal(t, 5, s.Rows)
	assert.Equal(t, 4, s.Cols)
	require.Len(t, s.Columns, 4)

	salary := s.Columns[2]
	assert.Equal(t, "薪資", salary.Name)
	assert.Equal(t, dataset.KindNumeric, salary.Kind)
	assert.Equal(t, 5, salary.NonNull)
	assert.Zero(t, salary.Missing)
	assert.Equal(t, 5, salary.Distinct)
	require.NotNil(t, salary.Numeric)
	assert.InDelta(t, 58400, salary.Numeric.Mean, 1e-9)
	assert.InDelta(t, 48000, salary.Numeric.Min, 1e-9)
	assert.InDelta(t, 72000, salary.Numeric.Max, 1e-9)
	assert.InDelta(t, 52000, salary.Numeric.Median, 1e-9)

	dept := s.Columns[1]
	assert.Equal(t, dataset.KindText, dept.Kind)
	assert.Nil(t, dept.Numeric)
	require.NotEmpty(t, dept.TopValues)
	assert.Equal(t, 2, dept.TopValues[0].Count)
}

func TestDescribeMissingAndCompleteness(t *testing.T) {
	d := dataset.New(
		[]string{"a", "b"},
		[][]string{
			{"1", "x"},
			{"", "y"},
			{"3", ""},
			{"4", "y"},
		},
	)
	s := Describe(d)

	assert.InDelta(t, 25.0, s.Columns[0].MissingPct, 1e-9)
	assert.InDelta(t, 25.0, s.Columns[1].MissingPct, 1e-9)
	// 6 of 8 cells present.
	assert.InDelta(t, 0.75, s.Completeness, 1e-9)
}

func TestQuantileInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1.75, Quantile(sorted, 0.25), 1e-9)
	assert.InDelta(t, 2.5, Quantile(sorted, 0.5), 1e-9)
	assert.InDelta(t, 3.25, Quantile(sorted, 0.75), 1e-9)
	assert.InDelta(t, 1, Quantile(sorted, 0), 1e-9)
	assert.InDelta(t, 4, Quantile(sorted, 1), 1e-9)
	assert.InDelta(t, 7, Quantile([]float64{7}, 0.5), 1e-9)
}

func TestSampleStd(t *testing.T) {
	mean, std := meanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5, mean, 1e-9)
	// Sample variance 32/7.
	assert.InDelta(t, 2.13808993, std, 1e-6)

	_, std = meanStd([]float64{3})
	assert.Zero(t, std)
}

func TestOutliersStrictFences(t *testing.T) {
	// Q1=2.25, Q3=4.75, fences [-1.5, 8.5]. Only 100 falls outside.
	vals := []float64{1, 2, 3, 4, 5, 100}
	assert.Equal(t, 1, OutlierCount(vals))
	assert.Zero(t, OutlierCount([]float64{5, 5, 5, 5}))
	assert.Zero(t, OutlierCount(nil))
}

func TestCorrelations(t *testing.T) {
	d := dataset.New(
		[]string{"x", "y", "z"},
		[][]string{
			{"1", "2", "9"},
			{"2", "4", "1"},
			{"3", "6", "8"},
			{"4", "8", "2"},
		},
	)
	s := Describe(d)
	require.Len(t, s.Correlations, 3)

	xy := s.Correlations[0]
	assert.Equal(t, "x", xy.A)
	assert.Equal(t, "y", xy.B)
	assert.InDelta(t, 1.0, xy.R, 1e-9)
	assert.True(t, xy.Strong)
	assert.Equal(t, "正相關", xy.Direction())
}

func TestCorrelationSkipsMissingRows(t *testing.T) {
	d := dataset.New(
		[]string{"x", "y"},
		[][]string{
			{"1", "10"},
			{"2", ""},
			{"3", "30"},
			{"4", "40"},
		},
	)
	s := Describe(d)
	require.Len(t, s.Correlations, 1)
	assert.InDelta(t, 1.0, s.Correlations[0].R, 1e-9)
}

func TestCorrelationConstantColumnOmitted(t *testing.T) {
	d := dataset.New(
		[]string{"x", "c"},
		[][]string{{"1", "5"}, {"2", "5"}, {"3", "5"}},
	)
	assert.Empty(t, Describe(d).Correlations)
}

func TestNegativeCorrelationLabel(t *testing.T) {
	p := CorrPair{R: -0.9}
	assert.Equal(t, "負相關", p.Direction())
}

func TestDescribeEmptyDataset(t *testing.T) {
	s := Describe(&dataset.Dataset{})
	assert.Zero(t, s.Rows)
	assert.Empty(t, s.Columns)
	assert.Empty(t, s.Correlations)
}

func TestGroupMeans(t *testing.T) {
	d := salaryData(t)
	groups := GroupMeans(d, 1, 2)
	require.Len(t, groups, 3)

	// Key order.
	assert.Equal(t, "人資", groups[0].Key)
	assert.InDelta(t, 48000, groups[0].Mean, 1e-9)
	assert.Equal(t, "工程", groups[1].Key)
	assert.InDelta(t, 71000, groups[1].Mean, 1e-9)
	assert.Equal(t, "業務", groups[2].Key)
	assert.InDelta(t, 51000, groups[2].Mean, 1e-9)
	assert.Equal(t, 2, groups[2].Count)
}

func TestAvgUniqueness(t *testing.T) {
	d := dataset.New(
		[]string{"id", "flag"},
		[][]string{{"1", "y"}, {"2", "y"}, {"3", "y"}, {"4", "y"}},
	)
	s := Describe(d)
	// id 4/4 distinct, flag 1/4.
	assert.InDelta(t, 0.625, s.AvgUniqueness, 1e-9)
}
