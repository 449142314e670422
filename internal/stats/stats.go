// Package stats computes descriptive statistics, pairwise correlation
// and outlier counts over a dataset. Thresholds are fixed constants;
// they are part of the behavioural contract, not configuration.
package stats

import (
	"math"
	"sort"

	"github.com/halcyonlab/tablechat/internal/dataset"
)

const (
	// StrongCorrThreshold flags |r| above this as a strong correlation.
	StrongCorrThreshold = 0.7
	// IQRMultiplier is the Tukey fence width.
	IQRMultiplier = 1.5
	// TopValueCount limits categorical frequency listings.
	TopValueCount = 5
)

// NumericSummary holds the describe() figures for one numeric column.
type NumericSummary struct {
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// ValueCount is one categorical frequency entry.
type ValueCount struct {
	Value string
	Count int
}

// ColumnSummary describes a single column.
type ColumnSummary struct {
	Name       string
	Kind       dataset.Kind
	NonNull    int
	Missing    int
	MissingPct float64
	Distinct   int
	Numeric    *NumericSummary // nil unless the column is numeric
	TopValues  []ValueCount    // populated for text columns
	Outliers   int             // Tukey rule, numeric columns only
}

// CorrPair is one off-diagonal correlation entry (A before B in column
// order, each unordered pair reported once).
type CorrPair struct {
	A, B   string
	R      float64
	Strong bool
}

// Direction returns the Chinese direction label used in reports.
func (p CorrPair) Direction() string {
	if p.R < 0 {
		return "負相關"
	}
	return "正相關"
}

// Summary is the full describe() bundle.
type Summary struct {
	Rows          int
	Cols          int
	Columns       []ColumnSummary
	Correlations  []CorrPair
	TotalOutliers int
	Completeness  float64 // fraction of non-missing cells
	AvgUniqueness float64 // mean of distinct/rows across columns
}

// Describe computes the statistics bundle for a dataset. It never
// divides by zero: sections that lack data are simply left empty.
func Describe(d *dataset.Dataset) Summary {
	s := Summary{Rows: d.Rows(), Cols: d.Cols()}
	if s.Cols == 0 {
		return s
	}

	var uniquenessSum float64
	for i, col := range d.Columns {
		cs := ColumnSummary{Name: col.Name, Kind: col.Kind}
		distinct := make(map[string]struct{})
		for _, cell := range col.Cells {
			if cell.Missing {
				cs.Missing++
				continue
			}
			cs.NonNull++
			distinct[cell.Raw] = struct{}{}
		}
		cs.Distinct = len(distinct)
		if s.Rows > 0 {
			cs.MissingPct = float64(cs.Missing) / float64(s.Rows) * 100
			uniquenessSum += float64(cs.Distinct) / float64(s.Rows)
		}

		switch col.Kind {
		case dataset.KindNumeric:
			vals := d.NumericValues(i)
			if len(vals) > 0 {
				cs.Numeric = describeValues(vals)
				cs.Outliers = OutlierCount(vals)
				s.TotalOutliers += cs.Outliers
			}
		case dataset.KindText:
			cs.TopValues = topValues(col, TopValueCount)
		}
		s.Columns = append(s.Columns, cs)
	}

	totalCells := s.Rows * s.Cols
	if totalCells > 0 {
		missing := 0
		for _, cs := range s.Columns {
			missing += cs.Missing
		}
		s.Completeness = float64(totalCells-missing) / float64(totalCells)
	}
	s.AvgUniqueness = uniquenessSum / float64(s.Cols)

	s.Correlations = correlations(d)
	return s
}

func describeValues(vals []float64) *NumericSummary {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	mean, std := meanStd(vals)
	return &NumericSummary{
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// meanStd returns the mean and sample standard deviation via a Welford
// pass. Std is 0 for fewer than two values.
func meanStd(vals []float64) (mean, std float64) {
	var m2 float64
	for n, x := range vals {
		delta := x - mean
		mean += delta / float64(n+1)
		m2 += delta * (x - mean)
	}
	if len(vals) > 1 {
		std = math.Sqrt(m2 / float64(len(vals)-1))
	}
	return mean, std
}

// Quantile interpolates linearly between order statistics. The input
// must already be sorted ascending.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// OutlierCount applies Tukey's rule: values strictly outside
// [Q1 − 1.5·IQR, Q3 + 1.5·IQR]. Values exactly on a fence are not
// outliers.
func OutlierCount(vals []float64) int {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	q1 := Quantile(sorted, 0.25)
	q3 := Quantile(sorted, 0.75)
	iqr := q3 - q1
	lo := q1 - IQRMultiplier*iqr
	hi := q3 + IQRMultiplier*iqr

	count := 0
	for _, v := range vals {
		if v < lo || v > hi {
			count++
		}
	}
	return count
}

// correlations computes the Pearson coefficient for every pair of
// numeric columns over rows where both cells are present.
func correlations(d *dataset.Dataset) []CorrPair {
	numIdx := d.NumericColumns()
	if len(numIdx) < 2 {
		return nil
	}
	var pairs []CorrPair
	for a := 0; a < len(numIdx); a++ {
		for b := a + 1; b < len(numIdx); b++ {
			ca, cb := d.Columns[numIdx[a]], d.Columns[numIdx[b]]
			r, ok := pearson(ca.Cells, cb.Cells)
			if !ok {
				continue
			}
			pairs = append(pairs, CorrPair{
				A:      ca.Name,
				B:      cb.Name,
				R:      r,
				Strong: math.Abs(r) > StrongCorrThreshold,
			})
		}
	}
	return pairs
}

func pearson(xs, ys []dataset.Cell) (float64, bool) {
	var n, sumX, sumY, sumXX, sumYY, sumXY float64
	for i := range xs {
		if xs[i].Missing || ys[i].Missing {
			continue
		}
		x, y := xs[i].Num, ys[i].Num
		n++
		sumX += x
		sumY += y
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}
	if n < 2 {
		return 0, false
	}
	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom == 0 {
		return 0, false
	}
	r := (n*sumXY - sumX*sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

func topValues(col dataset.Column, n int) []ValueCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, cell := range col.Cells {
		if cell.Missing {
			continue
		}
		if _, seen := counts[cell.Raw]; !seen {
			order = append(order, cell.Raw)
		}
		counts[cell.Raw]++
	}
	out := make([]ValueCount, 0, len(order))
	for _, v := range order {
		out = append(out, ValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// GroupStat is one group's aggregate for GroupMeans.
type GroupStat struct {
	Key   string
	Mean  float64
	Count int
}

// GroupMeans groups rows by the text column groupIdx and averages the
// numeric column valueIdx within each group, skipping rows where either
// cell is missing. Groups are returned in key order.
func GroupMeans(d *dataset.Dataset, groupIdx, valueIdx int) []GroupStat {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i := 0; i < d.Rows(); i++ {
		g := d.Columns[groupIdx].Cells[i]
		v := d.Columns[valueIdx].Cells[i]
		if g.Missing || v.Missing {
			continue
		}
		sums[g.Raw] += v.Num
		counts[g.Raw]++
	}
	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]GroupStat, 0, len(keys))
	for _, k := range keys {
		out = append(out, GroupStat{Key: k, Mean: sums[k] / float64(counts[k]), Count: counts[k]})
	}
	return out
}
