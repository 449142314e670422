// Package dataset holds the in-memory table model the assistant operates
// on: named columns with an inferred kind and per-cell missing markers.
// The engine only ever reads a Dataset; cleaning returns a new copy.
package dataset

import (
	"strconv"
	"strings"
)

// Kind classifies a column by the values it holds.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	default:
		return "other"
	}
}

// Cell is a single value. Raw keeps the original text form; Num is only
// meaningful in numeric columns and only when Missing is false.
type Cell struct {
	Raw     string
	Num     float64
	Missing bool
}

// Column is a named, typed sequence of cells. All columns of a Dataset
// have the same length.
type Column struct {
	Name  string
	Kind  Kind
	Cells []Cell
}

// Dataset is a rows × named-columns table.
type Dataset struct {
	Columns []Column
}

// Rows returns the row count (length of the first column).
func (d *Dataset) Rows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Cells)
}

// Cols returns the column count.
func (d *Dataset) Cols() int { return len(d.Columns) }

// Clone returns a deep copy.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{Columns: make([]Column, len(d.Columns))}
	for i, c := range d.Columns {
		cells := make([]Cell, len(c.Cells))
		copy(cells, c.Cells)
		out.Columns[i] = Column{Name: c.Name, Kind: c.Kind, Cells: cells}
	}
	return out
}

// NumericColumns returns the indexes of numeric columns in declaration order.
func (d *Dataset) NumericColumns() []int {
	var idx []int
	for i, c := range d.Columns {
		if c.Kind == KindNumeric {
			idx = append(idx, i)
		}
	}
	return idx
}

// TextColumns returns the indexes of text columns in declaration order.
func (d *Dataset) TextColumns() []int {
	var idx []int
	for i, c := range d.Columns {
		if c.Kind == KindText {
			idx = append(idx, i)
		}
	}
	return idx
}

// ColumnIndex returns the index of the column with the given name, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// FindColumns returns the names of columns whose lowercased name contains
// any of the given keywords.
func (d *Dataset) FindColumns(keywords ...string) []string {
	var names []string
	for _, c := range d.Columns {
		lower := strings.ToLower(c.Name)
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				names = append(names, c.Name)
				break
			}
		}
	}
	return names
}

// RowKey builds a full-row equality key for row i. Missing cells
// contribute a marker distinct from any raw value.
func (d *Dataset) RowKey(i int) string {
	parts := make([]string, len(d.Columns))
	for j, c := range d.Columns {
		if c.Cells[i].Missing {
			parts[j] = "\x00"
		} else {
			parts[j] = c.Cells[i].Raw
		}
	}
	return strings.Join(parts, "\x1f")
}

// MissingCells counts missing cells across the whole table.
func (d *Dataset) MissingCells() int {
	n := 0
	for _, c := range d.Columns {
		for _, cell := range c.Cells {
			if cell.Missing {
				n++
			}
		}
	}
	return n
}

// ApproxBytes estimates the in-memory footprint. It is a best-effort
// figure used for report thresholds, not an accounting of allocations.
func (d *Dataset) ApproxBytes() int64 {
	var total int64
	for _, c := range d.Columns {
		total += int64(len(c.Name))
		for _, cell := range c.Cells {
			total += int64(len(cell.Raw)) + 16
		}
	}
	return total
}

// NumericValues returns the non-missing values of column idx. The column
// must be numeric; for other kinds the result is empty.
func (d *Dataset) NumericValues(idx int) []float64 {
	c := d.Columns[idx]
	if c.Kind != KindNumeric {
		return nil
	}
	vals := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if !cell.Missing {
			vals = append(vals, cell.Num)
		}
	}
	return vals
}

// New builds a Dataset from a header row and records, inferring each
// column's kind: a column is numeric when every non-empty cell parses as
// a number and at least one does; a column with no values at all is
// KindOther; everything else is text. Short records are padded with
// missing cells.
func New(header []string, records [][]string) *Dataset {
	ncol := len(header)
	d := &Dataset{Columns: make([]Column, ncol)}
	for j := 0; j < ncol; j++ {
		col := Column{Name: strings.TrimSpace(header[j]), Cells: make([]Cell, len(records))}
		numeric := true
		seen := 0
		for i, rec := range records {
			raw := ""
			if j < len(rec) {
				raw = strings.TrimSpace(rec[j])
			}
			if raw == "" {
				col.Cells[i] = Cell{Missing: true}
				continue
			}
			seen++
			n, ok := parseNumber(raw)
			col.Cells[i] = Cell{Raw: raw, Num: n}
			if !ok {
				numeric = false
			}
		}
		switch {
		case seen == 0:
			col.Kind = KindOther
		case numeric:
			col.Kind = KindNumeric
		default:
			col.Kind = KindText
			for i := range col.Cells {
				col.Cells[i].Num = 0
			}
		}
		d.Columns[j] = col
	}
	return d
}

// parseNumber accepts plain and thousands-separated decimal forms
// ("40000", "40,000", "1.5e3").
func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FormatNumber renders a float the way cells store raw numeric text.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
