package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

func TestNewInfersColumnKinds(t *testing.T) {
	d := New(
		[]string{"薪資", "部門", "備註", "空欄"},
		[][]string{
			{"30000", "業務", "ok", ""},
			{"40,000", "技術", "", ""},
			{"50000", "業務", "5", ""},
		},
	)

	require.Equal(t, 4, d.Cols())
	require.Equal(t, 3, d.Rows())
	assert.Equal(t, KindNumeric, d.Columns[0].Kind)
	assert.Equal(t, KindText, d.Columns[1].Kind)
	// mixed numeric/text stays text
	assert.Equal(t, KindText, d.Columns[2].Kind)
	assert.Equal(t, KindOther, d.Columns[3].Kind)

	assert.Equal(t, 40000.0, d.Columns[0].Cells[1].Num)
	assert.True(t, d.Columns[2].Cells[1].Missing)
}

func TestNewPadsShortRecords(t *testing.T) {
	d := New([]string{"a", "b"}, [][]string{{"1", "x"}, {"2"}})
	assert.True(t, d.Columns[1].Cells[1].Missing)
	assert.Equal(t, 2, d.Rows())
}

func TestRowKeyDistinguishesMissing(t *testing.T) {
	d := New([]string{"a", "b"}, [][]string{
		{"1", ""},
		{"1", ""},
		{"1", "y"},
	})
	assert.Equal(t, d.RowKey(0), d.RowKey(1))
	assert.NotEqual(t, d.RowKey(0), d.RowKey(2))
}

func TestCloneIsIndependent(t *testing.T) {
	d := New([]string{"a"}, [][]string{{"1"}})
	c := d.Clone()
	c.Columns[0].Cells[0].Raw = "2"
	assert.Equal(t, "1", d.Columns[0].Cells[0].Raw)
}

func TestFindColumns(t *testing.T) {
	d := New([]string{"總薪資", "部門", "Salary Grade"}, nil)
	assert.Equal(t, []string{"總薪資", "Salary Grade"}, d.FindColumns("薪資", "salary"))
	assert.Empty(t, d.FindColumns("利潤"))
}

func TestLoadCSVUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emp.csv")
	require.NoError(t, os.WriteFile(path, []byte("姓名,薪資\n小明,30000\n小華,40000\n"), 0o644))

	d, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, KindNumeric, d.Columns[1].Kind)
	assert.Equal(t, "小明", d.Columns[0].Cells[0].Raw)
}

func TestLoadCSVBig5Fallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big5.csv")
	utf := "姓名,薪資\n小明,30000\n"
	enc, _, err := transform.Bytes(traditionalchinese.Big5.NewEncoder(), []byte(utf))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, enc, 0o644))

	d, err := LoadCSV(path)
	require.NoError(t, err)
	require.Equal(t, 1, d.Rows())
	assert.Equal(t, "小明", d.Columns[0].Cells[0].Raw)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("report.pdf")
	assert.ErrorIs(t, err, ErrUnsupported)
}
