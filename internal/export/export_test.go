package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/halcyonlab/tablechat/internal/dataset"
)

func exportData(t *testing.T) *dataset.Dataset {
	t.Helper()
	return dataset.New(
		[]string{"部門", "薪資"},
		[][]string{
			{"業務", "50000"},
			{"工程", "70000"},
			{"人資", ""},
		},
	)
}

func TestWriteXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(exportData(t), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"部門", "薪資"}, rows[0])
	assert.Equal(t, "業務", rows[1][0])
	assert.Equal(t, "50000", rows[1][1])
	// Missing salary leaves the cell empty.
	assert.Equal(t, []string{"人資"}, rows[2][:1])
}

func TestWriteCSVHasBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(exportData(t), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(raw), 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, raw[:3])
	assert.Contains(t, string(raw), "部門,薪資")
	assert.Contains(t, string(raw), "業務,50000")
}

func TestWriteJSONRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteJSON(exportData(t), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(raw, &records))
	require.Len(t, records, 3)
	assert.Equal(t, "業務", records[0]["部門"])
	assert.Equal(t, float64(50000), records[0]["薪資"])
	assert.Nil(t, records[2]["薪資"])
}

func TestWriteDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(exportData(t), filepath.Join(dir, "a.csv")))
	require.NoError(t, Write(exportData(t), filepath.Join(dir, "b.json")))
	require.NoError(t, Write(exportData(t), filepath.Join(dir, "c.xlsx")))

	err := Write(exportData(t), filepath.Join(dir, "d.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不支援的匯出格式")
}

func TestWriteNoDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	assert.ErrorIs(t, WriteCSV(nil, path), ErrNoDataset)
	assert.ErrorIs(t, WriteXLSX(&dataset.Dataset{}, path), ErrNoDataset)
	assert.ErrorIs(t, WriteJSON(nil, path), ErrNoDataset)
}
