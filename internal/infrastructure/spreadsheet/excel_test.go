package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for r, cells := range rows {
		for c, v := range cells {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, name, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

// ──────────────────────────────────────────────────────────────────────────────

func TestParseItems_HeaderAndRows(t *testing.T) {
	codec := NewExcelItemSheet()

	r := buildWorkbook(t, [][]any{
		{"Date", "AWB No", "Destination", "Weight", "Amount"},
		{"2025-04-01", "AWB1001", "Mumbai", "0.5", "100.00"},
		{"01/04/2025", "AWB1002", "Delhi", "2 kg", "250.50"},
	})

	items, err := codec.ParseItems(r)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "2025-04-01", items[0].Date)
	assert.Equal(t, "AWB1001", items[0].AWBNo)
	assert.Equal(t, "Mumbai", items[0].Destination)
	assert.Equal(t, "0.5", items[0].Weight)
	assert.Equal(t, "100", items[0].Amount.String())

	// dd/mm/yyyy is normalized to ISO.
	assert.Equal(t, "2025-04-01", items[1].Date)
	assert.Equal(t, "250.5", items[1].Amount.String())
}

func TestParseItems_NoHeaderRow(t *testing.T) {
	codec := NewExcelItemSheet()

	r := buildWorkbook(t, [][]any{
		{"2025-04-01", "AWB2001", "Chennai", "1", "75.25"},
	})

	items, err := codec.ParseItems(r)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "AWB2001", items[0].AWBNo)
}

func TestParseItems_DegradesMalformedCells(t *testing.T) {
	codec := NewExcelItemSheet()

	r := buildWorkbook(t, [][]any{
		{"Date", "AWB No", "Destination", "Weight", "Amount"},
		{"not a date", "AWB3001", "Pune", "", "oops"},
		{}, // fully blank row is skipped
		{"", "AWB3002", "", "", "40"},
	})

	items, err := codec.ParseItems(r)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Empty(t, items[0].Date)
	assert.True(t, items[0].Amount.IsZero())
	assert.Equal(t, "AWB3002", items[1].AWBNo)
	assert.Equal(t, "40", items[1].Amount.String())
}

func TestParseItems_RejectsNonWorkbook(t *testing.T) {
	codec := NewExcelItemSheet()
	_, err := codec.ParseItems(bytes.NewReader([]byte("definitely not xlsx")))
	assert.Error(t, err)
}

func TestTemplate_RoundTrips(t *testing.T) {
	codec := NewExcelItemSheet()

	data, err := codec.Template()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, itemHeaders, rows[0])

	// The blank template parses back to zero items.
	items, err := codec.ParseItems(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, items)
}
