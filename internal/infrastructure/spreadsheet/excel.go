// Package spreadsheet reads and writes the AWB item workbook used for
// bulk invoice entry.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	appbilling "github.com/swiftcourier/billing-api/internal/application/billing"
	"github.com/swiftcourier/billing-api/internal/application/dto"
)

var _ appbilling.ItemSheetCodec = (*ExcelItemSheet)(nil)

// itemHeaders is the column order of both the template and the importer.
var itemHeaders = []string{"Date", "AWB No", "Destination", "Weight", "Amount"}

// dateLayouts are accepted in uploaded sheets. Excel exports and hand-typed
// rows disagree on format, so the parser tries the common ones in order.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"01-02-06",
	"02-Jan-2006",
	"2-Jan-06",
}

// ExcelItemSheet implements the item sheet codec over .xlsx workbooks.
type ExcelItemSheet struct{}

// NewExcelItemSheet builds the codec.
func NewExcelItemSheet() *ExcelItemSheet {
	return &ExcelItemSheet{}
}

// ParseItems reads the first sheet of an uploaded workbook. The first row is
// treated as a header when it does not carry an amount. Malformed cells
// degrade per field: an unreadable date becomes blank, an unreadable amount
// becomes zero. Fully empty rows are skipped.
func (s *ExcelItemSheet) ParseItems(r io.Reader) ([]dto.InvoiceItemRequest, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet: workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: read rows: %w", err)
	}

	var items []dto.InvoiceItemRequest
	for i, cells := range rows {
		if i == 0 && looksLikeHeader(cells) {
			continue
		}
		if rowEmpty(cells) {
			continue
		}
		items = append(items, dto.InvoiceItemRequest{
			Date:        normalizeDate(cell(cells, 0)),
			AWBNo:       cell(cells, 1),
			Destination: cell(cells, 2),
			Weight:      cell(cells, 3),
			Amount:      parseAmount(cell(cells, 4)),
		})
	}
	return items, nil
}

// Template produces a one-sheet workbook holding only the header row, for
// users to fill in and upload back.
func (s *ExcelItemSheet) Template() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for i, h := range itemHeaders {
		cellName, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("spreadsheet: cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cellName, h); err != nil {
			return nil, fmt.Errorf("spreadsheet: write header: %w", err)
		}
	}
	if err := f.SetColWidth(sheet, "A", "E", 16); err != nil {
		return nil, fmt.Errorf("spreadsheet: set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

func rowEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// looksLikeHeader treats a first row without a numeric amount column as a
// header, so sheets both with and without one import cleanly.
func looksLikeHeader(cells []string) bool {
	amount := cell(cells, 4)
	if amount == "" {
		return true
	}
	_, err := decimal.NewFromString(amount)
	return err != nil
}

// normalizeDate converts a sheet date to YYYY-MM-DD, or blank when the cell
// cannot be read as a date.
func normalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func parseAmount(raw string) decimal.Decimal {
	raw = strings.ReplaceAll(raw, ",", "")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
