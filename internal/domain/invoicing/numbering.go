package invoicing

import (
	"fmt"
	"strconv"
	"strings"
)

// NextInvoiceNo derives the next sequential invoice number from the most
// recent one. Numbers follow INV-#### (zero-padded). When lastNo is empty
// the sequence starts at INV-0001; when its numeric suffix cannot be parsed
// (hand-entered historical numbers) the fallback record identity is used
// instead. Never fails.
//
// Concurrent generation of the same number is resolved by the unique
// constraint on invoices.invoice_no plus retry in the create use case.
func NextInvoiceNo(lastNo string, fallbackID int64) string {
	if lastNo == "" {
		return "INV-0001"
	}
	if i := strings.LastIndex(lastNo, "-"); i >= 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(lastNo[i+1:])); err == nil {
			return fmt.Sprintf("INV-%04d", n+1)
		}
	}
	return fmt.Sprintf("INV-%04d", fallbackID)
}
