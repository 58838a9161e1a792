package invoicing

import "strings"

// Indian-numbering vocabulary for AmountInWords.
var (
	wordsUnits = []string{"", "One", "Two", "Three", "Four", "Five", "Six",
		"Seven", "Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen",
		"Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	wordsTens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty",
		"Sixty", "Seventy", "Eighty", "Ninety"}
)

// AmountInWords spells out a whole rupee amount using the Indian numbering
// system (thousand, lakh, crore), as printed on the bill:
//
//	458      -> "Four Hundred Fifty-Eight"
//	1250000  -> "Twelve Lakh Fifty Thousand"
//
// Negative amounts never occur on a bill; they are prefixed with "Minus"
// rather than panicking.
func AmountInWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + AmountInWords(-n)
	}

	var parts []string
	appendScale := func(v int64, scale string) {
		if v > 0 {
			parts = append(parts, belowThousand(v))
			if scale != "" {
				parts = append(parts, scale)
			}
		}
	}

	appendScale(n/1_00_00_000, "Crore")
	n %= 1_00_00_000
	appendScale(n/1_00_000, "Lakh")
	n %= 1_00_000
	appendScale(n/1_000, "Thousand")
	n %= 1_000
	appendScale(n, "")

	return strings.Join(parts, " ")
}

// belowThousand spells 1..999.
func belowThousand(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, wordsUnits[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		tens := wordsTens[n/10]
		if n%10 > 0 {
			tens += "-" + wordsUnits[n%10]
		}
		parts = append(parts, tens)
	case n > 0:
		parts = append(parts, wordsUnits[n])
	}
	return strings.Join(parts, " ")
}
